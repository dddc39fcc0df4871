package caret

import "testing"

func TestVersionTag(t *testing.T) {
	got, err := VersionTag()
	if err != nil {
		t.Fatalf("VersionTag: %v", err)
	}
	if want := "v" + Version(); got != want {
		t.Fatalf("tag=%q, want %q", got, want)
	}
}

func TestVersionTag_RejectsMalformed(t *testing.T) {
	saved := embeddedVersion
	t.Cleanup(func() { embeddedVersion = saved })

	embeddedVersion = "v0.1\n"
	if _, err := VersionTag(); err == nil {
		t.Fatalf("expected error for %q", embeddedVersion)
	}
}

func TestValidRelease(t *testing.T) {
	cases := []struct {
		version string
		want    bool
	}{
		{version: "0.1.0", want: true},
		{version: "1.2.3-alpha.1", want: true},
		{version: "2.0.0+build.7", want: true},
		{version: "", want: false},
		{version: "v1.2.3", want: false},
		{version: "1.2", want: false},
		{version: "01.2.3", want: false},
		{version: "1.2.3-", want: false},
	}

	for _, tc := range cases {
		if got := validRelease(tc.version); got != tc.want {
			t.Fatalf("validRelease(%q)=%v, want %v", tc.version, got, tc.want)
		}
	}
}
