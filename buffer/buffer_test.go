package buffer

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestBuffer_New_TextAndLen(t *testing.T) {
	b := New("héllo\nwörld")
	if got, want := b.Text(), "héllo\nwörld"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Len(), 11; got != want {
		t.Fatalf("len=%d, want %d", got, want)
	}
	if got := b.Version(); got != 0 {
		t.Fatalf("version=%d, want 0", got)
	}
}

func TestBuffer_Insert(t *testing.T) {
	cases := []struct {
		name string
		text string
		off  int
		r    rune
		want string
	}{
		{name: "empty", text: "", off: 0, r: 'x', want: "x"},
		{name: "start", text: "hello\nworld", off: 0, r: 'X', want: "Xhello\nworld"},
		{name: "middle", text: "ab", off: 1, r: '\n', want: "a\nb"},
		{name: "end", text: "ab", off: 2, r: 'c', want: "abc"},
		{name: "unicode", text: "πテ", off: 1, r: 'é', want: "πéテ"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := New(tc.text)
			b.Insert(tc.off, tc.r)
			if got := b.Text(); got != tc.want {
				t.Fatalf("text=%q, want %q", got, tc.want)
			}
			if got := b.Version(); got != 1 {
				t.Fatalf("version=%d, want 1", got)
			}
		})
	}
}

func TestBuffer_Insert_OutOfRangePanics(t *testing.T) {
	for _, off := range []int{-1, 3} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("insert at %d: expected panic", off)
				}
			}()
			New("ab").Insert(off, 'x')
		}()
	}
}

func TestBuffer_Delete(t *testing.T) {
	b := New("ab\ncd")

	r, err := b.Delete(2)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if r != '\n' {
		t.Fatalf("deleted=%q, want %q", r, '\n')
	}
	if got, want := b.Text(), "abcd"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got := b.Version(); got != 1 {
		t.Fatalf("version=%d, want 1", got)
	}
}

func TestBuffer_Delete_OutOfRange(t *testing.T) {
	cases := []struct {
		name string
		text string
		off  int
	}{
		{name: "empty", text: "", off: 0},
		{name: "at-length", text: "ab", off: 2},
		{name: "negative", text: "ab", off: -1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := New(tc.text)
			_, err := b.Delete(tc.off)
			if !errors.Is(err, ErrOutOfRange) {
				t.Fatalf("err=%v, want ErrOutOfRange", err)
			}
			if got := b.Text(); got != tc.text {
				t.Fatalf("text=%q, want unchanged %q", got, tc.text)
			}
			if got := b.Version(); got != 0 {
				t.Fatalf("version=%d, want 0", got)
			}
		})
	}
}

func TestBuffer_Lines(t *testing.T) {
	cases := []struct {
		text string
		want []string
	}{
		{text: "", want: []string{""}},
		{text: "ab", want: []string{"ab"}},
		{text: "ab\ncd", want: []string{"ab", "cd"}},
		{text: "ab\n", want: []string{"ab", ""}},
		{text: "\n\n", want: []string{"", "", ""}},
	}

	for _, tc := range cases {
		got := linesAsStrings(New(tc.text).Lines())
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("Lines(%q)=%q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestBuffer_Lines_AppendDoesNotClobberContent(t *testing.T) {
	b := New("ab\ncd")
	lines := b.Lines()
	_ = append(lines[0], 'X')
	if got, want := b.Text(), "ab\ncd"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestBuffer_InsertThenDeleteIsIdentity(t *testing.T) {
	const text = "hello\nworld\n"
	for off := 0; off <= len([]rune(text)); off++ {
		for _, r := range []rune{'x', '\n', 'ü'} {
			b := New(text)
			b.Insert(off, r)
			got, err := b.Delete(off)
			if err != nil {
				t.Fatalf("delete(%d): %v", off, err)
			}
			if got != r {
				t.Fatalf("delete(%d)=%q, want %q", off, got, r)
			}
			if b.Text() != text {
				t.Fatalf("insert/delete at %d changed text to %q", off, b.Text())
			}
		}
	}
}

func FuzzBuffer_LinesRoundTrip(f *testing.F) {
	for _, seed := range []string{"", "\n", "ab\ncd", "ab\n", "\n\nx\n", "unicode-👨‍👩‍👧\nπ"} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, text string) {
		b := New(text)
		joined := strings.Join(linesAsStrings(b.Lines()), "\n")
		if joined != b.Text() {
			t.Fatalf("round trip: got %q, want %q", joined, b.Text())
		}
	})
}

func linesAsStrings(lines [][]rune) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, string(l))
	}
	return out
}
