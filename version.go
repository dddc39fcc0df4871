package caret

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

var releaseRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(-[0-9A-Za-z-]+(\.[0-9A-Za-z-]+)*)?(\+[0-9A-Za-z-]+(\.[0-9A-Za-z-]+)*)?$`)

// Version is the release number from the VERSION file, without a leading v.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag is what caret -version prints. It fails when the VERSION file
// baked into the binary is not a release number.
func VersionTag() (string, error) {
	v := Version()
	if !validRelease(v) {
		return "", fmt.Errorf("malformed VERSION %q", v)
	}
	return "v" + v, nil
}

func validRelease(v string) bool {
	return releaseRE.MatchString(v)
}
