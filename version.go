// Package foldwrap maps between document positions and screen cells for a
// text view with code folding and soft wrapping. The work is split across
// buffer (document), fold (fold model), wrap (split computation), screen
// (row caches and conversions), session (wiring) and editor (Bubble Tea
// component).
package foldwrap

import (
	_ "embed"
	"regexp"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the module version in SemVer form, without a leading v.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns Version as a git tag.
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v is a SemVer 2.0.0 version string.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}
