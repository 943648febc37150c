package core

import (
	_ "embed"
	"fmt"
	"strings"
	"time"

	version "github.com/hashicorp/go-version"
)

//go:embed version
var clientVersion string

func ClientVersion() string {
	return strings.TrimSpace(clientVersion)
}

const versionDateLayout = "2006-01-02"

// VersionDate is an API version date such as "2018-07-10". Watson services
// pin behaviour to the date sent in the "version" query parameter.
type VersionDate struct {
	raw string
	v   *version.Version
}

// ParseVersionDate parses a YYYY-MM-DD version date.
func ParseVersionDate(s string) (*VersionDate, error) {
	t, err := time.Parse(versionDateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("invalid version date %q: expected YYYY-MM-DD", s)
	}
	v, err := version.NewVersion(fmt.Sprintf("%d.%d.%d", t.Year(), int(t.Month()), t.Day()))
	if err != nil {
		return nil, fmt.Errorf("invalid version date %q: %w", s, err)
	}
	return &VersionDate{raw: s, v: v}, nil
}

// MustParseVersionDate is like ParseVersionDate but panics on error.
func MustParseVersionDate(s string) *VersionDate {
	d, err := ParseVersionDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d *VersionDate) String() string {
	return d.raw
}

// Compare returns -1, 0 or 1 depending on whether d is before, equal to or after other.
func (d *VersionDate) Compare(other *VersionDate) int {
	return d.v.Compare(other.v)
}

func (d *VersionDate) Before(other *VersionDate) bool {
	return d.v.LessThan(other.v)
}
