package version

import (
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

const unknown = "unknown"

// ErrInvalidVersion indicates a string is not a "<major>.<minor>.<patch>"
// version identifier.
var ErrInvalidVersion = errors.New("invalid version")

var (
	// Version is the version of the application.
	Version = "0.1.0"

	// Revision is the VCS revision the application was built from.
	Revision = ""

	// BuildDate is the time the application was built.
	BuildDate = ""
)

func init() {
	info, ok := debug.ReadBuildInfo()

	if Revision == "" {
		Revision = buildSetting(info, ok, "vcs.revision")
	}

	if BuildDate == "" {
		BuildDate = buildSetting(info, ok, "vcs.time")
	}
}

func buildSetting(info *debug.BuildInfo, ok bool, key string) string {
	if !ok {
		return unknown
	}

	for _, s := range info.Settings {
		if s.Key == key && s.Value != "" {
			return s.Value
		}
	}

	return unknown
}

// Semver is a parsed version identifier.
type Semver struct {
	Major uint64
	Minor uint64
	Patch uint64
}

// String returns the canonical form of the version, without leading zeros.
func (s Semver) String() string {
	return fmt.Sprintf("%d.%d.%d", s.Major, s.Minor, s.Patch)
}

// Validate checks that s consists of exactly three dot-separated segments of
// decimal digits. Leading zeros are allowed.
func Validate(s string) error {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return fmt.Errorf("%w: %q: want 3 segments, got %d", ErrInvalidVersion, s, len(parts))
	}

	for i, part := range parts {
		if part == "" {
			return fmt.Errorf("%w: %q: segment %d is empty", ErrInvalidVersion, s, i)
		}

		for _, r := range part {
			if r < '0' || r > '9' {
				return fmt.Errorf("%w: %q: segment %d contains %q", ErrInvalidVersion, s, i, r)
			}
		}
	}

	return nil
}

// Parse validates s and converts it to a [Semver].
func Parse(s string) (Semver, error) {
	if err := Validate(s); err != nil {
		return Semver{}, err
	}

	parts := strings.Split(s, ".")
	nums := make([]uint64, len(parts))

	for i, part := range parts {
		n, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return Semver{}, fmt.Errorf("%w: %q: %w", ErrInvalidVersion, s, err)
		}

		nums[i] = n
	}

	return Semver{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// Compare returns -1, 0, or +1 depending on whether a is lower than, equal
// to, or greater than b. Unlike [semver.Compare], invalid input is an error.
func Compare(a, b string) (int, error) {
	va, err := Parse(a)
	if err != nil {
		return 0, err
	}

	vb, err := Parse(b)
	if err != nil {
		return 0, err
	}

	return semver.Compare("v"+va.String(), "v"+vb.String()), nil
}

// Info describes the running build.
type Info struct {
	Version   string `json:"version"   yaml:"version"`
	Revision  string `json:"revision"  yaml:"revision"`
	BuildDate string `json:"buildDate" yaml:"buildDate"`
	GoVersion string `json:"goVersion" yaml:"goVersion"`
	Platform  string `json:"platform"  yaml:"platform"`
}

// Get returns the [Info] for the running build.
func Get() Info {
	return Info{
		Version:   Version,
		Revision:  Revision,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}
