package version_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/myproject/pkg/version"
)

func TestVersion(t *testing.T) {
	t.Parallel()

	require.NotEmpty(t, version.Version)
	require.NotEmpty(t, version.Revision)
	require.NotEmpty(t, version.BuildDate)

	parts := strings.Split(version.Version, ".")
	require.Len(t, parts, 3)

	for _, part := range parts {
		assert.Regexp(t, `^\d+$`, part)
	}

	require.NoError(t, version.Validate(version.Version))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		valid bool
	}{
		"simple":          {input: "1.0.0", valid: true},
		"large":           {input: "10.200.3000", valid: true},
		"leading zeros":   {input: "01.02.003", valid: true},
		"zero":            {input: "0.0.0", valid: true},
		"two segments":    {input: "1.0"},
		"four segments":   {input: "1.0.0.0"},
		"pre-release":     {input: "1.0.0-beta"},
		"v prefix":        {input: "v1.0.0"},
		"plus sign":       {input: "+1.0.0"},
		"minus sign":      {input: "-1.0.0"},
		"empty segment":   {input: "1..0"},
		"trailing dot":    {input: "1.0."},
		"empty":           {input: ""},
		"whitespace":      {input: " 1.0.0"},
		"non-ascii digit": {input: "1.0.٣"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := version.Validate(tc.input)
			if tc.valid {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, version.ErrInvalidVersion)
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	v, err := version.Parse("01.2.30")
	require.NoError(t, err)
	assert.Equal(t, version.Semver{Major: 1, Minor: 2, Patch: 30}, v)
	assert.Equal(t, "1.2.30", v.String())

	_, err = version.Parse("99999999999999999999.0.0")
	require.ErrorIs(t, err, version.ErrInvalidVersion)

	_, err = version.Parse("1.0")
	require.ErrorIs(t, err, version.ErrInvalidVersion)
}

func TestCompare(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		a, b string
		want int
	}{
		"equal":             {a: "1.2.3", b: "1.2.3", want: 0},
		"equal with zeros":  {a: "1.02.3", b: "1.2.03", want: 0},
		"major lower":       {a: "1.9.9", b: "2.0.0", want: -1},
		"minor greater":     {a: "1.10.0", b: "1.9.0", want: 1},
		"patch lower":       {a: "0.0.1", b: "0.0.2", want: -1},
		"numeric not lexic": {a: "0.0.10", b: "0.0.9", want: 1},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := version.Compare(tc.a, tc.b)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := version.Compare("1.0.0", "v1.0.0")
	require.ErrorIs(t, err, version.ErrInvalidVersion)
}

func TestGet(t *testing.T) {
	t.Parallel()

	info := version.Get()
	assert.Equal(t, version.Version, info.Version)
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")
}
