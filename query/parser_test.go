package query

import (
	"testing"

	"github.com/nourabosen/USearch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantMode core.SearchMode
		wantTerm string
		wantArgs []string
	}{
		{
			name:     "plain term",
			raw:      "report",
			wantMode: core.SearchModeNormal,
			wantTerm: "report",
		},
		{
			name:     "normal keeps inner spacing of trimmed query",
			raw:      "  annual   report  ",
			wantMode: core.SearchModeNormal,
			wantTerm: "annual   report",
		},
		{
			name:     "hardware prefix",
			raw:      "hw foo",
			wantMode: core.SearchModeHardwareOnly,
			wantTerm: "foo",
		},
		{
			name:     "hardware prefix is case insensitive and rejoins tokens",
			raw:      "HW  holiday    photos",
			wantMode: core.SearchModeHardwareOnly,
			wantTerm: "holiday photos",
		},
		{
			name:     "raw prefix preserves argument boundaries",
			raw:      "r -i foo",
			wantMode: core.SearchModeRaw,
			wantArgs: []string{"-i", "foo"},
		},
		{
			name:     "raw prefix upper case",
			raw:      "R --regex ^/etc/.*conf$",
			wantMode: core.SearchModeRaw,
			wantArgs: []string{"--regex", "^/etc/.*conf$"},
		},
		{
			name:     "prefix must be a whole token",
			raw:      "hwfoo",
			wantMode: core.SearchModeNormal,
			wantTerm: "hwfoo",
		},
		{
			name:     "raw prefix inside the query is a plain term",
			raw:      "foo r bar",
			wantMode: core.SearchModeNormal,
			wantTerm: "foo r bar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := Parse(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMode, q.Mode)
			assert.Equal(t, tt.wantTerm, q.Term)
			assert.Equal(t, tt.wantArgs, q.RawArgs)
			assert.Equal(t, tt.raw, q.Raw)
			assert.NoError(t, core.ValidateQuery(q))
		})
	}
}

func TestParse_InvalidQuery(t *testing.T) {
	for _, raw := range []string{"", "   ", "\t\n", "hw", "HW  ", "r", " r "} {
		t.Run(raw, func(t *testing.T) {
			_, err := Parse(raw)
			assert.ErrorIs(t, err, core.ErrInvalidQuery)
		})
	}
}

func TestParse_PrefixWithoutRestNamesTheMissingPart(t *testing.T) {
	tests := []struct {
		raw  string
		want error
	}{
		{"hw", core.ErrEmptyTerm},
		{"  HW ", core.ErrEmptyTerm},
		{"r", core.ErrEmptyRawArgs},
		{"R", core.ErrEmptyRawArgs},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			q, err := Parse(tt.raw)
			assert.ErrorIs(t, err, core.ErrInvalidQuery)
			assert.ErrorIs(t, err, tt.want)
			assert.Zero(t, q.Mode)
		})
	}
}

func TestParser_CustomPrefixes(t *testing.T) {
	p := NewParser("dev", "loc")

	q, err := p.Parse("dev music")
	require.NoError(t, err)
	assert.Equal(t, core.SearchModeHardwareOnly, q.Mode)
	assert.Equal(t, "music", q.Term)

	q, err = p.Parse("loc -b needle")
	require.NoError(t, err)
	assert.Equal(t, core.SearchModeRaw, q.Mode)
	assert.Equal(t, []string{"-b", "needle"}, q.RawArgs)

	// Default prefixes are plain terms once replaced.
	q, err = p.Parse("hw music")
	require.NoError(t, err)
	assert.Equal(t, core.SearchModeNormal, q.Mode)
	assert.Equal(t, "hw music", q.Term)
}

func TestParser_IdenticalPrefixesPreferHardware(t *testing.T) {
	p := NewParser("x", "X")

	q, err := p.Parse("x thing")
	require.NoError(t, err)
	assert.Equal(t, core.SearchModeHardwareOnly, q.Mode)
	assert.Equal(t, "thing", q.Term)
	assert.Nil(t, q.RawArgs)
}

func TestParser_EmptyPrefixesFallBackToDefaults(t *testing.T) {
	p := NewParser("", "")

	q, err := p.Parse("hw a")
	require.NoError(t, err)
	assert.Equal(t, core.SearchModeHardwareOnly, q.Mode)

	q, err = p.Parse("r a")
	require.NoError(t, err)
	assert.Equal(t, core.SearchModeRaw, q.Mode)
}

func TestNewParser_ResolvesPrefixes(t *testing.T) {
	p := NewParser(" ", "")
	assert.Equal(t, DefaultHardwarePrefix, p.HardwarePrefix)
	assert.Equal(t, DefaultRawPrefix, p.RawPrefix)

	p = NewParser(" dev ", "raw")
	assert.Equal(t, "dev", p.HardwarePrefix)
	assert.Equal(t, "raw", p.RawPrefix)
}

func TestParser_ParseArgs(t *testing.T) {
	p := NewParser("", "")

	tests := []struct {
		name     string
		args     []string
		wantMode core.SearchMode
		wantTerm string
		wantArgs []string
	}{
		{
			name:     "raw argument with spaces stays whole",
			args:     []string{"r", "-r", "a b"},
			wantMode: core.SearchModeRaw,
			wantArgs: []string{"-r", "a b"},
		},
		{
			name:     "quoted normal term",
			args:     []string{"annual report"},
			wantMode: core.SearchModeNormal,
			wantTerm: "annual report",
		},
		{
			name:     "separate words join into one term",
			args:     []string{"annual", "report"},
			wantMode: core.SearchModeNormal,
			wantTerm: "annual report",
		},
		{
			name:     "hardware prefix",
			args:     []string{"HW", "my photos"},
			wantMode: core.SearchModeHardwareOnly,
			wantTerm: "my photos",
		},
		{
			name:     "quoted prefix is a plain term",
			args:     []string{"hw photos"},
			wantMode: core.SearchModeNormal,
			wantTerm: "hw photos",
		},
		{
			name:     "blank arguments are dropped",
			args:     []string{"", "r", " ", "-b", "needle"},
			wantMode: core.SearchModeRaw,
			wantArgs: []string{"-b", "needle"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := p.ParseArgs(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMode, q.Mode)
			assert.Equal(t, tt.wantTerm, q.Term)
			assert.Equal(t, tt.wantArgs, q.RawArgs)
		})
	}
}

func TestParser_ParseArgsInvalid(t *testing.T) {
	p := NewParser("", "")

	_, err := p.ParseArgs(nil)
	assert.ErrorIs(t, err, core.ErrInvalidQuery)

	_, err = p.ParseArgs([]string{" ", ""})
	assert.ErrorIs(t, err, core.ErrInvalidQuery)

	_, err = p.ParseArgs([]string{"r"})
	assert.ErrorIs(t, err, core.ErrEmptyRawArgs)
}

func TestParser_ParseArgsDoesNotModifyInput(t *testing.T) {
	args := []string{"", "r", "-i", "x"}
	_, err := NewParser("", "").ParseArgs(args)
	require.NoError(t, err)
	assert.Equal(t, []string{"", "r", "-i", "x"}, args)
}
