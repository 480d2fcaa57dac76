package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePosition_AcceptedForms(t *testing.T) {
	cases := []struct {
		text string
		want Position
	}{
		{"3,1", Position{3, 1}},
		{"(3,1)", Position{3, 1}},
		{"(3, 1)", Position{3, 1}},
		{"( 12 , 7 )", Position{12, 7}},
	}
	for _, c := range cases {
		got, err := ParsePosition(c.text)
		require.NoError(t, err, "text %q", c.text)
		assert.Equal(t, c.want, got, "text %q", c.text)
	}
}

func TestParsePosition_Invalid(t *testing.T) {
	for _, text := range []string{"", "abc", "(x,y)", "3;1"} {
		_, err := ParsePosition(text)
		assert.ErrorIs(t, err, ErrConfiguration, "text %q", text)
	}
}

func TestParsePositions_ListForms(t *testing.T) {
	// GIVEN lists separated by whitespace and semicolons
	got := ParsePositions("0,1 (1,2); 1,1")

	// THEN every coordinate is extracted in order
	assert.Equal(t, []Position{{0, 1}, {1, 2}, {1, 1}}, got)
}

func TestParsePositions_Empty(t *testing.T) {
	assert.Empty(t, ParsePositions(""))
	assert.Empty(t, ParsePositions("   "))
}

func TestParseConfig_Valid(t *testing.T) {
	cfg, err := ParseConfig(4, "3,1", "0,1 1,2 1,1", "rdru")
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.WorldSize)
	assert.Equal(t, Position{3, 1}, cfg.ZombieStart)
	assert.Equal(t, []Position{{0, 1}, {1, 2}, {1, 1}}, cfg.CreaturePositions)
	assert.Equal(t, []Direction{Right, Down, Right, Up}, cfg.Moves)
}

func TestParseConfig_FailsFast(t *testing.T) {
	// bad size
	_, err := ParseConfig(0, "0,0", "", "R")
	assert.ErrorIs(t, err, ErrConfiguration)

	// bad zombie position
	_, err = ParseConfig(4, "nope", "", "R")
	assert.ErrorIs(t, err, ErrConfiguration)

	// bad movement character aborts before construction
	_, err = ParseConfig(4, "0,0", "1,1", "RDQ")
	assert.ErrorIs(t, err, ErrConfiguration)
}
