package hint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bent101/wordle-assist/constraint"
)

func colors(pattern string) []Color {
	out := make([]Color, 0, len(pattern))
	for _, r := range pattern {
		c, err := ParseColor(r)
		if err != nil {
			panic(err)
		}
		out = append(out, c)
	}
	return out
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name   string
		guess  string
		colors []Color
		want   error
	}{
		{"short guess", "spee", colors("bbbbb"), ErrWordLen},
		{"long guess", "speeds", colors("bbbbb"), ErrWordLen},
		{"uppercase", "Speed", colors("bbbbb"), ErrWordChar},
		{"digit", "sp3ed", colors("bbbbb"), ErrWordChar},
		{"short feedback", "speed", colors("bbbb"), ErrFeedbackLen},
		{"unknown color", "speed", []Color{0, 0, 0, 0, 7}, ErrColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.guess, tt.colors)
			require.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, ErrInvalidRound)
		})
	}

	r, err := New("speed", colors("bbybb"))
	require.NoError(t, err)
	assert.Equal(t, "speed", r.Guess())
}

func TestParse(t *testing.T) {
	r, err := Parse(" Crane ", "GY.-!")
	require.NoError(t, err)
	assert.Equal(t, "crane", r.Guess())
	assert.Equal(t, "gybbg", r.Pattern())

	_, err = Parse("crane", "gyb")
	assert.ErrorIs(t, err, ErrFeedbackLen)

	_, err = Parse("crane", "gyzbb")
	assert.ErrorIs(t, err, ErrColor)
}

func TestParseColor(t *testing.T) {
	for r, want := range map[rune]Color{
		'b': Absent, 'x': Absent, '0': Absent,
		'y': Present, '?': Present, '1': Present,
		'g': Correct, '!': Correct, '2': Correct,
	} {
		got, err := ParseColor(r)
		require.NoError(t, err, "%q", r)
		assert.Equal(t, want, got, "%q", r)
	}
	_, err := ParseColor('z')
	assert.ErrorIs(t, err, ErrInvalidRound)
}

func TestCodeAndSolved(t *testing.T) {
	r, err := New("crane", colors("ggggg"))
	require.NoError(t, err)
	assert.Equal(t, 242, r.Code())
	assert.True(t, r.Solved())

	r, err = New("speed", colors("bbyby"))
	require.NoError(t, err)
	assert.Equal(t, 10, r.Code())
	assert.False(t, r.Solved())
	assert.Equal(t, "speed ⬜⬜🟨⬜🟨", r.String())
}

func TestConstraintDuplicateYellowAndGray(t *testing.T) {
	// one e is present but not at 2, the second e is absent
	r, err := New("speed", colors("bbybb"))
	require.NoError(t, err)
	c := r.Constraint()

	assert.Equal(t, constraint.Count{Min: 1, Max: 1}, c.Count('e'))
	assert.False(t, c.IsGray('e'))
	assert.Equal(t, constraint.PositionsOf(2, 3), c.Yellows['e'])
	assert.Equal(t, []byte("dps"), c.Grays())
	assert.Equal(t, [WordLength]byte{}, c.Greens)
}

func TestConstraintGreenAndYellowDuplicate(t *testing.T) {
	r, err := New("speed", colors("bbgyb"))
	require.NoError(t, err)
	c := r.Constraint()

	assert.Equal(t, constraint.Count{Min: 2, Max: constraint.Unbounded}, c.Count('e'))
	assert.Equal(t, [WordLength]byte{2: 'e'}, c.Greens)
	assert.Equal(t, map[byte]constraint.Positions{'e': constraint.PositionsOf(3)}, c.Yellows)
	assert.Equal(t, []byte("dps"), c.Grays())
}

func TestConstraintGreenAndGrayDuplicate(t *testing.T) {
	r, err := New("eerie", colors("bbbbg"))
	require.NoError(t, err)
	c := r.Constraint()

	assert.Equal(t, constraint.Count{Min: 1, Max: 1}, c.Count('e'))
	assert.Equal(t, constraint.PositionsOf(0, 1), c.Yellows['e'])
	assert.Equal(t, []byte("ir"), c.Grays())
	assert.NoError(t, c.Validate())
}

func TestZeroRoundConstraint(t *testing.T) {
	var r Round
	assert.True(t, r.Constraint().IsEmpty())
	assert.False(t, r.Solved())
}
