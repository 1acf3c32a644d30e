package constraint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo(t *testing.T) {
	c := Constraint{
		Greens:  [WordLength]byte{2: 'e'},
		Yellows: map[byte]Positions{'e': PositionsOf(3)},
		Counts: map[byte]Count{
			'e': {2, Unbounded},
			's': {0, 0},
			'p': {1, 1},
		},
	}

	e := c.Info('e')
	assert.Equal(t, []int{2}, e.MustBeInPositions)
	assert.Equal(t, []int{3}, e.CantBeInPositions)
	assert.Equal(t, 2, e.Frequency)
	assert.False(t, e.FrequencyIsExact)
	assert.True(t, e.InTarget())
	assert.Equal(t, []int{0, 1, 2, 4}, e.PossiblePositions())

	s := c.Info('s')
	assert.False(t, s.InTarget())
	assert.True(t, s.FrequencyIsExact)
	assert.Nil(t, s.PossiblePositions())

	p := c.Info('p')
	assert.Equal(t, 1, p.Frequency)
	assert.True(t, p.FrequencyIsExact)
	assert.Equal(t, "p must:[],cant:[],freq:1,exact:true", p.Canonical())

	unseen := c.Info('q')
	assert.False(t, unseen.FrequencyIsExact)
	assert.Len(t, unseen.PossiblePositions(), WordLength)
}

func TestLetters(t *testing.T) {
	c := Constraint{
		Greens:  [WordLength]byte{0: 'm'},
		Yellows: map[byte]Positions{'o': PositionsOf(1)},
		Counts:  map[byte]Count{'a': {0, 0}},
	}
	var letters []byte
	for _, info := range c.Letters() {
		letters = append(letters, info.Letter)
	}
	assert.Equal(t, []byte("amo"), letters)
}
