package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bent101/wordle-assist/dictionary"
	"github.com/bent101/wordle-assist/recommend"
)

func TestPlayGame(t *testing.T) {
	dict := dictionary.Default()
	r, err := recommend.New(dict, nil)
	require.NoError(t, err)

	n, err := playGame(r, "crane", "crane")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	for _, target := range sampleTargets(dict, 10) {
		n, err := playGame(r, target, "")
		require.NoError(t, err, target)
		assert.GreaterOrEqual(t, n, 1, target)
		assert.LessOrEqual(t, n, maxTurns+1, target)
	}
}

func TestSampleTargets(t *testing.T) {
	words := []string{"a", "b", "c", "d", "e", "f"}
	assert.Equal(t, words, sampleTargets(words, 0))
	assert.Equal(t, words, sampleTargets(words, 10))
	assert.Equal(t, []string{"a", "c", "e"}, sampleTargets(words, 3))
}

func TestNewLogger(t *testing.T) {
	_, err := newLogger("debug", true)
	assert.NoError(t, err)
	_, err = newLogger("loud", false)
	assert.Error(t, err)
}
