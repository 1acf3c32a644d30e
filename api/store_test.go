package api

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bent101/wordle-assist/dictionary"
	"github.com/bent101/wordle-assist/recommend"
	"github.com/bent101/wordle-assist/solver"
)

func TestStore(t *testing.T) {
	r, err := recommend.New(dictionary.Default(), nil)
	require.NoError(t, err)
	store := NewStore(func() *solver.Session { return solver.NewSession(r) })

	var wg sync.WaitGroup
	ids := make([]string, 20)
	for i := range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids[i], _ = store.create()
		}()
	}
	wg.Wait()

	assert.Equal(t, len(ids), store.Len())
	for _, id := range ids {
		require.NotNil(t, store.get(id), id)
	}
	assert.Nil(t, store.get("missing"))

	assert.True(t, store.Delete(ids[0]))
	assert.False(t, store.Delete(ids[0]))
	assert.Equal(t, len(ids)-1, store.Len())
}
