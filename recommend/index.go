package recommend

import (
	"github.com/bits-and-blooms/bitset"
)

// letterIndex maps each letter to the set of dictionary indexes of the
// words containing it.
type letterIndex struct {
	words   []string
	letters [26]*bitset.BitSet
}

func newLetterIndex(words []string) *letterIndex {
	idx := &letterIndex{words: words}
	for l := range idx.letters {
		idx.letters[l] = bitset.New(uint(len(words)))
	}
	for w, word := range words {
		for i := 0; i < len(word); i++ {
			if word[i] >= 'a' && word[i] <= 'z' {
				idx.letters[word[i]-'a'].Set(uint(w))
			}
		}
	}
	return idx
}

// without returns the words containing none of the given letters, in
// dictionary order.
func (idx *letterIndex) without(letters []byte) []string {
	excluded := bitset.New(uint(len(idx.words)))
	for _, l := range letters {
		if l >= 'a' && l <= 'z' {
			excluded.InPlaceUnion(idx.letters[l-'a'])
		}
	}
	if excluded.None() {
		return idx.words
	}
	out := make([]string, 0, uint(len(idx.words))-excluded.Count())
	for i := range idx.words {
		if !excluded.Test(uint(i)) {
			out = append(out, idx.words[i])
		}
	}
	return out
}
