// Package dictionary loads and cleans five-letter word lists.
package dictionary

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/bent101/wordle-assist/constraint"
)

var ErrEmpty = errors.New("no valid five-letter words")

//go:embed words.txt
var defaultWords string

// Default returns the embedded word list.
func Default() []string {
	words, err := Parse(strings.NewReader(defaultWords))
	if err != nil {
		panic(err)
	}
	return words
}

// Load reads a word list from path, one word per line.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word list: %w", err)
	}
	defer f.Close()

	words, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return words, nil
}

// Parse trims and lower-cases every line, keeps words of exactly five
// letters a-z, and returns them de-duplicated and sorted.
func Parse(r io.Reader) ([]string, error) {
	seen := make(map[string]struct{})
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if IsValid(word) {
			seen[word] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(seen) == 0 {
		return nil, ErrEmpty
	}

	words := make([]string, 0, len(seen))
	for w := range seen {
		words = append(words, w)
	}
	sort.Strings(words)
	return words, nil
}

// IsValid reports whether word is exactly five lowercase letters a-z.
func IsValid(word string) bool {
	if len(word) != constraint.WordLength {
		return false
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'a' || word[i] > 'z' {
			return false
		}
	}
	return true
}
