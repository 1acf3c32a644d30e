package recommend

import (
	"container/heap"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Descending orders by key, highest first, then by name ascending.
func Descending[T any, K, N constraints.Ordered](key func(T) K, name func(T) N) func(a, b T) bool {
	return func(a, b T) bool {
		ka, kb := key(a), key(b)
		if ka != kb {
			return ka > kb
		}
		return name(a) < name(b)
	}
}

// worstFirst keeps the weakest retained item at the root.
type worstFirst[T any] struct {
	items  []T
	better func(a, b T) bool
}

func (h *worstFirst[T]) Len() int           { return len(h.items) }
func (h *worstFirst[T]) Less(i, j int) bool { return h.better(h.items[j], h.items[i]) }
func (h *worstFirst[T]) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *worstFirst[T]) Push(x any)         { h.items = append(h.items, x.(T)) }
func (h *worstFirst[T]) Pop() any {
	n := len(h.items)
	item := h.items[n-1]
	h.items = h.items[:n-1]
	return item
}

// TopN returns the n best items, best first, where better(a, b) reports
// whether a ranks ahead of b. It only keeps n items in memory; the result
// equals sorting everything and truncating as long as better is a strict
// total order.
func TopN[T any](items []T, n int, better func(a, b T) bool) []T {
	if n <= 0 || len(items) == 0 {
		return nil
	}
	h := &worstFirst[T]{items: make([]T, 0, min(n, len(items))), better: better}
	for _, it := range items {
		if h.Len() < n {
			heap.Push(h, it)
			continue
		}
		if better(it, h.items[0]) {
			h.items[0] = it
			heap.Fix(h, 0)
		}
	}
	out := h.items
	slices.SortFunc(out, func(a, b T) int {
		switch {
		case better(a, b):
			return -1
		case better(b, a):
			return 1
		}
		return 0
	})
	return out
}
