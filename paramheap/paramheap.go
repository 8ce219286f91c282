// Package paramheap provides a min-heap parameterized by its element type
// and ordering function.
package paramheap

import "container/heap"

// A Heap is a min-heap backed by a slice.
// The zero Heap is not usable; create one with New.
type Heap[E any] struct {
	s sliceHeap[E]
}

// New constructs an empty Heap ordered by less.
func New[E any](less func(E, E) bool) *Heap[E] {
	return &Heap[E]{sliceHeap[E]{less: less}}
}

// Push adds elem to the heap in O(log n) time.
func (h *Heap[E]) Push(elem E) {
	heap.Push(&h.s, elem)
}

// Pop removes and returns the minimum element in O(log n) time.
// It panics if the heap is empty.
func (h *Heap[E]) Pop() E {
	return heap.Pop(&h.s).(E)
}

// TryPop is like Pop but reports false instead of panicking when the heap
// is empty.
func (h *Heap[E]) TryPop() (E, bool) {
	if h.Len() == 0 {
		var zero E
		return zero, false
	}
	return h.Pop(), true
}

// Peek returns the minimum element without removing it.
// It panics if the heap is empty.
func (h *Heap[E]) Peek() E {
	return h.s.s[0]
}

func (h *Heap[E]) Len() int {
	return len(h.s.s)
}

// Slice returns the underlying slice, in heap order, with the minimum at
// index 0. Modifying the slice may invalidate the heap.
func (h *Heap[E]) Slice() []E {
	return h.s.s
}

// SetIndex registers a function that is called with an element and its new
// position whenever the element moves within the slice, including when it
// is first pushed. When Pop or Remove takes an element out of the heap the
// function is called with -1.
//
// Call SetIndex at most once, before the first Push.
func (h *Heap[E]) SetIndex(f func(E, int)) {
	h.s.setIndex = f
}

// Fix restores the heap ordering after the element at index i has changed.
// Indexes can be tracked using SetIndex.
func (h *Heap[E]) Fix(i int) {
	heap.Fix(&h.s, i)
}

// Remove removes and returns the element at index i.
func (h *Heap[E]) Remove(i int) E {
	return heap.Remove(&h.s, i).(E)
}

// Reset empties the heap, keeping its storage.
func (h *Heap[E]) Reset() {
	if h.s.setIndex != nil {
		for _, e := range h.s.s {
			h.s.setIndex(e, -1)
		}
	}
	clear(h.s.s)
	h.s.s = h.s.s[:0]
}

// sliceHeap adapts a slice and its callbacks to heap.Interface.
type sliceHeap[E any] struct {
	s        []E
	less     func(E, E) bool
	setIndex func(E, int)
}

func (s *sliceHeap[E]) Len() int { return len(s.s) }

func (s *sliceHeap[E]) Less(i, j int) bool { return s.less(s.s[i], s.s[j]) }

func (s *sliceHeap[E]) Swap(i, j int) {
	s.s[i], s.s[j] = s.s[j], s.s[i]
	if s.setIndex != nil {
		s.setIndex(s.s[i], i)
		s.setIndex(s.s[j], j)
	}
}

func (s *sliceHeap[E]) Push(x any) {
	s.s = append(s.s, x.(E))
	if s.setIndex != nil {
		s.setIndex(s.s[len(s.s)-1], len(s.s)-1)
	}
}

func (s *sliceHeap[E]) Pop() any {
	n := len(s.s) - 1
	e := s.s[n]
	var zero E
	s.s[n] = zero
	s.s = s.s[:n]
	if s.setIndex != nil {
		s.setIndex(e, -1)
	}
	return e
}
