// SPDX-License-Identifier: MIT

package minheap

import (
	"cmp"
	"iter"
)

// Heap is a binary min-heap ordered by a less function.
// The zero value is not usable; construct one with New or a From* helper.
type Heap[T any] struct {
	items []T
	less  func(a, b T) bool
}

// New returns an empty heap ordered by less.
func New[T any](less func(a, b T) bool) *Heap[T] {
	if less == nil {
		panic("minheap: nil less function")
	}
	return &Heap[T]{less: less}
}

// NewOrdered returns an empty heap over a naturally ordered type.
func NewOrdered[T cmp.Ordered]() *Heap[T] {
	return New(cmp.Less[T])
}

// FromSlice builds a heap that takes ownership of items and heapifies it in place.
// The complexity is O(n) where n = len(items).
func FromSlice[T any](items []T, less func(a, b T) bool) *Heap[T] {
	h := New(less)
	h.items = items
	for i := len(h.items)/2 - 1; i >= 0; i-- {
		h.down(i)
	}
	return h
}

// FromOrdered is FromSlice with the natural ordering of T.
func FromOrdered[T cmp.Ordered](items []T) *Heap[T] {
	return FromSlice(items, cmp.Less[T])
}

// FromSeq collects seq and heapifies the result.
func FromSeq[T any](seq iter.Seq[T], less func(a, b T) bool) *Heap[T] {
	var items []T
	for v := range seq {
		items = append(items, v)
	}
	return FromSlice(items, less)
}

// Len returns the number of items in the heap.
func (h *Heap[T]) Len() int { return len(h.items) }

// IsEmpty reports whether the heap holds no items.
func (h *Heap[T]) IsEmpty() bool { return len(h.items) == 0 }

// Clear removes every item but keeps the allocated capacity.
func (h *Heap[T]) Clear() {
	clear(h.items)
	h.items = h.items[:0]
}

// Push inserts x and restores the heap property by sifting it up.
func (h *Heap[T]) Push(x T) {
	h.items = append(h.items, x)
	h.up(len(h.items) - 1)
}

// Peek returns the minimum item without removing it.
func (h *Heap[T]) Peek() (T, bool) {
	if len(h.items) == 0 {
		var zero T
		return zero, false
	}
	return h.items[0], true
}

// Pop removes and returns the minimum item. The boolean is false if the heap is empty.
func (h *Heap[T]) Pop() (T, bool) {
	n := len(h.items)
	if n == 0 {
		var zero T
		return zero, false
	}
	top := h.items[0]
	last := n - 1
	h.items[0] = h.items[last]
	var zero T
	h.items[last] = zero // drop the reference held by the vacated slot
	h.items = h.items[:last]
	if last > 0 {
		h.down(0)
	}
	return top, true
}

// Drain returns an iterator that pops items in ascending order until the heap
// is empty or the consumer stops.
func (h *Heap[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := h.Pop()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

func (h *Heap[T]) up(j int) {
	for j > 0 {
		i := (j - 1) / 2 // parent
		if !h.less(h.items[j], h.items[i]) {
			break
		}
		h.items[i], h.items[j] = h.items[j], h.items[i]
		j = i
	}
}

func (h *Heap[T]) down(i int) {
	n := len(h.items)
	for {
		j := 2*i + 1
		if j >= n {
			return
		}
		if r := j + 1; r < n && h.less(h.items[r], h.items[j]) {
			j = r
		}
		if !h.less(h.items[j], h.items[i]) {
			return
		}
		h.items[i], h.items[j] = h.items[j], h.items[i]
		i = j
	}
}
