// SPDX-License-Identifier: MIT

// Package minheap implements a generic array-backed binary min-heap.
//
// The heap is stored as an implicit complete binary tree: the node at index i
// has children at 2i+1 and 2i+2. Every node compares less than or equal to
// both of its children, so the first element is always the minimum.
//
// Complexity:
//
//   - Push, Pop: O(log n)
//   - Peek, Len: O(1)
//   - FromSlice: O(n) bottom-up heapify
//
// Ordering among equal elements is unspecified. Callers that need a
// deterministic order encode a tie-breaker into the less function.
package minheap
