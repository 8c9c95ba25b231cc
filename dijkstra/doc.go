// SPDX-License-Identifier: MIT

// Package dijkstra provides a generic implementation of Dijkstra's
// shortest-path algorithm over implicitly defined graphs.
//
// Overview:
//
//   - The graph is never materialized. Callers supply an origin state, a goal
//     predicate and a neighbor function returning (next state, step cost) pairs.
//   - States may be any comparable type: grid points, (point, direction) tuples,
//     packed bitsets, anything usable as a map key.
//   - The search stops as soon as a state satisfying the goal is popped from
//     the frontier. This is correct because step costs are non-negative.
//
// Key features:
//
//   - WithReturnPath: rebuild the path from origin to destination.
//   - WithMaxSettled: bound the number of expanded states (step budget).
//   - WithContext: abort on cancellation or deadline.
//   - WithOnSettle: observe each state as it is settled.
//
// Determinism:
//
//   - Frontier entries with equal distance pop in insertion order, so the
//     returned path is stable across runs for a deterministic neighbor function.
//
// Complexity:
//
//   - Time:  O((V + E) log E) for V settled states and E generated edges.
//   - Space: O(V + E) for the best-distance map and the lazy frontier.
//
// Errors (sentinel):
//
//   - ErrNoPath           the frontier emptied before any destination was reached.
//   - ErrNegativeWeight   a neighbor function returned a negative step cost.
//   - ErrInvalidCost      a neighbor function returned a NaN step cost.
//   - ErrDistanceOverflow a path distance wrapped around the Distance type.
//   - ErrBudgetExceeded   WithMaxSettled was reached before the destination.
//   - ErrOptionViolation  an option was given an invalid argument.
//
// Example usage:
//
//	res, err := dijkstra.Find(start,
//	    func(p point.Point) bool { return p == goal },
//	    neighbors,
//	    dijkstra.WithReturnPath(),
//	)
//	if errors.Is(err, dijkstra.ErrNoPath) {
//	    // unreachable
//	}
package dijkstra
