// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/aoclib/minheap"
)

// Find runs Dijkstra's algorithm from origin until a state satisfying
// isDestination is popped from the frontier.
//
// neighbors returns every transition out of a state with its non-negative
// step cost; it may return none. Duplicate or parallel transitions are
// harmless, the cheaper one wins.
//
// Behavior:
//  1. Seed the frontier with (0, origin).
//  2. Pop the cheapest entry. Entries whose distance is worse than the best
//     known distance for their state are stale and skipped.
//  3. If the state satisfies isDestination, stop and return it.
//  4. Otherwise relax every transition: a strictly cheaper candidate becomes
//     the new best, is pushed onto the frontier and records its predecessor.
//
// Returns ErrNoPath if the frontier empties first. The origin itself may be a
// destination, in which case the distance is zero.
func Find[S comparable, D Distance](
	origin S,
	isDestination func(S) bool,
	neighbors func(S) []Edge[S, D],
	opts ...Option,
) (Result[S, D], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result[S, D]{}, cfg.err
	}
	if isDestination == nil || neighbors == nil {
		return Result[S, D]{}, fmt.Errorf("%w: nil destination or neighbor function", ErrOptionViolation)
	}

	r := &runner[S, D]{
		options:       cfg,
		isDestination: isDestination,
		neighbors:     neighbors,
		best:          make(map[S]D),
	}
	if cfg.OnSettle != nil {
		fn, ok := cfg.OnSettle.(func(S, D))
		if !ok {
			return Result[S, D]{}, fmt.Errorf("%w: OnSettle hook is %T, want %T",
				ErrOptionViolation, cfg.OnSettle, (func(S, D))(nil))
		}
		r.onSettle = fn
	}
	if cfg.ReturnPath {
		r.prev = make(map[S]S)
	}

	r.init(origin)
	return r.process(origin)
}

// ShortestDistance returns only the total cost of the cheapest path from
// origin to any destination state. Errors are those of Find.
func ShortestDistance[S comparable, D Distance](
	origin S,
	isDestination func(S) bool,
	neighbors func(S) []Edge[S, D],
	opts ...Option,
) (D, error) {
	res, err := Find(origin, isDestination, neighbors, opts...)
	if err != nil {
		var zero D
		return zero, err
	}
	return res.Distance, nil
}

// runner holds the mutable state for a single search.
type runner[S comparable, D Distance] struct {
	options       Options
	isDestination func(S) bool
	neighbors     func(S) []Edge[S, D]
	onSettle      func(S, D)

	best     map[S]D                    // best known distance per state
	prev     map[S]S                    // predecessor on the best path; nil unless ReturnPath
	frontier *minheap.Heap[entry[S, D]] // stale entries are skipped on pop
	seq      uint64                     // insertion counter used to break distance ties
	settled  int
}

// entry is one frontier record.
type entry[S comparable, D Distance] struct {
	dist  D
	seq   uint64
	state S
}

func entryLess[S comparable, D Distance](a, b entry[S, D]) bool {
	if a.dist != b.dist {
		return a.dist < b.dist
	}
	return a.seq < b.seq
}

func (r *runner[S, D]) init(origin S) {
	r.frontier = minheap.New(entryLess[S, D])
	var zero D
	r.best[origin] = zero
	r.push(origin, zero)
}

func (r *runner[S, D]) push(s S, d D) {
	r.frontier.Push(entry[S, D]{dist: d, seq: r.seq, state: s})
	r.seq++
}

func (r *runner[S, D]) process(origin S) (Result[S, D], error) {
	ctx := r.options.Ctx
	for {
		e, ok := r.frontier.Pop()
		if !ok {
			return Result[S, D]{Settled: r.settled}, ErrNoPath
		}
		// Skip entries superseded by a cheaper push.
		if e.dist != r.best[e.state] {
			continue
		}
		if err := ctx.Err(); err != nil {
			return Result[S, D]{Settled: r.settled}, fmt.Errorf("dijkstra: search aborted: %w", err)
		}
		if r.isDestination(e.state) {
			res := Result[S, D]{Destination: e.state, Distance: e.dist, Settled: r.settled}
			if r.prev != nil {
				res.Path = r.pathTo(origin, e.state)
			}
			return res, nil
		}
		if r.options.MaxSettled > 0 && r.settled >= r.options.MaxSettled {
			return Result[S, D]{Settled: r.settled}, fmt.Errorf("%w: %d states expanded", ErrBudgetExceeded, r.settled)
		}
		r.settled++
		if r.onSettle != nil {
			r.onSettle(e.state, e.dist)
		}
		if err := r.relax(e.state, e.dist); err != nil {
			return Result[S, D]{Settled: r.settled}, err
		}
	}
}

// relax pushes every strictly improved neighbor of u.
func (r *runner[S, D]) relax(u S, du D) error {
	for _, edge := range r.neighbors(u) {
		if edge.Cost != edge.Cost {
			return fmt.Errorf("%w: %v→%v", ErrInvalidCost, u, edge.To)
		}
		if edge.Cost < 0 {
			return fmt.Errorf("%w: %v→%v cost=%v", ErrNegativeWeight, u, edge.To, edge.Cost)
		}
		cand := du + edge.Cost
		if cand < du {
			return fmt.Errorf("%w: %v→%v %v+%v", ErrDistanceOverflow, u, edge.To, du, edge.Cost)
		}
		if known, ok := r.best[edge.To]; ok && known <= cand {
			continue
		}
		r.best[edge.To] = cand
		if r.prev != nil {
			r.prev[edge.To] = u
		}
		r.push(edge.To, cand)
	}
	return nil
}

// pathTo walks predecessor links from dest back to origin and reverses them.
func (r *runner[S, D]) pathTo(origin, dest S) []S {
	path := []S{dest}
	for cur := dest; cur != origin; {
		cur = r.prev[cur]
		path = append(path, cur)
	}
	slices.Reverse(path)
	return path
}
