// SPDX-License-Identifier: MIT

package dijkstra

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sentinel errors returned by Find and ShortestDistance.
var (
	// ErrNoPath indicates the frontier emptied before a destination state was popped.
	ErrNoPath = errors.New("dijkstra: no path to a destination state")

	// ErrNegativeWeight indicates a neighbor function produced a negative step cost.
	ErrNegativeWeight = errors.New("dijkstra: negative step cost encountered")

	// ErrInvalidCost indicates a neighbor function produced a NaN step cost.
	ErrInvalidCost = errors.New("dijkstra: step cost is not a number")

	// ErrDistanceOverflow indicates a path distance no longer fits the Distance type.
	ErrDistanceOverflow = errors.New("dijkstra: path distance overflows distance type")

	// ErrBudgetExceeded indicates the MaxSettled budget ran out before a destination was found.
	ErrBudgetExceeded = errors.New("dijkstra: settled-state budget exceeded")

	// ErrOptionViolation indicates an option was given an invalid argument.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Distance is the set of numeric types usable as path costs.
type Distance interface {
	constraints.Integer | constraints.Float
}

// Edge is one outgoing transition produced by a neighbor function.
type Edge[S comparable, D Distance] struct {
	To   S // next state
	Cost D // non-negative incremental cost
}

// Result describes the cheapest route found to a destination state.
type Result[S comparable, D Distance] struct {
	Destination S   // the first destination state popped from the frontier
	Distance    D   // total cost from origin to Destination
	Path        []S // origin..Destination inclusive; nil unless WithReturnPath
	Settled     int // number of states expanded during the search
}

// Options configures a search. Build it through the With* functional options.
type Options struct {
	// Ctx allows cancellation and deadlines. Checked once per settled state.
	Ctx context.Context

	// ReturnPath records predecessors and fills Result.Path.
	ReturnPath bool

	// MaxSettled, if > 0, caps how many states may be expanded.
	MaxSettled int

	// OnSettle holds a func(S, D) called with each state and its final
	// distance before expansion. Find asserts it to its own S and D.
	OnSettle any

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns Options with a background context, no path
// reconstruction and no settled-state budget.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		ReturnPath: false,
		MaxSettled: 0,
	}
}

// WithContext sets a context whose cancellation aborts the search.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithReturnPath enables predecessor tracking so Result.Path is populated.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxSettled bounds the number of states the search may expand.
//
//	n > 0: stop with ErrBudgetExceeded after n expansions
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSettled(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSettled cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSettled = n
	}
}

// WithOnSettle registers fn to be called for every state as it is settled,
// in non-decreasing distance order. S and D must match the types of the
// search it is passed to; a mismatch is reported as ErrOptionViolation.
func WithOnSettle[S comparable, D Distance](fn func(state S, dist D)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}
