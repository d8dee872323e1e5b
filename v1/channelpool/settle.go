package channelpool

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Outcome is the settled result of one fan-out item. Index is the item's
// position in the stage input.
type Outcome[T any] struct {
	Index int
	Value T
	Err   error
}

// Fulfilled reports whether the item succeeded.
func (o Outcome[T]) Fulfilled() bool { return o.Err == nil }

// SettleAll runs fn for every item concurrently and waits until every call
// has returned. A failing item never cancels the others. The outcomes are
// returned in input order. limit <= 0 means no concurrency limit.
func SettleAll[In, Out any](ctx context.Context, limit int, items []In, fn func(context.Context, In) (Out, error)) []Outcome[Out] {
	outcomes := make([]Outcome[Out], len(items))

	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, item := range items {
		g.Go(func() error {
			v, err := fn(ctx, item)
			// Every goroutine writes a distinct element, and Wait orders the
			// writes before the read below, so no lock is needed.
			outcomes[i] = Outcome[Out]{Index: i, Value: v, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

// Fulfilled returns the values of the successful outcomes, keeping their order.
func Fulfilled[T any](outcomes []Outcome[T]) []T {
	values := make([]T, 0, len(outcomes))
	for _, o := range outcomes {
		if o.Fulfilled() {
			values = append(values, o.Value)
		}
	}
	return values
}

// Rejected returns the failed outcomes, keeping their order.
func Rejected[T any](outcomes []Outcome[T]) []Outcome[T] {
	var failed []Outcome[T]
	for _, o := range outcomes {
		if !o.Fulfilled() {
			failed = append(failed, o)
		}
	}
	return failed
}
