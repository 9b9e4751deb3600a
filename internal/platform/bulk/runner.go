// Package bulk runs independent per-item jobs where one failing item must not
// abort the batch.
package bulk

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc/panics"
)

const releaseTimeout = 5 * time.Second

// Outcome is the result of one item, reported at the item's input index.
type Outcome[T any] struct {
	Index int
	Value T
	Err   error
}

// Run calls fn for every item. With workers <= 1 items run sequentially in input
// order; otherwise they run on a bounded ants pool. Outcomes are always returned in
// input order. A panic inside fn is recovered and reported as that item's error.
// Items not yet started when ctx is cancelled report ctx.Err().
func Run[In, Out any](ctx context.Context, workers int, items []In, fn func(context.Context, In) (Out, error)) ([]Outcome[Out], error) {
	outcomes := make([]Outcome[Out], len(items))
	if len(items) == 0 {
		return outcomes, nil
	}

	if workers <= 1 || len(items) == 1 {
		for i, item := range items {
			outcomes[i] = runOne(ctx, i, item, fn)
		}
		return outcomes, nil
	}

	if workers > len(items) {
		workers = len(items)
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer func() {
		_ = pool.ReleaseTimeout(releaseTimeout)
	}()

	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			outcomes[i] = runOne(ctx, i, item, fn)
		}); err != nil {
			wg.Done()
			outcomes[i] = Outcome[Out]{Index: i, Err: fmt.Errorf("submit item %d: %w", i, err)}
		}
	}
	wg.Wait()

	return outcomes, nil
}

func runOne[In, Out any](ctx context.Context, index int, item In, fn func(context.Context, In) (Out, error)) Outcome[Out] {
	out := Outcome[Out]{Index: index}
	if err := ctx.Err(); err != nil {
		out.Err = err
		return out
	}

	recovered := panics.Try(func() {
		out.Value, out.Err = fn(ctx, item)
	})
	if recovered != nil {
		out.Err = fmt.Errorf("item %d panicked: %w", index, recovered.AsError())
	}

	return out
}
