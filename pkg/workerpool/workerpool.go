// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"
)

// Result pairs an item's output with the error its processing returned.
type Result[T, R any] struct {
	Item  T
	Value R
	Err   error
}

// Map runs process for every item on at most workerCount goroutines. A failing
// item does not stop the others; each outcome is reported in input order.
// Items not started before ctx is canceled carry ctx.Err().
func Map[T, R any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) (R, error),
) []Result[T, R] {
	if workerCount <= 0 {
		workerCount = 1
	}

	results := make([]Result[T, R], len(items))
	tasks := make(chan int, workerCount)
	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range tasks {
				item := items[idx]
				if err := ctx.Err(); err != nil {
					results[idx] = Result[T, R]{Item: item, Err: err}
					continue
				}
				value, err := process(ctx, item)
				results[idx] = Result[T, R]{Item: item, Value: value, Err: err}
			}
		}()
	}

	for idx := range items {
		tasks <- idx
	}
	close(tasks)
	wg.Wait()

	return results
}
