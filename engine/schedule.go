package engine

import (
	"runtime"
	"sync"
)

// effectiveWorkers resolves a configured worker count to a concrete value,
// falling back to GOMAXPROCS when unset.
func effectiveWorkers(workers int) int {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	if workers < 1 {
		workers = 1
	}

	return workers
}

func clampWorkers(workers, tasks int) int {
	if tasks < 1 {
		return 1
	}

	if workers < 1 {
		workers = 1
	}

	if workers > tasks {
		return tasks
	}

	return workers
}

// parallelFor splits [0, tasks) into up to workers contiguous chunks and
// runs fn on each chunk concurrently, returning the first error observed
// (if any) after every chunk has completed. Each stage in the pipeline is
// a barrier: parallelFor does not return until every worker is done.
func parallelFor(workers, tasks int, fn func(worker, start, end int) error) error {
	if tasks <= 0 {
		return nil
	}

	if workers <= 1 || tasks == 1 {
		return fn(0, 0, tasks)
	}

	chunk := (tasks + workers - 1) / workers

	var wg sync.WaitGroup

	var errOnce sync.Once

	var err error

	for w := 0; w < workers; w++ {
		start := w * chunk
		if start >= tasks {
			break
		}

		end := start + chunk
		if end > tasks {
			end = tasks
		}

		wg.Add(1)

		go func(worker, start, end int) {
			defer wg.Done()

			if e := fn(worker, start, end); e != nil {
				errOnce.Do(func() {
					err = e
				})
			}
		}(w, start, end)
	}

	wg.Wait()

	return err
}

// parallelFor2D splits the flattened range [0, outer) x [0, inner) used by
// the two transpose stages (spec range [0,P) x [0,ny_local) and
// [0,P) x [0,nx_local)) across workers. fn receives the unflattened
// (outer, inner) pair — (i, k) for the transpose stages — for every point
// it is responsible for.
func parallelFor2D(workers, outer, inner int, fn func(outerIdx, innerIdx int) error) error {
	total := outer * inner
	if total <= 0 {
		return nil
	}

	return parallelFor(workers, total, func(_, start, end int) error {
		for idx := start; idx < end; idx++ {
			o := idx / inner
			n := idx % inner

			if err := fn(o, n); err != nil {
				return err
			}
		}

		return nil
	})
}
