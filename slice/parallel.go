package slice

import (
	"sort"
	"sync"

	"github.com/hexlattice/contourpress/mesh"
	"github.com/hexlattice/contourpress/stage"
)

// job is one (stage, height) pair awaiting BuildSlice, the unit of work
// Parallel fans out across workers.
type job struct {
	st *stage.Stage
	h  float64
}

// Parallel slices m the same as a sequential Iterator walk, but
// distributes BuildSlice calls across workers goroutines, mirroring
// the fixed worker-pool-with-reordering pattern the renderer uses for
// its own per-cell fan-out. Each slice height is independent of every
// other once its owning Stage exists, so the only ordering constraint
// is the final ascending-height result, which this restores after the
// pool drains. workers <= 1 runs sequentially.
func Parallel(m *mesh.Mesh, cfg Config, workers int) ([]Slice, error) {
	it := NewIterator(m, cfg)

	var jobs []job
	for {
		st, h, ok, err := it.pending()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		jobs = append(jobs, job{st: st, h: h})
		it.next = h + cfg.LayerHeight
	}

	if workers < 1 {
		workers = 1
	}
	if len(jobs) == 0 {
		return nil, nil
	}

	results := make([]Slice, len(jobs))
	errs := make([]error, len(jobs))

	jobCh := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobCh {
				sl, err := BuildSlice(jobs[i].st, jobs[i].h)
				if err != nil {
					errs[i] = err
					continue
				}
				results[i] = *sl
			}
		}()
	}
	for i := range jobs {
		jobCh <- i
	}
	close(jobCh)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Height < results[j].Height })
	return results, nil
}
