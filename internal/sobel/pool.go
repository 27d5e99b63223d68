package sobel

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of worker goroutines that runs job batches.
//
// Workers are started once by NewPool and live until Close. Each Run call is
// one batch with its own barrier, so a pass never shares job storage with
// the pass before it.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

type workItem struct {
	job     Job
	barrier *sync.WaitGroup
}

// NewPool starts workers goroutines.
func NewPool(workers int) (*Pool, error) {
	if workers < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWorkers, workers)
	}

	p := &Pool{
		numWorkers: workers,
		workC:      make(chan workItem, workers),
	}
	for range workers {
		go p.worker()
	}
	return p, nil
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.job.Run()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of worker goroutines.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Run hands every job to the workers and blocks until all of them have
// returned. Jobs of one batch must write disjoint regions.
//
// On a closed pool the jobs run sequentially on the calling goroutine.
func (p *Pool) Run(jobs []Job) {
	if len(jobs) == 0 {
		return
	}

	if p.closed.Load() {
		for _, j := range jobs {
			j.Run()
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(jobs))
	for _, j := range jobs {
		p.workC <- workItem{job: j, barrier: &wg}
	}
	wg.Wait()
}

// Close stops the workers once queued jobs finish. Calling Close more than
// once is safe; Run must not be called concurrently with Close.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}
