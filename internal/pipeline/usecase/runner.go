package usecase

import "sync"

// runner tracks jobs with an in-flight background run in this process.
// Acquire must succeed before a run starts, so a job can never be processed
// twice concurrently.
type runner struct {
	mu     sync.Mutex
	active map[string]struct{}
}

func newRunner() *runner {
	return &runner{
		active: make(map[string]struct{}),
	}
}

func (r *runner) acquire(jobID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, busy := r.active[jobID]; busy {
		return false
	}
	r.active[jobID] = struct{}{}
	return true
}

func (r *runner) release(jobID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.active, jobID)
}
