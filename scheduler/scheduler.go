// Package scheduler partitions a configured kernel's window across workers.
//
// Kernels are agnostic of how their window is split: Run accepts any valid
// sub-window. The scheduler exploits that by slicing the window along one
// axis into disjoint parts and running them concurrently. Since the parts
// are disjoint, the kernel needs no synchronization.
package scheduler

import (
	"runtime"

	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"

	"github.com/gomlx/kernels"
)

// Scheduler runs kernels, splitting their windows across a fixed number of
// workers. The zero value is not usable; create with New.
type Scheduler struct {
	workers int
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithWorkers sets the maximum number of concurrent workers. Values below 1
// are ignored.
func WithWorkers(n int) Option {
	return func(s *Scheduler) {
		if n >= 1 {
			s.workers = n
		}
	}
}

// New creates a Scheduler. By default it uses one worker per CPU.
func New(opts ...Option) *Scheduler {
	s := &Scheduler{workers: runtime.NumCPU()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Schedule executes k's full window, split along splitAxis into up to
// Scheduler-many parts run concurrently. It blocks until all parts finish
// and returns the first error, if any.
//
// splitAxis is normally an outer axis: splitting the last axis is legal but
// partitions at the vector-step granularity.
func (s *Scheduler) Schedule(k kernels.Kernel, splitAxis int) error {
	w := k.Window()
	n := min(s.workers, w.NumIterations(splitAxis))
	if n <= 1 {
		return k.Run(w, kernels.ThreadInfo{ThreadID: 0, NumThreads: 1})
	}
	klog.V(2).Infof("scheduler: running window %s in %d parts along axis %d", w, n, splitAxis)
	var group errgroup.Group
	for i := 0; i < n; i++ {
		part := w.Split(splitAxis, n, i)
		info := kernels.ThreadInfo{ThreadID: i, NumThreads: n}
		group.Go(func() error {
			return k.Run(part, info)
		})
	}
	return group.Wait()
}
