// Package kernels implements windowed, vectorized CPU compute kernels.
//
// A kernel's life cycle has two phases. Configure runs once: it validates
// the tensors, resolves the type-specialized compute function, computes the
// maximal iteration window and registers the padding each tensor needs.
// Run then executes the resolved function over a window -- either the full
// configured window or any valid sub-window of it, so an external scheduler
// (see the scheduler package) can partition the work across workers.
//
// Kernels hold no mutable state across Run calls: concurrent Runs over
// disjoint sub-windows of the same instance need no synchronization.
// Configuration itself is not thread-safe and must happen-before any Run.
package kernels

import (
	"github.com/gomlx/kernels/windows"
)

// ThreadInfo identifies the worker a Run call executes on, when driven by a
// scheduler. Kernels that don't care can ignore it.
type ThreadInfo struct {
	ThreadID   int
	NumThreads int
}

// Kernel is the surface schedulers work against.
type Kernel interface {
	// Window returns the full iteration window computed at configuration.
	Window() windows.Window

	// Run executes the kernel over w, which must be a valid sub-window of
	// Window().
	Run(w windows.Window, info ThreadInfo) error
}

// kernelWindow is the embeddable configured-window state shared by all
// kernels.
type kernelWindow struct {
	window     windows.Window
	configured bool
}

// configureWindow records the window and marks the kernel configured.
func (k *kernelWindow) configureWindow(w windows.Window) {
	k.window = w
	k.configured = true
}

// IsConfigured returns whether configuration completed successfully.
func (k *kernelWindow) IsConfigured() bool { return k.configured }

// Window returns the window recorded at configuration time.
func (k *kernelWindow) Window() windows.Window { return k.window }
