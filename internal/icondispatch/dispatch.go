// Package icondispatch serializes calls onto a single locked OS thread.
//
// The Windows shell backend needs every COM call to originate from the
// thread whose apartment was initialized, so it funnels all work through one
// Dispatcher. The package itself is platform-neutral: setup, calls, and
// teardown are plain functions, which also keeps it testable everywhere.
package icondispatch

import (
	"errors"
	"runtime"
	"sync"
)

// ErrClosed is returned by Do after Close.
var ErrClosed = errors.New("icondispatch: dispatcher closed")

type call struct {
	fn   func()
	done chan struct{}
}

// Dispatcher owns one locked OS thread. Requests submitted through Do run on
// that thread one at a time, in the order they reach the channel.
type Dispatcher struct {
	calls chan call
	quit  chan struct{}
	once  sync.Once
}

// New starts the dispatch thread, runs setup on it, and returns once setup
// has finished. If setup fails the thread exits and nothing is leaked.
// teardown runs on the same thread when the Dispatcher is closed.
func New(setup func() error, teardown func()) (*Dispatcher, error) {
	d := &Dispatcher{
		calls: make(chan call),
		quit:  make(chan struct{}),
	}
	ready := make(chan error, 1)
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		if setup != nil {
			if err := setup(); err != nil {
				ready <- err
				return
			}
		}
		ready <- nil
		for {
			select {
			case c := <-d.calls:
				c.fn()
				close(c.done)
			case <-d.quit:
				if teardown != nil {
					teardown()
				}
				return
			}
		}
	}()
	if err := <-ready; err != nil {
		return nil, err
	}
	return d, nil
}

// Do runs fn on the dispatch thread and waits for it to finish. Callers from
// multiple goroutines serialize FIFO through the request channel.
func (d *Dispatcher) Do(fn func()) error {
	c := call{fn: fn, done: make(chan struct{})}
	select {
	case d.calls <- c:
	case <-d.quit:
		return ErrClosed
	}
	<-c.done
	return nil
}

// Close runs teardown on the dispatch thread and releases it. Pending Do
// calls that have not been accepted yet fail with ErrClosed; an in-flight
// call completes first. Close is idempotent.
func (d *Dispatcher) Close() {
	d.once.Do(func() { close(d.quit) })
}
