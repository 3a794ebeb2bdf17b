//----------------------------------------------------------------------
// This file is part of mpqs.
// Copyright (C) 2024-present, Bernd Fix  >Y<
//
// mpqs is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// mpqs is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL3.0-or-later
//----------------------------------------------------------------------

package concurrent

import (
	"context"
	"sync"
	"sync/atomic"
)

// Dispatchable interface
type Dispatchable[T, R any] interface {

	// Worker consumes tasks and posts results until the context is
	// cancelled. Called once per worker go-routine.
	Worker(ctx context.Context, n int, taskCh <-chan T, resCh chan<- R)

	// Eval receives results on the dispatcher go-routine; returning
	// true terminates the dispatcher.
	Eval(result R) bool
}

// Dispatcher manages worker go-routines over bounded task and result
// queues. Task producers block once the backlog is full; workers block
// posting results while the evaluator is busy.
type Dispatcher[T, R any] struct {
	taskCh  chan T
	resCh   chan R
	done    chan struct{}
	cancel  context.CancelFunc
	running atomic.Bool
}

// NewDispatcher runs a new dispatcher with given number of workers,
// queue backlog and a Dispatchable implementation.
func NewDispatcher[T, R any](ctx context.Context, numWorker, backlog int, disp Dispatchable[T, R]) *Dispatcher[T, R] {
	ctxD, cancel := context.WithCancel(ctx)
	d := &Dispatcher[T, R]{
		taskCh: make(chan T, backlog),
		resCh:  make(chan R, backlog),
		done:   make(chan struct{}),
		cancel: cancel,
	}

	// start worker go-routines
	wg := new(sync.WaitGroup)
	for n := 0; n < numWorker; n++ {
		wg.Add(1)
		go func(num int) {
			defer wg.Done()
			disp.Worker(ctxD, num, d.taskCh, d.resCh)
		}(n)
	}

	// run dispatcher loop
	d.running.Store(true)
	go func() {
		// clean-up on exit: cancel workers, drain pending results so
		// no worker stays blocked on the result queue, then close.
		defer func() {
			d.running.Store(false)
			cancel()
			go func() {
				for range d.resCh {
				}
			}()
			wg.Wait()
			close(d.resCh)
			close(d.done)
		}()
		for {
			select {
			// handle termination
			case <-ctxD.Done():
				return

			// handle result
			case x := <-d.resCh:
				if disp.Eval(x) {
					return
				}
			}
		}
	}()
	return d
}

// Process a task. Returns false if the dispatcher is closed.
func (d *Dispatcher[T, R]) Process(task T) bool {
	if !d.running.Load() {
		return false
	}
	select {
	case d.taskCh <- task:
		return true
	case <-d.done:
		return false
	}
}

// Quit dispatcher run
func (d *Dispatcher[T, R]) Quit() {
	d.cancel()
}

// Wait for the dispatcher (and all workers) to terminate.
func (d *Dispatcher[T, R]) Wait() {
	<-d.done
}
