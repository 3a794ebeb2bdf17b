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

package mpqs

import (
	"context"
	"runtime"

	"github.com/bfix/mpqs/concurrent"
	"github.com/bfix/mpqs/logger"
	"github.com/bfix/mpqs/math"
)

// sieveRun implements the message-passing variant on the dispatcher: a
// dedicated generator goroutine feeds polynomials into the task queue,
// workers return relation batches and the evaluator (the only goroutine
// touching the aggregate) merges them and runs the solver.
type sieveRun struct {
	par    *Params
	mgr    *Manager
	target int
	factor *math.Int
}

// Worker sieves polynomials until cancelled.
func (s *sieveRun) Worker(ctx context.Context, n int, taskCh <-chan *Poly, resCh chan<- *Batch) {
	sv := NewSiever(s.par)
	for {
		select {
		case <-ctx.Done():
			return

		case pol := <-taskCh:
			select {
			case resCh <- sv.Sieve(pol):
			case <-ctx.Done():
				return
			}
		}
	}
}

// Eval merges a batch; once enough relations exist the solver runs and
// a found divisor terminates the dispatcher.
func (s *sieveRun) Eval(b *Batch) bool {
	if s.mgr.Merge(b) > s.target {
		if g := Solve(s.par, s.mgr.Snapshot()); g != nil {
			s.factor = g
			return true
		}
	}
	return false
}

// FactorMessage runs the message-passing variant: no state is shared
// between generator, workers and coordinator except through channels.
func FactorMessage(n *math.Int) *math.Int {
	par := NewParams(n)
	run := &sieveRun{
		par:    par,
		mgr:    NewManager(),
		target: len(par.FB),
	}
	numWorker := runtime.NumCPU()
	logger.Printf(logger.INFO, "[mpqs] starting %d sieve workers", numWorker)
	d := concurrent.NewDispatcher[*Poly, *Batch](context.Background(), numWorker, numWorker, run)

	// generator task: feeds strictly increasing polynomials until the
	// dispatcher closes.
	gen := NewPolyGen(par)
	go func() {
		for d.Process(gen.Next()) {
		}
	}()

	d.Wait()
	run.mgr.LogYield()
	return run.factor
}
