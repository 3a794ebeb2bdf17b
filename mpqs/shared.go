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
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/bfix/mpqs/logger"
	"github.com/bfix/mpqs/math"
)

// FactorShared runs one sieve worker per hardware thread. The workers
// share the polynomial cursor (serialized inside PolyGen) and the
// relation manager; the calling goroutine acts as coordinator and runs
// the solver whenever the relation count passes the factor-base size.
func FactorShared(n *math.Int) *math.Int {
	par := NewParams(n)
	gen := NewPolyGen(par)
	mgr := NewManager()
	target := len(par.FB)

	var stop atomic.Bool
	ready := make(chan struct{}, 1)
	numWorker := runtime.NumCPU()
	logger.Printf(logger.INFO, "[mpqs] starting %d sieve workers", numWorker)

	wg := new(sync.WaitGroup)
	for w := 0; w < numWorker; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sv := NewSiever(par)
			// workers observe the stop flag at polynomial boundaries
			for !stop.Load() {
				if mgr.Merge(sv.Sieve(gen.Next())) > target {
					select {
					case ready <- struct{}{}:
					default:
					}
				}
			}
		}()
	}

	var factor *math.Int
	for factor == nil {
		<-ready
		factor = Solve(par, mgr.Snapshot())
	}
	stop.Store(true)
	wg.Wait()
	mgr.LogYield()
	return factor
}
