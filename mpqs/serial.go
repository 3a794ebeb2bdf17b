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
	"github.com/bfix/mpqs/math"
)

// FactorSerial runs the sieve single-threaded: one polynomial at a
// time until enough relations are collected, then the solver; on a
// failed solve collection continues.
func FactorSerial(n *math.Int) *math.Int {
	par := NewParams(n)
	gen := NewPolyGen(par)
	sv := NewSiever(par)
	mgr := NewManager()
	target := len(par.FB)

	last := 0
	for {
		count := mgr.Merge(sv.Sieve(gen.Next()))
		if count > target && count > last {
			last = count
			if g := Solve(par, mgr.Snapshot()); g != nil {
				mgr.LogYield()
				return g
			}
		}
	}
}
