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

// sieveSize is the block length of the log-sieve; a block buffer of
// (sieveSize+1) float64 cells stays cache-resident per worker.
const sieveSize = int64(1) << 15

// position marker for primes that divide A; never reached by a block.
const solSkip = int64(1) << 62

// Siever log-sieves one polynomial at a time over [−M, M]. Each worker
// owns one instance; only the parameters are shared.
type Siever struct {
	par    *Params
	s1, s2 []int64   // per-prime root positions in interval coordinates
	buf    []float64 // block buffer
}

// NewSiever allocates the per-worker sieve state.
func NewSiever(par *Params) *Siever {
	return &Siever{
		par: par,
		s1:  make([]int64, len(par.FB)),
		s2:  make([]int64, len(par.FB)),
		buf: make([]float64, sieveSize+1),
	}
}

// Sieve processes polynomial pol over the full interval and returns the
// candidate relations whose function value factored over the base (full)
// or left a single residual below B² (partial).
func (sv *Siever) Sieve(pol *Poly) *Batch {
	par := sv.par
	a, b := pol.AA, pol.B
	xmax := math.NewInt(par.XMax)

	// compute the two roots of Q(x) ≡ 0 (mod p) for every prime of the
	// base and shift them into interval coordinates (offset from −M).
	for i, pi := range par.FBInt {
		if a.Mod(pi).Sign() == 0 {
			// p divides A: no roots to walk for this polynomial
			sv.s1[i], sv.s2[i] = solSkip, solSkip
			continue
		}
		ainv := a.ModPow(pi.Sub(math.TWO), pi)
		t := par.TSqrt[i]
		sol1 := t.Sub(b).Mul(ainv)
		sol2 := t.Neg().Sub(b).Mul(ainv)
		sv.s1[i] = sol1.Add(xmax).Mod(pi).Int64()
		sv.s2[i] = sol2.Add(xmax).Mod(pi).Int64()
	}

	batch := new(Batch)
	for low := -par.XMax; low <= par.XMax; low += sieveSize + 1 {
		high := min(par.XMax, low+sieveSize)
		size := high - low

		buf := sv.buf[:size+1]
		for i := range buf {
			buf[i] = 0
		}

		// accumulate log₁₀ p at every root position; small primes are
		// skipped (their contribution is absorbed in the threshold).
		for i, p := range par.FB {
			if p < par.MinPrime {
				continue
			}
			sol1, sol2 := sv.s1[i], sv.s2[i]
			logp := par.TLog[i]
			step := int64(p)
			for sol1 <= size || sol2 <= size {
				if sol1 <= size {
					buf[sol1] += logp
					sol1 += step
				}
				if sol2 <= size {
					buf[sol2] += logp
					sol2 += step
				}
			}
			sv.s1[i] = sol1 - size - 1
			sv.s2[i] = sol2 - size - 1
		}

		// trial-divide the candidates above the threshold
		for i := int64(0); i <= size; i++ {
			if buf[i] > par.Thresh {
				sv.check(pol, i+low, batch)
			}
		}
	}
	return batch
}

// check trial-divides Q(x) and appends the resulting relation (if any)
// to the batch.
func (sv *Siever) check(pol *Poly, x int64, batch *Batch) {
	par := sv.par
	xi := math.NewInt(x)

	// T = Q(x) = a·x² + 2b·x + c
	T := pol.AA.Mul(xi).Add(pol.B.Mul(math.TWO)).Mul(xi).Add(pol.C)
	if T.Sign() == 0 {
		// (a·x+b)² = N: no relation, and trial division would not end
		return
	}
	nf := T.Abs()
	for _, pi := range par.FBInt {
		for {
			q, r := nf.DivMod(pi)
			if r.Sign() != 0 {
				break
			}
			nf = q
		}
	}

	X := pol.AA.Mul(xi).Add(pol.B)
	switch {
	case nf.Equals(math.ONE):
		batch.Fulls = append(batch.Fulls, &Relation{X: X, Y: T, A: pol.A})
	case nf.Cmp(par.MaxPart) < 0:
		batch.Partials = append(batch.Partials, &PartialRel{
			L:   nf,
			Rel: Relation{X: X, Y: T, A: pol.A},
		})
	}
}
