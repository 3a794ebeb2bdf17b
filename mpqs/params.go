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
	gomath "math"
	"math/big"

	"github.com/ALTree/bigfloat"
	"github.com/bfix/mpqs/logger"
	"github.com/bfix/mpqs/math"
)

// Params holds the number to be factorized together with the factor
// base and all sieve parameters derived from it. Instances are shared
// read-only between sieve workers.
type Params struct {
	N        *math.Int   // number to be factorized
	Bound    uint64      // smoothness bound B
	FB       []uint64    // factor base: 2 and odd primes p ≤ B with (N\p) = 1
	FBInt    []*math.Int // factor base primes as big integers
	TSqrt    []*math.Int // tsqrt[i]² ≡ N (mod FB[i]) for i > 0
	TLog     []float64   // log10 of factor base primes
	XMax     int64       // sieve interval half-width M
	Thresh   float64     // accumulated-log threshold for candidates
	MinPrime uint64      // primes below this are skipped in the log-sieve
	MaxPart  *math.Int   // acceptance bound B² for partial residuals
	RootA    *math.Int   // start value for the polynomial cursor
}

var ln10 = bigfloat.Log(big.NewFloat(10))

// log10 of a positive Int; kept in big-float precision until the final
// conversion (N spans up to 70 digits).
func log10(x *math.Int) float64 {
	l, _ := new(big.Float).Quo(bigfloat.Log(x.Float()), ln10).Float64()
	return l
}

// NewParams derives the factor base and all sieve parameters for n.
// The tuning constants (B = ⌊5·log10(n)²⌋, M = 240·k, the 0.735
// threshold multiplier, fudge/4 and minPrime = 3·thresh) are calibrated
// for inputs of 40-70 digits.
func NewParams(n *math.Int) *Params {
	par := &Params{N: n}

	lg := log10(n)
	par.Bound = uint64(5 * lg * lg)
	for _, p := range math.SmallPrimes(par.Bound) {
		if p == 2 || n.Legendre(math.NewInt(int64(p))) == 1 {
			par.FB = append(par.FB, p)
		}
	}
	k := len(par.FB)
	par.FBInt = make([]*math.Int, k)
	par.TSqrt = make([]*math.Int, k)
	par.TLog = make([]float64, k)
	for i, p := range par.FB {
		pi := math.NewInt(int64(p))
		par.FBInt[i] = pi
		par.TSqrt[i], _ = math.SqrtModP(n, pi)
		par.TLog[i] = gomath.Log10(float64(p))
	}
	par.TSqrt[0] = math.ZERO
	par.MaxPart = math.NewInt(int64(par.Bound)).Pow(2)

	par.XMax = int64(k) * 240
	root2n := n.Mul(math.TWO).Sqrt()
	mval := root2n.Mul(math.NewInt(par.XMax)).Rsh(1)
	thresh := log10(mval) * 0.735
	par.MinPrime = uint64(3 * thresh)
	fudge := 0.0
	for i, p := range par.FB {
		if p < par.MinPrime {
			fudge += par.TLog[i]
		}
	}
	par.Thresh = thresh - fudge/4

	roota := root2n.Div(math.NewInt(par.XMax)).Sqrt()
	if roota.Bit(0) == 0 {
		roota = roota.Add(math.ONE)
	}
	if roota.Cmp(math.THREE) < 0 {
		roota = math.THREE
	}
	par.RootA = roota

	logger.Printf(logger.INFO, "[mpqs] factor base: %d primes, largest %d", k, par.FB[k-1])
	logger.Printf(logger.INFO, "[mpqs] interval ±%d, threshold %.3f, min. sieve prime %d",
		par.XMax, par.Thresh, par.MinPrime)
	logger.Printf(logger.DBG, "[mpqs] polynomial cursor starts at %v", roota)
	return par
}
