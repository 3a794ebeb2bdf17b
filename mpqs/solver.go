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
	"github.com/bfix/mpqs/logger"
	"github.com/bfix/mpqs/math"
)

// Solve reduces the exponent-parity matrix of the given relations over
// GF(2) and converts null-space vectors into divisor candidates. It
// returns a non-trivial divisor of N, or nil if no null vector yields
// one (the caller then collects more relations).
func Solve(par *Params, rels []*Relation) *math.Int {
	rows := len(rels)
	m := make([]*math.Int, rows) // parity vectors over [−1] ++ FB
	h := make([]*math.Int, rows) // history: which relations formed the row
	for j, rel := range rels {
		m[j] = parityVector(par, rel.Y)
		h[j] = math.ONE.Lsh(uint(j))
	}

	reduceRowEchelon(m, h, len(par.FB)+1)

	nulls := 0
	for j := range m {
		if m[j].Sign() != 0 {
			continue
		}
		nulls++
		if g := extractFactor(par, rels, h[j]); g != nil {
			logger.Printf(logger.INFO, "[solver] divisor found: %v", g)
			return g
		}
	}
	logger.Printf(logger.DBG, "[solver] %d rows, %d null vectors, no divisor", rows, nulls)
	return nil
}

// parityVector encodes Y over the signed factor base: bit 0 is set for
// Y < 0, bit i+1 holds the parity of the exponent of FB[i] in |Y|.
// Residuals from paired partials are even-powered and drop out.
func parityVector(par *Params, y *math.Int) *math.Int {
	v := math.ZERO
	if y.Sign() < 0 {
		v = math.ONE
	}
	n := y.Abs()
	for i, pi := range par.FBInt {
		c := 0
		for {
			q, r := n.DivMod(pi)
			if r.Sign() != 0 {
				break
			}
			n = q
			c++
		}
		if c&1 == 1 {
			v = v.Xor(math.ONE.Lsh(uint(i + 1)))
		}
	}
	return v
}

// reduceRowEchelon brings the bit-matrix m into reduced row-echelon
// form over GF(2), mirroring every row operation on the history h.
// Rows that end up zero mark null-space vectors in their history mask.
func reduceRowEchelon(m, h []*math.Int, cols int) {
	rows := len(m)
	lead := 0
	for r := 0; r < rows; r++ {
		if lead >= cols {
			return
		}
		// find a row with the pivot bit set
		i := r
		for m[i].Bit(lead) == 0 {
			if i++; i == rows {
				i = r
				if lead++; lead == cols {
					return
				}
			}
		}
		m[i], m[r] = m[r], m[i]
		h[i], h[r] = h[r], h[i]

		// clear the pivot column in all other rows
		for j := 0; j < rows; j++ {
			if j != r && m[j].Bit(lead) == 1 {
				m[j] = m[j].Xor(m[r])
				h[j] = h[j].Xor(h[r])
			}
		}
		lead++
	}
}

// extractFactor turns a null mask into a congruence of squares
// X² ≡ Y² (mod N) and tests gcd(Y−X, N) for a non-trivial divisor.
func extractFactor(par *Params, rels []*Relation, mask *math.Int) *math.Int {
	n := par.N
	X := math.ONE
	Y := math.ONE
	exps := make([]int64, len(par.FB))
	for j, rel := range rels {
		if mask.Bit(j) == 0 {
			continue
		}
		X = X.Mul(rel.X).Mod(n)
		Y = Y.Mul(rel.A).Mod(n)
		y := rel.Y.Abs()
		for i, pi := range par.FBInt {
			for {
				q, r := y.DivMod(pi)
				if r.Sign() != 0 {
					break
				}
				y = q
				exps[i]++
			}
		}
	}
	// Y = ∏ A_j · ∏ p^(e_p/2); exponents are even on null vectors
	for i, pi := range par.FBInt {
		if e := exps[i] >> 1; e > 0 {
			Y = Y.Mul(pi.ModPow(math.NewInt(e), n)).Mod(n)
		}
	}
	g := Y.Sub(X).GCD(n)
	if g.Equals(math.ONE) || g.Equals(n) {
		return nil
	}
	return g
}
