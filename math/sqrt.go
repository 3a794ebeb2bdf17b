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

package math

import "errors"

// ErrNoResidue is returned if n is not a quadratic residue mod p.
var ErrNoResidue = errors.New("no quadratic residue")

// SqrtModP computes a square root of a quadratic residue n mod p using
// the Shanks-Tonelli algorithm; p is an odd prime. The result r satisfies
// r² ≡ n (mod p) and lies in [0,p); the other root is p-r.
// see (http://en.wikipedia.org/wiki/Shanks%E2%80%93Tonelli_algorithm)
func SqrtModP(n, p *Int) (*Int, error) {
	// trivial cases first
	if n.Mod(p).Equals(ZERO) {
		return ZERO, nil
	}
	if p.Equals(TWO) {
		return p, nil
	}
	if n.Legendre(p) != 1 {
		return nil, ErrNoResidue
	}
	// fast path for p ≡ 3 (mod 4)
	if p.Mod(FOUR).Equals(THREE) {
		return n.ModPow(p.Add(ONE).Div(FOUR), p), nil
	}
	// 1. Factor out powers of 2 from p − 1, defining Q and S as:
	//    p − 1 = Q*2^S with Q odd
	S := 0
	Q := p.Sub(ONE)
	for Q.Bit(0) == 0 {
		S++
		Q = Q.Rsh(1)
	}
	// 2. Select a z such that Legendre(z\p) = −1 (that is, z is a
	//    quadratic non-residue modulo p), and set c ≡ z^Q
	z := TWO
	for z.Legendre(p) != -1 {
		z = z.Add(ONE)
	}
	c := z.ModPow(Q, p)
	// 3. Let R ≡ n^((Q+1)/2), t ≡ n^Q, M = S.
	R := n.ModPow(Q.Add(ONE).Div(TWO), p)
	t := n.ModPow(Q, p)
	M := S
	// 4. Loop...
	for !t.Equals(ONE) {
		// 4.1 find the smallest i (0 < i < M) with t^(2^i) ≡ 1
		i := 0
		for s := t; !s.Equals(ONE); i++ {
			s = s.Mul(s).Mod(p)
		}
		// 4.2 let b ≡ c^(2^(M-i-1)) and update
		//     R ≡ R*b, t ≡ t*b², c ≡ b², M = i
		b := c.ModPow(ONE.Lsh(uint(M-i-1)), p)
		R = R.Mul(b).Mod(p)
		c = b.Mul(b).Mod(p)
		t = t.Mul(c).Mod(p)
		M = i
	}
	return R, nil
}
