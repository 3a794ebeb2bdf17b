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
	"sync"

	"github.com/bfix/mpqs/logger"
	"github.com/bfix/mpqs/math"
)

// Poly is a sieving polynomial Q(x) = a·x² + 2b·x + c with a = A²,
// b² ≡ N (mod a) and c = (b²−N)/a, so that a·Q(x) = (a·x+b)² − N.
type Poly struct {
	A  *math.Int // odd prime with (N\A) = 1
	AA *math.Int // a = A²
	B  *math.Int // b in [0,a)
	C  *math.Int // c = (b²−N)/a
}

// PolyGen produces the stream of sieving polynomials from a strictly
// increasing prime cursor A. Next is safe for concurrent use; no A
// value is handed out twice.
type PolyGen struct {
	n     *math.Int
	mu    sync.Mutex
	roota *math.Int
}

// NewPolyGen creates the polynomial stream for the given parameters.
func NewPolyGen(par *Params) *PolyGen {
	return &PolyGen{
		n:     par.N,
		roota: par.RootA,
	}
}

// Next returns the polynomial for the next acceptable prime A.
// Degenerate cursor values (no inverse of 2b mod A) are skipped.
func (g *PolyGen) Next() *Poly {
	for {
		g.mu.Lock()
		a := math.NextPrime(g.roota)
		for g.n.Legendre(a) != 1 {
			a = math.NextPrime(a)
		}
		g.roota = a
		g.mu.Unlock()

		if pol := makePoly(g.n, a); pol != nil {
			logger.Printf(logger.DBG, "[poly] A=%v", a)
			return pol
		}
		logger.Printf(logger.DBG, "[poly] skipping degenerate A=%v", a)
	}
}

// makePoly builds the coefficients for prime A: b is the modular root
// of N mod A, Hensel-lifted to b² ≡ N (mod A²). Returns nil if the
// lifting step has no inverse.
func makePoly(n, A *math.Int) *Poly {
	aa := A.Mul(A)
	b, err := math.SqrtModP(n, A)
	if err != nil || b.Sign() == 0 {
		return nil
	}
	inv := b.Mul(math.TWO).ModInverse(A)
	if inv == nil {
		return nil
	}
	b = b.Sub(b.Mul(b).Sub(n).Mul(inv)).Mod(aa)
	c := b.Mul(b).Sub(n).Div(aa)
	return &Poly{A: A, AA: aa, B: b, C: c}
}
