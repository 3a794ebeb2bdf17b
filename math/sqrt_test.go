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

import (
	"testing"
)

func TestSqrtModP(t *testing.T) {
	// r² ≡ n (mod p) for every odd prime p and every residue n
	bound := uint64(2000)
	if testing.Short() {
		bound = 500
	}
	for _, pv := range SmallPrimes(bound)[1:] {
		p := NewInt(int64(pv))
		for n := int64(1); n < int64(pv); n += 3 {
			nn := NewInt(n)
			if nn.Legendre(p) != 1 {
				continue
			}
			r, err := SqrtModP(nn, p)
			if err != nil {
				t.Fatalf("SqrtModP(%d,%d): %v", n, pv, err)
			}
			if !r.Mul(r).Mod(p).Equals(nn) {
				t.Fatalf("SqrtModP(%d,%d) = %v: not a root", n, pv, r)
			}
		}
	}
}

func TestSqrtModPBig(t *testing.T) {
	n, _ := NewIntFromString("676292275716558246502605230897191366469551764092181362779759")
	// both the p ≡ 3 (mod 4) fast path and the general loop
	for _, pv := range []int64{10007, 100003, 104729, 1000033, 15485863} {
		p := NewInt(pv)
		if n.Legendre(p) != 1 {
			continue
		}
		r, err := SqrtModP(n, p)
		if err != nil {
			t.Fatalf("SqrtModP(n,%d): %v", pv, err)
		}
		if !r.Mul(r).Mod(p).Equals(n.Mod(p)) {
			t.Fatalf("SqrtModP(n,%d) = %v: not a root", pv, r)
		}
	}
}

func TestSqrtModPEdge(t *testing.T) {
	// multiples of p map to 0
	r, err := SqrtModP(NewInt(35), NewInt(7))
	if err != nil || !r.Equals(ZERO) {
		t.Fatal("n ≡ 0 (mod p) must yield 0")
	}
	// non-residues are rejected
	if _, err = SqrtModP(NewInt(5), NewInt(7)); err == nil {
		t.Fatal("non-residue accepted")
	}
}
