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

func TestIntString(t *testing.T) {
	for _, s := range []string{
		"0",
		"1",
		"-1",
		"9986801107",
		"523022617466601111760007224100074291200000001",
	} {
		v, err := NewIntFromString(s)
		if err != nil {
			t.Fatalf("parse '%s': %v", s, err)
		}
		if v.String() != s {
			t.Fatalf("round-trip failed: %s != %s", v, s)
		}
	}
	for _, s := range []string{"", "12a3", "0x10", "12 34"} {
		if _, err := NewIntFromString(s); err == nil {
			t.Fatalf("parse '%s' did not fail", s)
		}
	}
}

func TestIntMod(t *testing.T) {
	// Mod is Euclidean: result is non-negative.
	a := NewInt(-17)
	p := NewInt(5)
	if m := a.Mod(p); !m.Equals(THREE) {
		t.Fatalf("(-17) mod 5 = %v", m)
	}
}

func TestIntSqrt(t *testing.T) {
	c, _ := NewIntFromString("523022617466601111760007224100074291200000001")
	for i := 0; i < 100; i++ {
		r := c.Sqrt()
		if r.Mul(r).Cmp(c) > 0 {
			t.Fatal("Sqrt() too large")
		}
		s := r.Add(ONE)
		if s.Mul(s).Cmp(c) <= 0 {
			t.Fatal("Sqrt() too small")
		}
		c = c.Div(THREE).Add(ONE)
	}
}

func TestIntModInverse(t *testing.T) {
	p := NewInt(10007)
	for a := int64(1); a < 10007; a += 97 {
		v := NewInt(a)
		w := v.ModInverse(p)
		if w == nil {
			t.Fatalf("no inverse for %d", a)
		}
		if !v.Mul(w).Mod(p).Equals(ONE) {
			t.Fatalf("inverse failed for %d", a)
		}
	}
	// no inverse if arguments share a factor
	if NewInt(6).ModInverse(NewInt(15)) != nil {
		t.Fatal("inverse of non-coprime value")
	}
}

func TestIntLegendre(t *testing.T) {
	// quadratic residues mod 23
	p := NewInt(23)
	residues := make(map[int64]bool)
	for x := int64(1); x < 23; x++ {
		residues[(x*x)%23] = true
	}
	for a := int64(1); a < 23; a++ {
		want := -1
		if residues[a] {
			want = 1
		}
		if got := NewInt(a).Legendre(p); got != want {
			t.Fatalf("Legendre(%d\\23) = %d, want %d", a, got, want)
		}
	}
	if NewInt(46).Legendre(p) != 0 {
		t.Fatal("Legendre(46\\23) != 0")
	}
}

func TestIntGCD(t *testing.T) {
	a := NewInt(2 * 3 * 5 * 7 * 11)
	b := NewInt(3 * 7 * 13)
	if g := a.GCD(b); !g.Equals(NewInt(21)) {
		t.Fatalf("gcd = %v", g)
	}
	// signs must not matter (the factor extraction computes gcd(Y-X, N)
	// with Y-X possibly negative)
	if g := a.Neg().GCD(b); !g.Equals(NewInt(21)) {
		t.Fatalf("gcd with negative operand = %v", g)
	}
}
