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

// Deterministic witness sets for the Miller-Rabin test (Jaeschke;
// Sorenson/Webster). Ranges are half-open: a set is valid for all
// n < bound of its row.
type witnessRow struct {
	bound *Int
	wit   []int64
}

func mustInt(s string) *Int {
	v, err := NewIntFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

var witnessTable = []witnessRow{
	{NewInt(2047), []int64{2}},
	{NewInt(1373653), []int64{2, 3}},
	{NewInt(25326001), []int64{2, 3, 5}},
	{NewInt(3215031751), []int64{2, 3, 5, 7}},
	{NewInt(2152302898747), []int64{2, 3, 5, 7, 11}},
	{NewInt(3474749660383), []int64{2, 3, 5, 7, 11, 13}},
	{NewInt(341550071728321), []int64{2, 3, 5, 7, 11, 13, 17}},
	{NewInt(3825123056546413051), []int64{2, 3, 5, 7, 11, 13, 17, 19, 23}},
	{mustInt("318665857834031151167461"),
		[]int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}},
	{mustInt("3317044064679887385961981"),
		[]int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41}},
}

// witnesses for larger n (probabilistic): the first 20 primes.
var witnessDefault = []int64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29,
	31, 37, 41, 43, 47, 53, 59, 61, 67, 71,
}

// IsPrime checks n for primality with the Miller-Rabin test. The result
// is deterministic for n below the last table bound (~3.3e24) and holds
// with overwhelming probability above it.
func IsPrime(n *Int) bool {
	if n.Cmp(THREE) <= 0 {
		return n.Cmp(TWO) >= 0
	}
	if n.Bit(0) == 0 {
		return false
	}
	// write n-1 = d*2^s with d odd
	s := 0
	d := n.Sub(ONE)
	for d.Bit(0) == 0 {
		s++
		d = d.Rsh(1)
	}
	witnesses := witnessDefault
	for _, row := range witnessTable {
		if n.Cmp(row.bound) < 0 {
			witnesses = row.wit
			break
		}
	}
	nm1 := n.Sub(ONE)
	for _, w := range witnesses {
		a := NewInt(w)
		if a.Cmp(nm1) >= 0 {
			continue
		}
		if tryComposite(a, d, n, nm1, s) {
			return false
		}
	}
	return true
}

// tryComposite returns true if witness a proves n composite.
func tryComposite(a, d, n, nm1 *Int, s int) bool {
	x := a.ModPow(d, n)
	if x.Equals(ONE) || x.Equals(nm1) {
		return false
	}
	for i := 1; i < s; i++ {
		x = x.Mul(x).Mod(n)
		if x.Equals(nm1) {
			return false
		}
	}
	return true
}

// NextPrime returns the smallest prime greater than n.
func NextPrime(n *Int) *Int {
	if n.Cmp(TWO) < 0 {
		return TWO
	}
	p := n.Add(ONE)
	if p.Bit(0) == 0 {
		p = p.Add(ONE)
	}
	for !IsPrime(p) {
		p = p.Add(TWO)
	}
	return p
}

// SmallPrimes enumerates all primes up to (and including) bound with a
// sieve of Eratosthenes.
func SmallPrimes(bound uint64) []uint64 {
	if bound < 2 {
		return nil
	}
	composite := make([]bool, bound+1)
	var primes []uint64
	for i := uint64(2); i <= bound; i++ {
		if composite[i] {
			continue
		}
		primes = append(primes, i)
		for j := i * i; j <= bound; j += i {
			composite[j] = true
		}
	}
	return primes
}
