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
	"testing"

	"github.com/bfix/mpqs/math"
	"github.com/stretchr/testify/require"
)

func TestPolyStream(t *testing.T) {
	n := mustParse(t, "523022617466601111760007224100074291200000001")
	par := NewParams(n)
	gen := NewPolyGen(par)

	last := par.RootA
	for i := 0; i < 25; i++ {
		pol := gen.Next()

		// A is an accepted prime beyond the previous cursor value
		require.True(t, math.IsPrime(pol.A))
		require.Equal(t, 1, n.Legendre(pol.A))
		require.True(t, pol.A.Cmp(last) > 0, "cursor not monotone")
		last = pol.A

		// a = A², b² ≡ N (mod a) and a·c = b² − N
		require.True(t, pol.AA.Equals(pol.A.Mul(pol.A)))
		bb := pol.B.Mul(pol.B)
		require.True(t, bb.Mod(pol.AA).Equals(n.Mod(pol.AA)))
		require.True(t, pol.AA.Mul(pol.C).Equals(bb.Sub(n)))
	}
}

func TestPolyNoDuplicates(t *testing.T) {
	// no A value is handed to more than one worker
	n := mustParse(t, "9986801107")
	par := NewParams(n)
	gen := NewPolyGen(par)

	const workers = 8
	const perWorker = 40
	var mu sync.Mutex
	seen := make(map[string]int)

	wg := new(sync.WaitGroup)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				pol := gen.Next()
				mu.Lock()
				seen[pol.A.String()]++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Len(t, seen, workers*perWorker)
	for a, c := range seen {
		require.Equal(t, 1, c, "A=%s sieved %d times", a, c)
	}
}
