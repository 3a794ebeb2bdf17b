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

// checkFresh asserts the exact congruence X² ≡ A²·Y (mod N) a sieved
// relation (full or partial) must satisfy.
func checkFresh(t *testing.T, n *math.Int, r *Relation) {
	t.Helper()
	lhs := r.X.Mul(r.X).Mod(n)
	rhs := r.A.Mul(r.A).Mul(r.Y).Mod(n)
	require.True(t, lhs.Equals(rhs), "relation invariant violated")
}

func TestSieverRelations(t *testing.T) {
	n := mustParse(t, "9986801107")
	par := NewParams(n)
	gen := NewPolyGen(par)
	sv := NewSiever(par)

	fulls := 0
	for i := 0; i < 10; i++ {
		batch := sv.Sieve(gen.Next())
		for _, r := range batch.Fulls {
			fulls++
			checkFresh(t, n, r)
			// fully factored over the base
			y := r.Y.Abs()
			for _, pi := range par.FBInt {
				for {
					q, rem := y.DivMod(pi)
					if rem.Sign() != 0 {
						break
					}
					y = q
				}
			}
			require.True(t, y.Equals(math.ONE), "full relation not smooth")
		}
		for _, p := range batch.Partials {
			// invariant holds before pairing as well
			checkFresh(t, n, &p.Rel)
			require.True(t, p.L.Cmp(math.ONE) > 0)
			require.True(t, p.L.Cmp(par.MaxPart) < 0)
			// L is the non-smooth residual of Y
			y := p.Rel.Y.Abs()
			for _, pi := range par.FBInt {
				for {
					q, rem := y.DivMod(pi)
					if rem.Sign() != 0 {
						break
					}
					y = q
				}
			}
			require.True(t, y.Equals(p.L))
		}
	}
	require.Greater(t, fulls, 0, "no relations from 10 polynomials")
}

func TestPartialPairing(t *testing.T) {
	n := mustParse(t, "9986801107")

	// synthesize two partials with the same residual: any X with
	// Y ≡ X²·(A²)⁻¹ (mod N) satisfies the relation invariant
	mkPartial := func(l, x, a int64) *PartialRel {
		A := math.NewInt(a)
		X := math.NewInt(x)
		inv := A.Mul(A).ModInverse(n)
		require.NotNil(t, inv)
		return &PartialRel{
			L:   math.NewInt(l),
			Rel: Relation{X: X, Y: X.Mul(X).Mul(inv).Mod(n), A: A},
		}
	}
	p1 := mkPartial(104729, 123456789, 10007)
	p2 := mkPartial(104729, 987654321, 10009)

	r := combine(p1, p2)
	// (X·X')²·ℓ² ≡ (A·A'·ℓ)²·(Y·Y') (mod N)
	lhs := r.X.Mul(r.X).Mul(p1.L).Mul(p1.L).Mod(n)
	rhs := r.A.Mul(r.A).Mul(r.Y).Mod(n)
	require.True(t, lhs.Equals(rhs))

	// pairing through the manager
	mgr := NewManager()
	require.Equal(t, 0, mgr.Merge(&Batch{Partials: []*PartialRel{p1}}))
	require.Equal(t, 1, mgr.Pending())
	require.Equal(t, 1, mgr.Merge(&Batch{Partials: []*PartialRel{p2}}))
	require.Equal(t, 0, mgr.Pending())
}

func TestManagerConcurrent(t *testing.T) {
	// take-or-insert must not lose relations under contention: every
	// residual arrives an even number of times, so all partials must
	// pair up no matter how the merges interleave.
	mgr := NewManager()
	const workers = 16
	const keys = 8

	wg := new(sync.WaitGroup)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for k := 0; k < keys; k++ {
				b := &Batch{Partials: []*PartialRel{{
					L: math.NewInt(int64(1000003 + 2*k)),
					Rel: Relation{
						X: math.NewInt(int64(id*1000 + k)),
						Y: math.ONE,
						A: math.ONE,
					},
				}}}
				mgr.Merge(b)
			}
		}(w)
	}
	wg.Wait()

	require.Equal(t, workers*keys/2, mgr.Count())
	require.Equal(t, 0, mgr.Pending())
}
