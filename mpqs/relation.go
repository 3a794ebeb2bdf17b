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
	"github.com/montanaflynn/stats"
)

// Relation is a congruence X² ≡ A²·Y (mod N) with Y factoring over the
// base. A relation paired from two partials with residual L carries L²
// in Y and L once in A, so it satisfies X²·L² ≡ A²·Y (mod N) instead.
type Relation struct {
	X *math.Int // left-hand value a·x + b
	Y *math.Int // function value Q(x), sign included
	A *math.Int // polynomial root (times paired residuals)
}

// PartialRel is a relation whose Y kept a single prime L > B after
// trial division. Two partials with the same L combine into a full
// relation.
type PartialRel struct {
	L   *math.Int
	Rel Relation
}

// Batch collects the candidate relations of one sieved polynomial.
type Batch struct {
	Fulls    []*Relation
	Partials []*PartialRel
}

// Manager aggregates relations from the sieve workers: full relations
// are appended, partials are paired through the large-prime table. The
// take-or-insert on the table is atomic under the manager lock, so two
// workers racing on the same residual cannot lose a relation.
type Manager struct {
	mu       sync.Mutex
	rels     []*Relation
	partials map[string]*PartialRel
	yields   []float64 // full relations gained per merged batch
}

// NewManager creates an empty relation aggregate.
func NewManager() *Manager {
	return &Manager{
		partials: make(map[string]*PartialRel),
	}
}

// Merge folds a sieved batch into the aggregate and returns the new
// number of full relations.
func (m *Manager) Merge(b *Batch) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	before := len(m.rels)
	m.rels = append(m.rels, b.Fulls...)
	for _, p := range b.Partials {
		key := p.L.String()
		if held, ok := m.partials[key]; ok {
			delete(m.partials, key)
			m.rels = append(m.rels, combine(p, held))
		} else {
			m.partials[key] = p
		}
	}
	m.yields = append(m.yields, float64(len(m.rels)-before))
	return len(m.rels)
}

// combine pairs two partials with the same residual L. L appears
// squared in Y·Y' and once on the A side, so the squared A side carries
// exactly the residual surplus of the product.
func combine(p, q *PartialRel) *Relation {
	return &Relation{
		X: p.Rel.X.Mul(q.Rel.X),
		Y: p.Rel.Y.Mul(q.Rel.Y),
		A: p.Rel.A.Mul(q.Rel.A).Mul(p.L),
	}
}

// Count returns the number of full relations collected so far.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rels)
}

// Pending returns the number of unpaired partial relations.
func (m *Manager) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.partials)
}

// Snapshot returns a stable copy of the relation list for the solver.
func (m *Manager) Snapshot() []*Relation {
	m.mu.Lock()
	defer m.mu.Unlock()
	rels := make([]*Relation, len(m.rels))
	copy(rels, m.rels)
	return rels
}

// LogYield reports the sieve yield (relations per polynomial batch).
func (m *Manager) LogYield() {
	m.mu.Lock()
	data := stats.Float64Data(m.yields)
	pending := len(m.partials)
	total := len(m.rels)
	m.mu.Unlock()

	mean, err := stats.Mean(data)
	if err != nil {
		return
	}
	median, _ := stats.Median(data)
	sdev, _ := stats.StandardDeviation(data)
	logger.Printf(logger.INFO,
		"[mpqs] %d relations from %d polynomials (yield %.2f ± %.2f, median %.1f), %d partials unpaired",
		total, len(data), mean, sdev, median, pending)
}
