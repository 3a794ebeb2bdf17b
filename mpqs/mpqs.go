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

// Package mpqs factorizes composite integers with the multiple-
// polynomial quadratic sieve. Inputs of 40-70 decimal digits are the
// target range; the caller must route primes and even numbers
// elsewhere (Factor rejects them).
package mpqs

import (
	stderr "errors"

	"github.com/bfix/mpqs/errors"
	"github.com/bfix/mpqs/math"
)

// Algorithm selectors
const (
	// Serial runs a single sieve worker.
	Serial = "S"
	// Shared runs parallel workers over shared state.
	Shared = "M"
	// Message runs parallel workers in a message-passing pipeline.
	Message = "A"
)

// Error codes
var (
	ErrInvalidInput = stderr.New("invalid input")
	ErrPrimeInput   = stderr.New("input is probably prime")
)

// Validate checks that n is a suitable input for the sieve: odd,
// greater than 3 and not prime.
func Validate(n *math.Int) error {
	if n.Cmp(math.THREE) <= 0 {
		return errors.New(ErrInvalidInput, "N must be greater than 3")
	}
	if n.Bit(0) == 0 {
		return errors.New(ErrInvalidInput, "N must be odd")
	}
	if math.IsPrime(n) {
		return errors.New(ErrPrimeInput, "%v", n)
	}
	return nil
}

// Factor validates n and runs the selected sieve variant. On success
// the returned divisor d satisfies 1 < d < n and d | n.
func Factor(n *math.Int, algorithm string) (*math.Int, error) {
	if err := Validate(n); err != nil {
		return nil, err
	}
	switch algorithm {
	case Serial:
		return FactorSerial(n), nil
	case Shared:
		return FactorShared(n), nil
	case Message:
		return FactorMessage(n), nil
	}
	return nil, errors.New(ErrInvalidInput, "unknown algorithm '%s'", algorithm)
}
