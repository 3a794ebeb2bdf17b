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

package errors

import "fmt"

// Error attaches call-site context to a sentinel error value. The
// sentinel stays visible to errors.Is and errors.As through Unwrap.
type Error struct {
	Err error  // sentinel error value
	Ctx string // formatted context
}

// New wraps a sentinel with formatted context.
func New(err error, format string, args ...any) *Error {
	return &Error{
		Err: err,
		Ctx: fmt.Sprintf(format, args...),
	}
}

// Error returns the human-readable description "sentinel: context".
func (e *Error) Error() string {
	if len(e.Ctx) == 0 {
		return e.Err.Error()
	}
	return e.Err.Error() + ": " + e.Ctx
}

// Unwrap returns the wrapped sentinel.
func (e *Error) Unwrap() error {
	return e.Err
}
