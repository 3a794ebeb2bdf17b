package main

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

import (
	stderr "errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bfix/mpqs/errors"
	"github.com/bfix/mpqs/logger"
	"github.com/bfix/mpqs/math"
	"github.com/bfix/mpqs/mpqs"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// get command-line arguments
	var (
		alg     string
		number  string
		product string
		verbose bool
	)
	fs := flag.NewFlagSet("mpqs", flag.ContinueOnError)
	fs.StringVar(&alg, "algorithm", mpqs.Shared,
		"sieve variant: S (serial), M (shared memory) or A (message passing)")
	fs.StringVar(&number, "number", "", "decimal composite to factor")
	fs.StringVar(&product, "product", "", "two decimal numbers 'P,Q'; their product is factored")
	fs.BoolVar(&verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if verbose {
		logger.SetLogLevel(logger.DBG)
	}

	n, err := parseInput(number, product)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	// factorize
	start := time.Now()
	d, err := mpqs.Factor(n, alg)
	if err != nil {
		if stderr.Is(err, mpqs.ErrPrimeInput) {
			fmt.Printf("%v is probably prime\n", n)
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	logger.Printf(logger.INFO, "[mpqs] finished after %s", logger.Since(start))
	logger.Flush()

	// verify and report
	q, r := n.DivMod(d)
	if r.Sign() != 0 {
		fmt.Fprintf(os.Stderr, "result %v does not divide %v\n", d, n)
		return 1
	}
	fmt.Printf("%v = %v * %v\n", n, d, q)
	return 0
}

// parseInput builds N from exactly one of the -number/-product options.
func parseInput(number, product string) (*math.Int, error) {
	switch {
	case number != "" && product != "":
		return nil, errors.New(mpqs.ErrInvalidInput, "use either -number or -product, not both")

	case number != "":
		return parseDecimal(number)

	case product != "":
		parts := strings.Split(product, ",")
		if len(parts) != 2 {
			return nil, errors.New(mpqs.ErrInvalidInput, "-product needs two numbers 'P,Q'")
		}
		p, err := parseDecimal(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, err
		}
		q, err := parseDecimal(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, err
		}
		return p.Mul(q), nil
	}
	return nil, errors.New(mpqs.ErrInvalidInput, "one of -number or -product is required")
}

// parseDecimal accepts digits only.
func parseDecimal(s string) (*math.Int, error) {
	if s == "" {
		return nil, errors.New(mpqs.ErrInvalidInput, "empty number")
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return nil, errors.New(mpqs.ErrInvalidInput, "'%s' is not a decimal number", s)
		}
	}
	v, err := math.NewIntFromString(s)
	if err != nil {
		return nil, errors.New(mpqs.ErrInvalidInput, "'%s': %v", s, err)
	}
	return v, nil
}
