// SPDX-License-Identifier: MIT

// Package bands defines the zinc-blende band vocabulary and band sets.
//
// The full 8-dimensional basis is partitioned, in canonical order, as
//
//	Γ6c (gamma_6c): indices 0..1, spin 1/2
//	Γ8v (gamma_8v): indices 2..5, spin 3/2
//	Γ7v (gamma_7v): indices 6..7, spin 1/2
//
// A canonical Set has known names only, no duplicates and canonical order.
// Canonical builds one; Validate checks a Set built any other way (literals).
// Indices of a canonical Set is a strictly increasing subsequence of 0..7.
package bands

import (
	"strings"

	"github.com/katalvlaran/semicon/errors"
)

// Band is a named band of the basis.
type Band string

// Band vocabulary.
const (
	Gamma6c Band = "gamma_6c"
	Gamma8v Band = "gamma_8v"
	Gamma7v Band = "gamma_7v"
)

// BasisSize is the dimension of the full basis.
const BasisSize = 8

// info records the fixed per-band data.
type info struct {
	order int
	spin  float64
	first int
	size  int
}

var table = map[Band]info{
	Gamma6c: {order: 0, spin: 0.5, first: 0, size: 2},
	Gamma8v: {order: 1, spin: 1.5, first: 2, size: 4},
	Gamma7v: {order: 2, spin: 0.5, first: 6, size: 2},
}

// All lists the bands in canonical order.
var All = Set{Gamma6c, Gamma8v, Gamma7v}

// Spin returns the spin quantum number of b.
func (b Band) Spin() float64 { return table[b].spin }

// Indices returns b's basis index range.
func (b Band) Indices() []int {
	inf := table[b]
	out := make([]int, inf.size)
	for i := range out {
		out[i] = inf.first + i
	}

	return out
}

// Known reports whether b belongs to the vocabulary.
func (b Band) Known() bool {
	_, ok := table[b]

	return ok
}

// Set is a canonical band set.
type Set []Band

// Canonical validates names, removes duplicates and sorts into canonical
// order. An empty input yields an empty set.
//
// Errors:
//   - errors.ErrConfiguration for an unknown band name.
func Canonical(names ...string) (Set, error) {
	seen := [3]bool{}
	for _, n := range names {
		inf, ok := table[Band(n)]
		if !ok {
			return nil, errors.Wrapf(errors.ErrConfiguration,
				"bands: unknown band %q (allowed: %s)", n, All.String())
		}
		seen[inf.order] = true
	}

	out := make(Set, 0, 3)
	for _, b := range All {
		if seen[table[b].order] {
			out = append(out, b)
		}
	}

	return out, nil
}

// MustCanonical is Canonical for literals; it panics on unknown names.
func MustCanonical(names ...string) Set {
	s, err := Canonical(names...)
	if err != nil {
		panic(err)
	}

	return s
}

// Has reports whether b is in s.
func (s Set) Has(b Band) bool {
	for _, x := range s {
		if x == b {
			return true
		}
	}

	return false
}

// Validate checks that s is canonical.
//
// Errors:
//   - errors.ErrConfiguration for an unknown band, a duplicate or a band
//     out of canonical order.
func (s Set) Validate() error {
	last := -1
	for _, b := range s {
		inf, ok := table[b]
		if !ok {
			return errors.Wrapf(errors.ErrConfiguration,
				"bands: unknown band %q (allowed: %s)", string(b), All.String())
		}
		if inf.order == last {
			return errors.Wrapf(errors.ErrConfiguration, "bands: duplicate band %q in [%s]", string(b), s.String())
		}
		if inf.order < last {
			return errors.Wrapf(errors.ErrConfiguration, "bands: [%s] is not in canonical order", s.String())
		}
		last = inf.order
	}

	return nil
}

// IsFull reports whether s contains every band.
func (s Set) IsFull() bool {
	for _, b := range All {
		if !s.Has(b) {
			return false
		}
	}

	return true
}

// Indices concatenates the basis ranges of the bands in s.
func (s Set) Indices() []int {
	var out []int
	for _, b := range s {
		out = append(out, b.Indices()...)
	}

	return out
}

// Spins returns the per-band spins in order.
func (s Set) Spins() []float64 {
	out := make([]float64, len(s))
	for i, b := range s {
		out[i] = b.Spin()
	}

	return out
}

// Names returns the band names as strings.
func (s Set) Names() []string {
	out := make([]string, len(s))
	for i, b := range s {
		out[i] = string(b)
	}

	return out
}

// String joins the names with ", ".
func (s Set) String() string { return strings.Join(s.Names(), ", ") }
