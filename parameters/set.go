// SPDX-License-Identifier: MIT

package parameters

import (
	"sort"
	"strconv"
	"strings"
)

// Set maps parameter names (E_0, Delta_0, P, gamma_1, ...) to values.
// Whether a Set holds bare or effective values is a convention of the
// caller; functions in this package never mutate a Set they receive.
type Set map[string]float64

// Clone returns an independent copy; a nil Set clones to an empty one.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for k, v := range s {
		out[k] = v
	}

	return out
}

// Names returns the parameter names sorted.
func (s Set) Names() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// Has reports whether name is present.
func (s Set) Has(name string) bool {
	_, ok := s[name]

	return ok
}

// String renders "name=value" pairs in name order.
func (s Set) String() string {
	parts := make([]string, 0, len(s))
	for _, k := range s.Names() {
		parts = append(parts, k+"="+strconv.FormatFloat(s[k], 'g', -1, 64))
	}

	return "{" + strings.Join(parts, ", ") + "}"
}
