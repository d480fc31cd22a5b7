// SPDX-License-Identifier: MIT

package kp

import (
	"sort"
	"strings"
	"sync"

	"github.com/katalvlaran/semicon/bands"
	"github.com/katalvlaran/semicon/errors"
	"github.com/katalvlaran/semicon/spin"
	"github.com/katalvlaran/semicon/sym"
)

// Component names.
const (
	ComponentForeman = "foreman"
	ComponentZeeman  = "zeeman"
)

var builders = map[string]func(coords string) (*sym.Matrix, error){
	ComponentForeman: Foreman,
	ComponentZeeman:  Zeeman,
}

// Components lists the known component names, sorted.
func Components() []string {
	out := make([]string, 0, len(builders))
	for name := range builders {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// ValidateCoords accepts "" (no position dependence) or a sorted subset of
// "xyz" such as "z", "xy" or "xyz".
//
// Errors:
//   - errors.ErrConfiguration for unsorted input or letters outside x, y, z.
func ValidateCoords(coords string) error {
	for i, c := range coords {
		if !strings.ContainsRune("xyz", c) {
			return errors.Wrapf(errors.ErrConfiguration,
				"kp: coords %q may only contain 'x', 'y' or 'z'", coords)
		}
		if i > 0 && coords[i-1] > coords[i] {
			return errors.Wrapf(errors.ErrConfiguration, "kp: coords %q must be sorted", coords)
		}
	}

	return nil
}

type cacheKey struct {
	component string
	coords    string
}

// componentCache holds built components for the life of the process.
// Matrices are immutable, so entries are shared between callers.
var componentCache = struct {
	sync.Mutex
	m map[cacheKey]*sym.Matrix
}{m: make(map[cacheKey]*sym.Matrix)}

// Component returns the cached 8×8 matrix of one component.
//
// Errors:
//   - errors.ErrConfiguration for an unknown component or invalid coords.
func Component(name, coords string) (*sym.Matrix, error) {
	build, ok := builders[name]
	if !ok {
		return nil, errors.Wrapf(errors.ErrConfiguration,
			"kp: unknown component %q (allowed: %s)", name, strings.Join(Components(), ", "))
	}
	if err := ValidateCoords(coords); err != nil {
		return nil, err
	}

	key := cacheKey{component: name, coords: coords}
	componentCache.Lock()
	defer componentCache.Unlock()
	if h, ok := componentCache.m[key]; ok {
		return h, nil
	}
	h, err := build(coords)
	if err != nil {
		return nil, errors.Wrapf(err, "kp: build %s", name)
	}
	componentCache.m[key] = h

	return h, nil
}

// Hamiltonian sums the requested components and restricts the result to the
// basis states of b.
//
// Errors:
//   - errors.ErrConfiguration for an unknown component, invalid coords, no
//     components, or an empty or non-canonical band set.
func Hamiltonian(coords string, components []string, b bands.Set) (*sym.Matrix, error) {
	if len(components) == 0 {
		return nil, errors.Wrap(errors.ErrConfiguration, "kp: no components requested")
	}
	if len(b) == 0 {
		return nil, errors.Wrap(errors.ErrConfiguration, "kp: empty band set")
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}

	var h *sym.Matrix
	for _, name := range components {
		c, err := Component(name, coords)
		if err != nil {
			return nil, err
		}
		if h == nil {
			h = c
			continue
		}
		if h, err = h.Add(c); err != nil {
			return nil, err
		}
	}
	if b.IsFull() {
		return h, nil
	}
	idx := b.Indices()

	return h.Induced(idx, idx)
}

// SpinOperators returns the spin operators of the basis states of b:
// σ/2 for Γ6c and Γ7v, J for Γ8v.
//
// Errors:
//   - errors.ErrConfiguration for an empty or non-canonical band set.
func SpinOperators(b bands.Set) (spin.Operators, error) {
	if len(b) == 0 {
		return spin.Operators{}, errors.Wrap(errors.ErrConfiguration, "kp: empty band set")
	}
	if err := b.Validate(); err != nil {
		return spin.Operators{}, err
	}

	return spin.Composite(b.Spins())
}
