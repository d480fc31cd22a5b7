// SPDX-License-Identifier: MIT

package parameters

import (
	"sort"
	"strings"

	"github.com/katalvlaran/semicon/bands"
	"github.com/katalvlaran/semicon/errors"
	"github.com/katalvlaran/semicon/formula"
)

// SymmetryClass selects the renormalization rule set of a crystal class.
type SymmetryClass int

const (
	// ZincBlende is the Td class (GaAs, InAs, InSb, ...).
	ZincBlende SymmetryClass = iota
)

// String returns the lower-case class name.
func (c SymmetryClass) String() string {
	switch c {
	case ZincBlende:
		return "zincblende"
	}

	return "unknown"
}

// ParseSymmetryClass maps a name (case-insensitive, "zinc-blende" allowed)
// to its class.
func ParseSymmetryClass(name string) (SymmetryClass, error) {
	switch strings.ReplaceAll(strings.ToLower(name), "-", "") {
	case "zincblende":
		return ZincBlende, nil
	}

	return 0, errors.Wrapf(errors.ErrConfiguration, "parameters: unknown symmetry class %q", name)
}

// Rule is one band's correction to one parameter.
type Rule struct {
	Band    bands.Band
	Formula *formula.Formula
}

// Derived declares a parameter computed from a raw one during Prepare;
// the source is removed afterwards (gamma_0 = 1 / m_c consumes m_c).
type Derived struct {
	Name    string
	From    string
	Formula *formula.Formula
}

// RuleSet is a closed, compiled table of corrections for one symmetry class.
// It is immutable after construction and safe for concurrent use.
type RuleSet struct {
	class   SymmetryClass
	order   []string
	rules   map[string][]Rule
	derived []Derived
}

// NewRuleSet compiles a {parameter: {band: formula}} table.
//
// Errors:
//   - errors.ErrConfiguration for an unknown band, a formula that does not
//     parse, or a formula referencing a renormalized parameter (the
//     bare/effective round trip would not close).
func NewRuleSet(class SymmetryClass, table map[string]map[bands.Band]string, derived ...Derived) (*RuleSet, error) {
	rs := &RuleSet{class: class, rules: make(map[string][]Rule, len(table)), derived: derived}
	for name := range table {
		rs.order = append(rs.order, name)
	}
	sort.Strings(rs.order)

	for _, name := range rs.order {
		for _, b := range bands.All { // canonical band order
			src, ok := table[name][b]
			if !ok {
				continue
			}
			f, err := formula.Parse(src)
			if err != nil {
				return nil, errors.Wrapf(errors.ErrConfiguration, "parameters: rule %s/%s: %v", name, b, err)
			}
			for _, v := range f.Vars() {
				if _, renormalized := table[v]; renormalized {
					return nil, errors.Wrapf(errors.ErrConfiguration,
						"parameters: rule %s/%s references renormalized parameter %s", name, b, v)
				}
			}
			rs.rules[name] = append(rs.rules[name], Rule{Band: b, Formula: f})
		}
		if len(rs.rules[name]) != len(table[name]) {
			return nil, errors.Wrapf(errors.ErrConfiguration, "parameters: rule %s names an unknown band", name)
		}
	}

	return rs, nil
}

// Class returns the symmetry class.
func (rs *RuleSet) Class() SymmetryClass { return rs.class }

// Parameters returns the renormalized parameter names, sorted.
func (rs *RuleSet) Parameters() []string {
	out := make([]string, len(rs.order))
	copy(out, rs.order)

	return out
}

// Rules returns the band rules of a parameter in canonical band order.
func (rs *RuleSet) Rules(parameter string) []Rule {
	out := make([]Rule, len(rs.rules[parameter]))
	copy(out, rs.rules[parameter])

	return out
}

// Derived returns the derived-parameter declarations.
func (rs *RuleSet) Derived() []Derived {
	out := make([]Derived, len(rs.derived))
	copy(out, rs.derived)

	return out
}

// zincBlendeTable holds the second-order Löwdin corrections of the 8-band
// Kane model: the coupling P between Γ6c and the Γ8v/Γ7v hole bands.
var zincBlendeTable = map[string]map[bands.Band]string{
	"gamma_0": {
		bands.Gamma8v: "(2 / 3) * (1 / T) * P**2 / E_0",
		bands.Gamma7v: "(1 / 3) * (1 / T) * P**2 / (E_0 + Delta_0)",
	},
	"g_c": {
		bands.Gamma8v: "-(2 / 3) * (1 / T) * P**2 / E_0",
		bands.Gamma7v: "(2 / 3) * (1 / T) * P**2 / (E_0 + Delta_0)",
	},
	"gamma_1": {
		bands.Gamma6c: "(1 / 3) * (1 / T) * P**2 / E_0",
	},
	"gamma_2": {
		bands.Gamma6c: "(1 / 6) * (1 / T) * P**2 / E_0",
	},
	"gamma_3": {
		bands.Gamma6c: "(1 / 6) * (1 / T) * P**2 / E_0",
	},
	"kappa": {
		bands.Gamma6c: "(1 / 6) * (1 / T) * P**2 / E_0",
	},
}

var zincBlendeRules = func() *RuleSet {
	rs, err := NewRuleSet(ZincBlende, zincBlendeTable, Derived{
		Name:    "gamma_0",
		From:    "m_c",
		Formula: formula.MustParse("1 / m_c"),
	})
	if err != nil {
		panic(err)
	}

	return rs
}()

// Rules returns the built-in rule set of a symmetry class.
//
// Errors:
//   - errors.ErrConfiguration for an unknown class.
func Rules(class SymmetryClass) (*RuleSet, error) {
	switch class {
	case ZincBlende:
		return zincBlendeRules, nil
	}

	return nil, errors.Wrapf(errors.ErrConfiguration, "parameters: no rule set for class %d", int(class))
}
