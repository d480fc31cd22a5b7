// SPDX-License-Identifier: MIT

package parameters

import (
	"fmt"
	"io"
	"path"
	"strings"
	"text/tabwriter"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/semicon/errors"
)

// Format is a data bank serialization.
type Format int

const (
	// YAML documents: {material: {parameters: {name: number}}}.
	YAML Format = iota
	// TOML documents: [material.parameters] tables.
	TOML
)

// FormatOf picks the format from a file extension.
func FormatOf(file string) (Format, error) {
	switch strings.ToLower(path.Ext(file)) {
	case ".yml", ".yaml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}

	return 0, errors.Wrapf(errors.ErrConfiguration, "parameters: unsupported data bank file %q", file)
}

// DataBank is a named, read-only collection of effective material parameters.
type DataBank struct {
	name      string
	path      string
	order     []string
	materials map[string]Set
}

// Name returns the bank name.
func (d *DataBank) Name() string { return d.name }

// Path returns the source path.
func (d *DataBank) Path() string { return d.path }

// Materials returns the material names in document order.
func (d *DataBank) Materials() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)

	return out
}

// Material returns a copy of one material's parameters.
//
// Errors:
//   - errors.ErrConfiguration for an unknown material.
func (d *DataBank) Material(name string) (Set, error) {
	s, ok := d.materials[name]
	if !ok {
		return nil, errors.Wrapf(errors.ErrConfiguration,
			"parameters: material %q not in bank %s (have %s)", name, d.name, strings.Join(d.order, ", "))
	}

	return s.Clone(), nil
}

// Table writes one row per material and one column per parameter name
// (union over materials, sorted). Missing values print as "-".
func (d *DataBank) Table(w io.Writer) error {
	cols := make(Set)
	for _, s := range d.materials {
		for k := range s {
			cols[k] = 0
		}
	}
	names := cols.Names()

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "material\t%s\n", strings.Join(names, "\t"))
	for _, m := range d.order {
		row := make([]string, len(names))
		for i, n := range names {
			if v, ok := d.materials[m][n]; ok {
				row[i] = fmt.Sprintf("%g", v)
			} else {
				row[i] = "-"
			}
		}
		fmt.Fprintf(tw, "%s\t%s\n", m, strings.Join(row, "\t"))
	}

	return tw.Flush()
}

// String summarizes the bank.
func (d *DataBank) String() string {
	return "Databank:\n" +
		"    bank name: " + d.name + "\n" +
		"    bank path: " + d.path + "\n" +
		"    materials: " + strings.Join(d.order, ", ")
}

// LoadDataBank decodes a bank from r.
//
// Errors:
//   - errors.ErrConfiguration for malformed documents, non-numeric values or
//     a material without a parameters table.
func LoadDataBank(name, path string, r io.Reader, format Format) (*DataBank, error) {
	d := &DataBank{name: name, path: path, materials: make(map[string]Set)}

	var err error
	switch format {
	case YAML:
		err = d.decodeYAML(r)
	case TOML:
		err = d.decodeTOML(r)
	default:
		err = errors.Newf("unknown format %d", int(format))
	}
	if err != nil {
		return nil, errors.Wrapf(errors.ErrConfiguration, "parameters: bank %s (%s): %v", name, path, err)
	}

	return d, nil
}

// decodeYAML walks the node tree so document order is preserved.
func (d *DataBank) decodeYAML(r io.Reader) error {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 || doc.Content[0].Kind != yaml.MappingNode {
		return errors.New("top level must be a mapping of materials")
	}

	root := doc.Content[0]
	for i := 0; i+1 < len(root.Content); i += 2 {
		material, body := root.Content[i].Value, root.Content[i+1]
		params := mappingValue(body, "parameters")
		if params == nil || params.Kind != yaml.MappingNode {
			return errors.Newf("material %s: missing parameters mapping", material)
		}
		s := make(Set, len(params.Content)/2)
		for j := 0; j+1 < len(params.Content); j += 2 {
			var v float64
			if err := params.Content[j+1].Decode(&v); err != nil {
				return errors.Wrapf(err, "material %s: parameter %s", material, params.Content[j].Value)
			}
			s[params.Content[j].Value] = v
		}
		d.add(material, s)
	}

	return nil
}

func mappingValue(n *yaml.Node, key string) *yaml.Node {
	if n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1]
		}
	}

	return nil
}

type tomlMaterial struct {
	Parameters map[string]float64 `toml:"parameters"`
}

// decodeTOML uses the decoder metadata for key order.
func (d *DataBank) decodeTOML(r io.Reader) error {
	var doc map[string]tomlMaterial
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return errors.Newf("unexpected keys %v", undecoded)
	}

	// [GaAs.parameters] headers leave the parent table implicit, so order is
	// taken from the first appearance of each top-level key.
	seen := make(map[string]bool, len(doc))
	for _, key := range md.Keys() {
		if len(key) == 0 || seen[key[0]] {
			continue
		}
		material := key[0]
		seen[material] = true
		m := doc[material]
		if m.Parameters == nil {
			return errors.Newf("material %s: missing parameters table", material)
		}
		d.add(material, Set(m.Parameters).Clone())
	}

	return nil
}

func (d *DataBank) add(material string, s Set) {
	if _, dup := d.materials[material]; !dup {
		d.order = append(d.order, material)
	}
	d.materials[material] = s
}
