// SPDX-License-Identifier: MIT

package model

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/semicon/bands"
	"github.com/katalvlaran/semicon/errors"
	"github.com/katalvlaran/semicon/kp"
	"github.com/katalvlaran/semicon/monomial"
	"github.com/katalvlaran/semicon/parameters"
	"github.com/katalvlaran/semicon/rotation"
)

// DefaultDatabank is the bank ZincBlende.Parameters reads when none is named.
const DefaultDatabank = "lawaetz"

// ZincBlende is the band model of zinc-blende semiconductors: a Model whose
// Hamiltonian is the sum of kp components restricted to a band set.
type ZincBlende struct {
	*Model

	bands      bands.Set
	components []string
	coords     string
	databank   string
	cache      *parameters.BankCache
	renorm     *parameters.Renormalizer
	logger     *zap.Logger
}

// ZincBlendeOption configures NewZincBlende.
type ZincBlendeOption func(*zincBlendeOptions)

type zincBlendeOptions struct {
	bands      []string
	components []string
	coords     string
	databank   string
	cache      *parameters.BankCache
	logger     *zap.Logger
	renorm     []parameters.Option
}

// WithBands selects the explicit bands (default: all three).
func WithBands(names ...string) ZincBlendeOption {
	cp := append([]string(nil), names...)

	return func(o *zincBlendeOptions) { o.bands = cp }
}

// WithComponents selects the kp components (default: foreman).
func WithComponents(names ...string) ZincBlendeOption {
	cp := append([]string(nil), names...)

	return func(o *zincBlendeOptions) { o.components = cp }
}

// WithParameterCoords makes the material parameters depend on the given
// coordinates, e.g. "z" for a quantum well or "xyz".
func WithParameterCoords(coords string) ZincBlendeOption {
	return func(o *zincBlendeOptions) { o.coords = coords }
}

// WithDatabank sets the default bank of Parameters.
func WithDatabank(name string) ZincBlendeOption {
	return func(o *zincBlendeOptions) { o.databank = name }
}

// WithBankCache replaces the process-wide bank cache. Panics on nil.
func WithBankCache(c *parameters.BankCache) ZincBlendeOption {
	if c == nil {
		panic("model: WithBankCache(nil)")
	}

	return func(o *zincBlendeOptions) { o.cache = c }
}

// WithLogger sets the model logger. Panics on nil.
func WithLogger(l *zap.Logger) ZincBlendeOption {
	if l == nil {
		panic("model: WithLogger(nil)")
	}

	return func(o *zincBlendeOptions) { o.logger = l }
}

// WithRenormalizerOptions forwards options (valence band offset) to the
// parameter renormalizer.
func WithRenormalizerOptions(opts ...parameters.Option) ZincBlendeOption {
	return func(o *zincBlendeOptions) { o.renorm = append(o.renorm, opts...) }
}

// NewZincBlende validates the configuration and builds the Hamiltonian.
//
// Errors:
//   - errors.ErrConfiguration for unknown bands or components, invalid
//     coords or an empty band set.
func NewZincBlende(opts ...ZincBlendeOption) (*ZincBlende, error) {
	o := zincBlendeOptions{
		bands:      bands.All.Names(),
		components: []string{kp.ComponentForeman},
		databank:   DefaultDatabank,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.cache == nil {
		o.cache = parameters.DefaultBankCache()
	}

	b, err := bands.Canonical(o.bands...)
	if err != nil {
		return nil, err
	}
	h, err := kp.Hamiltonian(o.coords, o.components, b)
	if err != nil {
		return nil, err
	}
	ops, err := kp.SpinOperators(b)
	if err != nil {
		return nil, err
	}
	m, err := New(h, WithSpinOperators(ops))
	if err != nil {
		return nil, err
	}
	renorm, err := parameters.NewRenormalizer(parameters.ZincBlende,
		append([]parameters.Option{parameters.WithLogger(o.logger)}, o.renorm...)...)
	if err != nil {
		return nil, err
	}

	o.logger.Debug("built zinc-blende model",
		zap.Strings("bands", b.Names()),
		zap.Strings("components", o.components),
		zap.String("coords", o.coords),
	)

	return &ZincBlende{
		Model:      m,
		bands:      b,
		components: append([]string(nil), o.components...),
		coords:     o.coords,
		databank:   o.databank,
		cache:      o.cache,
		renorm:     renorm,
		logger:     o.logger,
	}, nil
}

// Bands returns the explicit bands.
func (z *ZincBlende) Bands() bands.Set { return append(bands.Set(nil), z.bands...) }

// Components returns the component names.
func (z *ZincBlende) Components() []string { return append([]string(nil), z.components...) }

// Coords returns the parameter coordinates ("" when constant).
func (z *ZincBlende) Coords() string { return z.coords }

// Parameters returns the bare parameters of material for the model bands.
// An empty bank selects the model's default bank.
//
// Errors:
//   - errors.ErrConfiguration for an unknown bank or material.
//   - renormalization errors (missing dependency, domain).
func (z *ZincBlende) Parameters(material, bank string) (*parameters.Parameters, error) {
	if bank == "" {
		bank = z.databank
	}
	db, err := z.cache.Get(bank)
	if err != nil {
		return nil, err
	}
	raw, err := db.Material(material)
	if err != nil {
		return nil, err
	}
	p, err := z.renorm.New(material, z.bands, raw)
	if err != nil {
		return nil, errors.Wrapf(err, "model: parameters of %s from %s", material, bank)
	}

	return p, nil
}

// Rotate rotates the embedded Model and keeps the band configuration.
func (z *ZincBlende) Rotate(r rotation.Matrix, opts ...RotateOption) (*ZincBlende, error) {
	m, err := z.Model.Rotate(r, opts...)
	if err != nil {
		return nil, err
	}
	out := *z
	out.Model = m

	return &out, nil
}

// Prettify cleans up the embedded Model and keeps the band configuration.
func (z *ZincBlende) Prettify(opts ...monomial.Option) (*ZincBlende, error) {
	m, err := z.Model.Prettify(opts...)
	if err != nil {
		return nil, err
	}
	out := *z
	out.Model = m

	return &out, nil
}
