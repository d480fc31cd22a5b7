// SPDX-License-Identifier: MIT

package parameters

import (
	"io/fs"
	"math"

	"go.uber.org/zap"
)

// Option configures a Renormalizer, a BankCache or a Parameters value.
// Options irrelevant to the receiving constructor are ignored.
type Option func(*options)

type options struct {
	logger      *zap.Logger
	vbo         float64
	fsys        fs.FS
	alreadyBare bool
}

// WithLogger sets the logger used for debug output (bank loads, applied
// corrections). Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("parameters: WithLogger(nil)")
	}

	return func(o *options) { o.logger = l }
}

// WithValenceBandOffset adds v (eV) to E_v during Prepare.
// Panics on NaN or ±Inf.
func WithValenceBandOffset(v float64) Option {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic("parameters: WithValenceBandOffset must be finite")
	}

	return func(o *options) { o.vbo = v }
}

// WithFS replaces the embedded data bank directory of a BankCache.
// Files are looked up as bank_<name>.yml, bank_<name>.yaml or bank_<name>.toml.
// Panics on nil.
func WithFS(fsys fs.FS) Option {
	if fsys == nil {
		panic("parameters: WithFS(nil)")
	}

	return func(o *options) { o.fsys = fsys }
}

// AlreadyBare marks the raw set given to Renormalizer.New as bare values,
// skipping the effective-to-bare conversion.
func AlreadyBare() Option {
	return func(o *options) { o.alreadyBare = true }
}

func gatherOptions(opts ...Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
