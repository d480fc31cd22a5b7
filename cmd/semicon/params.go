// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/semicon/bands"
	"github.com/katalvlaran/semicon/errors"
	"github.com/katalvlaran/semicon/model"
	"github.com/katalvlaran/semicon/parameters"
)

func (a *app) paramsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params <material>",
		Short: "Bare (or effective) parameters of a material",
		Long: `Load a material from a data bank and convert its effective parameters
into the bare parameters of the selected bands.

--gamma0 and --p renormalize the result so that the bare gamma_0 (or the
Kane energy P) takes the given value while the effective mass is kept.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runParams(cmd, args[0])
		},
	}

	cmd.Flags().String("bank", model.DefaultDatabank, "Data bank name or absolute path")
	cmd.Flags().StringSlice("bands", bands.All.Names(), "Explicit bands")
	cmd.Flags().Float64("vbo", 0, "Valence band offset added to E_v (eV)")
	cmd.Flags().String("gamma0", "", "Renormalize to this bare gamma_0")
	cmd.Flags().String("p", "", "Renormalize to this P (eV*nm)")
	cmd.Flags().Bool("effective", false, "Also print the effective parameters")

	return cmd
}

func (a *app) runParams(cmd *cobra.Command, material string) error {
	b, err := bands.Canonical(a.stringList("bands")...)
	if err != nil {
		return err
	}
	targets, err := a.renormalizeTargets()
	if err != nil {
		return err
	}

	bank := a.v.GetString("bank")
	db, err := a.cache.Get(bank)
	if err != nil {
		return err
	}
	raw, err := db.Material(material)
	if err != nil {
		return err
	}

	vbo := a.v.GetFloat64("vbo")
	if math.IsNaN(vbo) || math.IsInf(vbo, 0) {
		return errors.Wrapf(errors.ErrConfiguration, "semicon: --vbo=%v is not finite", vbo)
	}
	r, err := parameters.NewRenormalizer(parameters.ZincBlende,
		parameters.WithLogger(a.logger.Named("renormalizer")),
		parameters.WithValenceBandOffset(vbo),
	)
	if err != nil {
		return err
	}
	p, err := r.New(material, b, raw)
	if err != nil {
		return err
	}
	if len(targets) > 0 {
		if p, err = p.Renormalize(targets...); err != nil {
			return err
		}
	}
	a.logger.Debug("resolved parameters",
		zap.String("material", material),
		zap.String("bank", bank),
		zap.Strings("bands", b.Names()),
	)

	bare := p.Bare()
	var eff parameters.Set
	if a.v.GetBool("effective") {
		if eff, err = p.Effective(); err != nil {
			return err
		}
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "# %s from %s, bands: %s\n", material, db.Name(), b)
	if eff != nil {
		fmt.Fprintln(w, "parameter\tbare\teffective")
	} else {
		fmt.Fprintln(w, "parameter\tbare")
	}
	for _, name := range bare.Names() {
		if eff == nil {
			fmt.Fprintf(w, "%s\t%.6g\n", name, bare[name])
			continue
		}
		fmt.Fprintf(w, "%s\t%.6g\t%.6g\n", name, bare[name], eff[name])
	}

	return w.Flush()
}

// renormalizeTargets parses --gamma0 and --p; an empty value means unset.
func (a *app) renormalizeTargets() ([]parameters.Target, error) {
	var targets []parameters.Target
	for _, key := range []string{"gamma0", "p"} {
		s := a.v.GetString(key)
		if s == "" {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.Wrapf(errors.ErrConfiguration, "semicon: --%s=%q is not a finite number", key, s)
		}
		if key == "gamma0" {
			targets = append(targets, parameters.WithNewGamma0(v))
		} else {
			targets = append(targets, parameters.WithNewP(v))
		}
	}

	return targets, nil
}
