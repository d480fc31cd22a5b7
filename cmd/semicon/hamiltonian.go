// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/semicon/bands"
	"github.com/katalvlaran/semicon/errors"
	"github.com/katalvlaran/semicon/kp"
	"github.com/katalvlaran/semicon/model"
	"github.com/katalvlaran/semicon/monomial"
	"github.com/katalvlaran/semicon/rotation"
)

func (a *app) hamiltonianCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hamiltonian",
		Short: "Symbolic Hamiltonian of a band model",
		Long: `Print the symbolic zinc-blende k·p Hamiltonian for the selected bands and
components, optionally rotated about an axis and cleaned up.

Example:
  semicon hamiltonian --bands gamma_6c,gamma_8v --coords z \
      --axis 0,0,1 --angle 45 --decimals 4 --exact`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runHamiltonian(cmd)
		},
	}

	cmd.Flags().StringSlice("bands", bands.All.Names(), "Explicit bands")
	cmd.Flags().StringSlice("components", []string{kp.ComponentForeman},
		"Components ("+strings.Join(kp.Components(), ", ")+")")
	cmd.Flags().String("coords", "", "Coordinates the parameters depend on (x, y, z)")
	cmd.Flags().String("axis", "", "Rotation axis as x,y,z")
	cmd.Flags().Float64("angle", 0, "Rotation angle in degrees")
	cmd.Flags().Int("decimals", -1, "Round coefficients to this many decimals")
	cmd.Flags().Bool("exact", false, "Snap coefficients to exact forms such as sqrt(3)/2")

	return cmd
}

func (a *app) runHamiltonian(cmd *cobra.Command) error {
	zb, err := model.NewZincBlende(
		model.WithBands(a.stringList("bands")...),
		model.WithComponents(a.stringList("components")...),
		model.WithParameterCoords(a.v.GetString("coords")),
		model.WithBankCache(a.cache),
		model.WithLogger(a.logger.Named("model")),
	)
	if err != nil {
		return err
	}

	if axis := a.v.GetString("axis"); axis != "" {
		n, err := parseAxis(axis)
		if err != nil {
			return err
		}
		r, err := rotation.AxisAngle(n, a.v.GetFloat64("angle")*math.Pi/180)
		if err != nil {
			return err
		}
		if zb, err = zb.Rotate(r); err != nil {
			return err
		}
	}

	var opts []monomial.Option
	if d := a.v.GetInt("decimals"); d >= 0 {
		opts = append(opts, monomial.WithDecimals(d))
	}
	if a.v.GetBool("exact") {
		opts = append(opts, monomial.WithExactForms())
	}
	if len(opts) > 0 {
		if zb, err = zb.Prettify(opts...); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# bands: %s; components: %s\n", zb.Bands(), strings.Join(zb.Components(), ", "))
	fmt.Fprintln(out, zb)

	return nil
}

func parseAxis(s string) ([3]float64, error) {
	var n [3]float64
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return n, errors.Wrapf(errors.ErrConfiguration, "semicon: axis %q must be x,y,z", s)
	}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return n, errors.Wrapf(errors.ErrConfiguration, "semicon: axis %q: %v", s, err)
		}
		n[i] = v
	}

	return n, nil
}
