// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/semicon/errors"
	"github.com/katalvlaran/semicon/spin"
)

func (a *app) spinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "spin <s>",
		Short: "Spin matrices of spin s",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return errors.Wrapf(errors.ErrConfiguration, "semicon: spin %q: %v", args[0], err)
			}
			ops, err := spin.Matrices(s)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, name := range []string{"Sx", "Sy", "Sz"} {
				fmt.Fprintf(out, "%s =\n%s\n", name, ops[i])
			}

			return nil
		},
	}
}
