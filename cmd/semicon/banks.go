// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) banksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "banks [name]",
		Short: "List data banks or print one as a table",
		Long: `Without arguments, list the embedded data banks and their materials.
With a bank name or an absolute path to a .yml/.yaml/.toml file, print the
bank as a material × parameter table.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				db, err := a.cache.Get(args[0])
				if err != nil {
					return err
				}

				return db.Table(out)
			}

			for _, name := range a.cache.Names() {
				db, err := a.cache.Get(name)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, db)
			}

			return nil
		},
	}
}
