// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"github.com/spf13/cobra"

	"github.com/CBlanco0220/Raffle-tracker/storage"
)

func provisionCmd(opts *rootOptions) *cobra.Command {
	var rosterPath string

	cmd := &cobra.Command{
		Use:   "provision [name...]",
		Short: "Add managers that are missing from the store",
		Long: `Add managers with zeroed counters. Names come from the arguments and
from a roster file:

  managers:
    - Alice
    - Bob Smith

Names already present (compared case-insensitively) are left untouched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrinter(cmd)

			names := append([]string{}, args...)
			if rosterPath != "" {
				roster, err := storage.LoadRoster(rosterPath)
				if err != nil {
					return p.fail("Could not read roster", err)
				}
				names = append(names, roster.Managers...)
			}
			if len(names) == 0 {
				return p.fail("No managers given (pass names or --roster)", nil)
			}

			persister, err := opts.openPersister(cmd.Context())
			if err != nil {
				return p.fail("Could not open store", err)
			}
			defer persister.Close()

			added, err := storage.Provision(cmd.Context(), persister, names)
			if err != nil {
				return p.fail("Provisioning failed", err)
			}

			if len(added) == 0 {
				p.info("All managers already present.")
				return nil
			}
			for _, name := range added {
				p.success("Added %s", name)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&rosterPath, "roster", "r", "", "YAML roster file")
	return cmd
}
