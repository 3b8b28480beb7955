// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/CBlanco0220/Raffle-tracker/csvio"
)

func exportCmd(opts *rootOptions) *cobra.Command {
	var (
		output   string
		template bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write managers as CSV",
		Long: `Write Name,Graduations,Integrations,Entries for every manager.

With --template, write a zeroed Name,Graduations,Integrations sheet ready
to be filled in and passed to "rafflectl import".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrinter(cmd)

			sess, err := opts.openSession(cmd.Context())
			if err != nil {
				return p.fail("Could not open store", err)
			}
			defer sess.Close()

			out := cmd.OutOrStdout()
			if output != "" {
				fh, err := os.Create(output)
				if err != nil {
					return p.fail("Could not create output file", err)
				}
				defer fh.Close()
				out = fh
			}

			write := csvio.WriteExport
			if template {
				write = csvio.WriteTemplate
			}
			if err := write(out, sess.svc.List()); err != nil {
				return p.fail("Export failed", err)
			}

			if output != "" {
				p.success("Wrote %s", output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")
	cmd.Flags().BoolVar(&template, "template", false, "Write the import template instead")
	return cmd
}

func importCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Set graduations and integrations from a CSV file",
		Long: `Read a CSV with Name, Graduations and Integrations columns and set both
counters for every listed manager. Overrides on imported managers are
cleared. Bad rows and unknown managers are reported and skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrinter(cmd)

			fh, err := os.Open(args[0])
			if err != nil {
				return p.fail("Could not open CSV", err)
			}
			defer fh.Close()

			rows, skipped, err := csvio.ParseImport(fh)
			if err != nil {
				return p.fail("Invalid CSV", err)
			}

			sess, err := opts.openSession(cmd.Context())
			if err != nil {
				return p.fail("Could not open store", err)
			}
			defer sess.Close()

			res, err := csvio.Apply(cmd.Context(), sess.svc, rows)
			if err != nil {
				return p.fail(mutationTitle(err), err)
			}

			for _, s := range append(skipped, res.Skipped...) {
				if s.Name != "" {
					p.warning("line %d (%s): %s", s.Line, s.Name, s.Reason)
				} else {
					p.warning("line %d: %s", s.Line, s.Reason)
				}
			}
			p.success("Imported %d rows", res.Applied)
			return nil
		},
	}
}
