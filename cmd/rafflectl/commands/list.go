// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/CBlanco0220/Raffle-tracker/raffle"
)

func listCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List managers with their effective entries",
		Long: `List every manager in stored order.

Entries marked with * are manual overrides; the next graduation or
integration change for that manager replaces them with the computed value.

Use --json for machine-readable output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrinter(cmd)

			sess, err := opts.openSession(cmd.Context())
			if err != nil {
				return p.fail("Could not open store", err)
			}
			defer sess.Close()

			views := sess.svc.List()

			if asJSON {
				data, err := json.MarshalIndent(views, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			if len(views) == 0 {
				p.info("No managers found.")
				p.info("")
				p.info("Add some with:")
				p.info("  rafflectl provision -r roster.yaml")
				return nil
			}

			writeTable(cmd, views)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}

func writeTable(cmd *cobra.Command, views []raffle.RecordView) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tGRADUATIONS\tINTEGRATIONS\tENTRIES")
	fmt.Fprintln(w, "----\t-----------\t------------\t-------")

	total := 0
	for _, v := range views {
		entries := humanize.Comma(int64(v.Entries))
		if v.Overridden {
			entries += "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			v.Name,
			humanize.Comma(int64(v.Graduations)),
			humanize.Comma(int64(v.Integrations)),
			entries,
		)
		total += v.Entries
	}
	w.Flush()

	fmt.Fprintln(cmd.OutOrStdout())
	cyan.Fprintf(cmd.OutOrStdout(), "%s managers, %s entries in the draw\n",
		humanize.Comma(int64(len(views))), humanize.Comma(int64(total)))
}
