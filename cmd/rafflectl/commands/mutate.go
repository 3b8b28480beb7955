// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/CBlanco0220/Raffle-tracker/raffle"
)

func parseCountArg(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q is not a non-negative integer", raffle.ErrInvalidInput, s)
	}
	return n, nil
}

func addCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <graduations|integrations> <quantity>",
		Short: "Add to a manager's graduations or integrations",
		Long: `Add quantity to one counter. Any manual entries override is cleared,
exactly as when the change is made through the web UI.`,
		Example: `  rafflectl add "Bob Smith" graduations 3`,
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrinter(cmd)

			field, err := raffle.ParseField(args[1])
			if err != nil {
				return p.fail("Invalid field", err)
			}
			quantity, err := parseCountArg(args[2])
			if err != nil {
				return p.fail("Invalid quantity", err)
			}

			sess, err := opts.openSession(cmd.Context())
			if err != nil {
				return p.fail("Could not open store", err)
			}
			defer sess.Close()

			rec, err := sess.svc.IncrementField(cmd.Context(), args[0], field, quantity)
			if err != nil {
				return p.fail(mutationTitle(err), err)
			}

			p.success("Added %d %s to %s (%d entries)", quantity, field, rec.Name, raffle.ResolveEffectiveEntries(rec))
			return nil
		},
	}
}

func setCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set <name> <graduations|integrations|entries> <value>",
		Short: "Set a manager's counter or entries override",
		Long: `Set one field directly. Setting graduations or integrations clears any
override; setting entries installs an override without touching the
counters.`,
		Example: `  rafflectl set Alice entries 5`,
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrinter(cmd)

			field, err := raffle.ParseField(args[1])
			if err != nil {
				return p.fail("Invalid field", err)
			}
			value, err := parseCountArg(args[2])
			if err != nil {
				return p.fail("Invalid value", err)
			}

			sess, err := opts.openSession(cmd.Context())
			if err != nil {
				return p.fail("Could not open store", err)
			}
			defer sess.Close()

			rec, err := sess.svc.SetField(cmd.Context(), args[0], field, value)
			if err != nil {
				return p.fail(mutationTitle(err), err)
			}

			p.success("Set %s's %s to %d (%d entries)", rec.Name, field, value, raffle.ResolveEffectiveEntries(rec))
			return nil
		},
	}
}

func resetCmd(opts *rootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Zero every manager's counters and overrides",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrinter(cmd)

			if !yes {
				return p.fail("Refusing to reset without --yes", nil)
			}

			sess, err := opts.openSession(cmd.Context())
			if err != nil {
				return p.fail("Could not open store", err)
			}
			defer sess.Close()

			if err := sess.svc.ResetAll(cmd.Context()); err != nil {
				return p.fail(mutationTitle(err), err)
			}

			p.success("All manager data has been RESET to zeros!")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm the reset")
	return cmd
}

func mutationTitle(err error) string {
	switch {
	case errors.Is(err, raffle.ErrNotFound):
		return "Manager not found"
	case errors.Is(err, raffle.ErrInvalidInput):
		return "Invalid input"
	case errors.Is(err, raffle.ErrPersistence):
		return "Change applied but not saved"
	}
	return "Update failed"
}
