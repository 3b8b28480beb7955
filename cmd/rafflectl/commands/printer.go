// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan)
)

// printer writes colored status lines to a command's output streams.
type printer struct {
	out io.Writer
	err io.Writer
}

func (p printer) success(format string, a ...any) {
	green.Fprintf(p.out, "✓ "+format+"\n", a...)
}

func (p printer) info(format string, a ...any) {
	fmt.Fprintf(p.out, format+"\n", a...)
}

func (p printer) warning(format string, a ...any) {
	yellow.Fprintf(p.err, "! "+format+"\n", a...)
}

// fail prints title and detail to stderr and returns an error carrying the
// title for cobra, which is configured not to print it again.
func (p printer) fail(title string, err error) error {
	red.Fprintf(p.err, "%s\n", title)
	if err != nil {
		fmt.Fprintf(p.err, "  %v\n", err)
		return fmt.Errorf("%s: %w", title, err)
	}
	return fmt.Errorf("%s", title)
}
