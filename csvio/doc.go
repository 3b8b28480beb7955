// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package csvio reads and writes the spreadsheet formats used to move
manager counts in and out of the tracker.

# Export

	Name,Graduations,Integrations,Entries
	Alice,10,5,3

Entries is the effective value, so an override shows up as-is.

# Template

	Name,Graduations,Integrations
	Alice,0,0

One zeroed row per known manager, ready to be filled in and imported.

# Import

The header must name Name, Graduations and Integrations, in any order and
with extra columns allowed. Each data row is checked on its own; rows with
an empty name, a missing column, or a count that is not a non-negative
integer are reported as skipped and the rest carry on.

Apply writes graduations then integrations for every valid row through a
Setter (normally *raffle.Service), so each write clears any override just
like a manual edit would. Managers that do not exist are skipped. A
persistence failure stops the import.
*/
package csvio
