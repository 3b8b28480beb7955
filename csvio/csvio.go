// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package csvio

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/CBlanco0220/Raffle-tracker/raffle"
)

// Column names
const (
	ColName         = "Name"
	ColGraduations  = "Graduations"
	ColIntegrations = "Integrations"
	ColEntries      = "Entries"
)

var (
	ErrNoRows         = fmt.Errorf("%w: CSV has no data rows", raffle.ErrInvalidInput)
	ErrMissingColumns = fmt.Errorf("%w: CSV must have columns: Name,Graduations,Integrations", raffle.ErrInvalidInput)
)

// Row is one valid import line.
type Row struct {
	Line         int
	Name         string
	Graduations  int
	Integrations int
}

// Skip describes an import line that was not applied.
type Skip struct {
	Line   int
	Name   string
	Reason string
}

// Result summarises an Apply run.
type Result struct {
	Applied int
	Skipped []Skip
}

// Setter is the mutation needed by Apply.
type Setter interface {
	SetField(ctx context.Context, name string, field raffle.Field, value int) (raffle.ManagerRecord, error)
}

// WriteExport writes the full export, one row per view.
func WriteExport(w io.Writer, views []raffle.RecordView) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{ColName, ColGraduations, ColIntegrations, ColEntries}); err != nil {
		return err
	}
	for _, v := range views {
		err := cw.Write([]string{
			v.Name,
			strconv.Itoa(v.Graduations),
			strconv.Itoa(v.Integrations),
			strconv.Itoa(v.Entries),
		})
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTemplate writes a zeroed import template for the given views.
func WriteTemplate(w io.Writer, views []raffle.RecordView) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{ColName, ColGraduations, ColIntegrations}); err != nil {
		return err
	}
	for _, v := range views {
		if err := cw.Write([]string{v.Name, "0", "0"}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ParseImport reads an import file. It fails only when the file as a whole
// is unusable; bad rows come back in the skipped list.
func ParseImport(r io.Reader) ([]Row, []Skip, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, ErrNoRows
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", raffle.ErrInvalidInput, err)
	}

	nameIdx, gradsIdx, intsIdx := -1, -1, -1
	for i, col := range header {
		switch strings.TrimSpace(strings.TrimPrefix(col, "\ufeff")) {
		case ColName:
			nameIdx = i
		case ColGraduations:
			gradsIdx = i
		case ColIntegrations:
			intsIdx = i
		}
	}
	if nameIdx < 0 || gradsIdx < 0 || intsIdx < 0 {
		return nil, nil, ErrMissingColumns
	}
	width := max(nameIdx, gradsIdx, intsIdx) + 1

	var (
		rows    []Row
		skipped []Skip
		seen    int
	)
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", raffle.ErrInvalidInput, err)
		}
		seen++
		line, _ := cr.FieldPos(0)

		if len(record) < width {
			skipped = append(skipped, Skip{Line: line, Reason: "malformed line"})
			continue
		}

		name := strings.TrimSpace(strings.Trim(record[nameIdx], `"`))
		if name == "" {
			skipped = append(skipped, Skip{Line: line, Reason: "missing name"})
			continue
		}
		grads, gErr := parseCount(record[gradsIdx])
		ints, iErr := parseCount(record[intsIdx])
		if gErr != nil || iErr != nil {
			skipped = append(skipped, Skip{Line: line, Name: name, Reason: "counts must be non-negative integers"})
			continue
		}

		rows = append(rows, Row{Line: line, Name: name, Graduations: grads, Integrations: ints})
	}

	if seen == 0 {
		return nil, nil, ErrNoRows
	}
	return rows, skipped, nil
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, errors.New("negative")
	}
	return n, nil
}

// Apply writes each row's graduations then integrations. Unknown managers
// are skipped; any other error stops the run and is returned with the
// partial result.
func Apply(ctx context.Context, s Setter, rows []Row) (Result, error) {
	var res Result
	for _, row := range rows {
		if _, err := s.SetField(ctx, row.Name, raffle.FieldGraduations, row.Graduations); err != nil {
			if errors.Is(err, raffle.ErrNotFound) {
				res.Skipped = append(res.Skipped, Skip{Line: row.Line, Name: row.Name, Reason: "manager not found"})
				continue
			}
			return res, fmt.Errorf("line %d: %w", row.Line, err)
		}
		if _, err := s.SetField(ctx, row.Name, raffle.FieldIntegrations, row.Integrations); err != nil {
			return res, fmt.Errorf("line %d: %w", row.Line, err)
		}
		res.Applied++
	}
	return res, nil
}
