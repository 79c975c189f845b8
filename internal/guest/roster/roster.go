// Package roster loads guest records from tabular roster files.
package roster

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	apperrors "github.com/eventtools/guestpages/internal/errors"
	"github.com/eventtools/guestpages/internal/guest"
)

// Column headers the roster must carry. Matching is exact; rosters with
// different casing are rejected rather than silently remapped.
const (
	NameColumn  = "Name"
	PhoneColumn = "phone"
)

// Load reads the roster at path. The format is chosen by file extension;
// .csv and .xlsx are supported.
func Load(path string) ([]guest.Guest, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return loadCSV(path)
	case ".xlsx":
		return loadXLSX(path)
	default:
		return nil, apperrors.WithMetadata(apperrors.CodeRosterUnsupportedFormat,
			fmt.Sprintf("unsupported roster format %q", filepath.Ext(path)),
			map[string]string{"Path": path})
	}
}

func loadCSV(path string) ([]guest.Guest, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open roster: %w", err)
	}
	defer file.Close()

	// Spreadsheet tools re-save CSVs with a UTF-8 BOM; strip it so the
	// first header cell still matches.
	reader := csv.NewReader(transform.NewReader(file, unicode.UTF8BOM.NewDecoder()))
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}
	return fromRows(rows)
}

func loadXLSX(path string) ([]guest.Guest, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open roster: %w", err)
	}
	defer file.Close()

	rows, err := file.GetRows(file.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}
	return fromRows(rows)
}

// fromRows maps header-indexed rows onto guest records. Values are passed
// through untrimmed; validation happens when each guest is processed.
func fromRows(rows [][]string) ([]guest.Guest, error) {
	if len(rows) == 0 {
		return nil, apperrors.New(apperrors.CodeRosterMissingColumn, "roster has no header row")
	}

	nameIdx, phoneIdx := -1, -1
	for i, header := range rows[0] {
		switch header {
		case NameColumn:
			nameIdx = i
		case PhoneColumn:
			phoneIdx = i
		}
	}
	if nameIdx < 0 {
		return nil, missingColumn(NameColumn)
	}
	if phoneIdx < 0 {
		return nil, missingColumn(PhoneColumn)
	}

	guests := make([]guest.Guest, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		guests = append(guests, guest.Guest{
			Name:  cell(row, nameIdx),
			Phone: cell(row, phoneIdx),
		})
	}
	return guests, nil
}

func missingColumn(name string) error {
	return apperrors.WithMetadata(apperrors.CodeRosterMissingColumn,
		fmt.Sprintf("roster is missing the %q column", name),
		map[string]string{"Column": name})
}

// cell returns the value at idx, tolerating short rows. XLSX readers drop
// trailing empty cells, so a short row is not a shape error by itself.
func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}

// blankRow reports whether every cell is empty. Spreadsheets often carry
// padding rows below the data; those are skipped rather than rejected.
func blankRow(row []string) bool {
	for _, value := range row {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}
