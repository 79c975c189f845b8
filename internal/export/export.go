// Package export writes the per-guest result table consumed by
// bulk-messaging tools.
package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Header is the result table header. Param1 is the public-link column name
// the downstream messaging tool expects.
var Header = []string{"phone", "name", "Param1"}

// Row is one guest's entry in the result table.
type Row struct {
	Phone      string
	Name       string
	PublicLink string
}

// WriteCSV writes rows as UTF-8 CSV with a leading byte order mark. The BOM
// keeps spreadsheet tools from misreading non-ASCII names.
func WriteCSV(path string, rows []Row) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}

	bomWriter := transform.NewWriter(file, unicode.UTF8BOM.NewEncoder())
	writer := csv.NewWriter(bomWriter)
	if err := writer.Write(Header); err != nil {
		file.Close()
		return fmt.Errorf("write csv header: %w", err)
	}
	for i, row := range rows {
		if err := writer.Write([]string{row.Phone, row.Name, row.PublicLink}); err != nil {
			file.Close()
			return fmt.Errorf("write csv row %d: %w", i+1, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		file.Close()
		return fmt.Errorf("flush csv: %w", err)
	}
	if err := bomWriter.Close(); err != nil {
		file.Close()
		return fmt.Errorf("flush csv encoder: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close csv: %w", err)
	}
	return nil
}

// WriteXLSX writes rows as a single-sheet workbook with the same layout as
// the CSV result.
func WriteXLSX(path string, rows []Row) error {
	book := excelize.NewFile()
	defer book.Close()

	sheet := book.GetSheetName(0)
	header := make([]any, len(Header))
	for i, name := range Header {
		header[i] = name
	}
	if err := book.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write xlsx header: %w", err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("xlsx cell for row %d: %w", i+1, err)
		}
		if err := book.SetSheetRow(sheet, cell, &[]any{row.Phone, row.Name, row.PublicLink}); err != nil {
			return fmt.Errorf("write xlsx row %d: %w", i+1, err)
		}
	}
	if err := book.SaveAs(path); err != nil {
		return fmt.Errorf("save xlsx: %w", err)
	}
	return nil
}
