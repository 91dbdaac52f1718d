package export

import (
	"fmt"
	"io"

	"github.com/tealeg/xlsx"
)

// WriteXLSX writes the table to a single-sheet workbook.
func WriteXLSX(w io.Writer, table Table) error {
	name := table.Sheet
	if name == "" {
		name = "Export"
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet(name)
	if err != nil {
		return fmt.Errorf("create sheet %q: %w", name, err)
	}

	headerRow := sheet.AddRow()
	for _, h := range table.Headers {
		headerRow.AddCell().SetValue(h)
	}

	for _, record := range table.Rows {
		row := sheet.AddRow()
		for _, value := range record {
			cell := row.AddCell()
			if value == nil {
				cell.SetString("")
				continue
			}
			cell.SetValue(value)
		}
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
