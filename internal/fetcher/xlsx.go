package fetcher

import (
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// ReadXLSX reads one sheet of an XLSX workbook into a Table. The first row
// is the header. A missing file is a SourceUnavailable condition.
func ReadXLSX(path string, sheetIndex int) (Table, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Table{}, eris.Wrapf(ErrSourceUnavailable, "xlsx: %s", path)
	}

	f, err := xlsx.OpenFile(path)
	if err != nil {
		return Table{}, eris.Wrapf(err, "xlsx: open %s", path)
	}

	if sheetIndex >= len(f.Sheets) {
		return Table{}, eris.Errorf("xlsx: sheet index %d out of range (file has %d sheets)", sheetIndex, len(f.Sheets))
	}
	sheet := f.Sheets[sheetIndex]

	rows := make([][]string, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		rows = append(rows, rowToStrings(row))
	}

	return splitHeader(rows), nil
}

func rowToStrings(row *xlsx.Row) []string {
	cells := make([]string, len(row.Cells))
	for j, cell := range row.Cells {
		cells[j] = strings.TrimSpace(cell.String())
	}
	return cells
}
