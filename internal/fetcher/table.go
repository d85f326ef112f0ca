// Package fetcher reads the upstream feed tables (XLSX, CSV, FTP drops) the
// reconciliation engine consumes. It only moves bytes into header/row form;
// all interpretation of columns happens downstream.
package fetcher

import (
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
)

// ErrSourceUnavailable marks a feed table that could not be read at all.
// Unlike malformed cells, a missing source blocks the view and must surface
// to the caller.
var ErrSourceUnavailable = eris.New("source unavailable")

// Table is one ingested feed table: the header row plus data rows, cells as
// trimmed strings.
type Table struct {
	Headers []string
	Rows    [][]string
}

// ReadTable reads an XLSX or CSV feed file by extension.
func ReadTable(path string) (Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return ReadXLSX(path, 0)
	case ".csv":
		return ReadCSVFile(path)
	default:
		return Table{}, eris.Errorf("fetcher: unsupported table format %q", filepath.Ext(path))
	}
}

func splitHeader(rows [][]string) Table {
	if len(rows) == 0 {
		return Table{}
	}
	return Table{Headers: rows[0], Rows: rows[1:]}
}
