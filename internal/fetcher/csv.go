package fetcher

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"
)

// ReadCSV reads CSV data into a Table. Rows may have varying widths; cells
// are trimmed. The first row is the header.
func ReadCSV(r io.Reader) (Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Table{}, eris.Wrap(err, "csv: read row")
		}
		for i, field := range record {
			record[i] = strings.TrimSpace(field)
		}
		rows = append(rows, record)
	}

	return splitHeader(rows), nil
}

// ReadCSVFile reads a CSV feed file. A missing file is a SourceUnavailable
// condition.
func ReadCSVFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Table{}, eris.Wrapf(ErrSourceUnavailable, "csv: %s", path)
		}
		return Table{}, eris.Wrapf(err, "csv: open %s", path)
	}
	defer f.Close()

	return ReadCSV(f)
}
