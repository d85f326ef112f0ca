package ledger

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rotisserie/eris"

	"github.com/bough38-web/haeji-voc-dashboard-sub000/internal/model"
)

// csvHeader is the stable column order of the text-encoded ledger file.
var csvHeader = []string{"contract_id_norm", "response_text", "author", "recorded_at", "note"}

// CSVLedger stores entries as one CSV row per append. Writes are serialized
// with a mutex so concurrent callers within one process cannot interleave
// rows.
type CSVLedger struct {
	path string
	mu   sync.Mutex
}

// NewCSV returns a ledger backed by the CSV file at path. The file is
// created lazily on first append.
func NewCSV(path string) *CSVLedger {
	return &CSVLedger{path: path}
}

// Append writes one entry row, creating the file with its header first if
// needed. Every failure is returned.
func (l *CSVLedger) Append(_ context.Context, entry model.FeedbackEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	_, statErr := os.Stat(l.path)
	fresh := os.IsNotExist(statErr)

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return eris.Wrapf(err, "ledger: open %s", l.path)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if fresh {
		if err := w.Write(csvHeader); err != nil {
			return eris.Wrap(err, "ledger: write header")
		}
	}
	if err := w.Write(encodeEntry(entry)); err != nil {
		return eris.Wrap(err, "ledger: write entry")
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return eris.Wrap(err, "ledger: flush")
	}
	if err := f.Sync(); err != nil {
		return eris.Wrap(err, "ledger: sync")
	}
	return nil
}

// LoadAll reads every entry in file (insertion) order. A missing file is an
// empty ledger, not an error.
func (l *CSVLedger) LoadAll(_ context.Context) ([]model.FeedbackEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, eris.Wrapf(err, "ledger: open %s", l.path)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var entries []model.FeedbackEntry
	first := true
	for {
		row, err := r.Read()
		if err == io.EOF {
			return entries, nil
		}
		if err != nil {
			return nil, eris.Wrap(err, "ledger: read row")
		}
		if first {
			first = false
			continue // header
		}
		entries = append(entries, decodeEntry(row))
	}
}

func (l *CSVLedger) Close() error { return nil }

func encodeEntry(e model.FeedbackEntry) []string {
	return []string{
		e.ContractIDNorm,
		e.ResponseText,
		e.Author,
		e.RecordedAt.UTC().Format(time.RFC3339),
		e.Note,
	}
}

func decodeEntry(row []string) model.FeedbackEntry {
	get := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}
	recordedAt, _ := time.Parse(time.RFC3339, get(3))
	return model.FeedbackEntry{
		ContractIDNorm: get(0),
		ResponseText:   get(1),
		Author:         get(2),
		RecordedAt:     recordedAt,
		Note:           get(4),
	}
}
