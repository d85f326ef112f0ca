package ingest

import (
	"strings"
	"time"
)

// dateLayouts are the receipt-date spellings observed across the feeds.
// Ordered from most to least specific so prefixes don't shadow longer forms.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
	"2006.01.02",
	"2006년 1월 2일",
	"20060102",
	"01-02-06",
}

// parseDate parses a free-text receipt date. Unparsable input yields nil,
// never an error: a malformed date degrades the record, it does not block
// the load.
func parseDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}
