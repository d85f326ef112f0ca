// Package directory builds the name → contact lookup used for identity
// resolution and the notification boundary.
package directory

import (
	"go.uber.org/zap"

	"github.com/bough38-web/haeji-voc-dashboard-sub000/internal/model"
	"github.com/bough38-web/haeji-voc-dashboard-sub000/internal/normalize"
	"github.com/bough38-web/haeji-voc-dashboard-sub000/internal/schema"
)

// Directory is a read-mostly lookup from person name to contact details.
type Directory struct {
	entries map[string]model.ContactEntry
}

// Build resolves the contact table's columns and assembles the directory.
// Duplicate names are last-write-wins. When the phone column resolved,
// entries whose phone reduces to fewer than 4 digits are dropped; when it
// did not resolve, entries are kept with an empty phone (degraded mode).
func Build(headers []string, rows [][]string, synonyms map[schema.Target][]string) *Directory {
	res := schema.Resolve(headers, schema.DirectoryTargets, synonyms)
	if res.Incomplete() {
		zap.L().Warn("contact table schema incomplete",
			zap.Any("missing", res.Missing))
	}

	_, hasName := res.Indexes[schema.TargetName]
	_, hasPhone := res.Indexes[schema.TargetPhone]

	d := &Directory{entries: make(map[string]model.ContactEntry, len(rows))}
	if !hasName {
		return d
	}

	for _, row := range rows {
		name := res.Value(row, schema.TargetName)
		if name == "" {
			continue
		}

		digits := normalize.PhoneDigits(res.Value(row, schema.TargetPhone))
		if hasPhone && len(digits) < 4 {
			continue
		}
		if len(digits) < 4 {
			digits = ""
		}

		d.entries[name] = model.ContactEntry{
			Name:        name,
			Email:       res.Value(row, schema.TargetEmail),
			PhoneDigits: digits,
		}
	}

	return d
}

// Lookup returns the entry for name.
func (d *Directory) Lookup(name string) (model.ContactEntry, bool) {
	e, ok := d.entries[name]
	return e, ok
}

// LastFour returns the final four phone digits for name, or "" when the
// entry is absent or phoneless.
func (d *Directory) LastFour(name string) string {
	e, ok := d.entries[name]
	if !ok || len(e.PhoneDigits) < 4 {
		return ""
	}
	return e.PhoneDigits[len(e.PhoneDigits)-4:]
}

// Len returns the number of directory entries.
func (d *Directory) Len() int {
	return len(d.entries)
}
