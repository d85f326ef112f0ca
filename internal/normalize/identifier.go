// Package normalize canonicalizes the raw fields complaint feeds disagree
// on: contract identifiers, free-text fee amounts, and branch names.
package normalize

import (
	"strings"

	"golang.org/x/text/width"
)

// ContractID reduces a raw contract identifier to its comparable key:
// full-width characters folded to ASCII, then every character that is not an
// ASCII letter or digit dropped. Case is preserved. Empty or absent input
// yields the empty key, which never matches anything.
func ContractID(raw string) string {
	raw = width.Fold.String(strings.TrimSpace(raw))

	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// PhoneDigits reduces a raw phone field to its digits. Full-width digits in
// pasted spreadsheet cells fold to ASCII before filtering.
func PhoneDigits(raw string) string {
	raw = width.Fold.String(raw)

	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
