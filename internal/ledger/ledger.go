// Package ledger persists handler feedback on complaints. The ledger is the
// only durable state in the system: append-only, keyed by normalized
// contract identifier, multiple entries per identifier retained. Append
// failures always surface to the caller; a swallowed append is a lost
// handling record.
package ledger

import (
	"context"

	"github.com/bough38-web/haeji-voc-dashboard-sub000/internal/model"
)

// Ledger is the append-only feedback store. LoadAll returns every entry
// ever appended, in insertion order. There is no delete or update.
type Ledger interface {
	Append(ctx context.Context, entry model.FeedbackEntry) error
	LoadAll(ctx context.Context) ([]model.FeedbackEntry, error)
	Close() error
}

// ForContract filters entries down to one normalized identifier, preserving
// insertion order.
func ForContract(entries []model.FeedbackEntry, contractIDNorm string) []model.FeedbackEntry {
	var out []model.FeedbackEntry
	for _, e := range entries {
		if e.ContractIDNorm == contractIDNorm {
			out = append(out, e)
		}
	}
	return out
}
