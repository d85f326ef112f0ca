// Package ingest turns raw feed tables into the canonical record snapshot
// the filter pipeline consumes. Loading is idempotent: the same inputs and
// reference date always produce an equal snapshot.
package ingest

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bough38-web/haeji-voc-dashboard-sub000/internal/directory"
	"github.com/bough38-web/haeji-voc-dashboard-sub000/internal/fetcher"
	"github.com/bough38-web/haeji-voc-dashboard-sub000/internal/match"
	"github.com/bough38-web/haeji-voc-dashboard-sub000/internal/model"
	"github.com/bough38-web/haeji-voc-dashboard-sub000/internal/normalize"
	"github.com/bough38-web/haeji-voc-dashboard-sub000/internal/risk"
	"github.com/bough38-web/haeji-voc-dashboard-sub000/internal/schema"
)

// Source names one feed table on disk.
type Source struct {
	Category model.SourceCategory
	Path     string
}

// Snapshot is the per-request context object: every canonical record plus
// the contact directory, assembled fresh from source input. Nothing in the
// engine mutates it after load.
type Snapshot struct {
	Records   []model.Record
	Directory *directory.Directory
	LoadedAt  time.Time
}

// VOC returns only the complaint-feed records, the set the filter pipeline
// operates on.
func (s *Snapshot) VOC() []model.Record {
	out := make([]model.Record, 0, len(s.Records))
	for _, r := range s.Records {
		if r.IsVOC() {
			out = append(out, r)
		}
	}
	return out
}

// Branches lists the known branches present among VOC records, in canonical
// order. Unknown branch names stay on their records but are not listed.
func (s *Snapshot) Branches() []string {
	present := make(map[string]struct{})
	for _, r := range s.Records {
		if r.IsVOC() && r.Branch != "" {
			present[r.Branch] = struct{}{}
		}
	}
	return normalize.OrderedBranches(present)
}

// Loader reads the configured feed tables and assembles snapshots.
type Loader struct {
	Sources     []Source
	ContactPath string
	Synonyms    map[schema.Target][]string
	Now         func() time.Time // reference date for risk tiering
}

// Load reads every source concurrently, then assembles the canonical record
// set single-threaded: schema resolution, normalization, enrichment,
// matching. A missing source table fails the whole load; malformed cells
// only degrade their record.
func (l *Loader) Load(ctx context.Context) (*Snapshot, error) {
	now := time.Now
	if l.Now != nil {
		now = l.Now
	}

	tables := make([]fetcher.Table, len(l.Sources))
	var contact fetcher.Table

	g, _ := errgroup.WithContext(ctx)
	var mu sync.Mutex

	for i, src := range l.Sources {
		g.Go(func() error {
			t, err := fetcher.ReadTable(src.Path)
			if err != nil {
				return err
			}
			mu.Lock()
			tables[i] = t
			mu.Unlock()
			return nil
		})
	}
	if l.ContactPath != "" {
		g.Go(func() error {
			t, err := fetcher.ReadTable(l.ContactPath)
			if err != nil {
				return err
			}
			mu.Lock()
			contact = t
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	reference := now()

	var records []model.Record
	for i, src := range l.Sources {
		category := model.CanonicalCategory(src.Category)
		records = append(records, assemble(category, tables[i], l.Synonyms, reference)...)
	}

	match.Annotate(records)

	snap := &Snapshot{
		Records:   records,
		Directory: directory.Build(contact.Headers, contact.Rows, l.Synonyms),
		LoadedAt:  reference,
	}

	zap.L().Info("snapshot loaded",
		zap.Int("records", len(records)),
		zap.Int("contacts", snap.Directory.Len()),
		zap.Int("sources", len(l.Sources)))

	return snap, nil
}

// assemble converts one feed table into canonical records.
func assemble(category model.SourceCategory, table fetcher.Table, synonyms map[schema.Target][]string, reference time.Time) []model.Record {
	res := schema.Resolve(table.Headers, schema.RecordTargets, synonyms)
	if res.Incomplete() {
		missing := make([]string, len(res.Missing))
		for i, m := range res.Missing {
			missing[i] = string(m)
		}
		sort.Strings(missing)
		zap.L().Warn("feed schema incomplete",
			zap.String("category", string(category)),
			zap.Strings("missing", missing))
	}

	// Zone and manager come from whichever candidate column is filled first
	// per row; feeds scatter them across several headers.
	zoneCols := schema.ResolveMulti(table.Headers, synonyms[schema.TargetZone])
	managerCols := schema.ResolveMulti(table.Headers, synonyms[schema.TargetManager])

	records := make([]model.Record, 0, len(table.Rows))
	for _, row := range table.Rows {
		if emptyRow(row) {
			continue
		}

		rawID := res.Value(row, schema.TargetContractID)
		feeRaw := res.Value(row, schema.TargetFee)
		feeValue := normalize.Fee(feeRaw)

		rec := model.Record{
			Category:       category,
			ContractIDRaw:  rawID,
			ContractIDNorm: normalize.ContractID(rawID),
			Branch:         normalize.Branch(res.Value(row, schema.TargetBranch)),
			Zone:           schema.CoalesceColumns(row, zoneCols),
			ManagerName:    schema.CoalesceColumns(row, managerCols),
			ReceivedAt:     parseDate(res.Value(row, schema.TargetReceivedAt)),
			FeeRaw:         feeRaw,
			FeeValue:       feeValue,
			FeeBand:        normalize.FeeBand(feeValue),
		}

		if rec.Category == model.CategoryTerminationVOC {
			rec.RiskTier = risk.Classify(rec.ReceivedAt, reference)
		}

		records = append(records, rec)
	}

	return records
}

func emptyRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
