package scope

import "github.com/bough38-web/haeji-voc-dashboard-sub000/internal/model"

// ComputeKPI counts the post-filter set. Distinct counts are over non-empty
// normalized contract identifiers, not raw row counts.
func ComputeKPI(records []model.Record) model.KPI {
	distinct := make(map[string]struct{})
	matched := make(map[string]struct{})
	unmatched := make(map[string]struct{})

	for _, r := range records {
		if r.ContractIDNorm == "" {
			continue
		}
		distinct[r.ContractIDNorm] = struct{}{}
		switch r.MatchStatus {
		case model.MatchStatusMatched:
			matched[r.ContractIDNorm] = struct{}{}
		case model.MatchStatusUnmatched:
			unmatched[r.ContractIDNorm] = struct{}{}
		}
	}

	return model.KPI{
		VisibleRows:       len(records),
		DistinctContracts: len(distinct),
		DistinctMatched:   len(matched),
		DistinctUnmatched: len(unmatched),
	}
}

// UnmatchedSubset returns the records still lacking a counterpart in any
// operational feed, for the outstanding-complaint view.
func UnmatchedSubset(records []model.Record) []model.Record {
	return keep(records, func(r model.Record) bool {
		return r.MatchStatus == model.MatchStatusUnmatched
	})
}
