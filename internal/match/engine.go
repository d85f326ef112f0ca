// Package match decides, per VOC complaint, whether the same contract
// appears in any other operational feed.
package match

import "github.com/bough38-web/haeji-voc-dashboard-sub000/internal/model"

// OtherUnion builds the set of non-empty normalized contract identifiers
// present in any non-VOC category. Single pass over the input.
func OtherUnion(records []model.Record) map[string]struct{} {
	union := make(map[string]struct{})
	for _, r := range records {
		if r.IsVOC() || r.ContractIDNorm == "" {
			continue
		}
		union[r.ContractIDNorm] = struct{}{}
	}
	return union
}

// Annotate stamps MatchStatus on every VOC record in place. A record with an
// empty normalized identifier is always unmatched; empty identifiers never
// match each other. Non-VOC records are left untouched.
func Annotate(records []model.Record) {
	union := OtherUnion(records)
	for i := range records {
		if !records[i].IsVOC() {
			continue
		}
		records[i].MatchStatus = statusFor(records[i].ContractIDNorm, union)
	}
}

func statusFor(id string, union map[string]struct{}) model.MatchStatus {
	if id == "" {
		return model.MatchStatusUnmatched
	}
	if _, ok := union[id]; ok {
		return model.MatchStatusMatched
	}
	return model.MatchStatusUnmatched
}
