package model

import "time"

// Selection is one caller-supplied filter request. Zero values mean
// "no restriction" for the corresponding stage.
type Selection struct {
	From *time.Time `json:"from,omitempty"` // inclusive lower bound on received date
	To   *time.Time `json:"to,omitempty"`   // inclusive through the full end day

	Branches    []string      `json:"branches,omitempty"` // empty or AllBranches sentinel = no-op
	RiskTiers   []RiskTier    `json:"risk_tiers,omitempty"`
	MatchStates []MatchStatus `json:"match_states,omitempty"`
	FeeBand     FeeBand       `json:"fee_band,omitempty"` // "" or FeeBandAll = no-op
}

// AllBranches is the sentinel branch selection that disables branch filtering.
const AllBranches = "all"

// WantsAllBranches reports whether the branch stage should pass everything.
func (s Selection) WantsAllBranches() bool {
	if len(s.Branches) == 0 {
		return true
	}
	for _, b := range s.Branches {
		if b == AllBranches {
			return true
		}
	}
	return false
}

// KPI holds the distinct-contract counts computed over the post-filter set.
type KPI struct {
	VisibleRows       int `json:"visible_rows"`
	DistinctContracts int `json:"distinct_contracts"`
	DistinctMatched   int `json:"distinct_matched"`
	DistinctUnmatched int `json:"distinct_unmatched"`
}
