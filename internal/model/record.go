package model

import "time"

// SourceCategory identifies the upstream operational feed a record came from.
type SourceCategory string

const (
	CategoryTerminationVOC      SourceCategory = "termination_voc"
	CategoryFacilityTermination SourceCategory = "facility_termination"
	CategoryTerminationRequest  SourceCategory = "termination_request"
	CategorySpecChange          SourceCategory = "spec_change"
	CategorySuspension          SourceCategory = "suspension"
	CategoryTerminationPipeline SourceCategory = "termination_pipeline"
)

// legacyCategoryAliases remaps retired feed names to their current category.
// "customer_list" was renamed upstream to the facility-termination feed.
var legacyCategoryAliases = map[SourceCategory]SourceCategory{
	"customer_list": CategoryFacilityTermination,
}

// AllCategories lists every category in feed order.
var AllCategories = []SourceCategory{
	CategoryTerminationVOC,
	CategoryFacilityTermination,
	CategoryTerminationRequest,
	CategorySpecChange,
	CategorySuspension,
	CategoryTerminationPipeline,
}

// CanonicalCategory resolves legacy aliases to their current category.
// Unknown values pass through unchanged.
func CanonicalCategory(c SourceCategory) SourceCategory {
	if canonical, ok := legacyCategoryAliases[c]; ok {
		return canonical
	}
	return c
}

// KnownCategory reports whether c names one of the configured feed
// categories, after alias resolution.
func KnownCategory(c SourceCategory) bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// MatchStatus says whether a VOC complaint's contract also appears in any
// non-VOC operational feed. Defined only for termination_voc records.
type MatchStatus string

const (
	MatchStatusMatched   MatchStatus = "matched"
	MatchStatusUnmatched MatchStatus = "unmatched"
)

// RiskTier is the elapsed-time urgency classification of an open complaint.
// Defined only for termination_voc records.
type RiskTier string

const (
	RiskHigh   RiskTier = "HIGH"
	RiskMedium RiskTier = "MEDIUM"
	RiskLow    RiskTier = "LOW"
)

// Record is one complaint or operational event, reconstructed fresh from
// source input on every load. Derived fields are recomputed deterministically
// from the raw fields and are never persisted on their own.
type Record struct {
	Category SourceCategory `json:"category"`

	ContractIDRaw  string `json:"contract_id_raw"`
	ContractIDNorm string `json:"contract_id_norm"` // sole equality key across sources

	Branch      string `json:"branch"`
	Zone        string `json:"zone"`
	ManagerName string `json:"manager_name"`

	ReceivedAt *time.Time `json:"received_at,omitempty"` // nil when absent or unparsable

	FeeRaw   string   `json:"fee_raw"`
	FeeValue *float64 `json:"fee_value,omitempty"` // nil when absent or unparsable
	FeeBand  FeeBand  `json:"fee_band"`

	MatchStatus MatchStatus `json:"match_status,omitempty"` // VOC records only
	RiskTier    RiskTier    `json:"risk_tier,omitempty"`    // VOC records only
}

// IsVOC reports whether the record belongs to the complaint feed that
// matching and risk tiering apply to.
func (r Record) IsVOC() bool {
	return r.Category == CategoryTerminationVOC
}
