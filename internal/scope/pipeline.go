// Package scope applies the ordered filter pipeline that produces the record
// set a caller is allowed to see, plus its KPI counts. The identity stage is
// structural: it runs last inside Apply and takes no caller configuration,
// so no filter selection can widen a user's visibility.
package scope

import (
	"strings"
	"time"

	"github.com/bough38-web/haeji-voc-dashboard-sub000/internal/model"
)

// Stage is one pure, order-sensitive narrowing step.
type Stage func([]model.Record) []model.Record

// Apply runs the caller-configurable stages in their fixed order, then the
// mandatory identity restriction. Stages with empty selections pass records
// through untouched.
func Apply(records []model.Record, sel model.Selection, identity model.Identity) []model.Record {
	stages := []Stage{
		dateRange(sel.From, sel.To),
		branches(sel),
		riskTiers(sel.RiskTiers),
		matchStates(sel.MatchStates),
		feeBand(sel.FeeBand),
	}

	out := records
	for _, stage := range stages {
		out = stage(out)
	}

	// Terminal, non-configurable. Runs even when every stage above was a
	// no-op; adversarial selections cannot reach past it.
	return restrictToIdentity(out, identity)
}

func keep(records []model.Record, pred func(model.Record) bool) []model.Record {
	out := make([]model.Record, 0, len(records))
	for _, r := range records {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// dateRange keeps records received inside the inclusive range. The end bound
// covers the whole end day. Records without a usable receipt date drop out
// whenever either bound is set.
func dateRange(from, to *time.Time) Stage {
	return func(records []model.Record) []model.Record {
		if from == nil && to == nil {
			return records
		}
		var end time.Time
		if to != nil {
			y, m, d := to.Date()
			end = time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), to.Location())
		}
		return keep(records, func(r model.Record) bool {
			if r.ReceivedAt == nil {
				return false
			}
			if from != nil && r.ReceivedAt.Before(*from) {
				return false
			}
			if to != nil && r.ReceivedAt.After(end) {
				return false
			}
			return true
		})
	}
}

func branches(sel model.Selection) Stage {
	return func(records []model.Record) []model.Record {
		if sel.WantsAllBranches() {
			return records
		}
		wanted := make(map[string]struct{}, len(sel.Branches))
		for _, b := range sel.Branches {
			wanted[b] = struct{}{}
		}
		return keep(records, func(r model.Record) bool {
			_, ok := wanted[r.Branch]
			return ok
		})
	}
}

func riskTiers(tiers []model.RiskTier) Stage {
	return func(records []model.Record) []model.Record {
		if len(tiers) == 0 {
			return records
		}
		wanted := make(map[model.RiskTier]struct{}, len(tiers))
		for _, tier := range tiers {
			wanted[tier] = struct{}{}
		}
		return keep(records, func(r model.Record) bool {
			_, ok := wanted[r.RiskTier]
			return ok
		})
	}
}

func matchStates(states []model.MatchStatus) Stage {
	return func(records []model.Record) []model.Record {
		if len(states) == 0 {
			return records
		}
		wanted := make(map[model.MatchStatus]struct{}, len(states))
		for _, st := range states {
			wanted[st] = struct{}{}
		}
		return keep(records, func(r model.Record) bool {
			_, ok := wanted[r.MatchStatus]
			return ok
		})
	}
}

// feeBand keeps records whose derived fee falls in the selected band.
// Records without a fee never match a concrete band.
func feeBand(band model.FeeBand) Stage {
	return func(records []model.Record) []model.Record {
		if band == "" || band == model.FeeBandAll {
			return records
		}
		return keep(records, func(r model.Record) bool {
			if r.FeeValue == nil {
				return false
			}
			return r.FeeBand == band
		})
	}
}

// restrictToIdentity is the authorization boundary. Admin sees everything;
// a user sees only records whose manager name equals their display name
// (case-sensitive, after trimming).
func restrictToIdentity(records []model.Record, identity model.Identity) []model.Record {
	if identity.IsAdmin() {
		return records
	}
	name := strings.TrimSpace(identity.DisplayName)
	return keep(records, func(r model.Record) bool {
		return strings.TrimSpace(r.ManagerName) == name
	})
}
