package main

import (
	"time"

	"github.com/rotisserie/eris"

	"github.com/bough38-web/haeji-voc-dashboard-sub000/internal/model"
)

const dateFlagLayout = "2006-01-02"

// buildSelection converts flag/query string inputs into a filter selection.
// Empty inputs leave the corresponding stage as a no-op.
func buildSelection(from, to string, branches, risks, matches []string, feeBand string) (model.Selection, error) {
	var sel model.Selection

	if from != "" {
		t, err := time.Parse(dateFlagLayout, from)
		if err != nil {
			return sel, eris.Wrapf(err, "parse --from %q", from)
		}
		sel.From = &t
	}
	if to != "" {
		t, err := time.Parse(dateFlagLayout, to)
		if err != nil {
			return sel, eris.Wrapf(err, "parse --to %q", to)
		}
		sel.To = &t
	}

	sel.Branches = branches

	for _, r := range risks {
		switch model.RiskTier(r) {
		case model.RiskHigh, model.RiskMedium, model.RiskLow:
			sel.RiskTiers = append(sel.RiskTiers, model.RiskTier(r))
		default:
			return sel, eris.Errorf("unknown risk tier %q (HIGH, MEDIUM, LOW)", r)
		}
	}

	for _, m := range matches {
		switch model.MatchStatus(m) {
		case model.MatchStatusMatched, model.MatchStatusUnmatched:
			sel.MatchStates = append(sel.MatchStates, model.MatchStatus(m))
		default:
			return sel, eris.Errorf("unknown match status %q (matched, unmatched)", m)
		}
	}

	if feeBand != "" && feeBand != string(model.FeeBandAll) {
		band := model.FeeBand(feeBand)
		valid := false
		for _, b := range model.AllFeeBands {
			if b == band {
				valid = true
				break
			}
		}
		if !valid {
			return sel, eris.Errorf("unknown fee band %q", feeBand)
		}
		sel.FeeBand = band
	}

	return sel, nil
}
