package scope

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bough38-web/haeji-voc-dashboard-sub000/internal/model"
)

func ts(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 10, 30, 0, 0, time.UTC)
	return &t
}

func fee(v float64) *float64 { return &v }

var admin = model.Identity{Role: model.RoleAdmin, DisplayName: "관리자"}

func sample() []model.Record {
	return []model.Record{
		{
			Category: model.CategoryTerminationVOC, ContractIDNorm: "1234A",
			Branch: "서울", ManagerName: "Kim",
			ReceivedAt:  ts(2025, 6, 10),
			FeeValue:    fee(25000), FeeBand: model.FeeBandUnder100K,
			MatchStatus: model.MatchStatusMatched, RiskTier: model.RiskHigh,
		},
		{
			Category: model.CategoryTerminationVOC, ContractIDNorm: "5678B",
			Branch: "부산", ManagerName: "Lee",
			ReceivedAt:  ts(2025, 6, 1),
			FeeBand:     model.FeeBandUnspecified,
			MatchStatus: model.MatchStatusUnmatched, RiskTier: model.RiskLow,
		},
		{
			Category: model.CategoryTerminationVOC, ContractIDNorm: "9999C",
			Branch: "서울", ManagerName: "Kim",
			FeeValue:    fee(150000), FeeBand: model.FeeBand100To200K,
			MatchStatus: model.MatchStatusUnmatched, RiskTier: model.RiskLow,
		},
	}
}

func TestApply_NoSelectionAdminSeesAll(t *testing.T) {
	out := Apply(sample(), model.Selection{}, admin)
	assert.Len(t, out, 3)
}

func TestApply_DateRangeInclusiveEndDay(t *testing.T) {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	out := Apply(sample(), model.Selection{From: &from, To: &to}, admin)

	// Received 10:30 on the end day still passes; the nil-date record drops.
	require.Len(t, out, 2)
	for _, r := range out {
		assert.NotNil(t, r.ReceivedAt)
	}
}

func TestApply_BranchAllSentinelIsNoop(t *testing.T) {
	out := Apply(sample(), model.Selection{Branches: []string{model.AllBranches}}, admin)
	assert.Len(t, out, 3)
}

func TestApply_BranchSet(t *testing.T) {
	out := Apply(sample(), model.Selection{Branches: []string{"부산"}}, admin)
	require.Len(t, out, 1)
	assert.Equal(t, "5678B", out[0].ContractIDNorm)
}

func TestApply_RiskAndMatchSets(t *testing.T) {
	out := Apply(sample(), model.Selection{
		RiskTiers:   []model.RiskTier{model.RiskLow},
		MatchStates: []model.MatchStatus{model.MatchStatusUnmatched},
	}, admin)
	assert.Len(t, out, 2)
}

func TestApply_FeeBandExcludesNilFee(t *testing.T) {
	out := Apply(sample(), model.Selection{FeeBand: model.FeeBandUnder100K}, admin)
	require.Len(t, out, 1)
	assert.Equal(t, "1234A", out[0].ContractIDNorm)

	// The nil-fee record matches no concrete band.
	out = Apply(sample(), model.Selection{FeeBand: model.FeeBand500KPlus}, admin)
	assert.Empty(t, out)
}

func TestApply_UserScopeIsMandatory(t *testing.T) {
	kim := model.Identity{Role: model.RoleUser, DisplayName: "Kim"}

	out := Apply(sample(), model.Selection{
		Branches:    []string{model.AllBranches},
		MatchStates: []model.MatchStatus{model.MatchStatusMatched, model.MatchStatusUnmatched},
	}, kim)

	require.Len(t, out, 2)
	for _, r := range out {
		assert.Equal(t, "Kim", r.ManagerName)
	}
}

func TestApply_UserScopeRunsWithEmptySelection(t *testing.T) {
	lee := model.Identity{Role: model.RoleUser, DisplayName: "Lee"}

	out := Apply(sample(), model.Selection{}, lee)

	require.Len(t, out, 1)
	assert.Equal(t, "5678B", out[0].ContractIDNorm)
}

func TestApply_UserScopeTrimsButKeepsCase(t *testing.T) {
	out := Apply(sample(), model.Selection{}, model.Identity{Role: model.RoleUser, DisplayName: " Kim "})
	assert.Len(t, out, 2)

	out = Apply(sample(), model.Selection{}, model.Identity{Role: model.RoleUser, DisplayName: "kim"})
	assert.Empty(t, out)
}

func TestApply_AdversarialSelectionCannotWidenScope(t *testing.T) {
	lee := model.Identity{Role: model.RoleUser, DisplayName: "Lee"}

	selections := []model.Selection{
		{},
		{Branches: []string{model.AllBranches}},
		{Branches: []string{"서울", "부산"}},
		{RiskTiers: []model.RiskTier{model.RiskHigh, model.RiskMedium, model.RiskLow}},
		{MatchStates: []model.MatchStatus{model.MatchStatusMatched, model.MatchStatusUnmatched}},
		{FeeBand: model.FeeBandAll},
	}

	for _, sel := range selections {
		for _, r := range Apply(sample(), sel, lee) {
			assert.Equal(t, "Lee", r.ManagerName)
		}
	}
}

func TestComputeKPI_DistinctOverIdentifiers(t *testing.T) {
	records := append(sample(), model.Record{
		Category: model.CategoryTerminationVOC, ContractIDNorm: "1234A",
		ManagerName: "Kim", MatchStatus: model.MatchStatusMatched,
	}, model.Record{
		Category: model.CategoryTerminationVOC, ContractIDNorm: "",
		MatchStatus: model.MatchStatusUnmatched,
	})

	kpi := ComputeKPI(records)

	assert.Equal(t, 5, kpi.VisibleRows)
	assert.Equal(t, 3, kpi.DistinctContracts) // duplicate and empty ids collapse
	assert.Equal(t, 1, kpi.DistinctMatched)
	assert.Equal(t, 2, kpi.DistinctUnmatched)
}

func TestUnmatchedSubset(t *testing.T) {
	subset := UnmatchedSubset(sample())
	assert.Len(t, subset, 2)
}
