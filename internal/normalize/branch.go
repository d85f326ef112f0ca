package normalize

import "strings"

// branchAliases maps the long-form branch names used by older feeds to the
// short-form names the dashboard lists. Unknown values pass through.
var branchAliases = map[string]string{
	"서울지사":   "서울",
	"서울본부":   "서울",
	"경기남부지사": "경기남부",
	"경기북부지사": "경기북부",
	"인천지사":   "인천",
	"강원지사":   "강원",
	"충청지사":   "충청",
	"전라지사":   "전라",
	"경상지사":   "경상",
	"부산지사":   "부산",
	"제주지사":   "제주",
}

// BranchOrder is the canonical listing order for known branches. Branches
// outside this list still carry their records but are left out of any
// branch-ordered enumeration.
var BranchOrder = []string{
	"서울", "경기남부", "경기북부", "인천", "강원",
	"충청", "전라", "경상", "부산", "제주",
}

// Branch normalizes an organizational unit name via the alias table.
func Branch(raw string) string {
	name := strings.TrimSpace(raw)
	if short, ok := branchAliases[name]; ok {
		return short
	}
	return name
}

// KnownBranch reports whether a normalized branch participates in ordered
// branch listings.
func KnownBranch(name string) bool {
	for _, b := range BranchOrder {
		if b == name {
			return true
		}
	}
	return false
}

// OrderedBranches returns the known branches present in the input, in
// canonical order, dropping unknown names.
func OrderedBranches(present map[string]struct{}) []string {
	out := make([]string, 0, len(present))
	for _, b := range BranchOrder {
		if _, ok := present[b]; ok {
			out = append(out, b)
		}
	}
	return out
}
