// Package schema maps the inconsistent column names of upstream feed tables
// onto canonical semantic targets via declarative synonym tables.
package schema

import "strings"

// Target is a canonical semantic field a feed column can resolve to.
type Target string

const (
	TargetContractID Target = "contract_id"
	TargetBranch     Target = "branch"
	TargetZone       Target = "zone"
	TargetManager    Target = "manager"
	TargetReceivedAt Target = "received_at"
	TargetFee        Target = "fee"
	TargetName       Target = "name"
	TargetPhone      Target = "phone"
	TargetEmail      Target = "email"
)

// Synonyms lists, per target, the candidate keywords in priority order.
// Feeds mix Korean and English headers; both spellings are carried.
var Synonyms = map[Target][]string{
	TargetContractID: {"계약번호", "계약 번호", "계약id", "contract_id", "contract no", "계약"},
	TargetBranch:     {"지사", "지점", "본부", "branch"},
	TargetZone:       {"권역", "지역", "구역", "zone", "region"},
	TargetManager:    {"담당자", "담당", "관리자", "매니저", "manager", "담당사원"},
	TargetReceivedAt: {"접수일", "접수일자", "등록일", "received", "date", "일자"},
	TargetFee:        {"월이용료", "이용료", "월요금", "요금", "fee", "금액"},
	TargetName:       {"성명", "이름", "name", "사원명"},
	TargetPhone:      {"휴대폰", "전화", "연락처", "phone", "mobile", "tel"},
	TargetEmail:      {"이메일", "메일", "email", "mail"},
}

// RecordTargets are the semantic fields record feeds are resolved against.
var RecordTargets = []Target{
	TargetContractID, TargetBranch, TargetZone,
	TargetManager, TargetReceivedAt, TargetFee,
}

// DirectoryTargets are the semantic fields the contact table is resolved
// against.
var DirectoryTargets = []Target{TargetName, TargetPhone, TargetEmail}

// Resolution is the outcome of resolving one table's header row. Missing
// targets are a degraded-but-expected condition, never a fatal error: the
// caller treats those fields as absent.
type Resolution struct {
	Columns map[Target]string // resolved header name per target
	Indexes map[Target]int    // column position per target
	Missing []Target
}

// Incomplete reports whether any requested target failed to resolve.
func (r Resolution) Incomplete() bool {
	return len(r.Missing) > 0
}

// Resolve maps a header row onto the requested targets using the synonym
// tables. Per target: exact candidate match first (candidates in priority
// order), then case-insensitive substring match scanning headers in their
// original order; first hit wins.
func Resolve(headers []string, targets []Target, synonyms map[Target][]string) Resolution {
	res := Resolution{
		Columns: make(map[Target]string, len(targets)),
		Indexes: make(map[Target]int, len(targets)),
	}

	for _, target := range targets {
		idx, ok := resolveOne(headers, synonyms[target])
		if !ok {
			res.Missing = append(res.Missing, target)
			continue
		}
		res.Columns[target] = headers[idx]
		res.Indexes[target] = idx
	}

	return res
}

func resolveOne(headers []string, candidates []string) (int, bool) {
	trimmed := make([]string, len(headers))
	for i, h := range headers {
		trimmed[i] = strings.TrimSpace(h)
	}

	for _, cand := range candidates {
		for i, h := range trimmed {
			if h == cand {
				return i, true
			}
		}
	}

	for i, h := range trimmed {
		lower := strings.ToLower(h)
		for _, cand := range candidates {
			if strings.Contains(lower, strings.ToLower(cand)) {
				return i, true
			}
		}
	}

	return 0, false
}

// ResolveMulti returns every header column matching the target's candidates,
// in priority order (exact matches by candidate priority, then substring
// matches by header order), deduplicated. Used for targets like zone and
// manager where feeds scatter the value across several columns and the first
// non-empty cell per row wins.
func ResolveMulti(headers []string, candidates []string) []int {
	trimmed := make([]string, len(headers))
	for i, h := range headers {
		trimmed[i] = strings.TrimSpace(h)
	}

	seen := make(map[int]struct{})
	var out []int
	add := func(i int) {
		if _, dup := seen[i]; !dup {
			seen[i] = struct{}{}
			out = append(out, i)
		}
	}

	for _, cand := range candidates {
		for i, h := range trimmed {
			if h == cand {
				add(i)
			}
		}
	}
	for i, h := range trimmed {
		lower := strings.ToLower(h)
		for _, cand := range candidates {
			if strings.Contains(lower, strings.ToLower(cand)) {
				add(i)
				break
			}
		}
	}

	return out
}

// CoalesceColumns returns the first non-empty cell among the given column
// positions, in order.
func CoalesceColumns(row []string, indexes []int) string {
	for _, idx := range indexes {
		if idx < len(row) {
			if v := strings.TrimSpace(row[idx]); v != "" {
				return v
			}
		}
	}
	return ""
}

// Value extracts the resolved target's cell from a data row, or "" when the
// target is missing or the row is short.
func (r Resolution) Value(row []string, target Target) string {
	idx, ok := r.Indexes[target]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// Coalesce returns the first non-empty resolved value among targets, in the
// given priority order.
func (r Resolution) Coalesce(row []string, targets ...Target) string {
	for _, t := range targets {
		if v := r.Value(row, t); v != "" {
			return v
		}
	}
	return ""
}
