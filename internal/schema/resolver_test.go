package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_ExactBeatsSubstring(t *testing.T) {
	// "담당" appears as a substring of the first header, but the second
	// header is an exact candidate and must win.
	headers := []string{"담당부서비고", "담당자"}
	res := Resolve(headers, []Target{TargetManager}, Synonyms)

	require.False(t, res.Incomplete())
	assert.Equal(t, "담당자", res.Columns[TargetManager])
	assert.Equal(t, 1, res.Indexes[TargetManager])
}

func TestResolve_SubstringFirstFieldWins(t *testing.T) {
	headers := []string{"고객 전화 번호", "비상 전화"}
	res := Resolve(headers, []Target{TargetPhone}, Synonyms)

	require.False(t, res.Incomplete())
	assert.Equal(t, 0, res.Indexes[TargetPhone])
}

func TestResolve_CaseInsensitiveSubstring(t *testing.T) {
	headers := []string{"Customer EMAIL Address"}
	res := Resolve(headers, []Target{TargetEmail}, Synonyms)

	require.False(t, res.Incomplete())
	assert.Equal(t, "Customer EMAIL Address", res.Columns[TargetEmail])
}

func TestResolve_MissingTargetIsSignaledNotFatal(t *testing.T) {
	headers := []string{"계약번호", "지사"}
	res := Resolve(headers, RecordTargets, Synonyms)

	assert.True(t, res.Incomplete())
	assert.Contains(t, res.Missing, TargetFee)
	assert.Contains(t, res.Missing, TargetManager)
	// Resolved targets still usable.
	assert.Equal(t, "계약번호", res.Columns[TargetContractID])
}

func TestResolution_ValueShortRow(t *testing.T) {
	res := Resolve([]string{"계약번호", "월이용료"}, []Target{TargetContractID, TargetFee}, Synonyms)

	assert.Equal(t, "A-1", res.Value([]string{" A-1 "}, TargetContractID))
	assert.Equal(t, "", res.Value([]string{"A-1"}, TargetFee)) // row shorter than header
}

func TestResolution_Coalesce(t *testing.T) {
	headers := []string{"권역", "지역"}
	res := Resolve(headers, []Target{TargetZone}, Synonyms)

	row := []string{"", "수도권"}
	// Zone resolves to the first header; coalescing over targets falls back
	// across targets, not columns, so an empty resolved cell yields "".
	assert.Equal(t, "", res.Coalesce(row, TargetZone))
}

func TestResolveMulti_PriorityThenHeaderOrder(t *testing.T) {
	headers := []string{"비고 담당", "담당자", "manager"}
	idxs := ResolveMulti(headers, Synonyms[TargetManager])

	// Exact hits by candidate priority ("담당자", then "manager"), then the
	// substring hit on the first header.
	require.NotEmpty(t, idxs)
	assert.Equal(t, []int{1, 2, 0}, idxs)
}

func TestCoalesceColumns_FirstNonEmptyWins(t *testing.T) {
	row := []string{"", "김철수", "Kim"}
	assert.Equal(t, "김철수", CoalesceColumns(row, []int{0, 1, 2}))
	assert.Equal(t, "", CoalesceColumns([]string{""}, []int{0, 5}))
}

func TestLoadOverrides_MissingFileKeepsBuiltins(t *testing.T) {
	merged, err := LoadOverrides(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Synonyms[TargetFee], merged[TargetFee])
}

func TestLoadOverrides_AppendsAfterBuiltins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "synonyms.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fee:\n  - 청구액\n"), 0o644))

	merged, err := LoadOverrides(path)
	require.NoError(t, err)

	cands := merged[TargetFee]
	require.NotEmpty(t, cands)
	assert.Equal(t, Synonyms[TargetFee][0], cands[0])
	assert.Equal(t, "청구액", cands[len(cands)-1])
}
