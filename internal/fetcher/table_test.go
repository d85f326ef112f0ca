package fetcher

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV_SplitsHeaderAndTrims(t *testing.T) {
	input := "계약번호, 담당자 ,월이용료\nA-1, 김철수 ,250000\nB-2,이영희,\n"

	table, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"계약번호", "담당자", "월이용료"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"A-1", "김철수", "250000"}, table.Rows[0])
	assert.Equal(t, "", table.Rows[1][2])
}

func TestReadCSV_VariableWidthRows(t *testing.T) {
	input := "a,b,c\n1,2\n1,2,3,4\n"

	table, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)
	assert.Len(t, table.Rows[0], 2)
	assert.Len(t, table.Rows[1], 4)
}

func TestReadCSV_Empty(t *testing.T) {
	table, err := ReadCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, table.Headers)
	assert.Empty(t, table.Rows)
}

func TestReadCSVFile_MissingIsSourceUnavailable(t *testing.T) {
	_, err := ReadCSVFile(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrSourceUnavailable))
}

func TestReadXLSX_MissingIsSourceUnavailable(t *testing.T) {
	_, err := ReadXLSX(filepath.Join(t.TempDir(), "absent.xlsx"), 0)
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrSourceUnavailable))
}

func TestReadTable_UnsupportedExtension(t *testing.T) {
	_, err := ReadTable("feed.parquet")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported table format")
}

func TestParseFTPURL(t *testing.T) {
	host, path, err := parseFTPURL("ftp://feeds.example.com/drop/voc.csv")
	require.NoError(t, err)
	assert.Equal(t, "feeds.example.com:21", host)
	assert.Equal(t, "/drop/voc.csv", path)

	_, _, err = parseFTPURL("https://feeds.example.com/voc.csv")
	require.Error(t, err)
}
