package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bough38-web/haeji-voc-dashboard-sub000/internal/model"
)

func TestFee_ScaleCorrection(t *testing.T) {
	v := Fee("250,000")
	require.NotNil(t, v)
	assert.Equal(t, 25000.0, *v)

	v = Fee("95000")
	require.NotNil(t, v)
	assert.Equal(t, 95000.0, *v)
}

func TestFee_ThresholdBoundary(t *testing.T) {
	v := Fee("200000")
	require.NotNil(t, v)
	assert.Equal(t, 20000.0, *v)

	v = Fee("199999")
	require.NotNil(t, v)
	assert.Equal(t, 199999.0, *v)
}

func TestFee_NullWords(t *testing.T) {
	assert.Nil(t, Fee(""))
	assert.Nil(t, Fee("  "))
	assert.Nil(t, Fee("nan"))
	assert.Nil(t, Fee("NaN"))
	assert.Nil(t, Fee("None"))
}

func TestFee_Unparsable(t *testing.T) {
	assert.Nil(t, Fee("협의중"))
	assert.Nil(t, Fee("-"))
	assert.Nil(t, Fee("1.2.3")) // two decimal points never parse
}

func TestFee_KeepsDecimals(t *testing.T) {
	v := Fee("구독료 12,345.5원")
	require.NotNil(t, v)
	assert.Equal(t, 12345.5, *v)
}

func TestFee_Idempotent(t *testing.T) {
	once := Fee("95,000")
	require.NotNil(t, once)
	again := Fee(FormatFee(once))
	require.NotNil(t, again)
	assert.Equal(t, *once, *again)
}

func TestFeeBand(t *testing.T) {
	band := func(v float64) model.FeeBand { return FeeBand(&v) }

	assert.Equal(t, model.FeeBandUnspecified, FeeBand(nil))
	assert.Equal(t, model.FeeBandUnder100K, band(0))
	assert.Equal(t, model.FeeBandUnder100K, band(99999.99))
	assert.Equal(t, model.FeeBand100To200K, band(100000))
	assert.Equal(t, model.FeeBand200To300K, band(250000))
	assert.Equal(t, model.FeeBand400To500K, band(499999))
	assert.Equal(t, model.FeeBand500KPlus, band(500000))
	assert.Equal(t, model.FeeBand500KPlus, band(9e9))
}

func TestFormatFee(t *testing.T) {
	v := 25000.0
	assert.Equal(t, "25,000", FormatFee(&v))

	half := 1234.5
	assert.Equal(t, "1,235", FormatFee(&half)) // round to nearest

	assert.Equal(t, "", FormatFee(nil))
}
