package risk

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bough38-web/haeji-voc-dashboard-sub000/internal/model"
)

var reference = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func daysAgo(n int) *time.Time {
	t := reference.AddDate(0, 0, -n)
	return &t
}

func TestClassify_Boundaries(t *testing.T) {
	assert.Equal(t, model.RiskHigh, Classify(daysAgo(0), reference))
	assert.Equal(t, model.RiskHigh, Classify(daysAgo(3), reference))
	assert.Equal(t, model.RiskMedium, Classify(daysAgo(4), reference))
	assert.Equal(t, model.RiskMedium, Classify(daysAgo(10), reference))
	assert.Equal(t, model.RiskLow, Classify(daysAgo(11), reference))
}

func TestClassify_NilDateIsLow(t *testing.T) {
	assert.Equal(t, model.RiskLow, Classify(nil, reference))
}

func TestElapsedDays_CalendarNotWallClock(t *testing.T) {
	// Received 23:59 yesterday is one calendar day ago even though fewer
	// than 24 hours elapsed.
	recv := time.Date(2025, 6, 14, 23, 59, 0, 0, time.UTC)
	ref := time.Date(2025, 6, 15, 0, 1, 0, 0, time.UTC)

	days := ElapsedDays(&recv, ref)
	require.NotNil(t, days)
	assert.Equal(t, 1, *days)
}

func TestElapsedDays_MixedZones(t *testing.T) {
	// Receipt dates parse in UTC while the reference clock runs in the
	// deployment zone; the calendar difference must not depend on either.
	seoul := time.FixedZone("KST", 9*60*60)
	recv := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
	ref := time.Date(2025, 6, 15, 12, 0, 0, 0, seoul)

	days := ElapsedDays(&recv, ref)
	require.NotNil(t, days)
	assert.Equal(t, 4, *days)
	assert.Equal(t, model.RiskMedium, Classify(&recv, ref))

	recv = time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, model.RiskLow, Classify(&recv, ref))
}

func TestElapsedDays_Nil(t *testing.T) {
	assert.Nil(t, ElapsedDays(nil, reference))
}

func TestClassify_Idempotent(t *testing.T) {
	// Same inputs, same tier; classification has no hidden state.
	assert.Equal(t, Classify(daysAgo(5), reference), Classify(daysAgo(5), reference))
}
