package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/localpulse/reviewlens/internal/models"
)

func TestComputeTemporalUnknownBucketReportedLast(t *testing.T) {
	reviews := []models.EnrichedReview{
		{RawReview: models.RawReview{PublishedDate: "a month ago"}},
		{RawReview: models.RawReview{PublishedDate: "a month ago"}},
		{RawReview: models.RawReview{PublishedDate: "who knows"}},
		{RawReview: models.RawReview{PublishedDate: ""}},
		{RawReview: models.RawReview{PublishedDate: "sometime"}},
	}

	m := computeTemporal(reviews, testNow)

	assert.Equal(t, []models.MonthCount{
		{Month: "2026-02", Count: 2},
		{Month: unknownBucket, Count: 3},
	}, m.ReviewsPerMonth)

	// Windowed statistics ignore the Unknown bucket entirely.
	assert.Equal(t, 1, m.ReviewLifespanMonths)
	assert.Equal(t, 2.0, m.AverageReviewsPerMonth)
	assert.Equal(t, "2026-02", m.BusiestMonth)
	assert.Equal(t, "2026-02", m.FirstReviewMonth)
	assert.Equal(t, "2026-02", m.LastReviewMonth)
}

func TestComputeTemporalBurstsAndTrend(t *testing.T) {
	var reviews []models.EnrichedReview
	addMonth := func(date string, n int) {
		for i := 0; i < n; i++ {
			reviews = append(reviews, models.EnrichedReview{
				RawReview: models.RawReview{PublishedDate: date},
			})
		}
	}
	addMonth("6 months ago", 2)
	addMonth("5 months ago", 2)
	addMonth("4 months ago", 2)
	addMonth("3 months ago", 6)
	addMonth("2 months ago", 6)
	addMonth("a month ago", 12)

	m := computeTemporal(reviews, testNow)

	assert.Equal(t, trendAccelerating, m.RecentTrend)
	assert.Equal(t, 5.0, m.AverageReviewsPerMonth)
	assert.Equal(t, "2026-02", m.BusiestMonth)
	assert.Equal(t, "2025-09", m.SlowestMonth)
	assert.Equal(t, 6, m.ReviewLifespanMonths)
	assert.Equal(t, 300.0, m.GrowthRate)

	assert.Equal(t, []models.BurstPeriod{
		{Period: "2026-02", Count: 12, AvgMonthly: 5.0},
	}, m.BurstPeriods)
}
