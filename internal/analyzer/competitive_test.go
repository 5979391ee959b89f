package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/localpulse/reviewlens/internal/models"
)

func TestComputeCompetitiveMarketLeader(t *testing.T) {
	overview := models.OverviewMetrics{
		HealthScore:             85,
		AverageRating:           4.8,
		ResponseRate:            60,
		ReviewAuthenticityScore: 95,
		NetPromoterScore:        40,
		EngagementScore:         70,
	}

	m := computeCompetitive(overview)

	assert.Equal(t, "Market Leader", m.MarketPositioning)
	assert.Len(t, m.IndustryBenchmark, 5)
	assert.Empty(t, m.WeaknessesVsCompetitors)
	assert.Len(t, m.StrengthsVsCompetitors, 5)
	assert.Contains(t, m.StrengthsVsCompetitors, "Response Rate is 100% above industry average")

	verdicts := map[string]string{}
	for _, b := range m.IndustryBenchmark {
		verdicts[b.Metric] = b.Verdict
	}
	assert.Equal(t, "Above Average", verdicts["Average Rating"])
	assert.Equal(t, "Healthy", verdicts["Review Authenticity"])
	assert.Equal(t, "Strong", verdicts["Net Promoter Score"])
	assert.Equal(t, "Good", verdicts["Engagement Score"])
}

func TestComputeCompetitiveStruggling(t *testing.T) {
	overview := models.OverviewMetrics{
		HealthScore:             35,
		AverageRating:           2.9,
		ResponseRate:            5,
		ReviewAuthenticityScore: 60,
		NetPromoterScore:        -20,
		EngagementScore:         20,
	}

	m := computeCompetitive(overview)

	assert.Equal(t, "Below Market", m.MarketPositioning)
	assert.Empty(t, m.StrengthsVsCompetitors)
	assert.NotEmpty(t, m.WeaknessesVsCompetitors)
	assert.Contains(t, m.WeaknessesVsCompetitors, "Average Rating is 31% below industry average")

	verdicts := map[string]string{}
	for _, b := range m.IndustryBenchmark {
		verdicts[b.Metric] = b.Verdict
	}
	assert.Equal(t, "Below Average", verdicts["Response Rate"])
	assert.Equal(t, "Needs Attention", verdicts["Review Authenticity"])
	assert.Equal(t, "Weak", verdicts["Net Promoter Score"])
}
