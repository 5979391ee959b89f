package analyzer

import (
	"fmt"

	"github.com/localpulse/reviewlens/internal/models"
)

// Fixed industry benchmarks for local businesses; verdicts compare the
// overview block against them.
func computeCompetitive(overview models.OverviewMetrics) models.CompetitiveMetrics {
	npsVerdict := "Weak"
	if overview.NetPromoterScore >= 30 {
		npsVerdict = "Strong"
	} else if overview.NetPromoterScore >= 0 {
		npsVerdict = "Average"
	}

	benchmarks := []models.BenchmarkComparison{
		{Metric: "Average Rating", Yours: overview.AverageRating, Benchmark: 4.2,
			Verdict: aboveBelow(overview.AverageRating >= 4.2)},
		{Metric: "Response Rate", Yours: overview.ResponseRate, Benchmark: 30,
			Verdict: aboveBelow(overview.ResponseRate >= 30)},
		{Metric: "Review Authenticity", Yours: float64(overview.ReviewAuthenticityScore), Benchmark: 85,
			Verdict: pick(overview.ReviewAuthenticityScore >= 85, "Healthy", "Needs Attention")},
		{Metric: "Net Promoter Score", Yours: float64(overview.NetPromoterScore), Benchmark: 30,
			Verdict: npsVerdict},
		{Metric: "Engagement Score", Yours: float64(overview.EngagementScore), Benchmark: 50,
			Verdict: pick(overview.EngagementScore >= 50, "Good", "Needs Improvement")},
	}

	strengths := []string{}
	weaknesses := []string{}
	for _, b := range benchmarks {
		if b.Yours >= b.Benchmark*1.1 {
			strengths = append(strengths, fmt.Sprintf("%s is %.0f%% above industry average",
				b.Metric, (b.Yours/b.Benchmark-1)*100))
		}
		if b.Yours < b.Benchmark*0.8 {
			weaknesses = append(weaknesses, fmt.Sprintf("%s is %.0f%% below industry average",
				b.Metric, (1-b.Yours/b.Benchmark)*100))
		}
	}

	positioning := "Below Market"
	switch {
	case overview.HealthScore >= 80:
		positioning = "Market Leader"
	case overview.HealthScore >= 60:
		positioning = "Competitive"
	case overview.HealthScore >= 40:
		positioning = "Average"
	}

	return models.CompetitiveMetrics{
		IndustryBenchmark:       benchmarks,
		StrengthsVsCompetitors:  strengths,
		WeaknessesVsCompetitors: weaknesses,
		MarketPositioning:       positioning,
	}
}

func aboveBelow(above bool) string {
	return pick(above, "Above Average", "Below Average")
}

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}
