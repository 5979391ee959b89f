package analyzer

import (
	"time"

	"github.com/localpulse/reviewlens/internal/models"
	"github.com/localpulse/reviewlens/internal/utils"
)

const (
	trendAccelerating = "ACCELERATING"
	trendDecelerating = "DECELERATING"
	trendSteady       = "STEADY"
)

func computeTemporal(reviews []models.EnrichedReview, now time.Time) models.TemporalMetrics {
	groups := groupByMonth(reviews, now)
	months := sortedMonths(groups)

	perMonth := make([]models.MonthCount, 0, len(groups))
	for _, m := range months {
		perMonth = append(perMonth, models.MonthCount{Month: m, Count: len(groups[m])})
	}

	avgMonthly := 0.0
	if len(months) > 0 {
		known := 0
		for _, m := range months {
			known += len(groups[m])
		}
		avgMonthly = float64(known) / float64(len(months))
	}

	busiest, slowest := "N/A", "N/A"
	busiestCount, slowestCount := 0, int(^uint(0)>>1)
	for _, m := range perMonth {
		if m.Count > busiestCount {
			busiestCount = m.Count
			busiest = m.Month
		}
		if m.Count < slowestCount {
			slowestCount = m.Count
			slowest = m.Month
		}
	}

	// Recent-vs-prior windows over the last six known months.
	recentAvg, prevAvg := 0.0, 0.0
	if n := len(perMonth); n > 0 {
		last3 := perMonth[maxInt(0, n-3):]
		prev3 := perMonth[maxInt(0, n-6):maxInt(0, n-3)]
		recentAvg = avgMonthCount(last3)
		prevAvg = avgMonthCount(prev3)
	}
	trend := trendSteady
	if recentAvg > prevAvg*1.2 {
		trend = trendAccelerating
	} else if recentAvg < prevAvg*0.8 {
		trend = trendDecelerating
	}

	// Coarse banding: are reviews still coming in?
	recency := 50
	if len(perMonth) > 0 {
		switch {
		case recentAvg > 5:
			recency = 95
		case recentAvg > 2:
			recency = 80
		case recentAvg < 1:
			recency = 30
		}
	}

	bursts := []models.BurstPeriod{}
	for _, m := range perMonth {
		if float64(m.Count) > avgMonthly*2 {
			bursts = append(bursts, models.BurstPeriod{
				Period:     m.Month,
				Count:      m.Count,
				AvgMonthly: utils.RoundTo(avgMonthly, 1),
			})
		}
	}

	growth := 0.0
	if prevAvg > 0 {
		growth = (recentAvg - prevAvg) / prevAvg * 100
	}

	first, last := "N/A", "N/A"
	if len(perMonth) > 0 {
		first = perMonth[0].Month
		last = perMonth[len(perMonth)-1].Month
	}

	// The Unknown bucket is reported but kept out of every windowed
	// statistic above.
	if unknown := groups[unknownBucket]; len(unknown) > 0 {
		perMonth = append(perMonth, models.MonthCount{Month: unknownBucket, Count: len(unknown)})
	}

	return models.TemporalMetrics{
		ReviewsPerMonth:        perMonth,
		AverageReviewsPerMonth: utils.RoundTo(avgMonthly, 1),
		BusiestMonth:           busiest,
		SlowestMonth:           slowest,
		RecentTrend:            trend,
		RecencyScore:           recency,
		BurstPeriods:           bursts,
		FirstReviewMonth:       first,
		LastReviewMonth:        last,
		ReviewLifespanMonths:   len(months),
		GrowthRate:             utils.RoundTo(growth, 1),
	}
}

func avgMonthCount(periods []models.MonthCount) float64 {
	if len(periods) == 0 {
		return 0
	}
	sum := 0
	for _, p := range periods {
		sum += p.Count
	}
	return float64(sum) / float64(len(periods))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
