package analyzer

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/localpulse/reviewlens/internal/models"
	"github.com/localpulse/reviewlens/internal/trust"
	"github.com/localpulse/reviewlens/internal/utils"
)

const (
	momentumRising  = "RISING"
	momentumFalling = "FALLING"
	momentumStable  = "STABLE"
)

func computeOverview(reviews []models.EnrichedReview, now time.Time) models.OverviewMetrics {
	total := len(reviews)
	avgRating := avgRatingOf(reviews)
	avgSentiment := avgSentimentOf(reviews)

	sortedRatings := make([]int, 0, total)
	for _, r := range reviews {
		sortedRatings = append(sortedRatings, r.Rating)
	}
	sort.Ints(sortedRatings)
	median := sortedRatings[total/2]

	responded, fake, promoters, detractors, withText, unrespondedNegs := 0, 0, 0, 0, 0, 0
	for _, r := range reviews {
		if r.ResponseText != "" {
			responded++
		}
		if r.FakeScore >= trust.LikelyFakeThreshold {
			fake++
		}
		if r.Rating >= 4 {
			promoters++
		}
		if r.Rating <= 2 {
			detractors++
			if r.ResponseText == "" {
				unrespondedNegs++
			}
		}
		if len(r.Text) > 10 {
			withText++
		}
	}

	responseRate := utils.Pct(responded, total)
	fakePercent := utils.Pct(fake, total)
	textRate := utils.Pct(withText, total)
	nps := int(math.Round(utils.Pct(promoters, total) - utils.Pct(detractors, total)))

	// Health: base 50, adjusted by rating deviation, sentiment,
	// responsiveness, fake share, and NPS, each capped.
	health := 50.0
	health += (avgRating - 3) * 10
	health += math.Min(avgSentiment*15, 12)
	health += math.Min(responseRate/4, 12)
	health -= fakePercent / 4
	if nps > 0 {
		health += math.Min(float64(nps)/10, 8)
	} else {
		health += math.Max(float64(nps)/10, -8)
	}
	health = utils.Clamp(health, 0, 100)

	var strengths, weaknesses, risks []string
	switch {
	case avgRating >= 4.5:
		strengths = append(strengths, "Exceptional average rating")
	case avgRating >= 4.0:
		strengths = append(strengths, "Strong average rating")
	}
	switch {
	case responseRate > 80:
		strengths = append(strengths, "Excellent response rate")
	case responseRate > 50:
		strengths = append(strengths, "Good response rate")
	}
	if avgSentiment > 0.15 {
		strengths = append(strengths, "Highly positive sentiment in reviews")
	}
	if fakePercent < 5 {
		strengths = append(strengths, "Very authentic review base")
	}
	if nps > 50 {
		strengths = append(strengths, "Outstanding Net Promoter Score")
	}
	if textRate > 70 {
		strengths = append(strengths, "High review detail (most reviews have text)")
	}

	if avgRating < 3.5 {
		weaknesses = append(weaknesses, "Below-average rating")
	}
	if responseRate < 30 {
		weaknesses = append(weaknesses, "Low response rate to reviews")
	}
	if avgSentiment < -0.05 {
		weaknesses = append(weaknesses, "Overall negative sentiment")
	}
	if nps < 0 {
		weaknesses = append(weaknesses, "Negative Net Promoter Score")
	}
	if textRate < 30 {
		weaknesses = append(weaknesses, "Most reviews lack detail (no text)")
	}

	if fakePercent > 20 {
		risks = append(risks, fmt.Sprintf("%.0f%% of reviews flagged as potentially fake", fakePercent))
	}
	negRate := utils.Pct(detractors, total)
	if negRate > 20 {
		risks = append(risks, fmt.Sprintf("%.0f%% of reviews are 1-2 stars", negRate))
	}
	if unrespondedNegs > 3 {
		risks = append(risks, fmt.Sprintf("%d negative reviews without owner response", unrespondedNegs))
	}

	return models.OverviewMetrics{
		HealthScore:               int(math.Round(health)),
		TotalReviews:              total,
		AverageRating:             utils.RoundTo(avgRating, 2),
		RatingMedian:              median,
		SentimentScore:            utils.RoundTo(avgSentiment, 3),
		ResponseRate:              utils.RoundTo(responseRate, 1),
		FakeReviewPercentage:      utils.RoundTo(fakePercent, 1),
		StrengthsSummary:          emptyIfNil(strengths),
		WeaknessesSummary:         emptyIfNil(weaknesses),
		RiskAlerts:                emptyIfNil(risks),
		GradeLabel:                gradeLabel(health),
		NetPromoterScore:          nps,
		CustomerSatisfactionIndex: int(math.Round(avgRating / 5 * 100)),
		ReviewAuthenticityScore:   int(math.Round(100 - fakePercent)),
		EngagementScore:           int(math.Round(responseRate*0.5 + textRate*0.5)),
		ReputationMomentum:        computeMomentum(reviews, now),
	}
}

func gradeLabel(health float64) string {
	switch {
	case health >= 90:
		return "A+"
	case health >= 80:
		return "A"
	case health >= 70:
		return "B+"
	case health >= 60:
		return "B"
	case health >= 50:
		return "C"
	case health >= 40:
		return "D"
	default:
		return "F"
	}
}

// computeMomentum compares the last 3 known months' average rating
// against the prior 3 at a ±0.2 threshold. Fewer than 6 months of
// history reads as stable.
func computeMomentum(reviews []models.EnrichedReview, now time.Time) string {
	groups := groupByMonth(reviews, now)
	months := sortedMonths(groups)
	if len(months) < 6 {
		return momentumStable
	}

	recentAvg := avgOfMonthlyRatings(groups, months[len(months)-3:])
	olderAvg := avgOfMonthlyRatings(groups, months[len(months)-6:len(months)-3])

	switch {
	case recentAvg > olderAvg+0.2:
		return momentumRising
	case recentAvg < olderAvg-0.2:
		return momentumFalling
	default:
		return momentumStable
	}
}

func avgOfMonthlyRatings(groups map[string][]models.EnrichedReview, months []string) float64 {
	if len(months) == 0 {
		return 0
	}
	sum := 0.0
	for _, m := range months {
		sum += avgRatingOf(groups[m])
	}
	return sum / float64(len(months))
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
