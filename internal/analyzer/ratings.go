package analyzer

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/localpulse/reviewlens/internal/models"
	"github.com/localpulse/reviewlens/internal/utils"
)

const (
	trendImproving = "IMPROVING"
	trendDeclining = "DECLINING"
	trendStable    = "STABLE"

	// Bayesian prior: pulled toward a 3.5-star mean until the batch
	// outweighs 10 pseudo-votes (the IMDB formula).
	bayesianPriorMean  = 3.5
	bayesianPriorVotes = 10
)

func computeRatings(reviews []models.EnrichedReview, now time.Time) models.RatingMetrics {
	total := len(reviews)
	counts := [6]int{}
	ratings := make([]float64, 0, total)
	for _, r := range reviews {
		counts[r.Rating]++
		ratings = append(ratings, float64(r.Rating))
	}

	distribution := make([]models.RatingBucket, 0, 5)
	for rating := 1; rating <= 5; rating++ {
		distribution = append(distribution, models.RatingBucket{
			Rating:     rating,
			Count:      counts[rating],
			Percentage: utils.RoundTo(utils.Pct(counts[rating], total), 1),
		})
	}

	avg := stat.Mean(ratings, nil)

	// Population standard deviation: the batch is the whole population,
	// not a sample of one.
	variance := 0.0
	for _, v := range ratings {
		variance += (v - avg) * (v - avg)
	}
	variance /= float64(total)
	stdDev := math.Sqrt(variance)

	groups := groupByMonth(reviews, now)
	months := sortedMonths(groups)
	trend := make([]models.RatingPeriod, 0, len(months))
	for _, m := range months {
		trend = append(trend, models.RatingPeriod{
			Period:    m,
			AvgRating: utils.RoundTo(avgRatingOf(groups[m]), 2),
			Count:     len(groups[m]),
		})
	}

	monthCount := len(months)
	if monthCount == 0 {
		monthCount = 1
	}
	velocity := float64(total) / float64(monthCount)

	recentAvg, olderAvg := avg, avg
	if len(trend) > 0 {
		recentStart := len(trend) - 3
		if recentStart < 0 {
			recentStart = 0
		}
		olderEnd := len(trend) - 3
		if olderEnd < 1 {
			olderEnd = 1
		}
		recentAvg = avgTrendRating(trend[recentStart:])
		olderAvg = avgTrendRating(trend[:olderEnd])
	}
	delta := recentAvg - olderAvg

	direction := trendStable
	if delta > 0.2 {
		direction = trendImproving
	} else if delta < -0.2 {
		direction = trendDeclining
	}

	anomalies := []models.AnomalyPeriod{}
	for _, m := range trend {
		if float64(m.Count) > velocity*3 {
			anomalies = append(anomalies, models.AnomalyPeriod{
				Period: m.Period,
				Reason: fmt.Sprintf("Spike: %d reviews (avg: %.0f)", m.Count, velocity),
			})
		}
		if m.AvgRating < avg-1 {
			anomalies = append(anomalies, models.AnomalyPeriod{
				Period: m.Period,
				Reason: fmt.Sprintf("Rating drop: %.2f (avg: %.1f)", m.AvgRating, avg),
			})
		}
	}

	// Recency weighting assumes the source delivers oldest-first;
	// later entries count up to twice as much.
	weightedSum, weightSum := 0.0, 0.0
	for i, r := range reviews {
		weight := 1 + float64(i)/float64(total)
		weightedSum += float64(r.Rating) * weight
		weightSum += weight
	}
	weightedRating := avg
	if weightSum > 0 {
		weightedRating = weightedSum / weightSum
	}

	v := float64(total)
	bayesian := (v/(v+bayesianPriorVotes))*avg + (bayesianPriorVotes/(v+bayesianPriorVotes))*bayesianPriorMean

	// Shannon entropy of the 5-bucket distribution, in bits.
	probs := make([]float64, 0, 5)
	for rating := 1; rating <= 5; rating++ {
		if counts[rating] > 0 {
			probs = append(probs, float64(counts[rating])/float64(total))
		}
	}
	entropy := stat.Entropy(probs) / math.Ln2

	return models.RatingMetrics{
		Distribution:         distribution,
		StandardDeviation:    utils.RoundTo(stdDev, 2),
		RatingTrend:          trend,
		RatingVelocity:       utils.RoundTo(velocity, 1),
		ImprovingOrDeclining: direction,
		FiveStarRatio:        utils.RoundTo(utils.Pct(counts[5], total), 1),
		OneStarRatio:         utils.RoundTo(utils.Pct(counts[1], total), 1),
		PolarizationIndex:    utils.RoundTo(float64(counts[1]+counts[5])/float64(total), 2),
		RecentVsOverallDelta: utils.RoundTo(delta, 2),
		AnomalyPeriods:       anomalies,
		WeightedRating:       utils.RoundTo(weightedRating, 2),
		BayesianAverage:      utils.RoundTo(bayesian, 2),
		RatingEntropy:        utils.RoundTo(entropy, 3),
	}
}

func avgTrendRating(periods []models.RatingPeriod) float64 {
	if len(periods) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range periods {
		sum += p.AvgRating
	}
	return sum / float64(len(periods))
}
