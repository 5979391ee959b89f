package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/localpulse/reviewlens/internal/models"
)

func enrichedWithRating(rating int, date string) models.EnrichedReview {
	return models.EnrichedReview{
		RawReview: models.RawReview{ReviewerName: "R", Rating: rating, PublishedDate: date},
	}
}

func TestComputeRatingsUniformFiveStars(t *testing.T) {
	var reviews []models.EnrichedReview
	for i := 0; i < 10; i++ {
		reviews = append(reviews, enrichedWithRating(5, "just now"))
	}

	ratings := computeRatings(reviews, testNow)

	assert.Equal(t, 0.0, ratings.StandardDeviation)
	assert.Equal(t, 100.0, ratings.FiveStarRatio)
	assert.Equal(t, 0.0, ratings.OneStarRatio)
	assert.Equal(t, 1.0, ratings.PolarizationIndex)
	assert.Equal(t, 5.0, ratings.WeightedRating)
	// Ten 5-star votes against a 3.5 prior with 10 pseudo-votes.
	assert.Equal(t, 4.25, ratings.BayesianAverage)
	// Single occupied bucket carries no entropy.
	assert.Equal(t, 0.0, ratings.RatingEntropy)
	assert.Equal(t, trendStable, ratings.ImprovingOrDeclining)
	assert.Equal(t, 10.0, ratings.RatingVelocity)
	assert.Empty(t, ratings.AnomalyPeriods)

	assert.Len(t, ratings.Distribution, 5)
	assert.Equal(t, 10, ratings.Distribution[4].Count)
	assert.Equal(t, 100.0, ratings.Distribution[4].Percentage)
}

func TestComputeRatingsUniformSpread(t *testing.T) {
	var reviews []models.EnrichedReview
	for rating := 1; rating <= 5; rating++ {
		reviews = append(reviews, enrichedWithRating(rating, "just now"), enrichedWithRating(rating, "just now"))
	}

	ratings := computeRatings(reviews, testNow)

	// Maximum-entropy distribution: log2(5) bits.
	assert.Equal(t, 2.322, ratings.RatingEntropy)
	assert.Equal(t, 1.41, ratings.StandardDeviation)
	assert.Equal(t, 0.4, ratings.PolarizationIndex)
}

func TestComputeRatingsDecliningTrend(t *testing.T) {
	var reviews []models.EnrichedReview
	for i := 0; i < 5; i++ {
		reviews = append(reviews, enrichedWithRating(5, "6 months ago"))
		reviews = append(reviews, enrichedWithRating(5, "5 months ago"))
	}
	for i := 0; i < 5; i++ {
		reviews = append(reviews, enrichedWithRating(2, "2 months ago"))
		reviews = append(reviews, enrichedWithRating(1, "a month ago"))
	}

	ratings := computeRatings(reviews, testNow)

	assert.Equal(t, trendDeclining, ratings.ImprovingOrDeclining)
	assert.Negative(t, ratings.RecentVsOverallDelta)
	assert.NotEmpty(t, ratings.AnomalyPeriods)
}
