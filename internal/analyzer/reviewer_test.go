package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/localpulse/reviewlens/internal/models"
)

func TestComputeReviewer(t *testing.T) {
	reviews := []models.EnrichedReview{
		{RawReview: models.RawReview{ReviewerName: "Alice", Rating: 5, PhotoCount: intPtr(4), LocalGuideLevel: intPtr(5)}},
		{RawReview: models.RawReview{ReviewerName: "Alice", Rating: 4}},
		{RawReview: models.RawReview{ReviewerName: "Bob", Rating: 3}},
		{RawReview: models.RawReview{ReviewerName: "Cara", Rating: 2, PhotoCount: intPtr(2)}},
	}

	m := computeReviewer(reviews)

	assert.Equal(t, 1.33, m.AverageReviewsPerReviewer)
	assert.Equal(t, 1.5, m.AveragePhotosPerReviewer)
	assert.Equal(t, 1, m.ReturningReviewers)

	assert.Equal(t, "Alice", m.TopReviewers[0].Name)
	assert.Equal(t, 2, m.TopReviewers[0].ReviewCount)
	assert.Equal(t, 4.5, m.TopReviewers[0].AvgRating)
	assert.True(t, m.TopReviewers[0].IsLocalGuide)
	assert.Len(t, m.TopReviewers, 3)

	assert.Contains(t, m.ReviewerLoyaltyIndicators, "1 reviewer(s) left multiple reviews (updated or returned)")
	assert.Contains(t, m.ReviewerLoyaltyIndicators, "Some reviewers have visited multiple times")
}

func TestComputeReviewerSingleVisitors(t *testing.T) {
	reviews := []models.EnrichedReview{
		{RawReview: models.RawReview{ReviewerName: "A", Rating: 5}},
		{RawReview: models.RawReview{ReviewerName: "B", Rating: 4}},
	}

	m := computeReviewer(reviews)

	assert.Equal(t, 1.0, m.AverageReviewsPerReviewer)
	assert.Zero(t, m.ReturningReviewers)
	assert.Empty(t, m.ReviewerLoyaltyIndicators)
}
