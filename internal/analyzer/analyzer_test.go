package analyzer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/localpulse/reviewlens/internal/models"
)

func TestAnalyzeEmptyBatch(t *testing.T) {
	result := Analyze(nil)

	assert.NotEmpty(t, result.AnalysisID)
	assert.Zero(t, result.Overview.TotalReviews)
	assert.Equal(t, "N/A", result.Overview.GradeLabel)
	assert.Contains(t, result.Overview.WeaknessesSummary, "No reviews to analyze")
	assert.Equal(t, "No reviews available for analysis.", result.Actions.OverallRecommendation)
	assert.Equal(t, "Unknown", result.Competitive.MarketPositioning)
	assert.NotNil(t, result.Temporal.ReviewsPerMonth)
	assert.Empty(t, result.Temporal.ReviewsPerMonth)
	assert.Nil(t, result.Sentiment.MostPositiveReview)
}

func TestAnalyzeEndToEnd(t *testing.T) {
	var raw []models.RawReview
	for i := 0; i < 15; i++ {
		raw = append(raw, models.RawReview{
			ReviewerName:  fmt.Sprintf("Happy Customer %d", i),
			Rating:        5,
			Text:          "Absolutely wonderful experience, the staff were amazing and friendly.",
			PublishedDate: "a month ago",
		})
	}
	for i := 0; i < 5; i++ {
		raw = append(raw, models.RawReview{
			ReviewerName:  fmt.Sprintf("Unhappy Customer %d", i),
			Rating:        1,
			Text:          "The food was cold and the service was slow.",
			PublishedDate: "a month ago",
		})
	}

	result := AnalyzeAt(raw, testNow)

	assert.Equal(t, 20, result.Overview.TotalReviews)
	assert.Equal(t, 4.0, result.Overview.AverageRating)
	assert.Equal(t, 50, result.Overview.NetPromoterScore)
	assert.Equal(t, 72, result.Overview.HealthScore)
	assert.Equal(t, "B+", result.Overview.GradeLabel)
	assert.Contains(t, result.Overview.RiskAlerts, "5 negative reviews without owner response")

	assert.Equal(t, 15, result.Sentiment.PositiveCount)
	assert.Equal(t, 5, result.Sentiment.NegativeCount)
	assert.Equal(t, models.SentimentPositive, result.Sentiment.OverallLabel)
	assert.Equal(t, 100, result.Sentiment.RatingTextAlignment)

	assert.Equal(t, 25.0, result.Ratings.OneStarRatio)
	assert.Equal(t, trendStable, result.Ratings.ImprovingOrDeclining)

	lowResponse := issueByName(result.Actions.PriorityIssues, "Low negative review response rate")
	assert.NotNil(t, lowResponse)
	assert.Equal(t, "HIGH", lowResponse.Severity)

	assert.Len(t, result.Actions.SuggestedResponses, 5)
	for _, s := range result.Actions.SuggestedResponses {
		assert.True(t, strings.HasPrefix(s.SuggestedResponse, "Dear Unhappy, "))
	}

	assert.Equal(t, "Competitive", result.Competitive.MarketPositioning)
	assert.Equal(t, 20, result.Legitimacy.DuplicateContentCount)
	assert.Equal(t, []models.MonthCount{{Month: "2026-02", Count: 20}}, result.Temporal.ReviewsPerMonth)
}

func TestAnalyzeDeduplicatesBeforeScoring(t *testing.T) {
	raw := []models.RawReview{
		{ReviewerName: "Pat", Rating: 5, Text: "Lovely place, will definitely come back soon.", PublishedDate: "a month ago"},
		{ReviewerName: "Pat", Rating: 5, Text: "Lovely place, will definitely come back soon.", PublishedDate: "a month ago"},
		{ReviewerName: "Sam", Rating: 4, Text: "Quick, professional, and reasonably priced work.", PublishedDate: "2 months ago"},
	}

	result := AnalyzeAt(raw, testNow)

	assert.Equal(t, 2, result.Overview.TotalReviews)
}
