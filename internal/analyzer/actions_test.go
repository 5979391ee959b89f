package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/localpulse/reviewlens/internal/models"
)

func issueByName(issues []models.PriorityIssue, name string) *models.PriorityIssue {
	for i := range issues {
		if issues[i].Issue == name {
			return &issues[i]
		}
	}
	return nil
}

func TestComputeActionsFlagsProblems(t *testing.T) {
	overview := models.OverviewMetrics{HealthScore: 45, ResponseRate: 20, NetPromoterScore: 10}
	sentiment := models.SentimentMetrics{RatingTextAlignment: 50}
	ratings := models.RatingMetrics{
		ImprovingOrDeclining: trendDeclining,
		OneStarRatio:         25,
		RecentVsOverallDelta: -0.8,
	}
	responses := models.ResponseMetrics{
		ResponseRateNegative:  10,
		TemplateDetectionRate: 45,
		DefensiveRate:         30,
	}
	legitimacy := models.LegitimacyMetrics{SuspiciousPercentage: 22}
	content := models.ContentMetrics{
		ComplaintThemes: []models.ThemeCount{{Theme: "Wait Time", Count: 7}},
	}

	m := computeActions(nil, overview, sentiment, ratings, responses, legitimacy, content)

	decline := issueByName(m.PriorityIssues, "Rating trend declining")
	assert.NotNil(t, decline)
	assert.Equal(t, "CRITICAL", decline.Severity)
	assert.Equal(t, "Recent ratings -0.80 points lower than overall", decline.Evidence)

	lowResponse := issueByName(m.PriorityIssues, "Low negative review response rate")
	assert.NotNil(t, lowResponse)
	assert.Equal(t, "HIGH", lowResponse.Severity)

	assert.NotNil(t, issueByName(m.PriorityIssues, "Too many template responses"))
	assert.NotNil(t, issueByName(m.PriorityIssues, "Defensive language in responses"))
	assert.NotNil(t, issueByName(m.PriorityIssues, "High 1-star concentration"))
	assert.NotNil(t, issueByName(m.PriorityIssues, "Suspicious review activity"))
	assert.NotNil(t, issueByName(m.PriorityIssues, "Recurring complaint: Wait Time"))
	assert.NotNil(t, issueByName(m.PriorityIssues, "Low rating-text alignment"))

	assert.Contains(t, m.QuickWins, "Respond to all unanswered negative reviews this week")
	assert.Contains(t, m.LongTermStrategies, "Create action plan to address Wait Time")
	assert.Contains(t, m.LongTermStrategies, "Implement customer satisfaction program to improve NPS")
	assert.True(t, strings.HasPrefix(m.OverallRecommendation, "Urgent attention needed."))
}

func TestComputeActionsHealthyProfile(t *testing.T) {
	overview := models.OverviewMetrics{HealthScore: 88, ResponseRate: 90, NetPromoterScore: 60}
	sentiment := models.SentimentMetrics{RatingTextAlignment: 92}
	ratings := models.RatingMetrics{ImprovingOrDeclining: trendImproving, OneStarRatio: 3}
	responses := models.ResponseMetrics{ResponseRateNegative: 95}

	m := computeActions(nil, overview, sentiment, ratings, responses,
		models.LegitimacyMetrics{}, models.ContentMetrics{})

	assert.Empty(t, m.PriorityIssues)
	assert.True(t, strings.HasPrefix(m.OverallRecommendation, "Your review profile is strong."))

	// The evergreen suggestions always ship.
	assert.Contains(t, m.QuickWins, "Ask your top 5 most recent satisfied customers for a review")
	assert.Len(t, m.RecommendedActions, 2)
}

func TestDraftResponseByRatingBand(t *testing.T) {
	enriched := &models.EnrichedReview{
		Sentiment: models.SentimentResult{
			NegativeWords: []string{"cold"},
			Aspects: []models.AspectSentiment{
				{Aspect: "Wait Time", Sentiment: "negative", Score: -2},
			},
		},
	}

	low := draftResponse("Jordan Blake", 1, enriched)
	assert.True(t, strings.HasPrefix(low, "Dear Jordan, "))
	assert.Contains(t, low, "regarding wait time")

	mid := draftResponse("Jordan Blake", 3, enriched)
	assert.Contains(t, mid, "will review your comments about wait time")

	high := draftResponse("Jordan Blake", 5, nil)
	assert.Equal(t, "Thank you for your review, Jordan! We appreciate your feedback and are glad you chose us.", high)

	anonymous := draftResponse("", 1, nil)
	assert.True(t, strings.HasPrefix(anonymous, "Dear there, "))
	assert.NotContains(t, anonymous, "regarding")
}

func TestComputeActionsSuggestedResponses(t *testing.T) {
	reviews := []models.EnrichedReview{
		{
			RawReview:      models.RawReview{ReviewerName: "Pat Doe", Rating: 1, Text: "Awful."},
			SentimentLabel: models.SentimentNegative,
		},
	}
	responses := models.ResponseMetrics{
		ResponseRateNegative: 100,
		UnrespondedNegatives: []models.UnrespondedReview{
			{Reviewer: "Pat Doe", Text: "Awful.", Rating: 1, Date: "2026-01"},
			{Reviewer: "Gone Reviewer", Text: "Bad.", Rating: 2, Date: "2026-01"},
		},
	}

	m := computeActions(reviews, models.OverviewMetrics{HealthScore: 70, ResponseRate: 80, NetPromoterScore: 30},
		models.SentimentMetrics{RatingTextAlignment: 90}, models.RatingMetrics{},
		responses, models.LegitimacyMetrics{}, models.ContentMetrics{})

	assert.Len(t, m.SuggestedResponses, 2)
	assert.Equal(t, models.SentimentNegative, m.SuggestedResponses[0].Sentiment)
	assert.True(t, strings.HasPrefix(m.SuggestedResponses[0].SuggestedResponse, "Dear Pat, "))

	// Reviews missing from the enriched batch default to negative.
	assert.Equal(t, models.SentimentNegative, m.SuggestedResponses[1].Sentiment)
}
