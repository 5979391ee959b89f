// Package analyzer is the review intelligence engine: it normalizes a
// raw review batch, enriches it with sentiment and trust scoring, and
// reduces the enriched set into a ten-block analysis report. The whole
// computation is referentially transparent given the same input and
// clock; there is no I/O anywhere in the pipeline.
package analyzer

import (
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/localpulse/reviewlens/internal/models"
)

// Analyze runs the full pipeline against the wall clock.
func Analyze(reviews []models.RawReview) models.AnalysisResult {
	return AnalyzeAt(reviews, time.Now())
}

// AnalyzeAt runs the full pipeline with an explicit clock; relative
// published dates resolve against now.
func AnalyzeAt(reviews []models.RawReview, now time.Time) models.AnalysisResult {
	result := models.AnalysisResult{
		AnalysisID:  uuid.NewString(),
		GeneratedAt: now,
	}

	if len(reviews) == 0 {
		slog.Info("[ReviewAnalyzer] No reviews to analyze, returning empty report")
		return emptyResult(result)
	}

	deduplicated := Normalize(reviews)
	slog.Info("[ReviewAnalyzer] Deduplicated batch",
		slog.Int("raw", len(reviews)),
		slog.Int("kept", len(deduplicated)))

	enriched := Enrich(deduplicated)
	slog.Debug("[ReviewAnalyzer] Enrichment complete", slog.Int("reviews", len(enriched)))

	result.Overview = computeOverview(enriched, now)
	result.Sentiment = computeSentiment(enriched, now)
	result.Ratings = computeRatings(enriched, now)
	result.Responses = computeResponses(enriched)
	result.Legitimacy = computeLegitimacy(enriched, now)
	result.Content = computeContent(enriched)
	result.Temporal = computeTemporal(enriched, now)
	result.Reviewer = computeReviewer(enriched)

	// Declared dependencies: competitive needs overview, actions need
	// everything else.
	result.Competitive = computeCompetitive(result.Overview)
	result.Actions = computeActions(enriched, result.Overview, result.Sentiment,
		result.Ratings, result.Responses, result.Legitimacy, result.Content)

	slog.Info("[ReviewAnalyzer] Report assembled",
		slog.String("analysis_id", result.AnalysisID),
		slog.Int("health_score", result.Overview.HealthScore),
		slog.String("grade", result.Overview.GradeLabel))

	return result
}

// emptyResult fills every block with its zero-review shape: counts at
// zero, lists empty, never NaN.
func emptyResult(result models.AnalysisResult) models.AnalysisResult {
	result.Overview = models.OverviewMetrics{
		StrengthsSummary:   []string{},
		WeaknessesSummary:  []string{"No reviews to analyze"},
		RiskAlerts:         []string{},
		GradeLabel:         "N/A",
		ReputationMomentum: momentumStable,
	}
	result.Sentiment = models.SentimentMetrics{
		OverallLabel:      "N/A",
		SentimentTrend:    []models.PeriodScore{},
		EmotionBreakdown:  []models.EmotionCount{},
		SentimentByRating: []models.RatingSentiment{},
		AspectSentiments:  []models.AspectBreakdown{},
	}
	result.Ratings = models.RatingMetrics{
		Distribution:         []models.RatingBucket{},
		RatingTrend:          []models.RatingPeriod{},
		ImprovingOrDeclining: "N/A",
		AnomalyPeriods:       []models.AnomalyPeriod{},
	}
	result.Responses = models.ResponseMetrics{
		RespondedByRating:    []models.RatingResponseRate{},
		UnrespondedNegatives: []models.UnrespondedReview{},
	}
	result.Legitimacy = models.LegitimacyMetrics{
		LocalGuideDistribution: []models.GuideLevelCount{},
		VelocitySpikes:         []models.VelocitySpike{},
		SuspiciousPatterns:     []string{},
		FakeScoreDistribution:  []models.FakeScoreBand{},
		TopSuspiciousReviews:   []models.SuspiciousReview{},
	}
	result.Content = models.ContentMetrics{
		TopKeywords:        []models.KeywordCount{},
		TopPhrases:         []models.PhraseCount{},
		Trigrams:           []models.PhraseCount{},
		ComplaintThemes:    []models.ThemeCount{},
		PraiseThemes:       []models.ThemeCount{},
		MentionedStaff:     []string{},
		ServicesMentioned:  []models.ServiceMention{},
		CompetitorMentions: []string{},
	}
	result.Temporal = models.TemporalMetrics{
		ReviewsPerMonth:  []models.MonthCount{},
		BusiestMonth:     "N/A",
		SlowestMonth:     "N/A",
		RecentTrend:      "N/A",
		BurstPeriods:     []models.BurstPeriod{},
		FirstReviewMonth: "N/A",
		LastReviewMonth:  "N/A",
	}
	result.Actions = models.ActionMetrics{
		PriorityIssues:        []models.PriorityIssue{},
		RecommendedActions:    []models.RecommendedAction{},
		SuggestedResponses:    []models.SuggestedResponse{},
		OverallRecommendation: "No reviews available for analysis.",
		QuickWins:             []string{},
		LongTermStrategies:    []string{},
	}
	result.Competitive = models.CompetitiveMetrics{
		IndustryBenchmark:       []models.BenchmarkComparison{},
		StrengthsVsCompetitors:  []string{},
		WeaknessesVsCompetitors: []string{},
		MarketPositioning:       "Unknown",
	}
	result.Reviewer = models.ReviewerMetrics{
		TopReviewers:              []models.TopReviewer{},
		ReviewerLoyaltyIndicators: []string{},
	}
	return result
}

// excerpt truncates text for report embedding without splitting runes.
func excerpt(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}

func firstName(fullName string) string {
	fields := strings.Fields(fullName)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
