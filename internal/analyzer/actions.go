package analyzer

import (
	"fmt"
	"strings"

	"github.com/localpulse/reviewlens/internal/models"
)

func computeActions(
	reviews []models.EnrichedReview,
	overview models.OverviewMetrics,
	sentiment models.SentimentMetrics,
	ratings models.RatingMetrics,
	responses models.ResponseMetrics,
	legitimacy models.LegitimacyMetrics,
	content models.ContentMetrics,
) models.ActionMetrics {
	issues := []models.PriorityIssue{}
	actions := []models.RecommendedAction{}
	quickWins := []string{}
	longTerm := []string{}

	if responses.ResponseRateNegative < 50 {
		issues = append(issues, models.PriorityIssue{
			Issue:      "Low negative review response rate",
			Severity:   "HIGH",
			Evidence:   fmt.Sprintf("Only %g%% of 1-2 star reviews have responses", responses.ResponseRateNegative),
			Suggestion: "Respond to all negative reviews within 24 hours with personalized, empathetic messages.",
		})
		actions = append(actions, models.RecommendedAction{
			Action:   "Set up daily review monitoring",
			Priority: "HIGH",
			Impact:   "Improves perception and may recover lost customers",
		})
		quickWins = append(quickWins, "Respond to all unanswered negative reviews this week")
	}

	if responses.TemplateDetectionRate > 30 {
		issues = append(issues, models.PriorityIssue{
			Issue:      "Too many template responses",
			Severity:   "MEDIUM",
			Evidence:   fmt.Sprintf("%g%% of responses appear copy-pasted", responses.TemplateDetectionRate),
			Suggestion: "Reference specific details from each review in your response.",
		})
		quickWins = append(quickWins, "Rewrite template responses with personalized touches")
	}

	if responses.DefensiveRate > 20 {
		issues = append(issues, models.PriorityIssue{
			Issue:      "Defensive language in responses",
			Severity:   "HIGH",
			Evidence:   fmt.Sprintf("%g%% of responses contain defensive tone", responses.DefensiveRate),
			Suggestion: "Lead with empathy and acknowledgment, not correction.",
		})
	}

	if ratings.OneStarRatio > 15 {
		issues = append(issues, models.PriorityIssue{
			Issue:      "High 1-star concentration",
			Severity:   "HIGH",
			Evidence:   fmt.Sprintf("%g%% of reviews are 1-star", ratings.OneStarRatio),
			Suggestion: "Analyze 1-star reviews for recurring themes and address root causes.",
		})
		longTerm = append(longTerm, "Conduct root cause analysis of all 1-star reviews")
	}

	if ratings.ImprovingOrDeclining == trendDeclining {
		issues = append(issues, models.PriorityIssue{
			Issue:      "Rating trend declining",
			Severity:   "CRITICAL",
			Evidence:   fmt.Sprintf("Recent ratings %.2f points lower than overall", ratings.RecentVsOverallDelta),
			Suggestion: "Investigate recent operational changes causing quality drops.",
		})
		actions = append(actions, models.RecommendedAction{
			Action:   "Conduct internal quality audit",
			Priority: "URGENT",
			Impact:   "May halt further decline",
		})
	}

	if legitimacy.SuspiciousPercentage > 15 {
		issues = append(issues, models.PriorityIssue{
			Issue:      "Suspicious review activity",
			Severity:   "MEDIUM",
			Evidence:   fmt.Sprintf("%g%% flagged as potentially inauthentic", legitimacy.SuspiciousPercentage),
			Suggestion: "Report suspicious reviews to the platform.",
		})
	}

	if len(content.ComplaintThemes) > 0 {
		top := content.ComplaintThemes[0]
		issues = append(issues, models.PriorityIssue{
			Issue:      "Recurring complaint: " + top.Theme,
			Severity:   "MEDIUM",
			Evidence:   fmt.Sprintf("Mentioned in %d negative reviews", top.Count),
			Suggestion: fmt.Sprintf("Address %q systematically.", top.Theme),
		})
		longTerm = append(longTerm, "Create action plan to address "+top.Theme)
	}

	if overview.ResponseRate < 50 {
		actions = append(actions, models.RecommendedAction{
			Action:   "Aim to respond to 100% of reviews",
			Priority: "HIGH",
			Impact:   "Shows engagement to potential customers",
		})
	}

	if overview.NetPromoterScore < 20 {
		longTerm = append(longTerm, "Implement customer satisfaction program to improve NPS")
	}

	if sentiment.RatingTextAlignment < 60 {
		issues = append(issues, models.PriorityIssue{
			Issue:      "Low rating-text alignment",
			Severity:   "LOW",
			Evidence:   fmt.Sprintf("Only %d%% of ratings match text sentiment", sentiment.RatingTextAlignment),
			Suggestion: "This may indicate review manipulation or sarcasm in reviews.",
		})
	}

	actions = append(actions,
		models.RecommendedAction{
			Action:   "Encourage happy customers to leave reviews",
			Priority: "MEDIUM",
			Impact:   "Dilutes negative reviews",
		},
		models.RecommendedAction{
			Action:   "Share positive reviews on social media",
			Priority: "LOW",
			Impact:   "Builds social proof",
		})

	quickWins = append(quickWins, "Ask your top 5 most recent satisfied customers for a review")
	longTerm = append(longTerm, "Build systematic review request process into customer journey")

	suggested := []models.SuggestedResponse{}
	for _, unresponded := range responses.UnrespondedNegatives {
		if len(suggested) == 5 {
			break
		}
		enriched := findReview(reviews, unresponded.Reviewer, unresponded.Rating)
		label := models.SentimentNegative
		if enriched != nil {
			label = enriched.SentimentLabel
		}
		suggested = append(suggested, models.SuggestedResponse{
			ReviewerName:      unresponded.Reviewer,
			ReviewText:        unresponded.Text,
			Rating:            unresponded.Rating,
			Sentiment:         label,
			SuggestedResponse: draftResponse(unresponded.Reviewer, unresponded.Rating, enriched),
		})
	}

	overallRec := "Urgent attention needed. Focus on service quality, responding to all reviews, and fixing identified issues."
	switch {
	case overview.HealthScore >= 80:
		overallRec = "Your review profile is strong. Focus on maintaining quality and encouraging more reviews."
	case overview.HealthScore >= 60:
		overallRec = "Room for improvement. Prioritize responding to negatives and addressing recurring complaints."
	}

	return models.ActionMetrics{
		PriorityIssues:        issues,
		RecommendedActions:    actions,
		SuggestedResponses:    suggested,
		OverallRecommendation: overallRec,
		QuickWins:             quickWins,
		LongTermStrategies:    longTerm,
	}
}

func findReview(reviews []models.EnrichedReview, reviewer string, rating int) *models.EnrichedReview {
	for i := range reviews {
		if reviews[i].ReviewerName == reviewer && reviews[i].Rating == rating {
			return &reviews[i]
		}
	}
	return nil
}

// draftResponse interpolates the reviewer's first name and, when the
// classifier surfaced one, the most salient negative aspect or word.
func draftResponse(reviewer string, rating int, enriched *models.EnrichedReview) string {
	name := firstName(reviewer)
	if name == "" {
		name = "there"
	}

	issue := ""
	if enriched != nil {
		for _, a := range enriched.Sentiment.Aspects {
			if a.Sentiment == "negative" {
				issue = strings.ToLower(a.Aspect)
				break
			}
		}
		if issue == "" && len(enriched.Sentiment.NegativeWords) > 0 {
			issue = enriched.Sentiment.NegativeWords[0]
		}
	}

	if rating <= 2 {
		var b strings.Builder
		fmt.Fprintf(&b, "Dear %s, thank you for bringing this to our attention. We sincerely apologize for your experience", name)
		if issue != "" {
			fmt.Fprintf(&b, " regarding %s", issue)
		}
		b.WriteString(". This falls short of the standards we hold ourselves to. We take your feedback very seriously and are already looking into this matter. We would greatly appreciate the opportunity to make things right. Please contact us directly at your earliest convenience so we can address your concerns personally. Your satisfaction is our top priority.")
		return b.String()
	}
	if rating == 3 {
		mid := ""
		if issue != "" {
			mid = fmt.Sprintf(" and will review your comments about %s", issue)
		}
		return fmt.Sprintf("Thank you for your honest feedback, %s. We appreciate you taking the time to share your experience. We're always looking to improve%s. We hope to exceed your expectations on your next visit.", name, mid)
	}
	return fmt.Sprintf("Thank you for your review, %s! We appreciate your feedback and are glad you chose us.", name)
}
