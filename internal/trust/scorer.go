// Package trust scores how likely a single review is inauthentic.
// The heuristic is an additive point system: every rule is independently
// triggerable and every triggered rule mirrors a human-readable reason,
// so each flag stays traceable.
package trust

import (
	"strings"

	"github.com/localpulse/reviewlens/internal/models"
)

// LikelyFakeThreshold is the summed score at which a review counts as
// likely fake.
const LikelyFakeThreshold = 50

// Score is the clamped 0..100 fake-likelihood plus one reason per
// triggered rule.
type Score struct {
	Value   int
	Reasons []string
}

type rule struct {
	points int
	reason string
	match  func(r models.RawReview, s models.SentimentResult) bool
}

var genericPhrases = map[string]bool{
	"great place":      true,
	"nice place":       true,
	"good":             true,
	"excellent":        true,
	"best place":       true,
	"highly recommend": true,
	"wonderful place":  true,
	"amazing place":    true,
}

var rules = []rule{
	{15, "No review text provided", func(r models.RawReview, _ models.SentimentResult) bool {
		return !r.HasText()
	}},
	{10, "Extremely short review text", func(r models.RawReview, _ models.SentimentResult) bool {
		return r.HasText() && len(r.Text) < 20
	}},
	{10, "Not a Local Guide", func(r models.RawReview, _ models.SentimentResult) bool {
		return !r.IsLocalGuide()
	}},
	{20, "Single-review account (first/only review)", func(r models.RawReview, _ models.SentimentResult) bool {
		return r.ReviewCount != nil && *r.ReviewCount <= 1
	}},
	{10, "Very few total reviews on account", func(r models.RawReview, _ models.SentimentResult) bool {
		return r.ReviewCount != nil && *r.ReviewCount > 1 && *r.ReviewCount <= 3
	}},
	{5, "No photos ever uploaded", func(r models.RawReview, _ models.SentimentResult) bool {
		// Absence means "never verified as having photos".
		return r.PhotoCount == nil || *r.PhotoCount == 0
	}},
	{10, "Extreme rating with minimal text", func(r models.RawReview, _ models.SentimentResult) bool {
		return (r.Rating == 1 || r.Rating == 5) && len(r.Text) < 30
	}},
	{5, "Entire review in ALL CAPS", func(r models.RawReview, _ models.SentimentResult) bool {
		return len(r.Text) > 10 && r.Text == strings.ToUpper(r.Text)
	}},
	{15, "Generic/boilerplate review text", func(r models.RawReview, _ models.SentimentResult) bool {
		if !r.HasText() {
			return false
		}
		lower := strings.TrimSpace(strings.ToLower(r.Text))
		return genericPhrases[lower] || (len(lower) < 15 && r.Rating == 5)
	}},
	{15, "5-star rating but negative text sentiment (inconsistent)", func(r models.RawReview, s models.SentimentResult) bool {
		return r.HasText() && r.Rating == 5 && s.Label == models.SentimentNegative
	}},
	{15, "1-star rating but positive text sentiment (inconsistent)", func(r models.RawReview, s models.SentimentResult) bool {
		return r.HasText() && r.Rating == 1 && s.Label == models.SentimentPositive
	}},
	{10, "Highly repetitive text", func(r models.RawReview, _ models.SentimentResult) bool {
		words := strings.Fields(strings.ToLower(r.Text))
		if len(words) <= 5 {
			return false
		}
		unique := make(map[string]bool, len(words))
		for _, w := range words {
			unique[w] = true
		}
		return float64(len(unique))/float64(len(words)) < 0.5
	}},
}

// ScoreReview evaluates every rule against one review and its sentiment.
func ScoreReview(r models.RawReview, s models.SentimentResult) Score {
	total := 0
	reasons := []string{}
	for _, rule := range rules {
		if rule.match(r, s) {
			total += rule.points
			reasons = append(reasons, rule.reason)
		}
	}
	if total > 100 {
		total = 100
	}
	return Score{Value: total, Reasons: reasons}
}
