package sentiment

import (
	"strings"

	"github.com/localpulse/reviewlens/internal/models"
	"github.com/localpulse/reviewlens/internal/utils"
)

const aspectWindow = 40 // chars of context kept on each side of a keyword hit

type aspectCategory struct {
	name     string
	keywords []string
}

var aspectCategories = []aspectCategory{
	{"Service", []string{"service", "staff", "employee", "team", "crew", "server", "waiter", "waitress", "manager", "receptionist"}},
	{"Food/Product", []string{"food", "meal", "dish", "menu", "taste", "flavor", "product", "item", "quality"}},
	{"Price", []string{"price", "cost", "expensive", "cheap", "affordable", "value", "worth", "overpriced", "reasonable"}},
	{"Cleanliness", []string{"clean", "dirty", "filthy", "hygiene", "sanitary", "spotless", "tidy", "messy"}},
	{"Atmosphere", []string{"atmosphere", "ambiance", "vibe", "decor", "music", "lighting", "cozy", "comfortable"}},
	{"Wait Time", []string{"wait", "waited", "slow", "fast", "quick", "prompt", "delay", "hour", "minutes"}},
	{"Location", []string{"location", "parking", "accessible", "convenient", "easy to find"}},
	{"Communication", []string{"communication", "response", "call", "email", "phone", "contact", "follow up"}},
}

// extractAspects re-scores a window around each aspect keyword with the
// lexicon tables only; negation handling is deliberately skipped at this
// granularity.
func extractAspects(lower string) []models.AspectSentiment {
	results := []models.AspectSentiment{}
	for _, cat := range aspectCategories {
		var found []string
		for _, kw := range cat.keywords {
			if strings.Contains(lower, kw) {
				found = append(found, kw)
			}
		}
		if len(found) == 0 {
			continue
		}

		score := 0.0
		for _, kw := range found {
			idx := strings.Index(lower, kw)
			start := idx - aspectWindow
			if start < 0 {
				start = 0
			}
			end := idx + len(kw) + aspectWindow
			if end > len(lower) {
				end = len(lower)
			}
			score += quickScore(lower[start:end])
		}
		score /= float64(len(found))

		sentiment := "neutral"
		if score > 0.3 {
			sentiment = "positive"
		} else if score < -0.3 {
			sentiment = "negative"
		}

		results = append(results, models.AspectSentiment{
			Aspect:    cat.name,
			Sentiment: sentiment,
			Score:     utils.RoundTo(score, 2),
		})
	}
	return results
}

// quickScore is the context-free variant used for aspect windows.
func quickScore(text string) float64 {
	score := 0.0
	for _, word := range strings.Fields(text) {
		score += wordScores[word]
	}
	for _, p := range negativePhrases {
		if strings.Contains(text, p.phrase) {
			score += p.score
		}
	}
	for _, p := range positivePhrases {
		if strings.Contains(text, p.phrase) {
			score += p.score
		}
	}
	return score
}
