package analyzer

import (
	"math"
	"strings"

	"github.com/localpulse/reviewlens/internal/models"
	"github.com/localpulse/reviewlens/internal/utils"
)

// templatePrefixLen is the normalized response prefix compared for
// template detection; a prefix reused more than twice counts as
// copy-pasted.
const templatePrefixLen = 100

var empathyWords = []string{"sorry", "apologize", "understand", "appreciate", "thank you", "grateful", "value", "care", "concern", "improve"}
var resolutionWords = []string{"resolve", "fix", "address", "correct", "refund", "replace", "compensate", "follow up", "contact us", "reach out"}
var defensiveWords = []string{"actually", "however", "incorrect", "wrong", "false", "untrue", "never happened", "disagree"}

func computeResponses(reviews []models.EnrichedReview) models.ResponseMetrics {
	var responded, negatives, positives []models.EnrichedReview
	for _, r := range reviews {
		if r.ResponseText != "" {
			responded = append(responded, r)
		}
		if r.Rating <= 2 {
			negatives = append(negatives, r)
		}
		if r.Rating >= 4 {
			positives = append(positives, r)
		}
	}

	respondedNeg, respondedPos := 0, 0
	for _, r := range negatives {
		if r.ResponseText != "" {
			respondedNeg++
		}
	}
	for _, r := range positives {
		if r.ResponseText != "" {
			respondedPos++
		}
	}

	avgLen := 0.0
	for _, r := range responded {
		avgLen += float64(len(r.ResponseText))
	}
	if len(responded) > 0 {
		avgLen /= float64(len(responded))
	}

	prefixes := utils.NewCounter[string]()
	for _, r := range responded {
		prefixes.Add(excerpt(strings.ToLower(strings.TrimSpace(r.ResponseText)), templatePrefixLen))
	}
	templated := 0
	for _, prefix := range prefixes.Keys() {
		if count := prefixes.Get(prefix); count > 2 {
			templated += count
		}
	}
	templateRate := utils.Pct(templated, len(responded))

	empathy, resolution, defensive, personalized := 0, 0, 0, 0
	for _, r := range responded {
		lower := strings.ToLower(r.ResponseText)
		if containsAny(lower, empathyWords) {
			empathy++
		}
		if containsAny(lower, resolutionWords) {
			resolution++
		}
		if containsAny(lower, defensiveWords) {
			defensive++
		}
		if name := strings.ToLower(firstName(r.ReviewerName)); name != "" && strings.Contains(lower, name) {
			personalized++
		}
	}

	empathyRate := utils.Pct(empathy, len(responded))
	personalizedRate := utils.Pct(personalized, len(responded))
	defensiveRate := utils.Pct(defensive, len(responded))

	// Composite quality: empathy 0.3, personalization 0.2, length 0.2
	// (capped), non-templated 0.15, non-defensive 0.15.
	quality := math.Round(
		empathyRate*0.3 +
			personalizedRate*0.2 +
			math.Min(avgLen/5, 20)*0.2 +
			(100-templateRate)*0.15 +
			(100-defensiveRate)*0.15)
	quality = utils.Clamp(quality, 0, 100)

	respondedByRating := make([]models.RatingResponseRate, 0, 5)
	for rating := 1; rating <= 5; rating++ {
		forRating, answered := 0, 0
		for _, r := range reviews {
			if r.Rating == rating {
				forRating++
				if r.ResponseText != "" {
					answered++
				}
			}
		}
		respondedByRating = append(respondedByRating, models.RatingResponseRate{
			Rating:       rating,
			ResponseRate: utils.RoundTo(utils.Pct(answered, forRating), 1),
		})
	}

	unresponded := []models.UnrespondedReview{}
	for _, r := range negatives {
		if r.ResponseText != "" {
			continue
		}
		text := "No text"
		if r.HasText() {
			text = excerpt(r.Text, 200)
		}
		date := r.PublishedDate
		if date == "" {
			date = unknownBucket
		}
		unresponded = append(unresponded, models.UnrespondedReview{
			Reviewer: r.ReviewerName,
			Text:     text,
			Rating:   r.Rating,
			Date:     date,
		})
		if len(unresponded) == 10 {
			break
		}
	}

	return models.ResponseMetrics{
		TotalResponses:        len(responded),
		ResponseRate:          utils.RoundTo(utils.Pct(len(responded), len(reviews)), 1),
		ResponseRateNegative:  utils.RoundTo(utils.Pct(respondedNeg, len(negatives)), 1),
		ResponseRatePositive:  utils.RoundTo(utils.Pct(respondedPos, len(positives)), 1),
		AverageResponseLength: int(math.Round(avgLen)),
		TemplateDetectionRate: utils.RoundTo(templateRate, 1),
		EmpathyScore:          int(math.Round(empathyRate)),
		ResolutionRate:        utils.RoundTo(utils.Pct(resolution, len(responded)), 1),
		DefensiveRate:         utils.RoundTo(defensiveRate, 1),
		PersonalizedRate:      utils.RoundTo(personalizedRate, 1),
		RespondedByRating:     respondedByRating,
		UnrespondedNegatives:  unresponded,
		ResponseQualityScore:  int(quality),
	}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
