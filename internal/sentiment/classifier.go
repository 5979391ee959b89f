// Package sentiment scores review text for polarity, emotion, and
// aspect-level sentiment. The classifier is a deterministic hybrid of
// phrase tables, an AFINN-style word lexicon with negation and
// intensity modifiers, surface cues, and star-rating fusion; the
// compound squash follows VADER (Hutto & Gilbert, 2014).
package sentiment

import (
	"math"
	"regexp"
	"strings"

	"github.com/localpulse/reviewlens/internal/models"
	"github.com/localpulse/reviewlens/internal/utils"
)

const (
	negationWindow   = 3    // tokens scanned back for a negator
	negationModifier = -0.8 // flip and dampen
	labelThreshold   = 0.05 // compound cutoff for POSITIVE/NEGATIVE
)

var (
	nonWordPattern = regexp.MustCompile(`[^a-z'\s-]`)
	capsPattern    = regexp.MustCompile(`[A-Z]`)
)

// Classify scores a single piece of text, optionally fused with a star
// rating. rating 0 means "no rating supplied"; valid ratings are 1..5.
func Classify(text string, rating int) models.SentimentResult {
	if strings.TrimSpace(text) == "" {
		return classifyWithoutText(rating)
	}

	lower := strings.ToLower(text)
	total := 0.0
	var posWords, negWords []string

	// Phrase tables first: idioms carry fixed weights independent of
	// word-level scoring.
	for _, p := range negativePhrases {
		if strings.Contains(lower, p.phrase) {
			total += p.score
			negWords = append(negWords, p.phrase)
		}
	}
	for _, p := range positivePhrases {
		if strings.Contains(lower, p.phrase) {
			total += p.score
			posWords = append(posWords, p.phrase)
		}
	}

	// Word-level scoring with negation and intensity context.
	words := tokenize(lower)
	for i, word := range words {
		score, ok := wordScores[word]
		if !ok {
			continue
		}

		modifier := 1.0
		for j := i - negationWindow; j < i; j++ {
			if j >= 0 && negators[words[j]] {
				modifier *= negationModifier
				break
			}
		}
		if i > 0 {
			if boost, ok := intensifiers[words[i-1]]; ok {
				modifier *= boost
			}
			if damp, ok := diminishers[words[i-1]]; ok {
				modifier *= damp
			}
		}

		adjusted := score * modifier
		total += adjusted
		if adjusted > 0 {
			posWords = append(posWords, word)
		} else if adjusted < 0 {
			negWords = append(negWords, word)
		}
	}

	// Surface cues: exclamations nudge in the direction the score
	// already leans; a partial ALL-CAPS text amplifies it.
	exclamations := strings.Count(text, "!")
	if exclamations > 0 && exclamations <= 3 {
		if total > 0 {
			total += 0.3 * float64(exclamations)
		} else {
			total -= 0.2 * float64(exclamations)
		}
	}

	fields := strings.Fields(text)
	capsCount := 0
	for _, w := range fields {
		if len(w) > 2 && w == strings.ToUpper(w) && capsPattern.MatchString(w) {
			capsCount++
		}
	}
	if capsCount > 0 && float64(capsCount) < float64(len(fields))*0.8 {
		if total > 0 {
			total += 0.5
		} else {
			total -= 0.5
		}
	}

	// Rating fusion: the rating is a stronger, less noisy signal than
	// free text. On sharp disagreement it dominates 60/40; near-neutral
	// text leans on it at 70%; agreement adds a 30% confirmation.
	if rating != 0 {
		ratingSignal := float64(rating-3) * 0.8
		switch {
		case (total > 0 && rating <= 2) || (total < 0 && rating >= 4):
			total = total*0.4 + ratingSignal*0.6
		case math.Abs(total) < 0.5:
			total += ratingSignal * 0.7
		default:
			total += ratingSignal * 0.3
		}
	}

	clamped := utils.Clamp(total, -5, 5)
	compound := clamped / math.Sqrt(clamped*clamped+15)

	var label string
	switch {
	case compound >= labelThreshold:
		label = models.SentimentPositive
	case compound <= -labelThreshold:
		label = models.SentimentNegative
	case len(posWords) > 0 && len(negWords) > 0:
		label = models.SentimentMixed
	default:
		label = models.SentimentNeutral
	}

	// A 1-star review is never reported neutral or positive.
	if rating != 0 && rating <= 2 && label == models.SentimentNeutral {
		label = models.SentimentNegative
	}
	if rating == 1 {
		label = models.SentimentNegative
	}

	evidence := len(posWords) + len(negWords)
	confidence := float64(evidence) * 0.15
	if rating != 0 {
		confidence += 0.3
	}
	confidence = math.Min(1, confidence)

	return models.SentimentResult{
		Score:         utils.RoundTo(clamped, 3),
		Compound:      utils.RoundTo(compound, 4),
		Label:         label,
		Confidence:    utils.RoundTo(confidence, 2),
		PositiveWords: uniqueHead(posWords, 10),
		NegativeWords: uniqueHead(negWords, 10),
		Emotion:       detectEmotion(lower, rating),
		Aspects:       extractAspects(lower),
	}
}

// classifyWithoutText derives sentiment from the rating alone; the
// fixed 0.3 confidence reflects the missing textual evidence.
func classifyWithoutText(rating int) models.SentimentResult {
	if rating == 0 {
		return models.SentimentResult{
			Label:         models.SentimentNeutral,
			Emotion:       emotionNeutral,
			PositiveWords: []string{},
			NegativeWords: []string{},
			Aspects:       []models.AspectSentiment{},
		}
	}

	score := float64(rating-3) * 1.5
	label := models.SentimentNeutral
	emotion := emotionNeutral
	switch {
	case rating >= 4:
		label = models.SentimentPositive
		emotion = emotionSatisfaction
	case rating <= 2:
		label = models.SentimentNegative
		emotion = emotionDissatisfaction
	}

	return models.SentimentResult{
		Score:         score,
		Compound:      utils.Clamp(score/4, -1, 1),
		Label:         label,
		Confidence:    0.3,
		PositiveWords: []string{},
		NegativeWords: []string{},
		Emotion:       emotion,
		Aspects:       []models.AspectSentiment{},
	}
}

// tokenize lowercases and strips everything outside letters,
// apostrophes and hyphens, then drops single-character tokens.
func tokenize(lower string) []string {
	cleaned := nonWordPattern.ReplaceAllString(lower, "")
	fields := strings.Fields(cleaned)
	words := fields[:0]
	for _, w := range fields {
		if len(w) > 1 {
			words = append(words, w)
		}
	}
	return words
}

func uniqueHead(words []string, limit int) []string {
	seen := make(map[string]bool, len(words))
	out := make([]string, 0, limit)
	for _, w := range words {
		if seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
		if len(out) == limit {
			break
		}
	}
	return out
}
