package trust

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/localpulse/reviewlens/internal/models"
)

func intPtr(n int) *int { return &n }

func TestScoreReviewTextlessBurnerAccount(t *testing.T) {
	review := models.RawReview{
		ReviewerName: "A B",
		Rating:       5,
		ReviewCount:  intPtr(1),
		PhotoCount:   intPtr(0),
	}

	score := ScoreReview(review, models.SentimentResult{Label: models.SentimentNeutral})

	// 15 no text + 10 not local guide + 20 single-review + 5 no photos
	// + 10 extreme rating with minimal text.
	assert.Equal(t, 60, score.Value)
	assert.GreaterOrEqual(t, score.Value, LikelyFakeThreshold)
	assert.Contains(t, score.Reasons, "No review text provided")
	assert.Contains(t, score.Reasons, "Single-review account (first/only review)")
	assert.Contains(t, score.Reasons, "No photos ever uploaded")
	assert.Len(t, score.Reasons, 5)
}

func TestScoreReviewTrustworthy(t *testing.T) {
	review := models.RawReview{
		ReviewerName:    "Dana Wells",
		Rating:          4,
		Text:            "Really enjoyed the service and the atmosphere on our last visit.",
		ReviewCount:     intPtr(52),
		PhotoCount:      intPtr(12),
		LocalGuideLevel: intPtr(6),
	}

	score := ScoreReview(review, models.SentimentResult{Label: models.SentimentPositive})

	assert.Zero(t, score.Value)
	assert.Empty(t, score.Reasons)
}

func TestScoreReviewGenericFiveStar(t *testing.T) {
	review := models.RawReview{
		ReviewerName: "B C",
		Rating:       5,
		Text:         "good",
	}

	score := ScoreReview(review, models.SentimentResult{Label: models.SentimentPositive})

	// 10 short + 10 not local guide + 5 no photos + 10 extreme rating
	// with minimal text + 15 generic.
	assert.Equal(t, 50, score.Value)
	assert.Contains(t, score.Reasons, "Generic/boilerplate review text")
}

func TestScoreReviewRatingSentimentContradiction(t *testing.T) {
	review := models.RawReview{
		ReviewerName:    "C D",
		Rating:          5,
		Text:            "Cold food, rude staff, and we waited over an hour for our order.",
		ReviewCount:     intPtr(20),
		PhotoCount:      intPtr(4),
		LocalGuideLevel: intPtr(3),
	}

	score := ScoreReview(review, models.SentimentResult{Label: models.SentimentNegative})

	assert.Equal(t, 15, score.Value)
	assert.Equal(t, []string{"5-star rating but negative text sentiment (inconsistent)"}, score.Reasons)
}

func TestScoreReviewRepetitiveText(t *testing.T) {
	review := models.RawReview{
		ReviewerName:    "D E",
		Rating:          3,
		Text:            "great great great great great great great food",
		ReviewCount:     intPtr(30),
		PhotoCount:      intPtr(2),
		LocalGuideLevel: intPtr(4),
	}

	score := ScoreReview(review, models.SentimentResult{Label: models.SentimentPositive})

	assert.Contains(t, score.Reasons, "Highly repetitive text")
}

func TestScoreReviewClampsAtHundred(t *testing.T) {
	score := Score{}
	for _, text := range []string{"", "GOOD PLACE BEST EVER SEEN"} {
		review := models.RawReview{
			ReviewerName: "E F",
			Rating:       5,
			Text:         text,
			ReviewCount:  intPtr(1),
			PhotoCount:   intPtr(0),
		}
		score = ScoreReview(review, models.SentimentResult{Label: models.SentimentNegative})
		assert.LessOrEqual(t, score.Value, 100)
	}
}
