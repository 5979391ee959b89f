package analyzer

import (
	"math"
	"sort"
	"time"

	"github.com/localpulse/reviewlens/internal/models"
	"github.com/localpulse/reviewlens/internal/utils"
)

func computeSentiment(reviews []models.EnrichedReview, now time.Time) models.SentimentMetrics {
	var positive, negative, neutral, mixed []models.EnrichedReview
	for _, r := range reviews {
		switch r.SentimentLabel {
		case models.SentimentPositive:
			positive = append(positive, r)
		case models.SentimentNegative:
			negative = append(negative, r)
		case models.SentimentMixed:
			mixed = append(mixed, r)
		default:
			neutral = append(neutral, r)
		}
	}

	avgPos := 0.0
	if len(positive) > 0 {
		for _, r := range positive {
			avgPos += r.SentimentScore
		}
		avgPos /= float64(len(positive))
	}
	avgNeg := 0.0
	if len(negative) > 0 {
		for _, r := range negative {
			avgNeg += math.Abs(r.SentimentScore)
		}
		avgNeg /= float64(len(negative))
	}

	overallLabel := models.SentimentNeutral
	if avgPos > avgNeg {
		overallLabel = models.SentimentPositive
	} else if avgNeg > avgPos {
		overallLabel = models.SentimentNegative
	}

	// Extremes among reviews that actually have text.
	var withText []models.EnrichedReview
	for _, r := range reviews {
		if r.HasText() {
			withText = append(withText, r)
		}
	}
	sort.SliceStable(withText, func(i, j int) bool {
		return withText[i].SentimentScore > withText[j].SentimentScore
	})
	var mostPos, mostNeg *models.ReviewExcerpt
	if len(withText) > 0 {
		top := withText[0]
		bottom := withText[len(withText)-1]
		mostPos = &models.ReviewExcerpt{Text: excerpt(top.Text, 300), Score: top.SentimentScore, Reviewer: top.ReviewerName}
		mostNeg = &models.ReviewExcerpt{Text: excerpt(bottom.Text, 300), Score: bottom.SentimentScore, Reviewer: bottom.ReviewerName}
	}

	emotions := utils.NewCounter[string]()
	for _, r := range reviews {
		emotions.Add(r.Sentiment.Emotion)
	}
	emotionBreakdown := make([]models.EmotionCount, 0, emotions.Len())
	for _, emotion := range emotions.Keys() {
		count := emotions.Get(emotion)
		emotionBreakdown = append(emotionBreakdown, models.EmotionCount{
			Emotion:    emotion,
			Count:      count,
			Percentage: utils.RoundTo(utils.Pct(count, len(reviews)), 1),
		})
	}
	sort.SliceStable(emotionBreakdown, func(i, j int) bool {
		return emotionBreakdown[i].Count > emotionBreakdown[j].Count
	})

	byRating := make(map[int][]float64)
	for _, r := range reviews {
		byRating[r.Rating] = append(byRating[r.Rating], r.SentimentScore)
	}
	sentimentByRating := make([]models.RatingSentiment, 0, len(byRating))
	for rating := 1; rating <= 5; rating++ {
		scores, ok := byRating[rating]
		if !ok {
			continue
		}
		sum := 0.0
		for _, s := range scores {
			sum += s
		}
		sentimentByRating = append(sentimentByRating, models.RatingSentiment{
			Rating:       rating,
			AvgSentiment: utils.RoundTo(sum/float64(len(scores)), 3),
		})
	}

	// Alignment and sarcasm both consider only reviews with enough
	// text to carry a signal.
	aligned, sarcasm, textful := 0, 0, 0
	for _, r := range reviews {
		if len(r.Text) <= 10 {
			continue
		}
		textful++
		switch {
		case r.Rating >= 4 && r.SentimentLabel == models.SentimentPositive,
			r.Rating <= 2 && r.SentimentLabel == models.SentimentNegative,
			r.Rating == 3 && (r.SentimentLabel == models.SentimentNeutral || r.SentimentLabel == models.SentimentMixed):
			aligned++
		}
		if (r.Rating >= 4 && r.SentimentLabel == models.SentimentNegative) ||
			(r.Rating <= 2 && r.SentimentLabel == models.SentimentPositive) {
			sarcasm++
		}
	}
	alignment := 0
	if textful > 0 {
		alignment = int(math.Round(float64(aligned) / float64(textful) * 100))
	}

	aspectAgg := make(map[string]*models.AspectBreakdown)
	var aspectOrder []string
	for _, r := range reviews {
		for _, a := range r.Sentiment.Aspects {
			agg, ok := aspectAgg[a.Aspect]
			if !ok {
				agg = &models.AspectBreakdown{Aspect: a.Aspect}
				aspectAgg[a.Aspect] = agg
				aspectOrder = append(aspectOrder, a.Aspect)
			}
			switch a.Sentiment {
			case "positive":
				agg.Positive++
			case "negative":
				agg.Negative++
			default:
				agg.Neutral++
			}
		}
	}
	aspectSentiments := make([]models.AspectBreakdown, 0, len(aspectOrder))
	for _, name := range aspectOrder {
		aspectSentiments = append(aspectSentiments, *aspectAgg[name])
	}

	groups := groupByMonth(reviews, now)
	months := sortedMonths(groups)
	trend := make([]models.PeriodScore, 0, len(months))
	for _, m := range months {
		trend = append(trend, models.PeriodScore{
			Period: m,
			Score:  utils.RoundTo(avgSentimentOf(groups[m]), 3),
		})
	}

	return models.SentimentMetrics{
		OverallScore:             utils.RoundTo(avgSentimentOf(reviews), 3),
		OverallLabel:             overallLabel,
		PositiveCount:            len(positive),
		NegativeCount:            len(negative),
		NeutralCount:             len(neutral),
		MixedCount:               len(mixed),
		AveragePositiveIntensity: utils.RoundTo(avgPos, 3),
		AverageNegativeIntensity: utils.RoundTo(avgNeg, 3),
		SentimentTrend:           trend,
		MostPositiveReview:       mostPos,
		MostNegativeReview:       mostNeg,
		EmotionBreakdown:         emotionBreakdown,
		SentimentByRating:        sentimentByRating,
		RatingTextAlignment:      alignment,
		SarcasmSuspectCount:      sarcasm,
		AspectSentiments:         aspectSentiments,
	}
}
