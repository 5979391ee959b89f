package analyzer

import (
	"strings"
	"sync"

	"github.com/localpulse/reviewlens/internal/models"
	"github.com/localpulse/reviewlens/internal/sentiment"
	"github.com/localpulse/reviewlens/internal/trust"
	"github.com/localpulse/reviewlens/internal/utils"
)

const enrichChunkSize = 64

// Enrich attaches sentiment, word count, and fake-review scoring to a
// normalized batch. Reviews are independent, so chunks run in parallel
// with index-preserving writes; output order matches input order.
func Enrich(reviews []models.RawReview) []models.EnrichedReview {
	enriched := make([]models.EnrichedReview, len(reviews))

	var wg sync.WaitGroup
	offset := 0
	for _, chunk := range utils.Chunk(reviews, enrichChunkSize) {
		wg.Add(1)
		go func(chunk []models.RawReview, out []models.EnrichedReview) {
			defer wg.Done()
			for i, r := range chunk {
				out[i] = enrichOne(r)
			}
		}(chunk, enriched[offset:offset+len(chunk)])
		offset += len(chunk)
	}
	wg.Wait()

	return enriched
}

func enrichOne(r models.RawReview) models.EnrichedReview {
	sent := sentiment.Classify(r.Text, r.Rating)
	fake := trust.ScoreReview(r, sent)
	return models.EnrichedReview{
		RawReview:      r,
		Sentiment:      sent,
		SentimentScore: sent.Compound,
		SentimentLabel: sent.Label,
		WordCount:      len(strings.Fields(r.Text)),
		FakeScore:      fake.Value,
		FakeReasons:    fake.Reasons,
	}
}
