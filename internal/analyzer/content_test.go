package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/localpulse/reviewlens/internal/models"
)

func textReview(name string, rating int, score float64, text string) models.EnrichedReview {
	return models.EnrichedReview{
		RawReview:      models.RawReview{ReviewerName: name, Rating: rating, Text: text},
		SentimentScore: score,
		WordCount:      len(strings.Fields(text)),
	}
}

func TestComputeContentKeywordsAndPhrases(t *testing.T) {
	reviews := []models.EnrichedReview{
		textReview("A", 5, 0.8, "Amazing pizza and amazing service every single visit"),
		textReview("B", 5, 0.7, "The pizza was amazing and the service was quick"),
		textReview("C", 4, 0.5, "Best pizza in town, friendly service"),
	}

	m := computeContent(reviews)

	keywords := map[string]models.KeywordCount{}
	for _, k := range m.TopKeywords {
		keywords[k.Word] = k
	}
	assert.Equal(t, 3, keywords["amazing"].Count)
	assert.Equal(t, "positive", keywords["amazing"].Sentiment)
	assert.Equal(t, 3, keywords["pizza"].Count)
	assert.Equal(t, 3, keywords["service"].Count)

	// "amazing" outranks everything else.
	assert.Equal(t, "amazing", m.TopKeywords[0].Word)
}

func TestComputeContentThemes(t *testing.T) {
	reviews := []models.EnrichedReview{
		textReview("A", 1, -0.7, "We waited forever and the staff was rude about it"),
		textReview("B", 2, -0.5, "Such a long wait, never again"),
		textReview("C", 5, 0.8, "Friendly and helpful staff, excellent work"),
	}

	m := computeContent(reviews)

	assert.NotEmpty(t, m.ComplaintThemes)
	assert.Equal(t, "Wait Times", m.ComplaintThemes[0].Theme)
	assert.Equal(t, 2, m.ComplaintThemes[0].Count)
	assert.Len(t, m.ComplaintThemes[0].Examples, 2)

	praise := map[string]int{}
	for _, p := range m.PraiseThemes {
		praise[p.Theme] = p.Count
	}
	assert.Equal(t, 1, praise["Staff"])
	assert.Equal(t, 1, praise["Service Quality"])
}

func TestComputeContentStaffAndCompetitors(t *testing.T) {
	reviews := []models.EnrichedReview{
		textReview("A", 5, 0.8, "Marco fixed everything, ask for Marco"),
		textReview("B", 5, 0.7, "Marco was fantastic, much better than Crusty Pies down the street"),
		textReview("C", 4, 0.6, "Great repair work, we switched from Crusty Pies. No regrets"),
	}

	m := computeContent(reviews)

	assert.Equal(t, []string{"Marco"}, m.MentionedStaff)
	assert.Equal(t, []string{"Crusty Pies down the street", "Crusty Pies"}, m.CompetitorMentions)
}

func TestExtractCompetitorMentionsLengthChangingCaseFold(t *testing.T) {
	// "Ⱥ" is 2 bytes but lowercases to the 3-byte "ⱥ", so offsets into
	// the folded text run past the end of the original.
	reviews := []models.EnrichedReview{
		textReview("A", 4, 0.5, "ȺȺȺȺȺȺȺȺ prefer the corner bakery"),
	}

	mentions := extractCompetitorMentions(reviews)

	assert.Equal(t, []string{"the corner bakery"}, mentions)
}

func TestContentTokensFiltersStopWords(t *testing.T) {
	tokens := contentTokens("The food was so very good, we loved it!")

	assert.Equal(t, []string{"food", "good", "loved"}, tokens)
}

func TestLanguageQuality(t *testing.T) {
	long := textReview("A", 5, 0.5,
		"This review has punctuation, mixed case, and more than twenty words of actual substance describing the whole visit in satisfying detail.")
	assert.Equal(t, 80.0, languageQuality(long))

	shouty := textReview("B", 1, -0.5, "WORST PLACE EVER!!!")
	assert.Equal(t, 40.0, languageQuality(shouty))
}
