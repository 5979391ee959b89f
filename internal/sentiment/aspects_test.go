package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractAspects(t *testing.T) {
	aspects := extractAspects("the staff were wonderful and very kind to us throughout the entire evening, however the food was awful")

	byName := map[string]string{}
	for _, a := range aspects {
		byName[a.Aspect] = a.Sentiment
	}

	assert.Equal(t, "positive", byName["Service"])
	assert.Equal(t, "negative", byName["Food/Product"])
}

func TestExtractAspectsNoKeywords(t *testing.T) {
	assert.Empty(t, extractAspects("nothing relevant here"))
}

func TestQuickScoreIgnoresContext(t *testing.T) {
	// No negation handling at this granularity; "not good" still scores
	// the word, only the phrase tables adjust it.
	assert.Equal(t, 1.0, quickScore("good"))
	assert.Equal(t, -4.0, quickScore("awful"))
}
