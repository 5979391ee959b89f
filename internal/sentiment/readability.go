package sentiment

import (
	"regexp"
	"strings"

	"github.com/localpulse/reviewlens/internal/utils"
)

// Readability summarizes text complexity via the Flesch-Kincaid grade
// level estimate.
type Readability struct {
	FleschKincaid     float64 `json:"flesch_kincaid"`
	AvgSentenceLength float64 `json:"avg_sentence_length"`
	AvgWordLength     float64 `json:"avg_word_length"`
}

var (
	sentenceSplit   = regexp.MustCompile(`[.!?]+`)
	nonLetter       = regexp.MustCompile(`[^a-z]`)
	silentSuffix    = regexp.MustCompile(`(?:[^laeiouy]es|ed|[^laeiouy]e)$`)
	leadingY        = regexp.MustCompile(`^y`)
	syllableCluster = regexp.MustCompile(`[aeiouy]{1,2}`)
)

// ComputeReadability estimates the Flesch-Kincaid grade level from
// sentence length and syllable counts, floored at 0.
func ComputeReadability(text string) Readability {
	var sentences int
	for _, s := range sentenceSplit.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			sentences++
		}
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return Readability{}
	}

	syllables := 0
	totalLen := 0
	for _, w := range words {
		syllables += countSyllables(w)
		totalLen += len(w)
	}

	avgSentLen := float64(len(words))
	if sentences > 0 {
		avgSentLen = float64(len(words)) / float64(sentences)
	}
	avgSyllables := float64(syllables) / float64(len(words))
	avgWordLen := float64(totalLen) / float64(len(words))

	grade := 0.39*avgSentLen + 11.8*avgSyllables - 15.59
	if grade < 0 {
		grade = 0
	}

	return Readability{
		FleschKincaid:     utils.RoundTo(grade, 1),
		AvgSentenceLength: utils.RoundTo(avgSentLen, 1),
		AvgWordLength:     utils.RoundTo(avgWordLen, 1),
	}
}

// countSyllables approximates by counting vowel clusters after trimming
// silent endings. Good enough for a grade-level estimate.
func countSyllables(word string) int {
	word = nonLetter.ReplaceAllString(strings.ToLower(word), "")
	if len(word) <= 2 {
		return 1
	}
	word = silentSuffix.ReplaceAllString(word, "")
	word = leadingY.ReplaceAllString(word, "")
	n := len(syllableCluster.FindAllString(word, -1))
	if n == 0 {
		return 1
	}
	return n
}
