package models

// Sentiment labels emitted by the classifier.
const (
	SentimentPositive = "POSITIVE"
	SentimentNegative = "NEGATIVE"
	SentimentNeutral  = "NEUTRAL"
	SentimentMixed    = "MIXED"
)

// AspectSentiment is the sentiment of one named business aspect
// (service, price, ...) inside a single review.
type AspectSentiment struct {
	Aspect    string  `json:"aspect"`
	Sentiment string  `json:"sentiment"`
	Score     float64 `json:"score"`
}

// SentimentResult is the classifier output for one piece of text.
type SentimentResult struct {
	Score         float64           `json:"score"`    // -5..+5 additive total, clamped
	Compound      float64           `json:"compound"` // -1..+1, VADER-style squash
	Label         string            `json:"label"`
	Confidence    float64           `json:"confidence"`
	PositiveWords []string          `json:"positive_words"`
	NegativeWords []string          `json:"negative_words"`
	Emotion       string            `json:"emotion"`
	Aspects       []AspectSentiment `json:"aspects"`
}
