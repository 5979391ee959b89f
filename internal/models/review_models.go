package models

// RawReview is a single review record as delivered by a review source.
// Optional profile fields are pointers: absent means "never observed",
// which is not the same as zero for the trust heuristics.
type RawReview struct {
	ReviewerName    string `json:"reviewer_name"`
	Rating          int    `json:"rating"`
	Text            string `json:"text,omitempty"`
	PublishedDate   string `json:"published_date,omitempty"`
	ResponseText    string `json:"response_text,omitempty"`
	ResponseDate    string `json:"response_date,omitempty"`
	ReviewCount     *int   `json:"review_count,omitempty"`
	PhotoCount      *int   `json:"photo_count,omitempty"`
	LocalGuideLevel *int   `json:"local_guide_level,omitempty"`
}

// EnrichedReview is a RawReview plus everything the enrichment stage
// derives from it. Created once, never mutated afterwards.
type EnrichedReview struct {
	RawReview
	Sentiment      SentimentResult `json:"sentiment"`
	SentimentScore float64         `json:"sentiment_score"`
	SentimentLabel string          `json:"sentiment_label"`
	WordCount      int             `json:"word_count"`
	FakeScore      int             `json:"fake_score"`
	FakeReasons    []string        `json:"fake_reasons"`
}

// HasText reports whether the review carries any non-whitespace text.
func (r RawReview) HasText() bool {
	for _, c := range r.Text {
		if c != ' ' && c != '\t' && c != '\n' && c != '\r' {
			return true
		}
	}
	return false
}

// IsLocalGuide reports whether the reviewer carries the platform's
// local-guide trust signal.
func (r RawReview) IsLocalGuide() bool {
	return r.LocalGuideLevel != nil && *r.LocalGuideLevel > 0
}

// BusinessInfo is the source business's declared metadata. The engine
// never reads it; the harness echoes it into the output envelope.
type BusinessInfo struct {
	Name        string  `json:"name,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
	ReviewCount int     `json:"review_count,omitempty"`
}
