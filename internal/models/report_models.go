package models

import "time"

// AnalysisResult is the full intelligence report: ten metric blocks
// computed over one enriched review set. It is a pure projection of its
// input; the ID exists so a persistence layer can key the stored report.
type AnalysisResult struct {
	AnalysisID  string    `json:"analysis_id"`
	GeneratedAt time.Time `json:"generated_at"`

	Overview    OverviewMetrics    `json:"overview"`
	Sentiment   SentimentMetrics   `json:"sentiment"`
	Ratings     RatingMetrics      `json:"ratings"`
	Responses   ResponseMetrics    `json:"responses"`
	Legitimacy  LegitimacyMetrics  `json:"legitimacy"`
	Content     ContentMetrics     `json:"content"`
	Temporal    TemporalMetrics    `json:"temporal"`
	Actions     ActionMetrics      `json:"actions"`
	Competitive CompetitiveMetrics `json:"competitive"`
	Reviewer    ReviewerMetrics    `json:"reviewer"`
}

type OverviewMetrics struct {
	HealthScore               int      `json:"health_score"`
	TotalReviews              int      `json:"total_reviews"`
	AverageRating             float64  `json:"average_rating"`
	RatingMedian              int      `json:"rating_median"`
	SentimentScore            float64  `json:"sentiment_score"`
	ResponseRate              float64  `json:"response_rate"`
	FakeReviewPercentage      float64  `json:"fake_review_percentage"`
	StrengthsSummary          []string `json:"strengths_summary"`
	WeaknessesSummary         []string `json:"weaknesses_summary"`
	RiskAlerts                []string `json:"risk_alerts"`
	GradeLabel                string   `json:"grade_label"`
	NetPromoterScore          int      `json:"net_promoter_score"`          // -100..100
	CustomerSatisfactionIndex int      `json:"customer_satisfaction_index"` // 0..100
	ReviewAuthenticityScore   int      `json:"review_authenticity_score"`   // 0..100
	EngagementScore           int      `json:"engagement_score"`            // 0..100
	ReputationMomentum        string   `json:"reputation_momentum"`         // RISING, FALLING, STABLE
}

type PeriodScore struct {
	Period string  `json:"period"`
	Score  float64 `json:"score"`
}

type ReviewExcerpt struct {
	Text     string  `json:"text"`
	Score    float64 `json:"score"`
	Reviewer string  `json:"reviewer"`
}

type EmotionCount struct {
	Emotion    string  `json:"emotion"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type RatingSentiment struct {
	Rating       int     `json:"rating"`
	AvgSentiment float64 `json:"avg_sentiment"`
}

type AspectBreakdown struct {
	Aspect   string `json:"aspect"`
	Positive int    `json:"positive"`
	Negative int    `json:"negative"`
	Neutral  int    `json:"neutral"`
}

type SentimentMetrics struct {
	OverallScore             float64           `json:"overall_score"`
	OverallLabel             string            `json:"overall_label"`
	PositiveCount            int               `json:"positive_count"`
	NegativeCount            int               `json:"negative_count"`
	NeutralCount             int               `json:"neutral_count"`
	MixedCount               int               `json:"mixed_count"`
	AveragePositiveIntensity float64           `json:"average_positive_intensity"`
	AverageNegativeIntensity float64           `json:"average_negative_intensity"`
	SentimentTrend           []PeriodScore     `json:"sentiment_trend"`
	MostPositiveReview       *ReviewExcerpt    `json:"most_positive_review"`
	MostNegativeReview       *ReviewExcerpt    `json:"most_negative_review"`
	EmotionBreakdown         []EmotionCount    `json:"emotion_breakdown"`
	SentimentByRating        []RatingSentiment `json:"sentiment_by_rating"`
	RatingTextAlignment      int               `json:"rating_text_alignment"` // 0..100
	SarcasmSuspectCount      int               `json:"sarcasm_suspect_count"`
	AspectSentiments         []AspectBreakdown `json:"aspect_sentiments"`
}

type RatingBucket struct {
	Rating     int     `json:"rating"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type RatingPeriod struct {
	Period    string  `json:"period"`
	AvgRating float64 `json:"avg_rating"`
	Count     int     `json:"count"`
}

type AnomalyPeriod struct {
	Period string `json:"period"`
	Reason string `json:"reason"`
}

type RatingMetrics struct {
	Distribution         []RatingBucket  `json:"distribution"`
	StandardDeviation    float64         `json:"standard_deviation"`
	RatingTrend          []RatingPeriod  `json:"rating_trend"`
	RatingVelocity       float64         `json:"rating_velocity"` // reviews per month
	ImprovingOrDeclining string          `json:"improving_or_declining"`
	FiveStarRatio        float64         `json:"five_star_ratio"`
	OneStarRatio         float64         `json:"one_star_ratio"`
	PolarizationIndex    float64         `json:"polarization_index"`
	RecentVsOverallDelta float64         `json:"recent_vs_overall_delta"`
	AnomalyPeriods       []AnomalyPeriod `json:"anomaly_periods"`
	WeightedRating       float64         `json:"weighted_rating"`
	BayesianAverage      float64         `json:"bayesian_average"`
	RatingEntropy        float64         `json:"rating_entropy"`
}

type RatingResponseRate struct {
	Rating       int     `json:"rating"`
	ResponseRate float64 `json:"response_rate"`
}

type UnrespondedReview struct {
	Reviewer string `json:"reviewer"`
	Text     string `json:"text"`
	Rating   int    `json:"rating"`
	Date     string `json:"date"`
}

type ResponseMetrics struct {
	TotalResponses        int                  `json:"total_responses"`
	ResponseRate          float64              `json:"response_rate"`
	ResponseRateNegative  float64              `json:"response_rate_negative"`
	ResponseRatePositive  float64              `json:"response_rate_positive"`
	AverageResponseLength int                  `json:"average_response_length"`
	TemplateDetectionRate float64              `json:"template_detection_rate"`
	EmpathyScore          int                  `json:"empathy_score"`
	ResolutionRate        float64              `json:"resolution_rate"`
	DefensiveRate         float64              `json:"defensive_rate"`
	PersonalizedRate      float64              `json:"personalized_rate"`
	RespondedByRating     []RatingResponseRate `json:"responded_by_rating"`
	UnrespondedNegatives  []UnrespondedReview  `json:"unresponded_negatives"`
	ResponseQualityScore  int                  `json:"response_quality_score"` // 0..100
}

type VelocitySpike struct {
	Period string `json:"period"`
	Count  int    `json:"count"`
	Normal int    `json:"normal"`
}

type FakeScoreBand struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

type SuspiciousReview struct {
	Reviewer string   `json:"reviewer"`
	Rating   int      `json:"rating"`
	Text     string   `json:"text"`
	Score    int      `json:"score"`
	Reasons  []string `json:"reasons"`
}

type GuideLevelCount struct {
	Level      string  `json:"level"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type LegitimacyMetrics struct {
	OverallTrustScore         int                `json:"overall_trust_score"`
	TotalSuspicious           int                `json:"total_suspicious"`
	SuspiciousPercentage      float64            `json:"suspicious_percentage"`
	LocalGuideCount           int                `json:"local_guide_count"`
	LocalGuidePercentage      float64            `json:"local_guide_percentage"`
	LocalGuideDistribution    []GuideLevelCount  `json:"local_guide_distribution"`
	OneReviewOnly             int                `json:"one_review_only"`
	OneReviewPercentage       float64            `json:"one_review_percentage"`
	LowEffortReviews          int                `json:"low_effort_reviews"`
	LowEffortPercentage       float64            `json:"low_effort_percentage"`
	RatingOnlyReviews         int                `json:"rating_only_reviews"`
	RatingOnlyPercentage      float64            `json:"rating_only_percentage"`
	PhotolessReviewers        int                `json:"photoless_reviewers"`
	PhotolessPercentage       float64            `json:"photoless_percentage"`
	VelocitySpikes            []VelocitySpike    `json:"velocity_spikes"`
	SuspiciousPatterns        []string           `json:"suspicious_patterns"`
	FakeScoreDistribution     []FakeScoreBand    `json:"fake_score_distribution"`
	TopSuspiciousReviews      []SuspiciousReview `json:"top_suspicious_reviews"`
	ReviewerDiversityIndex    float64            `json:"reviewer_diversity_index"` // 0..1
	DuplicateContentCount     int                `json:"duplicate_content_count"`
	AverageReviewerExperience float64            `json:"average_reviewer_experience"`
}

type KeywordCount struct {
	Word      string `json:"word"`
	Count     int    `json:"count"`
	Sentiment string `json:"sentiment"`
}

type PhraseCount struct {
	Phrase string `json:"phrase"`
	Count  int    `json:"count"`
}

type ThemeCount struct {
	Theme    string   `json:"theme"`
	Count    int      `json:"count"`
	Examples []string `json:"examples"`
}

type ServiceMention struct {
	Service   string `json:"service"`
	Count     int    `json:"count"`
	Sentiment string `json:"sentiment"`
}

type ContentMetrics struct {
	TopKeywords           []KeywordCount   `json:"top_keywords"`
	TopPhrases            []PhraseCount    `json:"top_phrases"`
	Trigrams              []PhraseCount    `json:"trigrams"`
	ComplaintThemes       []ThemeCount     `json:"complaint_themes"`
	PraiseThemes          []ThemeCount     `json:"praise_themes"`
	AverageWordCount      int              `json:"average_word_count"`
	MedianWordCount       int              `json:"median_word_count"`
	LongReviewsCount      int              `json:"long_reviews_count"`
	ShortReviewsCount     int              `json:"short_reviews_count"`
	LanguageQualityScore  int              `json:"language_quality_score"`
	QuestionCount         int              `json:"question_count"`
	EmojiUsageRate        float64          `json:"emoji_usage_rate"`
	MentionedStaff        []string         `json:"mentioned_staff"`
	ReadabilityScore      float64          `json:"readability_score"` // Flesch-Kincaid grade
	AverageSentenceLength float64          `json:"average_sentence_length"`
	UniqueWordRatio       float64          `json:"unique_word_ratio"`
	ServicesMentioned     []ServiceMention `json:"services_mentioned"`
	CompetitorMentions    []string         `json:"competitor_mentions"`
}

type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type BurstPeriod struct {
	Period     string  `json:"period"`
	Count      int     `json:"count"`
	AvgMonthly float64 `json:"avg_monthly"`
}

type TemporalMetrics struct {
	ReviewsPerMonth        []MonthCount  `json:"reviews_per_month"`
	AverageReviewsPerMonth float64       `json:"average_reviews_per_month"`
	BusiestMonth           string        `json:"busiest_month"`
	SlowestMonth           string        `json:"slowest_month"`
	RecentTrend            string        `json:"recent_trend"` // ACCELERATING, DECELERATING, STEADY
	RecencyScore           int           `json:"recency_score"`
	BurstPeriods           []BurstPeriod `json:"burst_periods"`
	FirstReviewMonth       string        `json:"first_review_month"`
	LastReviewMonth        string        `json:"last_review_month"`
	ReviewLifespanMonths   int           `json:"review_lifespan_months"`
	GrowthRate             float64       `json:"growth_rate"`
}

type PriorityIssue struct {
	Issue      string `json:"issue"`
	Severity   string `json:"severity"` // CRITICAL, HIGH, MEDIUM, LOW
	Evidence   string `json:"evidence"`
	Suggestion string `json:"suggestion"`
}

type RecommendedAction struct {
	Action   string `json:"action"`
	Priority string `json:"priority"`
	Impact   string `json:"impact"`
}

type SuggestedResponse struct {
	ReviewerName      string `json:"reviewer_name"`
	ReviewText        string `json:"review_text"`
	Rating            int    `json:"rating"`
	Sentiment         string `json:"sentiment"`
	SuggestedResponse string `json:"suggested_response"`
}

type ActionMetrics struct {
	PriorityIssues        []PriorityIssue     `json:"priority_issues"`
	RecommendedActions    []RecommendedAction `json:"recommended_actions"`
	SuggestedResponses    []SuggestedResponse `json:"suggested_responses"`
	OverallRecommendation string              `json:"overall_recommendation"`
	QuickWins             []string            `json:"quick_wins"`
	LongTermStrategies    []string            `json:"long_term_strategies"`
}

type BenchmarkComparison struct {
	Metric    string  `json:"metric"`
	Yours     float64 `json:"yours"`
	Benchmark float64 `json:"benchmark"`
	Verdict   string  `json:"verdict"`
}

type CompetitiveMetrics struct {
	IndustryBenchmark       []BenchmarkComparison `json:"industry_benchmark"`
	StrengthsVsCompetitors  []string              `json:"strengths_vs_competitors"`
	WeaknessesVsCompetitors []string              `json:"weaknesses_vs_competitors"`
	MarketPositioning       string                `json:"market_positioning"`
}

type TopReviewer struct {
	Name         string  `json:"name"`
	ReviewCount  int     `json:"review_count"`
	AvgRating    float64 `json:"avg_rating"`
	IsLocalGuide bool    `json:"is_local_guide"`
}

type ReviewerMetrics struct {
	AverageReviewsPerReviewer float64       `json:"average_reviews_per_reviewer"`
	AveragePhotosPerReviewer  float64       `json:"average_photos_per_reviewer"`
	TopReviewers              []TopReviewer `json:"top_reviewers"`
	ReturningReviewers        int           `json:"returning_reviewers"`
	ReviewerLoyaltyIndicators []string      `json:"reviewer_loyalty_indicators"`
}
