package analyzer

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/localpulse/reviewlens/internal/models"
	"github.com/localpulse/reviewlens/internal/sentiment"
	"github.com/localpulse/reviewlens/internal/utils"
)

var stopWords = makeSet(strings.Fields(`the a an is are was were be been being have has had
do does did will would shall should may might must can could to of in for on with at by
from as into through during before after above below between out off up down this that
these those i me my we our you your he she it they them their what which who when where
how all each every both few more most other some such no not only same so than too very
just and but or if while because about get got also back even well way much here there
really like go going one two first time new now come came make made give over know its
then her him his any own say said thing dont didnt ive ill lets let still ever yet`))

var contentWordPattern = regexp.MustCompile(`[^a-z\s]`)
var staffNamePattern = regexp.MustCompile(`\b([A-Z][a-z]{2,})\b`)
var shoutingPattern = regexp.MustCompile(`[!?]{3,}`)

var skipNames = makeSet([]string{
	"The", "This", "They", "Thank", "Thanks", "Great", "Good", "Would", "Will", "Very",
	"Not", "Amazing", "Excellent", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday",
	"Saturday", "Sunday", "January", "February", "March", "April", "May", "June", "July",
	"August", "September", "October", "November", "December", "Google", "Yelp",
})

type themeCategory struct {
	name     string
	keywords []string
}

var complaintThemes = []themeCategory{
	{"Wait Times", []string{"wait", "waited", "slow", "long", "forever", "delay", "took forever", "hours"}},
	{"Customer Service", []string{"rude", "unfriendly", "ignored", "unprofessional", "attitude", "dismissive", "disrespectful"}},
	{"Quality", []string{"poor", "broken", "defective", "cheap", "flimsy", "subpar", "poor quality"}},
	{"Cleanliness", []string{"dirty", "filthy", "messy", "unclean", "unsanitary", "smell", "gross"}},
	{"Pricing", []string{"expensive", "overpriced", "ripoff", "overcharged", "not worth", "price gouging"}},
	{"Communication", []string{"no response", "never called", "unreachable", "ghosted", "voicemail"}},
	{"Dishonesty", []string{"bait and switch", "lied", "misleading", "false", "scam", "fraud", "deceptive"}},
	{"Safety", []string{"unsafe", "dangerous", "hazard", "health", "injury", "accident"}},
}

var praiseThemes = []themeCategory{
	{"Service Quality", []string{"excellent", "amazing", "outstanding", "exceptional", "fantastic", "wonderful", "superb"}},
	{"Staff", []string{"friendly", "helpful", "kind", "polite", "knowledgeable", "patient", "caring"}},
	{"Value", []string{"great value", "worth", "reasonable", "fair price", "affordable", "good deal", "worth every penny"}},
	{"Atmosphere", []string{"welcoming", "cozy", "comfortable", "clean", "beautiful", "nice ambiance", "inviting"}},
	{"Expertise", []string{"professional", "expert", "skilled", "experienced", "talented", "thorough"}},
	{"Reliability", []string{"reliable", "dependable", "consistent", "trustworthy", "on time", "punctual"}},
	{"Results", []string{"perfect", "exceeded", "impressed", "blown away", "above and beyond", "transformed"}},
}

var serviceCategories = []themeCategory{
	{"Installation", []string{"install", "installation", "setup", "set up", "mounting"}},
	{"Repair", []string{"repair", "fix", "fixed", "fixing", "restoration", "restore"}},
	{"Consultation", []string{"consult", "consultation", "advice", "recommend", "estimate", "quote"}},
	{"Delivery", []string{"deliver", "delivery", "shipping", "arrived", "package"}},
	{"Maintenance", []string{"maintenance", "upkeep", "inspection", "check", "tune"}},
	{"Support", []string{"support", "help", "assist", "assistance", "customer service"}},
}

var competitorIndicators = []string{
	"better than", "worse than", "compared to", "unlike", "switched from",
	"went to", "used to go to", "prefer", "instead of",
}

func computeContent(reviews []models.EnrichedReview) models.ContentMetrics {
	var textReviews []models.EnrichedReview
	for _, r := range reviews {
		if r.HasText() {
			textReviews = append(textReviews, r)
		}
	}

	words := utils.NewCounter[string]()
	wordSentiment := make(map[string]float64)
	bigrams := utils.NewCounter[string]()
	trigrams := utils.NewCounter[string]()
	totalWords := 0
	for _, r := range textReviews {
		tokens := contentTokens(r.Text)
		totalWords += len(tokens)
		for i, t := range tokens {
			words.Add(t)
			wordSentiment[t] += r.SentimentScore
			if i+1 < len(tokens) {
				bigrams.Add(t + " " + tokens[i+1])
			}
			if i+2 < len(tokens) {
				trigrams.Add(t + " " + tokens[i+1] + " " + tokens[i+2])
			}
		}
	}

	topKeywords := make([]models.KeywordCount, 0, 40)
	for _, w := range topCounted(words, 40, 1) {
		label := "neutral"
		if wordSentiment[w] > 0.5 {
			label = "positive"
		} else if wordSentiment[w] < -0.5 {
			label = "negative"
		}
		topKeywords = append(topKeywords, models.KeywordCount{Word: w, Count: words.Get(w), Sentiment: label})
	}

	topPhrases := make([]models.PhraseCount, 0, 20)
	for _, p := range topCounted(bigrams, 20, 2) {
		topPhrases = append(topPhrases, models.PhraseCount{Phrase: p, Count: bigrams.Get(p)})
	}
	topTrigrams := make([]models.PhraseCount, 0, 15)
	for _, p := range topCounted(trigrams, 15, 2) {
		topTrigrams = append(topTrigrams, models.PhraseCount{Phrase: p, Count: trigrams.Get(p)})
	}

	var negativeReviews, positiveReviews []models.EnrichedReview
	for _, r := range textReviews {
		if r.Rating <= 2 {
			negativeReviews = append(negativeReviews, r)
		}
		if r.Rating >= 4 {
			positiveReviews = append(positiveReviews, r)
		}
	}

	wordCounts := make([]int, 0, len(textReviews))
	longCount, shortCount, questionCount, emojiCount := 0, 0, 0, 0
	avgWordCount, totalQuality := 0.0, 0.0
	for _, r := range textReviews {
		wordCounts = append(wordCounts, r.WordCount)
		avgWordCount += float64(r.WordCount)
		if r.WordCount > 100 {
			longCount++
		}
		if r.WordCount < 10 {
			shortCount++
		}
		if strings.Contains(r.Text, "?") {
			questionCount++
		}
		if containsEmoji(r.Text) {
			emojiCount++
		}
		totalQuality += languageQuality(r)
	}
	if len(textReviews) > 0 {
		avgWordCount /= float64(len(textReviews))
	}
	sort.Ints(wordCounts)
	medianWordCount := 0
	if len(wordCounts) > 0 {
		medianWordCount = wordCounts[len(wordCounts)/2]
	}
	qualityScore := 0
	if len(textReviews) > 0 {
		qualityScore = int(math.Round(totalQuality / float64(len(textReviews))))
	}

	readability := sentiment.Readability{}
	if len(textReviews) > 0 {
		joined := make([]string, 0, len(textReviews))
		for _, r := range textReviews {
			joined = append(joined, r.Text)
		}
		readability = sentiment.ComputeReadability(strings.Join(joined, ". "))
	}

	uniqueRatio := 0.0
	if totalWords > 0 {
		uniqueRatio = float64(words.Len()) / float64(totalWords)
	}

	return models.ContentMetrics{
		TopKeywords:           topKeywords,
		TopPhrases:            topPhrases,
		Trigrams:              topTrigrams,
		ComplaintThemes:       extractThemes(negativeReviews, complaintThemes),
		PraiseThemes:          extractThemes(positiveReviews, praiseThemes),
		AverageWordCount:      int(math.Round(avgWordCount)),
		MedianWordCount:       medianWordCount,
		LongReviewsCount:      longCount,
		ShortReviewsCount:     shortCount,
		LanguageQualityScore:  qualityScore,
		QuestionCount:         questionCount,
		EmojiUsageRate:        utils.RoundTo(utils.Pct(emojiCount, len(textReviews)), 1),
		MentionedStaff:        extractStaffNames(textReviews),
		ReadabilityScore:      readability.FleschKincaid,
		AverageSentenceLength: readability.AvgSentenceLength,
		UniqueWordRatio:       utils.RoundTo(uniqueRatio, 3),
		ServicesMentioned:     extractServiceMentions(textReviews),
		CompetitorMentions:    extractCompetitorMentions(textReviews),
	}
}

// contentTokens drops stop words and anything shorter than 3 letters.
func contentTokens(text string) []string {
	cleaned := contentWordPattern.ReplaceAllString(strings.ToLower(text), "")
	fields := strings.Fields(cleaned)
	tokens := fields[:0]
	for _, w := range fields {
		if len(w) > 2 && !stopWords[w] {
			tokens = append(tokens, w)
		}
	}
	return tokens
}

// topCounted returns up to limit keys with count >= minCount, ordered by
// descending count with first-seen order breaking ties.
func topCounted(c *utils.Counter[string], limit, minCount int) []string {
	keys := c.Keys()
	sort.SliceStable(keys, func(i, j int) bool {
		return c.Get(keys[i]) > c.Get(keys[j])
	})
	out := make([]string, 0, limit)
	for _, k := range keys {
		if c.Get(k) < minCount {
			continue
		}
		out = append(out, k)
		if len(out) == limit {
			break
		}
	}
	return out
}

// extractThemes matches keyword taxonomies against reviews, keeping up
// to 3 verbatim example snippets per theme.
func extractThemes(reviews []models.EnrichedReview, themes []themeCategory) []models.ThemeCount {
	out := []models.ThemeCount{}
	for _, theme := range themes {
		count := 0
		examples := []string{}
		for _, r := range reviews {
			lower := strings.ToLower(r.Text)
			if !containsAny(lower, theme.keywords) {
				continue
			}
			count++
			if len(examples) < 3 {
				examples = append(examples, excerpt(r.Text, 150))
			}
		}
		if count > 0 {
			out = append(out, models.ThemeCount{Theme: theme.name, Count: count, Examples: examples})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

func languageQuality(r models.EnrichedReview) float64 {
	q := 50.0
	if r.WordCount > 20 {
		q += 15
	}
	if r.WordCount > 50 {
		q += 10
	}
	if strings.ContainsAny(r.Text, ".,") {
		q += 10
	}
	if r.Text != strings.ToUpper(r.Text) {
		q += 5
	}
	if shoutingPattern.MatchString(r.Text) {
		q -= 10
	}
	return utils.Clamp(q, 0, 100)
}

// extractStaffNames treats a capitalized word appearing 3+ times across
// reviews as a likely staff mention, minus a stop-name list.
func extractStaffNames(reviews []models.EnrichedReview) []string {
	names := utils.NewCounter[string]()
	for _, r := range reviews {
		for _, m := range staffNamePattern.FindAllString(r.Text, -1) {
			if !skipNames[m] && len(m) < 15 {
				names.Add(m)
			}
		}
	}
	out := []string{}
	for _, name := range topCounted(names, 10, 3) {
		out = append(out, name)
	}
	return out
}

func extractServiceMentions(reviews []models.EnrichedReview) []models.ServiceMention {
	out := []models.ServiceMention{}
	for _, svc := range serviceCategories {
		count := 0
		sentimentSum := 0.0
		for _, r := range reviews {
			if containsAny(strings.ToLower(r.Text), svc.keywords) {
				count++
				sentimentSum += r.SentimentScore
			}
		}
		if count < 2 {
			continue
		}
		label := "neutral"
		if sentimentSum > 0.3 {
			label = "positive"
		} else if sentimentSum < -0.3 {
			label = "negative"
		}
		out = append(out, models.ServiceMention{Service: svc.name, Count: count, Sentiment: label})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// extractCompetitorMentions grabs the short span following comparison
// phrases ("better than", "switched from", ...).
func extractCompetitorMentions(reviews []models.EnrichedReview) []string {
	seen := map[string]bool{}
	mentions := []string{}
	for _, r := range reviews {
		lower := strings.ToLower(r.Text)
		// Unicode case mapping can change byte length, so offsets into
		// lower only line up with the original text when the lengths
		// agree. Otherwise read the span from the folded text.
		source := r.Text
		if len(lower) != len(r.Text) {
			source = lower
		}
		for _, indicator := range competitorIndicators {
			idx := strings.Index(lower, indicator)
			if idx == -1 {
				continue
			}
			after := strings.TrimSpace(excerpt(source[idx+len(indicator):], 40))
			name := after
			if cut := strings.IndexAny(after, ",.!?\n"); cut != -1 {
				name = after[:cut]
			}
			name = strings.TrimSpace(name)
			if len(name) > 2 && len(name) < 30 && !seen[name] {
				seen[name] = true
				mentions = append(mentions, name)
				if len(mentions) == 10 {
					return mentions
				}
			}
		}
	}
	return mentions
}

func containsEmoji(text string) bool {
	for _, r := range text {
		switch {
		case r >= 0x1F300 && r <= 0x1F5FF,
			r >= 0x1F600 && r <= 0x1F64F,
			r >= 0x1F680 && r <= 0x1F6FF,
			r >= 0x1F1E0 && r <= 0x1F1FF,
			r >= 0x2600 && r <= 0x27BF:
			return true
		}
	}
	return false
}

func makeSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}
