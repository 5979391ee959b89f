package sentiment

import "strings"

// Fallback emotions when no keyword category scores.
const (
	emotionNeutral         = "Neutral"
	emotionSatisfaction    = "Satisfaction"
	emotionDissatisfaction = "Dissatisfaction"
)

type emotionCategory struct {
	name     string
	keywords []string
}

// Ten-category emotion taxonomy; the category with the most keyword
// hits wins, earlier categories win ties.
var emotionCategories = []emotionCategory{
	{"Anger", []string{"angry", "furious", "outraged", "infuriated", "livid", "fuming", "enraged", "irate", "unacceptable", "disgusted", "disgusting"}},
	{"Frustration", []string{"frustrated", "annoying", "irritating", "waited", "slow", "wasted", "ridiculous", "useless", "pointless", "incompetent"}},
	{"Disappointment", []string{"disappointed", "disappointing", "letdown", "let down", "expected better", "underwhelming", "mediocre", "not what i expected"}},
	{"Fear/Concern", []string{"unsafe", "dangerous", "scared", "worried", "concerning", "alarming", "beware", "warning", "health hazard"}},
	{"Sadness", []string{"sad", "heartbroken", "devastated", "crushed", "miss", "unfortunately", "regret", "shame", "too bad"}},
	{"Joy", []string{"amazing", "wonderful", "fantastic", "love", "loved", "awesome", "delighted", "happy", "thrilled", "ecstatic", "overjoyed"}},
	{"Gratitude", []string{"thank", "grateful", "appreciate", "thankful", "thanks", "blessed", "indebted"}},
	{"Trust", []string{"reliable", "professional", "trustworthy", "honest", "dependable", "consistent", "integrity"}},
	{"Surprise", []string{"surprised", "unexpected", "shocked", "wow", "blown away", "exceeded", "astonished", "stunned"}},
	{"Contempt", []string{"scam", "fraud", "con", "crook", "liar", "cheat", "shameless", "pathetic", "joke", "laughable"}},
}

func detectEmotion(lower string, rating int) string {
	best := emotionNeutral
	bestCount := 0
	for _, cat := range emotionCategories {
		count := 0
		for _, kw := range cat.keywords {
			if strings.Contains(lower, kw) {
				count++
			}
		}
		if count > bestCount {
			bestCount = count
			best = cat.name
		}
	}

	if best == emotionNeutral && rating != 0 {
		if rating >= 4 {
			best = emotionSatisfaction
		} else if rating <= 2 {
			best = emotionDissatisfaction
		}
	}

	return best
}
