package sentiment

// Lexicon tables for the hybrid classifier: multi-word phrases first
// (single-word lexicons miss idiomatic meaning entirely), then an
// AFINN-style word list, then the context modifier sets. All tables are
// immutable package-level data.

type phraseScore struct {
	phrase string
	score  float64
}

var negativePhrases = []phraseScore{
	{"bait and switch", -4}, {"do not recommend", -3}, {"don't recommend", -3},
	{"waste of time", -3}, {"waste of money", -4}, {"rip off", -4}, {"ripoff", -4},
	{"ripped off", -4}, {"stay away", -4}, {"beware", -3}, {"be warned", -3},
	{"never again", -3}, {"never come back", -3}, {"never go back", -3},
	{"never going back", -3}, {"never returning", -3}, {"worst experience", -4},
	{"worst ever", -4}, {"total disaster", -4}, {"complete disaster", -4},
	{"absolutely terrible", -4}, {"absolutely horrible", -4}, {"scam", -4},
	{"con artist", -5}, {"fraud", -5}, {"fraudulent", -5}, {"dishonest", -4},
	{"took advantage", -3}, {"taken advantage", -3}, {"not worth", -3},
	{"zero stars", -5}, {"0 stars", -5}, {"wish i could give zero", -5},
	{"health hazard", -5}, {"food poisoning", -5}, {"got sick", -4},
	{"made me sick", -4}, {"called the police", -5}, {"filed a complaint", -4},
	{"better business bureau", -3}, {"report them", -4}, {"sue", -3},
	{"lawyer", -2}, {"discrimination", -5}, {"discriminated", -5},
	{"racist", -5}, {"sexist", -5}, {"harassed", -5}, {"harassment", -5},
	{"threatened", -5}, {"unsafe", -4}, {"dangerous", -4},
	{"very disappointed", -3}, {"extremely disappointed", -4},
	{"highly disappointed", -3}, {"so disappointed", -3},
	{"not impressed", -2}, {"underwhelmed", -2}, {"overrated", -2},
	{"overhyped", -2}, {"misleading", -3}, {"false advertising", -4},
	{"lied to", -4}, {"lied", -3}, {"lies", -3}, {"deceptive", -4},
	{"unprofessional", -3}, {"incompetent", -3}, {"careless", -2},
	{"couldn't care less", -3}, {"don't care", -2}, {"ignored me", -3},
	{"ignored us", -3}, {"walked out", -3}, {"left without", -2},
	{"no accountability", -3}, {"no responsibility", -3},
	{"price gouging", -4}, {"highway robbery", -4}, {"stole", -4},
	{"stolen", -4}, {"broke", -2}, {"broken", -2}, {"damaged", -2},
	{"ruined", -3}, {"destroyed", -3},
}

var positivePhrases = []phraseScore{
	{"highly recommend", 4}, {"highly recommended", 4}, {"can't recommend enough", 5},
	{"above and beyond", 4}, {"went above and beyond", 4}, {"exceeded expectations", 4},
	{"five stars", 4}, {"5 stars", 4}, {"top notch", 4}, {"top-notch", 4},
	{"first class", 4}, {"first-class", 4}, {"world class", 5}, {"world-class", 5},
	{"best in town", 4}, {"best in the city", 4}, {"best ever", 4},
	{"life changing", 5}, {"life-changing", 5}, {"game changer", 4},
	{"hidden gem", 4}, {"pleasant surprise", 3}, {"blown away", 4},
	{"absolutely amazing", 4}, {"absolutely wonderful", 4}, {"absolutely fantastic", 4},
	{"truly exceptional", 5}, {"truly outstanding", 5}, {"truly remarkable", 4},
	{"can't say enough", 4}, {"nothing but praise", 4}, {"couldn't be happier", 4},
	{"couldn't ask for more", 4}, {"second to none", 4}, {"a cut above", 3},
	{"worth every penny", 4}, {"worth the money", 3}, {"great value", 3},
	{"fair price", 3}, {"reasonable price", 2}, {"well worth", 3},
	{"very professional", 3}, {"extremely professional", 4},
	{"very helpful", 3}, {"extremely helpful", 4}, {"so helpful", 3},
	{"very friendly", 3}, {"extremely friendly", 4}, {"warm and welcoming", 3},
	{"attention to detail", 3}, {"went the extra mile", 4},
	{"look forward to", 2}, {"coming back", 2}, {"will return", 2},
	{"must visit", 3}, {"don't miss", 3},
}

var wordScores = map[string]float64{
	// strong negatives
	"terrible": -4, "horrible": -4, "awful": -4, "dreadful": -4, "atrocious": -4,
	"abysmal": -4, "disgusting": -4, "revolting": -4, "appalling": -4, "pathetic": -3,
	"worst": -4, "hate": -3, "hated": -3, "angry": -3, "furious": -4, "outraged": -4,
	"unacceptable": -3, "inexcusable": -4, "deplorable": -4, "abominable": -4,
	// moderate negatives
	"bad": -2, "poor": -2, "disappointing": -2, "disappointed": -2, "mediocre": -2,
	"subpar": -2, "lackluster": -2, "underwhelming": -2, "frustrating": -2,
	"annoying": -2, "irritating": -2, "unpleasant": -2, "uncomfortable": -2,
	"rude": -3, "disrespectful": -3, "dismissive": -2, "arrogant": -2,
	"slow": -1, "cold": -1, "dirty": -2, "filthy": -3, "messy": -2,
	"overpriced": -2, "expensive": -1, "stale": -2, "bland": -1,
	// mild negatives
	"okay": -0.5, "ok": -0.5, "meh": -1, "average": -0.5, "nothing": -0.5,
	// mild positives
	"good": 1, "nice": 1, "decent": 1, "fine": 0.5, "alright": 0.5,
	"pleasant": 1, "satisfactory": 1, "adequate": 0.5,
	// moderate positives
	"great": 2, "excellent": 3, "wonderful": 3, "fantastic": 3, "awesome": 3,
	"amazing": 3, "outstanding": 3, "superb": 3, "brilliant": 3, "marvelous": 3,
	"exceptional": 3, "impressive": 2, "remarkable": 2, "delightful": 2,
	"lovely": 2, "beautiful": 2, "perfect": 3, "phenomenal": 3, "incredible": 3,
	"magnificent": 3, "splendid": 3, "stellar": 3, "fabulous": 3,
	"friendly": 2, "helpful": 2, "professional": 2, "courteous": 2,
	"knowledgeable": 2, "attentive": 2, "efficient": 2, "thorough": 2,
	"clean": 1, "fresh": 1, "delicious": 2, "tasty": 2, "yummy": 2,
	// strong positives
	"love": 3, "loved": 3, "adore": 3, "treasure": 3, "cherish": 3,
	"extraordinary": 4, "miraculous": 4, "flawless": 4, "impeccable": 4,
	// review-specific
	"recommend": 2, "recommended": 2,
}

var negators = map[string]bool{
	"not": true, "no": true, "never": true, "neither": true, "nor": true,
	"nobody": true, "nothing": true, "nowhere": true, "hardly": true,
	"barely": true, "scarcely": true, "n't": true, "dont": true, "don't": true,
	"doesnt": true, "doesn't": true, "didnt": true, "didn't": true,
	"wasnt": true, "wasn't": true, "werent": true, "weren't": true,
	"wont": true, "won't": true, "wouldnt": true, "wouldn't": true,
	"shouldnt": true, "shouldn't": true, "cant": true, "can't": true,
	"cannot": true, "without": true,
}

var intensifiers = map[string]float64{
	"very": 1.3, "really": 1.3, "extremely": 1.5, "incredibly": 1.5,
	"absolutely": 1.4, "totally": 1.3, "completely": 1.3, "utterly": 1.4,
	"quite": 1.1, "particularly": 1.2, "especially": 1.2, "remarkably": 1.3,
	"exceptionally": 1.4, "so": 1.2, "such": 1.2, "super": 1.3,
}

var diminishers = map[string]float64{
	"somewhat": 0.6, "slightly": 0.5, "barely": 0.4, "hardly": 0.4,
	"kind": 0.7, "sort": 0.7, "almost": 0.7, "nearly": 0.8,
	"fairly": 0.8, "rather": 0.7,
}
