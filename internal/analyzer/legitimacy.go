package analyzer

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/localpulse/reviewlens/internal/models"
	"github.com/localpulse/reviewlens/internal/trust"
	"github.com/localpulse/reviewlens/internal/utils"
)

// duplicatePrefixLen is the text prefix compared for duplicate-content
// detection across different reviewers.
const duplicatePrefixLen = 80

var fakeScoreBands = []struct {
	label string
	max   int
}{
	{"0-20 (Likely Real)", 20},
	{"21-40 (Low Risk)", 40},
	{"41-60 (Medium Risk)", 60},
	{"61-80 (High Risk)", 80},
	{"81-100 (Likely Fake)", 100},
}

func computeLegitimacy(reviews []models.EnrichedReview, now time.Time) models.LegitimacyMetrics {
	total := len(reviews)

	suspicious, oneReview, noText, lowEffort, photoless, localGuides := 0, 0, 0, 0, 0, 0
	experienceSum, experienceCount := 0, 0
	guideLevels := utils.NewCounter[string]()
	for _, r := range reviews {
		if r.FakeScore >= trust.LikelyFakeThreshold {
			suspicious++
		}
		if r.ReviewCount != nil {
			experienceSum += *r.ReviewCount
			experienceCount++
			if *r.ReviewCount <= 1 {
				oneReview++
			}
		}
		if !r.HasText() {
			noText++
		}
		if r.WordCount < 5 {
			lowEffort++
		}
		if r.PhotoCount == nil || *r.PhotoCount == 0 {
			photoless++
		}
		if r.IsLocalGuide() {
			localGuides++
			guideLevels.Add(guideLevelBand(*r.LocalGuideLevel))
		}
	}

	guideDistribution := make([]models.GuideLevelCount, 0, guideLevels.Len())
	for _, level := range guideLevels.Keys() {
		guideDistribution = append(guideDistribution, models.GuideLevelCount{
			Level:      level,
			Count:      guideLevels.Get(level),
			Percentage: utils.RoundTo(utils.Pct(guideLevels.Get(level), total), 1),
		})
	}

	groups := groupByMonth(reviews, now)
	months := sortedMonths(groups)
	avgMonthly := float64(total)
	if len(months) > 0 {
		avgMonthly = float64(total) / float64(len(months))
	}
	spikes := []models.VelocitySpike{}
	for _, m := range months {
		if float64(len(groups[m])) > avgMonthly*2.5 {
			spikes = append(spikes, models.VelocitySpike{
				Period: m,
				Count:  len(groups[m]),
				Normal: int(math.Round(avgMonthly)),
			})
		}
	}

	duplicates := utils.NewCounter[string]()
	for _, r := range reviews {
		if len(r.Text) > 20 {
			duplicates.Add(excerpt(strings.ToLower(strings.TrimSpace(r.Text)), duplicatePrefixLen))
		}
	}
	duplicateCount := 0
	for _, prefix := range duplicates.Keys() {
		if c := duplicates.Get(prefix); c > 1 {
			duplicateCount += c
		}
	}

	patterns := []string{}
	if utils.Pct(oneReview, total) > 40 {
		patterns = append(patterns, fmt.Sprintf("%.0f%% of reviewers have only 1 review", utils.Pct(oneReview, total)))
	}
	if utils.Pct(noText, total) > 30 {
		patterns = append(patterns, fmt.Sprintf("%.0f%% of reviews have no text", utils.Pct(noText, total)))
	}
	if len(spikes) > 2 {
		patterns = append(patterns, fmt.Sprintf("%d unusual review volume spikes detected", len(spikes)))
	}
	if duplicateCount > 2 {
		patterns = append(patterns, fmt.Sprintf("%d reviews with duplicate/near-duplicate text", duplicateCount))
	}

	// Reviewer diversity: normalized Shannon entropy over reviewer-name
	// frequency; 0 means one account wrote everything.
	reviewers := utils.NewCounter[string]()
	for _, r := range reviews {
		reviewers.Add(r.ReviewerName)
	}
	diversity := 0.0
	if reviewers.Len() > 1 {
		probs := make([]float64, 0, reviewers.Len())
		for _, name := range reviewers.Keys() {
			probs = append(probs, float64(reviewers.Get(name))/float64(total))
		}
		diversity = stat.Entropy(probs) / math.Log(float64(reviewers.Len()))
	}

	avgExperience := 0.0
	if experienceCount > 0 {
		avgExperience = float64(experienceSum) / float64(experienceCount)
	}

	bands := make([]models.FakeScoreBand, len(fakeScoreBands))
	for i, band := range fakeScoreBands {
		bands[i] = models.FakeScoreBand{Range: band.label}
	}
	for _, r := range reviews {
		for i, band := range fakeScoreBands {
			if r.FakeScore <= band.max {
				bands[i].Count++
				break
			}
		}
	}

	ranked := append([]models.EnrichedReview(nil), reviews...)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].FakeScore > ranked[j].FakeScore })
	if len(ranked) > 10 {
		ranked = ranked[:10]
	}
	topSuspicious := []models.SuspiciousReview{}
	for _, r := range ranked {
		if r.FakeScore < 35 {
			continue
		}
		text := "No text"
		if r.HasText() {
			text = excerpt(r.Text, 200)
		}
		topSuspicious = append(topSuspicious, models.SuspiciousReview{
			Reviewer: r.ReviewerName,
			Rating:   r.Rating,
			Text:     text,
			Score:    r.FakeScore,
			Reasons:  r.FakeReasons,
		})
	}

	trustScore := utils.Clamp(100-utils.Pct(suspicious, total), 0, 100)

	return models.LegitimacyMetrics{
		OverallTrustScore:         int(math.Round(trustScore)),
		TotalSuspicious:           suspicious,
		SuspiciousPercentage:      utils.RoundTo(utils.Pct(suspicious, total), 1),
		LocalGuideCount:           localGuides,
		LocalGuidePercentage:      utils.RoundTo(utils.Pct(localGuides, total), 1),
		LocalGuideDistribution:    guideDistribution,
		OneReviewOnly:             oneReview,
		OneReviewPercentage:       utils.RoundTo(utils.Pct(oneReview, total), 1),
		LowEffortReviews:          lowEffort,
		LowEffortPercentage:       utils.RoundTo(utils.Pct(lowEffort, total), 1),
		RatingOnlyReviews:         noText,
		RatingOnlyPercentage:      utils.RoundTo(utils.Pct(noText, total), 1),
		PhotolessReviewers:        photoless,
		PhotolessPercentage:       utils.RoundTo(utils.Pct(photoless, total), 1),
		VelocitySpikes:            spikes,
		SuspiciousPatterns:        patterns,
		FakeScoreDistribution:     bands,
		TopSuspiciousReviews:      topSuspicious,
		ReviewerDiversityIndex:    utils.RoundTo(diversity, 3),
		DuplicateContentCount:     duplicateCount,
		AverageReviewerExperience: utils.RoundTo(avgExperience, 1),
	}
}

func guideLevelBand(level int) string {
	switch {
	case level >= 7:
		return "Level 7+"
	case level >= 4:
		return "Level 4-6"
	default:
		return "Level 1-3"
	}
}
