package analyzer

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/localpulse/reviewlens/internal/models"
)

// unknownBucket collects reviews whose published date cannot be parsed.
// It is reported alongside real months but excluded from ordered month
// sequences so free-form noise cannot fake a trend.
const unknownBucket = "Unknown"

const monthLayout = "2006-01"

var (
	yearsPattern  = regexp.MustCompile(`(\d+)\s*year`)
	monthsPattern = regexp.MustCompile(`(\d+)\s*month`)
	weeksPattern  = regexp.MustCompile(`(\d+)\s*week`)
	daysPattern   = regexp.MustCompile(`(\d+)\s*day`)
)

// parseRelativeDate resolves a free-form relative phrase ("2 months
// ago", "a year ago") to a YYYY-MM bucket by subtracting from now.
// Unparsable strings bucket to Unknown.
func parseRelativeDate(dateStr string, now time.Time) string {
	lower := strings.ToLower(strings.TrimSpace(dateStr))
	if lower == "" {
		return unknownBucket
	}

	target := now
	switch {
	case strings.Contains(lower, "a year ago"):
		target = now.AddDate(-1, 0, 0)
	case yearsPattern.MatchString(lower):
		target = now.AddDate(-matchedCount(yearsPattern, lower), 0, 0)
	case strings.Contains(lower, "a month ago"):
		target = now.AddDate(0, -1, 0)
	case monthsPattern.MatchString(lower):
		target = now.AddDate(0, -matchedCount(monthsPattern, lower), 0)
	case strings.Contains(lower, "a week ago"):
		target = now.AddDate(0, 0, -7)
	case weeksPattern.MatchString(lower):
		target = now.AddDate(0, 0, -7*matchedCount(weeksPattern, lower))
	case strings.Contains(lower, "a day ago"), strings.Contains(lower, "yesterday"):
		target = now.AddDate(0, 0, -1)
	case daysPattern.MatchString(lower):
		target = now.AddDate(0, 0, -matchedCount(daysPattern, lower))
	case strings.Contains(lower, "just now"), strings.Contains(lower, "today"),
		strings.Contains(lower, "hour"), strings.Contains(lower, "minute"):
		// Fresh enough to land in the current month.
	default:
		return unknownBucket
	}

	return target.Format(monthLayout)
}

func matchedCount(pattern *regexp.Regexp, s string) int {
	m := pattern.FindStringSubmatch(s)
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// groupByMonth buckets reviews into YYYY-MM keys plus Unknown.
func groupByMonth(reviews []models.EnrichedReview, now time.Time) map[string][]models.EnrichedReview {
	groups := make(map[string][]models.EnrichedReview)
	for _, r := range reviews {
		month := parseRelativeDate(r.PublishedDate, now)
		groups[month] = append(groups[month], r)
	}
	return groups
}

// sortedMonths returns the known month keys in ascending order,
// excluding the Unknown bucket.
func sortedMonths(groups map[string][]models.EnrichedReview) []string {
	months := make([]string, 0, len(groups))
	for m := range groups {
		if m != unknownBucket {
			months = append(months, m)
		}
	}
	sort.Strings(months)
	return months
}

func avgRatingOf(reviews []models.EnrichedReview) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0.0
	for _, r := range reviews {
		sum += float64(r.Rating)
	}
	return sum / float64(len(reviews))
}

func avgSentimentOf(reviews []models.EnrichedReview) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0.0
	for _, r := range reviews {
		sum += r.SentimentScore
	}
	return sum / float64(len(reviews))
}
