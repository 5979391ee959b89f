package analyzer

import (
	"strconv"
	"strings"

	"github.com/localpulse/reviewlens/internal/models"
)

// fingerprintLen is the text prefix used for duplicate detection. A
// short prefix tolerates trailing-text drift from incremental page
// loads while still catching true duplicates; two distinct short
// reviews that start identically will merge, a known trade-off.
const fingerprintLen = 50

// Normalize deduplicates a raw batch, keeping the first occurrence of
// each fingerprint in stable input order. Later duplicates are dropped
// silently: sources commonly return the same review across paginated
// scroll loads.
func Normalize(raw []models.RawReview) []models.RawReview {
	seen := make(map[string]bool, len(raw))
	out := make([]models.RawReview, 0, len(raw))
	for _, r := range raw {
		key := fingerprint(r)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, r)
	}
	return out
}

func fingerprint(r models.RawReview) string {
	prefix := strings.ToLower(strings.TrimSpace(r.Text))
	if runes := []rune(prefix); len(runes) > fingerprintLen {
		prefix = string(runes[:fingerprintLen])
	}
	prefix = strings.Join(strings.Fields(prefix), " ")

	name := strings.ToLower(strings.TrimSpace(r.ReviewerName))
	return name + "|" + strconv.Itoa(r.Rating) + "|" + prefix
}
