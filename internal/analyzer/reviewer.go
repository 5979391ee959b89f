package analyzer

import (
	"fmt"
	"sort"

	"github.com/localpulse/reviewlens/internal/models"
	"github.com/localpulse/reviewlens/internal/utils"
)

func computeReviewer(reviews []models.EnrichedReview) models.ReviewerMetrics {
	type reviewerStats struct {
		count      int
		ratingSum  int
		localGuide bool
	}

	stats := make(map[string]*reviewerStats)
	var order []string
	photoSum := 0
	for _, r := range reviews {
		s, ok := stats[r.ReviewerName]
		if !ok {
			s = &reviewerStats{}
			stats[r.ReviewerName] = s
			order = append(order, r.ReviewerName)
		}
		s.count++
		s.ratingSum += r.Rating
		if r.IsLocalGuide() {
			s.localGuide = true
		}
		if r.PhotoCount != nil {
			photoSum += *r.PhotoCount
		}
	}

	avgPerReviewer := 0.0
	if len(order) > 0 {
		avgPerReviewer = float64(len(reviews)) / float64(len(order))
	}
	avgPhotos := 0.0
	if len(reviews) > 0 {
		avgPhotos = float64(photoSum) / float64(len(reviews))
	}

	sort.SliceStable(order, func(i, j int) bool {
		return stats[order[i]].count > stats[order[j]].count
	})
	top := []models.TopReviewer{}
	for _, name := range order {
		s := stats[name]
		top = append(top, models.TopReviewer{
			Name:         name,
			ReviewCount:  s.count,
			AvgRating:    utils.RoundTo(float64(s.ratingSum)/float64(s.count), 1),
			IsLocalGuide: s.localGuide,
		})
		if len(top) == 10 {
			break
		}
	}

	returning := 0
	for _, s := range stats {
		if s.count > 1 {
			returning++
		}
	}

	loyalty := []string{}
	if returning > 0 {
		loyalty = append(loyalty, fmt.Sprintf("%d reviewer(s) left multiple reviews (updated or returned)", returning))
	}
	if avgPerReviewer > 1.1 {
		loyalty = append(loyalty, "Some reviewers have visited multiple times")
	}

	return models.ReviewerMetrics{
		AverageReviewsPerReviewer: utils.RoundTo(avgPerReviewer, 2),
		AveragePhotosPerReviewer:  utils.RoundTo(avgPhotos, 1),
		TopReviewers:              top,
		ReturningReviewers:        returning,
		ReviewerLoyaltyIndicators: loyalty,
	}
}
