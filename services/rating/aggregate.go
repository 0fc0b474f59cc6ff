package rating

import (
	"context"
	"math"

	"wellnest/models"

	"go.uber.org/zap"
)

// accumulator keeps a running count and sum for one rating source.
type accumulator struct {
	count int
	sum   int
}

func (a *accumulator) add(rating int) {
	a.count++
	a.sum += rating
}

func (a accumulator) stats() models.SourceStats {
	if a.count == 0 {
		return models.SourceStats{}
	}
	return models.SourceStats{Count: a.count, Average: float64(a.sum) / float64(a.count)}
}

// roundToTenth rounds half away from zero to one decimal place.
func roundToTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// ComputeOverallRating propagates any read error unchanged.
func (s *DefaultRatingService) ComputeOverallRating(ctx context.Context, professionalID models.ProfessionalID, professionalUserID models.ProfessionalUserID) (*models.RatingStatistics, error) {
	reviewRows, err := s.Reviews.ApprovedRatings(ctx, professionalID)
	if err != nil {
		return nil, err
	}

	// Group reviews by content type, keeping first-seen order.
	groups := make(map[models.ContentType]*accumulator)
	var order []models.ContentType
	allRatings := make([]int, 0, len(reviewRows))
	for _, row := range reviewRows {
		acc, ok := groups[row.ContentType]
		if !ok {
			acc = &accumulator{}
			groups[row.ContentType] = acc
			order = append(order, row.ContentType)
		}
		acc.add(row.Rating)
		allRatings = append(allRatings, row.Rating)
	}

	var breakdown models.SourceBreakdown
	for _, contentType := range order {
		switch contentType {
		case models.ContentTypeProduct:
			breakdown.Products = groups[contentType].stats()
		case models.ContentTypeSession:
			breakdown.Sessions = groups[contentType].stats()
		default:
			// Counted in the totals, but there is no bucket to report it under.
			s.Logger.Debug("review content type has no source bucket",
				zap.String("professionalId", professionalID.String()),
				zap.String("contentType", string(contentType)),
				zap.Int("count", groups[contentType].count))
		}
	}

	events, err := s.Events.FindReviewedByProfessional(ctx, professionalUserID)
	if err != nil {
		return nil, err
	}

	var eventAcc accumulator
	for _, event := range events {
		for _, review := range event.Reviews {
			eventAcc.add(review.Rating)
			allRatings = append(allRatings, review.Rating)
		}
	}
	breakdown.Events = eventAcc.stats()

	total := len(allRatings)
	overall := 0.0
	if total > 0 {
		sum := 0
		for _, r := range allRatings {
			sum += r
		}
		overall = roundToTenth(float64(sum) / float64(total))
	}

	distribution := models.NewDistribution()
	for _, r := range allRatings {
		// Writes are validated to 1..5, so an out-of-range rating can only come
		// from data written around the API. It still counts in the totals and
		// the average but has no distribution bucket.
		if r >= models.MinStars && r <= models.MaxStars {
			distribution[r]++
		}
	}

	return &models.RatingStatistics{
		OverallAverage:  overall,
		TotalReviews:    total,
		Distribution:    distribution,
		SourceBreakdown: breakdown,
		AllRatings:      allRatings,
	}, nil
}

// UpdateProfessionalRating performs no bounds checks; callers pass a computed average.
func (s *DefaultRatingService) UpdateProfessionalRating(ctx context.Context, professionalID models.ProfessionalID, newRating float64, totalReviews int) error {
	return s.Professionals.UpdateRating(ctx, professionalID, newRating, totalReviews)
}
