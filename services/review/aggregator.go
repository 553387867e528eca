package review

import (
	"math"

	"go.uber.org/zap"

	"wayfarer/models"
	"wayfarer/utils"
)

// Defaults for a parent with no reviews.
const (
	defaultRatingsAverage  = 4.5
	defaultRatingsQuantity = 0
)

// StatsSource recomputes the rating stats for a parent.
type StatsSource interface {
	RatingStats(parent models.ParentRef) (count int, avg float64, err error)
}

// ParentWriter persists the recomputed aggregate onto the parent.
type ParentWriter interface {
	SetRatingAggregate(parent models.ParentRef, quantity int, average float64) error
}

// Aggregator keeps a parent's {ratingsAverage, ratingsQuantity} consistent
// with the live set of reviews referencing it. It consumes the events the
// review service publishes after each committed mutation. Recomputation is
// best-effort consistency maintenance, not a transactional guarantee:
// failures are logged and swallowed so the primary review mutation never
// fails on this secondary step.
type Aggregator struct {
	Stats   StatsSource
	Parents ParentWriter
}

// NewAggregator creates the rating aggregator.
func NewAggregator(stats StatsSource, parents ParentWriter) *Aggregator {
	return &Aggregator{Stats: stats, Parents: parents}
}

// ReviewCommitted handles a created or updated review.
func (a *Aggregator) ReviewCommitted(parent models.ParentRef) {
	a.recompute(parent)
}

// ReviewRemoved handles a deleted review.
func (a *Aggregator) ReviewRemoved(parent models.ParentRef) {
	a.recompute(parent)
}

func (a *Aggregator) recompute(parent models.ParentRef) {
	logger := utils.GetLogger()

	count, avg, err := a.Stats.RatingStats(parent)
	if err != nil {
		logger.Warn("rating recomputation failed",
			zap.String("parentKind", string(parent.Kind)),
			zap.String("parentID", parent.ID),
			zap.Error(err))
		return
	}

	quantity := defaultRatingsQuantity
	average := defaultRatingsAverage
	if count > 0 {
		quantity = count
		// The stored average is pre-rounded to one decimal digit.
		average = math.Round(avg*10) / 10
	}

	if err := a.Parents.SetRatingAggregate(parent, quantity, average); err != nil {
		logger.Warn("failed to persist rating aggregate",
			zap.String("parentKind", string(parent.Kind)),
			zap.String("parentID", parent.ID),
			zap.Error(err))
	}
}
