package reviewRepo

import (
	"go.mongodb.org/mongo-driver/bson"

	"wayfarer/database/repository/facade"
	"wayfarer/models"
)

// Repository defines review data access, including the pieces the rating
// aggregator needs: the stats pipeline and direct parent aggregate writes.
type Repository interface {
	// Create inserts a new review record.
	Create(rev *models.Review) (*models.Review, error)
	// GetByID retrieves a review by its unique ID.
	GetByID(id string) (*models.Review, error)
	// Query runs a paginated, allow-listed filter query.
	Query(filter map[string]string, opts facade.QueryOptions) (*facade.Page[models.Review], error)
	// Update applies a partial field update by ID.
	Update(id string, patch bson.M) (*models.Review, error)
	// Delete removes a review, returning the deleted snapshot.
	Delete(id string) (*models.Review, error)
	// ExistsForUserAndParent reports whether the user already reviewed the parent.
	ExistsForUserAndParent(userID string, parent models.ParentRef) (bool, error)
	// RatingStats recomputes count and mean rating over the live reviews of a parent.
	RatingStats(parent models.ParentRef) (count int, avg float64, err error)
	// SetRatingAggregate writes the recomputed aggregate onto the parent record.
	SetRatingAggregate(parent models.ParentRef, quantity int, average float64) error
}
