package review

import (
	"wayfarer/database/repository/facade"
	"wayfarer/models"
)

// UpdateInput carries the only mutable review fields. The parent reference is
// immutable after creation.
type UpdateInput struct {
	Review *string  `json:"review"`
	Rating *float64 `json:"rating"`
}

// Service defines review CRUD. Every mutation publishes a domain event so the
// rating aggregator keeps the parent's aggregate consistent; callers never
// update the parent themselves.
type Service interface {
	Create(userID string, parent models.ParentRef, body string, rating float64) (*models.Review, error)
	GetByID(id string) (*models.Review, error)
	Query(filter map[string]string, opts facade.QueryOptions) (*facade.Page[models.Review], error)
	Update(userID, reviewID string, input UpdateInput) (*models.Review, error)
	Delete(userID, reviewID string) error
}

// Publisher receives review domain events after the primary write commits.
type Publisher interface {
	ReviewCommitted(parent models.ParentRef)
	ReviewRemoved(parent models.ParentRef)
}
