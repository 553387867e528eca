package profile

import (
	"go.mongodb.org/mongo-driver/bson"

	"wayfarer/database/repository/facade"
	"wayfarer/models"
)

// Service defines profile management. Each user owns at most one profile.
// Mutations are owner-only unless the caller is elevated (holds the
// profile-management right). Deactivation is soft: the record stays but
// drops out of default reads.
type Service interface {
	Create(userID string, input *models.Profile) (*models.Profile, error)
	GetByID(id string) (*models.Profile, error)
	GetByUser(userID string) (*models.Profile, error)
	Query(filter map[string]string, opts facade.QueryOptions) (*facade.Page[models.Profile], error)
	Update(actorID, profileID string, patch bson.M, elevated bool) (*models.Profile, error)
	SetPhoto(actorID, profileID string, photo models.ImageRef, elevated bool) (*models.Profile, error)
	Deactivate(actorID, profileID string, elevated bool) error
}
