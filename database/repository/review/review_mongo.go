package reviewRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"wayfarer/database"
	"wayfarer/database/repository/facade"
	"wayfarer/models"
)

// MongoReviewRepo implements Repository using MongoDB.
type MongoReviewRepo struct {
	desc        facade.Descriptor
	tours       *mongo.Collection
	attractions *mongo.Collection
}

// NewMongoReviewRepo creates a new instance of Repository using MongoDB.
func NewMongoReviewRepo() Repository {
	db := database.DB()
	repo := &MongoReviewRepo{
		desc: facade.Descriptor{
			Name:       "review",
			Coll:       db.Collection("reviews"),
			Filterable: []string{"rating", "user", "parent.kind", "parent.id"},
		},
		tours:       db.Collection("tours"),
		attractions: db.Collection("attractions"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create review indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create inserts a new review document.
func (r *MongoReviewRepo) Create(rev *models.Review) (*models.Review, error) {
	return facade.CreateOne(r.desc, rev)
}

// GetByID retrieves a review by its unique ID.
func (r *MongoReviewRepo) GetByID(id string) (*models.Review, error) {
	return facade.GetDocByID[*models.Review](r.desc, id)
}

// Query runs a paginated, allow-listed filter query.
func (r *MongoReviewRepo) Query(filter map[string]string, opts facade.QueryOptions) (*facade.Page[models.Review], error) {
	return facade.QueryAll[models.Review](r.desc, filter, opts)
}

// Update applies a partial field update by ID.
func (r *MongoReviewRepo) Update(id string, patch bson.M) (*models.Review, error) {
	return facade.UpdateDocByID[*models.Review](r.desc, id, patch)
}

// Delete removes a review, returning the deleted snapshot.
func (r *MongoReviewRepo) Delete(id string) (*models.Review, error) {
	return facade.DeleteDocByID[*models.Review](r.desc, id)
}

// ExistsForUserAndParent reports whether the user already reviewed the parent.
func (r *MongoReviewRepo) ExistsForUserAndParent(userID string, parent models.ParentRef) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"user":        userID,
		"parent.kind": parent.Kind,
		"parent.id":   parent.ID,
	}
	count, err := r.desc.Coll.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to check existing review: %w", err)
	}
	return count > 0, nil
}
