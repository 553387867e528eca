package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"wayfarer/database"
	"wayfarer/database/repository/facade"
)

// Repo bundles the façade descriptors for the three catalog entities. Each
// descriptor declares the collection, uniqueness rules, the filterable-field
// allow-list and the slug source; business logic stays in the services.
type Repo struct {
	Destinations facade.Descriptor
	Attractions  facade.Descriptor
	Tours        facade.Descriptor
}

// NewCatalogRepo builds the catalog descriptors and ensures their indexes.
func NewCatalogRepo() *Repo {
	db := database.DB()
	repo := &Repo{
		Destinations: facade.Descriptor{
			Name:       "destination",
			Coll:       db.Collection("destinations"),
			Unique:     []string{"name"},
			Filterable: []string{"name", "keywords"},
			SlugSource: "name",
		},
		Attractions: facade.Descriptor{
			Name:       "attraction",
			Coll:       db.Collection("attractions"),
			Unique:     []string{"name"},
			Filterable: []string{"name", "category", "destination", "ratingsAverage", "isAccessibleForFree", "publicAccess"},
			SlugSource: "name",
		},
		Tours: facade.Descriptor{
			Name:       "tour",
			Coll:       db.Collection("tours"),
			Unique:     []string{"name"},
			Filterable: []string{"name", "category", "attraction", "difficulty", "duration", "maxGroupSize", "price", "ratingsAverage"},
			SlugSource: "name",
			// Secret tours never show up in default reads.
			BaseFilter: bson.M{"secretTour": bson.M{"$ne": true}},
		},
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create catalog indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates uniqueness, slug and 2dsphere indexes per collection.
func (r *Repo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	common := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "slug", Value: 1}}},
		{Keys: bson.D{{Key: "location", Value: "2dsphere"}}},
	}

	for _, d := range []facade.Descriptor{r.Destinations, r.Attractions, r.Tours} {
		if _, err := d.Coll.Indexes().CreateMany(ctx, common); err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", d.Name, err)
		}
	}

	_, err := r.Tours.Coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "price", Value: 1}, {Key: "ratingsAverage", Value: -1}}},
		{Keys: bson.D{{Key: "attraction", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create tour indexes: %w", err)
	}

	_, err = r.Attractions.Coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "destination", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create attraction indexes: %w", err)
	}
	return nil
}
