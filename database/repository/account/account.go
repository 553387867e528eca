package accountRepo

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

// Repo bundles the façade descriptors for the account-side entities. Users
// carry credentials and a role; profiles are the public counterpart, one per
// user, soft-deactivated instead of deleted.
type Repo struct {
	Users    facade.Descriptor
	Profiles facade.Descriptor
}

// NewAccountRepo builds the account descriptors and ensures their indexes.
func NewAccountRepo() *Repo {
	db := database.DB()
	repo := &Repo{
		Users: facade.Descriptor{
			Name:       "user",
			Coll:       db.Collection("users"),
			Unique:     []string{"email", "username"},
			Filterable: []string{"username", "email", "role"},
		},
		Profiles: facade.Descriptor{
			Name:       "profile",
			Coll:       db.Collection("profiles"),
			Unique:     []string{"user"},
			Filterable: []string{"user"},
			// Deactivated profiles stay in the collection but never show
			// up in default reads.
			BaseFilter: bson.M{"active": bson.M{"$ne": false}},
		},
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create account indexes: %v\n", err)
	}
	return repo
}

func (r *Repo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := r.Users.Coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}

	_, err = r.Profiles.Coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return fmt.Errorf("failed to create profile indexes: %w", err)
	}
	return nil
}
