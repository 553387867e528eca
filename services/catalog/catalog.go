package catalog

import (
	"go.mongodb.org/mongo-driver/bson"

	catalogRepo "wayfarer/database/repository/catalog"
)

// DefaultService implements Service on top of the catalog façade descriptors.
type DefaultService struct {
	Repo *catalogRepo.Repo
}

// NewService creates the catalog service.
func NewService(repo *catalogRepo.Repo) Service {
	return &DefaultService{Repo: repo}
}

// protected fields callers may never patch directly. Slug is re-derived from
// the name; rating aggregates belong to the review aggregator.
var protectedPatchFields = []string{
	"id", "_id", "createdAt", "updatedAt", "slug",
	"ratingsAverage", "ratingsQuantity",
}

// scrubPatch strips protected fields from an inbound update patch.
func scrubPatch(patch bson.M) bson.M {
	for _, f := range protectedPatchFields {
		delete(patch, f)
	}
	return patch
}
