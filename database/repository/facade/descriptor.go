package facade

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Descriptor parameterizes the generic persistence façade for one entity type.
// The façade itself enforces no domain-specific business rule; everything it
// needs to know about an entity lives here.
type Descriptor struct {
	// Name is the human-readable entity name used in error messages.
	Name string
	// Coll is the backing collection.
	Coll *mongo.Collection
	// Unique lists bson fields carrying a uniqueness constraint.
	Unique []string
	// Filterable is the allow-list of bson fields QueryAll may filter on.
	Filterable []string
	// SlugSource names the bson field whose value derives the slug.
	// Empty means the entity has no slug.
	SlugSource string
	// BaseFilter is merged into every read (soft-deleted profiles,
	// secret tours). May be nil.
	BaseFilter bson.M
}

// Entity is the minimal contract a document must satisfy: identifier access
// and timestamping. All models embed Meta, which provides it.
type Entity interface {
	DocID() string
	SetDocID(id string)
	Stamp(now time.Time)
}

// Slugged is implemented by entities carrying a derived slug.
type Slugged interface {
	SetSlug(slug string)
}

// Lookup describes one reference field to expand into embedded documents on
// a by-id or by-slug read.
type Lookup struct {
	From         string
	LocalField   string
	ForeignField string
	As           string
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// readFilter merges the descriptor's base filter with the given criteria.
func (d Descriptor) readFilter(criteria bson.M) bson.M {
	filter := bson.M{}
	for k, v := range d.BaseFilter {
		filter[k] = v
	}
	for k, v := range criteria {
		filter[k] = v
	}
	return filter
}
