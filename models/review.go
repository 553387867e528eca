package models

// ParentKind discriminates the review parent union.
type ParentKind string

const (
	ParentTour       ParentKind = "tour"
	ParentAttraction ParentKind = "attraction"
)

// ParentRef is the tagged reference from a review to exactly one of
// {tour, attraction}. The reference is immutable after creation.
type ParentRef struct {
	Kind ParentKind `bson:"kind" json:"kind"`
	ID   string     `bson:"id" json:"id"`
}

// Valid reports whether the reference names a supported parent kind and id.
func (p ParentRef) Valid() bool {
	return (p.Kind == ParentTour || p.Kind == ParentAttraction) && p.ID != ""
}

// Review is a user's rating of a tour or an attraction. At most one review
// may exist per (user, parent) pair.
type Review struct {
	Meta   `bson:",inline"`
	Review string    `bson:"review" json:"review"`
	Rating float64   `bson:"rating" json:"rating"`
	Parent ParentRef `bson:"parent" json:"parent"`
	User   string    `bson:"user" json:"user"`
}
