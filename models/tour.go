package models

import "time"

// Tour difficulty levels.
const (
	DifficultyEasy      = "easy"
	DifficultyMedium    = "medium"
	DifficultyDifficult = "difficult"
)

// ValidDifficulty reports whether d is a supported difficulty level.
func ValidDifficulty(d string) bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyDifficult
}

// Tour is a guided tour of an attraction. Secret tours are excluded from
// default listings.
type Tour struct {
	Meta            `bson:",inline"`
	Name            string      `bson:"name" json:"name"`
	Slug            string      `bson:"slug" json:"slug"`
	Category        string      `bson:"category,omitempty" json:"category,omitempty"`
	Duration        int         `bson:"duration" json:"duration"`
	MaxGroupSize    int         `bson:"maxGroupSize" json:"maxGroupSize"`
	Difficulty      string      `bson:"difficulty" json:"difficulty"`
	Price           float64     `bson:"price" json:"price"`
	PriceDiscount   float64     `bson:"priceDiscount,omitempty" json:"priceDiscount,omitempty"`
	RatingsAverage  float64     `bson:"ratingsAverage" json:"ratingsAverage"`
	RatingsQuantity int         `bson:"ratingsQuantity" json:"ratingsQuantity"`
	Summary         string      `bson:"summary,omitempty" json:"summary,omitempty"`
	Description     string      `bson:"description,omitempty" json:"description,omitempty"`
	MainImage       ImageRef    `bson:"mainImage,omitempty" json:"mainImage,omitempty"`
	Images          []ImageRef  `bson:"images,omitempty" json:"images,omitempty"`
	StartDates      []time.Time `bson:"startDates,omitempty" json:"startDates,omitempty"`
	SecretTour      bool        `bson:"secretTour" json:"secretTour,omitempty"`
	Location        GeoPoint    `bson:"location" json:"location"`
	Locations       []GeoPoint  `bson:"locations,omitempty" json:"locations,omitempty"`
	Guides          []string    `bson:"guides,omitempty" json:"guides,omitempty"`
	Attraction      string      `bson:"attraction" json:"attraction"`

	// Populated via lookup, never stored.
	Reviews []Review `bson:"reviews,omitempty" json:"reviews,omitempty"`
}

func (t *Tour) SetSlug(slug string) { t.Slug = slug }
