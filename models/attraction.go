package models

// HighlightSpot is a named sub-point of an attraction's location.
type HighlightSpot struct {
	Name        string     `bson:"name" json:"name"`
	Type        string     `bson:"type" json:"type"`
	Coordinates []float64  `bson:"coordinates" json:"coordinates"`
	Images      []ImageRef `bson:"images,omitempty" json:"images,omitempty"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
}

// Attraction is a visitable site belonging to a destination. It carries the
// denormalized rating aggregate maintained by the review aggregator.
type Attraction struct {
	Meta                `bson:",inline"`
	Name                string          `bson:"name" json:"name"`
	AltName             string          `bson:"altName,omitempty" json:"altName,omitempty"`
	Category            string          `bson:"category,omitempty" json:"category,omitempty"`
	Slug                string          `bson:"slug" json:"slug"`
	MainImage           ImageRef        `bson:"mainImage,omitempty" json:"mainImage,omitempty"`
	Images              []ImageRef      `bson:"images,omitempty" json:"images,omitempty"`
	Summary             string          `bson:"summary,omitempty" json:"summary,omitempty"`
	Description         string          `bson:"description,omitempty" json:"description,omitempty"`
	Destination         string          `bson:"destination,omitempty" json:"destination,omitempty"`
	Location            GeoPoint        `bson:"location" json:"location"`
	OpeningHours        string          `bson:"openingHours,omitempty" json:"openingHours,omitempty"`
	HighlightSpots      []HighlightSpot `bson:"highlightSpots,omitempty" json:"highlightSpots,omitempty"`
	IsAccessibleForFree bool            `bson:"isAccessibleForFree" json:"isAccessibleForFree"`
	PublicAccess        bool            `bson:"publicAccess" json:"publicAccess"`
	Slogan              string          `bson:"slogan,omitempty" json:"slogan,omitempty"`
	RatingsAverage      float64         `bson:"ratingsAverage" json:"ratingsAverage"`
	RatingsQuantity     int             `bson:"ratingsQuantity" json:"ratingsQuantity"`

	// Populated via lookup, never stored.
	Tours   []Tour   `bson:"tours,omitempty" json:"tours,omitempty"`
	Reviews []Review `bson:"reviews,omitempty" json:"reviews,omitempty"`
}

func (a *Attraction) SetSlug(slug string) { a.Slug = slug }
