package models

// Destination is a travel destination owning zero or more attractions
// (by back-reference from Attraction).
type Destination struct {
	Meta        `bson:",inline"`
	Name        string   `bson:"name" json:"name"`
	Slug        string   `bson:"slug" json:"slug"`
	Summary     string   `bson:"summary" json:"summary"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	Keywords    []string `bson:"keywords,omitempty" json:"keywords,omitempty"`
	Cover       ImageRef `bson:"cover,omitempty" json:"cover,omitempty"`
	Location    GeoPoint `bson:"location" json:"location"`

	// Populated via lookup, never stored.
	Attractions []Attraction `bson:"attractions,omitempty" json:"attractions,omitempty"`
}

func (d *Destination) SetSlug(slug string) { d.Slug = slug }
