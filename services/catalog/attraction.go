package catalog

import (
	"go.mongodb.org/mongo-driver/bson"

	"wayfarer/database/repository/facade"
	"wayfarer/models"
	"wayfarer/utils"
)

// CreateAttraction validates required fields, seeds the default rating
// aggregate and persists a new attraction.
func (s *DefaultService) CreateAttraction(attr *models.Attraction) (*models.Attraction, error) {
	if attr.Name == "" {
		return nil, utils.NewBadRequest("an attraction must have a name")
	}
	if len(attr.Location.Coordinates) != 2 {
		return nil, utils.NewBadRequest("an attraction must have a point location")
	}
	attr.Location.Type = "Point"
	attr.RatingsAverage = 4.5
	attr.RatingsQuantity = 0
	return facade.CreateOne(s.Repo.Attractions, attr)
}

func (s *DefaultService) GetAttractions(filter map[string]string, opts facade.QueryOptions) (*facade.Page[models.Attraction], error) {
	return facade.QueryAll[models.Attraction](s.Repo.Attractions, filter, opts)
}

// GetAttractionByID expands the owned tours and reviews into the result.
func (s *DefaultService) GetAttractionByID(id string) (*models.Attraction, error) {
	return facade.GetDocByID[*models.Attraction](s.Repo.Attractions, id,
		facade.Lookup{From: "tours", LocalField: "id", ForeignField: "attraction", As: "tours"},
		facade.Lookup{From: "reviews", LocalField: "id", ForeignField: "parent.id", As: "reviews"},
	)
}

func (s *DefaultService) GetAttractionBySlug(slug string) (*models.Attraction, error) {
	return facade.GetDocBySlug[*models.Attraction](s.Repo.Attractions, slug)
}

func (s *DefaultService) UpdateAttraction(id string, patch bson.M) (*models.Attraction, error) {
	return facade.UpdateDocByID[*models.Attraction](s.Repo.Attractions, id, scrubPatch(patch))
}

func (s *DefaultService) DeleteAttraction(id string) (*models.Attraction, error) {
	return facade.DeleteDocByID[*models.Attraction](s.Repo.Attractions, id)
}
