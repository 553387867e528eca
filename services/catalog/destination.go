package catalog

import (
	"go.mongodb.org/mongo-driver/bson"

	"wayfarer/database/repository/facade"
	"wayfarer/models"
	"wayfarer/utils"
)

// CreateDestination validates required fields and persists a new destination.
func (s *DefaultService) CreateDestination(dest *models.Destination) (*models.Destination, error) {
	if dest.Name == "" {
		return nil, utils.NewBadRequest("a destination must have a name")
	}
	if dest.Summary == "" {
		return nil, utils.NewBadRequest("a destination must have a summary")
	}
	if len(dest.Location.Coordinates) != 2 {
		return nil, utils.NewBadRequest("a destination must have a point location")
	}
	dest.Location.Type = "Point"
	return facade.CreateOne(s.Repo.Destinations, dest)
}

func (s *DefaultService) GetDestinations(filter map[string]string, opts facade.QueryOptions) (*facade.Page[models.Destination], error) {
	return facade.QueryAll[models.Destination](s.Repo.Destinations, filter, opts)
}

// GetDestinationByID expands the owned attractions into the result.
func (s *DefaultService) GetDestinationByID(id string) (*models.Destination, error) {
	return facade.GetDocByID[*models.Destination](s.Repo.Destinations, id, facade.Lookup{
		From:         "attractions",
		LocalField:   "id",
		ForeignField: "destination",
		As:           "attractions",
	})
}

func (s *DefaultService) GetDestinationBySlug(slug string) (*models.Destination, error) {
	return facade.GetDocBySlug[*models.Destination](s.Repo.Destinations, slug)
}

func (s *DefaultService) UpdateDestination(id string, patch bson.M) (*models.Destination, error) {
	return facade.UpdateDocByID[*models.Destination](s.Repo.Destinations, id, scrubPatch(patch))
}

func (s *DefaultService) DeleteDestination(id string) (*models.Destination, error) {
	return facade.DeleteDocByID[*models.Destination](s.Repo.Destinations, id)
}
