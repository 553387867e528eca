package catalog

import (
	"go.mongodb.org/mongo-driver/bson"

	"wayfarer/database/repository/facade"
	"wayfarer/database/repository/geo"
	"wayfarer/models"
)

// Service defines the catalog operations over destinations, attractions and
// tours: façade-backed CRUD, geospatial queries and derived statistics.
type Service interface {
	// Destinations.
	CreateDestination(dest *models.Destination) (*models.Destination, error)
	GetDestinations(filter map[string]string, opts facade.QueryOptions) (*facade.Page[models.Destination], error)
	GetDestinationByID(id string) (*models.Destination, error)
	GetDestinationBySlug(slug string) (*models.Destination, error)
	UpdateDestination(id string, patch bson.M) (*models.Destination, error)
	DeleteDestination(id string) (*models.Destination, error)

	// Attractions.
	CreateAttraction(attr *models.Attraction) (*models.Attraction, error)
	GetAttractions(filter map[string]string, opts facade.QueryOptions) (*facade.Page[models.Attraction], error)
	GetAttractionByID(id string) (*models.Attraction, error)
	GetAttractionBySlug(slug string) (*models.Attraction, error)
	UpdateAttraction(id string, patch bson.M) (*models.Attraction, error)
	DeleteAttraction(id string) (*models.Attraction, error)
	AttractionStats() ([]bson.M, error)

	// Tours.
	CreateTour(tour *models.Tour) (*models.Tour, error)
	GetTours(filter map[string]string, opts facade.QueryOptions) (*facade.Page[models.Tour], error)
	GetTourByID(id string) (*models.Tour, error)
	GetTourBySlug(slug string) (*models.Tour, error)
	UpdateTour(id string, patch bson.M) (*models.Tour, error)
	DeleteTour(id string) (*models.Tour, error)
	TourStats() ([]bson.M, error)
	MonthlyPlan(year int) ([]bson.M, error)

	// Geospatial queries over any catalog entity carrying a point location.
	PlacesWithin(entity, distance, latLng, unit string) (any, error)
	Distances(entity, latLng, unit string) ([]geo.DistanceResult, error)
}
