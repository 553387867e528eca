package catalog

import (
	"strconv"

	"wayfarer/database/repository/facade"
	"wayfarer/database/repository/geo"
	"wayfarer/models"
	"wayfarer/utils"
)

// descriptorFor resolves a catalog entity name to its descriptor.
func (s *DefaultService) descriptorFor(entity string) (facade.Descriptor, error) {
	switch entity {
	case "destination":
		return s.Repo.Destinations, nil
	case "attraction":
		return s.Repo.Attractions, nil
	case "tour":
		return s.Repo.Tours, nil
	default:
		return facade.Descriptor{}, utils.NewBadRequest("unknown entity type %q", entity)
	}
}

// PlacesWithin returns all entities of the given type whose location falls
// within the spherical cap around the point. Distance zero is a legal
// degenerate query.
func (s *DefaultService) PlacesWithin(entity, distance, latLng, unit string) (any, error) {
	dist, err := strconv.ParseFloat(distance, 64)
	if err != nil || dist < 0 {
		return nil, utils.NewBadRequest("please provide a non-negative distance")
	}
	lat, lng, err := geo.ParseLatLng(latLng)
	if err != nil {
		return nil, err
	}

	d, err := s.descriptorFor(entity)
	if err != nil {
		return nil, err
	}
	params := geo.Params{Distance: dist, Lat: lat, Lng: lng, Unit: unit}

	switch entity {
	case "destination":
		return geo.PlacesWithin[models.Destination](d.Coll, "location", params, d.BaseFilter)
	case "attraction":
		return geo.PlacesWithin[models.Attraction](d.Coll, "location", params, d.BaseFilter)
	default:
		return geo.PlacesWithin[models.Tour](d.Coll, "location", params, d.BaseFilter)
	}
}

// Distances computes the distance from the point to every entity of the given
// type, projecting only {distance, name}.
func (s *DefaultService) Distances(entity, latLng, unit string) ([]geo.DistanceResult, error) {
	lat, lng, err := geo.ParseLatLng(latLng)
	if err != nil {
		return nil, err
	}
	d, err := s.descriptorFor(entity)
	if err != nil {
		return nil, err
	}
	return geo.Distances(d.Coll, "location", geo.Params{Lat: lat, Lng: lng, Unit: unit})
}
