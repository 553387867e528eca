package geo

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"wayfarer/utils"
)

// Earth's mean radius per supported unit, used to convert a distance to the
// angular radius $centerSphere expects.
const (
	earthRadiusMi = 3963.2
	earthRadiusKm = 6378.1

	// $geoNear reports meters; these scale to the requested unit.
	metersToMi = 0.000621371
	metersToKm = 0.001
)

// Params carries the parsed geo query inputs. Unit is "mi" or "km"; anything
// that is not "mi" is treated as km.
type Params struct {
	Distance float64
	Lat      float64
	Lng      float64
	Unit     string
}

// DistanceResult is one row of a Distances query.
type DistanceResult struct {
	Name     string  `bson:"name" json:"name"`
	Distance float64 `bson:"distance" json:"distance"`
}

// ParseLatLng parses a "lat,lng" pair. A missing or unparseable component is
// a BadRequest.
func ParseLatLng(latLng string) (lat, lng float64, err error) {
	parts := strings.Split(latLng, ",")
	if len(parts) != 2 {
		return 0, 0, utils.NewBadRequest("please provide latitude and longitude in the format lat,lng")
	}
	lat, latErr := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lng, lngErr := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if latErr != nil || lngErr != nil {
		return 0, 0, utils.NewBadRequest("please provide latitude and longitude in the format lat,lng")
	}
	return lat, lng, nil
}

// Radius converts a distance to the angular radius for a spherical
// containment test.
func Radius(distance float64, unit string) float64 {
	if unit == "mi" {
		return distance / earthRadiusMi
	}
	return distance / earthRadiusKm
}

// Multiplier scales a meters-based distance to the requested unit.
func Multiplier(unit string) float64 {
	if unit == "mi" {
		return metersToMi
	}
	return metersToKm
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// PlacesWithin returns all documents whose location falls within the
// spherical cap of the given radius around the point. A radius of zero is a
// legal degenerate query matching only exact-location documents.
func PlacesWithin[T any](coll *mongo.Collection, locField string, p Params, base bson.M) ([]T, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	for k, v := range base {
		filter[k] = v
	}
	// $centerSphere takes legacy [lng, lat] order.
	filter[locField] = bson.M{
		"$geoWithin": bson.M{
			"$centerSphere": bson.A{
				bson.A{p.Lng, p.Lat},
				Radius(p.Distance, p.Unit),
			},
		},
	}

	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("geo containment query failed: %w", err)
	}
	defer cursor.Close(ctx)

	results := []T{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode geo results: %w", err)
	}
	return results, nil
}

// Distances computes the great-circle distance from the given point to every
// document, projecting only {distance, name}. $geoNear returns results
// nearest-first.
func Distances(coll *mongo.Collection, locField string, p Params) ([]DistanceResult, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{
			{Key: "$geoNear", Value: bson.D{
				{Key: "near", Value: bson.D{
					{Key: "type", Value: "Point"},
					{Key: "coordinates", Value: bson.A{p.Lng, p.Lat}},
				}},
				{Key: "distanceField", Value: "distance"},
				{Key: "distanceMultiplier", Value: Multiplier(p.Unit)},
				{Key: "spherical", Value: true},
				{Key: "key", Value: locField},
			}},
		},
		bson.D{
			{Key: "$project", Value: bson.M{
				"distance": 1,
				"name":     1,
			}},
		},
	}

	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("geo distance query failed: %w", err)
	}
	defer cursor.Close(ctx)

	results := []DistanceResult{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode distance results: %w", err)
	}
	return results, nil
}
