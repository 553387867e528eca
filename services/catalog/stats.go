package catalog

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func runPipeline(coll *mongo.Collection, pipeline mongo.Pipeline) ([]bson.M, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregation query failed: %w", err)
	}
	defer cursor.Close(ctx)

	results := []bson.M{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode aggregation results: %w", err)
	}
	return results, nil
}

// TourStats groups highly rated tours by difficulty with count, average
// rating and price spread, sorted by average price descending.
func (s *DefaultService) TourStats() ([]bson.M, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"ratingsAverage": bson.M{"$gte": 4.5},
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":           bson.M{"$toUpper": "$difficulty"},
			"numTours":      bson.M{"$sum": 1},
			"averageRating": bson.M{"$avg": "$ratingsAverage"},
			"averagePrice":  bson.M{"$avg": "$price"},
			"minPrice":      bson.M{"$min": "$price"},
			"maxPrice":      bson.M{"$max": "$price"},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"averagePrice": -1}}},
	}
	return runPipeline(s.Repo.Tours.Coll, pipeline)
}

// MonthlyPlan counts tour starts per month of the given year and lists the
// starting tours, busiest months first.
func (s *DefaultService) MonthlyPlan(year int) ([]bson.M, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$unwind", Value: "$startDates"}},
		bson.D{{Key: "$match", Value: bson.M{
			"startDates": bson.M{"$gte": from, "$lte": to},
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":           bson.M{"$month": "$startDates"},
			"numTourStarts": bson.M{"$sum": 1},
			"tours":         bson.M{"$push": "$name"},
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{"month": "$_id"}}},
		bson.D{{Key: "$project", Value: bson.M{"_id": 0}}},
		bson.D{{Key: "$sort", Value: bson.M{"numTourStarts": -1}}},
		bson.D{{Key: "$limit", Value: 12}},
	}
	return runPipeline(s.Repo.Tours.Coll, pipeline)
}

// AttractionStats groups highly rated attractions by destination, joining the
// destination name.
func (s *DefaultService) AttractionStats() ([]bson.M, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"ratingsAverage": bson.M{"$gte": 4.5},
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":            "$destination",
			"numAttractions": bson.M{"$sum": 1},
			"numRatings":     bson.M{"$sum": "$ratingsQuantity"},
			"averageRating":  bson.M{"$avg": "$ratingsAverage"},
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "destinations",
			"localField":   "_id",
			"foreignField": "id",
			"as":           "destination",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$destination",
			"preserveNullAndEmptyArrays": true,
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":            0,
			"numAttractions": 1,
			"numRatings":     1,
			"averageRating":  1,
			"destination":    bson.M{"name": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"averageRating": 1}}},
	}
	return runPipeline(s.Repo.Attractions.Coll, pipeline)
}
