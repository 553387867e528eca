package reviewRepo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"wayfarer/models"
)

// RatingStats recomputes the count and arithmetic mean of the rating field
// across all reviews currently referencing the parent.
func (r *MongoReviewRepo) RatingStats(parent models.ParentRef) (int, float64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"parent.kind": parent.Kind,
			"parent.id":   parent.ID,
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":       nil,
			"nRating":   bson.M{"$sum": 1},
			"avgRating": bson.M{"$avg": "$rating"},
		}}},
	}

	cursor, err := r.desc.Coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, fmt.Errorf("rating stats aggregation failed: %w", err)
	}
	defer cursor.Close(ctx)

	var stats []struct {
		NRating   int     `bson:"nRating"`
		AvgRating float64 `bson:"avgRating"`
	}
	if err := cursor.All(ctx, &stats); err != nil {
		return 0, 0, fmt.Errorf("failed to decode rating stats: %w", err)
	}
	if len(stats) == 0 {
		return 0, 0, nil
	}
	return stats[0].NRating, stats[0].AvgRating, nil
}

// SetRatingAggregate writes the recomputed aggregate onto the parent via a
// direct field update, bypassing the façade's uniqueness checks (rating
// fields carry no uniqueness constraint).
func (r *MongoReviewRepo) SetRatingAggregate(parent models.ParentRef, quantity int, average float64) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	coll := r.tours
	if parent.Kind == models.ParentAttraction {
		coll = r.attractions
	}

	result, err := coll.UpdateOne(ctx, bson.M{"id": parent.ID}, bson.M{"$set": bson.M{
		"ratingsQuantity": quantity,
		"ratingsAverage":  average,
	}})
	if err != nil {
		return fmt.Errorf("failed to update %s rating aggregate: %w", parent.Kind, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%s with id %s not found", parent.Kind, parent.ID)
	}
	return nil
}
