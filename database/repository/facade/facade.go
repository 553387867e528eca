package facade

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"wayfarer/utils"
)

// toBsonMap round-trips a document through bson so field values can be
// inspected by their bson names.
func toBsonMap(doc any) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}
	return m, nil
}

// IsFieldTaken reports whether another document already holds the given value
// in a uniqueness-constrained field. excludeID skips the document being
// updated.
func IsFieldTaken(d Descriptor, field string, value any, excludeID string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{field: value}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}
	count, err := d.Coll.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to check %s uniqueness on %s: %w", d.Name, field, err)
	}
	return count > 0, nil
}

// checkUnique verifies every uniqueness-constrained field present in fields.
func checkUnique(d Descriptor, fields bson.M, excludeID string) error {
	for _, field := range d.Unique {
		value, ok := fields[field]
		if !ok || value == nil || value == "" {
			continue
		}
		taken, err := IsFieldTaken(d, field, value, excludeID)
		if err != nil {
			return err
		}
		if taken {
			return utils.NewConflict("%s %s already taken", d.Name, field)
		}
	}
	return nil
}

// CreateOne validates the descriptor's uniqueness constraints, derives the
// slug when applicable, persists a new document and returns it.
func CreateOne[T Entity](d Descriptor, doc T) (T, error) {
	var zero T
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	fields, err := toBsonMap(doc)
	if err != nil {
		return zero, err
	}
	if err := checkUnique(d, fields, ""); err != nil {
		return zero, err
	}

	if doc.DocID() == "" {
		doc.SetDocID(uuid.NewString())
	}
	doc.Stamp(time.Now())

	if d.SlugSource != "" {
		if slugged, ok := any(doc).(Slugged); ok {
			if name, ok := fields[d.SlugSource].(string); ok {
				slugged.SetSlug(utils.Slugify(name))
			}
		}
	}

	if _, err := d.Coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return zero, utils.NewConflict("%s already exists", d.Name)
		}
		return zero, fmt.Errorf("failed to create %s: %w", d.Name, err)
	}
	return doc, nil
}

// getOne fetches a single document matching the criteria, expanding the given
// reference fields. A missing document maps to NotFound; a malformed id simply
// matches nothing and lands on the same path.
func getOne[T any](d Descriptor, criteria bson.M, populate ...Lookup) (T, error) {
	var doc T
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := d.readFilter(criteria)

	if len(populate) == 0 {
		err := d.Coll.FindOne(ctx, filter).Decode(&doc)
		if err == mongo.ErrNoDocuments {
			return doc, utils.NewNotFound("%s not found", d.Name)
		}
		if err != nil {
			return doc, fmt.Errorf("failed to fetch %s: %w", d.Name, err)
		}
		return doc, nil
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: filter}},
	}
	for _, l := range populate {
		pipeline = append(pipeline, bson.D{
			{Key: "$lookup", Value: bson.D{
				{Key: "from", Value: l.From},
				{Key: "localField", Value: l.LocalField},
				{Key: "foreignField", Value: l.ForeignField},
				{Key: "as", Value: l.As},
			}},
		})
	}

	cursor, err := d.Coll.Aggregate(ctx, pipeline)
	if err != nil {
		return doc, fmt.Errorf("failed to fetch %s: %w", d.Name, err)
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		return doc, utils.NewNotFound("%s not found", d.Name)
	}
	if err := cursor.Decode(&doc); err != nil {
		return doc, fmt.Errorf("failed to decode %s: %w", d.Name, err)
	}
	return doc, nil
}

// GetDocByID fetches a document by identifier, optionally expanding reference
// fields into embedded documents.
func GetDocByID[T any](d Descriptor, id string, populate ...Lookup) (T, error) {
	return getOne[T](d, bson.M{"id": id}, populate...)
}

// GetDocBySlug fetches a document by its derived human-readable key.
func GetDocBySlug[T any](d Descriptor, slug string, populate ...Lookup) (T, error) {
	return getOne[T](d, bson.M{"slug": slug}, populate...)
}

// GetDocByEmail fetches a document by its unique email field. Applicable only
// to entities with an email field.
func GetDocByEmail[T any](d Descriptor, email string) (T, error) {
	return getOne[T](d, bson.M{"email": email})
}

// GetDocByField fetches a document by an arbitrary indexed field.
func GetDocByField[T any](d Descriptor, field string, value any, populate ...Lookup) (T, error) {
	return getOne[T](d, bson.M{field: value}, populate...)
}

// refetchByID fetches by id without the descriptor's base read filter. The
// post-update refetch must use it: the patch may have just moved the document
// out of the default read scope (a tour flagged secret, a deactivated
// profile), and the committed update still has to return the new image
// rather than NotFound.
func refetchByID[T any](d Descriptor, id string) (T, error) {
	var doc T
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	err := d.Coll.FindOne(ctx, bson.M{"id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return doc, utils.NewNotFound("%s not found", d.Name)
	}
	if err != nil {
		return doc, fmt.Errorf("failed to fetch %s: %w", d.Name, err)
	}
	return doc, nil
}

// finalizeUpdatePatch re-derives the slug when the slug source field is
// patched and stamps the update timestamp.
func finalizeUpdatePatch(d Descriptor, patch bson.M, now time.Time) bson.M {
	if d.SlugSource != "" {
		if name, ok := patch[d.SlugSource].(string); ok {
			patch["slug"] = utils.Slugify(name)
		}
	}
	patch["updatedAt"] = now
	return patch
}

// UpdateDocByID merges patch fields onto the existing document (shallow field
// assignment), re-checks uniqueness for any constrained field present in the
// patch, re-derives the slug when the source field changes, and returns the
// updated document.
func UpdateDocByID[T any](d Descriptor, id string, patch bson.M) (T, error) {
	var zero T
	if _, err := getOne[T](d, bson.M{"id": id}); err != nil {
		return zero, err
	}
	if err := checkUnique(d, patch, id); err != nil {
		return zero, err
	}

	patch = finalizeUpdatePatch(d, patch, time.Now())

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := d.Coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": patch})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return zero, utils.NewConflict("%s already exists", d.Name)
		}
		return zero, fmt.Errorf("failed to update %s with id %s: %w", d.Name, id, err)
	}
	if result.MatchedCount == 0 {
		return zero, utils.NewNotFound("%s not found", d.Name)
	}
	return refetchByID[T](d, id)
}

// DeleteDocByID fetches then hard-deletes a document, returning the deleted
// snapshot.
func DeleteDocByID[T any](d Descriptor, id string) (T, error) {
	var zero T
	doc, err := getOne[T](d, bson.M{"id": id})
	if err != nil {
		return zero, err
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := d.Coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return zero, fmt.Errorf("failed to delete %s with id %s: %w", d.Name, id, err)
	}
	if result.DeletedCount == 0 {
		return zero, utils.NewNotFound("%s not found", d.Name)
	}
	return doc, nil
}
