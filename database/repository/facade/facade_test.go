package facade

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"wayfarer/models"
)

func TestFinalizeUpdatePatch(t *testing.T) {
	d := Descriptor{Name: "tour", SlugSource: "name"}
	now := time.Now()

	patch := finalizeUpdatePatch(d, bson.M{"name": "Grand Canyon Sunrise"}, now)
	if patch["slug"] != "grand-canyon-sunrise" {
		t.Errorf("expected re-derived slug, got %v", patch["slug"])
	}
	if patch["updatedAt"] != now {
		t.Errorf("expected updatedAt stamp, got %v", patch["updatedAt"])
	}

	patch = finalizeUpdatePatch(d, bson.M{"price": 497.0}, now)
	if _, ok := patch["slug"]; ok {
		t.Error("slug must not be touched when the source field is absent")
	}

	patch = finalizeUpdatePatch(Descriptor{Name: "review"}, bson.M{"name": "x"}, now)
	if _, ok := patch["slug"]; ok {
		t.Error("slug must not be derived for entities without a slug source")
	}
}

func TestUpdateRefetchBypassesBaseFilter(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("secret flag patch returns the updated document", func(mt *mtest.T) {
		d := Descriptor{
			Name:       "tour",
			Coll:       mt.Coll,
			Unique:     []string{"name"},
			SlugSource: "name",
			BaseFilter: bson.M{"secretTour": bson.M{"$ne": true}},
		}
		ns := mt.DB.Name() + "." + mt.Coll.Name()

		existing := bson.D{
			{Key: "id", Value: "tour-1"},
			{Key: "name", Value: "Night Hike"},
			{Key: "slug", Value: "night-hike"},
			{Key: "secretTour", Value: false},
		}
		updated := bson.D{
			{Key: "id", Value: "tour-1"},
			{Key: "name", Value: "Night Hike"},
			{Key: "slug", Value: "night-hike"},
			{Key: "secretTour", Value: true},
		}

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, existing),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, updated),
		)

		tour, err := UpdateDocByID[*models.Tour](d, "tour-1", bson.M{"secretTour": true})
		if err != nil {
			mt.Fatalf("UpdateDocByID returned error: %v", err)
		}
		if !tour.SecretTour {
			mt.Fatal("expected the post-update image, got a stale document")
		}

		// The refetch must match on id alone. Merging the base read filter
		// here would report a just-updated document as absent.
		var lastFind bson.Raw
		for _, ev := range mt.GetAllStartedEvents() {
			if ev.CommandName == "find" {
				lastFind = ev.Command
			}
		}
		if lastFind == nil {
			mt.Fatal("no find command recorded")
		}
		filter := lastFind.Lookup("filter").Document()
		if id, err := filter.LookupErr("id"); err != nil || id.StringValue() != "tour-1" {
			mt.Fatalf("refetch filter does not match on id: %v", filter)
		}
		if _, err := filter.LookupErr("secretTour"); err == nil {
			mt.Fatalf("refetch filter carries the base read filter: %v", filter)
		}
	})
}

func TestUpdateRenameRewritesSlug(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("name patch writes the re-derived slug and timestamp", func(mt *mtest.T) {
		d := Descriptor{
			Name:       "tour",
			Coll:       mt.Coll,
			Unique:     []string{"name"},
			SlugSource: "name",
		}
		ns := mt.DB.Name() + "." + mt.Coll.Name()

		existing := bson.D{
			{Key: "id", Value: "tour-1"},
			{Key: "name", Value: "Night Hike"},
			{Key: "slug", Value: "night-hike"},
		}
		renamed := bson.D{
			{Key: "id", Value: "tour-1"},
			{Key: "name", Value: "Grand Canyon Sunrise"},
			{Key: "slug", Value: "grand-canyon-sunrise"},
		}

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, existing),
			// Uniqueness count for the patched name.
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "n", Value: 0}}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, renamed),
		)

		tour, err := UpdateDocByID[*models.Tour](d, "tour-1", bson.M{"name": "Grand Canyon Sunrise"})
		if err != nil {
			mt.Fatalf("UpdateDocByID returned error: %v", err)
		}
		if tour.Slug != "grand-canyon-sunrise" {
			mt.Fatalf("expected re-derived slug in result, got %q", tour.Slug)
		}

		var update bson.Raw
		for _, ev := range mt.GetAllStartedEvents() {
			if ev.CommandName == "update" {
				update = ev.Command
			}
		}
		if update == nil {
			mt.Fatal("no update command recorded")
		}
		set := update.Lookup("updates", "0", "u", "$set").Document()
		if slug, err := set.LookupErr("slug"); err != nil || slug.StringValue() != "grand-canyon-sunrise" {
			mt.Fatalf("update did not write the re-derived slug: %v", set)
		}
		if _, err := set.LookupErr("updatedAt"); err != nil {
			mt.Fatalf("update did not stamp updatedAt: %v", set)
		}
	})
}
