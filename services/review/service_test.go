package review

import (
	"fmt"
	"net/http"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"wayfarer/database/repository/facade"
	"wayfarer/models"
	"wayfarer/utils"
)

// memoryReviewRepo is an in-memory Repository double. RatingStats and
// SetRatingAggregate operate on the same live set of reviews, so wiring it to
// the real Aggregator exercises the full mutation->recompute path.
type memoryReviewRepo struct {
	seq        int
	reviews    map[string]models.Review
	aggregates map[models.ParentRef]struct {
		Quantity int
		Average  float64
	}
}

func newMemoryReviewRepo() *memoryReviewRepo {
	return &memoryReviewRepo{
		reviews: map[string]models.Review{},
		aggregates: map[models.ParentRef]struct {
			Quantity int
			Average  float64
		}{},
	}
}

func (m *memoryReviewRepo) Create(rev *models.Review) (*models.Review, error) {
	m.seq++
	rev.ID = fmt.Sprintf("review-%d", m.seq)
	m.reviews[rev.ID] = *rev
	return rev, nil
}

func (m *memoryReviewRepo) GetByID(id string) (*models.Review, error) {
	rev, ok := m.reviews[id]
	if !ok {
		return nil, utils.NewNotFound("review not found")
	}
	return &rev, nil
}

func (m *memoryReviewRepo) Query(filter map[string]string, opts facade.QueryOptions) (*facade.Page[models.Review], error) {
	results := []models.Review{}
	for _, rev := range m.reviews {
		results = append(results, rev)
	}
	return &facade.Page[models.Review]{Results: results, Page: 1, Limit: 10}, nil
}

func (m *memoryReviewRepo) Update(id string, patch bson.M) (*models.Review, error) {
	rev, ok := m.reviews[id]
	if !ok {
		return nil, utils.NewNotFound("review not found")
	}
	if body, ok := patch["review"].(string); ok {
		rev.Review = body
	}
	if rating, ok := patch["rating"].(float64); ok {
		rev.Rating = rating
	}
	m.reviews[id] = rev
	return &rev, nil
}

func (m *memoryReviewRepo) Delete(id string) (*models.Review, error) {
	rev, ok := m.reviews[id]
	if !ok {
		return nil, utils.NewNotFound("review not found")
	}
	delete(m.reviews, id)
	return &rev, nil
}

func (m *memoryReviewRepo) ExistsForUserAndParent(userID string, parent models.ParentRef) (bool, error) {
	for _, rev := range m.reviews {
		if rev.User == userID && rev.Parent == parent {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryReviewRepo) RatingStats(parent models.ParentRef) (int, float64, error) {
	count := 0
	sum := 0.0
	for _, rev := range m.reviews {
		if rev.Parent == parent {
			count++
			sum += rev.Rating
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return count, sum / float64(count), nil
}

func (m *memoryReviewRepo) SetRatingAggregate(parent models.ParentRef, quantity int, average float64) error {
	m.aggregates[parent] = struct {
		Quantity int
		Average  float64
	}{quantity, average}
	return nil
}

func newTestService() (*memoryReviewRepo, Service) {
	repo := newMemoryReviewRepo()
	svc := NewService(repo, NewAggregator(repo, repo))
	return repo, svc
}

func TestCreateReviewUpdatesParentAggregate(t *testing.T) {
	repo, svc := newTestService()
	parent := models.ParentRef{Kind: models.ParentTour, ID: "tour-1"}

	if _, err := svc.Create("user-1", parent, "An unforgettable canyon hike", 4.0); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := svc.Create("user-2", parent, "Stunning views, long climbs", 5.0); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	agg := repo.aggregates[parent]
	if agg.Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", agg.Quantity)
	}
	if agg.Average != 4.5 {
		t.Fatalf("expected average 4.5, got %v", agg.Average)
	}
}

func TestCreateReviewAverageIsRoundedToOneDecimal(t *testing.T) {
	repo, svc := newTestService()
	parent := models.ParentRef{Kind: models.ParentAttraction, ID: "attr-1"}

	ratings := []float64{5, 4, 4}
	for i, rating := range ratings {
		user := fmt.Sprintf("user-%d", i)
		if _, err := svc.Create(user, parent, "Plenty of hidden corners here", rating); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}

	// mean(5,4,4) = 4.333... -> stored pre-rounded as 4.3.
	agg := repo.aggregates[parent]
	if agg.Average != 4.3 {
		t.Fatalf("expected average 4.3, got %v", agg.Average)
	}
	if agg.Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", agg.Quantity)
	}
}

func TestCreateDuplicateReviewConflicts(t *testing.T) {
	_, svc := newTestService()
	parent := models.ParentRef{Kind: models.ParentTour, ID: "tour-1"}
	other := models.ParentRef{Kind: models.ParentTour, ID: "tour-2"}

	if _, err := svc.Create("user-1", parent, "An unforgettable canyon hike", 4.0); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	_, err := svc.Create("user-1", parent, "Trying to review this twice", 3.0)
	if !utils.IsStatus(err, http.StatusConflict) {
		t.Fatalf("expected Conflict for duplicate review, got %v", err)
	}

	// Same user, different parent is fine.
	if _, err := svc.Create("user-1", other, "A different tour altogether", 3.0); err != nil {
		t.Fatalf("Create against another parent returned error: %v", err)
	}
}

func TestCreateReviewValidation(t *testing.T) {
	_, svc := newTestService()
	parent := models.ParentRef{Kind: models.ParentTour, ID: "tour-1"}

	if _, err := svc.Create("user-1", models.ParentRef{}, "A reasonable review body", 4.0); !utils.IsStatus(err, http.StatusBadRequest) {
		t.Fatalf("expected BadRequest for missing parent, got %v", err)
	}
	if _, err := svc.Create("user-1", models.ParentRef{Kind: "hotel", ID: "x"}, "A reasonable review body", 4.0); !utils.IsStatus(err, http.StatusBadRequest) {
		t.Fatalf("expected BadRequest for unknown parent kind, got %v", err)
	}
	if _, err := svc.Create("user-1", parent, "too short", 4.0); !utils.IsStatus(err, http.StatusBadRequest) {
		t.Fatalf("expected BadRequest for short body, got %v", err)
	}
	if _, err := svc.Create("user-1", parent, "A reasonable review body", 5.5); !utils.IsStatus(err, http.StatusBadRequest) {
		t.Fatalf("expected BadRequest for rating above 5, got %v", err)
	}
	if _, err := svc.Create("user-1", parent, "A reasonable review body", 0.4); !utils.IsStatus(err, http.StatusBadRequest) {
		t.Fatalf("expected BadRequest for rating below 1, got %v", err)
	}
}

func TestUpdateReviewOwnershipAndRecompute(t *testing.T) {
	repo, svc := newTestService()
	parent := models.ParentRef{Kind: models.ParentTour, ID: "tour-1"}

	rev, err := svc.Create("user-1", parent, "An unforgettable canyon hike", 4.0)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	rating := 2.0
	if _, err := svc.Update("user-2", rev.ID, UpdateInput{Rating: &rating}); !utils.IsStatus(err, http.StatusForbidden) {
		t.Fatalf("expected Forbidden for non-owner update, got %v", err)
	}

	if _, err := svc.Update("user-1", rev.ID, UpdateInput{}); !utils.IsStatus(err, http.StatusBadRequest) {
		t.Fatalf("expected BadRequest for empty update, got %v", err)
	}

	if _, err := svc.Update("user-1", rev.ID, UpdateInput{Rating: &rating}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	agg := repo.aggregates[parent]
	if agg.Average != 2.0 || agg.Quantity != 1 {
		t.Fatalf("expected aggregate {1, 2.0} after update, got {%d, %v}", agg.Quantity, agg.Average)
	}
}

func TestDeleteLastReviewResetsAggregateToDefault(t *testing.T) {
	repo, svc := newTestService()
	parent := models.ParentRef{Kind: models.ParentTour, ID: "tour-1"}

	rev, err := svc.Create("user-1", parent, "An unforgettable canyon hike", 2.0)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := svc.Delete("user-2", rev.ID); !utils.IsStatus(err, http.StatusForbidden) {
		t.Fatalf("expected Forbidden for non-owner delete, got %v", err)
	}

	if err := svc.Delete("user-1", rev.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	agg := repo.aggregates[parent]
	if agg.Quantity != 0 || agg.Average != 4.5 {
		t.Fatalf("expected default aggregate {0, 4.5}, got {%d, %v}", agg.Quantity, agg.Average)
	}

	if err := svc.Delete("user-1", rev.ID); !utils.IsStatus(err, http.StatusNotFound) {
		t.Fatalf("expected NotFound for repeated delete, got %v", err)
	}
}

func TestCreateDeleteSequenceKeepsAggregateConsistent(t *testing.T) {
	repo, svc := newTestService()
	parent := models.ParentRef{Kind: models.ParentAttraction, ID: "attr-1"}

	first, err := svc.Create("user-1", parent, "Plenty of hidden corners here", 3.0)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := svc.Create("user-2", parent, "Worth a whole afternoon visit", 5.0); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := svc.Delete("user-1", first.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	agg := repo.aggregates[parent]
	if agg.Quantity != 1 || agg.Average != 5.0 {
		t.Fatalf("expected aggregate {1, 5.0}, got {%d, %v}", agg.Quantity, agg.Average)
	}
}
