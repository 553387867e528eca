package review

import (
	"errors"
	"testing"

	"wayfarer/models"
)

type fakeStats struct {
	count int
	avg   float64
	err   error
}

func (f *fakeStats) RatingStats(parent models.ParentRef) (int, float64, error) {
	return f.count, f.avg, f.err
}

type fakeParentWriter struct {
	calls    int
	parent   models.ParentRef
	quantity int
	average  float64
	err      error
}

func (f *fakeParentWriter) SetRatingAggregate(parent models.ParentRef, quantity int, average float64) error {
	f.calls++
	f.parent = parent
	f.quantity = quantity
	f.average = average
	return f.err
}

func TestAggregatorRoundsAverage(t *testing.T) {
	parent := models.ParentRef{Kind: models.ParentTour, ID: "tour-1"}
	writer := &fakeParentWriter{}
	agg := NewAggregator(&fakeStats{count: 3, avg: 4.266666}, writer)

	agg.ReviewCommitted(parent)

	if writer.calls != 1 {
		t.Fatalf("expected 1 aggregate write, got %d", writer.calls)
	}
	if writer.parent != parent {
		t.Fatalf("aggregate written to wrong parent: %+v", writer.parent)
	}
	if writer.quantity != 3 || writer.average != 4.3 {
		t.Fatalf("expected {3, 4.3}, got {%d, %v}", writer.quantity, writer.average)
	}
}

func TestAggregatorZeroReviewsWritesDefaults(t *testing.T) {
	parent := models.ParentRef{Kind: models.ParentAttraction, ID: "attr-1"}
	writer := &fakeParentWriter{}
	agg := NewAggregator(&fakeStats{count: 0, avg: 0}, writer)

	agg.ReviewRemoved(parent)

	if writer.quantity != 0 || writer.average != 4.5 {
		t.Fatalf("expected defaults {0, 4.5}, got {%d, %v}", writer.quantity, writer.average)
	}
}

func TestAggregatorStatsFailureSkipsWrite(t *testing.T) {
	writer := &fakeParentWriter{}
	agg := NewAggregator(&fakeStats{err: errors.New("pipeline failed")}, writer)

	agg.ReviewCommitted(models.ParentRef{Kind: models.ParentTour, ID: "tour-1"})

	if writer.calls != 0 {
		t.Fatalf("expected no aggregate write after stats failure, got %d", writer.calls)
	}
}

func TestAggregatorWriteFailureIsSwallowed(t *testing.T) {
	writer := &fakeParentWriter{err: errors.New("parent missing")}
	agg := NewAggregator(&fakeStats{count: 1, avg: 5}, writer)

	// Must not panic; the primary mutation already committed.
	agg.ReviewCommitted(models.ParentRef{Kind: models.ParentTour, ID: "tour-1"})
}
