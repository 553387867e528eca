package facade

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestParseSort(t *testing.T) {
	cases := []struct {
		sortBy string
		want   bson.D
	}{
		{"", nil},
		{"price:asc", bson.D{{Key: "price", Value: 1}}},
		{"price:desc", bson.D{{Key: "price", Value: -1}}},
		{"price", bson.D{{Key: "price", Value: 1}}},
		{"ratingsAverage:desc,price:asc", bson.D{
			{Key: "ratingsAverage", Value: -1},
			{Key: "price", Value: 1},
		}},
	}
	for _, tc := range cases {
		if got := parseSort(tc.sortBy); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("parseSort(%q) = %v, want %v", tc.sortBy, got, tc.want)
		}
	}
}

func TestClampLimitAndPage(t *testing.T) {
	if got := clampLimit(0); got != 10 {
		t.Errorf("clampLimit(0) = %d, want default 10", got)
	}
	if got := clampLimit(-5); got != 10 {
		t.Errorf("clampLimit(-5) = %d, want default 10", got)
	}
	if got := clampLimit(500); got != 100 {
		t.Errorf("clampLimit(500) = %d, want bound 100", got)
	}
	if got := clampLimit(25); got != 25 {
		t.Errorf("clampLimit(25) = %d, want 25", got)
	}
	if got := clampPage(0); got != 1 {
		t.Errorf("clampPage(0) = %d, want 1", got)
	}
	if got := clampPage(3); got != 3 {
		t.Errorf("clampPage(3) = %d, want 3", got)
	}
	// An absurd page number must stay clamped so the computed skip can
	// never go negative.
	huge := clampPage(int(^uint(0) >> 1))
	if huge != maxPage {
		t.Errorf("clampPage(maxint) = %d, want %d", huge, maxPage)
	}
	if skip := int64(huge-1) * int64(maxLimit); skip < 0 {
		t.Errorf("skip overflowed to %d", skip)
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{15, 10, 2},
		{20, 10, 2},
		{21, 10, 3},
	}
	for _, tc := range cases {
		if got := totalPages(tc.total, tc.limit); got != tc.want {
			t.Errorf("totalPages(%d, %d) = %d, want %d", tc.total, tc.limit, got, tc.want)
		}
	}
}

func TestCoerceValue(t *testing.T) {
	if got := coerceValue("true"); got != true {
		t.Errorf("coerceValue(true) = %v", got)
	}
	if got := coerceValue("4.5"); got != 4.5 {
		t.Errorf("coerceValue(4.5) = %v", got)
	}
	if got := coerceValue("3"); got != 3.0 {
		t.Errorf("coerceValue(3) = %v", got)
	}
	if got := coerceValue("medium"); got != "medium" {
		t.Errorf("coerceValue(medium) = %v", got)
	}
}

func TestBuildFilterAllowList(t *testing.T) {
	d := Descriptor{
		Name:       "tour",
		Filterable: []string{"difficulty", "price"},
		BaseFilter: bson.M{"secretTour": bson.M{"$ne": true}},
	}

	raw := map[string]string{
		"difficulty":   "easy",
		"price":        "497",
		"passwordHash": "injected", // not allow-listed
		"empty":        "",
	}
	got := buildFilter(d, raw)

	want := bson.M{
		"secretTour": bson.M{"$ne": true},
		"difficulty": "easy",
		"price":      497.0,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("buildFilter = %v, want %v", got, want)
	}
}

func TestReadFilterDoesNotMutateBase(t *testing.T) {
	d := Descriptor{BaseFilter: bson.M{"active": bson.M{"$ne": false}}}
	f := d.readFilter(bson.M{"id": "abc"})
	f["extra"] = 1
	if _, ok := d.BaseFilter["extra"]; ok {
		t.Fatal("readFilter mutated the descriptor base filter")
	}
	if _, ok := d.BaseFilter["id"]; ok {
		t.Fatal("readFilter mutated the descriptor base filter")
	}
}
