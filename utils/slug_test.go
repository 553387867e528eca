package utils

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Grand Canyon Tour", "grand-canyon-tour"},
		{"Grand Canyon Tours", "grand-canyon-tours"},
		{"Mont-Saint-Michel", "mont-saint-michel"},
		{"  Lake   Como!  ", "lake-como"},
		{"CAFÉ & BAR", "caf-bar"},
		{"", ""},
		{"---", ""},
		{"Route 66", "route-66"},
	}
	for _, tc := range cases {
		if got := Slugify(tc.name); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}
