package config

import "testing"

func TestRoleHasRight(t *testing.T) {
	cases := []struct {
		role  string
		right string
		want  bool
	}{
		{"user", "createReview", true},
		{"user", "manageTours", false},
		{"leadGuide", "manageTours", true},
		{"leadGuide", "manageUsers", false},
		{"admin", "manageUsers", true},
		{"admin", "manageDestinations", true},
		{"admin", "createReview", false},
		{"", "createReview", false},
		{"superuser", "manageUsers", false},
	}
	for _, tc := range cases {
		if got := RoleHasRight(tc.role, tc.right); got != tc.want {
			t.Errorf("RoleHasRight(%q, %q) = %v, want %v", tc.role, tc.right, got, tc.want)
		}
	}
}

func TestKnownRole(t *testing.T) {
	for _, role := range []string{"user", "guide", "leadGuide", "admin"} {
		if !KnownRole(role) {
			t.Errorf("KnownRole(%q) = false", role)
		}
	}
	if KnownRole("superuser") {
		t.Error("KnownRole(\"superuser\") = true")
	}
}
