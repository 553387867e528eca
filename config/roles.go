package config

// Role permission table. A role maps to the set of rights it may exercise;
// mutating routes are gated on a single right.
var roleRights = map[string][]string{
	"user":      {"manageUser", "createReview", "manageOwnReviews", "manageProfile"},
	"guide":     {"manageUser", "createReview", "manageOwnReviews", "manageProfile"},
	"leadGuide": {"manageUser", "manageTours", "createReview", "manageOwnReviews", "manageProfile"},
	"admin": {
		"getUsers", "manageUser", "manageUsers",
		"manageDestinations", "manageAttractions", "manageTours",
		"manageReviews", "manageProfiles",
	},
}

// RoleHasRight reports whether the given role carries the given right.
func RoleHasRight(role, right string) bool {
	for _, r := range roleRights[role] {
		if r == right {
			return true
		}
	}
	return false
}

// KnownRole reports whether the role exists in the permission table.
func KnownRole(role string) bool {
	_, ok := roleRights[role]
	return ok
}
