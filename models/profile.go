package models

// PersonalInfo is the profile's identity block.
type PersonalInfo struct {
	FirstName string `bson:"firstName,omitempty" json:"firstName,omitempty"`
	LastName  string `bson:"lastName,omitempty" json:"lastName,omitempty"`
	Age       int    `bson:"age,omitempty" json:"age,omitempty"`
}

// EmergencyContact is a person to reach in an emergency.
type EmergencyContact struct {
	Name         string `bson:"name" json:"name"`
	Relationship string `bson:"relationship,omitempty" json:"relationship,omitempty"`
	Phone        string `bson:"phone" json:"phone"`
}

// ContactDetails groups the profile's reachable addresses and handles.
type ContactDetails struct {
	Phone struct {
		Mobile string `bson:"mobile,omitempty" json:"mobile,omitempty"`
		Work   string `bson:"work,omitempty" json:"work,omitempty"`
	} `bson:"phone,omitempty" json:"phone,omitempty"`
	Email struct {
		Personal string `bson:"personal,omitempty" json:"personal,omitempty"`
		Work     string `bson:"work,omitempty" json:"work,omitempty"`
	} `bson:"email,omitempty" json:"email,omitempty"`
	SocialMedia struct {
		X        string `bson:"x,omitempty" json:"x,omitempty"`
		LinkedIn string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	} `bson:"socialMedia,omitempty" json:"socialMedia,omitempty"`
	EmergencyContacts []EmergencyContact `bson:"emergencyContacts,omitempty" json:"emergencyContacts,omitempty"`
}

// Profile is a user's public profile, one per user. Deactivated profiles are
// excluded from default reads but not physically deleted.
type Profile struct {
	Meta           `bson:",inline"`
	PersonalInfo   PersonalInfo   `bson:"personalInfo,omitempty" json:"personalInfo,omitempty"`
	Photo          ImageRef       `bson:"photo,omitempty" json:"photo,omitempty"`
	ContactDetails ContactDetails `bson:"contactDetails,omitempty" json:"contactDetails,omitempty"`
	Active         *bool          `bson:"active,omitempty" json:"active,omitempty"`
	User           string         `bson:"user" json:"user"`
}
