package models

// User is an account identity. Owns at most one Profile (by back-reference).
type User struct {
	Meta         `bson:",inline"`
	Username     string `bson:"username" json:"username"`
	Email        string `bson:"email" json:"email"`
	PasswordHash string `bson:"passwordHash" json:"-"`
	Role         string `bson:"role" json:"role"`
}
