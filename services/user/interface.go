package user

import (
	"go.mongodb.org/mongo-driver/bson"

	"wayfarer/database/repository/facade"
	"wayfarer/models"
)

// RegisterInput carries a signup request. Role is always "user"; elevated
// roles are assigned by an admin afterwards.
type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Credentials is a login request.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is an authenticated login result.
type Session struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Service defines account and authentication operations. Issued tokens are
// tracked server-side so logout revokes them before expiry.
type Service interface {
	Register(input RegisterInput) (*models.User, error)
	Login(creds Credentials) (*Session, error)
	Logout(token string) error
	ChangePassword(userID, currentPassword, newPassword string) error

	GetByID(id string) (*models.User, error)
	Query(filter map[string]string, opts facade.QueryOptions) (*facade.Page[models.User], error)
	Update(id string, patch bson.M) (*models.User, error)
	Delete(id string) (*models.User, error)
}
