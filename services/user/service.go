package user

import (
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"wayfarer/config"
	accountRepo "wayfarer/database/repository/account"
	"wayfarer/database/repository/facade"
	"wayfarer/models"
	"wayfarer/utils"
)

const minPasswordLen = 8

// DefaultService implements Service. Sessions live in the auth cache keyed by
// token hash, so a logout takes effect immediately instead of waiting for the
// token to expire.
type DefaultService struct {
	Repo     *accountRepo.Repo
	Sessions *redis.Client
}

// NewService creates the user service.
func NewService(repo *accountRepo.Repo, sessions *redis.Client) Service {
	return &DefaultService{Repo: repo, Sessions: sessions}
}

// Fields only the service itself may set.
var protectedPatchFields = []string{"id", "_id", "createdAt", "updatedAt", "passwordHash", "email"}

func scrubPatch(patch bson.M) bson.M {
	for _, f := range protectedPatchFields {
		delete(patch, f)
	}
	return patch
}

func validatePassword(password string) error {
	if len(password) < minPasswordLen {
		return utils.NewBadRequest("password must be at least %d characters", minPasswordLen)
	}
	return nil
}

func tokenTTL() time.Duration {
	return time.Duration(config.AppConfig.TokenTTLHours) * time.Hour
}

// Register creates a new account with the default role. Email and username
// uniqueness is enforced by the account descriptor.
func (s *DefaultService) Register(input RegisterInput) (*models.User, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if input.Username == "" {
		return nil, utils.NewBadRequest("username is required")
	}
	if !strings.Contains(input.Email, "@") {
		return nil, utils.NewBadRequest("a valid email is required")
	}
	if err := validatePassword(input.Password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return facade.CreateOne(s.Repo.Users, &models.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         "user",
	})
}

// Login verifies the credentials, issues a token and registers it in the
// session store. Unknown email and wrong password produce the same error.
func (s *DefaultService) Login(creds Credentials) (*Session, error) {
	email := strings.ToLower(strings.TrimSpace(creds.Email))

	acct, err := facade.GetDocByEmail[*models.User](s.Repo.Users, email)
	if err != nil {
		return nil, utils.NewUnauthorized("incorrect email or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(creds.Password)) != nil {
		return nil, utils.NewUnauthorized("incorrect email or password")
	}

	token, err := utils.GenerateToken(acct.ID, acct.Email, tokenTTL())
	if err != nil {
		return nil, err
	}
	if err := utils.SaveAuthToken(s.Sessions, utils.HashToken(token), acct.ID, tokenTTL()); err != nil {
		return nil, err
	}

	return &Session{Token: token, User: acct}, nil
}

// Logout revokes the token. Revoking an already-revoked token is a no-op.
func (s *DefaultService) Logout(token string) error {
	return utils.DeleteAuthToken(s.Sessions, utils.HashToken(token))
}

// ChangePassword re-verifies the current password before swapping the hash.
func (s *DefaultService) ChangePassword(userID, currentPassword, newPassword string) error {
	acct, err := facade.GetDocByID[*models.User](s.Repo.Users, userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(currentPassword)) != nil {
		return utils.NewUnauthorized("current password is incorrect")
	}
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = facade.UpdateDocByID[*models.User](s.Repo.Users, userID, bson.M{"passwordHash": string(hash)})
	return err
}

func (s *DefaultService) GetByID(id string) (*models.User, error) {
	return facade.GetDocByID[*models.User](s.Repo.Users, id)
}

func (s *DefaultService) Query(filter map[string]string, opts facade.QueryOptions) (*facade.Page[models.User], error) {
	return facade.QueryAll[models.User](s.Repo.Users, filter, opts)
}

// Update patches account fields. A role change must name a known role.
func (s *DefaultService) Update(id string, patch bson.M) (*models.User, error) {
	patch = scrubPatch(patch)
	if role, ok := patch["role"].(string); ok && !config.KnownRole(role) {
		return nil, utils.NewBadRequest("unknown role %q", role)
	}
	return facade.UpdateDocByID[*models.User](s.Repo.Users, id, patch)
}

func (s *DefaultService) Delete(id string) (*models.User, error) {
	return facade.DeleteDocByID[*models.User](s.Repo.Users, id)
}
