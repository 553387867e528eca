package profile

import (
	"go.mongodb.org/mongo-driver/bson"

	accountRepo "wayfarer/database/repository/account"
	"wayfarer/database/repository/facade"
	"wayfarer/models"
	"wayfarer/utils"
)

// DefaultService implements Service.
type DefaultService struct {
	Repo *accountRepo.Repo
}

// NewService creates the profile service.
func NewService(repo *accountRepo.Repo) Service {
	return &DefaultService{Repo: repo}
}

// Fields callers may never patch directly. The owning user is immutable and
// active is only flipped through Deactivate.
var protectedPatchFields = []string{"id", "_id", "createdAt", "updatedAt", "user", "active", "photo"}

func scrubPatch(patch bson.M) bson.M {
	for _, f := range protectedPatchFields {
		delete(patch, f)
	}
	return patch
}

// authorize allows the owner, or any elevated caller, to touch the profile.
func (s *DefaultService) authorize(actorID string, prof *models.Profile, elevated bool) error {
	if elevated || prof.User == actorID {
		return nil
	}
	return utils.NewForbidden("you can only manage your own profile")
}

// Create persists the user's profile. The user uniqueness constraint rejects
// a second profile for the same user with a conflict.
func (s *DefaultService) Create(userID string, input *models.Profile) (*models.Profile, error) {
	input.User = userID
	active := true
	input.Active = &active
	return facade.CreateOne(s.Repo.Profiles, input)
}

func (s *DefaultService) GetByID(id string) (*models.Profile, error) {
	return facade.GetDocByID[*models.Profile](s.Repo.Profiles, id)
}

// GetByUser fetches the profile owned by the given user.
func (s *DefaultService) GetByUser(userID string) (*models.Profile, error) {
	return facade.GetDocByField[*models.Profile](s.Repo.Profiles, "user", userID)
}

func (s *DefaultService) Query(filter map[string]string, opts facade.QueryOptions) (*facade.Page[models.Profile], error) {
	return facade.QueryAll[models.Profile](s.Repo.Profiles, filter, opts)
}

func (s *DefaultService) Update(actorID, profileID string, patch bson.M, elevated bool) (*models.Profile, error) {
	existing, err := s.GetByID(profileID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(actorID, existing, elevated); err != nil {
		return nil, err
	}
	return facade.UpdateDocByID[*models.Profile](s.Repo.Profiles, profileID, scrubPatch(patch))
}

// SetPhoto attaches an already-uploaded image to the profile.
func (s *DefaultService) SetPhoto(actorID, profileID string, photo models.ImageRef, elevated bool) (*models.Profile, error) {
	existing, err := s.GetByID(profileID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(actorID, existing, elevated); err != nil {
		return nil, err
	}
	return facade.UpdateDocByID[*models.Profile](s.Repo.Profiles, profileID, bson.M{"photo": photo})
}

// Deactivate marks the profile inactive, hiding it from default reads.
func (s *DefaultService) Deactivate(actorID, profileID string, elevated bool) error {
	existing, err := s.GetByID(profileID)
	if err != nil {
		return err
	}
	if err := s.authorize(actorID, existing, elevated); err != nil {
		return err
	}
	_, err = facade.UpdateDocByID[*models.Profile](s.Repo.Profiles, profileID, bson.M{"active": false})
	return err
}
