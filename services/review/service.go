package review

import (
	"math"

	"go.mongodb.org/mongo-driver/bson"

	"wayfarer/database/repository/facade"
	reviewRepo "wayfarer/database/repository/review"
	"wayfarer/models"
	"wayfarer/utils"
)

const (
	minBodyLen = 10
	maxBodyLen = 500
)

// DefaultService implements Service.
type DefaultService struct {
	Repo   reviewRepo.Repository
	Events Publisher
}

// NewService creates the review service.
func NewService(repo reviewRepo.Repository, events Publisher) Service {
	return &DefaultService{Repo: repo, Events: events}
}

// validateBody checks the free-text length bounds.
func validateBody(body string) error {
	if len(body) < minBodyLen || len(body) > maxBodyLen {
		return utils.NewBadRequest("review must be between %d and %d characters", minBodyLen, maxBodyLen)
	}
	return nil
}

// validateRating bounds the rating and rounds it to one decimal digit.
func validateRating(rating float64) (float64, error) {
	rounded := math.Round(rating*10) / 10
	if rounded < 1 || rounded > 5 {
		return 0, utils.NewBadRequest("rating must be between 1.0 and 5.0")
	}
	return rounded, nil
}

// Create persists a new review for the given parent and publishes
// ReviewCommitted. At most one review may exist per (user, parent).
func (s *DefaultService) Create(userID string, parent models.ParentRef, body string, rating float64) (*models.Review, error) {
	if !parent.Valid() {
		return nil, utils.NewBadRequest("please specify either a tour or attraction")
	}
	if err := validateBody(body); err != nil {
		return nil, err
	}
	rating, err := validateRating(rating)
	if err != nil {
		return nil, err
	}

	exists, err := s.Repo.ExistsForUserAndParent(userID, parent)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, utils.NewConflict("you have already reviewed this %s, use update instead", parent.Kind)
	}

	rev, err := s.Repo.Create(&models.Review{
		Review: body,
		Rating: rating,
		Parent: parent,
		User:   userID,
	})
	if err != nil {
		return nil, err
	}

	s.Events.ReviewCommitted(rev.Parent)
	return rev, nil
}

func (s *DefaultService) GetByID(id string) (*models.Review, error) {
	return s.Repo.GetByID(id)
}

func (s *DefaultService) Query(filter map[string]string, opts facade.QueryOptions) (*facade.Page[models.Review], error) {
	return s.Repo.Query(filter, opts)
}

// Update mutates the review body and/or rating. Only the original reviewer
// may update; the parent reference is immutable. The parent aggregate is
// recomputed afterwards.
func (s *DefaultService) Update(userID, reviewID string, input UpdateInput) (*models.Review, error) {
	existing, err := s.Repo.GetByID(reviewID)
	if err != nil {
		return nil, err
	}
	if existing.User != userID {
		return nil, utils.NewForbidden("you are not the original reviewer")
	}

	patch := bson.M{}
	if input.Review != nil {
		if err := validateBody(*input.Review); err != nil {
			return nil, err
		}
		patch["review"] = *input.Review
	}
	if input.Rating != nil {
		rating, err := validateRating(*input.Rating)
		if err != nil {
			return nil, err
		}
		patch["rating"] = rating
	}
	if len(patch) == 0 {
		return nil, utils.NewBadRequest("must provide at least one field to update")
	}

	updated, err := s.Repo.Update(reviewID, patch)
	if err != nil {
		return nil, err
	}

	s.Events.ReviewCommitted(updated.Parent)
	return updated, nil
}

// Delete removes the review and publishes ReviewRemoved against the parent
// reference captured before the delete (once deleted, the parent link is gone).
func (s *DefaultService) Delete(userID, reviewID string) error {
	existing, err := s.Repo.GetByID(reviewID)
	if err != nil {
		return err
	}
	if existing.User != userID {
		return utils.NewForbidden("only the original reviewer can delete a review")
	}

	parent := existing.Parent
	if _, err := s.Repo.Delete(reviewID); err != nil {
		return err
	}

	s.Events.ReviewRemoved(parent)
	return nil
}
