package catalog

import (
	"go.mongodb.org/mongo-driver/bson"

	"wayfarer/database/repository/facade"
	"wayfarer/models"
	"wayfarer/utils"
)

func validateTourPricing(price, discount float64) error {
	if discount != 0 && discount >= price {
		return utils.NewBadRequest("discount price (%v) should be below regular price", discount)
	}
	return nil
}

// effectivePricing resolves the price and discount a tour would carry after
// applying patch on top of its stored fields.
func effectivePricing(existing *models.Tour, patch bson.M) (price, discount float64) {
	price = existing.Price
	if p, ok := patch["price"].(float64); ok {
		price = p
	}
	discount = existing.PriceDiscount
	if d, ok := patch["priceDiscount"].(float64); ok {
		discount = d
	}
	return price, discount
}

// CreateTour validates required fields and invariants, seeds the default
// rating aggregate and persists a new tour.
func (s *DefaultService) CreateTour(tour *models.Tour) (*models.Tour, error) {
	if tour.Name == "" {
		return nil, utils.NewBadRequest("a tour must have a name")
	}
	if tour.Attraction == "" {
		return nil, utils.NewBadRequest("please specify an attraction")
	}
	if tour.Difficulty != "" && !models.ValidDifficulty(tour.Difficulty) {
		return nil, utils.NewBadRequest("difficulty is either: easy, medium, or difficult")
	}
	if err := validateTourPricing(tour.Price, tour.PriceDiscount); err != nil {
		return nil, err
	}
	if len(tour.Location.Coordinates) == 2 {
		tour.Location.Type = "Point"
	}
	tour.RatingsAverage = 4.5
	tour.RatingsQuantity = 0
	return facade.CreateOne(s.Repo.Tours, tour)
}

func (s *DefaultService) GetTours(filter map[string]string, opts facade.QueryOptions) (*facade.Page[models.Tour], error) {
	return facade.QueryAll[models.Tour](s.Repo.Tours, filter, opts)
}

// GetTourByID expands the owned reviews into the result.
func (s *DefaultService) GetTourByID(id string) (*models.Tour, error) {
	return facade.GetDocByID[*models.Tour](s.Repo.Tours, id,
		facade.Lookup{From: "reviews", LocalField: "id", ForeignField: "parent.id", As: "reviews"},
	)
}

func (s *DefaultService) GetTourBySlug(slug string) (*models.Tour, error) {
	return facade.GetDocBySlug[*models.Tour](s.Repo.Tours, slug)
}

// UpdateTour re-validates the difficulty enum and pricing invariant for any
// of those fields present in the patch.
func (s *DefaultService) UpdateTour(id string, patch bson.M) (*models.Tour, error) {
	patch = scrubPatch(patch)

	if difficulty, ok := patch["difficulty"].(string); ok && !models.ValidDifficulty(difficulty) {
		return nil, utils.NewBadRequest("difficulty is either: easy, medium, or difficult")
	}

	// Lowering the price can break the invariant against a stored discount
	// just as a raised discount can, so either field in the patch triggers
	// the check against the merged state.
	_, pricePatched := patch["price"]
	_, discountPatched := patch["priceDiscount"]
	if pricePatched || discountPatched {
		existing, err := facade.GetDocByID[*models.Tour](s.Repo.Tours, id)
		if err != nil {
			return nil, err
		}
		if err := validateTourPricing(effectivePricing(existing, patch)); err != nil {
			return nil, err
		}
	}

	return facade.UpdateDocByID[*models.Tour](s.Repo.Tours, id, patch)
}

func (s *DefaultService) DeleteTour(id string) (*models.Tour, error) {
	return facade.DeleteDocByID[*models.Tour](s.Repo.Tours, id)
}
