package catalog

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"wayfarer/models"
)

func TestValidateTourPricing(t *testing.T) {
	if err := validateTourPricing(497, 99); err != nil {
		t.Errorf("discount below price: %v", err)
	}
	if err := validateTourPricing(497, 0); err != nil {
		t.Errorf("no discount: %v", err)
	}
	if err := validateTourPricing(497, 497); err == nil {
		t.Error("discount equal to price must be rejected")
	}
	if err := validateTourPricing(497, 600); err == nil {
		t.Error("discount above price must be rejected")
	}
}

func TestEffectivePricing(t *testing.T) {
	existing := &models.Tour{Price: 497, PriceDiscount: 99}

	tests := []struct {
		name         string
		patch        bson.M
		price        float64
		discount     float64
		wantRejected bool
	}{
		{"price lowered under stored discount", bson.M{"price": 50.0}, 50, 99, true},
		{"price lowered above stored discount", bson.M{"price": 200.0}, 200, 99, false},
		{"discount raised above stored price", bson.M{"priceDiscount": 600.0}, 497, 600, true},
		{"both patched consistently", bson.M{"price": 300.0, "priceDiscount": 250.0}, 300, 250, false},
		{"both patched inverted", bson.M{"price": 100.0, "priceDiscount": 150.0}, 100, 150, true},
		{"discount cleared", bson.M{"priceDiscount": 0.0}, 497, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			price, discount := effectivePricing(existing, tc.patch)
			if price != tc.price || discount != tc.discount {
				t.Fatalf("got (%v, %v), want (%v, %v)", price, discount, tc.price, tc.discount)
			}
			err := validateTourPricing(price, discount)
			if tc.wantRejected && err == nil {
				t.Error("expected pricing invariant violation")
			}
			if !tc.wantRejected && err != nil {
				t.Errorf("unexpected rejection: %v", err)
			}
		})
	}
}
