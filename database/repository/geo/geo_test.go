package geo

import (
	"math"
	"net/http"
	"testing"

	"wayfarer/utils"
)

func TestParseLatLng(t *testing.T) {
	lat, lng, err := ParseLatLng("34.111745,-118.113491")
	if err != nil {
		t.Fatalf("ParseLatLng returned error: %v", err)
	}
	if lat != 34.111745 || lng != -118.113491 {
		t.Fatalf("ParseLatLng = (%v, %v)", lat, lng)
	}

	lat, lng, err = ParseLatLng("10, 10")
	if err != nil {
		t.Fatalf("ParseLatLng with space returned error: %v", err)
	}
	if lat != 10 || lng != 10 {
		t.Fatalf("ParseLatLng = (%v, %v)", lat, lng)
	}
}

func TestParseLatLngMalformed(t *testing.T) {
	for _, bad := range []string{"", "10", "10,", ",10", "a,b", "10,10,10"} {
		_, _, err := ParseLatLng(bad)
		if err == nil {
			t.Errorf("ParseLatLng(%q) expected error", bad)
			continue
		}
		if !utils.IsStatus(err, http.StatusBadRequest) {
			t.Errorf("ParseLatLng(%q) expected BadRequest, got %v", bad, err)
		}
	}
}

func TestRadius(t *testing.T) {
	if got := Radius(233, "mi"); math.Abs(got-233/3963.2) > 1e-12 {
		t.Errorf("Radius(233, mi) = %v", got)
	}
	if got := Radius(233, "km"); math.Abs(got-233/6378.1) > 1e-12 {
		t.Errorf("Radius(233, km) = %v", got)
	}
	// Unknown unit is treated as km.
	if Radius(100, "") != Radius(100, "km") {
		t.Error("expected blank unit to behave as km")
	}
	if got := Radius(0, "km"); got != 0 {
		t.Errorf("Radius(0) = %v, want 0", got)
	}
}

func TestMultiplier(t *testing.T) {
	if got := Multiplier("mi"); got != 0.000621371 {
		t.Errorf("Multiplier(mi) = %v", got)
	}
	if got := Multiplier("km"); got != 0.001 {
		t.Errorf("Multiplier(km) = %v", got)
	}
	if got := Multiplier("furlongs"); got != 0.001 {
		t.Errorf("Multiplier(furlongs) = %v, want km fallback", got)
	}
}
