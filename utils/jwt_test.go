package utils

import (
	"testing"
	"time"

	"wayfarer/config"
)

func TestGenerateAndValidateToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	tokenString, err := GenerateToken("user-123", "traveler@example.com", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	token, err := ValidateToken(tokenString)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if !token.Valid {
		t.Fatal("expected token to be valid")
	}

	sub, err := ExtractIDFromToken(tokenString)
	if err != nil {
		t.Fatalf("ExtractIDFromToken returned error: %v", err)
	}
	if sub != "user-123" {
		t.Fatalf("expected subject user-123, got %s", sub)
	}
}

func TestValidateTokenRejectsTampered(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	tokenString, err := GenerateToken("user-123", "traveler@example.com", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	config.AppConfig.JWTSecret = "other-secret"
	if _, err := ExtractIDFromToken(tokenString); err == nil {
		t.Fatal("expected validation to fail with a different secret")
	}
}

func TestHashTokenDeterministic(t *testing.T) {
	a := HashToken("some-token")
	b := HashToken("some-token")
	if a != b {
		t.Fatal("expected identical hashes for the same token")
	}
	if a == HashToken("other-token") {
		t.Fatal("expected different hashes for different tokens")
	}
	if len(a) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(a))
	}
}
