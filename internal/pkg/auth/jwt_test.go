package auth

import (
	"errors"
	"testing"
	"time"
)

func newTestJWTService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret-key-for-unit-testing",
		TokenExp:    exp,
		TokenIssuer: "acadesk-test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	s := newTestJWTService(time.Hour)

	token, err := s.GenerateToken(42)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := s.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("expected UserID 42, got %d", claims.UserID)
	}
	if claims.Issuer != "acadesk-test" {
		t.Errorf("expected issuer acadesk-test, got %s", claims.Issuer)
	}
	if claims.ID == "" {
		t.Error("expected a JTI on the token")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	s := newTestJWTService(-time.Minute)

	token, err := s.GenerateToken(42)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := s.ValidateToken(token); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("expected ErrExpiredToken, got %v", err)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	s := newTestJWTService(time.Hour)
	token, err := s.GenerateToken(42)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	other := NewJWTService(JWTConfig{SecretKey: "a-different-secret", TokenExp: time.Hour})
	if _, err := other.ValidateToken(token); err == nil {
		t.Error("expected validation to fail with a different secret")
	}
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	if err != nil {
		t.Fatalf("ExtractBearerToken failed: %v", err)
	}
	if token != "abc.def.ghi" {
		t.Errorf("expected abc.def.ghi, got %s", token)
	}

	if _, err := ExtractBearerToken(""); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("expected ErrInvalidFormat for empty header, got %v", err)
	}
	if _, err := ExtractBearerToken("Basic abc"); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("expected ErrInvalidFormat for non-bearer header, got %v", err)
	}
}
