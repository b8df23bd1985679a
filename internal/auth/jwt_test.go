package auth

import (
	"strings"
	"testing"
	"time"
)

func TestJWTManager_GenerateAndValidate_Success(t *testing.T) {
	secret := "test-secret-at-least-32-chars-long-for-security"
	issuer := "sondage-test"

	manager := NewJWTManager(secret, issuer, SessionTTL)

	token, err := manager.GenerateSessionToken("alice@example.org")
	if err != nil {
		t.Fatalf("GenerateSessionToken failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	email, err := manager.ValidateSessionToken(token)
	if err != nil {
		t.Fatalf("ValidateSessionToken failed: %v", err)
	}
	if email != "alice@example.org" {
		t.Errorf("expected email alice@example.org, got %q", email)
	}
}

func TestJWTManager_ValidateSessionToken_Expired(t *testing.T) {
	secret := "test-secret-at-least-32-chars-long-for-security"
	issuer := "sondage-test"
	ttl := -1 * time.Hour // Already expired

	manager := NewJWTManager(secret, issuer, ttl)

	token, err := manager.GenerateSessionToken("alice@example.org")
	if err != nil {
		t.Fatalf("GenerateSessionToken failed: %v", err)
	}

	// Should fail validation due to expiry
	_, err = manager.ValidateSessionToken(token)
	if err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
	if !strings.Contains(err.Error(), "expired") && !strings.Contains(err.Error(), "parse token") {
		t.Errorf("expected expiry-related error, got: %v", err)
	}
}

func TestJWTManager_ValidateSessionToken_InvalidSignature(t *testing.T) {
	secret1 := "test-secret-at-least-32-chars-long-for-security"
	secret2 := "different-secret-32-chars-long-for-security!!"
	issuer := "sondage-test"

	manager1 := NewJWTManager(secret1, issuer, SessionTTL)
	manager2 := NewJWTManager(secret2, issuer, SessionTTL)

	// Generate with manager1
	token, err := manager1.GenerateSessionToken("alice@example.org")
	if err != nil {
		t.Fatalf("GenerateSessionToken failed: %v", err)
	}

	// Validate with manager2 (different secret)
	_, err = manager2.ValidateSessionToken(token)
	if err == nil {
		t.Fatal("expected error for invalid signature, got nil")
	}
}

func TestJWTManager_ValidateSessionToken_Malformed(t *testing.T) {
	secret := "test-secret-at-least-32-chars-long-for-security"
	issuer := "sondage-test"

	manager := NewJWTManager(secret, issuer, SessionTTL)

	malformedTokens := []string{
		"not.a.jwt",
		"invalid-token",
		"header.payload", // Missing signature
	}

	for _, token := range malformedTokens {
		_, err := manager.ValidateSessionToken(token)
		if err == nil {
			t.Errorf("expected error for malformed token %q, got nil", token)
		}
	}
}

func TestJWTManager_ValidateSessionToken_WrongIssuer(t *testing.T) {
	secret := "test-secret-at-least-32-chars-long-for-security"
	issuer1 := "sondage-test"
	issuer2 := "wrong-issuer"

	manager1 := NewJWTManager(secret, issuer1, SessionTTL)
	manager2 := NewJWTManager(secret, issuer2, SessionTTL)

	// Generate with manager1 (issuer1)
	token, err := manager1.GenerateSessionToken("alice@example.org")
	if err != nil {
		t.Fatalf("GenerateSessionToken failed: %v", err)
	}

	// Validate with manager2 (issuer2)
	_, err = manager2.ValidateSessionToken(token)
	if err == nil {
		t.Fatal("expected error for wrong issuer, got nil")
	}
	if !strings.Contains(err.Error(), "invalid issuer") {
		t.Errorf("expected 'invalid issuer' error, got: %v", err)
	}
}

func TestJWTManager_ValidateSessionToken_EmptyString(t *testing.T) {
	secret := "test-secret-at-least-32-chars-long-for-security"
	issuer := "sondage-test"

	manager := NewJWTManager(secret, issuer, SessionTTL)

	_, err := manager.ValidateSessionToken("")
	if err == nil {
		t.Fatal("expected error for empty token, got nil")
	}
	if !strings.Contains(err.Error(), "empty") {
		t.Errorf("expected 'empty' error, got: %v", err)
	}
}
