package auth

import (
	"strings"
	"testing"
	"time"
)

func TestJWTManager_GenerateAndValidate_Success(t *testing.T) {
	secret := "test-secret-at-least-32-chars-long-for-security"
	issuer := "kenchi-test"
	ttl := 15 * time.Minute

	manager := NewJWTManager(secret, issuer, ttl)
	userID := int64(42)

	token, err := manager.GenerateAccessToken(userID)
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	validatedID, err := manager.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken failed: %v", err)
	}
	if validatedID != userID {
		t.Errorf("expected userID %d, got %d", userID, validatedID)
	}
}

func TestJWTManager_ValidateAccessToken_Expired(t *testing.T) {
	secret := "test-secret-at-least-32-chars-long-for-security"
	issuer := "kenchi-test"
	ttl := -1 * time.Hour // Already expired

	manager := NewJWTManager(secret, issuer, ttl)

	token, err := manager.GenerateAccessToken(42)
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	// Should fail validation due to expiry
	_, err = manager.ValidateAccessToken(token)
	if err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
}

func TestJWTManager_ValidateAccessToken_WrongSecret(t *testing.T) {
	issuer := "kenchi-test"
	ttl := 15 * time.Minute

	managerA := NewJWTManager("secret-a-is-at-least-32-characters-long", issuer, ttl)
	managerB := NewJWTManager("secret-b-is-at-least-32-characters-long", issuer, ttl)

	token, err := managerA.GenerateAccessToken(42)
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	_, err = managerB.ValidateAccessToken(token)
	if err == nil {
		t.Fatal("expected error for token signed with different secret, got nil")
	}
}

func TestJWTManager_ValidateAccessToken_WrongIssuer(t *testing.T) {
	secret := "test-secret-at-least-32-chars-long-for-security"
	ttl := 15 * time.Minute

	managerA := NewJWTManager(secret, "issuer-a", ttl)
	managerB := NewJWTManager(secret, "issuer-b", ttl)

	token, err := managerA.GenerateAccessToken(42)
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	_, err = managerB.ValidateAccessToken(token)
	if err == nil {
		t.Fatal("expected error for wrong issuer, got nil")
	}
	if !strings.Contains(err.Error(), "issuer") {
		t.Errorf("expected issuer error, got: %v", err)
	}
}

func TestJWTManager_ValidateAccessToken_Garbage(t *testing.T) {
	secret := "test-secret-at-least-32-chars-long-for-security"
	manager := NewJWTManager(secret, "kenchi-test", 15*time.Minute)

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := manager.ValidateAccessToken(token); err == nil {
			t.Errorf("expected error for token %q, got nil", token)
		}
	}
}
