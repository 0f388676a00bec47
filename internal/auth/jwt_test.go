package auth

import (
	"testing"

	"github.com/google/uuid"
)

func TestTokenRoundTrip(t *testing.T) {
	sessionID := uuid.NewString()

	token, err := GenerateToken(sessionID)
	if err != nil {
		t.Fatalf("GenerateToken() failed: %v", err)
	}
	if token == "" {
		t.Fatalf("GenerateToken() returned an empty token")
	}

	got, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() failed: %v", err)
	}
	if got != sessionID {
		t.Fatalf("expected session %q, got %q", sessionID, got)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	if _, err := ValidateToken("not.a.token"); err == nil {
		t.Fatalf("expected an error for a malformed token")
	}
	if _, err := ValidateToken(""); err == nil {
		t.Fatalf("expected an error for an empty token")
	}
}

func TestSecretIsReadAtUseNotInit(t *testing.T) {
	// main loads .env after this package initializes, so the secret must be
	// resolved when tokens are minted, not when the package loads.
	t.Setenv("JWT_SECRET_KEY", "operator-configured-secret")

	token, err := GenerateToken("session-lazy")
	if err != nil {
		t.Fatalf("GenerateToken() failed: %v", err)
	}
	if _, err := ValidateToken(token); err != nil {
		t.Fatalf("token does not verify under the configured secret: %v", err)
	}

	// A token minted under one secret must not verify under another; in
	// particular, nothing may still be signed with the hardcoded fallback.
	t.Setenv("JWT_SECRET_KEY", "a-different-secret")
	if _, err := ValidateToken(token); err == nil {
		t.Fatalf("token still verifies after the secret changed")
	}
}

func TestValidateTokenRejectsTamperedToken(t *testing.T) {
	token, err := GenerateToken(uuid.NewString())
	if err != nil {
		t.Fatalf("GenerateToken() failed: %v", err)
	}

	tampered := token + "xx"
	if _, err := ValidateToken(tampered); err == nil {
		t.Fatalf("expected an error for a tampered signature")
	}
}
