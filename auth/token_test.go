package auth

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	tok, err := GenerateToken("secret", 42, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	id, err := ParseToken("secret", tok)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if id != 42 {
		t.Errorf("ParseToken returned user %d, want 42", id)
	}
}

func TestParseToken_Invalid(t *testing.T) {
	tok, err := GenerateToken("secret", 1, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	tests := []struct {
		name   string
		secret string
		token  string
	}{
		{"wrong secret", "other", tok},
		{"garbage", "secret", "not-a-token"},
		{"empty", "secret", ""},
	}
	for _, tt := range tests {
		if _, err := ParseToken(tt.secret, tt.token); err == nil {
			t.Errorf("%s: expected error, got nil", tt.name)
		}
	}
}

func TestParseToken_Expired(t *testing.T) {
	tok, err := GenerateToken("secret", 7, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ParseToken("secret", tok); err == nil {
		t.Error("expected error for expired token")
	}
}
