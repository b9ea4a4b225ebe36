package utils

import (
	"testing"
)

func TestHashAndCheckPassphrase(t *testing.T) {
	hash, err := HashPassphrase("correct horse battery")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	if !CheckPassphrase("correct horse battery", hash) {
		t.Error("correct passphrase rejected")
	}
	if CheckPassphrase("wrong", hash) {
		t.Error("wrong passphrase accepted")
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateAccessToken("vault-owner")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	subject, err := ParseAccessToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if subject != "vault-owner" {
		t.Errorf("subject = %q, want %q", subject, "vault-owner")
	}
}

func TestParseAccessTokenRejectsTampering(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateAccessToken("vault-owner")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := ParseAccessToken(token + "x"); err == nil {
		t.Error("tampered token accepted")
	}

	t.Setenv("JWT_SECRET", "different-secret")
	if _, err := ParseAccessToken(token); err == nil {
		t.Error("token signed with another secret accepted")
	}
}

func TestTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := GenerateAccessToken("vault-owner"); err == nil {
		t.Error("expected an error without JWT_SECRET")
	}
}
