package password_test

import (
	"errors"
	"testing"

	"comfort/shared/password"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("admin123")
	if err != nil {
		t.Fatalf("Hash() returned error: %v", err)
	}

	if hash == "admin123" {
		t.Error("expected hash to differ from plaintext")
	}

	if err := password.Verify("admin123", hash); err != nil {
		t.Errorf("expected matching password to verify, got %v", err)
	}

	if err := password.Verify("wrong-password", hash); !errors.Is(err, password.ErrInvalidPassword) {
		t.Errorf("expected ErrInvalidPassword for mismatch, got %v", err)
	}
}

func TestHash_EmptyPassword(t *testing.T) {
	if _, err := password.Hash(""); err == nil {
		t.Error("expected empty password to fail")
	}
}

func TestVerify_EmptyInputs(t *testing.T) {
	if err := password.Verify("", "some-hash"); !errors.Is(err, password.ErrInvalidPassword) {
		t.Errorf("expected ErrInvalidPassword for empty password, got %v", err)
	}

	if err := password.Verify("secret", ""); !errors.Is(err, password.ErrInvalidPassword) {
		t.Errorf("expected ErrInvalidPassword for empty hash, got %v", err)
	}
}
