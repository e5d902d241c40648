package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHash(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)
	password := "securePassword123"

	hash, err := hasher.Hash(password)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if hash == "" {
		t.Error("expected non-empty hash")
	}

	if hash == password {
		t.Error("hash should not equal plaintext password")
	}
}

func TestHash_DifferentHashes(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)
	password := "securePassword123"

	hash1, err := hasher.Hash(password)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	hash2, err := hasher.Hash(password)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if hash1 == hash2 {
		t.Error("same password should produce different hashes due to salt")
	}
}

func TestNewPasswordHasher_InvalidCost(t *testing.T) {
	hasher := NewPasswordHasher(0)
	if hasher.cost != bcrypt.DefaultCost {
		t.Errorf("expected default cost %d, got %d", bcrypt.DefaultCost, hasher.cost)
	}

	hasher = NewPasswordHasher(100)
	if hasher.cost != bcrypt.DefaultCost {
		t.Errorf("expected default cost %d, got %d", bcrypt.DefaultCost, hasher.cost)
	}
}

func TestCheck_Correct(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)
	password := "securePassword123"

	hash, err := hasher.Hash(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	err = hasher.Check(hash, password)
	if err != nil {
		t.Errorf("expected correct password to match, got error: %v", err)
	}
}

func TestCheck_Incorrect(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)
	password := "securePassword123"
	wrongPassword := "wrongPassword456"

	hash, err := hasher.Hash(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	err = hasher.Check(hash, wrongPassword)
	if err == nil {
		t.Error("expected error for incorrect password")
	}
}

func TestCheck_EmptyPassword(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("securePassword123")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	err = hasher.Check(hash, "")
	if err == nil {
		t.Error("expected error for empty password")
	}
}

func TestCheck_InvalidHash(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	err := hasher.Check("not-a-valid-bcrypt-hash", "password")
	if err == nil {
		t.Error("expected error for invalid hash format")
	}
}
