package utils

import (
	"strings"
	"testing"
)

func TestHashPassword_Success(t *testing.T) {
	hash, err := HashPassword("s3cr3t-passw0rd")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if hash == "" {
		t.Fatal("expected non-empty hash")
	}
	if hash == "s3cr3t-passw0rd" {
		t.Error("hash must not equal the plaintext password")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("expected bcrypt hash prefix, got %q", hash)
	}
}

func TestHashPassword_Empty(t *testing.T) {
	if _, err := HashPassword(""); err == nil {
		t.Error("expected error for empty password, got nil")
	}
}

func TestHashPassword_TooLong(t *testing.T) {
	// bcrypt rejects inputs longer than 72 bytes
	if _, err := HashPassword(strings.Repeat("a", 73)); err == nil {
		t.Error("expected error for password over 72 bytes, got nil")
	}
}

func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	first, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	second, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if first == second {
		t.Error("expected different hashes for the same password due to random salt")
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct-password")
	if err != nil {
		t.Fatalf("hashing test password: %v", err)
	}

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
	}{
		{name: "matching password", password: "correct-password", hash: hash, want: true},
		{name: "wrong password", password: "wrong-password", hash: hash, want: false},
		{name: "empty password", password: "", hash: hash, want: false},
		{name: "malformed hash", password: "correct-password", hash: "not-a-bcrypt-hash", want: false},
		{name: "empty hash", password: "correct-password", hash: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckPassword(tt.password, tt.hash); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
