package auth

import (
	"errors"
	"testing"
	"time"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("TestPass123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if hash == "TestPass123" {
		t.Fatal("hash equals plaintext")
	}
	if !CheckPassword(hash, "TestPass123") {
		t.Fatal("hash does not verify")
	}
	if CheckPassword(hash, "WrongPass123") {
		t.Fatal("wrong password verified")
	}
}

func TestGeneratePassword(t *testing.T) {
	first, err := GeneratePassword()
	if err != nil {
		t.Fatalf("GeneratePassword: %v", err)
	}
	if len(first) < MinPasswordLength {
		t.Fatalf("generated password too short: %d", len(first))
	}

	second, err := GeneratePassword()
	if err != nil {
		t.Fatalf("GeneratePassword: %v", err)
	}
	if first == second {
		t.Fatal("two generated passwords are identical")
	}
}

func TestJWTRoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)

	token, err := manager.Generate(42, "test@test.com")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	userID, err := manager.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if userID != 42 {
		t.Fatalf("userID = %d, want 42", userID)
	}
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTManager("right-secret", time.Hour).Generate(42, "test@test.com")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := NewJWTManager("wrong-secret", time.Hour).Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestJWTRejectsExpiredToken(t *testing.T) {
	manager := NewJWTManager("test-secret", -time.Minute)

	token, err := manager.Generate(42, "test@test.com")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := manager.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestJWTRejectsGarbage(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)

	if _, err := manager.Validate("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}
