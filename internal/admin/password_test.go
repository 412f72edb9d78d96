package admin

import "testing"

func TestPasswordHashAndVerify(t *testing.T) {
	hash, err := HashPassword("correct-horse-battery")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "correct-horse-battery" {
		t.Fatalf("hash must not equal plaintext")
	}
	if !VerifyPassword("correct-horse-battery", hash) {
		t.Fatalf("expected verify to succeed")
	}
	if VerifyPassword("wrong-password-123", hash) {
		t.Fatalf("expected verify to fail for wrong password")
	}
}

func TestHashPasswordRejectsShort(t *testing.T) {
	if _, err := HashPassword(""); err == nil {
		t.Fatalf("expected error for empty password")
	}
	if _, err := HashPassword("short"); err == nil {
		t.Fatalf("expected error for short password")
	}
}

func TestHashPasswordSalted(t *testing.T) {
	h1, err := HashPassword("correct-horse-battery")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	h2, err := HashPassword("correct-horse-battery")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("expected distinct hashes for same password")
	}
}

func TestVerifyPasswordEmptyInputs(t *testing.T) {
	hash, err := HashPassword("correct-horse-battery")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if VerifyPassword("", hash) {
		t.Fatalf("expected empty password rejected")
	}
	if VerifyPassword("correct-horse-battery", "") {
		t.Fatalf("expected empty hash rejected")
	}
}
