package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("S3cure!pass")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "S3cure!pass" {
		t.Fatal("password must not be stored in plaintext")
	}

	if !CheckPassword(hash, "S3cure!pass") {
		t.Error("expected correct password to verify")
	}
	if CheckPassword(hash, "wrong-password") {
		t.Error("expected wrong password to fail verification")
	}
}
