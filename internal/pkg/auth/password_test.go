package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("S3cret!pass")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "S3cret!pass" {
		t.Fatal("hash equals the plaintext password")
	}

	if !CheckPassword(hash, "S3cret!pass") {
		t.Error("CheckPassword() = false for the correct password")
	}
	if CheckPassword(hash, "wrong-password") {
		t.Error("CheckPassword() = true for a wrong password")
	}
}
