package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "correct-horse" {
		t.Fatal("hash equals the plaintext")
	}

	if !CheckPassword(hash, "correct-horse") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "battery-staple") {
		t.Error("wrong password accepted")
	}
	if CheckPassword("not-a-bcrypt-hash", "correct-horse") {
		t.Error("malformed hash accepted")
	}
}

func TestHashesAreSalted(t *testing.T) {
	first, err := HashPassword("same-password")
	if err != nil {
		t.Fatal(err)
	}
	second, err := HashPassword("same-password")
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Error("two hashes of the same password are identical")
	}
}
