package password_test

import (
	"resort/shared/password"
	"testing"
)

func TestHashAndVerify(t *testing.T) {
	hashed, err := password.Hash("s3cret-passw0rd")
	if err != nil {
		t.Fatalf("unexpected error hashing password: %v", err)
	}

	if hashed == "s3cret-passw0rd" {
		t.Fatal("expected hash to differ from plain text")
	}

	if err := password.Verify("s3cret-passw0rd", hashed); err != nil {
		t.Errorf("expected password to verify, got %v", err)
	}

	if err := password.Verify("wrong-password", hashed); err == nil {
		t.Error("expected wrong password to fail verification")
	}
}
