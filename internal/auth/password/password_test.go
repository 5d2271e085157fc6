package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	h, err := Hash("pw123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if h == "pw123" {
		t.Fatalf("hash must not equal the plaintext")
	}
	if !Verify("pw123", h) {
		t.Fatalf("expected correct password to verify")
	}
	if Verify("pw124", h) {
		t.Fatalf("wrong password must not verify")
	}
}

func TestHashIsSalted(t *testing.T) {
	a, _ := Hash("pw123")
	b, _ := Hash("pw123")
	if a == b {
		t.Fatalf("two hashes of the same password must differ")
	}
}

func TestEmptyPasswordRejected(t *testing.T) {
	if _, err := Hash("  "); err == nil {
		t.Fatalf("expected error for blank password")
	}
}
