package portal

import "testing"

func TestPasswordHashAndCompare(t *testing.T) {
	pw, err := NewPassword("super-secret")

	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	if pw.GetHash() == "" || pw.GetHash() == "super-secret" {
		t.Fatalf("expected a non-empty bcrypt hash")
	}

	if !pw.Is("super-secret") {
		t.Fatalf("expected the original password to match")
	}

	if pw.Is("guess") {
		t.Fatalf("expected a wrong password to fail")
	}
}

func TestPasswordFromHashRoundTrip(t *testing.T) {
	pw, err := NewPassword("super-secret")

	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	// The login path rebuilds the comparator from the stored hash.
	restored := PasswordFromHash(pw.GetHash())

	if !restored.Is("super-secret") {
		t.Fatalf("expected the stored hash to verify the password")
	}

	if restored.Is("guess") {
		t.Fatalf("expected a wrong password to fail against the stored hash")
	}
}
