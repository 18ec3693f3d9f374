package password

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestSHA256(t *testing.T) {
	h := SHA256{}

	hash, err := h.Hash("secret")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	// sha256("secret")
	if hash != "2bb80d537b1da3e38bd30361aa855686bde0eacd7162fef6a25fe97bf527a25b" {
		t.Errorf("unexpected digest %s", hash)
	}
	if !h.Verify(hash, "secret") {
		t.Error("expected password to verify")
	}
	if h.Verify(hash, "Secret") {
		t.Error("wrong password verified")
	}

	t.Run("unsalted hashes collide across users", func(t *testing.T) {
		a, _ := h.Hash("hunter2")
		b, _ := h.Hash("hunter2")
		if a != b {
			t.Error("expected identical hashes for identical passwords")
		}
	})
}

func TestBcrypt(t *testing.T) {
	h := Bcrypt{Cost: bcrypt.MinCost}

	a, err := h.Hash("hunter2")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	b, _ := h.Hash("hunter2")
	if a == b {
		t.Error("bcrypt hashes should be salted")
	}
	if !strings.HasPrefix(a, "$2a$") {
		t.Errorf("unexpected hash format %s", a)
	}
	if !h.Verify(a, "hunter2") || h.Verify(a, "hunter3") {
		t.Error("verify mismatch")
	}
}

func TestNewHasher(t *testing.T) {
	for scheme, want := range map[string]string{"sha256": "password.SHA256", "": "password.SHA256", "bcrypt": "password.Bcrypt"} {
		h, err := NewHasher(scheme)
		if err != nil {
			t.Fatalf("NewHasher(%q): %v", scheme, err)
		}
		switch h.(type) {
		case SHA256:
			if want != "password.SHA256" {
				t.Errorf("scheme %q gave SHA256", scheme)
			}
		case Bcrypt:
			if want != "password.Bcrypt" {
				t.Errorf("scheme %q gave Bcrypt", scheme)
			}
		}
	}
	if _, err := NewHasher("md5"); err == nil {
		t.Error("expected error for unknown scheme")
	}
}
