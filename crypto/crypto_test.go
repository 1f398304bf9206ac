// SPDX-License-Identifier: GPL-3.0-only

package crypto

import (
	"strings"
	"testing"
)

func TestHashKey(t *testing.T) {
	crypto := NewCrypto()
	key := "ck_0123456789abcdef0123456789abcdef"

	hash, err := crypto.HashKey(key)
	if err != nil {
		t.Fatalf("HashKey failed: %v", err)
	}
	if hash == "" {
		t.Error("Hash should not be empty")
	}

	hash2, err := crypto.HashKey(key)
	if err != nil {
		t.Fatalf("Second HashKey failed: %v", err)
	}
	if hash == hash2 {
		t.Error("Two hashes of same key should be different (due to salt)")
	}
}

func TestVerifyKey(t *testing.T) {
	crypto := NewCrypto()
	key := "ck_0123456789abcdef0123456789abcdef"
	wrongKey := "ck_ffffffffffffffffffffffffffffffff"

	hash, err := crypto.HashKey(key)
	if err != nil {
		t.Fatalf("HashKey failed: %v", err)
	}

	if err := crypto.VerifyKey(key, hash); err != nil {
		t.Errorf("VerifyKey failed for correct key: %v", err)
	}
	if err := crypto.VerifyKey(wrongKey, hash); err == nil {
		t.Error("VerifyKey should fail for wrong key")
	}
	if err := crypto.VerifyKey(key, "invalid-hash"); err == nil {
		t.Error("VerifyKey should fail for invalid hash")
	}
}

func TestGenerateRandomString(t *testing.T) {
	first, err := GenerateRandomString("ck_", 16, "hex")
	if err != nil {
		t.Fatalf("GenerateRandomString failed: %v", err)
	}
	if !strings.HasPrefix(first, "ck_") {
		t.Errorf("Expected ck_ prefix, got %s", first)
	}
	if len(first) != 3+32 {
		t.Errorf("Expected 16 hex-encoded bytes after the prefix, got %d chars", len(first)-3)
	}

	second, err := GenerateRandomString("ck_", 16, "hex")
	if err != nil {
		t.Fatalf("GenerateRandomString failed: %v", err)
	}
	if first == second {
		t.Error("Expected two random strings to differ")
	}

	if _, err := GenerateRandomString("ck_", 16, "base32"); err == nil {
		t.Error("Expected unsupported encoding to fail")
	}
}
