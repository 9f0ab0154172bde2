package credentials

import (
	"bytes"
	"strings"
	"testing"
)

func TestEnvKeyProvider_GetKey(t *testing.T) {
	t.Setenv("TEST_KEY", testEncryptionKey)

	provider := NewEnvKeyProvider("TEST_KEY")
	key, err := provider.GetKey()
	if err != nil {
		t.Fatalf("GetKey() error = %v", err)
	}
	if len(key) != keyLength {
		t.Errorf("GetKey() returned %d bytes, want %d", len(key), keyLength)
	}
}

func TestEnvKeyProvider_Errors(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"unset", ""},
		{"not_hex", "zzzz"},
		{"wrong_length", "deadbeef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_KEY", tt.value)
			provider := NewEnvKeyProvider("TEST_KEY")
			if _, err := provider.GetKey(); err == nil {
				t.Error("GetKey() expected error")
			}
		})
	}
}

func TestEnvKeyProvider_ResetKeyNotSupported(t *testing.T) {
	provider := NewEnvKeyProvider("TEST_KEY")
	if _, err := provider.ResetKey(); err == nil {
		t.Error("ResetKey() expected error for env-based keys")
	}
}

func TestPassphraseKeyProvider_Deterministic(t *testing.T) {
	salt := []byte("0123456789abcdef")

	first, err := NewPassphraseKeyProvider("correct horse battery staple", salt).GetKey()
	if err != nil {
		t.Fatalf("GetKey() error = %v", err)
	}
	second, err := NewPassphraseKeyProvider("correct horse battery staple", salt).GetKey()
	if err != nil {
		t.Fatalf("GetKey() error = %v", err)
	}

	if len(first) != keyLength {
		t.Errorf("GetKey() returned %d bytes, want %d", len(first), keyLength)
	}
	if !bytes.Equal(first, second) {
		t.Error("same passphrase and salt produced different keys")
	}

	other, err := NewPassphraseKeyProvider("different passphrase", salt).GetKey()
	if err != nil {
		t.Fatalf("GetKey() error = %v", err)
	}
	if bytes.Equal(first, other) {
		t.Error("different passphrases produced the same key")
	}
}

func TestPassphraseKeyProvider_Validation(t *testing.T) {
	if _, err := NewPassphraseKeyProvider("", []byte("salt")).GetKey(); err == nil {
		t.Error("GetKey() expected error for empty passphrase")
	}
	if _, err := NewPassphraseKeyProvider("pass", nil).GetKey(); err == nil {
		t.Error("GetKey() expected error for missing salt")
	}
}

func TestGenerateSalt(t *testing.T) {
	salt, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt() error = %v", err)
	}
	if len(salt) != 16 {
		t.Errorf("GenerateSalt() returned %d bytes, want 16", len(salt))
	}

	other, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt() error = %v", err)
	}
	if bytes.Equal(salt, other) {
		t.Error("GenerateSalt() returned the same salt twice")
	}
}

func TestGetDefaultKeyProvider_EnvPriority(t *testing.T) {
	t.Setenv("SAMU_ENCRYPTION_KEY", testEncryptionKey)

	provider, err := GetDefaultKeyProvider()
	if err != nil {
		t.Fatalf("GetDefaultKeyProvider() error = %v", err)
	}
	if !strings.Contains(provider.Description(), "SAMU_ENCRYPTION_KEY") {
		t.Errorf("Description() = %q, want the env provider", provider.Description())
	}
}
