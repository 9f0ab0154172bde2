// Package credentials provides secure storage for CRM connection tokens used
// by the samu CLI. Tokens are stored in ~/.samu/credentials.yaml with
// encryption for sensitive data at rest.
//
// Encryption Key Storage:
// The encryption key is stored securely using the system keyring:
// - macOS: Keychain
// - Windows: Credential Manager
// - Linux: Secret Service (libsecret)
//
// For CI/testing environments, set SAMU_ENCRYPTION_KEY to a 64-character
// hex string (32 bytes).
package credentials

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Credential storage constants.
const (
	DefaultCredentialsDir  = ".samu"
	DefaultCredentialsFile = "credentials.yaml"
)

// Provider identifies a supported CRM.
type Provider string

const (
	ProviderHubSpot Provider = "hubspot"
	ProviderZoho    Provider = "zoho"
)

// IsValid reports whether the provider is one of the supported CRMs.
func (p Provider) IsValid() bool {
	return p == ProviderHubSpot || p == ProviderZoho
}

// Common errors.
var (
	// ErrNoCredentials is returned when no credentials are stored.
	ErrNoCredentials = errors.New("no credentials stored")
	// ErrNotConnected is returned when the requested provider has no stored connection.
	ErrNotConnected = errors.New("provider not connected")
	// ErrUnknownProvider is returned for providers the CLI does not support.
	ErrUnknownProvider = errors.New("unknown CRM provider")
	// ErrEncryptionFailed is returned when encryption/decryption fails.
	ErrEncryptionFailed = errors.New("encryption failed")
)

// Connection holds the stored credentials for one CRM provider.
type Connection struct {
	// Provider is the CRM this connection belongs to.
	Provider Provider `yaml:"provider"`
	// Token is the API token (encrypted at rest).
	Token string `yaml:"token"`
	// Account is an optional account or portal identifier for display.
	Account string `yaml:"account,omitempty"`
	// ConnectedAt is when the connection was first established.
	ConnectedAt time.Time `yaml:"connected_at"`
}

// credentialsFile is the on-disk layout.
type credentialsFile struct {
	Connections map[Provider]*Connection `yaml:"connections"`
	LastUpdated time.Time                `yaml:"last_updated"`
}

// Store manages credential storage operations.
type Store struct {
	credentialsDir string
	encryptionKey  []byte
	keyProvider    KeyProvider
}

// NewStore creates a new credential store with default settings.
// It uses the system keyring (macOS Keychain, Windows Credential Manager,
// or Linux Secret Service) to store the encryption key securely.
func NewStore() (*Store, error) {
	keyProvider, err := GetDefaultKeyProvider()
	if err != nil {
		return nil, fmt.Errorf("initializing key provider: %w", err)
	}
	return NewStoreWithKeyProvider(keyProvider)
}

// NewStoreWithKeyProvider creates a new credential store with a custom key
// provider. This is primarily used for testing.
func NewStoreWithKeyProvider(keyProvider KeyProvider) (*Store, error) {
	dir, err := CredentialsDir()
	if err != nil {
		return nil, fmt.Errorf("getting credentials directory: %w", err)
	}

	key, err := keyProvider.GetKey()
	if err != nil {
		return nil, fmt.Errorf("getting encryption key: %w", err)
	}

	return &Store{
		credentialsDir: dir,
		encryptionKey:  key,
		keyProvider:    keyProvider,
	}, nil
}

// CredentialsDir returns the credentials directory path.
// Uses $SAMU_CONFIG_DIR if set, otherwise ~/.samu
func CredentialsDir() (string, error) {
	if dir := os.Getenv("SAMU_CONFIG_DIR"); dir != "" {
		return dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}

	return filepath.Join(home, DefaultCredentialsDir), nil
}

// CredentialsPath returns the full path to the credentials file.
func CredentialsPath() (string, error) {
	dir, err := CredentialsDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DefaultCredentialsFile), nil
}

// Connect stores the connection for a provider, replacing any existing one.
func (s *Store) Connect(conn *Connection) error {
	if !conn.Provider.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownProvider, conn.Provider)
	}
	if conn.Token == "" {
		return errors.New("token is required")
	}

	file, err := s.loadFile()
	if err != nil && !errors.Is(err, ErrNoCredentials) {
		return err
	}
	if file == nil {
		file = &credentialsFile{Connections: make(map[Provider]*Connection)}
	}

	stored := *conn
	if stored.ConnectedAt.IsZero() {
		stored.ConnectedAt = time.Now()
	}
	encrypted, err := s.encrypt(stored.Token)
	if err != nil {
		return fmt.Errorf("encrypting token: %w", err)
	}
	stored.Token = encrypted
	file.Connections[conn.Provider] = &stored

	return s.saveFile(file)
}

// Get returns the decrypted connection for a provider.
// The SAMU_<PROVIDER>_TOKEN environment variable overrides stored credentials.
func (s *Store) Get(provider Provider) (*Connection, error) {
	if !provider.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, provider)
	}

	envVar := "SAMU_" + strings.ToUpper(string(provider)) + "_TOKEN"
	if token := os.Getenv(envVar); token != "" {
		return &Connection{Provider: provider, Token: token}, nil
	}

	file, err := s.loadFile()
	if err != nil {
		return nil, err
	}

	conn, ok := file.Connections[provider]
	if !ok {
		return nil, fmt.Errorf("%s: %w", provider, ErrNotConnected)
	}

	decrypted, err := s.decrypt(conn.Token)
	if err != nil {
		return nil, fmt.Errorf("decrypting token for %s: %w", provider, err)
	}

	out := *conn
	out.Token = decrypted
	return &out, nil
}

// List returns all stored connections with tokens left encrypted. Use Get to
// obtain a usable token.
func (s *Store) List() ([]*Connection, error) {
	file, err := s.loadFile()
	if errors.Is(err, ErrNoCredentials) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	out := make([]*Connection, 0, len(file.Connections))
	for _, p := range []Provider{ProviderHubSpot, ProviderZoho} {
		if conn, ok := file.Connections[p]; ok {
			out = append(out, conn)
		}
	}
	return out, nil
}

// Disconnect removes the stored connection for a provider.
func (s *Store) Disconnect(provider Provider) error {
	if !provider.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownProvider, provider)
	}

	file, err := s.loadFile()
	if errors.Is(err, ErrNoCredentials) {
		return fmt.Errorf("%s: %w", provider, ErrNotConnected)
	}
	if err != nil {
		return err
	}

	if _, ok := file.Connections[provider]; !ok {
		return fmt.Errorf("%s: %w", provider, ErrNotConnected)
	}
	delete(file.Connections, provider)

	if len(file.Connections) == 0 {
		credPath := filepath.Join(s.credentialsDir, DefaultCredentialsFile)
		if err := os.Remove(credPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing credentials file: %w", err)
		}
		return nil
	}

	return s.saveFile(file)
}

// Exists checks if a credentials file exists.
func (s *Store) Exists() bool {
	credPath := filepath.Join(s.credentialsDir, DefaultCredentialsFile)
	_, err := os.Stat(credPath)
	return err == nil
}

func (s *Store) loadFile() (*credentialsFile, error) {
	credPath := filepath.Join(s.credentialsDir, DefaultCredentialsFile)

	data, err := os.ReadFile(credPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoCredentials
		}
		return nil, fmt.Errorf("reading credentials file: %w", err)
	}

	var file credentialsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing credentials: %w", err)
	}
	if file.Connections == nil {
		file.Connections = make(map[Provider]*Connection)
	}
	return &file, nil
}

func (s *Store) saveFile(file *credentialsFile) error {
	if err := os.MkdirAll(s.credentialsDir, 0700); err != nil {
		return fmt.Errorf("creating credentials directory: %w", err)
	}

	file.LastUpdated = time.Now()

	data, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("marshaling credentials: %w", err)
	}

	credPath := filepath.Join(s.credentialsDir, DefaultCredentialsFile)
	if err := os.WriteFile(credPath, data, 0600); err != nil {
		return fmt.Errorf("writing credentials file: %w", err)
	}

	return nil
}

// encrypt encrypts a string using AES-GCM.
func (s *Store) encrypt(plaintext string) (string, error) {
	block, err := aes.NewCipher(s.encryptionKey)
	if err != nil {
		return "", fmt.Errorf("%w: creating cipher: %v", ErrEncryptionFailed, err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("%w: creating GCM: %v", ErrEncryptionFailed, err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("%w: generating nonce: %v", ErrEncryptionFailed, err)
	}

	ciphertext := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// decrypt decrypts an AES-GCM encrypted string.
func (s *Store) decrypt(ciphertext string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: decoding base64: %v", ErrEncryptionFailed, err)
	}

	block, err := aes.NewCipher(s.encryptionKey)
	if err != nil {
		return "", fmt.Errorf("%w: creating cipher: %v", ErrEncryptionFailed, err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("%w: creating GCM: %v", ErrEncryptionFailed, err)
	}

	nonceSize := gcm.NonceSize()
	if len(data) < nonceSize {
		return "", fmt.Errorf("%w: ciphertext too short", ErrEncryptionFailed)
	}

	nonce, ciphertextBytes := data[:nonceSize], data[nonceSize:]
	plaintext, err := gcm.Open(nil, nonce, ciphertextBytes, nil)
	if err != nil {
		return "", fmt.Errorf("%w: decryption failed: %v", ErrEncryptionFailed, err)
	}

	return string(plaintext), nil
}

// MaskToken returns a masked token with first/last few characters visible.
func MaskToken(token string) string {
	if len(token) <= 12 {
		return strings.Repeat("*", len(token))
	}
	return token[:4] + strings.Repeat("*", 8) + "..." + token[len(token)-4:]
}
