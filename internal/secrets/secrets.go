// Package secrets encrypts account credential fields at rest using fernet
// tokens. Encryption is optional: an Encryptor built without a key passes
// values through untouched, which keeps local single-user setups friction
// free while still protecting shared deployments.
package secrets

import (
	"fmt"

	"github.com/fernet/fernet-go"
)

// Encryptor encrypts and decrypts short credential strings.
type Encryptor struct {
	keys []*fernet.Key
}

// New creates an Encryptor from a base64 fernet key. An empty key returns a
// pass-through Encryptor.
func New(key string) (*Encryptor, error) {
	if key == "" {
		return &Encryptor{}, nil
	}

	k, err := fernet.DecodeKey(key)
	if err != nil {
		return nil, fmt.Errorf("failed to decode secret key: %w", err)
	}

	return &Encryptor{keys: []*fernet.Key{k}}, nil
}

// GenerateKey returns a fresh base64 fernet key suitable for LEDGERLY_SECRET_KEY.
func GenerateKey() (string, error) {
	var k fernet.Key
	if err := k.Generate(); err != nil {
		return "", fmt.Errorf("failed to generate key: %w", err)
	}
	return k.Encode(), nil
}

// Enabled reports whether values are actually encrypted.
func (e *Encryptor) Enabled() bool {
	return len(e.keys) > 0
}

// Encrypt returns the fernet token for value. Empty values and pass-through
// Encryptors return the input unchanged.
func (e *Encryptor) Encrypt(value string) (string, error) {
	if value == "" || !e.Enabled() {
		return value, nil
	}

	token, err := fernet.EncryptAndSign([]byte(value), e.keys[0])
	if err != nil {
		return "", fmt.Errorf("failed to encrypt credential: %w", err)
	}

	return string(token), nil
}

// Decrypt reverses Encrypt. Values that are not valid tokens are returned
// unchanged, so rows written before encryption was enabled stay readable.
func (e *Encryptor) Decrypt(value string) string {
	if value == "" || !e.Enabled() {
		return value
	}

	plain := fernet.VerifyAndDecrypt([]byte(value), 0, e.keys)
	if plain == nil {
		return value
	}

	return string(plain)
}
