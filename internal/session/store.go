package session

import (
	"errors"

	"github.com/mkuznetsova/habitadm/internal/keyring"
)

// ErrNoToken is returned by a TokenStore when nothing is persisted.
var ErrNoToken = errors.New("no persisted token")

// TokenStore persists the admin bearer token across runs.
type TokenStore interface {
	Get() (string, error)
	Set(token string) error
	Delete() error
}

// KeyringStore persists the token in the OS keyring under a fixed key.
type KeyringStore struct{}

func (KeyringStore) Get() (string, error) {
	token, err := keyring.GetToken()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNoToken
		}
		return "", err
	}
	return token, nil
}

func (KeyringStore) Set(token string) error {
	return keyring.SetToken(token)
}

func (KeyringStore) Delete() error {
	err := keyring.DeleteToken()
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}

// MemoryStore is an in-process TokenStore used in tests.
type MemoryStore struct {
	token string
}

func (s *MemoryStore) Get() (string, error) {
	if s.token == "" {
		return "", ErrNoToken
	}
	return s.token, nil
}

func (s *MemoryStore) Set(token string) error {
	s.token = token
	return nil
}

func (s *MemoryStore) Delete() error {
	s.token = ""
	return nil
}
