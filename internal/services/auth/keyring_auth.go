package auth

import (
	"errors"

	"github.com/zalando/go-keyring"
)

type KeyringStore struct {
	serviceName string
}

func NewKeyringStore(serviceName string) *KeyringStore {
	if serviceName == "" {
		serviceName = ServiceName
	}
	return &KeyringStore{serviceName: serviceName}
}

func (k *KeyringStore) SetToken(dataCenter string, token string) error {
	key := NormalizeDataCenter(dataCenter)
	return keyring.Set(k.serviceName, key, token)
}

func (k *KeyringStore) GetToken(dataCenter string) (string, error) {
	key := NormalizeDataCenter(dataCenter)
	token, err := keyring.Get(k.serviceName, key)
	if err == nil {
		return token, nil
	}
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrTokenNotFound
	}
	return "", err
}

func (k *KeyringStore) DeleteToken(dataCenter string) error {
	key := NormalizeDataCenter(dataCenter)
	err := keyring.Delete(k.serviceName, key)
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrTokenNotFound
	}
	return err
}
