// Package auth provides a high-level API for persisting and retrieving user credentials from the system keyring.
package auth

import (
	"errors"
	"strings"

	"github.com/anisan-cli/anidex/constant"
	"github.com/zalando/go-keyring"
)

const user = "anilist-token"

// ErrEmptyToken is returned when saving a blank token.
var ErrEmptyToken = errors.New("token cannot be empty")

// SetToken persists the Anilist bearer token to the system keyring.
func SetToken(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}
	return keyring.Set(constant.Anidex, user, token)
}

// GetToken retrieves the Anilist bearer token from the system keyring.
func GetToken() (string, error) {
	return keyring.Get(constant.Anidex, user)
}

// DeleteToken removes the Anilist bearer token from the system keyring.
// Removing a missing token is not an error.
func DeleteToken() error {
	if err := keyring.Delete(constant.Anidex, user); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return err
	}
	return nil
}
