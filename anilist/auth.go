// Package anilist provides a client for the Anilist GraphQL API.
package anilist

import (
	"errors"

	"github.com/anisan-cli/anidex/auth"
	"github.com/anisan-cli/anidex/log"
	"github.com/zalando/go-keyring"
)

// TokenSource yields a bearer token, reporting false when none is available.
type TokenSource func() (string, bool)

// StaticToken always yields token.
func StaticToken(token string) TokenSource {
	return func() (string, bool) { return token, token != "" }
}

// KeyringToken yields the token stored with "anidex auth set".
func KeyringToken() (string, bool) {
	token, err := auth.GetToken()
	if err != nil {
		if !errors.Is(err, keyring.ErrNotFound) {
			log.Warnf("reading anilist token: %v", err)
		}
		return "", false
	}
	return token, token != ""
}
