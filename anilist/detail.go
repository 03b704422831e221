// Package anilist provides a client for the Anilist GraphQL API.
package anilist

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned when Anilist has no record with the requested id.
var ErrNotFound = errors.New("anilist: record not found")

// MediaByID returns the full details of a media, served from the disk cache when fresh.
func (c *Client) MediaByID(ctx context.Context, id int) (*Media, error) {
	if media, ok := mediaCacher.Get(id).Get(); ok {
		return media, nil
	}

	var data struct {
		Media *Media `json:"Media"`
	}
	if err := c.Do(ctx, mediaDetailsQuery, variables{"id": id}, &data); err != nil {
		return nil, fmt.Errorf("media %d: %w", id, err)
	}
	if data.Media == nil {
		return nil, fmt.Errorf("media %d: %w", id, ErrNotFound)
	}

	if err := mediaCacher.Set(id, data.Media); err != nil {
		c.logger.WithError(err).Warn("caching media details")
	}
	return data.Media, nil
}

// CharacterByID returns the full details of a character, served from the disk cache when fresh.
func (c *Client) CharacterByID(ctx context.Context, id int) (*Character, error) {
	if character, ok := characterCacher.Get(id).Get(); ok {
		return character, nil
	}

	var data struct {
		Character *Character `json:"Character"`
	}
	if err := c.Do(ctx, characterDetailsQuery, variables{"id": id}, &data); err != nil {
		return nil, fmt.Errorf("character %d: %w", id, err)
	}
	if data.Character == nil {
		return nil, fmt.Errorf("character %d: %w", id, ErrNotFound)
	}

	if err := characterCacher.Set(id, data.Character); err != nil {
		c.logger.WithError(err).Warn("caching character details")
	}
	return data.Character, nil
}
