package history

import (
	"fmt"
	"time"

	"github.com/anisan-cli/anidex/anilist"
)

// Kind tells what sort of record an entry points to.
type Kind string

const (
	KindMedia     Kind = "media"
	KindCharacter Kind = "character"
)

// Entry is a record the user opened.
type Entry struct {
	Kind     Kind      `json:"kind"`
	ID       int       `json:"id"`
	Title    string    `json:"title"`
	URL      string    `json:"url"`
	Opened   int       `json:"opened"`
	OpenedAt time.Time `json:"opened_at"`
}

func (e *Entry) encode() string {
	return fmt.Sprintf("%s:%d", e.Kind, e.ID)
}

func (e *Entry) String() string {
	return fmt.Sprintf("%s (%s)", e.Title, e.Kind)
}

// FromMedia builds an entry for a media.
func FromMedia(m *anilist.Media) *Entry {
	return &Entry{Kind: KindMedia, ID: m.ID, Title: m.Name(), URL: m.URL()}
}

// FromCharacter builds an entry for a character.
func FromCharacter(c *anilist.Character) *Entry {
	return &Entry{Kind: KindCharacter, ID: c.ID, Title: c.Name.Full, URL: c.URL()}
}
