// Package media defines shared types for the cinefront application.
package media

import "strings"

// Kind represents whether a catalog entity is a movie, a TV series or
// something else (persons, collections) returned by multi-kind search.
type Kind int

const (
	Movie Kind = iota
	Series
	Other
)

func (k Kind) String() string {
	switch k {
	case Movie:
		return "movie"
	case Series:
		return "series"
	default:
		return "other"
	}
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Path returns the catalog path segment for the kind ("movie" or "tv").
func (k Kind) Path() string {
	switch k {
	case Movie:
		return "movie"
	case Series:
		return "tv"
	default:
		return ""
	}
}

// IsMedia reports whether the kind is a playable movie or series.
func (k Kind) IsMedia() bool {
	return k == Movie || k == Series
}

// ParseKind maps user or catalog spellings to a Kind.
// Unknown values map to Other.
func ParseKind(s string) Kind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "movie", "movies", "film", "films":
		return Movie
	case "tv", "series", "show", "shows":
		return Series
	default:
		return Other
	}
}

// Record is a normalized catalog entity, created per request and never persisted.
type Record struct {
	ID           int
	Kind         Kind
	Title        string  // title for movies, name for series
	PosterPath   string  // relative CDN path, empty when the catalog has no poster
	BackdropPath string  // relative CDN path
	Date         string  // release or first-air date (YYYY-MM-DD), empty = to be announced
	Rating       float64 // average vote in [0,10], zero when the catalog omits it
	Language     string  // original language code, e.g. "en"
	Overview     string
	Runtime      int // minutes (movies only)
	Seasons      int // season count (series only)
}

// HasPoster reports whether the record can be rendered as a card.
func (r Record) HasPoster() bool {
	return r.PosterPath != ""
}
