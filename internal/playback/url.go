// Package playback builds external playback URLs and hands them to a launcher.
// The playback service itself is opaque: nothing here checks that a title is
// actually available.
package playback

import (
	"strconv"

	"cinefront/internal/httputil"
	"cinefront/internal/media"
)

// DefaultBase is the embed endpoint of the playback service.
const DefaultBase = "https://vidsrc.cc/v2/embed"

// URL returns the playback URL for a movie or series. Series always start at
// season 1, episode 1. Kinds other than movie and series yield "".
func URL(base string, kind media.Kind, id int) string {
	switch kind {
	case media.Movie:
		return httputil.BuildURL(orDefault(base), "movie", strconv.Itoa(id))
	case media.Series:
		return EpisodeURL(base, id, 1, 1)
	default:
		return ""
	}
}

// EpisodeURL returns the playback URL for a specific series episode.
func EpisodeURL(base string, id, season, episode int) string {
	return httputil.BuildURL(orDefault(base), "tv",
		strconv.Itoa(id), strconv.Itoa(season), strconv.Itoa(episode))
}

func orDefault(base string) string {
	if base == "" {
		return DefaultBase
	}
	return base
}
