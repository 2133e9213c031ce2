package catalog

import (
	"cinefront/internal/media"
)

type listResponse struct {
	Results []rawRecord `json:"results"`
}

// rawRecord is the wire shape shared by list items and detail payloads.
// Unknown fields are ignored and missing ones decode as zero values.
type rawRecord struct {
	ID               int     `json:"id"`
	MediaType        string  `json:"media_type"`
	Title            string  `json:"title"`
	Name             string  `json:"name"`
	PosterPath       string  `json:"poster_path"`
	BackdropPath     string  `json:"backdrop_path"`
	ReleaseDate      string  `json:"release_date"`
	FirstAirDate     string  `json:"first_air_date"`
	VoteAverage      float64 `json:"vote_average"`
	OriginalLanguage string  `json:"original_language"`
	Overview         string  `json:"overview"`
	Runtime          int     `json:"runtime"`
	NumberOfSeasons  int     `json:"number_of_seasons"`
}

// normalize converts a wire record into a media.Record. When the payload has
// no media_type the kind implied by the endpoint is used.
func (r rawRecord) normalize(fallback media.Kind) media.Record {
	kind := fallback
	if r.MediaType != "" {
		kind = media.ParseKind(r.MediaType)
	}

	title := r.Title
	if title == "" {
		title = r.Name
	}

	date := r.ReleaseDate
	if date == "" {
		date = r.FirstAirDate
	}

	return media.Record{
		ID:           r.ID,
		Kind:         kind,
		Title:        title,
		PosterPath:   r.PosterPath,
		BackdropPath: r.BackdropPath,
		Date:         date,
		Rating:       r.VoteAverage,
		Language:     r.OriginalLanguage,
		Overview:     r.Overview,
		Runtime:      r.Runtime,
		Seasons:      r.NumberOfSeasons,
	}
}
