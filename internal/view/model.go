// Package view turns catalog records into renderable view models and
// orchestrates the fetches behind each screen.
//
// The package never talks to a UI toolkit directly: everything visible goes
// through the Host interface, so the pipeline runs headless in tests.
package view

import "cinefront/internal/media"

// Region names a display region of the host UI.
type Region string

const (
	RegionTrendingMovies Region = "trending-movies"
	RegionTrendingSeries Region = "trending-tv"
	RegionLatestMovies   Region = "latest-movies"
	RegionLatestSeries   Region = "latest-tv"
	RegionPopularAnime   Region = "popular-anime"
	RegionSearchResults  Region = "search-results"

	// Visibility-only regions.
	RegionSearchSection Region = "search-results-section"
	RegionContent       Region = "content-section"
	RegionLoading       Region = "loading-screen"
)

// HomeRegions lists the home-screen list regions in display order.
var HomeRegions = []Region{
	RegionTrendingMovies,
	RegionTrendingSeries,
	RegionLatestMovies,
	RegionLatestSeries,
	RegionPopularAnime,
}

// Fixed user-facing strings.
const (
	NoContent          = "No content available"
	NoOverview         = "No overview available."
	DetailsErrorNotice = "Error loading media details. Please try again."
	NotAvailable       = "N/A"
	ToBeAnnounced      = "TBA"
)

// Card is the list projection of a catalog record. Cards are only built for
// records that have a poster.
type Card struct {
	ID        int        `json:"id"`
	Kind      media.Kind `json:"kind"`
	Title     string     `json:"title"`
	PosterURL string     `json:"poster_url,omitempty"` // thumbnail tier
	Year      string     `json:"year"`                 // "2014" or "TBA"
	Rating    string     `json:"rating"`               // "8.7" or "N/A"
	Label     string     `json:"label"`                // upper-cased original language for movies, "TV Show" for series
}

// Detail is the projection shown in the details view.
type Detail struct {
	Card
	Overview string `json:"overview"`
	Duration string `json:"duration"` // "2h 28m" for movies, "5 Seasons" for series
}
