package catalog

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"cinefront/internal/media"
)

// Filter describes a discovery query against /discover/{movie|tv}.
type Filter struct {
	Kind             media.Kind
	Genres           []int
	OriginalLanguage string
	SortBy           string
}

// AnimeFilter is the fixed home-screen discovery query: popular Japanese animation series.
var AnimeFilter = Filter{
	Kind:             media.Series,
	Genres:           []int{16},
	OriginalLanguage: "ja",
	SortBy:           "popularity.desc",
}

// Params returns the filter as discover query parameters.
func (f Filter) Params() url.Values {
	params := url.Values{}
	if len(f.Genres) > 0 {
		ids := make([]string, len(f.Genres))
		for i, g := range f.Genres {
			ids[i] = strconv.Itoa(g)
		}
		params.Set("with_genres", strings.Join(ids, ","))
	}
	if f.OriginalLanguage != "" {
		params.Set("with_original_language", f.OriginalLanguage)
	}
	if f.SortBy != "" {
		params.Set("sort_by", f.SortBy)
	}
	return params
}

// Trending returns the trending movies or series for the configured window.
func (c *Client) Trending(ctx context.Context, kind media.Kind) []media.Record {
	if !kind.IsMedia() {
		c.log.Warn("catalog request skipped", "op", "trending", "kind", kind.String())
		return []media.Record{}
	}
	path := fmt.Sprintf("/trending/%s/%s", kind.Path(), c.trendingWindow)
	return c.fetchList(ctx, "trending", path, nil, kind)
}

// CurrentlyAvailable returns now-playing movies or series airing today.
func (c *Client) CurrentlyAvailable(ctx context.Context, kind media.Kind) []media.Record {
	var path string
	switch kind {
	case media.Movie:
		path = "/movie/now_playing"
	case media.Series:
		path = "/tv/airing_today"
	default:
		c.log.Warn("catalog request skipped", "op", "currently_available", "kind", kind.String())
		return []media.Record{}
	}
	return c.fetchList(ctx, "currently_available", path, nil, kind)
}

// Category runs a genre/language filtered discovery query.
func (c *Client) Category(ctx context.Context, filter Filter) []media.Record {
	if !filter.Kind.IsMedia() {
		c.log.Warn("catalog request skipped", "op", "category", "kind", filter.Kind.String())
		return []media.Record{}
	}
	path := "/discover/" + filter.Kind.Path()
	return c.fetchList(ctx, "category", path, filter.Params(), filter.Kind)
}

// Search performs a multi-kind search. Results may include persons and other
// non-media entities (kind media.Other); callers filter them out.
func (c *Client) Search(ctx context.Context, query string) []media.Record {
	params := url.Values{}
	params.Set("query", query)
	return c.fetchList(ctx, "search", "/search/multi", params, media.Other)
}
