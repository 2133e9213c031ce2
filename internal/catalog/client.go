// Package catalog provides a client for TheMovieDB API that normalizes
// responses into media.Record values and absorbs every failure into an
// empty result.
package catalog

import (
	"log/slog"
	"net/http"
	"strings"

	"cinefront/internal/httputil"
)

const (
	DefaultBaseURL              = "https://api.themoviedb.org/3"
	DefaultImageBaseURL         = "https://image.tmdb.org/t/p/w500"
	DefaultOriginalImageBaseURL = "https://image.tmdb.org/t/p/original"
	DefaultTrendingWindow       = "week"
)

// HTTPDoer is an interface for making HTTP requests.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client is a TMDB API client.
type Client struct {
	apiKey               string
	baseURL              string
	imageBaseURL         string
	originalImageBaseURL string
	trendingWindow       string
	httpClient           HTTPDoer
	log                  *slog.Logger
}

// NewClient creates a new TMDB API client.
func NewClient(apiKey string, opts ...Option) *Client {
	client := &Client{
		apiKey:               apiKey,
		baseURL:              DefaultBaseURL,
		imageBaseURL:         DefaultImageBaseURL,
		originalImageBaseURL: DefaultOriginalImageBaseURL,
		trendingWindow:       DefaultTrendingWindow,
		httpClient:           httputil.NewClient(httputil.DefaultTimeout),
		log:                  slog.Default(),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c HTTPDoer) Option {
	return func(client *Client) {
		if c != nil {
			client.httpClient = c
		}
	}
}

// WithBaseURL sets a custom base URL for the TMDB API.
func WithBaseURL(base string) Option {
	return func(client *Client) {
		if base != "" {
			client.baseURL = strings.TrimSuffix(base, "/")
		}
	}
}

// WithImageBaseURL sets the thumbnail-tier image CDN base URL.
func WithImageBaseURL(base string) Option {
	return func(client *Client) {
		if base != "" {
			client.imageBaseURL = strings.TrimSuffix(base, "/")
		}
	}
}

// WithOriginalImageBaseURL sets the full-resolution image CDN base URL.
func WithOriginalImageBaseURL(base string) Option {
	return func(client *Client) {
		if base != "" {
			client.originalImageBaseURL = strings.TrimSuffix(base, "/")
		}
	}
}

// WithTrendingWindow sets the trending time window ("day" or "week").
func WithTrendingWindow(window string) Option {
	return func(client *Client) {
		if window != "" {
			client.trendingWindow = window
		}
	}
}

// WithLogger sets the logger used for absorbed request failures.
func WithLogger(l *slog.Logger) Option {
	return func(client *Client) {
		if l != nil {
			client.log = l
		}
	}
}

// ImageURL returns the thumbnail-tier URL for a relative poster or backdrop path.
func (c *Client) ImageURL(path string) string {
	if path == "" {
		return ""
	}
	return c.imageBaseURL + path
}

// OriginalImageURL returns the full-resolution URL for a relative image path.
func (c *Client) OriginalImageURL(path string) string {
	if path == "" {
		return ""
	}
	return c.originalImageBaseURL + path
}

// ImageBaseURL returns the thumbnail-tier base URL.
func (c *Client) ImageBaseURL() string {
	return c.imageBaseURL
}
