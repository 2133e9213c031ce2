package view

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/sourcegraph/conc"

	"cinefront/internal/catalog"
	"cinefront/internal/media"
	"cinefront/internal/playback"
)

// Projector orchestrates catalog fetches for each screen and renders the
// resulting view models into host regions. It owns the screen State.
type Projector struct {
	catalog      Catalog
	host         Host
	nav          Navigator
	themes       ThemeStore
	imageBase    string
	playbackBase string
	discover     catalog.Filter
	defaultTheme string
	log          *slog.Logger
	state        *State

	// mu pairs a selection change with the host call that shows it.
	mu sync.Mutex
}

// Option is a functional option for configuring the Projector.
type Option func(*Projector)

// WithNavigator sets where playback URLs are opened.
func WithNavigator(nav Navigator) Option {
	return func(p *Projector) { p.nav = nav }
}

// WithThemeStore sets the theme persistence.
func WithThemeStore(store ThemeStore) Option {
	return func(p *Projector) { p.themes = store }
}

// WithImageBaseURL sets the thumbnail-tier image base used for poster URLs.
func WithImageBaseURL(base string) Option {
	return func(p *Projector) {
		if base != "" {
			p.imageBase = base
		}
	}
}

// WithPlaybackBase sets the playback service embed base URL.
func WithPlaybackBase(base string) Option {
	return func(p *Projector) {
		if base != "" {
			p.playbackBase = base
		}
	}
}

// WithDiscoverFilter replaces the home-screen discovery query.
func WithDiscoverFilter(f catalog.Filter) Option {
	return func(p *Projector) { p.discover = f }
}

// WithDefaultTheme sets the theme used when the store holds none.
// Unknown theme names are ignored.
func WithDefaultTheme(theme string) Option {
	return func(p *Projector) {
		if ValidTheme(theme) {
			p.defaultTheme = theme
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Projector) {
		if l != nil {
			p.log = l
		}
	}
}

// NewProjector creates a projector rendering into host.
func NewProjector(c Catalog, host Host, opts ...Option) *Projector {
	p := &Projector{
		catalog:      c,
		host:         host,
		imageBase:    catalog.DefaultImageBaseURL,
		playbackBase: playback.DefaultBase,
		discover:     catalog.AnimeFilter,
		defaultTheme: ThemeDark,
		log:          slog.Default(),
		state:        NewState(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// State returns the projector's screen state.
func (p *Projector) State() *State {
	return p.state
}

// LoadHome fetches the five home-screen lists concurrently, waits for all of
// them, then renders each into its own region. A failed fetch only affects
// its own region, which shows the placeholder.
func (p *Projector) LoadHome(ctx context.Context) {
	p.host.SetVisible(RegionLoading, true)
	defer p.host.SetVisible(RegionLoading, false)

	sections := []struct {
		region Region
		fetch  func(context.Context) []media.Record
	}{
		{RegionTrendingMovies, func(ctx context.Context) []media.Record { return p.catalog.Trending(ctx, media.Movie) }},
		{RegionTrendingSeries, func(ctx context.Context) []media.Record { return p.catalog.Trending(ctx, media.Series) }},
		{RegionLatestMovies, func(ctx context.Context) []media.Record { return p.catalog.CurrentlyAvailable(ctx, media.Movie) }},
		{RegionLatestSeries, func(ctx context.Context) []media.Record { return p.catalog.CurrentlyAvailable(ctx, media.Series) }},
		{RegionPopularAnime, func(ctx context.Context) []media.Record { return p.catalog.Category(ctx, p.discover) }},
	}

	results := make([][]media.Record, len(sections))
	var wg conc.WaitGroup
	for i, section := range sections {
		wg.Go(func() {
			results[i] = section.fetch(ctx)
		})
	}
	wg.Wait()

	for i, section := range sections {
		p.RenderList(ProjectCards(results[i], p.imageBase), section.region)
	}
	p.log.Debug("home loaded", "sections", len(sections))
}

// Search runs a multi-kind search and shows the results in place of the
// default content. Blank queries are ignored.
func (p *Projector) Search(ctx context.Context, query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}

	p.host.SetVisible(RegionLoading, true)
	defer p.host.SetVisible(RegionLoading, false)

	records := p.catalog.Search(ctx, query)
	cards := make([]Card, 0, len(records))
	for _, record := range records {
		if !record.Kind.IsMedia() {
			continue
		}
		if card, ok := ProjectCard(record, p.imageBase); ok {
			cards = append(cards, card)
		}
	}
	p.log.Debug("search", "query", query, "results", len(records), "cards", len(cards))

	p.RenderList(cards, RegionSearchResults)
	p.host.SetVisible(RegionSearchSection, true)
	p.host.SetVisible(RegionContent, false)
}

// ClearSearch returns to the default content and empties both search inputs.
func (p *Projector) ClearSearch() {
	p.host.SetVisible(RegionSearchSection, false)
	p.host.SetVisible(RegionContent, true)
	p.host.ClearSearchInputs()
}

// OpenDetails looks up one record and presents it as the current selection.
// When the lookup fails a notice is shown and the selection is left as is.
//
// Concurrent calls are not sequenced: whichever lookup completes last wins.
func (p *Projector) OpenDetails(ctx context.Context, id int, kind media.Kind) {
	p.host.SetVisible(RegionLoading, true)
	defer p.host.SetVisible(RegionLoading, false)

	record, ok := p.catalog.Details(ctx, id, kind)
	if !ok {
		p.host.Notify(DetailsErrorNotice)
		return
	}

	detail := ProjectDetail(record, p.imageBase)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.setSelection(detail)
	p.host.ShowDetails(detail)
}

// CloseDetails clears the current selection. Calling it with nothing
// selected is harmless.
func (p *Projector) CloseDetails() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.clearSelection()
	p.host.HideDetails()
}

// RequestPlayback opens the playback URL of the current selection and closes
// the details view. It does nothing when nothing is selected.
func (p *Projector) RequestPlayback(ctx context.Context) error {
	selection, ok := p.state.Selection()
	if !ok {
		return nil
	}

	url := playback.URL(p.playbackBase, selection.Kind, selection.ID)
	defer p.CloseDetails()

	if p.nav == nil {
		return fmt.Errorf("no navigator configured for %s", url)
	}
	if err := p.nav.Open(ctx, url); err != nil {
		p.log.Warn("playback launch failed", "url", url, "error", err)
		return fmt.Errorf("opening playback: %w", err)
	}

	p.log.Debug("playback requested", "id", selection.ID, "kind", selection.Kind.String(), "url", url)
	return nil
}

// PlaybackURL returns the playback URL of the current selection, if any.
func (p *Projector) PlaybackURL() (string, bool) {
	selection, ok := p.state.Selection()
	if !ok {
		return "", false
	}
	return playback.URL(p.playbackBase, selection.Kind, selection.ID), true
}

// AddToFavorites acknowledges the current selection. Favorites are not stored.
func (p *Projector) AddToFavorites() {
	selection, ok := p.state.Selection()
	if !ok {
		return
	}
	p.host.Notify(`Added "` + selection.Title + `" to favorites!`)
}

// RenderList replaces a region's content. An empty list renders the
// placeholder so a finished region is never blank.
func (p *Projector) RenderList(cards []Card, region Region) {
	if len(cards) == 0 {
		p.host.Placeholder(region, NoContent)
		return
	}
	p.host.Render(region, cards)
}

// LoadTheme reads the persisted theme and applies it. Without a stored
// theme the configured default (dark unless set) is used.
func (p *Projector) LoadTheme(ctx context.Context) string {
	theme := p.defaultTheme
	if p.themes != nil {
		stored, err := p.themes.Theme(ctx)
		if err != nil {
			p.log.Warn("reading theme preference failed", "error", err)
		} else if ValidTheme(stored) {
			theme = stored
		}
	}

	p.state.setTheme(theme)
	p.host.SetTheme(theme)
	return theme
}

// ToggleTheme flips between dark and light, applies and persists the result.
func (p *Projector) ToggleTheme(ctx context.Context) (string, error) {
	theme := NextTheme(p.state.Theme())
	p.state.setTheme(theme)
	p.host.SetTheme(theme)

	if p.themes == nil {
		return theme, nil
	}
	if err := p.themes.SetTheme(ctx, theme); err != nil {
		return theme, fmt.Errorf("saving theme: %w", err)
	}
	return theme, nil
}
