package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"cinefront/internal/catalog"
	"cinefront/internal/config"
	"cinefront/internal/httputil"
	"cinefront/internal/playback"
	"cinefront/internal/prefs"
	"cinefront/internal/ui"
	"cinefront/internal/view"
)

// app wires the catalog, hosts, preferences and launcher for one command run.
type app struct {
	cfg       *config.Config
	log       *slog.Logger
	screen    *ui.Screen
	page      *ui.Page
	store     *prefs.Store
	launcher  playback.Launcher
	projector *view.Projector

	// Prompts; swapped in tests.
	choose  func(prompt string, items []string) (int, error)
	confirm func(prompt string) (bool, error)
}

func configHint() string {
	path, err := config.ConfigPath()
	if err != nil {
		return "the config file"
	}
	return path
}

func newApp(c *config.Config) (*app, error) {
	logger := slog.Default()

	client := catalog.NewClient(c.APIKey,
		catalog.WithHTTPClient(httputil.NewClient(time.Duration(c.TimeoutSeconds)*time.Second)),
		catalog.WithBaseURL(c.BaseURL),
		catalog.WithImageBaseURL(c.ImageBaseURL),
		catalog.WithOriginalImageBaseURL(c.OriginalImageBaseURL),
		catalog.WithTrendingWindow(c.TrendingWindow),
		catalog.WithLogger(logger),
	)

	page, err := ui.NewPage(ui.WithPlaybackLink(func(d view.Detail) string {
		return playback.URL(c.PlaybackBase, d.Kind, d.ID)
	}))
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:      c,
		log:      logger,
		screen:   ui.NewScreen(),
		page:     page,
		launcher: playback.New(c.Launcher),
		choose:   ui.Select,
		confirm:  ui.Confirm,
	}
	if !a.launcher.Available() {
		logger.Warn("playback launcher not available", "launcher", a.launcher.Name())
	}

	opts := []view.Option{
		view.WithNavigator(a.launcher),
		view.WithImageBaseURL(client.ImageBaseURL()),
		view.WithPlaybackBase(c.PlaybackBase),
		view.WithDefaultTheme(c.Theme),
		view.WithLogger(logger),
	}
	if store, err := openPrefs(); err != nil {
		logger.Warn("preferences unavailable, theme will not persist", "error", err)
	} else {
		logger.Debug("preferences opened", "path", store.Path())
		a.store = store
		opts = append(opts, view.WithThemeStore(store))
	}

	a.projector = view.NewProjector(client, view.Tee(a.screen, a.page), opts...)
	return a, nil
}

func openPrefs() (*prefs.Store, error) {
	path, err := config.PreferencesPath()
	if err != nil {
		return nil, err
	}
	return prefs.Open(path)
}

func (a *app) requireAPIKey() error {
	if !a.cfg.HasAPIKey() {
		return fmt.Errorf("no API key configured: set %s or api_key in %s", config.APIKeyEnv, configHint())
	}
	return nil
}

func (a *app) close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.log.Debug("closing preferences", "error", err)
		}
	}
}

// interactive reports whether prompts may be shown.
func (a *app) interactive() bool {
	return !flagNoInteractive && !flagJSON && ui.Interactive()
}

// show prints the screen and writes the HTML snapshot when requested.
func (a *app) show(w io.Writer) error {
	if !flagJSON {
		fmt.Fprint(w, a.screen.View(ui.TerminalWidth()))
		a.screen.Notices()
	}
	return a.snapshot()
}

func (a *app) snapshot() error {
	if flagHTML == "" {
		return nil
	}
	if err := a.page.WriteFile(flagHTML); err != nil {
		return err
	}
	a.log.Debug("page written", "path", flagHTML)
	return nil
}

// homeMenu lets the user pick a home section and browse its cards.
func (a *app) homeMenu(ctx context.Context, w io.Writer) error {
	items := make([]string, len(view.HomeRegions))
	for i, region := range view.HomeRegions {
		items[i] = fmt.Sprintf("%s (%d)", homeTitles[region], len(a.screen.Cards(region)))
	}
	idx, err := a.choose("Section", items)
	if errors.Is(err, ui.ErrCancelled) {
		return nil
	}
	if err != nil {
		return err
	}
	return a.browse(ctx, w, a.screen.Cards(view.HomeRegions[idx]))
}

// browse lets the user pick a card, view its details and act on it.
func (a *app) browse(ctx context.Context, w io.Writer, cards []view.Card) error {
	if len(cards) == 0 {
		return nil
	}

	idx, err := a.choose("Select", cardLabels(cards))
	if errors.Is(err, ui.ErrCancelled) {
		return nil
	}
	if err != nil {
		return err
	}
	return a.detailsFlow(ctx, w, cards[idx])
}

// browseResults is browse for search results, with a way back to the home screen.
func (a *app) browseResults(ctx context.Context, w io.Writer, cards []view.Card) error {
	items := append(cardLabels(cards), backToHome)
	idx, err := a.choose("Select", items)
	if errors.Is(err, ui.ErrCancelled) {
		return nil
	}
	if err != nil {
		return err
	}
	if idx < len(cards) {
		return a.detailsFlow(ctx, w, cards[idx])
	}

	a.projector.ClearSearch()
	a.projector.LoadHome(ctx)
	if err := a.show(w); err != nil {
		return err
	}
	return a.homeMenu(ctx, w)
}

func (a *app) detailsFlow(ctx context.Context, w io.Writer, card view.Card) error {
	a.log.Debug("selected", "title", card.Title, "id", card.ID, "kind", card.Kind.String())
	a.projector.OpenDetails(ctx, card.ID, card.Kind)
	detail, ok := a.projector.State().Selection()
	if !ok || detail.ID != card.ID {
		return a.show(w)
	}
	if err := a.show(w); err != nil {
		return err
	}
	return a.act(ctx, w, detail)
}

// act offers the actions for the open details until one ends the flow.
func (a *app) act(ctx context.Context, w io.Writer, detail view.Detail) error {
	for {
		idx, err := a.choose(detail.Title, []string{"Play", "Add to favorites", "Back"})
		if errors.Is(err, ui.ErrCancelled) {
			a.projector.CloseDetails()
			return nil
		}
		if err != nil {
			return err
		}

		switch idx {
		case 0:
			url, _ := a.projector.PlaybackURL()
			ok, err := a.confirm(fmt.Sprintf("Open %s with %s?", url, a.launcher.Name()))
			if errors.Is(err, ui.ErrCancelled) || (err == nil && !ok) {
				continue
			}
			if err != nil {
				return err
			}
			if err := a.projector.RequestPlayback(ctx); err != nil {
				return err
			}
			return a.snapshot()
		case 1:
			a.projector.AddToFavorites()
			for _, notice := range a.screen.Notices() {
				fmt.Fprintln(w, notice)
			}
		default:
			a.projector.CloseDetails()
			return a.snapshot()
		}
	}
}

const backToHome = "Back to home"

func cardLabels(cards []view.Card) []string {
	items := make([]string, len(cards))
	for i, card := range cards {
		items[i] = cardLabel(card)
	}
	return items
}

func cardLabel(card view.Card) string {
	return fmt.Sprintf("%s (%s) [%s] ★ %s", card.Title, card.Year, card.Label, card.Rating)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
