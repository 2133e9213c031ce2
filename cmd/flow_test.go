package cmd

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinefront/internal/catalog"
	"cinefront/internal/config"
	"cinefront/internal/media"
	"cinefront/internal/ui"
	"cinefront/internal/view"
)

type stubCatalog struct {
	mu      sync.Mutex
	records []media.Record
	details map[int]media.Record
	calls   []string
}

func (c *stubCatalog) record(call string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, call)
}

func (c *stubCatalog) Trending(_ context.Context, kind media.Kind) []media.Record {
	c.record("trending:" + kind.String())
	return c.records
}

func (c *stubCatalog) CurrentlyAvailable(_ context.Context, kind media.Kind) []media.Record {
	c.record("current:" + kind.String())
	return nil
}

func (c *stubCatalog) Category(context.Context, catalog.Filter) []media.Record {
	c.record("category")
	return nil
}

func (c *stubCatalog) Search(_ context.Context, query string) []media.Record {
	c.record("search:" + query)
	return c.records
}

func (c *stubCatalog) Details(_ context.Context, id int, _ media.Kind) (media.Record, bool) {
	r, ok := c.details[id]
	return r, ok
}

type recordingLauncher struct {
	opened []string
}

func (l *recordingLauncher) Open(_ context.Context, url string) error {
	l.opened = append(l.opened, url)
	return nil
}

func (l *recordingLauncher) Name() string    { return "recorder" }
func (l *recordingLauncher) Available() bool { return true }

// scripted answers prompts from fixed lists, cancelling once they run out.
type scripted struct {
	choices  []int
	confirms []bool
	prompts  []string
}

func (s *scripted) choose(prompt string, items []string) (int, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.choices) == 0 {
		return -1, ui.ErrCancelled
	}
	idx := s.choices[0]
	s.choices = s.choices[1:]
	return idx, nil
}

func (s *scripted) confirm(prompt string) (bool, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.confirms) == 0 {
		return false, ui.ErrCancelled
	}
	ok := s.confirms[0]
	s.confirms = s.confirms[1:]
	return ok, nil
}

func newFlowApp(t *testing.T, c view.Catalog, script *scripted) (*app, *recordingLauncher) {
	t.Helper()
	page, err := ui.NewPage()
	require.NoError(t, err)

	launcher := &recordingLauncher{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a := &app{
		cfg:      config.Default(),
		log:      logger,
		screen:   ui.NewScreen(),
		page:     page,
		launcher: launcher,
		choose:   script.choose,
		confirm:  script.confirm,
	}
	a.projector = view.NewProjector(c, view.Tee(a.screen, a.page),
		view.WithNavigator(launcher),
		view.WithLogger(logger),
	)
	return a, launcher
}

var inception = media.Record{ID: 27205, Kind: media.Movie, Title: "Inception", PosterPath: "/inc.jpg", Date: "2010-07-15", Rating: 8.4}

func TestActAsksBeforePlayback(t *testing.T) {
	c := &stubCatalog{details: map[int]media.Record{inception.ID: inception}}

	// Play, decline, then go back.
	script := &scripted{choices: []int{0, 2}, confirms: []bool{false}}
	a, launcher := newFlowApp(t, c, script)
	card := view.Card{ID: inception.ID, Kind: media.Movie, Title: inception.Title}

	require.NoError(t, a.detailsFlow(context.Background(), io.Discard, card))
	assert.Empty(t, launcher.opened)
	assert.Contains(t, script.prompts, "Open https://vidsrc.cc/v2/embed/movie/27205 with recorder?")
	_, ok := a.projector.State().Selection()
	assert.False(t, ok)

	// Play and accept.
	script = &scripted{choices: []int{0}, confirms: []bool{true}}
	a, launcher = newFlowApp(t, c, script)

	require.NoError(t, a.detailsFlow(context.Background(), io.Discard, card))
	assert.Equal(t, []string{"https://vidsrc.cc/v2/embed/movie/27205"}, launcher.opened)
	_, ok = a.projector.State().Selection()
	assert.False(t, ok, "details close after playback")
}

func TestSearchResultsBackToHome(t *testing.T) {
	c := &stubCatalog{records: []media.Record{inception}}
	ctx := context.Background()

	// Pick "Back to home", then cancel the section menu.
	script := &scripted{choices: []int{1}}
	a, _ := newFlowApp(t, c, script)

	a.projector.Search(ctx, "inception")
	results := a.screen.Cards(view.RegionSearchResults)
	require.Len(t, results, 1)
	assert.True(t, a.screen.Visible(view.RegionSearchSection))

	var out bytes.Buffer
	require.NoError(t, a.browseResults(ctx, &out, results))

	assert.False(t, a.screen.Visible(view.RegionSearchSection))
	assert.True(t, a.screen.Visible(view.RegionContent))
	assert.Contains(t, c.calls, "trending:movie")
	assert.Len(t, a.screen.Cards(view.RegionTrendingMovies), 1)
	assert.Equal(t, []string{"Select", "Section"}, script.prompts)

	value, _ := a.page.Find("#header-search").Attr("value")
	assert.Empty(t, value)
}

func TestSearchResultsOpenDetails(t *testing.T) {
	c := &stubCatalog{records: []media.Record{inception}, details: map[int]media.Record{inception.ID: inception}}
	ctx := context.Background()

	script := &scripted{choices: []int{0, 2}}
	a, _ := newFlowApp(t, c, script)
	a.projector.Search(ctx, "inception")

	require.NoError(t, a.browseResults(ctx, io.Discard, a.screen.Cards(view.RegionSearchResults)))
	assert.Equal(t, []string{"Select", "Inception"}, script.prompts)
	assert.True(t, a.screen.Visible(view.RegionSearchSection), "search stays open when a result is picked")
}
