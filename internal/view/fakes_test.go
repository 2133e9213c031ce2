package view

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"cinefront/internal/catalog"
	"cinefront/internal/media"
)

// fakeCatalog serves canned records. details blocks on gates[id] when set.
type fakeCatalog struct {
	mu       sync.Mutex
	trending map[media.Kind][]media.Record
	current  map[media.Kind][]media.Record
	category []media.Record
	search   []media.Record
	details  map[int]media.Record
	gates    map[int]chan struct{}
	calls    []string
	filter   catalog.Filter
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		trending: map[media.Kind][]media.Record{},
		current:  map[media.Kind][]media.Record{},
		details:  map[int]media.Record{},
		gates:    map[int]chan struct{}{},
	}
}

func (f *fakeCatalog) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeCatalog) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeCatalog) Trending(_ context.Context, kind media.Kind) []media.Record {
	f.record("trending:" + kind.String())
	return f.trending[kind]
}

func (f *fakeCatalog) CurrentlyAvailable(_ context.Context, kind media.Kind) []media.Record {
	f.record("current:" + kind.String())
	return f.current[kind]
}

func (f *fakeCatalog) Category(_ context.Context, filter catalog.Filter) []media.Record {
	f.record("category")
	f.mu.Lock()
	f.filter = filter
	f.mu.Unlock()
	return f.category
}

func (f *fakeCatalog) Search(_ context.Context, query string) []media.Record {
	f.record("search:" + query)
	return f.search
}

func (f *fakeCatalog) Details(_ context.Context, id int, kind media.Kind) (media.Record, bool) {
	f.record(fmt.Sprintf("details:%d:%s", id, kind))
	f.mu.Lock()
	gate := f.gates[id]
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.details[id]
	return r, ok
}

// recordingHost stores everything the projector asks it to show.
type recordingHost struct {
	mu           sync.Mutex
	calls        int
	rendered     map[Region][]Card
	placeholders map[Region]string
	visible      map[Region]bool
	details      *Detail
	shown        []int
	notices      []string
	theme        string
	inputsClear  int
}

func newRecordingHost() *recordingHost {
	return &recordingHost{
		rendered:     map[Region][]Card{},
		placeholders: map[Region]string{},
		visible:      map[Region]bool{},
	}
}

func (h *recordingHost) Render(region Region, cards []Card) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls++
	delete(h.placeholders, region)
	h.rendered[region] = cards
}

func (h *recordingHost) Placeholder(region Region, message string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls++
	delete(h.rendered, region)
	h.placeholders[region] = message
}

func (h *recordingHost) SetVisible(region Region, visible bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls++
	h.visible[region] = visible
}

func (h *recordingHost) ClearSearchInputs() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls++
	h.inputsClear++
}

func (h *recordingHost) ShowDetails(d Detail) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls++
	h.details = &d
	h.shown = append(h.shown, d.ID)
}

func (h *recordingHost) HideDetails() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls++
	h.details = nil
}

func (h *recordingHost) Notify(message string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls++
	h.notices = append(h.notices, message)
}

func (h *recordingHost) SetTheme(theme string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls++
	h.theme = theme
}

func (h *recordingHost) Calls() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.calls
}

type fakeNavigator struct {
	opened []string
	err    error
}

func (n *fakeNavigator) Open(_ context.Context, url string) error {
	n.opened = append(n.opened, url)
	return n.err
}

type memoryThemes struct {
	theme string
	err   error
}

func (m *memoryThemes) Theme(context.Context) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.theme, nil
}

func (m *memoryThemes) SetTheme(_ context.Context, theme string) error {
	if m.err != nil {
		return m.err
	}
	m.theme = theme
	return nil
}

var errStore = errors.New("store unavailable")
