package ui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"cinefront/internal/view"
)

// sectionTitles names the list regions a Screen knows about, in display order.
var sectionTitles = []struct {
	region view.Region
	title  string
}{
	{view.RegionTrendingMovies, "Trending Movies"},
	{view.RegionTrendingSeries, "Trending TV Shows"},
	{view.RegionLatestMovies, "Latest Movies"},
	{view.RegionLatestSeries, "Latest TV Shows"},
	{view.RegionPopularAnime, "Popular Anime"},
	{view.RegionSearchResults, "Search Results"},
}

type palette struct {
	title   lipgloss.Style
	heading lipgloss.Style
	card    lipgloss.Style
	meta    lipgloss.Style
	rating  lipgloss.Style
	muted   lipgloss.Style
	notice  lipgloss.Style
	detail  lipgloss.Style
}

func newPalette(theme string) palette {
	fg, accent, muted, border := lipgloss.Color("252"), lipgloss.Color("214"), lipgloss.Color("244"), lipgloss.Color("62")
	if theme == view.ThemeLight {
		fg, accent, muted, border = lipgloss.Color("235"), lipgloss.Color("166"), lipgloss.Color("240"), lipgloss.Color("25")
	}

	return palette{
		title:   lipgloss.NewStyle().Bold(true).Foreground(accent),
		heading: lipgloss.NewStyle().Bold(true).Foreground(fg).MarginTop(1),
		card:    lipgloss.NewStyle().Foreground(fg),
		meta:    lipgloss.NewStyle().Foreground(muted),
		rating:  lipgloss.NewStyle().Foreground(lipgloss.Color("178")),
		muted:   lipgloss.NewStyle().Foreground(muted).Italic(true),
		notice:  lipgloss.NewStyle().Bold(true).Foreground(accent),
		detail: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1).
			MarginTop(1),
	}
}

type regionContent struct {
	cards       []view.Card
	placeholder string
	rendered    bool
}

// Screen is an in-memory terminal host. It records what the projector shows
// and renders it on demand with View.
type Screen struct {
	mu      sync.Mutex
	regions map[view.Region]*regionContent
	visible map[view.Region]bool
	detail  *view.Detail
	notices []string
	theme   string
}

// NewScreen returns a screen with every known region empty and the default
// content visible.
func NewScreen() *Screen {
	s := &Screen{
		regions: make(map[view.Region]*regionContent, len(sectionTitles)),
		visible: map[view.Region]bool{
			view.RegionContent:       true,
			view.RegionSearchSection: false,
			view.RegionLoading:       false,
		},
		theme: view.ThemeDark,
	}
	for _, section := range sectionTitles {
		s.regions[section.region] = &regionContent{}
	}
	return s
}

func (s *Screen) Render(region view.Region, cards []view.Card) {
	s.mu.Lock()
	defer s.mu.Unlock()
	content, ok := s.regions[region]
	if !ok {
		return
	}
	content.cards = append([]view.Card(nil), cards...)
	content.placeholder = ""
	content.rendered = true
}

func (s *Screen) Placeholder(region view.Region, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	content, ok := s.regions[region]
	if !ok {
		return
	}
	content.cards = nil
	content.placeholder = message
	content.rendered = true
}

func (s *Screen) SetVisible(region view.Region, visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.visible[region]; !ok {
		return
	}
	s.visible[region] = visible
}

// ClearSearchInputs is a no-op: queries are read by prompts, not kept on screen.
func (s *Screen) ClearSearchInputs() {}

func (s *Screen) ShowDetails(detail view.Detail) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detail = &detail
}

func (s *Screen) HideDetails() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detail = nil
}

func (s *Screen) Notify(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notices = append(s.notices, message)
}

func (s *Screen) SetTheme(theme string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = theme
}

// Cards returns a copy of the cards currently shown in a region.
func (s *Screen) Cards(region view.Region) []view.Card {
	s.mu.Lock()
	defer s.mu.Unlock()
	content, ok := s.regions[region]
	if !ok {
		return nil
	}
	return append([]view.Card(nil), content.cards...)
}

// Visible reports whether a toggleable region is currently shown.
func (s *Screen) Visible(region view.Region) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible[region]
}

// Detail returns the details currently shown, if any.
func (s *Screen) Detail() (view.Detail, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.detail == nil {
		return view.Detail{}, false
	}
	return *s.detail, true
}

// Notices returns and clears the pending notices.
func (s *Screen) Notices() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	notices := s.notices
	s.notices = nil
	return notices
}

// Theme returns the applied theme.
func (s *Screen) Theme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// View renders the visible regions, the open details and pending notices.
func (s *Screen) View(width int) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if width <= 0 {
		width = defaultWidth
	}
	p := newPalette(s.theme)

	var b strings.Builder
	b.WriteString(p.title.Render("cinefront"))
	b.WriteString("\n")

	if s.visible[view.RegionLoading] {
		b.WriteString(p.muted.Render("Loading..."))
		b.WriteString("\n")
	}

	for _, section := range sectionTitles {
		if !s.sectionVisible(section.region) {
			continue
		}
		content := s.regions[section.region]
		if !content.rendered {
			continue
		}
		b.WriteString(p.heading.Render(section.title))
		b.WriteString("\n")
		if len(content.cards) == 0 {
			b.WriteString(p.muted.Render(content.placeholder))
			b.WriteString("\n")
			continue
		}
		for i, card := range content.cards {
			b.WriteString(renderCardLine(p, i+1, card, width))
			b.WriteString("\n")
		}
	}

	if s.detail != nil {
		b.WriteString(renderDetail(p, *s.detail, width))
		b.WriteString("\n")
	}

	for _, notice := range s.notices {
		b.WriteString(p.notice.Render(notice))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *Screen) sectionVisible(region view.Region) bool {
	if region == view.RegionSearchResults {
		return s.visible[view.RegionSearchSection]
	}
	return s.visible[view.RegionContent]
}

func renderCardLine(p palette, n int, card view.Card, width int) string {
	meta := p.meta.Render(fmt.Sprintf("%s · %s", card.Year, card.Label))
	rating := p.rating.Render("★ " + card.Rating)
	title := truncate(card.Title, width-lipgloss.Width(meta)-lipgloss.Width(rating)-8)
	return fmt.Sprintf("%3d. %s  %s  %s", n, p.card.Render(title), meta, rating)
}

func renderDetail(p palette, d view.Detail, width int) string {
	lines := []string{
		p.title.Render(d.Title),
		p.meta.Render(fmt.Sprintf("%s · %s · %s", d.Year, d.Duration, d.Label)),
		p.rating.Render("★ " + d.Rating),
		"",
		p.card.Width(max(width-6, 20)).Render(d.Overview),
	}
	return p.detail.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func truncate(value string, width int) string {
	value = strings.Join(strings.Fields(value), " ")
	runes := []rune(value)
	if width <= 0 || len(runes) <= width {
		return value
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
