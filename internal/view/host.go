package view

import (
	"context"

	"cinefront/internal/catalog"
	"cinefront/internal/media"
)

// Catalog is the remote catalog as seen by the projector. Implementations
// never fail: errors surface as empty results or a false lookup.
type Catalog interface {
	Trending(ctx context.Context, kind media.Kind) []media.Record
	CurrentlyAvailable(ctx context.Context, kind media.Kind) []media.Record
	Category(ctx context.Context, filter catalog.Filter) []media.Record
	Search(ctx context.Context, query string) []media.Record
	Details(ctx context.Context, id int, kind media.Kind) (media.Record, bool)
}

// Host is the rendering capability of the UI. Calls naming a region the host
// does not have are silently ignored.
type Host interface {
	// Render replaces the region's content with the given cards.
	Render(region Region, cards []Card)
	// Placeholder replaces the region's content with a fixed message.
	Placeholder(region Region, message string)
	SetVisible(region Region, visible bool)
	// ClearSearchInputs empties every search input affordance.
	ClearSearchInputs()
	ShowDetails(detail Detail)
	HideDetails()
	// Notify surfaces a short user-visible notice.
	Notify(message string)
	SetTheme(theme string)
}

// Navigator opens a URL in a new, unmanaged context.
type Navigator interface {
	Open(ctx context.Context, url string) error
}

// ThemeStore persists the theme preference. Theme returns "" when nothing
// has been stored.
type ThemeStore interface {
	Theme(ctx context.Context) (string, error)
	SetTheme(ctx context.Context, theme string) error
}

// Tee fans every host call out to several hosts in order.
func Tee(hosts ...Host) Host {
	return tee(hosts)
}

type tee []Host

func (t tee) Render(region Region, cards []Card) {
	for _, h := range t {
		h.Render(region, cards)
	}
}

func (t tee) Placeholder(region Region, message string) {
	for _, h := range t {
		h.Placeholder(region, message)
	}
}

func (t tee) SetVisible(region Region, visible bool) {
	for _, h := range t {
		h.SetVisible(region, visible)
	}
}

func (t tee) ClearSearchInputs() {
	for _, h := range t {
		h.ClearSearchInputs()
	}
}

func (t tee) ShowDetails(detail Detail) {
	for _, h := range t {
		h.ShowDetails(detail)
	}
}

func (t tee) HideDetails() {
	for _, h := range t {
		h.HideDetails()
	}
}

func (t tee) Notify(message string) {
	for _, h := range t {
		h.Notify(message)
	}
}

func (t tee) SetTheme(theme string) {
	for _, h := range t {
		h.SetTheme(theme)
	}
}
