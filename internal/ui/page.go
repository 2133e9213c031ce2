package ui

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"os"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"

	"cinefront/internal/view"
)

//go:embed page.html
var pageSkeleton string

const hiddenClass = "hidden"

var cardTemplate = template.Must(template.New("card").Parse(
	`<div class="media-card" data-id="{{.ID}}" data-type="{{.Kind.Path}}">` +
		`<div class="card-poster"><img src="{{.PosterURL}}" alt="{{.Title}}" loading="lazy"></div>` +
		`<div class="card-info"><h4 class="card-title">{{.Title}}</h4>` +
		`<div class="card-meta"><span class="year">{{.Year}}</span>` +
		`<span class="duration">{{.Label}}</span>` +
		`<span class="rating">⭐ {{.Rating}}</span></div></div></div>`))

var placeholderTemplate = template.Must(template.New("placeholder").Parse(
	`<div class="no-results"><p>{{.}}</p></div>`))

// Page is an HTML host. Regions are the elements whose id matches the region
// name; calls naming an element the page lacks change nothing.
type Page struct {
	mu          sync.Mutex
	doc         *goquery.Document
	playbackURL func(view.Detail) string
}

// PageOption configures a Page.
type PageOption func(*Page)

// WithPlaybackLink sets how the details play button's link is built.
func WithPlaybackLink(fn func(view.Detail) string) PageOption {
	return func(p *Page) { p.playbackURL = fn }
}

// NewPage parses the built-in page skeleton.
func NewPage(opts ...PageOption) (*Page, error) {
	return ParsePage(pageSkeleton, opts...)
}

// ParsePage builds a Page over caller-supplied markup.
func ParsePage(markup string, opts ...PageOption) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}
	p := &Page{doc: doc}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

func (p *Page) byID(id string) *goquery.Selection {
	return p.doc.Find("#" + id)
}

func (p *Page) Render(region view.Region, cards []view.Card) {
	var b bytes.Buffer
	for _, card := range cards {
		if err := cardTemplate.Execute(&b, card); err != nil {
			return
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.byID(string(region)).SetHtml(b.String())
}

func (p *Page) Placeholder(region view.Region, message string) {
	var b bytes.Buffer
	if err := placeholderTemplate.Execute(&b, message); err != nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.byID(string(region)).SetHtml(b.String())
}

func (p *Page) SetVisible(region view.Region, visible bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	sel := p.byID(string(region))
	if visible {
		sel.RemoveClass(hiddenClass)
	} else {
		sel.AddClass(hiddenClass)
	}
}

func (p *Page) ClearSearchInputs() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.byID("header-search").SetAttr("value", "")
	p.byID("hero-search").SetAttr("value", "")
}

func (p *Page) ShowDetails(d view.Detail) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.byID("modal-title").SetText(d.Title)
	poster := p.byID("modal-poster-img")
	if d.PosterURL != "" {
		poster.SetAttr("src", d.PosterURL)
	} else {
		poster.RemoveAttr("src")
	}
	poster.SetAttr("alt", d.Title)
	p.byID("modal-year").SetText(d.Year)
	p.byID("modal-rating").SetText("⭐ " + d.Rating)
	p.byID("modal-runtime").SetText(d.Duration)
	p.byID("modal-overview").SetText(d.Overview)
	if p.playbackURL != nil {
		p.byID("modal-play").SetAttr("href", p.playbackURL(d))
	}

	modal := p.byID("video-modal")
	modal.SetAttr("data-id", fmt.Sprint(d.ID))
	modal.SetAttr("data-type", d.Kind.Path())
	modal.RemoveClass(hiddenClass)
}

func (p *Page) HideDetails() {
	p.mu.Lock()
	defer p.mu.Unlock()
	modal := p.byID("video-modal")
	modal.AddClass(hiddenClass)
	modal.RemoveAttr("data-id")
	modal.RemoveAttr("data-type")
	p.byID("modal-play").RemoveAttr("href")
}

func (p *Page) Notify(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.byID("notices").AppendHtml(`<p class="notice">` + template.HTMLEscapeString(message) + `</p>`)
}

func (p *Page) SetTheme(theme string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.doc.Find("body").SetAttr("data-theme", theme)

	icon := "fas fa-moon"
	if theme == view.ThemeLight {
		icon = "fas fa-sun"
	}
	p.doc.Find(".theme-toggle i").SetAttr("class", icon)
}

// Find runs a CSS selector against a snapshot of the current page. Later
// host calls do not change the returned selection.
func (p *Page) Find(selector string) *goquery.Selection {
	markup, err := p.HTML()
	if err != nil {
		markup = ""
	}
	snapshot, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return &goquery.Selection{}
	}
	return snapshot.Find(selector)
}

// HTML returns the current page markup.
func (p *Page) HTML() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	html, err := p.doc.Html()
	if err != nil {
		return "", fmt.Errorf("rendering page: %w", err)
	}
	return html, nil
}

// WriteFile writes the current page markup to path.
func (p *Page) WriteFile(path string) error {
	html, err := p.HTML()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("writing page: %w", err)
	}
	return nil
}
