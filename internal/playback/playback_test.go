package playback

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"cinefront/internal/media"
)

func TestURL(t *testing.T) {
	tests := []struct {
		name string
		base string
		kind media.Kind
		id   int
		want string
	}{
		{"movie", "", media.Movie, 27205, "https://vidsrc.cc/v2/embed/movie/27205"},
		{"series starts at S1E1", "", media.Series, 1396, "https://vidsrc.cc/v2/embed/tv/1396/1/1"},
		{"custom base", "https://player.example.com/embed/", media.Movie, 7, "https://player.example.com/embed/movie/7"},
		{"other kind", "", media.Other, 525, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := URL(tt.base, tt.kind, tt.id); got != tt.want {
				t.Errorf("URL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEpisodeURL(t *testing.T) {
	got := EpisodeURL("", 1396, 2, 5)
	want := "https://vidsrc.cc/v2/embed/tv/1396/2/5"
	if got != want {
		t.Errorf("EpisodeURL() = %q, want %q", got, want)
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"", "browser"},
		{"browser", "browser"},
		{"print", "print"},
		{"firefox", "firefox"},
	}

	for _, tt := range tests {
		if got := New(tt.name).Name(); got != tt.want {
			t.Errorf("New(%q).Name() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestPrinterOpen(t *testing.T) {
	var buf bytes.Buffer
	l := newLauncher("print", &buf)

	if !l.Available() {
		t.Fatal("printer should be available")
	}
	if err := l.Open(context.Background(), "https://vidsrc.cc/v2/embed/movie/1"); err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if buf.String() != "https://vidsrc.cc/v2/embed/movie/1\n" {
		t.Errorf("printed %q", buf.String())
	}
}

func TestBrowserRejectsUnsafeURL(t *testing.T) {
	b := &Browser{lookPath: func(string) (string, error) { return "/bin/true", nil }}
	if err := b.Open(context.Background(), "javascript:alert(1)"); err == nil {
		t.Error("expected error for non-HTTPS URL")
	}
}

func TestBrowserWithoutOpener(t *testing.T) {
	b := &Browser{lookPath: func(string) (string, error) { return "", errors.New("not found") }}
	if b.Available() {
		t.Error("browser should be unavailable without an opener")
	}
	if err := b.Open(context.Background(), "https://vidsrc.cc/v2/embed/movie/1"); err == nil {
		t.Error("expected error without an opener")
	}
}

func TestCommandRejectsUnsafeURL(t *testing.T) {
	c := &Command{name: "true"}
	if err := c.Open(context.Background(), "file:///etc/passwd"); err == nil {
		t.Error("expected error for non-HTTPS URL")
	}
}
