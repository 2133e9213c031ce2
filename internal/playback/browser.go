package playback

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"cinefront/internal/httputil"
)

// openers lists URL opener binaries by preference for the current platform.
func openers() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"open"}
	case "windows":
		return []string{"explorer.exe"}
	default:
		return []string{"xdg-open", "wslview", "sensible-browser"}
	}
}

// Browser opens URLs with the platform URL opener.
// Uses exec.Command with explicit args (no shell interpretation).
type Browser struct {
	// lookPath is swapped in tests.
	lookPath func(string) (string, error)
}

func (b *Browser) Name() string { return "browser" }

func (b *Browser) Available() bool {
	_, err := b.opener()
	return err == nil
}

// Open validates the URL and starts the opener without waiting for it.
func (b *Browser) Open(_ context.Context, url string) error {
	if err := httputil.ValidateURL(url); err != nil {
		return fmt.Errorf("refusing to open %q: %w", url, err)
	}

	path, err := b.opener()
	if err != nil {
		return err
	}

	cmd := exec.Command(path, url)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", path, err)
	}

	// Detach: the opener is not managed beyond launch.
	go func() { _ = cmd.Wait() }()
	return nil
}

func (b *Browser) opener() (string, error) {
	look := b.lookPath
	if look == nil {
		look = exec.LookPath
	}
	for _, name := range openers() {
		if path, err := look(name); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no URL opener found in PATH (tried %v)", openers())
}
