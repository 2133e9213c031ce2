package playback

import (
	"context"
	"fmt"
	"io"
	"os/exec"

	"cinefront/internal/httputil"
)

// Command runs a user-chosen program (e.g. "firefox", "mpv") with the URL as
// its only argument.
type Command struct {
	name string
}

func (c *Command) Name() string { return c.name }

func (c *Command) Available() bool {
	_, err := exec.LookPath(c.name)
	return err == nil
}

// Open starts the program detached and returns once it has launched.
func (c *Command) Open(_ context.Context, url string) error {
	if err := httputil.ValidateURL(url); err != nil {
		return fmt.Errorf("refusing to open %q: %w", url, err)
	}

	cmd := exec.Command(c.name, url)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("running %s: %w", c.name, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// Printer writes the URL on its own line, for headless use and piping.
type Printer struct {
	w io.Writer
}

func (p *Printer) Name() string { return "print" }

func (p *Printer) Available() bool { return p.w != nil }

func (p *Printer) Open(_ context.Context, url string) error {
	if _, err := fmt.Fprintln(p.w, url); err != nil {
		return fmt.Errorf("writing playback URL: %w", err)
	}
	return nil
}
