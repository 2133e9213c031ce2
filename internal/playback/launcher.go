package playback

import (
	"context"
	"io"
	"os"
)

// Launcher opens a playback URL in a new, unmanaged context (browser tab,
// external program, or plain output). It satisfies view.Navigator.
type Launcher interface {
	// Open hands the URL off. It does not wait for playback.
	Open(ctx context.Context, url string) error

	// Name returns the launcher name.
	Name() string

	// Available checks if the launcher can run on this system.
	Available() bool
}

// Names lists the launcher names accepted by New besides arbitrary commands.
var Names = []string{"browser", "print"}

// New creates a launcher by name. "browser" uses the platform URL opener,
// "print" writes the URL to stdout, anything else is run as a command with
// the URL as its only argument.
func New(name string) Launcher {
	return newLauncher(name, os.Stdout)
}

func newLauncher(name string, out io.Writer) Launcher {
	switch name {
	case "", "browser":
		return &Browser{}
	case "print":
		return &Printer{w: out}
	default:
		return &Command{name: name}
	}
}
