package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"cinefront/internal/httputil"
	"cinefront/internal/media"
	"cinefront/internal/playback"
	"cinefront/internal/view"
)

var detailsCmd = &cobra.Command{
	Use:   "details <movie|tv> <id>",
	Short: "Show details for a title",
	Args:  cobra.ExactArgs(2),
	RunE:  detailsRun,
}

var playCmd = &cobra.Command{
	Use:   "play <movie|tv> <id>",
	Short: "Open a title in the playback launcher",
	Args:  cobra.ExactArgs(2),
	RunE:  playRun,
}

// parseTarget parses the <movie|tv> <id> argument pair.
func parseTarget(args []string) (media.Kind, int, error) {
	kind := media.ParseKind(args[0])
	if !kind.IsMedia() {
		return media.Other, 0, fmt.Errorf("unknown kind %q (use movie or tv)", args[0])
	}
	if err := httputil.ValidateNumericID(args[1]); err != nil {
		return media.Other, 0, err
	}
	id, err := strconv.Atoi(args[1])
	if err != nil || id <= 0 {
		return media.Other, 0, fmt.Errorf("invalid id %q", args[1])
	}
	return kind, id, nil
}

// openDetails opens the details of the target and returns them.
func openDetails(cmd *cobra.Command, a *app, args []string) (view.Detail, error) {
	kind, id, err := parseTarget(args)
	if err != nil {
		return view.Detail{}, err
	}
	if err := a.requireAPIKey(); err != nil {
		return view.Detail{}, err
	}

	ctx := cmd.Context()
	a.projector.LoadTheme(ctx)
	a.projector.OpenDetails(ctx, id, kind)

	detail, ok := a.projector.State().Selection()
	if !ok {
		return view.Detail{}, errors.New(view.DetailsErrorNotice)
	}
	return detail, nil
}

func detailsRun(cmd *cobra.Command, args []string) error {
	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer a.close()

	detail, err := openDetails(cmd, a, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if flagJSON {
		url := playback.URL(a.cfg.PlaybackBase, detail.Kind, detail.ID)
		return writeJSON(out, struct {
			view.Detail
			PlaybackURL string `json:"playback_url"`
		}{detail, url})
	}
	if err := a.show(out); err != nil {
		return err
	}

	if !a.interactive() {
		return nil
	}
	return a.act(cmd.Context(), out, detail)
}

func playRun(cmd *cobra.Command, args []string) error {
	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer a.close()

	detail, err := openDetails(cmd, a, args)
	if err != nil {
		return err
	}

	a.log.Debug("playing", "title", detail.Title, "launcher", a.launcher.Name())
	if err := a.projector.RequestPlayback(cmd.Context()); err != nil {
		return err
	}
	return a.snapshot()
}
