package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cinefront/internal/ui"
	"cinefront/internal/view"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search movies and TV shows",
	Args:  cobra.ArbitraryArgs,
	RunE:  searchRun,
}

// searchRun handles cinefront search <query> and cinefront <query>.
func searchRun(cmd *cobra.Command, args []string) error {
	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.requireAPIKey(); err != nil {
		return err
	}

	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		if !a.interactive() {
			return fmt.Errorf("no search query provided")
		}
		query, err = ui.Input("Search")
		if err != nil {
			return fmt.Errorf("no search query provided")
		}
	}

	a.log.Debug("searching", "query", query)

	ctx := cmd.Context()
	a.projector.LoadTheme(ctx)
	a.projector.Search(ctx, query)

	out := cmd.OutOrStdout()
	results := a.screen.Cards(view.RegionSearchResults)
	if flagJSON {
		if err := writeJSON(out, results); err != nil {
			return err
		}
	}
	if err := a.show(out); err != nil {
		return err
	}

	if !a.interactive() {
		return nil
	}
	return a.browseResults(ctx, out, results)
}
