package cmd

import (
	"github.com/spf13/cobra"

	"cinefront/internal/view"
)

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Show trending, current and popular titles",
	Args:  cobra.NoArgs,
	RunE:  homeRun,
}

var homeTitles = map[view.Region]string{
	view.RegionTrendingMovies: "Trending Movies",
	view.RegionTrendingSeries: "Trending TV Shows",
	view.RegionLatestMovies:   "Latest Movies",
	view.RegionLatestSeries:   "Latest TV Shows",
	view.RegionPopularAnime:   "Popular Anime",
}

func homeRun(cmd *cobra.Command, args []string) error {
	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.requireAPIKey(); err != nil {
		return err
	}

	ctx := cmd.Context()
	a.projector.LoadTheme(ctx)
	a.projector.LoadHome(ctx)

	out := cmd.OutOrStdout()
	if flagJSON {
		sections := make(map[view.Region][]view.Card, len(view.HomeRegions))
		for _, region := range view.HomeRegions {
			sections[region] = a.screen.Cards(region)
		}
		if err := writeJSON(out, sections); err != nil {
			return err
		}
	}
	if err := a.show(out); err != nil {
		return err
	}

	if !a.interactive() {
		return nil
	}

	return a.homeMenu(ctx, out)
}
