package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:       "theme [toggle]",
	Short:     "Show or toggle the color theme",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"toggle"},
	RunE:      themeRun,
}

func themeRun(cmd *cobra.Command, args []string) error {
	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer a.close()

	ctx := cmd.Context()
	theme := a.projector.LoadTheme(ctx)
	if len(args) == 1 {
		theme, err = a.projector.ToggleTheme(ctx)
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), theme)
	return a.snapshot()
}
