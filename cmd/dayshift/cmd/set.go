package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errNoPath = errors.New("usage: dayshift set <path> [--dry-run]")

func newSetCmd(a *app) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "set [path]",
		Short: "Set the wallpaper from a theme directory or an image",
		Long: `Set the wallpaper from a theme directory or an image file.

A theme directory holds numbered wallpapers (1.png, 2.jpg, ...) and an optional
dayshift.config.json listing the windows of the day they are spread across.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.settings.Theme
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				return errNoPath
			}

			msg, err := a.shifter.Set(path, dryRun)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show the wallpaper that would be set without changing it")
	cmd.Flags().String("theme", "", "theme directory used when no path is given")
	return cmd
}
