// Package cmd implements the dayshift command line.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dixieflatline76/dayshift/config"
	"github.com/dixieflatline76/dayshift/pkg/daytime"
	"github.com/dixieflatline76/dayshift/pkg/shift"
	"github.com/dixieflatline76/dayshift/pkg/wallpaper"
	"github.com/dixieflatline76/dayshift/util/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// errReported marks an error whose message has already been written.
var errReported = errors.New("reported")

const helpText = `
Usage: dayshift <command> <args...>

Commands:
    get             Get the current wallpaper path
    set             Set the wallpaper theme
    help            Display this help message
    version         Display the version number

Options:
    -h, --help      Display the help message
    -v, --version   Display the version number
    --dry-run       Show the wallpaper 'set' would install without changing it
    --verbose       Log debug output
    --log-file      Write the log to a rotated file ('default' for the per-user location)

Examples:
    dayshift get
    dayshift set /path/to/wallpapers
    dayshift set /path/to/wallpapers --dry-run
    dayshift help
    dayshift version

Note:
    The 'set' command requires a valid directory path containing wallpapers,
    or a single image file. DAYSHIFT_THEME names the directory used when
    'set' is called without a path.
`

// app carries the collaborators and settings shared by the commands.
type app struct {
	shifter  *shift.Shifter
	viper    *viper.Viper
	settings config.Settings
}

// Execute runs the command line with the process arguments and returns the
// exit code.
func Execute() int {
	return Run(os.Args[1:], wallpaper.NewOS(), daytime.SystemClock{}, os.Stdout, os.Stderr)
}

// Run executes args against the given wallpaper port and clock. It returns 0
// on success and 1 on any error, which is written to stderr as one line.
func Run(args []string, osPort wallpaper.OS, clock daytime.Clock, stdout, stderr io.Writer) int {
	defer log.Close()

	root := newRootCmd(&app{
		shifter: shift.New(osPort, clock),
		viper:   config.NewViper(),
	})
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           config.AppName,
		Short:         "Rotate the desktop wallpaper over the course of a day",
		Version:       config.AppVersion,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: Unknown command '%s'\n", args[0])
			}
			fmt.Fprint(cmd.OutOrStdout(), helpText)
			return errReported
		},
	}

	root.PersistentFlags().Bool("verbose", false, "log debug output")
	root.PersistentFlags().String("log-file", "", "write the log to a rotated file")

	defaultHelp := root.HelpFunc()
	root.SetHelpFunc(func(c *cobra.Command, args []string) {
		if c == root {
			fmt.Fprint(c.OutOrStdout(), helpText)
			return
		}
		defaultHelp(c, args)
	})
	root.SetVersionTemplate("{{.Version}}\n")
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(newGetCmd(a), newSetCmd(a), newVersionCmd())
	return root
}

// setup resolves settings and configures logging.
func (a *app) setup(cmd *cobra.Command) error {
	settings, err := config.Load(a.viper, cmd.Flags())
	if err != nil {
		return err
	}
	a.settings = settings

	if err := log.Setup(settings.Verbose, settings.LogFile); err != nil {
		return err
	}
	log.Debugf("%s %s, settings %+v", config.AppName, config.AppVersion, settings)
	return nil
}
