// Package config provides the runtime settings of dayshift. Settings are read
// from DAYSHIFT_* environment variables and overridden by explicitly set
// command-line flags; nothing is persisted between invocations.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Setting keys.
const (
	KeyVerbose = "verbose"
	KeyLogFile = "log.file"
	KeyTheme   = "theme"
)

// Settings holds the runtime configuration.
type Settings struct {
	// Verbose enables debug logging.
	Verbose bool
	// LogFile redirects the log to a rotated file. Empty means stderr.
	LogFile string
	// Theme is the directory used by "set" when no path is given.
	Theme string
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyTheme, "")
}

// NewViper returns a viper instance with defaults and environment binding.
// KeyLogFile maps to DAYSHIFT_LOG_FILE.
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load resolves Settings from v, then applies any flag in flags that was
// explicitly set. Flags are matched by name: "verbose", "log-file", "theme".
// Flags are not bound to viper so that an unset flag's default never
// overrides the environment.
func Load(v *viper.Viper, flags *pflag.FlagSet) (Settings, error) {
	s := Settings{
		Verbose: v.GetBool(KeyVerbose),
		LogFile: v.GetString(KeyLogFile),
		Theme:   v.GetString(KeyTheme),
	}

	if flags != nil {
		var err error
		if flags.Changed("verbose") {
			if s.Verbose, err = flags.GetBool("verbose"); err != nil {
				return Settings{}, fmt.Errorf("reading --verbose: %w", err)
			}
		}
		if flags.Changed("log-file") {
			if s.LogFile, err = flags.GetString("log-file"); err != nil {
				return Settings{}, fmt.Errorf("reading --log-file: %w", err)
			}
		}
		if flags.Changed("theme") {
			if s.Theme, err = flags.GetString("theme"); err != nil {
				return Settings{}, fmt.Errorf("reading --theme: %w", err)
			}
		}
	}

	if s.LogFile == DefaultLogFileMarker {
		path, err := DefaultLogFile()
		if err != nil {
			return Settings{}, err
		}
		s.LogFile = path
	}
	return s, nil
}

// DefaultLogFile returns the per-user log file location: the user cache
// directory on Windows, a dot directory under home elsewhere.
func DefaultLogFile() (string, error) {
	var logDir string
	if runtime.GOOS == "windows" {
		userCacheDir, err := os.UserCacheDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user cache directory: %w", err)
		}
		logDir = filepath.Join(userCacheDir, LogWinSubDir)
	} else {
		userHomeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		logDir = filepath.Join(userHomeDir, LogSubDir)
	}
	return filepath.Join(logDir, AppName+LogExt), nil
}
