package config

import "strings"

// AppVersion is the version of the tool, overridable at build time with
// -ldflags "-X github.com/dixieflatline76/dayshift/config.AppVersion=x.y.z".
var AppVersion = "0.3.0"

// AppName is the name of the tool.
const AppName = "dayshift"

// EnvPrefix is the prefix of the environment variables read into Settings.
var EnvPrefix = strings.ToUpper(AppName)

// ThemeConfigFile is the name of the config document inside a theme directory.
const ThemeConfigFile = AppName + ".config.json"

// LogWinSubDir is the sub directory for the log files on windows.
var LogWinSubDir = AppName

// LogSubDir is the sub directory for the log files.
var LogSubDir = "." + AppName

// LogExt is the extension for the log files.
var LogExt = ".log"

// DefaultLogFileMarker selects DefaultLogFile as the log file.
const DefaultLogFileMarker = "default"
