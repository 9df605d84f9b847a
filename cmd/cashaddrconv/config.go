// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/decred/cashaddr"
	"github.com/decred/cashaddr/sampleconfig"
	"github.com/decred/dcrd/dcrutil/v4"
	"github.com/decred/slog"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultConfigFilename = "cashaddrconv.conf"
	defaultLogDirname     = "logs"
	defaultLogFilename    = "cashaddrconv.log"
	defaultLogLevel       = "warn"
	defaultCacheSize      = 1000

	formatCash   = "cash"
	formatLegacy = "legacy"
	formatBoth   = "both"
)

var (
	defaultAppDataDir = dcrutil.AppDataDir("cashaddrconv", false)
	defaultConfigFile = filepath.Join(defaultAppDataDir, defaultConfigFilename)
	defaultLogDir     = filepath.Join(defaultAppDataDir, defaultLogDirname)
)

// config defines the configuration options for cashaddrconv.
//
// See loadConfig for details on the configuration load process.
type config struct {
	// General application behavior.
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
	ConfigFile  string `short:"C" long:"configfile" description:"Path to configuration file"`
	AppDataDir  string `short:"A" long:"appdata" description:"Application data directory for the config file and logs"`

	// Output settings.
	Format    string `short:"f" long:"format" description:"Address format to output" choice:"cash" choice:"legacy" choice:"both"`
	Check     bool   `long:"check" description:"Only report whether each address is valid"`
	Prefix    string `long:"prefix" description:"Prefix to use for CashAddr output instead of the one implied by the input"`
	JSON      bool   `long:"json" description:"Write one JSON object per address"`
	CacheSize uint32 `long:"cachesize" description:"Number of recent conversions to remember (0 to disable)"`

	// Logging.
	LogDir        string `long:"logdir" description:"Directory to log output"`
	NoFileLogging bool   `long:"nofilelogging" description:"Disable file logging"`
	DebugLevel    string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`

	// showSubsystems is set when the debug level requests the list of
	// subsystems instead of a level.
	showSubsystems bool
}

// errSuppressUsage signifies that an error that happened during the initial
// configuration phase should suppress the usage output since it was not caused
// by the user.
type errSuppressUsage string

// Error implements the error interface.
func (e errSuppressUsage) Error() string {
	return string(e)
}

// cleanAndExpandPath expands environment variables and a leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Nothing to do when no path is given.
	if path == "" {
		return path
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows cmd.exe-style
	// %VARIABLE%, but the variables can still be expanded via POSIX-style
	// $VARIABLE.
	path = os.ExpandEnv(path)
	if !strings.HasPrefix(path, "~") {
		return filepath.Clean(path)
	}

	// Expand the initial ~ to the current user's home directory.  Fall back to
	// the working directory when it is unknown.
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		homeDir = "."
	}
	return filepath.Join(homeDir, path[1:])
}

// validLogLevel returns whether or not logLevel is a valid debug log level.
func validLogLevel(logLevel string) bool {
	_, ok := slog.LevelFromString(logLevel)
	return ok
}

// parseAndSetDebugLevels attempts to parse the specified debug level and set
// the levels accordingly.  An appropriate error is returned if anything is
// invalid.
func parseAndSetDebugLevels(debugLevel string) error {
	// When the specified string doesn't have any delimiters, treat it as
	// the log level for all subsystems.
	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		// Validate debug log level.
		if !validLogLevel(debugLevel) {
			str := "the specified debug level [%v] is invalid"
			return fmt.Errorf(str, debugLevel)
		}

		// Change the logging level for all subsystems.
		setLogLevels(debugLevel)
		return nil
	}

	// Split the specified string into subsystem/level pairs while detecting
	// issues and update the log levels accordingly.
	for _, logLevelPair := range strings.Split(debugLevel, ",") {
		if !strings.Contains(logLevelPair, "=") {
			str := "the specified debug level contains an invalid " +
				"subsystem/level pair [%v]"
			return fmt.Errorf(str, logLevelPair)
		}

		// Extract the specified subsystem and log level.
		fields := strings.Split(logLevelPair, "=")
		subsysID, logLevel := fields[0], fields[1]

		// Validate subsystem.
		if _, exists := subsystemLoggers[subsysID]; !exists {
			str := "the specified subsystem [%v] is invalid -- " +
				"supported subsystems %v"
			return fmt.Errorf(str, subsysID, supportedSubsystems())
		}

		// Validate log level.
		if !validLogLevel(logLevel) {
			str := "the specified debug level [%v] is invalid"
			return fmt.Errorf(str, logLevel)
		}

		setLogLevel(subsysID, logLevel)
	}

	return nil
}

// createDefaultConfigFile writes the sample configuration to destPath,
// creating its directory as needed.
func createDefaultConfigFile(destPath string) error {
	if err := os.MkdirAll(filepath.Dir(destPath), 0700); err != nil {
		return err
	}
	return os.WriteFile(destPath, []byte(sampleconfig.Cashaddrconv()), 0600)
}

// loadConfig initializes and parses the config using a config file and command
// line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for an alternative config file or
//     application data directory
//  3. Load configuration file overwriting defaults with any specified options
//  4. Parse CLI options and overwrite/add any specified options
//
// The above results in cashaddrconv functioning properly without any config
// settings while still allowing the user to override settings with config
// files and command line options.  Command line options always take
// precedence.  The remaining positional arguments are the addresses to
// convert.
func loadConfig(appName string, args []string) (*config, []string, error) {
	// Default config.
	cfg := config{
		ConfigFile: defaultConfigFile,
		AppDataDir: defaultAppDataDir,
		Format:     formatBoth,
		CacheSize:  defaultCacheSize,
		LogDir:     defaultLogDir,
		DebugLevel: defaultLogLevel,
	}

	// Pre-parse the command line options to see if an alternative config
	// file, the version flag or the help flag was specified.  Any errors aside
	// from the help message error can be ignored here since they will be
	// caught by the final parse below.
	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.HelpFlag|flags.PassDoubleDash)
	preParser.Name = appName
	preParser.Usage = "[OPTIONS] [address ...]"
	_, err := preParser.ParseArgs(args)
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			return nil, nil, err
		}
	}

	// Show the version and exit if the version flag was specified.
	if preCfg.ShowVersion {
		return &preCfg, nil, nil
	}

	// Update the application data directory if specified.  The default config
	// file and log directory live inside of it, so they follow it unless they
	// were also overridden.
	if preCfg.AppDataDir != defaultAppDataDir {
		cfg.AppDataDir = cleanAndExpandPath(preCfg.AppDataDir)
		cfg.ConfigFile = filepath.Join(cfg.AppDataDir, defaultConfigFilename)
		cfg.LogDir = filepath.Join(cfg.AppDataDir, defaultLogDirname)
	}
	customConfigFile := preCfg.ConfigFile != defaultConfigFile
	if customConfigFile {
		cfg.ConfigFile = cleanAndExpandPath(preCfg.ConfigFile)
	}

	// Write the sample config when the default config file does not exist
	// yet.
	if !customConfigFile {
		if _, err := os.Stat(cfg.ConfigFile); os.IsNotExist(err) {
			if err := createDefaultConfigFile(cfg.ConfigFile); err != nil {
				convLog.Warnf("Unable to create a default config file: %v",
					err)
			}
		}
	}

	// Load additional config from file.  A missing default config file is not
	// an error.
	parser := flags.NewParser(&cfg, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = appName
	parser.Usage = "[OPTIONS] [address ...]"
	err = flags.NewIniParser(parser).ParseFile(cfg.ConfigFile)
	if err != nil {
		var e *os.PathError
		if customConfigFile || !errors.As(err, &e) {
			return nil, nil, fmt.Errorf("error parsing config file %s: %w",
				cfg.ConfigFile, err)
		}
	}

	// Parse command line options again to ensure they take precedence.
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, err
	}

	// Special show command to list supported subsystems.
	if cfg.DebugLevel == "show" {
		cfg.showSubsystems = true
		return &cfg, nil, nil
	}

	// Parse, validate, and set debug log level(s).
	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		return nil, nil, err
	}

	// Validate the output prefix.
	if cfg.Prefix != "" {
		cfg.Prefix = strings.ToLower(cfg.Prefix)
		_, err := cashaddr.NewAddress(cashaddr.P2PKH, nil, cfg.Prefix)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid prefix: %w", err)
		}
	}

	// Initialize log rotation.
	cfg.LogDir = cleanAndExpandPath(cfg.LogDir)
	if !cfg.NoFileLogging {
		logFile := filepath.Join(cfg.LogDir, defaultLogFilename)
		if err := initLogRotator(logFile); err != nil {
			return nil, nil, errSuppressUsage(err.Error())
		}
	}

	return &cfg, remainingArgs, nil
}
