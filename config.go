// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/decred/dcrd/dcrutil/v2"
	"github.com/decred/dcrhelp/errors"
	"github.com/decred/dcrhelp/internal/loggers"
	"github.com/decred/dcrhelp/internal/netparams"
	"github.com/decred/dcrhelp/version"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultConfigFilename = "dcrhelp.conf"
	defaultLogLevel       = "info"
	defaultLogFilename    = "dcrhelp.log"
	defaultLogSize        = 10 * 1024 // KiB
	defaultFormat         = "text"
)

var (
	defaultAppDataDir = dcrutil.AppDataDir("dcrhelp", false)
	defaultConfigFile = filepath.Join(defaultAppDataDir, defaultConfigFilename)
)

type config struct {
	// General application behavior
	ConfigFile  string `short:"C" long:"configfile" description:"Path to configuration file"`
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
	ShowSample  bool   `long:"sampleconfig" description:"Print a commented example configuration file and exit"`
	TestNet     bool   `long:"testnet" description:"Generate examples for the test network"`
	SimNet      bool   `long:"simnet" description:"Generate examples for the simulation test network"`
	DebugLevel  string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical}, or SUBSYS=level,... pairs; use show to list subsystems"`
	LogDir      string `long:"logdir" description:"Directory to also write log output to"`

	// Output
	Format string   `long:"format" description:"Output format" choice:"text" choice:"markdown"`
	All    bool     `long:"all" description:"Print the full help of every method instead of the usage listing"`
	Decl   []string `long:"decl" description:"Add the methods declared in a YAML or TOML file (may be repeated)"`
	OutDir string   `long:"outdir" description:"Write the help of each method to a file in this directory"`

	params *netparams.Params
}

// cleanAndExpandPath expands environement variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// NOTE: The os.ExpandEnv doesn't work with Windows cmd.exe-style
	// %VARIABLE%, but they variables can still be expanded via POSIX-style
	// $VARIABLE.
	path = os.ExpandEnv(path)

	if !strings.HasPrefix(path, "~") {
		return filepath.Clean(path)
	}

	// Expand initial ~ to the current user's home directory, or ~otheruser
	// to otheruser's home directory.  On Windows, both forward and backward
	// slashes can be used.
	path = path[1:]

	var pathSeparators string
	if runtime.GOOS == "windows" {
		pathSeparators = string(os.PathSeparator) + "/"
	} else {
		pathSeparators = string(os.PathSeparator)
	}

	userName := ""
	if i := strings.IndexAny(path, pathSeparators); i != -1 {
		userName = path[:i]
		path = path[i:]
	}

	homeDir := ""
	var u *user.User
	var err error
	if userName == "" {
		u, err = user.Current()
	} else {
		u, err = user.Lookup(userName)
	}
	if err == nil {
		homeDir = u.HomeDir
	}
	// Fallback to CWD if user lookup fails or user has no home directory.
	if homeDir == "" {
		homeDir = "."
	}

	return filepath.Join(homeDir, path)
}

// validLogLevel returns whether or not logLevel is a valid debug log level.
func validLogLevel(logLevel string) bool {
	switch logLevel {
	case "trace", "debug", "info", "warn", "error", "critical":
		return true
	}
	return false
}

// parseAndSetDebugLevels attempts to parse the specified debug level and set
// the levels accordingly.  An appropriate error is returned if anything is
// invalid.
func parseAndSetDebugLevels(debugLevel string) error {
	const op errors.Op = "parseAndSetDebugLevels"

	// When the specified string doesn't have any delimters, treat it as
	// the log level for all subsystems.
	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		if !validLogLevel(debugLevel) {
			return errors.E(op, errors.Invalid,
				errors.Errorf("the specified debug level [%v] is invalid", debugLevel))
		}
		loggers.SetLevels(debugLevel)
		return nil
	}

	// Split the specified string into subsystem/level pairs while detecting
	// issues and update the log levels accordingly.
	for _, logLevelPair := range strings.Split(debugLevel, ",") {
		fields := strings.Split(logLevelPair, "=")
		if len(fields) != 2 {
			return errors.E(op, errors.Invalid, errors.Errorf(
				"the specified debug level contains an invalid subsystem/level pair [%v]",
				logLevelPair))
		}
		subsysID, logLevel := fields[0], fields[1]

		if !validLogLevel(logLevel) {
			return errors.E(op, errors.Invalid,
				errors.Errorf("the specified debug level [%v] is invalid", logLevel))
		}
		if !loggers.SetLevel(subsysID, logLevel) {
			return errors.E(op, errors.Invalid, errors.Errorf(
				"the specified subsystem [%v] is invalid -- supported subsystems %v",
				subsysID, loggers.Subsystems()))
		}
	}

	return nil
}

// loadConfig initializes and parses the config using a config file and the
// command line options in args.
//
// The configuration proceeds as follows:
//      1) Start with a default config with sane settings
//      2) Pre-parse the command line to check for an alternative config file
//      3) Load configuration file overwriting defaults with any specified options
//      4) Parse CLI options and overwrite/add any specified options
//
// The remaining positional arguments name the methods to render.  A missing
// config file at the default location is not an error.
func loadConfig(args []string) (*config, []string, error) {
	const op errors.Op = "loadConfig"

	// Default config.
	cfg := config{
		ConfigFile: defaultConfigFile,
		DebugLevel: defaultLogLevel,
		Format:     defaultFormat,
	}

	// Pre-parse the command line options to see if an alternative config
	// file or the version flag was specified.
	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.Default)
	_, err := preParser.ParseArgs(args)
	if err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return nil, nil, errors.E(op, errors.Invalid, err)
	}

	// Show the version and exit if the version flag was specified.
	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	if preCfg.ShowVersion {
		fmt.Printf("%s version %s (Go version %s %s/%s)\n", appName,
			version.String(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
		os.Exit(0)
	}

	// Print the example config and exit if requested.
	if preCfg.ShowSample {
		fmt.Print(sampleConfig())
		os.Exit(0)
	}

	// Load additional config from file.
	parser := flags.NewParser(&cfg, flags.Default)
	parser.Usage = "[OPTIONS] [method...]"
	configFilePath := cleanAndExpandPath(preCfg.ConfigFile)
	err = flags.NewIniParser(parser).ParseFile(configFilePath)
	if err != nil {
		if _, ok := err.(*os.PathError); !ok || preCfg.ConfigFile != defaultConfigFile {
			fmt.Fprintln(os.Stderr, err)
			return nil, nil, errors.E(op, errors.Invalid, err)
		}
	}

	// Parse command line options again to ensure they take precedence.
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, errors.E(op, errors.Invalid, err)
	}
	if len(remainingArgs) == 0 {
		remainingArgs = nil
	}

	// Choose the active network params based on the selected network.
	// Multiple networks can't be selected simultaneously.
	cfg.params = &netparams.MainNetParams
	numNets := 0
	if cfg.TestNet {
		cfg.params = &netparams.TestNet3Params
		numNets++
	}
	if cfg.SimNet {
		cfg.params = &netparams.SimNetParams
		numNets++
	}
	if numNets > 1 {
		err := errors.E(op, errors.Invalid,
			"the testnet and simnet params can't be used together -- choose one")
		fmt.Fprintln(os.Stderr, err)
		return nil, nil, err
	}

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		fmt.Println("Supported subsystems", loggers.Subsystems())
		os.Exit(0)
	}

	// Write logs to a rotated file in a per-network directory when a log
	// directory is configured.
	if cfg.LogDir != "" {
		cfg.LogDir = filepath.Join(cleanAndExpandPath(cfg.LogDir), cfg.params.Name)
		logFile := filepath.Join(cfg.LogDir, defaultLogFilename)
		if err := loggers.InitLogRotator(logFile, defaultLogSize); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return nil, nil, errors.E(op, err)
		}
	}

	// Parse, validate, and set debug log level(s).
	loggers.SetLevels(defaultLogLevel)
	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, errors.E(op, err)
	}

	for i := range cfg.Decl {
		cfg.Decl[i] = cleanAndExpandPath(cfg.Decl[i])
	}
	if cfg.OutDir != "" {
		cfg.OutDir = cleanAndExpandPath(cfg.OutDir)
	}

	return &cfg, remainingArgs, nil
}
