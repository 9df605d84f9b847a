// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/decred/cashaddr/internal/version"
	flags "github.com/jessevdk/go-flags"
	"golang.org/x/term"
)

// Exit codes of the process.
const (
	exitSuccess = 0
	exitFailure = 1
	exitUsage   = 2
)

// cashaddrconvMain is the real main function for cashaddrconv.  It is
// necessary to work around the fact that deferred functions do not run when
// os.Exit() is called.  The returned value is the exit code.
func cashaddrconvMain() int {
	// Load configuration and parse command line.  This function also
	// initializes logging and configures it accordingly.
	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	cfg, args, err := loadConfig(appName, os.Args[1:])
	if err != nil {
		var fe *flags.Error
		if errors.As(err, &fe) && fe.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			return exitSuccess
		}

		fmt.Fprintln(os.Stderr, err)
		var e errSuppressUsage
		if errors.As(err, &e) {
			return exitFailure
		}
		fmt.Fprintf(os.Stderr, "Use %s -h to show usage\n", appName)
		return exitUsage
	}
	defer closeLogRotator()

	if cfg.ShowVersion {
		fmt.Printf("%s version %s (Go version %s %s/%s)\n", appName,
			version.String(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
		return exitSuccess
	}
	if cfg.showSubsystems {
		fmt.Println("Supported subsystems", supportedSubsystems())
		return exitSuccess
	}

	// Get a context that will be canceled when a shutdown signal has been
	// triggered from an OS signal such as SIGINT (Ctrl+C).
	ctx := shutdownListener()

	convLog.Debugf("Version %s (Go version %s %s/%s)", version.String(),
		runtime.Version(), runtime.GOOS, runtime.GOARCH)
	convLog.Debugf("App data dir: %s", cfg.AppDataDir)
	if cfg.NoFileLogging {
		convLog.Debug("File logging disabled")
	}

	// Addresses come from the command line when any are given and from
	// standard input otherwise.  Interactive input is prompted for.
	inputs, readErr := argInputs(args)
	if len(args) == 0 {
		var prompt io.Writer
		if term.IsTerminal(int(os.Stdin.Fd())) {
			prompt = os.Stderr
		}
		inputs, readErr = readLines(ctx, os.Stdin, prompt)
	}

	conv := newConverter(cfg, os.Stdout, os.Stderr)
	stats, err := conv.run(ctx, inputs)
	if err != nil {
		if shutdownRequested(ctx) {
			convLog.Infof("Stopped after %d addresses", stats.processed)
		} else {
			convLog.Error(err)
		}
		return exitFailure
	}
	if err := <-readErr; err != nil {
		convLog.Errorf("Unable to read addresses: %v", err)
		return exitFailure
	}

	convLog.Debugf("Processed %d addresses (%d failed)", stats.processed,
		stats.failed)
	if stats.failed > 0 {
		return exitFailure
	}
	return exitSuccess
}

func main() {
	// Work around defer not working after os.Exit()
	os.Exit(cashaddrconvMain())
}
