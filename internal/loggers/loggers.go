// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package loggers creates the subsystem loggers of dcrhelp from a single
// logging backend.
package loggers

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/decred/dcrhelp/errors"
	"github.com/decred/slog"
	"github.com/jrick/logrotate/rotator"
)

// logWriter implements an io.Writer that outputs to both standard error and
// the write-end pipe of an initialized log rotator.  Standard output is
// reserved for rendered help text.
type logWriter struct{}

func (logWriter) Write(p []byte) (n int, err error) {
	os.Stderr.Write(p)
	if logRotator != nil {
		logRotator.Write(p)
	}
	return len(p), nil
}

// Loggers per subsystem.  A single backend logger is created and all subsytem
// loggers created from it will write to the backend.  When adding new
// subsystems, add the subsystem logger variable here and to the
// subsystemLoggers map.
var (
	// backendLog is the logging backend used to create all subsystem loggers.
	backendLog = slog.NewBackend(logWriter{})

	// logRotator is one of the logging outputs.  It is nil until
	// InitLogRotator is called and should be closed on application shutdown.
	logRotator *rotator.Rotator

	MainLog    = backendLog.Logger("HELP")
	CatalogLog = backendLog.Logger("CTLG")
	DeclLog    = backendLog.Logger("DECL")
)

// subsystemLoggers maps each subsystem identifier to its associated logger.
var subsystemLoggers = map[string]slog.Logger{
	"HELP": MainLog,
	"CTLG": CatalogLog,
	"DECL": DeclLog,
}

// InitLogRotator initializes the logging rotater to write logs to logFile and
// create roll files in the same directory.  logSize is the size in KiB after
// which a log file will be rotated.
func InitLogRotator(logFile string, logSize int64) error {
	const op errors.Op = "loggers.InitLogRotator"
	logDir, _ := filepath.Split(logFile)
	err := os.MkdirAll(logDir, 0700)
	if err != nil {
		return errors.E(op, errors.IO, err)
	}
	r, err := rotator.New(logFile, logSize, false, 0)
	if err != nil {
		return errors.E(op, errors.IO, err)
	}

	logRotator = r
	return nil
}

// CloseLogRotator closes the log rotator, syncing all file writes, if the
// rotator was initialized.
func CloseLogRotator() error {
	if logRotator == nil {
		return nil
	}

	return logRotator.Close()
}

// Subsystems returns the sorted identifiers of all subsystems.
func Subsystems() []string {
	ids := make([]string, 0, len(subsystemLoggers))
	for id := range subsystemLoggers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// SetLevel sets the logging level for provided subsystem.  It reports false
// for unknown subsystems.  Invalid levels default to info.
func SetLevel(subsystemID string, logLevel string) bool {
	logger, ok := subsystemLoggers[subsystemID]
	if !ok {
		return false
	}

	level, _ := slog.LevelFromString(logLevel)
	logger.SetLevel(level)
	return true
}

// SetLevels sets the log level for all subsystem loggers to the passed
// level.
func SetLevels(logLevel string) {
	for subsystemID := range subsystemLoggers {
		SetLevel(subsystemID, logLevel)
	}
}
