// Copyright (c) 2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package loggers

import (
	"testing"

	"github.com/decred/slog"
	"github.com/google/go-cmp/cmp"
)

func TestSubsystems(t *testing.T) {
	want := []string{"CTLG", "DECL", "HELP"}
	if diff := cmp.Diff(want, Subsystems()); diff != "" {
		t.Errorf("subsystems differ (-want +got):\n%s", diff)
	}
}

func TestSetLevel(t *testing.T) {
	defer SetLevels("info")

	if !SetLevel("CTLG", "trace") {
		t.Fatalf("CTLG not a known subsystem")
	}
	if CatalogLog.Level() != slog.LevelTrace {
		t.Errorf("CTLG level %v, want trace", CatalogLog.Level())
	}
	if SetLevel("NOPE", "debug") {
		t.Errorf("unknown subsystem accepted")
	}

	SetLevels("warn")
	for _, l := range []slog.Logger{MainLog, CatalogLog, DeclLog} {
		if l.Level() != slog.LevelWarn {
			t.Errorf("level %v, want warn", l.Level())
		}
	}
}

func TestCloseWithoutRotator(t *testing.T) {
	if err := CloseLogRotator(); err != nil {
		t.Fatal(err)
	}
}
