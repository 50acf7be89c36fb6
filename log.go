// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/decred/dcrhelp/internal/catalog"
	"github.com/decred/dcrhelp/internal/declfile"
	"github.com/decred/dcrhelp/internal/loggers"
)

var log = loggers.MainLog

// Initialize package-global logger variables.
func init() {
	catalog.UseLogger(loggers.CatalogLog)
	declfile.UseLogger(loggers.DeclLog)
}
