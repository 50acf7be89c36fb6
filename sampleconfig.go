// Copyright (c) 2017-2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	_ "embed"
)

//go:embed sample-dcrhelp.conf
var sampleDcrhelpConf string

// sampleConfig returns a string containing the commented example config for
// dcrhelp.
func sampleConfig() string {
	return sampleDcrhelpConf
}
