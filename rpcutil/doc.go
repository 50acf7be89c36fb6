// Copyright (c) 2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpcutil provides the key, address, and script helpers used by wallet
// RPC method implementations and by the examples of their help text.
package rpcutil
