// Copyright (c) 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"
	"os/signal"
)

// signals defines the signals that are handled to do a clean shutdown.
// Conditional compilation is used to also include SIGTERM on Unix.
var signals = []os.Signal{os.Interrupt}

// withShutdownCancel creates a copy of a context that is cancelled when an
// interrupt signal is received.  Later signals are logged and otherwise
// ignored.
func withShutdownCancel(ctx context.Context) context.Context {
	ctx, cancel := context.WithCancel(ctx)
	interruptChannel := make(chan os.Signal, 1)
	signal.Notify(interruptChannel, signals...)
	go func() {
		sig := <-interruptChannel
		log.Infof("Received signal (%s).  Shutting down...", sig)
		cancel()
		for range interruptChannel {
			log.Info("Shutdown signaled.  Already shutting down...")
		}
	}()
	return ctx
}
