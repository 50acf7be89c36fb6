// Copyright (c) 2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package catalog holds the set of RPC methods that help is generated for.
package catalog

import (
	"sort"
	"strings"
	"sync"

	"github.com/decred/dcrhelp/errors"
	"github.com/decred/dcrhelp/internal/netparams"
	"github.com/decred/dcrhelp/rpchelp"
)

// Catalog is a set of uniquely named method descriptions.  It is safe for
// concurrent use.
type Catalog struct {
	mu      sync.RWMutex
	methods map[string]*rpchelp.Method
}

// New returns a catalog of the built-in mining and wallet methods.  Examples
// are computed for the network described by params.
func New(params *netparams.Params) (*Catalog, error) {
	const op errors.Op = "catalog.New"

	c := &Catalog{methods: make(map[string]*rpchelp.Method)}
	wallet, err := walletMethods(params)
	if err != nil {
		return nil, errors.E(op, err)
	}
	for _, m := range append(miningMethods(params), wallet...) {
		if err := c.Add(m); err != nil {
			return nil, errors.E(op, err)
		}
	}
	log.Debugf("Declared %d built-in methods for %s", len(c.methods), params.Name)
	return c, nil
}

// Add adds a method.  Errors with kind errors.Exist are returned when a
// method of the same name was already added.
func (c *Catalog) Add(m *rpchelp.Method) error {
	const op errors.Op = "catalog.Add"
	if m == nil {
		return errors.E(op, errors.Invalid, "nil method")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.methods[m.Name()]; ok {
		return errors.E(op, errors.Exist,
			errors.Errorf("method %q is already declared", m.Name()))
	}
	c.methods[m.Name()] = m
	log.Tracef("Declared method %s", m.Usage())
	return nil
}

// Lookup returns the method with the given name.
func (c *Catalog) Lookup(name string) (*rpchelp.Method, bool) {
	c.mu.RLock()
	m, ok := c.methods[name]
	c.mu.RUnlock()
	return m, ok
}

// Methods returns all methods sorted by name.
func (c *Catalog) Methods() []*rpchelp.Method {
	c.mu.RLock()
	methods := make([]*rpchelp.Method, 0, len(c.methods))
	for _, m := range c.methods {
		methods = append(methods, m)
	}
	c.mu.RUnlock()

	sort.Slice(methods, func(i, j int) bool {
		return methods[i].Name() < methods[j].Name()
	})
	return methods
}

// Usage returns the one-line usage of every method, sorted by method name and
// separated by newlines.
func (c *Catalog) Usage() string {
	var b strings.Builder
	for _, m := range c.Methods() {
		b.WriteString(m.Usage())
		b.WriteByte('\n')
	}
	return b.String()
}

// Help returns the full help text of the named method.  Errors with kind
// errors.NotExist are returned for unknown methods.
func (c *Catalog) Help(name string) (string, error) {
	const op errors.Op = "catalog.Help"
	m, ok := c.Lookup(name)
	if !ok {
		return "", errors.E(op, errors.NotExist,
			errors.Errorf("unknown method %q", name))
	}
	return m.Render(), nil
}
