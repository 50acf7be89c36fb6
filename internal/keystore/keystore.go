// Copyright (c) 2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package keystore provides an in-memory record of the public keys behind
// pay-to-pubkey-hash addresses.
package keystore

import (
	"sync"

	"github.com/decred/dcrd/dcrec"
	"github.com/decred/dcrd/dcrec/secp256k1"
	"github.com/decred/dcrd/dcrutil/v2"
	"github.com/decred/dcrhelp/errors"
)

// Store maps pubkey-hash addresses of a single network to their public keys.
// It is safe for concurrent use.
type Store struct {
	params dcrutil.AddressParams

	mu   sync.RWMutex
	keys map[string]*secp256k1.PublicKey
}

// New returns an empty store for addresses of the network described by
// params.
func New(params dcrutil.AddressParams) *Store {
	return &Store{
		params: params,
		keys:   make(map[string]*secp256k1.PublicKey),
	}
}

// Add records pk and returns its pay-to-pubkey-hash address.  Adding a key
// that is already recorded is not an error.
func (s *Store) Add(pk *secp256k1.PublicKey) (*dcrutil.AddressPubKeyHash, error) {
	const op errors.Op = "keystore.Add"
	if pk == nil {
		return nil, errors.E(op, errors.PubKey, "nil public key")
	}
	hash := dcrutil.Hash160(pk.SerializeCompressed())
	addr, err := dcrutil.NewAddressPubKeyHash(hash, s.params, dcrec.STEcdsaSecp256k1)
	if err != nil {
		return nil, errors.E(op, errors.Encoding, err)
	}

	s.mu.Lock()
	s.keys[addr.Address()] = pk
	s.mu.Unlock()

	return addr, nil
}

// PubKey returns the public key recorded for addr.  Errors with kind
// errors.NotExist are returned for unknown addresses.
func (s *Store) PubKey(addr dcrutil.Address) (*secp256k1.PublicKey, error) {
	const op errors.Op = "keystore.PubKey"

	s.mu.RLock()
	pk, ok := s.keys[addr.Address()]
	s.mu.RUnlock()

	if !ok {
		return nil, errors.E(op, errors.NotExist,
			errors.Errorf("no public key for address %s", addr.Address()))
	}
	return pk, nil
}

// Len returns the number of recorded keys.
func (s *Store) Len() int {
	s.mu.RLock()
	n := len(s.keys)
	s.mu.RUnlock()
	return n
}
