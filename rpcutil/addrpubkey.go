// Copyright (c) 2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcutil

import (
	"github.com/decred/dcrd/dcrec/secp256k1"
	"github.com/decred/dcrd/dcrutil/v2"
	"github.com/decred/dcrhelp/errors"
)

// KeyStore looks up the public key of a pay-to-pubkey-hash address.
// Implementations return an error with kind errors.NotExist for unknown
// addresses.
type KeyStore interface {
	PubKey(addr dcrutil.Address) (*secp256k1.PublicKey, error)
}

// AddrToPubKey returns the secp256k1 public key of the encoded address addr.
// Pay-to-pubkey addresses carry their key.  Pubkey-hash addresses are resolved
// through store, which may be nil when no lookups are possible.
func AddrToPubKey(params dcrutil.AddressParams, store KeyStore, addr string) (*secp256k1.PublicKey, error) {
	const op errors.Op = "rpcutil.AddrToPubKey"

	a, err := dcrutil.DecodeAddress(addr, params)
	if err != nil {
		return nil, errors.E(op, errors.Encoding,
			errors.Errorf("invalid address %q: %v", addr, err))
	}

	switch a := a.(type) {
	case *dcrutil.AddressScriptHash:
		return nil, errors.E(op, errors.Invalid,
			errors.Errorf("%s is a script address", addr))

	case *dcrutil.AddressSecpPubKey:
		pk, err := secp256k1.ParsePubKey(a.ScriptAddress())
		if err != nil {
			return nil, errors.E(op, errors.PubKey, err)
		}
		return pk, nil

	case *dcrutil.AddressPubKeyHash:
		if store == nil {
			return nil, errors.E(op, errors.Invalid,
				errors.Errorf("no key store to resolve %s", addr))
		}
		pk, err := store.PubKey(a)
		if err != nil {
			if errors.Is(err, errors.NotExist) {
				return nil, errors.E(op, errors.NotExist,
					errors.Errorf("no full public key for address %s", addr))
			}
			return nil, errors.E(op, err)
		}
		return pk, nil

	default:
		return nil, errors.E(op, errors.Invalid,
			errors.Errorf("address %s does not use a secp256k1 public key", addr))
	}
}
