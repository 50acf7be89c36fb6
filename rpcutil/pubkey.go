// Copyright (c) 2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcutil

import (
	"encoding/hex"

	"github.com/decred/dcrd/dcrec/secp256k1"
	"github.com/decred/dcrhelp/errors"
)

// Hex lengths of compressed and uncompressed serialized public keys.
const (
	compressedPubKeyHexLen   = 2 * secp256k1.PubKeyBytesLenCompressed
	uncompressedPubKeyHexLen = 2 * secp256k1.PubKeyBytesLenUncompressed
)

// HexToPubKey parses a hex encoded compressed or uncompressed secp256k1 public
// key.  Errors have kind errors.PubKey.
func HexToPubKey(s string) (*secp256k1.PublicKey, error) {
	const op errors.Op = "rpcutil.HexToPubKey"
	if len(s) != compressedPubKeyHexLen && len(s) != uncompressedPubKeyHexLen {
		return nil, errors.E(op, errors.PubKey,
			errors.Errorf("pubkey %q has invalid length %d", s, len(s)))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.E(op, errors.PubKey,
			errors.Errorf("pubkey %q must be hex encoded: %v", s, err))
	}
	pk, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, errors.E(op, errors.PubKey,
			errors.Errorf("pubkey %q is not a valid point: %v", s, err))
	}
	return pk, nil
}
