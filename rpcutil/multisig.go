// Copyright (c) 2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcutil

import (
	"github.com/decred/dcrd/dcrec/secp256k1"
	"github.com/decred/dcrd/dcrutil/v2"
	"github.com/decred/dcrd/txscript/v2"
	"github.com/decred/dcrhelp/errors"
)

// CreateMultisigRedeemScript returns the standard script requiring required
// of the signatures of pubkeys.  The script is returned with its
// pay-to-script-hash address for params.
func CreateMultisigRedeemScript(required int, pubkeys []*secp256k1.PublicKey,
	params dcrutil.AddressParams) ([]byte, *dcrutil.AddressScriptHash, error) {

	const op errors.Op = "rpcutil.CreateMultisigRedeemScript"

	switch {
	case required < 1:
		return nil, nil, errors.E(op, errors.Invalid,
			"a multisignature address must require at least one key to redeem")
	case len(pubkeys) < required:
		return nil, nil, errors.E(op, errors.Invalid, errors.Errorf(
			"not enough keys supplied (got %d keys, but need at least %d to redeem)",
			len(pubkeys), required))
	case len(pubkeys) > txscript.MaxPubKeysPerMultiSig:
		return nil, nil, errors.E(op, errors.Invalid, errors.Errorf(
			"number of keys involved in the multisignature address creation > %d",
			txscript.MaxPubKeysPerMultiSig))
	}

	addrs := make([]*dcrutil.AddressSecpPubKey, len(pubkeys))
	for i, pk := range pubkeys {
		if pk == nil {
			return nil, nil, errors.E(op, errors.PubKey,
				errors.Errorf("key %d is nil", i))
		}
		a, err := dcrutil.NewAddressSecpPubKey(pk.SerializeCompressed(), params)
		if err != nil {
			return nil, nil, errors.E(op, errors.PubKey, err)
		}
		addrs[i] = a
	}

	script, err := txscript.MultiSigScript(addrs, required)
	if err != nil {
		return nil, nil, errors.E(op, errors.Invalid, err)
	}
	if len(script) > txscript.MaxScriptElementSize {
		return nil, nil, errors.E(op, errors.Policy, errors.Errorf(
			"redeem script exceeds size limit: %d > %d",
			len(script), txscript.MaxScriptElementSize))
	}

	p2sh, err := dcrutil.NewAddressScriptHash(script, params)
	if err != nil {
		return nil, nil, errors.E(op, errors.Encoding, err)
	}
	return script, p2sh, nil
}
