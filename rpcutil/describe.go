// Copyright (c) 2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcutil

import (
	"encoding/hex"

	"github.com/decred/dcrd/dcrutil/v2"
)

// Object is a JSON object under construction, such as an RPC result.
type Object map[string]interface{}

// DescribeAddress adds the address, whether it is a script, and the public
// key of pay-to-pubkey addresses to obj.  Existing entries with these keys are
// replaced and all other entries are left untouched.
func DescribeAddress(addr dcrutil.Address, obj Object) {
	obj["address"] = addr.Address()
	switch addr.(type) {
	case *dcrutil.AddressScriptHash:
		obj["isscript"] = true
	case *dcrutil.AddressSecpPubKey, *dcrutil.AddressEdwardsPubKey,
		*dcrutil.AddressSecSchnorrPubKey:
		obj["isscript"] = false
		obj["pubkey"] = hex.EncodeToString(addr.ScriptAddress())
	default:
		obj["isscript"] = false
	}
}
