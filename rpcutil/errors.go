// Copyright (c) 2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcutil

import (
	"github.com/decred/dcrd/dcrjson/v3"
	"github.com/decred/dcrhelp/errors"
)

// RPCError converts err to the JSON-RPC error object returned to clients.
// Errors that already are RPC errors are returned unchanged and a nil error
// converts to nil.
func RPCError(err error) *dcrjson.RPCError {
	if err == nil {
		return nil
	}
	if err, ok := err.(*dcrjson.RPCError); ok {
		return err
	}

	code := dcrjson.ErrRPCWallet
	var kind errors.Kind
	if errors.As(err, &kind) {
		switch kind {
		case errors.Bug:
			code = dcrjson.ErrRPCInternal.Code
		case errors.PubKey, errors.Encoding, errors.NotExist:
			code = dcrjson.ErrRPCInvalidAddressOrKey
		case errors.Invalid, errors.Policy, errors.Descriptor:
			code = dcrjson.ErrRPCInvalidParameter
		}
	}
	return &dcrjson.RPCError{
		Code:    code,
		Message: err.Error(),
	}
}
