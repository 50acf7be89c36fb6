// Copyright (c) 2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpchelp

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/decred/dcrd/dcrjson/v3"
	"github.com/decred/dcrhelp/errors"
)

// ExampleCLI returns an example invocation of method using dcrctl.  Strings
// are double quoted, numbers and booleans are written bare, and arrays and
// objects are written as single-quoted JSON.
//
// Params that can not be encoded as JSON are a programming error and cause a
// panic.
func ExampleCLI(method string, params ...interface{}) string {
	const op errors.Op = "rpchelp.ExampleCLI"

	var b strings.Builder
	b.WriteString("> dcrctl --wallet ")
	b.WriteString(method)
	for _, p := range params {
		b.WriteByte(' ')
		if s, ok := p.(string); ok {
			b.WriteString(strconv.Quote(s))
			continue
		}
		j, err := json.Marshal(p)
		if err != nil {
			panic(errors.E(op, errors.Bug, err))
		}
		if len(j) != 0 && (j[0] == '{' || j[0] == '[') {
			b.WriteByte('\'')
			b.Write(j)
			b.WriteByte('\'')
			continue
		}
		b.Write(j)
	}
	b.WriteByte('\n')
	return b.String()
}

// ExampleRPC returns an example JSON-RPC request for method posted with curl
// to a wallet RPC server listening on listen.
//
// Params that can not be encoded as JSON are a programming error and cause a
// panic.
func ExampleRPC(listen, method string, params ...interface{}) string {
	const op errors.Op = "rpchelp.ExampleRPC"

	rawParams := make([]json.RawMessage, 0, len(params))
	for _, p := range params {
		j, err := json.Marshal(p)
		if err != nil {
			panic(errors.E(op, errors.Bug, err))
		}
		rawParams = append(rawParams, j)
	}
	req := &dcrjson.Request{
		Jsonrpc: "1.0",
		ID:      "curltest",
		Method:  method,
		Params:  rawParams,
	}
	body, err := json.Marshal(req)
	if err != nil {
		panic(errors.E(op, errors.Bug, err))
	}
	return fmt.Sprintf("> curl --user myusername --data-binary '%s' "+
		"-H 'content-type: text/plain;' https://%s/\n", body, listen)
}
