// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2016-2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netparams

import (
	"net"

	"github.com/decred/dcrd/chaincfg/v2"
)

// Params is used to group parameters for various networks such as the main
// network and test networks.
type Params struct {
	*chaincfg.Params
	JSONRPCServerPort string
}

// MainNetParams contains parameters specific to the main network
// (wire.MainNet).
var MainNetParams = Params{
	Params:            chaincfg.MainNetParams(),
	JSONRPCServerPort: "9110",
}

// TestNet3Params contains parameters specific to the test network (version 3)
// (wire.TestNet3).
var TestNet3Params = Params{
	Params:            chaincfg.TestNet3Params(),
	JSONRPCServerPort: "19110",
}

// SimNetParams contains parameters specific to the simulation test network
// (wire.SimNet).
var SimNetParams = Params{
	Params:            chaincfg.SimNetParams(),
	JSONRPCServerPort: "19557",
}

// RPCListen returns the default listen address of the wallet JSON-RPC server,
// used in example requests.
func (p *Params) RPCListen() string {
	return net.JoinHostPort("127.0.0.1", p.JSONRPCServerPort)
}

// ByName returns the parameters of the network with name mainnet, testnet3
// or simnet.
func ByName(name string) (*Params, bool) {
	for _, p := range []*Params{&MainNetParams, &TestNet3Params, &SimNetParams} {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}
