// Copyright (c) 2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netparams

import "testing"

func TestByName(t *testing.T) {
	tests := []struct {
		name   string
		listen string
	}{
		{"mainnet", "127.0.0.1:9110"},
		{"testnet3", "127.0.0.1:19110"},
		{"simnet", "127.0.0.1:19557"},
	}
	for _, test := range tests {
		p, ok := ByName(test.name)
		if !ok {
			t.Errorf("%s: network not found", test.name)
			continue
		}
		if got := p.RPCListen(); got != test.listen {
			t.Errorf("%s: listen address %s, want %s", test.name, got, test.listen)
		}
	}
	if _, ok := ByName("regnet"); ok {
		t.Errorf("unknown network found")
	}
}
