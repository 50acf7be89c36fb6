// Copyright (c) 2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpchelp

import (
	"testing"

	"github.com/decred/dcrhelp/errors"
)

func TestExampleCLI(t *testing.T) {
	tests := []struct {
		method string
		params []interface{}
		want   string
	}{
		{"getmininginfo", nil, "> dcrctl --wallet getmininginfo\n"},
		{"getnetworkhashps", []interface{}{120, -1}, "> dcrctl --wallet getnetworkhashps 120 -1\n"},
		{"validateaddress", []interface{}{"DsExample"}, "> dcrctl --wallet validateaddress \"DsExample\"\n"},
		{
			"createmultisig",
			[]interface{}{2, []string{"02ab", "03cd"}},
			"> dcrctl --wallet createmultisig 2 '[\"02ab\",\"03cd\"]'\n",
		},
		{
			"sendmany",
			[]interface{}{"default", map[string]float64{"DsA": 0.5}, 1, true},
			"> dcrctl --wallet sendmany \"default\" '{\"DsA\":0.5}' 1 true\n",
		},
	}
	for _, test := range tests {
		if got := ExampleCLI(test.method, test.params...); got != test.want {
			t.Errorf("%s: got %q, want %q", test.method, got, test.want)
		}
	}
}

func TestExampleRPC(t *testing.T) {
	got := ExampleRPC("127.0.0.1:9110", "getnetworkhashps", 120)
	want := `> curl --user myusername --data-binary '{"jsonrpc":"1.0","method":"getnetworkhashps","params":[120],"id":"curltest"}' ` +
		`-H 'content-type: text/plain;' https://127.0.0.1:9110/` + "\n"
	if got != want {
		t.Errorf("got %q\nwant %q", got, want)
	}

	got = ExampleRPC("127.0.0.1:9110", "getmininginfo")
	want = `> curl --user myusername --data-binary '{"jsonrpc":"1.0","method":"getmininginfo","params":[],"id":"curltest"}' ` +
		`-H 'content-type: text/plain;' https://127.0.0.1:9110/` + "\n"
	if got != want {
		t.Errorf("got %q\nwant %q", got, want)
	}
}

func TestExampleUnencodable(t *testing.T) {
	for name, fn := range map[string]func(){
		"cli": func() { ExampleCLI("m", func() {}) },
		"rpc": func() { ExampleRPC("localhost", "m", make(chan int)) },
	} {
		func() {
			defer func() {
				err, ok := recover().(error)
				if !ok || !errors.Is(err, errors.Bug) {
					t.Errorf("%s: recovered %v, want bug error", name, err)
				}
			}()
			fn()
		}()
	}
}
