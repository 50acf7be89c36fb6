// Copyright (c) 2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpchelp

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/sync/errgroup"
)

func createRawTransaction() *Method {
	inputs := MustContainer("inputs", Array, []Arg{
		MustContainer("", Object, []Arg{
			MustScalar("txid", StringHex, false, WithDescription("The transaction id")),
			MustScalar("vout", Number, false, WithDescription("The output number")),
		}, false),
	}, false, WithDescription("The inputs to the transaction"))
	outputs := MustContainer("outputs", ObjectUserKeys, []Arg{
		MustScalar("address", Amount, false, WithDescription("The amount in DCR")),
	}, false, WithDescription("Destination addresses and amounts"))
	locktime := MustScalar("locktime", Number, true, WithDescription("Locktime value"))
	return NewMethod("createrawtransaction",
		"Returns a new transaction spending the provided inputs.",
		[]Arg{inputs, outputs, locktime})
}

func TestMethodRender(t *testing.T) {
	want := `createrawtransaction(
    inputs: [ { "txid": string (hex), "vout": numeric }, ... ],
    outputs: { "key": numeric or string, ... },
    locktime: numeric (optional)
)

Returns a new transaction spending the provided inputs.

Arguments:
1. inputs              (json array, required) The inputs to the transaction
    [
      {                (json object, required)
        "txid": "hex"  (string (hex), required) The transaction id
        "vout": n      (numeric, required) The output number
      }
      ...
    ]
2. outputs             (json object, required) Destination addresses and amounts
    {
      "key": amount    (numeric or string, required) address: The amount in DCR
      ...
    }
3. locktime            (numeric, optional) Locktime value
`
	got := createRawTransaction().Render()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("rendered help differs (-want +got):\n%s", diff)
	}
}

func TestUsage(t *testing.T) {
	tests := []struct {
		name string
		m    *Method
		want string
	}{
		{
			name: "no arguments",
			m:    NewMethod("getinfo", "", nil),
			want: "getinfo()",
		},
		{
			name: "scalars",
			m: NewMethod("getnetworkhashps", "", []Arg{
				MustScalar("nblocks", Number, true),
				MustScalar("height", Number, true),
			}),
			want: "getnetworkhashps(nblocks: numeric (optional), height: numeric (optional))",
		},
		{
			name: "unnamed argument",
			m: NewMethod("submitblock", "", []Arg{
				MustScalar("", StringHex, false),
			}),
			want: "submitblock(string (hex))",
		},
		{
			name: "container",
			m: NewMethod("addmultisigaddress", "", []Arg{
				MustScalar("nrequired", Number, false),
				MustContainer("keys", Array, []Arg{
					MustScalar("key", String, false),
				}, false),
			}),
			want: "addmultisigaddress(nrequired: numeric, keys: [ string, ... ])",
		},
	}
	for _, test := range tests {
		if got := test.m.Usage(); got != test.want {
			t.Errorf("%s: usage %q, want %q", test.name, got, test.want)
		}
	}
}

func TestShortSignatureNotWrapped(t *testing.T) {
	m := NewMethod("getnetworkhashps", "Returns the estimated network hashes per second.", []Arg{
		MustScalar("nblocks", Number, true),
		MustScalar("height", Number, true),
	})
	got := m.Render()
	want := "getnetworkhashps(nblocks: numeric (optional), height: numeric (optional))\n" +
		"\nReturns the estimated network hashes per second.\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("rendered help differs (-want +got):\n%s", diff)
	}
}

func TestRenderResultAndExamples(t *testing.T) {
	m := NewMethod("getblockcount", "Returns the number of blocks in the main chain.", nil,
		WithResult("n (numeric) The current block count\n"),
		WithExamples(ExampleCLI("getblockcount")))
	want := "getblockcount()\n" +
		"\nReturns the number of blocks in the main chain.\n" +
		"\nResult:\nn (numeric) The current block count\n" +
		"\nExamples:\n> dcrctl --wallet getblockcount\n"
	if diff := cmp.Diff(want, m.Render()); diff != "" {
		t.Fatalf("rendered help differs (-want +got):\n%s", diff)
	}
}

func TestLongLeftColumn(t *testing.T) {
	long := strings.Repeat("x", maxLeftColumn+5)
	m := NewMethod("m", "", []Arg{
		MustScalar(long, String, false, WithDescription("long")),
		MustScalar("y", String, false, WithDescription("short")),
	})
	want := "m(" + long + ": string, y: string)\n" +
		"\nArguments:\n" +
		"1. " + long + "  (string, required) long\n" +
		"2. y  (string, required) short\n"
	if diff := cmp.Diff(want, m.Render()); diff != "" {
		t.Fatalf("rendered help differs (-want +got):\n%s", diff)
	}
}

func TestMethodArgsAreCopied(t *testing.T) {
	args := []Arg{MustScalar("a", String, false)}
	m := NewMethod("m", "", args)
	args[0] = MustScalar("b", Number, false)
	if got := m.Usage(); got != "m(a: string)" {
		t.Fatalf("method changed with caller slice: %q", got)
	}
	m.Args()[0] = MustScalar("c", Bool, false)
	if got := m.Usage(); got != "m(a: string)" {
		t.Fatalf("method changed through Args result: %q", got)
	}
}

func TestConcurrentRender(t *testing.T) {
	m := createRawTransaction()
	want := m.Render()
	var g errgroup.Group
	results := make([]string, 32)
	for i := range results {
		i := i
		g.Go(func() error {
			results[i] = m.Render()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	for i, got := range results {
		if got != want {
			t.Errorf("render %d differs:\n%s", i, cmp.Diff(want, got))
		}
	}
}
