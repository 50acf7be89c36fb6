// Copyright (c) 2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catalog

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/decred/dcrd/dcrutil/v2"
	"github.com/decred/dcrhelp/errors"
	"github.com/decred/dcrhelp/internal/netparams"
	"github.com/decred/dcrhelp/rpchelp"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/sync/errgroup"
)

var builtinNames = []string{
	"addmultisigaddress",
	"createmultisig",
	"createrawtransaction",
	"estimatefee",
	"fundrawtransaction",
	"generatetoaddress",
	"getblocktemplate",
	"getmininginfo",
	"getnetworkhashps",
	"help",
	"prioritisetransaction",
	"sendmany",
	"submitblock",
	"submitheader",
	"validateaddress",
}

func newCatalog(t *testing.T, params *netparams.Params) *Catalog {
	t.Helper()
	c, err := New(params)
	if err != nil {
		t.Fatalf("New(%s): %v", params.Name, err)
	}
	return c
}

func TestBuiltinMethods(t *testing.T) {
	for _, params := range []*netparams.Params{&netparams.MainNetParams,
		&netparams.TestNet3Params, &netparams.SimNetParams} {

		c := newCatalog(t, params)
		var names []string
		for _, m := range c.Methods() {
			names = append(names, m.Name())
		}
		if diff := cmp.Diff(builtinNames, names); diff != "" {
			t.Errorf("%s: methods differ (-want +got):\n%s", params.Name, diff)
		}
	}
}

func TestRenderContainsDeclaration(t *testing.T) {
	c := newCatalog(t, &netparams.MainNetParams)
	for _, m := range c.Methods() {
		help, err := c.Help(m.Name())
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(help, m.Name()+"(") {
			t.Errorf("%s: help does not start with the signature:\n%s", m.Name(), help)
		}
		if !strings.Contains(help, m.Description()) {
			t.Errorf("%s: help does not contain the description", m.Name())
		}
		for _, a := range m.Args() {
			if !strings.Contains(help, a.Name()) {
				t.Errorf("%s: help does not mention argument %q", m.Name(), a.Name())
			}
		}
	}
}

func TestMultisigExample(t *testing.T) {
	params := &netparams.SimNetParams
	c := newCatalog(t, params)
	help, err := c.Help("createmultisig")
	if err != nil {
		t.Fatal(err)
	}

	examples := strings.Index(help, "\nExamples:\n")
	if examples == -1 {
		t.Fatalf("no examples in help:\n%s", help)
	}
	help = help[examples:]
	i := strings.Index(help, "\n{\n")
	if i == -1 {
		t.Fatalf("no example result in help:\n%s", help)
	}
	j := strings.Index(help[i+1:], "\n}\n")
	if j == -1 {
		t.Fatalf("unterminated example result in help:\n%s", help)
	}
	var result struct {
		Address      string `json:"address"`
		RedeemScript string `json:"redeemScript"`
	}
	if err := json.Unmarshal([]byte(help[i+1:i+1+j+2]), &result); err != nil {
		t.Fatalf("example result: %v", err)
	}
	addr, err := dcrutil.DecodeAddress(result.Address, params.Params)
	if err != nil {
		t.Fatalf("example address %q: %v", result.Address, err)
	}
	if _, ok := addr.(*dcrutil.AddressScriptHash); !ok {
		t.Errorf("example address %q is a %T", result.Address, addr)
	}
	if len(result.RedeemScript) == 0 {
		t.Errorf("example has no redeem script")
	}
}

func TestValidateAddressExample(t *testing.T) {
	c := newCatalog(t, &netparams.MainNetParams)
	help, err := c.Help("validateaddress")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"isscript": false`, `"isvalid": true`, `"address": "Ds`} {
		if !strings.Contains(help, want) {
			t.Errorf("validateaddress help does not contain %s:\n%s", want, help)
		}
	}
}

func TestAddDuplicate(t *testing.T) {
	c := newCatalog(t, &netparams.MainNetParams)
	err := c.Add(rpchelp.NewMethod("help", "Another help.", nil))
	if !errors.Is(err, errors.Exist) {
		t.Fatalf("expected Exist error, got %v", err)
	}

	m := rpchelp.NewMethod("getinfo", "Returns info.", nil)
	if err := c.Add(m); err != nil {
		t.Fatal(err)
	}
	got, ok := c.Lookup("getinfo")
	if !ok || got != m {
		t.Fatalf("added method not found")
	}
	if err := c.Add(nil); !errors.Is(err, errors.Invalid) {
		t.Fatalf("expected Invalid error for nil method, got %v", err)
	}
}

func TestHelpUnknown(t *testing.T) {
	c := newCatalog(t, &netparams.MainNetParams)
	if _, err := c.Help("nosuchmethod"); !errors.Is(err, errors.NotExist) {
		t.Fatalf("expected NotExist error, got %v", err)
	}
}

func TestUsage(t *testing.T) {
	c := newCatalog(t, &netparams.MainNetParams)
	lines := strings.Split(strings.TrimSuffix(c.Usage(), "\n"), "\n")
	if len(lines) != len(builtinNames) {
		t.Fatalf("usage has %d lines, want %d", len(lines), len(builtinNames))
	}
	for i, l := range lines {
		if !strings.HasPrefix(l, builtinNames[i]+"(") {
			t.Errorf("usage line %d %q is not for %s", i, l, builtinNames[i])
		}
	}
	want := "getnetworkhashps(nblocks: numeric (optional), height: numeric (optional))"
	if lines[8] != want {
		t.Errorf("usage line %q, want %q", lines[8], want)
	}
}

func TestConcurrentHelp(t *testing.T) {
	c := newCatalog(t, &netparams.MainNetParams)
	var g errgroup.Group
	for _, name := range builtinNames {
		name := name
		g.Go(func() error {
			_, err := c.Help(name)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}
