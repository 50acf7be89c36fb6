// Copyright (c) 2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keystore

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/decred/dcrd/chaincfg/v2"
	"github.com/decred/dcrd/dcrec/secp256k1"
	"github.com/decred/dcrd/dcrutil/v2"
	"github.com/decred/dcrhelp/errors"
	"golang.org/x/sync/errgroup"
)

// Compressed encodings of 1G, 2G and 3G.
var testKeys = []string{
	"0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
	"02c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5",
	"02f9308a019258c31049344f85f89d5229b531c845836f99b08601f113bce036f9",
}

func parseKey(t *testing.T, s string) *secp256k1.PublicKey {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	pk, err := secp256k1.ParsePubKey(b)
	if err != nil {
		t.Fatal(err)
	}
	return pk
}

func TestAddLookup(t *testing.T) {
	params := chaincfg.SimNetParams()
	s := New(params)
	for _, k := range testKeys {
		pk := parseKey(t, k)
		addr, err := s.Add(pk)
		if err != nil {
			t.Fatalf("add %s: %v", k, err)
		}
		decoded, err := dcrutil.DecodeAddress(addr.Address(), params)
		if err != nil {
			t.Fatalf("decode %s: %v", addr.Address(), err)
		}
		got, err := s.PubKey(decoded)
		if err != nil {
			t.Fatalf("lookup %s: %v", addr.Address(), err)
		}
		if !bytes.Equal(got.SerializeCompressed(), pk.SerializeCompressed()) {
			t.Errorf("lookup %s returned key %x", addr.Address(), got.SerializeCompressed())
		}
	}
	if s.Len() != len(testKeys) {
		t.Errorf("store holds %d keys, want %d", s.Len(), len(testKeys))
	}

	// Adding a key twice does not create a second entry.
	if _, err := s.Add(parseKey(t, testKeys[0])); err != nil {
		t.Fatal(err)
	}
	if s.Len() != len(testKeys) {
		t.Errorf("store holds %d keys after re-adding, want %d", s.Len(), len(testKeys))
	}
}

func TestUnknownAddress(t *testing.T) {
	params := chaincfg.SimNetParams()
	addr, err := New(params).Add(parseKey(t, testKeys[0]))
	if err != nil {
		t.Fatal(err)
	}
	_, err = New(params).PubKey(addr)
	if !errors.Is(err, errors.NotExist) {
		t.Fatalf("expected NotExist, got %v", err)
	}
}

func TestAddNil(t *testing.T) {
	_, err := New(chaincfg.SimNetParams()).Add(nil)
	if !errors.Is(err, errors.PubKey) {
		t.Fatalf("expected PubKey error, got %v", err)
	}
}

func TestConcurrentAccess(t *testing.T) {
	s := New(chaincfg.SimNetParams())
	keys := make([]*secp256k1.PublicKey, len(testKeys))
	for i, k := range testKeys {
		keys[i] = parseKey(t, k)
	}
	var g errgroup.Group
	for i := 0; i < 16; i++ {
		pk := keys[i%len(keys)]
		g.Go(func() error {
			addr, err := s.Add(pk)
			if err != nil {
				return err
			}
			_, err = s.PubKey(addr)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	if s.Len() != len(testKeys) {
		t.Errorf("store holds %d keys, want %d", s.Len(), len(testKeys))
	}
}
