// Copyright (c) 2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catalog

import (
	"encoding/hex"
	"encoding/json"

	"github.com/decred/dcrd/dcrec/secp256k1"
	"github.com/decred/dcrhelp/errors"
	"github.com/decred/dcrhelp/internal/keystore"
	"github.com/decred/dcrhelp/internal/netparams"
	"github.com/decred/dcrhelp/rpchelp"
	"github.com/decred/dcrhelp/rpcutil"
)

// examplePubKeys are the public keys used by examples: the compressed
// encodings of the secp256k1 points 1G and 2G.
var examplePubKeys = [...]string{
	"0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
	"02c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5",
}

// walletExamples holds the values computed for the examples of the wallet
// methods of a single network.
type walletExamples struct {
	pkhAddr      string   // pubkey-hash address of the second example key
	multisigKeys []string // a pubkey and a pubkey-hash address
	p2shAddr     string   // 1-of-2 script hash address of multisigKeys
	createResult string   // createmultisig result
	validResult  string   // validateaddress result for pkhAddr
}

// multisigKey resolves a createmultisig key given either as a hex public key
// or as an address.
func multisigKey(params *netparams.Params, store rpcutil.KeyStore, s string) (*secp256k1.PublicKey, error) {
	if len(s) == 2*secp256k1.PubKeyBytesLenCompressed || len(s) == 2*secp256k1.PubKeyBytesLenUncompressed {
		return rpcutil.HexToPubKey(s)
	}
	return rpcutil.AddrToPubKey(params.Params, store, s)
}

func newWalletExamples(params *netparams.Params) (*walletExamples, error) {
	const op errors.Op = "catalog.newWalletExamples"

	store := keystore.New(params.Params)
	pk, err := rpcutil.HexToPubKey(examplePubKeys[1])
	if err != nil {
		return nil, errors.E(op, errors.Bug, err)
	}
	pkh, err := store.Add(pk)
	if err != nil {
		return nil, errors.E(op, errors.Bug, err)
	}

	ex := &walletExamples{
		pkhAddr:      pkh.Address(),
		multisigKeys: []string{examplePubKeys[0], pkh.Address()},
	}
	keys := make([]*secp256k1.PublicKey, len(ex.multisigKeys))
	for i, k := range ex.multisigKeys {
		keys[i], err = multisigKey(params, store, k)
		if err != nil {
			return nil, errors.E(op, errors.Bug, err)
		}
	}
	script, p2sh, err := rpcutil.CreateMultisigRedeemScript(1, keys, params.Params)
	if err != nil {
		return nil, errors.E(op, errors.Bug, err)
	}
	ex.p2shAddr = p2sh.Address()

	created, err := json.MarshalIndent(struct {
		Address      string `json:"address"`
		RedeemScript string `json:"redeemScript"`
	}{p2sh.Address(), hex.EncodeToString(script)}, "", "  ")
	if err != nil {
		return nil, errors.E(op, errors.Bug, err)
	}
	ex.createResult = string(created)

	desc := rpcutil.Object{"isvalid": true, "ismine": false}
	rpcutil.DescribeAddress(pkh, desc)
	valid, err := json.MarshalIndent(desc, "", "  ")
	if err != nil {
		return nil, errors.E(op, errors.Bug, err)
	}
	ex.validResult = string(valid)

	return ex, nil
}

func walletMethods(params *netparams.Params) ([]*rpchelp.Method, error) {
	const op errors.Op = "catalog.walletMethods"

	ex, err := newWalletExamples(params)
	if err != nil {
		return nil, errors.E(op, err)
	}
	listen := params.RPCListen()

	multisigArgs := func(extra ...rpchelp.Arg) []rpchelp.Arg {
		args := []rpchelp.Arg{
			rpchelp.MustScalar("nrequired", rpchelp.Number, false, rpchelp.WithDescription(
				"The number of signatures required to redeem outputs paid to this address")),
			rpchelp.MustContainer("keys", rpchelp.Array, []rpchelp.Arg{
				rpchelp.MustScalar("key", rpchelp.String, false, rpchelp.WithDescription(
					"A hex-encoded public key or pay-to-pubkey-hash address")),
			}, false, rpchelp.WithDescription(
				"Pubkeys and/or pay-to-pubkey-hash addresses to partially control the multisig address")),
		}
		return append(args, extra...)
	}

	amounts := func(desc string) *rpchelp.Container {
		return rpchelp.MustContainer("amounts", rpchelp.ObjectUserKeys, []rpchelp.Arg{
			rpchelp.MustScalar("address", rpchelp.Amount, false, rpchelp.WithDescription(
				"The amount in DCR to send to the address")),
		}, false, rpchelp.WithDescription(desc))
	}

	exampleInputs := []map[string]interface{}{
		{"txid": "mytxid", "vout": 0, "tree": 0, "amount": 1.5},
	}
	exampleAmounts := map[string]float64{ex.pkhAddr: 1.4999}

	return []*rpchelp.Method{
		rpchelp.NewMethod("createmultisig",
			"Generate a multisig address and redeem script.",
			multisigArgs(),
			rpchelp.WithResult(`{
  "address": "str",      (string) The generated pay-to-script-hash address
  "redeemScript": "hex"  (string) The script required to redeem outputs paid to the multisig address
}`),
			rpchelp.WithExamples(
				rpchelp.ExampleCLI("createmultisig", 1, ex.multisigKeys),
				ex.createResult,
				rpchelp.ExampleRPC(listen, "createmultisig", 1, ex.multisigKeys),
			)),

		rpchelp.NewMethod("addmultisigaddress",
			"Generates and imports a multisig address and redeeming script to the 'imported' account.",
			multisigArgs(rpchelp.MustScalar("account", rpchelp.String, true, rpchelp.WithDescription(
				"Unused, all imported addresses belong to the imported account"))),
			rpchelp.WithResult(`"str" (string) The imported pay-to-script-hash address`),
			rpchelp.WithExamples(
				rpchelp.ExampleCLI("addmultisigaddress", 1, ex.multisigKeys),
				`"`+ex.p2shAddr+`"`,
			)),

		rpchelp.NewMethod("createrawtransaction",
			"Returns a new transaction spending the provided inputs and sending to the provided addresses.\n"+
				"The transaction inputs are not signed in the created transaction.",
			[]rpchelp.Arg{
				rpchelp.MustContainer("inputs", rpchelp.Array, []rpchelp.Arg{
					rpchelp.MustContainer("", rpchelp.Object, []rpchelp.Arg{
						rpchelp.MustScalar("txid", rpchelp.StringHex, false, rpchelp.WithDescription(
							"The transaction hash of the referenced output")),
						rpchelp.MustScalar("vout", rpchelp.Number, false, rpchelp.WithDescription(
							"The output index of the referenced output")),
						rpchelp.MustScalar("tree", rpchelp.Number, false, rpchelp.WithDescription(
							"The tree to generate transaction for")),
						rpchelp.MustScalar("amount", rpchelp.Amount, false, rpchelp.WithDescription(
							"The previous output amount")),
					}, false),
				}, false, rpchelp.WithDescription("The inputs to the transaction")),
				amounts("JSON object with the destination addresses as keys and amounts as values"),
				rpchelp.MustScalar("locktime", rpchelp.Number, true, rpchelp.WithDescription(
					"Locktime value; a non-zero value will also locktime-activate the inputs")),
				rpchelp.MustScalar("expiry", rpchelp.Number, true, rpchelp.WithDescription(
					"Expiry value; a non-zero value when the transaction expiry")),
			},
			rpchelp.WithResult(`"hex" (string) Hex-encoded bytes of the serialized transaction`),
			rpchelp.WithExamples(
				rpchelp.ExampleCLI("createrawtransaction", exampleInputs, exampleAmounts),
				rpchelp.ExampleRPC(listen, "createrawtransaction", exampleInputs, exampleAmounts),
			)),

		rpchelp.NewMethod("fundrawtransaction",
			"Adds unsigned inputs and change output to a raw transaction.",
			[]rpchelp.Arg{
				rpchelp.MustScalar("hexstring", rpchelp.StringHex, false, rpchelp.WithDescription(
					"Serialized transaction in hex encoding")),
				rpchelp.MustScalar("fundaccount", rpchelp.String, false, rpchelp.WithDescription(
					"Account of outputs to spend in transaction")),
				rpchelp.MustContainer("options", rpchelp.Object, []rpchelp.Arg{
					rpchelp.MustScalar("changeaddress", rpchelp.String, true, rpchelp.WithDescription(
						"Provide a change address rather than deriving one from the funding account")),
					rpchelp.MustScalar("feerate", rpchelp.Amount, true, rpchelp.WithDescription(
						"Alternative fee rate in DCR/kB")),
					rpchelp.MustScalar("conf_target", rpchelp.Number, true, rpchelp.WithDescription(
						"Required confirmations of selected previous outputs")),
				}, true, rpchelp.WithDescription(
					"Object to specify fixed change address, alternative fee rate, and confirmation target")),
			},
			rpchelp.WithResult(`{
  "hex": "hex",  (string) Funded transaction in hex encoding
  "fee": n       (numeric) Absolute fee of funded transaction
}`),
			rpchelp.WithExamples(
				rpchelp.ExampleCLI("fundrawtransaction", "rawtx", "default",
					map[string]interface{}{"conf_target": 2}),
			)),

		rpchelp.NewMethod("sendmany",
			"Authors, signs, and sends a transaction that outputs to many payment addresses.",
			[]rpchelp.Arg{
				rpchelp.MustScalar("fromaccount", rpchelp.String, false, rpchelp.WithDescription(
					"Account to pick unspent outputs from")),
				amounts("Pairs of payment addresses and the output amount to pay each"),
				rpchelp.MustScalar("minconf", rpchelp.Number, true, rpchelp.WithDescription(
					"Minimum number of block confirmations required before a transaction output is eligible to be spent (default=1)")),
				rpchelp.MustScalar("comment", rpchelp.String, true, rpchelp.WithDescription("Unused")),
			},
			rpchelp.WithResult(`"hex" (string) The transaction hash of the sent transaction`),
			rpchelp.WithExamples(
				rpchelp.ExampleCLI("sendmany", "default", map[string]float64{
					ex.pkhAddr:  0.1,
					ex.p2shAddr: 0.2,
				}),
			)),

		rpchelp.NewMethod("validateaddress",
			"Verify that an address is valid.",
			[]rpchelp.Arg{
				rpchelp.MustScalar("address", rpchelp.String, false, rpchelp.WithDescription(
					"Address to validate")),
			},
			rpchelp.WithResult(`{
  "isvalid": true|false,  (boolean) Whether or not the address is valid
  "address": "str",       (string) The payment address (only when isvalid is true)
  "ismine": true|false,   (boolean) Whether this address is controlled by the wallet
  "isscript": true|false, (boolean) Whether the payment address is a pay-to-script-hash address
  "pubkey": "hex"         (string) The public key of a pay-to-pubkey address
}`),
			rpchelp.WithExamples(
				rpchelp.ExampleCLI("validateaddress", ex.pkhAddr),
				ex.validResult,
				rpchelp.ExampleRPC(listen, "validateaddress", ex.pkhAddr),
			)),

		rpchelp.NewMethod("help",
			"Returns a list of all commands or help for a specified command.",
			[]rpchelp.Arg{
				rpchelp.MustScalar("command", rpchelp.String, true, rpchelp.WithDescription(
					"The command to retrieve help for")),
			},
			rpchelp.WithResult("\"str\" (string) List of commands when no command is provided, "+
				"otherwise help for the specified command"),
			rpchelp.WithExamples(
				rpchelp.ExampleCLI("help"),
				rpchelp.ExampleCLI("help", "sendmany"),
			)),
	}, nil
}
