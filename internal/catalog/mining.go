// Copyright (c) 2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catalog

import (
	"github.com/decred/dcrhelp/internal/netparams"
	"github.com/decred/dcrhelp/rpchelp"
)

func miningMethods(params *netparams.Params) []*rpchelp.Method {
	listen := params.RPCListen()

	return []*rpchelp.Method{
		rpchelp.NewMethod("getnetworkhashps",
			"Returns the estimated network hashes per second based on the last n blocks.\n"+
				"Pass in nblocks to override the number of blocks, -1 specifies since the last difficulty change.\n"+
				"Pass in height to estimate the network speed at the time when a certain block was found.",
			[]rpchelp.Arg{
				rpchelp.MustScalar("nblocks", rpchelp.Number, true, rpchelp.WithDescription(
					"The number of blocks, or -1 for blocks since last difficulty change (default=120)")),
				rpchelp.MustScalar("height", rpchelp.Number, true, rpchelp.WithDescription(
					"To estimate at the time of the given height (default=-1)")),
			},
			rpchelp.WithResult("n (numeric) Hashes per second estimated"),
			rpchelp.WithExamples(
				rpchelp.ExampleCLI("getnetworkhashps"),
				rpchelp.ExampleRPC(listen, "getnetworkhashps"),
			)),

		rpchelp.NewMethod("generatetoaddress",
			"Mine blocks immediately to a specified address before the RPC call returns.",
			[]rpchelp.Arg{
				rpchelp.MustScalar("nblocks", rpchelp.Number, false, rpchelp.WithDescription(
					"How many blocks are generated immediately")),
				rpchelp.MustScalar("address", rpchelp.String, false, rpchelp.WithDescription(
					"The address to send the newly generated coins to")),
				rpchelp.MustScalar("maxtries", rpchelp.Number, true, rpchelp.WithDescription(
					"How many iterations to try (default=1000000)")),
			},
			rpchelp.WithResult("[ blockhashes ] (json array) Hashes of blocks generated"),
			rpchelp.WithExamples(rpchelp.ExampleCLI("generatetoaddress", 11, "myaddress"))),

		rpchelp.NewMethod("getmininginfo",
			"Returns a json object containing mining-related information.",
			nil,
			rpchelp.WithResult(`{
  "blocks": n,           (numeric) The current block
  "currentblocksize": n, (numeric) The last block size
  "currentblocktx": n,   (numeric) The number of transactions in the last block
  "difficulty": n.nnn,   (numeric) The current difficulty
  "networkhashps": n,    (numeric) The network hashes per second
  "pooledtx": n,         (numeric) The size of the mempool
  "chain": "name"        (string) The name of the current network
}`),
			rpchelp.WithExamples(
				rpchelp.ExampleCLI("getmininginfo"),
				rpchelp.ExampleRPC(listen, "getmininginfo"),
			)),

		rpchelp.NewMethod("prioritisetransaction",
			"Accepts the transaction into mined blocks at a higher (or lower) priority.",
			[]rpchelp.Arg{
				rpchelp.MustScalar("txid", rpchelp.StringHex, false, rpchelp.WithDescription("The transaction id")),
				rpchelp.MustScalar("dummy", rpchelp.Number, true, rpchelp.WithSummary("0 or null"),
					rpchelp.WithDescription("Unused, must be zero or null")),
				rpchelp.MustScalar("fee_delta", rpchelp.Number, false, rpchelp.WithDescription(
					"The fee value in atoms to add (or subtract, if negative); "+
						"only the algorithm selecting transactions into a block considers it")),
			},
			rpchelp.WithResult("true (boolean) Returns true"),
			rpchelp.WithExamples(
				rpchelp.ExampleCLI("prioritisetransaction", "txid", 0, 10000),
				rpchelp.ExampleRPC(listen, "prioritisetransaction", "txid", 0, 10000),
			)),

		rpchelp.NewMethod("getblocktemplate",
			"Returns data needed to construct a block to work on.  If the request "+
				"includes a mode key, it selects between the default template request "+
				"and a proposal.",
			[]rpchelp.Arg{
				rpchelp.MustContainer("template_request", rpchelp.Object, []rpchelp.Arg{
					rpchelp.MustScalar("mode", rpchelp.String, true, rpchelp.WithDescription(
						`This must be set to "template", "proposal", or omitted`)),
					rpchelp.MustContainer("capabilities", rpchelp.Array, []rpchelp.Arg{
						rpchelp.MustScalar("support", rpchelp.String, false, rpchelp.WithDescription(
							"Client side supported feature, e.g. longpoll, coinbasevalue, proposal")),
					}, true, rpchelp.WithDescription("A list of strings")),
				}, true, rpchelp.WithDescription("A json object with the template request")),
			},
			rpchelp.WithResult(`{
  "version": n,             (numeric) The preferred block version
  "previousblockhash": "hex", (string) The hash of current highest block
  "coinbasevalue": n,       (numeric) Maximum allowable input to the coinbase transaction in atoms
  "target": "hex",          (string) The hash target
  "curtime": n,             (numeric) Current timestamp in seconds since epoch
  "bits": "hex",            (string) Compressed target of next block
  "height": n               (numeric) The height of the next block
}`),
			rpchelp.WithExamples(
				rpchelp.ExampleCLI("getblocktemplate"),
				rpchelp.ExampleRPC(listen, "getblocktemplate"),
			)),

		rpchelp.NewMethod("submitblock",
			"Attempts to submit a new block to the network.",
			[]rpchelp.Arg{
				rpchelp.MustScalar("hexdata", rpchelp.StringHex, false, rpchelp.WithDescription(
					"The hex-encoded block data to submit")),
				rpchelp.MustScalar("dummy", rpchelp.String, true, rpchelp.WithDescription(
					"Ignored, kept for compatibility")),
			},
			rpchelp.WithResult("null or a string describing the rejection reason"),
			rpchelp.WithExamples(
				rpchelp.ExampleCLI("submitblock", "mydata"),
				rpchelp.ExampleRPC(listen, "submitblock", "mydata"),
			)),

		rpchelp.NewMethod("submitheader",
			"Decode the given hexdata as a header and submit it as a candidate chain tip if valid.\n"+
				"Throws when the header is invalid.",
			[]rpchelp.Arg{
				rpchelp.MustScalar("hexdata", rpchelp.StringHex, false, rpchelp.WithDescription(
					"The hex-encoded block header data")),
			},
			rpchelp.WithResult("None"),
			rpchelp.WithExamples(
				rpchelp.ExampleCLI("submitheader", "aabbcc"),
				rpchelp.ExampleRPC(listen, "submitheader", "aabbcc"),
			)),

		rpchelp.NewMethod("estimatefee",
			"Estimates the approximate fee per kilobyte needed for a transaction.",
			nil,
			rpchelp.WithResult("n (numeric) Estimated fee-per-kilobyte"),
			rpchelp.WithExamples(rpchelp.ExampleCLI("estimatefee"))),
	}
}
