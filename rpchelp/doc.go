// Copyright (c) 2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package rpchelp describes the parameters of JSON-RPC methods and renders their
help text.

Each method declares its arguments once as a tree of Arg values.  Scalars are
created with NewScalar and containers (arrays and objects) with NewContainer,
children first:

	outputs := rpchelp.MustContainer("outputs", rpchelp.ObjectUserKeys, []rpchelp.Arg{
		rpchelp.MustScalar("address", rpchelp.Amount, false),
	}, false)
	m := rpchelp.NewMethod("sendmany", "Send to multiple recipients.",
		[]rpchelp.Arg{rpchelp.MustScalar("fromaccount", rpchelp.String, false), outputs})

Asking a scalar constructor for a container type, or a container constructor
for a scalar type, fails with an error of kind errors.Descriptor.  The Must
variants panic instead and are meant for declarations made at program start.

Arg.Render produces a one-line summary such as

	{ "key": numeric or string, ... }

and Method.Render the full help text: the call signature, the description, and
an expanded listing of nested arguments.  Descriptors are immutable and all
rendering is free of side effects, so methods may be rendered concurrently.
*/
package rpchelp
