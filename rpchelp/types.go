// Copyright (c) 2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpchelp

import "fmt"

// Type identifies the JSON shape of an RPC argument.
type Type int

// Argument types.  Object, ObjectUserKeys and Array are container types and
// describe their members with child descriptors; the remaining types are
// scalars.
const (
	Object Type = iota
	Array
	String
	Number
	Bool
	ObjectUserKeys // Object keyed by caller-chosen names, e.g. addresses
	Amount         // Coin amount given either as a number or a string
	StringHex      // String of hexadecimal characters
	numTypes
)

var typeNames = [numTypes]string{
	Object:         "OBJECT",
	Array:          "ARRAY",
	String:         "STRING",
	Number:         "NUMBER",
	Bool:           "BOOL",
	ObjectUserKeys: "OBJECT_USER_KEYS",
	Amount:         "AMOUNT",
	StringHex:      "STRING_HEX",
}

// String returns the declaration name of the type, e.g. "OBJECT_USER_KEYS".
func (t Type) String() string {
	if !t.valid() {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// ParseType returns the type with the declaration name s.  Matching is exact;
// callers wanting case-insensitive matching must normalize first.
func ParseType(s string) (Type, bool) {
	for t, name := range typeNames {
		if name == s {
			return Type(t), true
		}
	}
	return 0, false
}

// IsContainer returns whether values of the type are composed of other typed
// values.
func (t Type) IsContainer() bool {
	switch t {
	case Object, ObjectUserKeys, Array:
		return true
	}
	return false
}

func (t Type) valid() bool {
	return t >= 0 && t < numTypes
}

// Label returns the type description used in the expanded argument listing.
func (t Type) Label() string {
	switch t {
	case Array:
		return "json array"
	case Object, ObjectUserKeys:
		return "json object"
	}
	return t.token()
}

// token is the one-line summary of a scalar type.
func (t Type) token() string {
	switch t {
	case String:
		return "string"
	case Number:
		return "numeric"
	case Bool:
		return "boolean"
	case StringHex:
		return "string (hex)"
	case Amount:
		return "numeric or string"
	}
	return ""
}

// placeholder is the example value written for scalars in the expanded
// argument listing.
func (t Type) placeholder() string {
	switch t {
	case String:
		return `"str"`
	case StringHex:
		return `"hex"`
	case Number:
		return "n"
	case Amount:
		return "amount"
	case Bool:
		return "bool"
	}
	return ""
}
