// Copyright (c) 2018 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package errors

import (
	"io"
	"strings"
	"testing"
)

func depth(err error) int {
	if err == nil {
		return 0
	}
	e, ok := err.(*Error)
	if !ok {
		return 1
	}
	return 1 + depth(e.Err)
}

func eq(e0, e1 *Error) bool {
	if e0.Op != e1.Op {
		return false
	}
	if e0.Kind != e1.Kind {
		return false
	}
	if e0.Err != e1.Err {
		return false
	}
	return true
}

func TestCollapse(t *testing.T) {
	e0 := E(Op("abc"))
	e0 = E(e0, Descriptor)
	if depth(e0) != 1 {
		t.Fatal("e0 was not collapsed")
	}

	e1 := E(Op("abc"), Descriptor)
	if !eq(e0.(*Error), e1.(*Error)) {
		t.Fatal("e0 was not collapsed to e1")
	}
}

func TestMatch(t *testing.T) {
	e := E(Errorf("%s", "some error"), Op("operation"), PubKey)
	if !Match(E("some error"), e) {
		t.Fatal("no match on error strings")
	}
	if Match(E("different error"), e) {
		t.Fatal("match on different error strings")
	}
	if !Match(E(Op("operation")), e) {
		t.Fatal("no match on operation")
	}
	if Match(E(Op("different operation")), e) {
		t.Fatal("match on different operation")
	}
	if !Match(E(PubKey), e) {
		t.Fatal("no match on kind")
	}
	if Match(E(Invalid), e) {
		t.Fatal("match on different kind")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{"kind", E(Op("op"), Descriptor, "bad"), Descriptor, true},
		{"other kind", E(Op("op"), Descriptor, "bad"), Invalid, false},
		{"never other", E(Op("op"), "bad"), Other, false},
		{"nested kind", E(Op("outer"), E(Op("inner"), NotExist, "missing")), NotExist, true},
		{"wrapped eof", E(Op("op"), IO, io.EOF), io.EOF, true},
		{"plain error", io.EOF, Invalid, false},
	}
	for _, test := range tests {
		if got := Is(test.err, test.target); got != test.want {
			t.Errorf("%s: Is = %v, want %v", test.name, got, test.want)
		}
	}
}

func TestAsKind(t *testing.T) {
	err := E(Op("outer"), E(Op("inner"), Encoding, "bad hex"))
	var kind Kind
	if !As(err, &kind) {
		t.Fatal("As did not find a kind")
	}
	if kind != Encoding {
		t.Fatalf("kind = %v, want %v", kind, Encoding)
	}

	kind = Other
	if As(E(Op("op"), "unclassified"), &kind) {
		t.Fatalf("As found kind %v in unclassified error", kind)
	}
}

func TestErrorString(t *testing.T) {
	err := E(Op("rpchelp.NewScalar"), Descriptor, `type ARRAY requires children`)
	want := `rpchelp.NewScalar: invalid argument descriptor: type ARRAY requires children`
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}

	nested := E(Op("declfile.Load"), err)
	if !strings.Contains(nested.Error(), Separator) {
		t.Fatalf("nested error %q does not contain separator", nested.Error())
	}
	if s := E(Op("")).Error(); s != Other.String() {
		t.Fatalf("empty error string = %q", s)
	}
}

func TestStacks(t *testing.T) {
	err := E(Op("outer"), WithStack(Op("inner"), Bug, "unexpected"))
	if n := len(Stacks(err)); n != 1 {
		t.Fatalf("found %d stacks, want 1", n)
	}
	if n := len(Stacks(E("no stack"))); n != 0 {
		t.Fatalf("found %d stacks, want 0", n)
	}
}
