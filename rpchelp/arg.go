// Copyright (c) 2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpchelp

import (
	"strconv"
	"strings"

	"github.com/decred/dcrhelp/errors"
)

// Arg describes a single RPC argument.  An Arg is either a *Scalar or a
// *Container; no other implementations exist.  Args are immutable once
// constructed and may be shared between goroutines.
type Arg interface {
	// Name returns the argument name.  Inner elements of arrays may be
	// unnamed.
	Name() string

	// Type returns the declared JSON shape of the argument.
	Type() Type

	// Optional returns whether callers may omit the argument.
	Optional() bool

	// Summary returns the summary override and whether one was declared.
	Summary() (string, bool)

	// Description returns the free-text description shown in the expanded
	// argument listing.
	Description() string

	// Render returns the one-line description of the argument, marked as
	// optional when it may be omitted.
	Render() string

	oneline() string
}

// Option modifies an argument during construction.
type Option func(*argBase)

// WithSummary replaces the generated one-line summary of an argument.  An
// empty override is recorded but does not replace the generated summary.
func WithSummary(summary string) Option {
	return func(a *argBase) {
		a.summary = summary
		a.hasSummary = true
	}
}

// WithDescription sets the description of an argument.
func WithDescription(desc string) Option {
	return func(a *argBase) {
		a.description = desc
	}
}

type argBase struct {
	name        string
	typ         Type
	optional    bool
	summary     string
	hasSummary  bool
	description string
}

func (a *argBase) Name() string            { return a.name }
func (a *argBase) Type() Type              { return a.typ }
func (a *argBase) Optional() bool          { return a.optional }
func (a *argBase) Summary() (string, bool) { return a.summary, a.hasSummary }
func (a *argBase) Description() string     { return a.description }

func (a *argBase) apply(opts []Option) {
	for _, o := range opts {
		o(a)
	}
}

// markOptional appends the optional marker to a summary line.
func (a *argBase) markOptional(s string) string {
	if a.optional {
		return s + " (optional)"
	}
	return s
}

// Scalar is an argument without inner structure: a string, number, boolean,
// amount, or hex string.
type Scalar struct {
	argBase
}

// NewScalar creates a scalar argument.  An error with kind errors.Descriptor
// is returned if typ is a container type.
func NewScalar(name string, typ Type, optional bool, opts ...Option) (*Scalar, error) {
	const op errors.Op = "rpchelp.NewScalar"
	if !typ.valid() {
		return nil, errors.E(op, errors.Descriptor,
			errors.Errorf("argument %q has unknown type %v", name, typ))
	}
	if typ.IsContainer() {
		return nil, errors.E(op, errors.Descriptor,
			errors.Errorf("argument %q of container type %v must be declared with children", name, typ))
	}
	s := &Scalar{argBase{name: name, typ: typ, optional: optional}}
	s.apply(opts)
	return s, nil
}

// MustScalar is like NewScalar but panics if the argument cannot be created.
// It is intended for method declarations made during program initialization.
func MustScalar(name string, typ Type, optional bool, opts ...Option) *Scalar {
	s, err := NewScalar(name, typ, optional, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Render returns the one-line description of the argument.
func (s *Scalar) Render() string {
	return s.markOptional(s.oneline())
}

func (s *Scalar) oneline() string {
	if s.summary != "" {
		return s.summary
	}
	return s.typ.token()
}

// Container is an argument composed of other arguments: an array, an object
// with fixed keys, or an object with caller-chosen keys.
type Container struct {
	argBase
	children []Arg
}

// NewContainer creates a container argument describing its members with
// children.  A nil or empty children slice declares a container without a
// described shape.  An error with kind errors.Descriptor is returned if typ is
// not a container type or any child is nil.
func NewContainer(name string, typ Type, children []Arg, optional bool, opts ...Option) (*Container, error) {
	const op errors.Op = "rpchelp.NewContainer"
	if !typ.valid() {
		return nil, errors.E(op, errors.Descriptor,
			errors.Errorf("argument %q has unknown type %v", name, typ))
	}
	if !typ.IsContainer() {
		return nil, errors.E(op, errors.Descriptor,
			errors.Errorf("argument %q of scalar type %v can not have children", name, typ))
	}
	for i, child := range children {
		if child == nil {
			return nil, errors.E(op, errors.Descriptor,
				errors.Errorf("argument %q child %d is nil", name, i))
		}
	}
	c := &Container{
		argBase:  argBase{name: name, typ: typ, optional: optional},
		children: append([]Arg(nil), children...),
	}
	c.apply(opts)
	return c, nil
}

// MustContainer is like NewContainer but panics if the argument cannot be
// created.  It is intended for method declarations made during program
// initialization.
func MustContainer(name string, typ Type, children []Arg, optional bool, opts ...Option) *Container {
	c, err := NewContainer(name, typ, children, optional, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Children returns the member descriptors of the container.  The returned
// slice is a copy.
func (c *Container) Children() []Arg {
	return append([]Arg(nil), c.children...)
}

// Render returns the one-line description of the argument.  Members are
// rendered inside bracket notation for arrays and brace notation for objects.
func (c *Container) Render() string {
	return c.markOptional(c.oneline())
}

func (c *Container) oneline() string {
	if c.summary != "" {
		return c.summary
	}

	parts := make([]string, 0, len(c.children)+1)
	for _, child := range c.children {
		switch c.typ {
		case Object:
			parts = append(parts, quote(child.Name())+": "+child.Render())
		case ObjectUserKeys:
			parts = append(parts, userKey+": "+child.Render())
		default:
			parts = append(parts, child.Render())
		}
	}

	switch c.typ {
	case Array:
		parts = append(parts, "...")
		return "[ " + strings.Join(parts, ", ") + " ]"
	case ObjectUserKeys:
		parts = append(parts, "...")
		return "{ " + strings.Join(parts, ", ") + " }"
	default:
		if len(parts) == 0 {
			return "{ }"
		}
		return "{ " + strings.Join(parts, ", ") + " }"
	}
}

// userKey is written in place of member names of objects with caller-chosen
// keys.
const userKey = `"key"`

func quote(name string) string {
	return strconv.Quote(name)
}
