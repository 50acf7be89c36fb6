// Copyright (c) 2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpchelp

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// lineWidth is the widest signature written on a single line.
	lineWidth = 80

	// maxLeftColumn caps the alignment of the right-hand column of the
	// argument listing.  Longer left-hand text is followed by two spaces.
	maxLeftColumn = 40
)

// Method describes an RPC method: its name, what it does, and its positional
// arguments.
type Method struct {
	name        string
	description string
	args        []Arg
	result      string
	examples    []string
}

// MethodOption modifies a method during construction.
type MethodOption func(*Method)

// WithResult describes the value returned by the method.
func WithResult(result string) MethodOption {
	return func(m *Method) {
		m.result = result
	}
}

// WithExamples appends example invocations, usually created with ExampleCLI
// and ExampleRPC.
func WithExamples(examples ...string) MethodOption {
	return func(m *Method) {
		m.examples = append(m.examples, examples...)
	}
}

// NewMethod creates the description of an RPC method.  Arguments are in
// positional call order.
func NewMethod(name, description string, args []Arg, opts ...MethodOption) *Method {
	m := &Method{
		name:        name,
		description: description,
		args:        append([]Arg(nil), args...),
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Name returns the method name.
func (m *Method) Name() string { return m.name }

// Description returns the free-text method description.
func (m *Method) Description() string { return m.description }

// Args returns a copy of the top-level arguments in call order.
func (m *Method) Args() []Arg { return append([]Arg(nil), m.args...) }

// Result returns the result description, if any.
func (m *Method) Result() string { return m.result }

// Examples returns a copy of the declared examples.
func (m *Method) Examples() []string { return append([]string(nil), m.examples...) }

func (m *Method) signatureParts() []string {
	parts := make([]string, len(m.args))
	for i, a := range m.args {
		if a.Name() == "" {
			parts[i] = a.Render()
			continue
		}
		parts[i] = a.Name() + ": " + a.Render()
	}
	return parts
}

// Usage returns the call signature of the method on a single line.
func (m *Method) Usage() string {
	return m.name + "(" + strings.Join(m.signatureParts(), ", ") + ")"
}

// signature returns the call signature, placing every argument on its own
// line when the signature does not fit within lineWidth.
func (m *Method) signature() string {
	usage := m.Usage()
	if len(m.args) == 0 || utf8.RuneCountInString(usage) <= lineWidth {
		return usage
	}
	parts := m.signatureParts()
	var b strings.Builder
	b.WriteString(m.name)
	b.WriteString("(\n")
	for i, p := range parts {
		b.WriteString("    ")
		b.WriteString(p)
		if i != len(parts)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteByte(')')
	return b.String()
}

// Render returns the complete help text of the method: the call signature,
// the description, an expanded listing of the arguments when any has nested
// structure or a description, and the result and examples when declared.
func (m *Method) Render() string {
	var b strings.Builder
	b.WriteString(m.signature())
	b.WriteByte('\n')

	if m.description != "" {
		b.WriteByte('\n')
		writeBlock(&b, m.description)
	}

	if m.hasListing() {
		b.WriteString("\nArguments:\n")
		b.WriteString(m.listing())
	}

	if m.result != "" {
		b.WriteString("\nResult:\n")
		writeBlock(&b, m.result)
	}

	if len(m.examples) != 0 {
		b.WriteString("\nExamples:\n")
		for _, e := range m.examples {
			writeBlock(&b, e)
		}
	}

	return b.String()
}

// writeBlock writes s followed by a newline unless s already ends with one.
func writeBlock(b *strings.Builder, s string) {
	b.WriteString(s)
	if !strings.HasSuffix(s, "\n") {
		b.WriteByte('\n')
	}
}

func (m *Method) hasListing() bool {
	for _, a := range m.args {
		if a.Type().IsContainer() || a.Description() != "" {
			return true
		}
	}
	return false
}

// helpLine is one line of the argument listing.  The right-hand column holds
// the type and description and is aligned across the listing.
type helpLine struct {
	left, right string
}

func (m *Method) listing() string {
	var lines []helpLine
	for i, a := range m.args {
		lines = append(lines, helpLine{
			left:  fmt.Sprintf("%d. %s", i+1, a.Name()),
			right: typeColumn(a, a.Description()),
		})
		if c, ok := a.(*Container); ok {
			lines = expand(lines, c, 2, "", "")
		}
	}
	return formatColumns(lines)
}

// expand appends the expanded form of a at nesting depth to lines.  label
// prefixes the left-hand text ("name": for object members) and right is the
// right-hand column of the first line.
func expand(lines []helpLine, a Arg, depth int, label, right string) []helpLine {
	indent := strings.Repeat("  ", depth)
	c, ok := a.(*Container)
	if !ok {
		value := a.Type().placeholder()
		if s, _ := a.Summary(); s != "" {
			value = s
		}
		return append(lines, helpLine{indent + label + value, right})
	}
	if s, _ := c.Summary(); s != "" {
		return append(lines, helpLine{indent + label + s, right})
	}

	opening, closing := "{", "}"
	if c.typ == Array {
		opening, closing = "[", "]"
	}
	lines = append(lines, helpLine{indent + label + opening, right})
	for _, child := range c.children {
		switch c.typ {
		case Object:
			lines = expand(lines, child, depth+1, quote(child.Name())+": ",
				typeColumn(child, child.Description()))
		case ObjectUserKeys:
			desc := child.Name()
			if d := child.Description(); d != "" {
				if desc != "" {
					desc += ": "
				}
				desc += d
			}
			lines = expand(lines, child, depth+1, userKey+": ",
				typeColumn(child, desc))
		default:
			lines = expand(lines, child, depth+1, "",
				typeColumn(child, child.Description()))
		}
	}
	if c.typ != Object {
		lines = append(lines, helpLine{indent + "  ...", ""})
	}
	return append(lines, helpLine{indent + closing, ""})
}

// typeColumn returns the right-hand column for an argument, e.g.
// "(numeric, optional) The number of blocks".
func typeColumn(a Arg, desc string) string {
	presence := "required"
	if a.Optional() {
		presence = "optional"
	}
	col := "(" + a.Type().Label() + ", " + presence + ")"
	if desc != "" {
		col += " " + desc
	}
	return col
}

func formatColumns(lines []helpLine) string {
	width := 0
	for _, l := range lines {
		n := utf8.RuneCountInString(l.left)
		if l.right != "" && n > width && n <= maxLeftColumn {
			width = n
		}
	}

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l.left)
		if l.right != "" {
			pad := width - utf8.RuneCountInString(l.left) + 2
			if pad < 2 {
				pad = 2
			}
			b.WriteString(strings.Repeat(" ", pad))
			b.WriteString(l.right)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
