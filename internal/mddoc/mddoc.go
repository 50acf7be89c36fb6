// Copyright (c) 2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mddoc renders RPC method help as Markdown documents.
package mddoc

import (
	"strings"
	"unicode/utf8"

	"github.com/decred/dcrhelp/rpchelp"
)

// Catalog renders a document titled title with one section per method.
// Sections are separated by horizontal rules.
func Catalog(title string, methods []*rpchelp.Method) string {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(title)
	b.WriteString("\n")
	for _, m := range methods {
		b.WriteString("\n***\n\n")
		b.WriteString(Method(m))
	}
	return b.String()
}

// Method renders the help of m as a Markdown section: the signature as a code
// block, the description, a table of all arguments including nested fields,
// and the result and examples.
func Method(m *rpchelp.Method) string {
	var b strings.Builder
	b.WriteString("## ")
	b.WriteString(m.Name())
	b.WriteString("\n\n")
	codeBlock(&b, m.Usage())

	if d := m.Description(); d != "" {
		b.WriteString("\n")
		b.WriteString(strings.TrimRight(d, "\n"))
		b.WriteString("\n")
	}

	if args := m.Args(); len(args) != 0 {
		t := newTable("Arguments")
		for _, a := range args {
			t.addArg(a.Name(), a, a.Description())
		}
		b.WriteString("\n")
		t.write(&b)
	}

	if r := m.Result(); r != "" {
		b.WriteString("\n**Result**\n\n")
		codeBlock(&b, r)
	}

	if examples := m.Examples(); len(examples) != 0 {
		b.WriteString("\n**Examples**\n\n")
		codeBlock(&b, strings.Join(trimAll(examples), "\n"))
	}

	return b.String()
}

func trimAll(lines []string) []string {
	trimmed := make([]string, len(lines))
	for i, l := range lines {
		trimmed[i] = strings.TrimRight(l, "\n")
	}
	return trimmed
}

func codeBlock(b *strings.Builder, s string) {
	b.WriteString("```\n")
	b.WriteString(strings.TrimRight(s, "\n"))
	b.WriteString("\n```\n")
}

// table is a two-column Markdown table whose first column header is the bold
// title and whose second column header is blank.
type table struct {
	heads  [2]string
	rows   [][2]string
	widths [2]int
}

func newTable(title string) *table {
	t := &table{heads: [2]string{"**" + title + "**", " "}}
	t.widths[0] = utf8.RuneCountInString(t.heads[0])
	t.widths[1] = utf8.RuneCountInString(t.heads[1])
	return t
}

func (t *table) addRow(first, second string) {
	if n := utf8.RuneCountInString(first); n > t.widths[0] {
		t.widths[0] = n
	}
	if n := utf8.RuneCountInString(second); n > t.widths[1] {
		t.widths[1] = n
	}
	t.rows = append(t.rows, [2]string{first, second})
}

// addArg adds a row for a at path and rows for all nested fields.
func (t *table) addArg(path string, a rpchelp.Arg, desc string) {
	presence := "required"
	if a.Optional() {
		presence = "optional"
	}
	second := "(" + a.Type().Label() + ", " + presence + ")"
	if desc != "" {
		second += " " + desc
	}
	t.addRow("`"+path+"`", escape(second))

	c, ok := a.(*rpchelp.Container)
	if !ok {
		return
	}
	for _, child := range c.Children() {
		switch c.Type() {
		case rpchelp.Object:
			t.addArg(path+"."+child.Name(), child, child.Description())
		case rpchelp.ObjectUserKeys:
			d := child.Name()
			if cd := child.Description(); cd != "" {
				if d != "" {
					d += ": "
				}
				d += cd
			}
			t.addArg(path+".*", child, d)
		default:
			t.addArg(path+"[]", child, child.Description())
		}
	}
}

func (t *table) write(b *strings.Builder) {
	writeRow(b, t.heads, t.widths)
	b.WriteString("| :")
	b.WriteString(strings.Repeat("-", t.widths[0]-1))
	b.WriteString(" | ")
	b.WriteString(strings.Repeat("-", t.widths[1]))
	b.WriteString(" |\n")
	for _, r := range t.rows {
		writeRow(b, r, t.widths)
	}
}

func writeRow(b *strings.Builder, cells [2]string, widths [2]int) {
	b.WriteString("|")
	for i, c := range cells {
		b.WriteString(" ")
		b.WriteString(c)
		b.WriteString(strings.Repeat(" ", widths[i]-utf8.RuneCountInString(c)))
		b.WriteString(" |")
	}
	b.WriteString("\n")
}

var escaper = strings.NewReplacer("<", "&lt;", ">", "&gt;", "|", `\|`)

// escape escapes HTML tag delimiters and table cell separators.
func escape(s string) string {
	return escaper.Replace(s)
}
