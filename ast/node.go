package ast

import (
	"errors"
	"strings"
)

// Indent is the default indentation unit: one unit is emitted per level of
// nesting.
const Indent = "\t"

var (
	// ErrLeafNode is returned when content is appended into a node which cannot
	// hold children.
	ErrLeafNode = errors.New("cannot append content to a leaf node")

	// ErrAlreadyAttached is returned when a node that already belongs to a
	// parent is attached a second time.
	ErrAlreadyAttached = errors.New("node is already attached to a parent")

	// ErrNilNode is returned when a nil node is attached.
	ErrNilNode = errors.New("cannot attach a nil node")
)

// Node is an element of the program tree.  Every node can have raw text or
// another node appended to it and can render itself at a given depth.  Nodes
// which cannot hold children return ErrLeafNode from both append methods.
type Node interface {
	// AddRaw appends a verbatim text fragment to the node.
	AddRaw(raw string) error

	// AddNode appends a child node.  The parent takes ownership of the child:
	// a node can only ever be attached once.
	AddNode(n Node) error

	// Render produces the concrete syntax of the node indented by `depth`
	// indentation units.  It does not modify the tree.
	Render(depth int) string

	// render is the printer-aware rendering all the exported renderers defer
	// to.  It also seals the interface.
	render(p *Printer, depth int) string

	// attach marks the node as owned by a parent.  It returns false if the node
	// already had a parent.
	attach() bool
}

// Render renders a node at depth zero using the default indentation.
func Render(n Node) string {
	return n.Render(0)
}

// -----------------------------------------------------------------------------

// Printer controls how trees are rendered.  The zero value renders using the
// default indentation unit.
type Printer struct {
	// Indent is the indentation unit.  If empty, `ast.Indent` is used.
	Indent string
}

// defaultPrinter is the printer used by `Node.Render`.
var defaultPrinter = &Printer{Indent: Indent}

// Render renders a node at depth zero.
func (p *Printer) Render(n Node) string {
	return n.render(p, 0)
}

// unit returns the printer's indentation unit.
func (p *Printer) unit() string {
	if p.Indent == "" {
		return Indent
	}

	return p.Indent
}

// indentAll prefixes every line of text with `depth` indentation units.
func (p *Printer) indentAll(text string, depth int) string {
	return IndentAll(text, strings.Repeat(p.unit(), depth))
}

// frame wraps a rendered body between an opening line and a closing brace.
// Empty bodies produce no blank line.
func (p *Printer) frame(head, body string) string {
	if body == "" {
		return head + "\n}"
	}

	return head + "\n" + body + "\n}"
}

// IndentAll prefixes every line of text, including the first, with indent.
func IndentAll(text, indent string) string {
	if indent == "" {
		return text
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = indent + line
	}

	return strings.Join(lines, "\n")
}

// -----------------------------------------------------------------------------

// nodeBase stores the ownership state shared by all nodes.
type nodeBase struct {
	attached bool
}

func (nb *nodeBase) attach() bool {
	if nb.attached {
		return false
	}

	nb.attached = true
	return true
}

// leaf implements the append methods for nodes that cannot hold children.
type leaf struct {
	nodeBase
}

func (*leaf) AddRaw(string) error { return ErrLeafNode }
func (*leaf) AddNode(Node) error  { return ErrLeafNode }

// container holds an ordered sequence of child nodes.
type container struct {
	nodeBase

	children []Node
}

func (c *container) AddRaw(raw string) error {
	return c.AddNode(NewRaw(raw))
}

func (c *container) AddNode(n Node) error {
	if n == nil {
		return ErrNilNode
	}

	if !n.attach() {
		return ErrAlreadyAttached
	}

	c.children = append(c.children, n)
	return nil
}

// Children returns the node's children in order.
func (c *container) Children() []Node {
	return c.children
}

// Len returns the number of children.
func (c *container) Len() int {
	return len(c.children)
}

// renderChildren renders each child at depth one, joined by newlines.
func (c *container) renderChildren(p *Printer) string {
	return c.renderChildrenAt(p, 1)
}

// renderChildrenAt renders each child at the given depth, joined by newlines.
func (c *container) renderChildrenAt(p *Printer, depth int) string {
	lines := make([]string, len(c.children))
	for i, child := range c.children {
		lines[i] = child.render(p, depth)
	}

	return strings.Join(lines, "\n")
}
