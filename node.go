package validom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"
)

/*
Nodes form the output tree of a document construction. A node is created by
exactly one element build and is never mutated afterwards; parents own their
children (no sharing, no cycles). Text is represented as a node with tag
'#text', mirroring the node shape of golang.org/x/net/html.
*/

// textTag is the pseudo tag for text nodes.
const textTag = "#text"

// Node is a single unit of the output tree.
type Node struct {
	tag      string
	attrs    Attrs
	children []*Node
	data     string // text content for #text nodes
}

// Tag returns the node's tag name ("div", "meta", …), or "#text" for
// text nodes.
func (n *Node) Tag() string {
	return n.tag
}

// IsText is true for text nodes.
func (n *Node) IsText() bool {
	return n.tag == textTag
}

// Data returns the text content of a text node, and "" for element nodes.
func (n *Node) Data() string {
	return n.data
}

// Attr returns the value of an attribute of the node.
func (n *Node) Attr(key string) (string, bool) {
	return n.attrs.Get(key)
}

// Attributes returns a copy of the node's attributes, in emission order.
func (n *Node) Attributes() Attrs {
	return n.attrs.clone()
}

// ChildCount returns the number of children-nodes for a node.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// Child returns a children-node of a node.
func (n *Node) Child(i int) (*Node, bool) {
	if i < 0 || i >= len(n.children) {
		return nil, false
	}
	return n.children[i], true
}

// Children returns a slice with all children of a node.
func (n *Node) Children() []*Node {
	children := make([]*Node, len(n.children))
	copy(children, n.children)
	return children
}

// TextContent returns the concatenated text of the node and all of its
// descendents, in document order.
func (n *Node) TextContent() string {
	var b strings.Builder
	n.textContent(&b)
	return b.String()
}

func (n *Node) textContent(b *strings.Builder) {
	if n.IsText() {
		b.WriteString(n.data)
		return
	}
	for _, ch := range n.children {
		ch.textContent(b)
	}
}

func (n *Node) String() string {
	if n.IsText() {
		return fmt.Sprintf("(Node #text %q)", n.data)
	}
	return fmt.Sprintf("(Node <%s> #ch=%d)", n.tag, len(n.children))
}

// --- Attributes ------------------------------------------------------------

// Attr is a single key/value attribute of an element.
type Attr struct {
	Key   string
	Value string
}

// Attrs is an ordered list of attributes. Constructors accept nil for
// "no attributes".
type Attrs []Attr

// A starts an attribute list with a single entry. Further entries may be
// chained:
//
//     validom.A("href", "/about").A("id", "about-link")
//
func A(key, value string) Attrs {
	return Attrs{{Key: key, Value: value}}
}

// A appends an attribute, leaving the receiver untouched.
func (attrs Attrs) A(key, value string) Attrs {
	out := make(Attrs, len(attrs), len(attrs)+1)
	copy(out, attrs)
	return append(out, Attr{Key: key, Value: value})
}

// Get returns the value of the attribute with the given key.
func (attrs Attrs) Get(key string) (string, bool) {
	for _, a := range attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

func (attrs Attrs) clone() Attrs {
	if len(attrs) == 0 {
		return nil
	}
	out := make(Attrs, len(attrs))
	copy(out, attrs)
	return out
}

func (attrs Attrs) without(key string) Attrs {
	out := make(Attrs, 0, len(attrs))
	for _, a := range attrs {
		if a.Key != key {
			out = append(out, a)
		}
	}
	return out
}
