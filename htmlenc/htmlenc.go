/*
Package htmlenc bridges validom node trees to golang.org/x/net/html.

The core engine produces abstract trees only; this package is the seam to
actual markup. Tags map 1:1 to HTML tag names, attributes to HTML attribute
syntax, children render in order. Escaping and serialization details are
entirely x/net/html's business.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package htmlenc

import (
	"io"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/validom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'validom.htmlenc'.
func tracer() tracing.Trace {
	return tracing.Select("validom.htmlenc")
}

// AsHTMLNode converts a node tree into an equivalent x/net/html node tree.
// The returned tree is freshly allocated and not linked to n.
func AsHTMLNode(n *validom.Node) *html.Node {
	if n.IsText() {
		return &html.Node{Type: html.TextNode, Data: n.Data()}
	}
	h := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag(),
		DataAtom: atom.Lookup([]byte(n.Tag())),
	}
	for _, a := range n.Attributes() {
		h.Attr = append(h.Attr, html.Attribute{Key: a.Key, Val: a.Value})
	}
	for _, ch := range n.Children() {
		h.AppendChild(AsHTMLNode(ch))
	}
	return h
}

// Render serializes a node tree as markup text.
func Render(w io.Writer, n *validom.Node) error {
	return html.Render(w, AsHTMLNode(n))
}

// RenderDocument serializes a document tree, preceded by the HTML5 doctype.
// n should be the <html> node returned by validom.Document.
func RenderDocument(w io.Writer, n *validom.Node) error {
	tracer().Debugf("rendering document %s", n)
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(AsHTMLNode(n))
	return html.Render(w, doc)
}
