package validom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/

/*
The document assembler is the root caller of every element build. Its one
algorithmic job is normalizing the content a caller hands over into an
explicit <head>/<body> pair; everything below that pair is ordinary element
building under the scope the assembler seeds.
*/

// Document assembles a complete document tree: an <html> node carrying the
// given lang, with exactly one <head> and one <body> as children, in that
// order. lang and title are mandatory; description may be empty, the
// description metadata node is emitted either way.
//
// content may be empty, a Head and a Body, a lone Head, a lone Body, or
// arbitrary elements, which are then treated as body content. The head —
// given or synthesized — always starts with charset, viewport and
// description metadata and the <title>; caller-supplied head content comes
// after those.
//
// Each call seeds a fresh scope, so no two document builds share heading
// state.
func Document(lang, title, description string, content ...Element) (*Node, error) {
	assertThat(title != "", "document title may not be empty")
	sc := NewScope(lang) // asserts lang != ""
	head, body := normalize(content)
	head = injectMetadata(head, title, description)
	headNode, err := head.Build(sc)
	if err != nil {
		return nil, err
	}
	bodyNode, err := body.Build(sc)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("assembled document %q, lang %q", title, lang)
	return &Node{
		tag:      "html",
		attrs:    Attrs{{Key: "lang", Value: lang}},
		children: []*Node{headNode, bodyNode},
	}, nil
}

// normalize maps the five accepted content shapes onto a head/body pair.
// An empty document gets a body holding a single space, to guarantee a
// non-empty, visually stable body.
func normalize(content []Element) (head Element, body Element) {
	switch {
	case len(content) == 0:
		return Head(nil), Body(nil, Text(" "))
	case len(content) == 2 && content[0].tag == "head" && content[1].tag == "body":
		return content[0], content[1]
	case len(content) == 1 && content[0].tag == "head":
		return content[0], Body(nil)
	case len(content) == 1 && content[0].tag == "body":
		return Head(nil), content[0]
	}
	return Head(nil), Body(nil, content...)
}

// injectMetadata prepends the fixed head preamble to a head element's
// content: charset, viewport, description, title, in this order.
func injectMetadata(head Element, title, description string) Element {
	children := make([]Element, 0, len(head.children)+4)
	children = append(children,
		MetaCharset(),
		MetaViewport(),
		MetaDescription(description),
		Title(title),
	)
	children = append(children, head.children...)
	return Element{tag: "head", attrs: head.attrs, children: children}
}
