package validom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/

/*
Tag constructors: one thin wrapper around El per registered tag, plus a
handful of composite conveniences. No constructor carries validation of its
own; all rules live in the build pipeline.
*/

// Head creates the <head> element of a document. Document injects the
// charset/viewport/description/title preamble before the given children.
func Head(attrs Attrs, children ...Element) Element {
	return El("head", attrs, children...)
}

// Body creates the <body> element of a document.
func Body(attrs Attrs, children ...Element) Element {
	return El("body", attrs, children...)
}

// Title creates the document <title>.
func Title(title string) Element {
	return El("title", nil, Text(title))
}

// Meta creates a <meta> element. A meta carrying an itemprop attribute
// counts as flow/phrasing content and may live inside <body>; any other
// meta is metadata content.
func Meta(attrs Attrs) Element {
	return El("meta", attrs)
}

// Link creates a <link> element.
func Link(attrs Attrs) Element {
	return El("link", attrs)
}

func Div(attrs Attrs, children ...Element) Element { return El("div", attrs, children...) }
func P(attrs Attrs, children ...Element) Element { return El("p", attrs, children...) }
func Ul(attrs Attrs, children ...Element) Element { return El("ul", attrs, children...) }
func Ol(attrs Attrs, children ...Element) Element { return El("ol", attrs, children...) }
func Li(attrs Attrs, children ...Element) Element { return El("li", attrs, children...) }
func Dl(attrs Attrs, children ...Element) Element { return El("dl", attrs, children...) }
func Dt(attrs Attrs, children ...Element) Element { return El("dt", attrs, children...) }
func Dd(attrs Attrs, children ...Element) Element { return El("dd", attrs, children...) }
func Section(attrs Attrs, children ...Element) Element { return El("section", attrs, children...) }
func Article(attrs Attrs, children ...Element) Element { return El("article", attrs, children...) }
func Nav(attrs Attrs, children ...Element) Element { return El("nav", attrs, children...) }
func Aside(attrs Attrs, children ...Element) Element { return El("aside", attrs, children...) }
func Header(attrs Attrs, children ...Element) Element { return El("header", attrs, children...) }
func Footer(attrs Attrs, children ...Element) Element { return El("footer", attrs, children...) }
func Main(attrs Attrs, children ...Element) Element { return El("main", attrs, children...) }
func Span(attrs Attrs, children ...Element) Element { return El("span", attrs, children...) }
func Anchor(attrs Attrs, children ...Element) Element { return El("a", attrs, children...) }
func Em(attrs Attrs, children ...Element) Element { return El("em", attrs, children...) }
func Strong(attrs Attrs, children ...Element) Element { return El("strong", attrs, children...) }

// --- Composite conveniences ------------------------------------------------

// DListItem is one term/details group of a description list.
type DListItem struct {
	Term    Element
	Details []Element
}

// DescriptionList arranges term/details groups into a <dl> with <dt> and
// <dd> children.
func DescriptionList(attrs Attrs, items ...DListItem) Element {
	var children []Element
	for _, item := range items {
		children = append(children, Dt(nil, item.Term))
		for _, detail := range item.Details {
			children = append(children, Dd(nil, detail))
		}
	}
	return El("dl", attrs, children...)
}

// CanonicalLink creates a <link rel="canonical"> for the given URL.
func CanonicalLink(href string) Element {
	return Link(A("rel", "canonical").A("href", href))
}

// StylesheetLink creates a <link rel="stylesheet"> for the given URL.
func StylesheetLink(href string) Element {
	return Link(A("rel", "stylesheet").A("href", href))
}

// MetaCharset declares the document encoding, which is always utf-8.
func MetaCharset() Element {
	return Meta(A("charset", "utf-8"))
}

// MetaViewport declares the responsive default viewport.
func MetaViewport() Element {
	return Meta(A("name", "viewport").A("content", "width=device-width, initial-scale=1"))
}

// MetaDescription declares the document description; content may be empty.
func MetaDescription(content string) Element {
	return Meta(A("name", "description").A("content", content))
}
