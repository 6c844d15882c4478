package validom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strconv"
	"strings"
)

/*
Every tag name known to the element factory is registered exactly once in a
package-wide table, carrying the element's display level and its content
categories. The table is populated during process initialization and is
read-only while trees are built; registering lazily at construction time
would make the outcome depend on evaluation order.
*/

// ElementDescriptor is the static description of a tag name: its display
// level and how to derive its content categories.
type ElementDescriptor struct {
	Level      DisplayLevel
	Categories CategoryFunc
}

// CategoryFunc derives the content categories of an element from its
// attributes and ancestry. Most elements have fixed categories (see Static);
// <meta> is the notable exception.
type CategoryFunc func(attrs Attrs, ancestry []string) Category

// Static returns a CategoryFunc for elements with fixed content categories.
func Static(cats Category) CategoryFunc {
	return func(Attrs, []string) Category {
		return cats
	}
}

var registry = map[string]ElementDescriptor{}

// Register enters a descriptor for a tag name into the element table.
// Call it during program initialization, before any tree is built;
// registering a tag twice is a programmer error and panics.
func Register(tag string, d ElementDescriptor) {
	assertThat(tag != "", "tag name may not be empty")
	_, exists := registry[tag]
	assertThat(!exists, "tag <%s> is already registered", tag)
	if d.Categories == nil {
		d.Categories = Static(0)
	}
	registry[tag] = d
}

func descriptor(tag string) (ElementDescriptor, bool) {
	d, ok := registry[tag]
	return d, ok
}

// metaCategories reclassifies <meta> as flow/phrasing content when an
// itemprop attribute (microdata) is present; such a meta is legal inside
// <body>. Without it, meta is metadata content only.
func metaCategories(attrs Attrs, _ []string) Category {
	for _, a := range attrs {
		if strings.EqualFold(a.Key, "itemprop") {
			return CatFlow | CatPhrasing
		}
	}
	return CatMetadata
}

func init() {
	block := ElementDescriptor{Level: LevelBlock, Categories: Static(CatFlow)}
	inline := ElementDescriptor{Level: LevelInline, Categories: Static(CatFlow | CatPhrasing)}
	sectioning := ElementDescriptor{Level: LevelBlock, Categories: Static(CatFlow | CatSectioning)}
	metadata := ElementDescriptor{Level: LevelNone, Categories: Static(CatMetadata)}

	for _, tag := range []string{
		"div", "p", "ul", "ol", "li", "dl", "dt", "dd",
		"blockquote", "figure", "figcaption", "main",
	} {
		Register(tag, block)
	}
	for _, tag := range []string{"section", "article", "nav", "aside", "header", "footer"} {
		Register(tag, sectioning)
	}
	for _, tag := range []string{"span", "a", "em", "strong", "small", "code"} {
		Register(tag, inline)
	}
	for level := 1; level <= 6; level++ {
		Register("h"+strconv.Itoa(level), ElementDescriptor{
			Level:      LevelBlock,
			Categories: Static(CatFlow | CatHeading),
		})
	}
	for _, tag := range []string{"title", "link", "style"} {
		Register(tag, metadata)
	}
	Register("meta", ElementDescriptor{Level: LevelNone, Categories: metaCategories})

	// The document skeleton. <html> is only ever produced by Document, but
	// registering it keeps stray El("html", …) calls inside a tree from
	// passing the content checks.
	Register("html", ElementDescriptor{Level: LevelBlock})
	Register("head", metadata)
	Register("body", ElementDescriptor{Level: LevelBlock})
}
