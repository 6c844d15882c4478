/*
Package validom builds HTML document trees which are valid by construction.

Clients assemble documents from element constructors (Div, Span, Heading,
Meta, …). Construction is deferred: a constructor produces an Element, a
lightweight description which is turned into a Node as soon as an enclosing
scope is known. While the tree materializes, four rules are enforced on
every element:

  - content model: metadata-only content may not live below <body>, and
    nothing but metadata content may live below <head>
  - nesting: a block-level element may not be a child of an inline-level
    element
  - language: a lang attribute equal to the inherited language is dropped,
    a differing one becomes the inherited language of the subtree
  - heading ranks: the document-wide heading rank may never move by more
    than one step

Violations surface as errors wrapping ErrInvalidContentModel,
ErrInvalidNesting or ErrSkippedHeadingRank. These flag broken calling code,
not broken input data, and abort the construction of the whole tree.

The result of a successful construction is an abstract tree of Nodes.
Turning Nodes into markup text is not this package's business; package
htmlenc bridges to golang.org/x/net/html for that.

Status

Early draft—API may change frequently. Please stay patient.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package validom

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'validom.core'.
func tracer() tracing.Trace {
	return tracing.Select("validom.core")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("validom: "+msg, msgargs...)
		panic(msg)
	}
}
