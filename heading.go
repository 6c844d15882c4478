package validom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strconv"
)

// headingTag marks elements whose concrete h1…h6 tag is resolved at build
// time against the document's heading rank.
const headingTag = "#heading"

// Heading creates a heading element. level is the requested heading level
// 1…6; a level of 0 requests "whatever the current heading rank is". The
// build fails with ErrSkippedHeadingRank if the level is more than one step
// away from the rank of the previously built heading (rank 1 at the top of
// a document), so a document can never skip a heading rank.
//
// Headings take part in the language rule like any other element and are
// block-level flow content.
func Heading(level int, attrs Attrs, children ...Element) Element {
	assertThat(level >= 0 && level <= 6, "heading level %d out of range 1…6", level)
	return Element{tag: headingTag, rank: level, attrs: attrs, children: children}
}

func (el Element) buildHeading(sc Scope) (*Node, error) {
	assertThat(sc.headings != nil, "scope carries no heading state; derive it with NewScope")
	previous := sc.headings.rank
	level := el.rank
	if level == 0 {
		level = previous
	}
	if delta := level - previous; delta > 1 || delta < -1 {
		return nil, fmt.Errorf("%w: heading level %d skips over previous rank %d",
			ErrSkippedHeadingRank, level, previous)
	}
	// Running document-order state: every later heading sees this rank, no
	// matter where in the tree it lives.
	sc.headings.rank = level
	tracer().Debugf("heading rank %d → %d", previous, level)
	return el.build("h"+strconv.Itoa(level), sc)
}
