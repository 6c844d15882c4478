package validom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"golang.org/x/text/language"
)

/*
A Scope carries the construction-time context down through the tree. It
replaces the ambient context-provider stacks of UI frameworks with a plain
immutable value, threaded as an argument through every build call. Restoring
context on subtree exit is automatic: every child build receives its own
Scope value and the parent's Scope is never touched.

Three of the four fields are lexically scoped this way. The heading rank is
not: it is a running counter over the whole document, shared via pointer,
because headings relate to each other in document order, not by nesting.
*/

// Scope is the context an element is built in. Scopes are immutable; derive
// the initial one for a document fragment with NewScope.
type Scope struct {
	ancestry []string      // tag names, document root → parent
	language string        // currently active lang value
	level    DisplayLevel  // currently active block/inline context
	headings *headingState // document-wide heading rank, deliberately shared
}

type headingState struct {
	rank int // level of the most recently built heading, 1…6
}

// NewScope returns the scope at the top of a document with the given
// language: ancestry ["html"], block context, heading rank 1. Every call
// allocates a fresh heading counter, so trees built from separate scopes
// never influence each other.
func NewScope(lang string) Scope {
	assertThat(lang != "", "document language may not be empty")
	return Scope{
		ancestry: []string{"html"},
		language: lang,
		level:    LevelBlock,
		headings: &headingState{rank: 1},
	}
}

// Language returns the currently active lang value.
func (sc Scope) Language() string {
	return sc.language
}

// Level returns the currently active block/inline context.
func (sc Scope) Level() DisplayLevel {
	return sc.level
}

// Ancestry returns a copy of the tag names enclosing the current position,
// document root first.
func (sc Scope) Ancestry() []string {
	ancestry := make([]string, len(sc.ancestry))
	copy(ancestry, sc.ancestry)
	return ancestry
}

// HeadingRank returns the level of the most recently built heading, or 0
// for a scope without heading state.
func (sc Scope) HeadingRank() int {
	if sc.headings == nil {
		return 0
	}
	return sc.headings.rank
}

// descend returns the scope for the children of a node with the given tag.
// The ancestry gets a fresh backing array; appends for sibling subtrees may
// never alias.
func (sc Scope) descend(tag string) Scope {
	ancestry := make([]string, len(sc.ancestry), len(sc.ancestry)+1)
	copy(ancestry, sc.ancestry)
	sc.ancestry = append(ancestry, tag)
	return sc
}

func (sc Scope) hasAncestor(tag string) bool {
	for _, a := range sc.ancestry {
		if a == tag {
			return true
		}
	}
	return false
}

// langEquals compares two lang values as BCP 47 tags: 'en-us' and 'en-US'
// name the same language. Values which do not parse as language tags are
// compared case-insensitively.
func langEquals(l1, l2 string) bool {
	if strings.EqualFold(l1, l2) {
		return true
	}
	t1, err := language.Parse(l1)
	if err != nil {
		return false
	}
	t2, err := language.Parse(l2)
	if err != nil {
		return false
	}
	return t1 == t2
}
