package validom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "strings"

// Category is a set of HTML content categories, encoded as a bit mask.
// Content categories classify which structural contexts an element may
// legally appear in; see
// https://developer.mozilla.org/en-US/docs/Web/HTML/Content_categories
type Category uint32

const (
	CatFlow Category = 1 << iota
	CatPhrasing
	CatMetadata
	CatHeading
	CatSectioning
)

// Contains checks whether cats includes category c.
func (cats Category) Contains(c Category) bool {
	return cats&c != 0
}

func (cats Category) String() string {
	if cats == 0 {
		return "(none)"
	}
	var names []string
	for _, c := range []struct {
		cat  Category
		name string
	}{
		{CatFlow, "flow"},
		{CatPhrasing, "phrasing"},
		{CatMetadata, "metadata"},
		{CatHeading, "heading"},
		{CatSectioning, "sectioning"},
	} {
		if cats.Contains(c.cat) {
			names = append(names, c.name)
		}
	}
	return strings.Join(names, "|")
}

// DisplayLevel tells whether an element by default occupies its own line
// (block) or flows within text (inline). Metadata elements have neither.
type DisplayLevel int8

const (
	LevelNone DisplayLevel = iota
	LevelBlock
	LevelInline
)

func (l DisplayLevel) String() string {
	switch l {
	case LevelBlock:
		return "block"
	case LevelInline:
		return "inline"
	}
	return "none"
}
