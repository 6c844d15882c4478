package validom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
)

// Construction-time validation errors. All of them flag structurally wrong
// calling code, not bad input data: there is nothing to retry, and no
// partial tree is handed out. Test for them with errors.Is.
var (
	// ErrInvalidContentModel flags content in a part of the document where
	// its content categories do not permit it (non-flow content below
	// <body>, non-metadata content below <head>).
	ErrInvalidContentModel = errors.New("invalid content model")

	// ErrInvalidNesting flags a block-level element below an inline-level
	// element.
	ErrInvalidNesting = errors.New("invalid nesting")

	// ErrSkippedHeadingRank flags a heading whose level differs from the
	// previous heading's rank by more than one step.
	ErrSkippedHeadingRank = errors.New("skipped heading rank")
)

/*
An Element is a deferred element construction: tag, attributes and children,
waiting for the Scope of an enclosing call before any Node materializes.
Building is what runs the validation pipeline, so an Element by itself is
cheap and always legal to create.
*/

// Element describes one element-producing unit of a document tree.
// Create Elements with the tag constructors (Div, Span, Meta, …), with
// El for any other registered tag, or with Text.
type Element struct {
	tag      string
	attrs    Attrs
	children []Element
	text     string // payload for #text elements
	rank     int    // requested level for heading elements; 0 = current rank
}

// El creates an element for any registered tag name. The tag constructors
// in this package are thin wrappers around El.
func El(tag string, attrs Attrs, children ...Element) Element {
	assertThat(tag != "", "element tag may not be empty")
	return Element{tag: tag, attrs: attrs, children: children}
}

// Text creates a text unit. Text is not subject to any validation rule.
func Text(text string) Element {
	return Element{tag: textTag, text: text}
}

// Tag returns the tag name the element will build, or "#text".
func (el Element) Tag() string {
	return el.tag
}

// Build constructs the node for el under the given scope, building all
// children recursively. It fails with the first rule violation found; no
// node is returned for a subtree with a failing descendent.
func (el Element) Build(sc Scope) (*Node, error) {
	switch el.tag {
	case textTag:
		return &Node{tag: textTag, data: el.text}, nil
	case headingTag:
		return el.buildHeading(sc)
	}
	return el.build(el.tag, sc)
}

func (el Element) build(tag string, sc Scope) (*Node, error) {
	d, ok := descriptor(tag)
	assertThat(ok, "tag <%s> has not been registered", tag)
	st := buildState{tag: tag, desc: d, el: el, scope: sc, attrs: el.attrs}
	for _, check := range checks {
		if err := check(&st); err != nil {
			tracer().Debugf("building <%s> fails: %v", tag, err)
			return nil, err
		}
	}
	children := make([]*Node, 0, len(el.children))
	for _, ch := range el.children {
		n, err := ch.Build(st.scope)
		if err != nil {
			return nil, err
		}
		children = append(children, n)
	}
	return &Node{tag: tag, attrs: st.attrs.clone(), children: children}, nil
}

// --- Validation pipeline ---------------------------------------------------

// buildState is the state threaded through the checks for one element:
// scope starts out as the ambient scope and accumulates the updates the
// children will see; attrs are the attributes that will be emitted.
type buildState struct {
	tag   string
	desc  ElementDescriptor
	el    Element
	scope Scope
	attrs Attrs
}

// The checks every element build runs through, in order. The content-model
// check comes first: it can reject elements the later checks would accept.
// The ancestry push comes last, so that the earlier checks still see the
// ambient ancestry.
var checks = [...]func(*buildState) error{
	checkContentModel,
	checkNestingLevel,
	checkLanguage,
	pushAncestry,
}

func checkContentModel(st *buildState) error {
	cats := st.desc.Categories(st.el.attrs, st.scope.ancestry)
	if st.scope.hasAncestor("body") && !cats.Contains(CatFlow) {
		return fmt.Errorf("%w: <%s> (%s) is no flow content and may not live inside <body>",
			ErrInvalidContentModel, st.tag, cats)
	}
	if st.scope.hasAncestor("head") && !cats.Contains(CatMetadata) {
		return fmt.Errorf("%w: <%s> (%s) is no metadata content and may not live inside <head>",
			ErrInvalidContentModel, st.tag, cats)
	}
	return nil
}

// checkNestingLevel rejects block content below inline content. Entering an
// inline element narrows the context for all descendents; there is no way
// back to block within the subtree.
func checkNestingLevel(st *buildState) error {
	if st.scope.level == LevelInline && st.desc.Level == LevelBlock {
		return fmt.Errorf("%w: block-level <%s> may not be a child of an inline element",
			ErrInvalidNesting, st.tag)
	}
	if st.desc.Level == LevelInline {
		st.scope.level = LevelInline
	}
	return nil
}

// checkLanguage drops a lang attribute restating the inherited language and
// lets a differing one become the language of the subtree.
func checkLanguage(st *buildState) error {
	lang, ok := st.el.attrs.Get("lang")
	if !ok {
		return nil
	}
	if langEquals(lang, st.scope.language) {
		st.attrs = st.attrs.without("lang")
		return nil
	}
	tracer().Debugf("<%s> switches language %q → %q", st.tag, st.scope.language, lang)
	st.scope.language = lang
	return nil
}

func pushAncestry(st *buildState) error {
	st.scope = st.scope.descend(st.tag)
	return nil
}
