package validom

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	tp "github.com/xlab/treeprint"
)

func TestDocumentEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "validom.core")
	defer teardown()
	//
	doc, err := Document("en-US", "test", "")
	if err != nil {
		t.Fatalf("expected empty document to assemble, got %v", err)
	}
	t.Logf("document = %s", printNode(doc))
	if doc.Tag() != "html" {
		t.Fatalf("expected root tag <html>, is <%s>", doc.Tag())
	}
	if lang, _ := doc.Attr("lang"); lang != "en-US" {
		t.Errorf("expected <html> to carry lang 'en-US', has %q", lang)
	}
	if doc.ChildCount() != 2 {
		t.Fatalf("expected <html> to have head and body children, has %d", doc.ChildCount())
	}
	head, _ := doc.Child(0)
	body, _ := doc.Child(1)
	if head.Tag() != "head" || body.Tag() != "body" {
		t.Fatalf("expected children <head> then <body>, are <%s>, <%s>", head.Tag(), body.Tag())
	}
	if body.ChildCount() != 1 {
		t.Fatalf("expected synthesized body to hold one text node, has %d children", body.ChildCount())
	}
	space, _ := body.Child(0)
	if !space.IsText() || space.Data() != " " {
		t.Errorf("expected body to hold a single space, holds %v", space)
	}
}

func TestDocumentHeadPreamble(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "validom.core")
	defer teardown()
	//
	doc, err := Document("en-US", "test", "a test page")
	if err != nil {
		t.Fatalf("expected document to assemble, got %v", err)
	}
	head, _ := doc.Child(0)
	if head.ChildCount() != 4 {
		t.Logf("head = %s", printNode(head))
		t.Fatalf("expected head preamble of 4 nodes, have %d", head.ChildCount())
	}
	charset, _ := head.Child(0)
	if v, _ := charset.Attr("charset"); charset.Tag() != "meta" || v != "utf-8" {
		t.Errorf("expected head child 0 to be <meta charset=utf-8>, is %v", charset)
	}
	viewport, _ := head.Child(1)
	if v, _ := viewport.Attr("content"); v != "width=device-width, initial-scale=1" {
		t.Errorf("expected head child 1 to be the viewport meta, is %v", viewport)
	}
	desc, _ := head.Child(2)
	if v, _ := desc.Attr("content"); v != "a test page" {
		t.Errorf("expected head child 2 to carry the description, is %v", desc)
	}
	title, _ := head.Child(3)
	if title.Tag() != "title" || title.TextContent() != "test" {
		t.Errorf("expected head child 3 to be <title>test</title>, is %v", title)
	}
}

func TestDocumentHeadBodyPair(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "validom.core")
	defer teardown()
	//
	doc, err := Document("en-US", "test", "",
		Head(nil, CanonicalLink("https://example.org/")),
		Body(nil, P(nil, Text("hi"))),
	)
	if err != nil {
		t.Fatalf("expected document to assemble, got %v", err)
	}
	head, _ := doc.Child(0)
	if head.ChildCount() != 5 {
		t.Logf("head = %s", printNode(head))
		t.Fatalf("expected 4 preamble nodes + 1 link in head, have %d", head.ChildCount())
	}
	link, _ := head.Child(4)
	if rel, _ := link.Attr("rel"); link.Tag() != "link" || rel != "canonical" {
		t.Errorf("expected caller head content appended after the preamble, found %v", link)
	}
	body, _ := doc.Child(1)
	if body.ChildCount() != 1 {
		t.Errorf("expected given body to be used as-is, has %d children", body.ChildCount())
	}
}

func TestDocumentLoneHead(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "validom.core")
	defer teardown()
	//
	doc, err := Document("en-US", "test", "", Head(nil, StylesheetLink("/s.css")))
	if err != nil {
		t.Fatalf("expected document to assemble, got %v", err)
	}
	body, _ := doc.Child(1)
	if body.Tag() != "body" || body.ChildCount() != 0 {
		t.Errorf("expected synthesized empty body, is %v", body)
	}
}

func TestDocumentLoneBody(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "validom.core")
	defer teardown()
	//
	doc, err := Document("en-US", "test", "", Body(A("class", "home"), P(nil, Text("hi"))))
	if err != nil {
		t.Fatalf("expected document to assemble, got %v", err)
	}
	body, _ := doc.Child(1)
	if class, _ := body.Attr("class"); class != "home" {
		t.Errorf("expected given body to be used, attribute missing: %v", body)
	}
	head, _ := doc.Child(0)
	if head.ChildCount() != 4 {
		t.Errorf("expected synthesized head with preamble only, has %d children", head.ChildCount())
	}
}

func TestDocumentWrapsArbitraryContent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "validom.core")
	defer teardown()
	//
	doc, err := Document("en-US", "test", "",
		P(nil, Text("a")),
		P(nil, Text("b")),
	)
	if err != nil {
		t.Fatalf("expected document to assemble, got %v", err)
	}
	body, _ := doc.Child(1)
	if body.ChildCount() != 2 {
		t.Logf("body = %s", printNode(body))
		t.Fatalf("expected content wrapped into body, body has %d children", body.ChildCount())
	}
	first, _ := body.Child(0)
	if first.Tag() != "p" {
		t.Errorf("expected first body child to be <p>, is <%s>", first.Tag())
	}
}

func TestDocumentWrappedContentGetsBodyAncestry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "validom.core")
	defer teardown()
	//
	// implicit body content is checked as body content
	_, err := Document("en-US", "test", "", StylesheetLink("/s.css"))
	if !errors.Is(err, ErrInvalidContentModel) {
		t.Errorf("expected <link> as implicit body content to fail with ErrInvalidContentModel, got %v", err)
	}
}

func TestDocumentHeadingSkip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "validom.core")
	defer teardown()
	//
	_, err := Document("en-US", "test", "",
		Heading(1, nil, Text("one")),
		Heading(3, nil, Text("three")),
	)
	if !errors.Is(err, ErrSkippedHeadingRank) {
		t.Errorf("expected heading sequence 1, 3 to fail with ErrSkippedHeadingRank, got %v", err)
	}
}

func TestDocumentsDoNotShareHeadingState(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "validom.core")
	defer teardown()
	//
	_, err := Document("en-US", "first", "",
		Heading(1, nil, Text("a")), Heading(2, nil, Text("b")), Heading(3, nil, Text("c")))
	if err != nil {
		t.Fatalf("expected first document to assemble, got %v", err)
	}
	// were the counter process-wide, rank 3 would leak into this build
	_, err = Document("en-US", "second", "", Heading(3, nil, Text("x")))
	if !errors.Is(err, ErrSkippedHeadingRank) {
		t.Errorf("expected fresh document to start at rank 1 and reject <h3>, got %v", err)
	}
}

// ---------------------------------------------------------------------------

func printNode(n *Node) string {
	printer := tp.New()
	ppt(printer, n)
	return "\n" + printer.String()
}

func ppt(printer tp.Tree, n *Node) {
	if n == nil {
		return
	}
	if n.IsText() || n.ChildCount() == 0 {
		printer.AddNode(n.String())
		return
	}
	branch := printer.AddBranch(n.String())
	for _, ch := range n.Children() {
		ppt(branch, ch)
	}
}
