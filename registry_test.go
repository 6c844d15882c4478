package validom

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRegistryKnowsStandardTags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "validom.core")
	defer teardown()
	//
	cases := []struct {
		tag   string
		level DisplayLevel
		cats  Category
	}{
		{"div", LevelBlock, CatFlow},
		{"span", LevelInline, CatFlow | CatPhrasing},
		{"h3", LevelBlock, CatFlow | CatHeading},
		{"section", LevelBlock, CatFlow | CatSectioning},
		{"title", LevelNone, CatMetadata},
		{"link", LevelNone, CatMetadata},
	}
	for _, c := range cases {
		d, ok := descriptor(c.tag)
		if !ok {
			t.Errorf("expected tag <%s> to be registered, isn't", c.tag)
			continue
		}
		if d.Level != c.level {
			t.Errorf("expected <%s> to be %s-level, is %s", c.tag, c.level, d.Level)
		}
		if cats := d.Categories(nil, nil); cats != c.cats {
			t.Errorf("expected <%s> categories to be %s, are %s", c.tag, c.cats, cats)
		}
	}
}

func TestRegistryMetaReclassification(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "validom.core")
	defer teardown()
	//
	d, ok := descriptor("meta")
	if !ok {
		t.Fatal("expected <meta> to be registered, isn't")
	}
	if cats := d.Categories(A("charset", "utf-8"), nil); !cats.Contains(CatMetadata) {
		t.Errorf("expected plain <meta> to be metadata content, is %s", cats)
	}
	cats := d.Categories(A("itemprop", "name"), nil)
	if !cats.Contains(CatFlow) || cats.Contains(CatMetadata) {
		t.Errorf("expected <meta itemprop> to be flow content, is %s", cats)
	}
	// attribute key matching is case-insensitive
	if cats := d.Categories(A("itemProp", "name"), nil); !cats.Contains(CatFlow) {
		t.Errorf("expected <meta itemProp> to be flow content, is %s", cats)
	}
}

func TestRegisterCustomTag(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "validom.core")
	defer teardown()
	//
	Register("x-note", ElementDescriptor{Level: LevelBlock, Categories: Static(CatFlow)})
	n, err := El("x-note", nil, Text("hi")).Build(NewScope("en"))
	if err != nil {
		t.Fatalf("expected registered custom tag to build, got %v", err)
	}
	if n.Tag() != "x-note" {
		t.Errorf("expected tag <x-note>, is <%s>", n.Tag())
	}
}

func TestCategorySetString(t *testing.T) {
	if s := (CatFlow | CatHeading).String(); s != "flow|heading" {
		t.Errorf("expected category set to print as 'flow|heading', is %q", s)
	}
	if s := Category(0).String(); s != "(none)" {
		t.Errorf("expected empty category set to print as '(none)', is %q", s)
	}
}
