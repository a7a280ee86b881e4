package jsonschema_test

import (
	"testing"

	json "github.com/goccy/go-json"

	kor "github.com/reoring/kor"
	"github.com/reoring/kor/jsonschema"
)

func TestExport_Flat(t *testing.T) {
	price := kor.NewNumber("price").Description("the price").MustBuild()
	color := kor.NewText("color").Many().MustBuild()
	species := kor.NewSelection("species").
		Option(kor.NewOption("dog").MustBuild(), kor.NewOption("cat").MustBuild()).
		MustBuild()
	item := kor.NewObject("item").Attribute(price, color, species).MustBuild()

	s, err := jsonschema.Export(item)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	out, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"type":"object","properties":{"color":{"type":"array","items":{"type":"string"}},` +
		`"price":{"type":"number","description":"the price"},` +
		`"species":{"type":"string","enum":["dog","cat"]}},"additionalProperties":false}`
	if string(out) != want {
		t.Fatalf("marshal = %s\nwant %s", out, want)
	}
}

func TestExport_NestedAndLeafRoot(t *testing.T) {
	name := kor.NewText("name").MustBuild()
	person := kor.NewObject("person").Many().Attribute(name).MustBuild()
	root := kor.NewObject("doc").Attribute(person).MustBuild()

	s, err := jsonschema.Export(root)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	people := s.Properties["person"]
	if people == nil || people.Type != "array" || people.Items == nil || people.Items.Type != "object" {
		t.Fatalf("nested many object exported wrong: %#v", people)
	}
	if people.Items.Properties["name"].Type != "string" {
		t.Fatalf("inner property missing: %#v", people.Items.Properties)
	}

	leaf, err := jsonschema.Export(kor.NewText("price").MustBuild())
	if err != nil {
		t.Fatalf("export leaf: %v", err)
	}
	if leaf.Type != "object" || leaf.Properties["price"].Type != "string" {
		t.Fatalf("leaf root must become an implicit record: %#v", leaf)
	}
}
