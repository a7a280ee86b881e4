package schemafile_test

import (
	"strings"
	"testing"

	kor "github.com/reoring/kor"
	"github.com/reoring/kor/schemafile"
)

const itemYAML = `
id: item
type: object
description: an item for sale
attributes:
  - id: price
    type: number
    description: the price
    examples:
      - input: It costs $10
        output: $10
  - id: color
    type: text
    many: true
    examples:
      - input: red and blue
        output: [red, blue]
  - id: species
    type: selection
    options:
      - id: dog
        examples: [woof woof]
      - id: cat
    examples:
      - input: I like dogs
        output: dog
    null_examples:
      - I like flowers
examples:
  - input: Big Cookie for $10
    output:
      price: $10
`

func TestParse(t *testing.T) {
	node, err := schemafile.Parse([]byte(itemYAML))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := kor.NewObject("item").
		Description("an item for sale").
		Attribute(
			kor.NewNumber("price").Description("the price").
				Example("It costs $10", "$10").MustBuild(),
			kor.NewText("color").Many().
				Example("red and blue", "red", "blue").MustBuild(),
			kor.NewSelection("species").
				Option(
					kor.NewOption("dog").Example("woof woof").MustBuild(),
					kor.NewOption("cat").MustBuild(),
				).
				Example("I like dogs", "dog").
				NullExample("I like flowers").
				MustBuild(),
		).
		Example("Big Cookie for $10", kor.Values{"price": "$10"}).
		MustBuild()

	if !node.Equal(want) {
		t.Fatalf("parsed tree differs from hand-built tree:\n%#v", node)
	}
}

func TestParse_InvalidDeclarations(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"bad id", "id: Price\ntype: text\n"},
		{"missing type", "id: price\n"},
		{"unknown type", "id: price\ntype: decimal\n"},
		{"empty selection", "id: species\ntype: selection\n"},
		{"many option", "id: species\ntype: selection\noptions:\n  - id: dog\n    many: true\n"},
		{"not yaml", "\t:{"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := schemafile.Parse([]byte(tc.in)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestParse_SchemaErrorsPassThrough(t *testing.T) {
	_, err := schemafile.Parse([]byte("id: species\ntype: selection\noptions:\n  - id: dog\n    many: true\n"))
	if err == nil {
		t.Fatalf("expected error")
	}
	if _, ok := kor.AsSchemaError(err); !ok {
		t.Fatalf("expected *SchemaError, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	node, err := schemafile.Load(strings.NewReader("id: price\ntype: text\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if node.ID() != "price" {
		t.Fatalf("node id = %q", node.ID())
	}
}
