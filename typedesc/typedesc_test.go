package typedesc_test

import (
	"strings"
	"testing"

	kor "github.com/reoring/kor"
	"github.com/reoring/kor/typedesc"
)

func itemSchema() *kor.Object {
	price := kor.NewText("price").Description("the price").MustBuild()
	color := kor.NewText("color").Description("the color").Many().MustBuild()
	species := kor.NewSelection("species").
		Description("animal aboard").
		Option(kor.NewOption("dog").MustBuild(), kor.NewOption("cat").MustBuild()).
		MustBuild()
	return kor.NewObject("item").
		Description("an item for sale").
		Attribute(price, color, species).
		MustBuild()
}

func TestTypeScript_Rendering(t *testing.T) {
	got, err := typedesc.TypeScript().Describe(itemSchema())
	if err != nil {
		t.Fatalf("describe: %v", err)
	}
	want := strings.Join([]string{
		"{",
		" item: { // an item for sale",
		"  price: string // the price",
		"  color: Array<string> // the color",
		`  species: "dog" | "cat" // animal aboard`,
		" }",
		"}",
	}, "\n")
	if got != want {
		t.Fatalf("describe =\n%s\nwant\n%s", got, want)
	}
}

func TestTypeScript_Deterministic(t *testing.T) {
	a, err := typedesc.TypeScript().Describe(itemSchema())
	if err != nil {
		t.Fatalf("describe: %v", err)
	}
	b, err := typedesc.TypeScript().Describe(itemSchema())
	if err != nil {
		t.Fatalf("describe: %v", err)
	}
	if a != b {
		t.Fatalf("identical trees must render identically")
	}
}

func TestTypeScript_NestedAndManyObject(t *testing.T) {
	name := kor.NewText("name").MustBuild()
	people := kor.NewObject("people").Many().Attribute(name).MustBuild()
	root := kor.NewObject("doc").Attribute(people).MustBuild()

	got, err := typedesc.TypeScript().Describe(root)
	if err != nil {
		t.Fatalf("describe: %v", err)
	}
	want := strings.Join([]string{
		"{",
		" doc: {",
		"  people: Array<{",
		"   name: string",
		"  }>",
		" }",
		"}",
	}, "\n")
	if got != want {
		t.Fatalf("describe =\n%s\nwant\n%s", got, want)
	}
}

func TestTypeScript_LeafRoot(t *testing.T) {
	price := kor.NewText("price").Description("the price").MustBuild()
	got, err := typedesc.TypeScript().Describe(price)
	if err != nil {
		t.Fatalf("describe: %v", err)
	}
	if got != "{\n price: string // the price\n}" {
		t.Fatalf("describe = %q", got)
	}
}

func TestBulletPoints_Rendering(t *testing.T) {
	got, err := typedesc.BulletPoints().Describe(itemSchema())
	if err != nil {
		t.Fatalf("describe: %v", err)
	}
	want := strings.Join([]string{
		"* item (object): an item for sale",
		"  * price (text): the price",
		"  * color (multiple text): the color",
		"  * species (selection): animal aboard",
		"    * dog (option)",
		"    * cat (option)",
	}, "\n")
	if got != want {
		t.Fatalf("describe =\n%s\nwant\n%s", got, want)
	}
}

func TestByName(t *testing.T) {
	for _, style := range []string{"", "typescript", "bullets"} {
		if _, err := typedesc.ByName(style); err != nil {
			t.Fatalf("ByName(%q): %v", style, err)
		}
	}
	if _, err := typedesc.ByName("prose"); err == nil {
		t.Fatalf("expected error for unknown style")
	}
}
