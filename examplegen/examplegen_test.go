package examplegen_test

import (
	"reflect"
	"testing"

	kor "github.com/reoring/kor"
	"github.com/reoring/kor/encoder"
	"github.com/reoring/kor/examplegen"
)

func TestGenerate_TaggedPairs(t *testing.T) {
	price := kor.NewText("price").
		Example("It costs $10", "$10").
		Example("Eggs cost twelve dollars", "twelve dollars").
		MustBuild()
	item := kor.NewObject("item").
		Attribute(price).
		Example("I bought this Big Cookie for $10", kor.Values{"price": "$10"}).
		Example("Eggs cost nothing", kor.Values{}).
		MustBuild()

	enc := encoder.NewTaggedText(item)
	pairs, err := examplegen.Generate(item, enc)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	want := []examplegen.Pair{
		{Input: "I bought this Big Cookie for $10", Output: "<price>$10</price>"},
		{Input: "Eggs cost nothing", Output: ""},
		{Input: "It costs $10", Output: "<price>$10</price>"},
		{Input: "Eggs cost twelve dollars", Output: "<price>twelve dollars</price>"},
	}
	if !reflect.DeepEqual(pairs, want) {
		t.Fatalf("pairs = %#v", pairs)
	}
}

func TestGenerate_ManyRepeatsTag(t *testing.T) {
	color := kor.NewText("color").Many().
		Example("red and blue", "red", "blue").
		MustBuild()
	car := kor.NewObject("car").Attribute(color).MustBuild()

	pairs, err := examplegen.Generate(car, encoder.NewTaggedText(car))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	want := []examplegen.Pair{
		{Input: "red and blue", Output: "<color>red</color><color>blue</color>"},
	}
	if !reflect.DeepEqual(pairs, want) {
		t.Fatalf("pairs = %#v", pairs)
	}
}

func TestGenerate_SelectionAndNullExamples(t *testing.T) {
	species := kor.NewSelection("species").
		Option(
			kor.NewOption("dog").Example("woof woof").MustBuild(),
			kor.NewOption("cat").MustBuild(),
		).
		Example("I like dogs", "dog").
		NullExample("I like flowers").
		MustBuild()
	pet := kor.NewObject("pet").Attribute(species).MustBuild()

	pairs, err := examplegen.Generate(pet, encoder.NewTaggedText(pet))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	want := []examplegen.Pair{
		{Input: "I like dogs", Output: "<species>dog</species>"},
		{Input: "woof woof", Output: "<species>dog</species>"},
		{Input: "I like flowers", Output: ""},
	}
	if !reflect.DeepEqual(pairs, want) {
		t.Fatalf("pairs = %#v", pairs)
	}
}

func TestGenerate_NestedExamplesWrapped(t *testing.T) {
	name := kor.NewText("name").
		Example("call me bob", "bob").
		MustBuild()
	person := kor.NewObject("person").Attribute(name).MustBuild()
	root := kor.NewObject("doc").Attribute(person).MustBuild()

	pairs, err := examplegen.Generate(root, encoder.NewTaggedText(root))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	want := []examplegen.Pair{
		{Input: "call me bob", Output: "<person><name>bob</name></person>"},
	}
	if !reflect.DeepEqual(pairs, want) {
		t.Fatalf("pairs = %#v", pairs)
	}
}

func TestGenerate_NoExamples(t *testing.T) {
	item := kor.NewObject("item").Attribute(kor.NewText("price").MustBuild()).MustBuild()
	pairs, err := examplegen.Generate(item, encoder.NewTaggedText(item))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(pairs) != 0 {
		t.Fatalf("expected no pairs, got %#v", pairs)
	}
}

func TestGenerate_JSONOutputs(t *testing.T) {
	price := kor.NewText("price").Example("It costs $10", "$10").MustBuild()
	item := kor.NewObject("item").Attribute(price).MustBuild()

	pairs, err := examplegen.Generate(item, encoder.NewJSON(item))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	want := []examplegen.Pair{
		{Input: "It costs $10", Output: `{"price":"$10"}`},
	}
	if !reflect.DeepEqual(pairs, want) {
		t.Fatalf("pairs = %#v", pairs)
	}
}
