package encoder_test

import (
	"errors"
	"testing"

	kor "github.com/reoring/kor"
	"github.com/reoring/kor/encoder"
)

func TestCSV_RejectsRepetitionAndNesting(t *testing.T) {
	many := kor.NewText("color").Many().MustBuild()
	nested := kor.NewObject("inner").Attribute(kor.NewText("x").MustBuild()).MustBuild()

	cases := []struct {
		name string
		node kor.Node
	}{
		{"many attribute", kor.NewObject("car").Attribute(many).MustBuild()},
		{"nested object", kor.NewObject("car").Attribute(nested).MustBuild()},
		{"repeatable root", kor.NewObject("car").Many().Attribute(kor.NewText("x").MustBuild()).MustBuild()},
		{"no schema", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := encoder.NewCSV(tc.node)
			if err == nil {
				t.Fatalf("expected construction to fail")
			}
			var ue *kor.UnsupportedError
			if !errors.As(err, &ue) {
				t.Fatalf("expected *UnsupportedError, got %v", err)
			}
		})
	}
}

func TestCSV_RoundTrip(t *testing.T) {
	car := kor.NewObject("car").
		Attribute(kor.NewText("make").MustBuild(), kor.NewNumber("price").MustBuild()).
		MustBuild()
	enc, err := encoder.NewCSV(car)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	in := kor.Values{"make": "saab", "price": "9000"}
	text, err := enc.Encode(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if text != "make,price\nsaab,9000\n" {
		t.Fatalf("encode = %q", text)
	}
	out, err := enc.Decode(text)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !out.Equal(in) {
		t.Fatalf("round trip = %#v", out)
	}
}

func TestCSV_DecodeHeaderless(t *testing.T) {
	car := kor.NewObject("car").
		Attribute(kor.NewText("make").MustBuild(), kor.NewNumber("price").MustBuild()).
		MustBuild()
	enc, err := encoder.NewCSV(car)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	v, err := enc.Decode("saab,9000\n")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !v.Equal(kor.Values{"make": "saab", "price": "9000"}) {
		t.Fatalf("decode = %#v", v)
	}
}

func TestCSV_DecodeFencedAndPartial(t *testing.T) {
	car := kor.NewObject("car").
		Attribute(kor.NewText("make").MustBuild(), kor.NewNumber("price").MustBuild()).
		MustBuild()
	enc, err := encoder.NewCSV(car)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	v, err := enc.Decode("```csv\nmake,price\nsaab,\n```")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	// Empty cell means nothing extracted for that column.
	if !v.Equal(kor.Values{"make": "saab"}) {
		t.Fatalf("decode = %#v", v)
	}
}

func TestCSV_HeaderMustMatchAllColumns(t *testing.T) {
	car := kor.NewObject("car").
		Attribute(kor.NewText("make").MustBuild(), kor.NewNumber("price").MustBuild()).
		MustBuild()
	enc, err := encoder.NewCSV(car)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	// A row echoing an id in every cell is data, not a header.
	v, err := enc.Decode("make,make\n")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !v.Equal(kor.Values{"make": "make", "price": "make"}) {
		t.Fatalf("decode = %#v", v)
	}

	// A reordered but complete header still maps columns by name.
	v, err = enc.Decode("price,make\n9000,saab\n")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !v.Equal(kor.Values{"make": "saab", "price": "9000"}) {
		t.Fatalf("decode = %#v", v)
	}
}

func TestCSV_DecodeUnrecognized(t *testing.T) {
	car := kor.NewObject("car").
		Attribute(kor.NewText("make").MustBuild(), kor.NewNumber("price").MustBuild()).
		MustBuild()
	enc, err := encoder.NewCSV(car)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	v, err := enc.Decode("just a sentence")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(v) != 0 {
		t.Fatalf("expected empty values, got %#v", v)
	}
}
