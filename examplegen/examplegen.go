// Package examplegen derives few-shot example pairs from the examples
// declared across a schema tree. Outputs are rendered with the same encoder
// the model response will be decoded with, so the examples shown to the
// model and the parsing of its answer can never drift apart.
package examplegen

import (
	kor "github.com/reoring/kor"
	"github.com/reoring/kor/encoder"
)

// Pair is one worked example: the input text shown to the model and the
// encoded output expected for it.
type Pair struct {
	Input  string
	Output string
}

// Generate walks the whole tree in declaration order and renders every
// declared example. Nodes without examples contribute nothing. Examples of
// nested attributes are wrapped under their parent ids so they stay valid
// instances of the top-level mapping.
func Generate(node kor.Node, enc encoder.Encoder) ([]Pair, error) {
	identity := func(v kor.Values) kor.Values { return v }
	if obj, ok := node.(*kor.Object); ok {
		return generateObject(obj, enc, identity)
	}
	return kor.Accept[[]Pair](node, genVisitor{enc: enc, wrap: identity})
}

// wrapFunc lifts a mapping keyed by some node's attribute ids into the
// top-level mapping.
type wrapFunc func(kor.Values) kor.Values

type genVisitor struct {
	kor.UnimplementedVisitor[[]Pair]
	enc  encoder.Encoder
	wrap wrapFunc
}

func (g genVisitor) VisitText(n *kor.Text) ([]Pair, error) {
	return g.leafPairs(n.ID(), n.Many(), n.Examples())
}

func (g genVisitor) VisitNumber(n *kor.Number) ([]Pair, error) {
	return g.leafPairs(n.ID(), n.Many(), n.Examples())
}

func (g genVisitor) VisitSelection(n *kor.Selection) ([]Pair, error) {
	var pairs []Pair
	for _, e := range n.Examples() {
		v := kor.Values{}
		if len(e.OptionIDs) > 0 {
			if n.Many() {
				v[n.ID()] = append([]string(nil), e.OptionIDs...)
			} else {
				v[n.ID()] = e.OptionIDs[0]
			}
		}
		p, err := g.pair(e.Input, v)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	for _, o := range n.Options() {
		for _, text := range o.Examples() {
			p, err := g.pair(text, kor.Values{n.ID(): o.ID()})
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, p)
		}
	}
	for _, text := range n.NullExamples() {
		p, err := g.pair(text, kor.Values{})
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

func (g genVisitor) VisitObject(n *kor.Object) ([]Pair, error) {
	return generateObject(n, g.enc, func(v kor.Values) kor.Values {
		return g.wrap(kor.Values{n.ID(): v})
	})
}

func generateObject(n *kor.Object, enc encoder.Encoder, wrap wrapFunc) ([]Pair, error) {
	g := genVisitor{enc: enc, wrap: wrap}
	var pairs []Pair
	for _, e := range n.Examples() {
		p, err := g.pair(e.Input, e.Output)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	for _, attr := range n.Attributes() {
		sub, err := kor.Accept[[]Pair](attr, g)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, sub...)
	}
	return pairs, nil
}

func (g genVisitor) leafPairs(id string, many bool, examples []kor.Extraction) ([]Pair, error) {
	var pairs []Pair
	for _, e := range examples {
		v := kor.Values{}
		if len(e.Values) > 0 {
			if many {
				v[id] = append([]string(nil), e.Values...)
			} else {
				v[id] = e.Values[0]
			}
		}
		p, err := g.pair(e.Input, v)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

func (g genVisitor) pair(input string, v kor.Values) (Pair, error) {
	if len(v) > 0 {
		v = g.wrap(v)
	}
	out, err := g.enc.Encode(v)
	if err != nil {
		return Pair{}, err
	}
	return Pair{Input: input, Output: out}, nil
}
