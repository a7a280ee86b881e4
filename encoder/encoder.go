// Package encoder converts between structured attribute mappings and the
// textual wire formats a language model is asked to produce. Decoding is
// best-effort: model output is unreliable, so missing or partial data comes
// back as partial (possibly empty) Values while schema and format capability
// problems surface as errors.
package encoder

import (
	"fmt"
	"sort"

	kor "github.com/reoring/kor"
)

// Encoder is the capability pair every wire format implements.
//
// Encode renders an attribute mapping into text; Decode parses raw response
// text back into a mapping. Instruction returns the boilerplate describing
// the format's output convention, used as the default prompt suffix.
type Encoder interface {
	Encode(v kor.Values) (string, error)
	Decode(text string) (kor.Values, error)
	Instruction() string
}

// New returns the encoder registered under the given format name: "tagged"
// (the default, also selected by ""), "json", "csv" or "xml". A nil node
// selects the schema-agnostic style, which accepts and emits whatever ids
// appear; CSV always requires a schema.
func New(format string, node kor.Node) (Encoder, error) {
	switch format {
	case "", "tagged":
		return NewTaggedText(node), nil
	case "json":
		return NewJSON(node), nil
	case "csv":
		return NewCSV(node)
	case "xml":
		return NewXML(node), nil
	default:
		return nil, fmt.Errorf("kor: unknown encoder format %q", format)
	}
}

// attributesOf flattens the codec's view of a schema: an Object exposes its
// attributes, any other node is treated as the single attribute of an
// implicit record.
func attributesOf(node kor.Node) []kor.Node {
	if obj, ok := node.(*kor.Object); ok {
		return obj.Attributes()
	}
	return []kor.Node{node}
}

func findAttribute(attrs []kor.Node, id string) kor.Node {
	for _, a := range attrs {
		if a.ID() == id {
			return a
		}
	}
	return nil
}

// sortedIDs gives deterministic iteration for schema-agnostic encoding.
func sortedIDs(v kor.Values) []string {
	ids := make([]string, 0, len(v))
	for id := range v {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
