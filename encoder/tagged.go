package encoder

import (
	"fmt"
	"strings"

	kor "github.com/reoring/kor"
	"github.com/reoring/kor/internal/tagscan"
)

const taggedInstruction = "Please enclose the extracted information in HTML style tags with " +
	"the tag name corresponding to the corresponding component ID. Use angle style brackets " +
	"for the tags ('>' and '<'). Only output tags when you're confident about the information " +
	"that was extracted from the user's query. If you can extract several pieces of relevant " +
	"information from the query, then include all of them. If \"Multiple\" is part of the " +
	"component's type, please repeat the same tag multiple times once for each relevant " +
	"extraction. If the type does not contain \"Multiple\" do not include it more than once."

// TaggedText is the default codec: <id>value</id> markers embedded in
// free-form text. Decoding tolerates surrounding prose and drops unmatched
// or malformed tags.
type TaggedText struct {
	node kor.Node // nil for schema-agnostic operation
}

// NewTaggedText returns the tagged-text codec. With a nil node it decodes
// whatever well-formed tags appear and encodes ids in sorted order.
func NewTaggedText(node kor.Node) *TaggedText {
	return &TaggedText{node: node}
}

func (e *TaggedText) Instruction() string { return taggedInstruction }

func (e *TaggedText) Encode(v kor.Values) (string, error) {
	var b strings.Builder
	if e.node == nil {
		for _, id := range sortedIDs(v) {
			if err := writeTagged(&b, id, v[id]); err != nil {
				return "", err
			}
		}
		return b.String(), nil
	}
	if err := encodeTagged(&b, attributesOf(e.node), v); err != nil {
		return "", err
	}
	return b.String(), nil
}

func encodeTagged(b *strings.Builder, attrs []kor.Node, v kor.Values) error {
	for id := range v {
		if findAttribute(attrs, id) == nil {
			return &kor.SchemaError{ID: id, Reason: "unknown attribute"}
		}
	}
	for _, attr := range attrs {
		val, ok := v[attr.ID()]
		if !ok {
			continue
		}
		switch sub := val.(type) {
		case kor.Values:
			obj, objOK := attr.(*kor.Object)
			if !objOK {
				return &kor.SchemaError{ID: attr.ID(), Reason: "nested values for a non-object attribute"}
			}
			b.WriteString("<" + attr.ID() + ">")
			if err := encodeTagged(b, obj.Attributes(), sub); err != nil {
				return err
			}
			b.WriteString("</" + attr.ID() + ">")
		case []kor.Values:
			obj, objOK := attr.(*kor.Object)
			if !objOK {
				return &kor.SchemaError{ID: attr.ID(), Reason: "nested values for a non-object attribute"}
			}
			for _, one := range sub {
				b.WriteString("<" + attr.ID() + ">")
				if err := encodeTagged(b, obj.Attributes(), one); err != nil {
					return err
				}
				b.WriteString("</" + attr.ID() + ">")
			}
		default:
			if err := writeTagged(b, attr.ID(), val); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeTagged renders scalar and list values, repeating the tag per element.
func writeTagged(b *strings.Builder, id string, val any) error {
	switch t := val.(type) {
	case string:
		b.WriteString("<" + id + ">" + t + "</" + id + ">")
	case []string:
		for _, s := range t {
			b.WriteString("<" + id + ">" + s + "</" + id + ">")
		}
	default:
		return fmt.Errorf("kor: tagged encode: unsupported value %T for %q", val, id)
	}
	return nil
}

// Decode scans text for tag pairs. Repeated tags for a many attribute
// collect in encounter order; for a single attribute the first occurrence
// wins. Unknown ids are dropped when a schema is bound. Text without any
// recognizable tag decodes to empty Values.
func (e *TaggedText) Decode(text string) (kor.Values, error) {
	pairs := tagscan.Scan(text)
	if e.node == nil {
		return decodeAgnostic(pairs), nil
	}
	return decodePairs(pairs, attributesOf(e.node)), nil
}

func decodePairs(pairs []tagscan.Pair, attrs []kor.Node) kor.Values {
	v := kor.Values{}
	for _, p := range pairs {
		attr := findAttribute(attrs, p.ID)
		if attr == nil {
			continue
		}
		if obj, ok := attr.(*kor.Object); ok {
			sub := decodePairs(tagscan.Scan(p.Content), obj.Attributes())
			if attr.Many() {
				prev, _ := v[p.ID].([]kor.Values)
				v[p.ID] = append(prev, sub)
			} else if _, seen := v[p.ID]; !seen {
				v[p.ID] = sub
			}
			continue
		}
		if attr.Many() {
			prev, _ := v[p.ID].([]string)
			v[p.ID] = append(prev, p.Content)
		} else if _, seen := v[p.ID]; !seen {
			v[p.ID] = p.Content
		}
	}
	return v
}

// decodeAgnostic keeps a single occurrence as a string and upgrades to a
// list on repetition, since no schema says which fields repeat.
func decodeAgnostic(pairs []tagscan.Pair) kor.Values {
	v := kor.Values{}
	for _, p := range pairs {
		switch prev := v[p.ID].(type) {
		case nil:
			v[p.ID] = p.Content
		case string:
			v[p.ID] = []string{prev, p.Content}
		case []string:
			v[p.ID] = append(prev, p.Content)
		}
	}
	return v
}
