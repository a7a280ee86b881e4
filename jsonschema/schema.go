// Package jsonschema projects schema node trees into a minimal JSON Schema
// representation for callers integrating with schema-driven tooling. The
// struct is deliberately small; extend incrementally as needed.
package jsonschema

import (
	kor "github.com/reoring/kor"
)

// Schema is a minimal JSON Schema representation used for export.
type Schema struct {
	// Core
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`

	// Array
	Items *Schema `json:"items,omitempty"`

	// Enumeration
	Enum []string `json:"enum,omitempty"`
}

// Export projects a node tree into the schema of its top-level attribute
// mapping: an Object contributes its attributes as properties, any other
// node becomes the single property of an implicit record. A repeatable
// value becomes an array of its item schema.
func Export(n kor.Node) (*Schema, error) {
	if obj, ok := n.(*kor.Object); ok && !obj.Many() {
		return record(obj.Attributes(), obj.Description())
	}
	return record([]kor.Node{n}, "")
}

func record(attrs []kor.Node, description string) (*Schema, error) {
	s := &Schema{
		Type:                 "object",
		Description:          description,
		Properties:           map[string]*Schema{},
		AdditionalProperties: false,
	}
	for _, a := range attrs {
		prop, err := kor.Accept[*Schema](a, exportVisitor{})
		if err != nil {
			return nil, err
		}
		s.Properties[a.ID()] = prop
	}
	return s, nil
}

type exportVisitor struct {
	kor.UnimplementedVisitor[*Schema]
}

func (v exportVisitor) VisitText(n *kor.Text) (*Schema, error) {
	return many(n, &Schema{Type: "string", Description: n.Description()}), nil
}

func (v exportVisitor) VisitNumber(n *kor.Number) (*Schema, error) {
	return many(n, &Schema{Type: "number", Description: n.Description()}), nil
}

func (v exportVisitor) VisitSelection(n *kor.Selection) (*Schema, error) {
	ids := make([]string, len(n.Options()))
	for i, o := range n.Options() {
		ids[i] = o.ID()
	}
	return many(n, &Schema{Type: "string", Description: n.Description(), Enum: ids}), nil
}

func (v exportVisitor) VisitObject(n *kor.Object) (*Schema, error) {
	inner, err := record(n.Attributes(), n.Description())
	if err != nil {
		return nil, err
	}
	return many(n, inner), nil
}

// many wraps the item schema in an array when the node repeats. The
// description stays on the wrapper so it survives next to the field.
func many(n kor.Node, item *Schema) *Schema {
	if !n.Many() {
		return item
	}
	desc := item.Description
	item.Description = ""
	return &Schema{Type: "array", Description: desc, Items: item}
}
