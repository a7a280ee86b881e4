package kor

import "regexp"

// Identifiers are restricted because extracted output is parsed with an
// HTML-style tag scheme and one of the type descriptors emits TypeScript;
// both constrain the legal charset. Loosening this later is possible but not
// worth it for now.
var validIdentifier = regexp.MustCompile(`^[a-z_][0-9a-z_]*$`)

// Node is one declared field (or composite) of the structure to extract.
// Nodes are immutable after Build; trees may be shared freely across
// goroutines and reused for many extraction requests.
//
// The id identifies the field in every textual projection and must be unique
// among its siblings. The description is free text used only during prompt
// generation. Many marks the field as repeatable, producing a collection of
// values rather than a single one.
type Node interface {
	ID() string
	Description() string
	Many() bool

	// Replace returns a copy of the node with the given fields overridden.
	// Empty arguments keep the original value. The receiver is not mutated.
	Replace(id, description string) Node

	// Equal reports structural equality: same concrete type and every
	// declared field equal. Equal(nil) is false.
	Equal(other Node) bool

	// node keeps the set of kinds closed.
	node()
}

// Extraction pairs a source text with the value(s) expected to be extracted
// from it. For nodes that are not many, Values holds a single element.
type Extraction struct {
	Input  string
	Values []string
}

// SelectionExample pairs a source text with the option id(s) that should be
// selected for it.
type SelectionExample struct {
	Input     string
	OptionIDs []string
}

// ObjectExample pairs a source text with the attribute mapping expected to
// be extracted from it. An empty Output marks text with nothing to extract.
type ObjectExample struct {
	Input  string
	Output Values
}

type nodeBase struct {
	id          string
	description string
	many        bool
}

func (b nodeBase) ID() string          { return b.id }
func (b nodeBase) Description() string { return b.description }
func (b nodeBase) Many() bool          { return b.many }

// Text is an extraction leaf holding string values.
type Text struct {
	nodeBase
	examples []Extraction
}

// Examples returns the declared extraction examples in declaration order.
func (t *Text) Examples() []Extraction { return t.examples }

func (t *Text) Replace(id, description string) Node {
	c := *t
	c.nodeBase = c.nodeBase.replace(id, description)
	return &c
}

func (t *Text) Equal(other Node) bool {
	o, ok := other.(*Text)
	if !ok || o == nil {
		return false
	}
	return t.nodeBase == o.nodeBase && equalExtractions(t.examples, o.examples)
}

func (*Text) node() {}

// Number is an extraction leaf for numeric values. The node itself imposes
// no numeric parsing; the distinction only changes how the field is
// described to the model.
type Number struct {
	nodeBase
	examples []Extraction
}

// Examples returns the declared extraction examples in declaration order.
func (n *Number) Examples() []Extraction { return n.examples }

func (n *Number) Replace(id, description string) Node {
	c := *n
	c.nodeBase = c.nodeBase.replace(id, description)
	return &c
}

func (n *Number) Equal(other Node) bool {
	o, ok := other.(*Number)
	if !ok || o == nil {
		return false
	}
	return n.nodeBase == o.nodeBase && equalExtractions(n.examples, o.examples)
}

func (*Number) node() {}

// Option is a single named choice belonging to a Selection. An Option is
// never many; repeatability is declared on the Selection.
type Option struct {
	nodeBase
	examples []string
}

// Examples returns texts associated with this option.
func (o *Option) Examples() []string { return o.examples }

func (o *Option) Replace(id, description string) Node {
	c := *o
	c.nodeBase = c.nodeBase.replace(id, description)
	return &c
}

func (o *Option) Equal(other Node) bool {
	oo, ok := other.(*Option)
	if !ok || oo == nil {
		return false
	}
	return o.nodeBase == oo.nodeBase && equalStrings(o.examples, oo.examples)
}

func (*Option) node() {}

// Selection is an enumerated field composed of one or more Options.
type Selection struct {
	nodeBase
	options      []*Option
	examples     []SelectionExample
	nullExamples []string
}

// Options returns the options in declaration order.
func (s *Selection) Options() []*Option { return s.options }

// Examples returns the declared selection examples in declaration order.
func (s *Selection) Examples() []SelectionExample { return s.examples }

// NullExamples returns texts from which nothing should be selected.
func (s *Selection) NullExamples() []string { return s.nullExamples }

func (s *Selection) Replace(id, description string) Node {
	c := *s
	c.nodeBase = c.nodeBase.replace(id, description)
	return &c
}

func (s *Selection) Equal(other Node) bool {
	o, ok := other.(*Selection)
	if !ok || o == nil {
		return false
	}
	if s.nodeBase != o.nodeBase || len(s.options) != len(o.options) {
		return false
	}
	for i := range s.options {
		if !s.options[i].Equal(o.options[i]) {
			return false
		}
	}
	if len(s.examples) != len(o.examples) {
		return false
	}
	for i := range s.examples {
		if s.examples[i].Input != o.examples[i].Input ||
			!equalStrings(s.examples[i].OptionIDs, o.examples[i].OptionIDs) {
			return false
		}
	}
	return equalStrings(s.nullExamples, o.nullExamples)
}

func (*Selection) node() {}

// Object is a composite field whose attributes are Text, Number, Selection
// or nested Object nodes. Attributes keep declaration order; that order is
// the rendering order everywhere downstream.
type Object struct {
	nodeBase
	attributes []Node
	examples   []ObjectExample
}

// Attributes returns the child nodes in declaration order.
func (o *Object) Attributes() []Node { return o.attributes }

// Examples returns the declared object examples in declaration order.
func (o *Object) Examples() []ObjectExample { return o.examples }

func (o *Object) Replace(id, description string) Node {
	c := *o
	c.nodeBase = c.nodeBase.replace(id, description)
	return &c
}

func (o *Object) Equal(other Node) bool {
	oo, ok := other.(*Object)
	if !ok || oo == nil {
		return false
	}
	if o.nodeBase != oo.nodeBase || len(o.attributes) != len(oo.attributes) {
		return false
	}
	for i := range o.attributes {
		if !o.attributes[i].Equal(oo.attributes[i]) {
			return false
		}
	}
	if len(o.examples) != len(oo.examples) {
		return false
	}
	for i := range o.examples {
		if o.examples[i].Input != oo.examples[i].Input ||
			!o.examples[i].Output.Equal(oo.examples[i].Output) {
			return false
		}
	}
	return true
}

func (*Object) node() {}

func (b nodeBase) replace(id, description string) nodeBase {
	if id != "" {
		b.id = id
	}
	if description != "" {
		b.description = description
	}
	return b
}

func equalExtractions(a, b []Extraction) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Input != b[i].Input || !equalStrings(a[i].Values, b[i].Values) {
			return false
		}
	}
	return true
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
