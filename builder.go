package kor

import "fmt"

// Builders construct validated, immutable nodes. Build reports a
// *SchemaError for invalid declarations; MustBuild panics on the same
// conditions and suits package-level schema variables.

func validateID(id string) error {
	if !validIdentifier.MatchString(id) {
		return &SchemaError{ID: id, Reason: "id must match [a-z_][0-9a-z_]*"}
	}
	return nil
}

// TextBuilder builds a Text node.
type TextBuilder struct {
	n Text
}

// NewText starts a Text node with the given id.
func NewText(id string) *TextBuilder {
	b := &TextBuilder{}
	b.n.id = id
	return b
}

// Description sets the prompt description.
func (b *TextBuilder) Description(d string) *TextBuilder {
	b.n.description = d
	return b
}

// Many marks the field as repeatable.
func (b *TextBuilder) Many() *TextBuilder {
	b.n.many = true
	return b
}

// Example adds a (source text, expected extraction) pair. Pass several
// values for a many field.
func (b *TextBuilder) Example(input string, values ...string) *TextBuilder {
	b.n.examples = append(b.n.examples, Extraction{Input: input, Values: values})
	return b
}

// Build validates the declaration and returns the node.
func (b *TextBuilder) Build() (*Text, error) {
	if err := validateID(b.n.id); err != nil {
		return nil, err
	}
	n := b.n
	n.examples = copyExtractions(b.n.examples)
	return &n, nil
}

// MustBuild is Build panicking on error.
func (b *TextBuilder) MustBuild() *Text {
	n, err := b.Build()
	if err != nil {
		panic(err)
	}
	return n
}

// NumberBuilder builds a Number node.
type NumberBuilder struct {
	n Number
}

// NewNumber starts a Number node with the given id.
func NewNumber(id string) *NumberBuilder {
	b := &NumberBuilder{}
	b.n.id = id
	return b
}

// Description sets the prompt description.
func (b *NumberBuilder) Description(d string) *NumberBuilder {
	b.n.description = d
	return b
}

// Many marks the field as repeatable.
func (b *NumberBuilder) Many() *NumberBuilder {
	b.n.many = true
	return b
}

// Example adds a (source text, expected extraction) pair.
func (b *NumberBuilder) Example(input string, values ...string) *NumberBuilder {
	b.n.examples = append(b.n.examples, Extraction{Input: input, Values: values})
	return b
}

// Build validates the declaration and returns the node.
func (b *NumberBuilder) Build() (*Number, error) {
	if err := validateID(b.n.id); err != nil {
		return nil, err
	}
	n := b.n
	n.examples = copyExtractions(b.n.examples)
	return &n, nil
}

// MustBuild is Build panicking on error.
func (b *NumberBuilder) MustBuild() *Number {
	n, err := b.Build()
	if err != nil {
		panic(err)
	}
	return n
}

// OptionBuilder builds an Option node.
type OptionBuilder struct {
	n Option
}

// NewOption starts an Option node with the given id.
func NewOption(id string) *OptionBuilder {
	b := &OptionBuilder{}
	b.n.id = id
	return b
}

// Description sets the prompt description.
func (b *OptionBuilder) Description(d string) *OptionBuilder {
	b.n.description = d
	return b
}

// Many exists so generic loaders can set the flag uniformly; Build rejects
// it because repeatability belongs on the Selection.
func (b *OptionBuilder) Many() *OptionBuilder {
	b.n.many = true
	return b
}

// Example adds a text associated with this option.
func (b *OptionBuilder) Example(text string) *OptionBuilder {
	b.n.examples = append(b.n.examples, text)
	return b
}

// Build validates the declaration and returns the node.
func (b *OptionBuilder) Build() (*Option, error) {
	if err := validateID(b.n.id); err != nil {
		return nil, err
	}
	if b.n.many {
		return nil, &SchemaError{ID: b.n.id, Reason: "option cannot be many"}
	}
	n := b.n
	n.examples = append([]string(nil), b.n.examples...)
	return &n, nil
}

// MustBuild is Build panicking on error.
func (b *OptionBuilder) MustBuild() *Option {
	n, err := b.Build()
	if err != nil {
		panic(err)
	}
	return n
}

// SelectionBuilder builds a Selection node.
type SelectionBuilder struct {
	n Selection
}

// NewSelection starts a Selection node with the given id.
func NewSelection(id string) *SelectionBuilder {
	b := &SelectionBuilder{}
	b.n.id = id
	return b
}

// Description sets the prompt description.
func (b *SelectionBuilder) Description(d string) *SelectionBuilder {
	b.n.description = d
	return b
}

// Many allows several options to be selected.
func (b *SelectionBuilder) Many() *SelectionBuilder {
	b.n.many = true
	return b
}

// Option appends options in declaration order.
func (b *SelectionBuilder) Option(opts ...*Option) *SelectionBuilder {
	b.n.options = append(b.n.options, opts...)
	return b
}

// Example adds a (source text, selected option ids) pair.
func (b *SelectionBuilder) Example(input string, optionIDs ...string) *SelectionBuilder {
	b.n.examples = append(b.n.examples, SelectionExample{Input: input, OptionIDs: optionIDs})
	return b
}

// NullExample adds texts from which nothing should be selected.
func (b *SelectionBuilder) NullExample(texts ...string) *SelectionBuilder {
	b.n.nullExamples = append(b.n.nullExamples, texts...)
	return b
}

// Build validates the declaration and returns the node.
func (b *SelectionBuilder) Build() (*Selection, error) {
	if err := validateID(b.n.id); err != nil {
		return nil, err
	}
	if len(b.n.options) == 0 {
		return nil, &SchemaError{ID: b.n.id, Reason: "selection needs at least one option"}
	}
	seen := map[string]struct{}{}
	for _, o := range b.n.options {
		if o == nil {
			return nil, &SchemaError{ID: b.n.id, Reason: "nil option"}
		}
		if _, dup := seen[o.ID()]; dup {
			return nil, &SchemaError{ID: b.n.id, Reason: fmt.Sprintf("duplicate option id %q", o.ID())}
		}
		seen[o.ID()] = struct{}{}
	}
	n := b.n
	n.options = append([]*Option(nil), b.n.options...)
	n.examples = append([]SelectionExample(nil), b.n.examples...)
	n.nullExamples = append([]string(nil), b.n.nullExamples...)
	return &n, nil
}

// MustBuild is Build panicking on error.
func (b *SelectionBuilder) MustBuild() *Selection {
	n, err := b.Build()
	if err != nil {
		panic(err)
	}
	return n
}

// ObjectBuilder builds an Object node.
type ObjectBuilder struct {
	n Object
}

// NewObject starts an Object node with the given id.
func NewObject(id string) *ObjectBuilder {
	b := &ObjectBuilder{}
	b.n.id = id
	return b
}

// Description sets the prompt description.
func (b *ObjectBuilder) Description(d string) *ObjectBuilder {
	b.n.description = d
	return b
}

// Many marks the object as repeatable.
func (b *ObjectBuilder) Many() *ObjectBuilder {
	b.n.many = true
	return b
}

// Attribute appends child nodes in declaration order. Options are not valid
// attributes; wrap them in a Selection.
func (b *ObjectBuilder) Attribute(nodes ...Node) *ObjectBuilder {
	b.n.attributes = append(b.n.attributes, nodes...)
	return b
}

// Example adds a (source text, expected attribute mapping) pair. An empty
// output marks text from which nothing should be extracted.
func (b *ObjectBuilder) Example(input string, output Values) *ObjectBuilder {
	b.n.examples = append(b.n.examples, ObjectExample{Input: input, Output: output})
	return b
}

// Build validates the declaration and returns the node.
func (b *ObjectBuilder) Build() (*Object, error) {
	if err := validateID(b.n.id); err != nil {
		return nil, err
	}
	seen := map[string]struct{}{}
	for _, a := range b.n.attributes {
		if a == nil {
			return nil, &SchemaError{ID: b.n.id, Reason: "nil attribute"}
		}
		if _, ok := a.(*Option); ok {
			return nil, &SchemaError{ID: b.n.id, Reason: fmt.Sprintf("option %q cannot be an object attribute", a.ID())}
		}
		if _, dup := seen[a.ID()]; dup {
			return nil, &SchemaError{ID: b.n.id, Reason: fmt.Sprintf("duplicate attribute id %q", a.ID())}
		}
		seen[a.ID()] = struct{}{}
	}
	n := b.n
	n.attributes = append([]Node(nil), b.n.attributes...)
	n.examples = append([]ObjectExample(nil), b.n.examples...)
	return &n, nil
}

// MustBuild is Build panicking on error.
func (b *ObjectBuilder) MustBuild() *Object {
	n, err := b.Build()
	if err != nil {
		panic(err)
	}
	return n
}

func copyExtractions(src []Extraction) []Extraction {
	if src == nil {
		return nil
	}
	out := make([]Extraction, len(src))
	copy(out, src)
	return out
}
