// Package schemafile builds schema node trees from declarative YAML
// documents, mainly for the CLI and for configuration-driven callers. All
// validation is delegated to the node builders, so a file declaring an
// invalid schema fails exactly like the same schema built in code.
package schemafile

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	kor "github.com/reoring/kor"
)

type nodeSpec struct {
	ID           string        `yaml:"id"`
	Type         string        `yaml:"type"`
	Description  string        `yaml:"description"`
	Many         bool          `yaml:"many"`
	Attributes   []nodeSpec    `yaml:"attributes"`
	Options      []optionSpec  `yaml:"options"`
	Examples     []exampleSpec `yaml:"examples"`
	NullExamples []string      `yaml:"null_examples"`
}

type optionSpec struct {
	ID          string   `yaml:"id"`
	Description string   `yaml:"description"`
	Many        bool     `yaml:"many"`
	Examples    []string `yaml:"examples"`
}

type exampleSpec struct {
	Input  string `yaml:"input"`
	Output any    `yaml:"output"`
}

// Parse builds the node tree declared by a YAML document.
func Parse(data []byte) (kor.Node, error) {
	var spec nodeSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("kor: schema file: %w", err)
	}
	return build(spec)
}

// Load reads a whole YAML document from r and builds its node tree.
func Load(r io.Reader) (kor.Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func build(spec nodeSpec) (kor.Node, error) {
	switch spec.Type {
	case "text":
		b := kor.NewText(spec.ID).Description(spec.Description)
		if spec.Many {
			b = b.Many()
		}
		for _, e := range spec.Examples {
			b = b.Example(e.Input, toStrings(e.Output)...)
		}
		return b.Build()
	case "number":
		b := kor.NewNumber(spec.ID).Description(spec.Description)
		if spec.Many {
			b = b.Many()
		}
		for _, e := range spec.Examples {
			b = b.Example(e.Input, toStrings(e.Output)...)
		}
		return b.Build()
	case "selection":
		b := kor.NewSelection(spec.ID).Description(spec.Description)
		if spec.Many {
			b = b.Many()
		}
		for _, o := range spec.Options {
			ob := kor.NewOption(o.ID).Description(o.Description)
			if o.Many {
				ob = ob.Many()
			}
			for _, text := range o.Examples {
				ob = ob.Example(text)
			}
			opt, err := ob.Build()
			if err != nil {
				return nil, err
			}
			b = b.Option(opt)
		}
		for _, e := range spec.Examples {
			b = b.Example(e.Input, toStrings(e.Output)...)
		}
		b = b.NullExample(spec.NullExamples...)
		return b.Build()
	case "object":
		b := kor.NewObject(spec.ID).Description(spec.Description)
		if spec.Many {
			b = b.Many()
		}
		for _, attr := range spec.Attributes {
			child, err := build(attr)
			if err != nil {
				return nil, err
			}
			b = b.Attribute(child)
		}
		for _, e := range spec.Examples {
			out, err := toValues(e.Output)
			if err != nil {
				return nil, fmt.Errorf("kor: schema file: example for %q: %w", spec.ID, err)
			}
			b = b.Example(e.Input, out)
		}
		return b.Build()
	case "":
		return nil, fmt.Errorf("kor: schema file: node %q is missing a type", spec.ID)
	default:
		return nil, fmt.Errorf("kor: schema file: node %q has unknown type %q", spec.ID, spec.Type)
	}
}

// toStrings accepts a scalar or a sequence for an expected extraction.
func toStrings(out any) []string {
	switch t := out.(type) {
	case nil:
		return nil
	case string:
		return []string{t}
	case []any:
		items := make([]string, 0, len(t))
		for _, it := range t {
			items = append(items, fmt.Sprintf("%v", it))
		}
		return items
	default:
		return []string{fmt.Sprintf("%v", t)}
	}
}

func isMappingList(items []any) bool {
	if len(items) == 0 {
		return false
	}
	for _, it := range items {
		if _, ok := it.(map[string]any); !ok {
			return false
		}
	}
	return true
}

// toValues accepts a mapping for an object example output.
func toValues(out any) (kor.Values, error) {
	if out == nil {
		return kor.Values{}, nil
	}
	m, ok := out.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("object example output must be a mapping, got %T", out)
	}
	v := kor.Values{}
	for k, member := range m {
		switch t := member.(type) {
		case map[string]any:
			sub, err := toValues(t)
			if err != nil {
				return nil, err
			}
			v[k] = sub
		case []any:
			if isMappingList(t) {
				subs := make([]kor.Values, 0, len(t))
				for _, it := range t {
					sub, err := toValues(it)
					if err != nil {
						return nil, err
					}
					subs = append(subs, sub)
				}
				v[k] = subs
				continue
			}
			v[k] = toStrings(t)
		default:
			v[k] = fmt.Sprintf("%v", t)
		}
	}
	return v, nil
}
