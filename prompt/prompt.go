// Package prompt assembles extraction instructions for language models. The
// flattened-string and chat-message renderings are built from the same
// instruction and example data, so the two can never drift apart.
package prompt

import (
	"errors"
	"fmt"
	"strings"

	kor "github.com/reoring/kor"
	"github.com/reoring/kor/encoder"
	"github.com/reoring/kor/examplegen"
	"github.com/reoring/kor/typedesc"
)

// Role tags a chat message originator.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one role-tagged chat message.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

const defaultPrefix = "Your goal is to extract structured information from the user's input that " +
	"matches the form described below. When extracting information please make sure it matches " +
	"the type information exactly. IMPORTANT: For Union types the output must EXACTLY match one " +
	"of the members of the Union type."

// Template composes the instruction prefix, the schema's type description,
// the format convention suffix and the schema's worked examples around the
// live user input.
type Template struct {
	prefix     string
	suffix     string
	descriptor typedesc.Descriptor
	enc        encoder.Encoder
}

// NewTemplate builds a template. The prefix and suffix must not end with a
// newline; segment separation is the template's job. An empty suffix falls
// back to the encoder's format instruction, and a nil descriptor to the
// TypeScript one.
func NewTemplate(prefix, suffix string, d typedesc.Descriptor, enc encoder.Encoder) (*Template, error) {
	if enc == nil {
		return nil, errors.New("kor: prompt template needs an encoder")
	}
	if strings.HasSuffix(prefix, "\n") {
		return nil, errors.New("kor: prompt prefix must not end with a newline")
	}
	if strings.HasSuffix(suffix, "\n") {
		return nil, errors.New("kor: prompt suffix must not end with a newline")
	}
	if d == nil {
		d = typedesc.TypeScript()
	}
	return &Template{prefix: prefix, suffix: suffix, descriptor: d, enc: enc}, nil
}

// Default returns the standard extraction template for the given encoder.
func Default(enc encoder.Encoder) *Template {
	t, err := NewTemplate(defaultPrefix, "", nil, enc)
	if err != nil {
		panic(err)
	}
	return t
}

// Instruction renders the instruction segment: prefix, type description and
// format suffix separated by blank lines.
func (t *Template) Instruction(node kor.Node) (string, error) {
	desc, err := t.descriptor.Describe(node)
	if err != nil {
		return "", err
	}
	suffix := t.suffix
	if suffix == "" {
		suffix = t.enc.Instruction()
	}
	return t.prefix + "\n\n" + desc + "\n\n" + suffix, nil
}

// String renders the whole prompt as a single flattened string for
// text-completion models, terminated by an open Output: cue.
func (t *Template) String(node kor.Node, input string) (string, error) {
	instruction, err := t.Instruction(node)
	if err != nil {
		return "", err
	}
	pairs, err := examplegen.Generate(node, t.enc)
	if err != nil {
		return "", err
	}
	var block []string
	for _, p := range pairs {
		block = append(block, "Input: "+p.Input, "Output: "+p.Output)
	}
	block = append(block, fmt.Sprintf("Input: %s\nOutput:", input))
	return instruction + "\n\n" + strings.Join(block, "\n"), nil
}

// Messages renders the prompt as a chat conversation: the instruction as a
// system message, each example as a user/assistant pair, and the live input
// as the final user message.
func (t *Template) Messages(node kor.Node, input string) ([]Message, error) {
	instruction, err := t.Instruction(node)
	if err != nil {
		return nil, err
	}
	pairs, err := examplegen.Generate(node, t.enc)
	if err != nil {
		return nil, err
	}
	msgs := []Message{{Role: RoleSystem, Content: instruction}}
	for _, p := range pairs {
		msgs = append(msgs,
			Message{Role: RoleUser, Content: p.Input},
			Message{Role: RoleAssistant, Content: p.Output},
		)
	}
	return append(msgs, Message{Role: RoleUser, Content: input}), nil
}
