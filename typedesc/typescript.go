package typedesc

import (
	"strings"

	kor "github.com/reoring/kor"
)

// TypeScript renders the tree as a TypeScript-like record type: each
// attribute becomes a field with its description as a trailing comment, a
// repeatable field is wrapped in Array<...>, and a Selection becomes a
// closed union of its option ids.
func TypeScript() Descriptor { return typeScript{} }

type typeScript struct{}

func (typeScript) Describe(n kor.Node) (string, error) {
	lines, err := kor.Accept[[]string](n, tsVisitor{depth: 1})
	if err != nil {
		return "", err
	}
	return "{\n" + strings.Join(lines, "\n") + "\n}", nil
}

type tsVisitor struct {
	kor.UnimplementedVisitor[[]string]
	depth int
}

func (v tsVisitor) VisitText(n *kor.Text) ([]string, error) {
	return []string{v.field(n, "string")}, nil
}

func (v tsVisitor) VisitNumber(n *kor.Number) ([]string, error) {
	return []string{v.field(n, "number")}, nil
}

func (v tsVisitor) VisitSelection(n *kor.Selection) ([]string, error) {
	ids := make([]string, len(n.Options()))
	for i, o := range n.Options() {
		ids[i] = `"` + o.ID() + `"`
	}
	return []string{v.field(n, strings.Join(ids, " | "))}, nil
}

func (v tsVisitor) VisitObject(n *kor.Object) ([]string, error) {
	open, closing := "{", "}"
	if n.Many() {
		open, closing = "Array<{", "}>"
	}
	lines := []string{v.indent() + n.ID() + ": " + open + comment(n)}
	child := tsVisitor{depth: v.depth + 1}
	for _, attr := range n.Attributes() {
		sub, err := kor.Accept[[]string](attr, child)
		if err != nil {
			return nil, err
		}
		lines = append(lines, sub...)
	}
	return append(lines, v.indent()+closing), nil
}

func (v tsVisitor) field(n kor.Node, typ string) string {
	if n.Many() {
		typ = "Array<" + typ + ">"
	}
	return v.indent() + n.ID() + ": " + typ + comment(n)
}

func (v tsVisitor) indent() string { return strings.Repeat(" ", v.depth) }

func comment(n kor.Node) string {
	if n.Description() == "" {
		return ""
	}
	return " // " + n.Description()
}
