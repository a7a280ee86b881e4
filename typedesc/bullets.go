package typedesc

import (
	"strings"

	kor "github.com/reoring/kor"
)

// BulletPoints renders the tree as an indented bullet list, one line per
// field with its kind and description. Options appear as sub-bullets of
// their Selection. Some models follow this plainer style better than the
// TypeScript one.
func BulletPoints() Descriptor { return bulletPoints{} }

type bulletPoints struct{}

func (bulletPoints) Describe(n kor.Node) (string, error) {
	lines, err := kor.Accept[[]string](n, bulletVisitor{})
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

type bulletVisitor struct {
	kor.UnimplementedVisitor[[]string]
	depth int
}

func (v bulletVisitor) VisitText(n *kor.Text) ([]string, error) {
	return []string{v.line(n, "text")}, nil
}

func (v bulletVisitor) VisitNumber(n *kor.Number) ([]string, error) {
	return []string{v.line(n, "number")}, nil
}

func (v bulletVisitor) VisitOption(n *kor.Option) ([]string, error) {
	return []string{v.line(n, "option")}, nil
}

func (v bulletVisitor) VisitSelection(n *kor.Selection) ([]string, error) {
	lines := []string{v.line(n, "selection")}
	child := bulletVisitor{depth: v.depth + 1}
	for _, o := range n.Options() {
		sub, err := kor.Accept[[]string](o, child)
		if err != nil {
			return nil, err
		}
		lines = append(lines, sub...)
	}
	return lines, nil
}

func (v bulletVisitor) VisitObject(n *kor.Object) ([]string, error) {
	lines := []string{v.line(n, "object")}
	child := bulletVisitor{depth: v.depth + 1}
	for _, attr := range n.Attributes() {
		sub, err := kor.Accept[[]string](attr, child)
		if err != nil {
			return nil, err
		}
		lines = append(lines, sub...)
	}
	return lines, nil
}

func (v bulletVisitor) line(n kor.Node, kind string) string {
	if n.Many() {
		kind = "multiple " + kind
	}
	s := strings.Repeat("  ", v.depth) + "* " + n.ID() + " (" + kind + ")"
	if n.Description() != "" {
		s += ": " + n.Description()
	}
	return s
}
