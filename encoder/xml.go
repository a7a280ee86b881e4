package encoder

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	kor "github.com/reoring/kor"
)

const xmlInstruction = "Please output the extracted information as XML elements whose names " +
	"correspond to the component IDs in the type description. Nest elements for nested " +
	"components and repeat an element once per extracted value. Do not output anything except " +
	"for the extracted information."

// XML encodes nested structure as nested elements named by attribute id.
// Decoding runs the response through a tolerant HTML-style parser, so the
// model emitting invalid XML degrades to partial or empty Values instead of
// an error.
type XML struct {
	node kor.Node // nil for schema-agnostic operation
}

// NewXML returns the XML codec. With a nil node it decodes every element it
// can make sense of.
func NewXML(node kor.Node) *XML {
	return &XML{node: node}
}

func (e *XML) Instruction() string { return xmlInstruction }

// Encode shares the tagged-text rendering: identifiers are guaranteed to be
// valid element names, and values render as <id>value</id> with nesting and
// repetition expressed structurally.
func (e *XML) Encode(v kor.Values) (string, error) {
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

func (e *XML) Decode(text string) (kor.Values, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(aliasTags(text)))
	if err != nil {
		return kor.Values{}, nil
	}
	if e.node == nil {
		root := findBody(doc)
		if root == nil {
			return kor.Values{}, nil
		}
		return decodeAnyElements(root), nil
	}
	return decodeElements(doc.Selection, attributesOf(e.node)), nil
}

func decodeElements(sel *goquery.Selection, attrs []kor.Node) kor.Values {
	v := kor.Values{}
	for _, attr := range attrs {
		found := sel.Find(elementName(attr.ID()))
		if found.Length() == 0 {
			continue
		}
		if obj, ok := attr.(*kor.Object); ok {
			if attr.Many() {
				var subs []kor.Values
				found.Each(func(_ int, s *goquery.Selection) {
					subs = append(subs, decodeElements(s, obj.Attributes()))
				})
				v[attr.ID()] = subs
			} else {
				v[attr.ID()] = decodeElements(found.First(), obj.Attributes())
			}
			continue
		}
		if attr.Many() {
			var items []string
			found.Each(func(_ int, s *goquery.Selection) {
				items = append(items, s.Text())
			})
			v[attr.ID()] = items
		} else {
			v[attr.ID()] = found.First().Text()
		}
	}
	return v
}

// decodeAnyElements reconstructs Values from element structure alone:
// elements with element children become nested Values, the rest contribute
// their text. Repetition upgrades to a list, as no schema says which ids
// repeat.
func decodeAnyElements(parent *html.Node) kor.Values {
	v := kor.Values{}
	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		id := attributeID(c.Data)
		if !validElementName(id) {
			continue
		}
		if hasElementChild(c) {
			addNested(v, id, decodeAnyElements(c))
		} else {
			addScalar(v, id, textOf(c))
		}
	}
	return v
}

func addScalar(v kor.Values, id, s string) {
	switch prev := v[id].(type) {
	case nil:
		v[id] = s
	case string:
		v[id] = []string{prev, s}
	case []string:
		v[id] = append(prev, s)
	}
}

func addNested(v kor.Values, id string, sub kor.Values) {
	switch prev := v[id].(type) {
	case nil:
		v[id] = sub
	case kor.Values:
		v[id] = []kor.Values{prev, sub}
	case []kor.Values:
		v[id] = append(prev, sub)
	}
}

func findBody(doc *goquery.Document) *html.Node {
	sel := doc.Find("body")
	if sel.Length() == 0 {
		return nil
	}
	return sel.Get(0)
}

func hasElementChild(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return true
		}
	}
	return false
}

func textOf(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(x *html.Node) {
		if x.Type == html.TextNode {
			b.WriteString(x.Data)
		}
		for c := x.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// The HTML tokenizer only opens an element for tag names starting with a
// letter, so ids beginning with '_' must be aliased before parsing.
// Identifiers never contain '-', which makes the alias collision-free and
// reversible.
const underscoreAlias = "x-"

func elementName(id string) string {
	if strings.HasPrefix(id, "_") {
		return underscoreAlias + id
	}
	return id
}

func attributeID(name string) string {
	return strings.TrimPrefix(name, underscoreAlias)
}

// aliasTags rewrites every well-formed underscore-leading tag in text to
// its aliased element name. Anything that is not an exact <id> or </id>
// form passes through untouched.
func aliasTags(text string) string {
	var b strings.Builder
	i := 0
	for i < len(text) {
		if text[i] != '<' {
			b.WriteByte(text[i])
			i++
			continue
		}
		j := i + 1
		closing := false
		if j < len(text) && text[j] == '/' {
			closing = true
			j++
		}
		start := j
		for j < len(text) && isNameByte(text[j]) {
			j++
		}
		if start < j && text[start] == '_' && j < len(text) && text[j] == '>' {
			if closing {
				b.WriteString("</")
			} else {
				b.WriteByte('<')
			}
			b.WriteString(underscoreAlias)
			b.WriteString(text[start : j+1])
			i = j + 1
			continue
		}
		b.WriteByte(text[i])
		i++
	}
	return b.String()
}

func isNameByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_'
}

func validElementName(name string) bool {
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c == '_':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return len(name) > 0
}
