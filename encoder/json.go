package encoder

import (
	"bytes"
	"strconv"

	json "github.com/goccy/go-json"

	kor "github.com/reoring/kor"
)

const jsonInstruction = "Please output the extracted information in JSON format. " +
	"Do not output anything except for the extracted information. Do not add any clarifying " +
	"information. Do not add any fields that are not in the type description. If the text " +
	"contains attributes that do not appear in the type description, please ignore them."

// JSON encodes the attribute mapping as a JSON object. Decoding locates the
// first balanced JSON object or array inside the response, so prose and code
// fences around the payload are tolerated.
type JSON struct {
	node kor.Node // nil for schema-agnostic operation
}

// NewJSON returns the JSON codec. With a nil node it passes whatever ids
// appear through unchanged.
func NewJSON(node kor.Node) *JSON {
	return &JSON{node: node}
}

func (e *JSON) Instruction() string { return jsonInstruction }

func (e *JSON) Encode(v kor.Values) (string, error) {
	if e.node != nil {
		if err := checkKnownIDs(v, attributesOf(e.node)); err != nil {
			return "", err
		}
	}
	out, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Decode parses the first balanced JSON value in text. No candidate at all
// decodes to empty Values; a candidate that fails to parse is a
// *DecodeError.
func (e *JSON) Decode(text string) (kor.Values, error) {
	candidate := balancedJSON(text)
	if candidate == "" {
		return kor.Values{}, nil
	}
	dec := json.NewDecoder(bytes.NewReader([]byte(candidate)))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, &kor.DecodeError{Format: "json", Cause: err}
	}
	switch norm := normalizeJSON(raw).(type) {
	case kor.Values:
		if e.node != nil {
			return filterKnown(norm, attributesOf(e.node)), nil
		}
		return norm, nil
	case []kor.Values:
		// A bare array only has a home when a schema names the record.
		if e.node != nil {
			return kor.Values{e.node.ID(): norm}, nil
		}
		return kor.Values{}, nil
	case []string:
		if e.node != nil {
			return kor.Values{e.node.ID(): norm}, nil
		}
		return kor.Values{}, nil
	default:
		// Scalars carry no attribute ids; nothing recognizable.
		return kor.Values{}, nil
	}
}

// balancedJSON returns the first balanced {...} or [...] substring,
// honoring strings and escapes. When brackets never balance it returns the
// tail from the first opener so the parser reports the malformation.
func balancedJSON(text string) string {
	start := -1
	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		if start < 0 {
			if c == '{' || c == '[' {
				start = i
				depth = 1
			}
			continue
		}
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}
	if start < 0 {
		return ""
	}
	return text[start:]
}

// normalizeJSON maps parsed JSON onto the Values vocabulary: objects become
// Values, homogeneous arrays become []string or []Values, scalars become
// strings. Null members are dropped.
func normalizeJSON(raw any) any {
	switch t := raw.(type) {
	case map[string]any:
		v := kor.Values{}
		for k, member := range t {
			if member == nil {
				continue
			}
			v[k] = normalizeJSON(member)
		}
		return v
	case []any:
		return normalizeJSONList(t)
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		return nil
	}
}

func normalizeJSONList(items []any) any {
	maps := make([]kor.Values, 0, len(items))
	allMaps := true
	for _, it := range items {
		if m, ok := it.(map[string]any); ok {
			maps = append(maps, normalizeJSON(m).(kor.Values))
		} else {
			allMaps = false
			break
		}
	}
	if allMaps && len(items) > 0 {
		return maps
	}
	strs := make([]string, 0, len(items))
	for _, it := range items {
		if it == nil {
			continue
		}
		if s, ok := normalizeJSON(it).(string); ok {
			strs = append(strs, s)
		}
	}
	return strs
}

func checkKnownIDs(v kor.Values, attrs []kor.Node) error {
	for id, val := range v {
		attr := findAttribute(attrs, id)
		if attr == nil {
			return &kor.SchemaError{ID: id, Reason: "unknown attribute"}
		}
		obj, isObj := attr.(*kor.Object)
		switch sub := val.(type) {
		case kor.Values:
			if !isObj {
				return &kor.SchemaError{ID: id, Reason: "nested values for a non-object attribute"}
			}
			if err := checkKnownIDs(sub, obj.Attributes()); err != nil {
				return err
			}
		case []kor.Values:
			if !isObj {
				return &kor.SchemaError{ID: id, Reason: "nested values for a non-object attribute"}
			}
			for _, one := range sub {
				if err := checkKnownIDs(one, obj.Attributes()); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// filterKnown drops ids the schema does not declare; model output routinely
// invents fields.
func filterKnown(v kor.Values, attrs []kor.Node) kor.Values {
	out := kor.Values{}
	for id, val := range v {
		attr := findAttribute(attrs, id)
		if attr == nil {
			continue
		}
		if obj, ok := attr.(*kor.Object); ok {
			switch sub := val.(type) {
			case kor.Values:
				out[id] = filterKnown(sub, obj.Attributes())
			case []kor.Values:
				kept := make([]kor.Values, 0, len(sub))
				for _, one := range sub {
					kept = append(kept, filterKnown(one, obj.Attributes()))
				}
				out[id] = kept
			}
			continue
		}
		out[id] = val
	}
	return out
}
