package encoder

import (
	"encoding/csv"
	"fmt"
	"strings"

	kor "github.com/reoring/kor"
)

const csvInstruction = "Please output the extracted information in CSV format. " +
	"The first row must contain the column names exactly as given in the type description. " +
	"Do not output anything except for the extracted information. Do not add any clarifying " +
	"information."

// CSV encodes a flat record as a header row plus one data row. A flat row
// format cannot represent repetition or nesting, so construction rejects any
// schema containing a many attribute or a nested Object; this is a
// deliberate limitation, not an oversight.
type CSV struct {
	node  kor.Node
	attrs []kor.Node
}

// NewCSV returns the CSV codec for the given schema. The schema is
// mandatory; shape violations fail here, before any encode or decode is
// attempted.
func NewCSV(node kor.Node) (*CSV, error) {
	if node == nil {
		return nil, &kor.UnsupportedError{Format: "csv", Reason: "a schema is required"}
	}
	if node.Many() {
		return nil, &kor.UnsupportedError{Format: "csv", Reason: fmt.Sprintf("%q is repeatable; rows cannot repeat", node.ID())}
	}
	attrs := attributesOf(node)
	for _, a := range attrs {
		if a.Many() {
			return nil, &kor.UnsupportedError{Format: "csv", Reason: fmt.Sprintf("attribute %q is repeatable", a.ID())}
		}
		if _, ok := a.(*kor.Object); ok {
			return nil, &kor.UnsupportedError{Format: "csv", Reason: fmt.Sprintf("attribute %q is a nested object", a.ID())}
		}
	}
	return &CSV{node: node, attrs: attrs}, nil
}

func (e *CSV) Instruction() string { return csvInstruction }

func (e *CSV) Encode(v kor.Values) (string, error) {
	header := make([]string, len(e.attrs))
	row := make([]string, len(e.attrs))
	for i, a := range e.attrs {
		header[i] = a.ID()
		val, ok := v[a.ID()]
		if !ok {
			continue
		}
		s, isString := val.(string)
		if !isString {
			return "", fmt.Errorf("kor: csv encode: unsupported value %T for %q", val, a.ID())
		}
		row[i] = s
	}
	for id := range v {
		if findAttribute(e.attrs, id) == nil {
			return "", &kor.SchemaError{ID: id, Reason: "unknown attribute"}
		}
	}
	var b strings.Builder
	w := csv.NewWriter(&b)
	if err := w.Write(header); err != nil {
		return "", err
	}
	if err := w.Write(row); err != nil {
		return "", err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Decode reads the first data row. The header row maps columns by name when
// present; a headerless payload is accepted positionally when the column
// count matches the schema. Empty cells mean "nothing extracted".
func (e *CSV) Decode(text string) (kor.Values, error) {
	r := csv.NewReader(strings.NewReader(stripFences(text)))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, &kor.DecodeError{Format: "csv", Cause: err}
	}
	if len(records) == 0 {
		return kor.Values{}, nil
	}

	columns := make(map[int]string)
	var row []string
	if e.isHeader(records[0]) {
		for i, name := range records[0] {
			columns[i] = name
		}
		if len(records) < 2 {
			return kor.Values{}, nil
		}
		row = records[1]
	} else if len(records[0]) == len(e.attrs) {
		for i, a := range e.attrs {
			columns[i] = a.ID()
		}
		row = records[0]
	} else {
		return kor.Values{}, nil
	}

	v := kor.Values{}
	for i, field := range row {
		id, ok := columns[i]
		if !ok || field == "" {
			continue
		}
		if findAttribute(e.attrs, id) == nil {
			continue
		}
		v[id] = field
	}
	return v, nil
}

// isHeader reports whether the record names the schema's columns exactly,
// in any order. A row that merely mentions some ids, repeats one, or has a
// different width is data, not a header.
func (e *CSV) isHeader(record []string) bool {
	if len(record) != len(e.attrs) {
		return false
	}
	seen := make(map[string]bool, len(record))
	for _, name := range record {
		if findAttribute(e.attrs, name) == nil || seen[name] {
			return false
		}
		seen[name] = true
	}
	return true
}

// stripFences removes markdown code-fence lines the model may wrap the
// table in.
func stripFences(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, ln := range lines {
		if strings.HasPrefix(strings.TrimSpace(ln), "```") {
			continue
		}
		kept = append(kept, ln)
	}
	return strings.Join(kept, "\n")
}
