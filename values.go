package kor

// Values maps attribute ids to extracted values. A value is a string, a
// []string for many fields, a nested Values for object attributes, or a
// []Values for repeated objects (tagged and XML encodings only).
type Values map[string]any

// Equal reports deep equality over the value kinds Values may legally hold.
// Values of other dynamic types never compare equal.
func (v Values) Equal(other Values) bool {
	if len(v) != len(other) {
		return false
	}
	for k, a := range v {
		b, ok := other[k]
		if !ok || !valueEqual(a, b) {
			return false
		}
	}
	return true
}

func valueEqual(a, b any) bool {
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case []string:
		bv, ok := b.([]string)
		return ok && equalStrings(av, bv)
	case Values:
		bv, ok := b.(Values)
		return ok && av.Equal(bv)
	case []Values:
		bv, ok := b.([]Values)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !av[i].Equal(bv[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
