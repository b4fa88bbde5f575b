package core

// Fields is the key/value data attached to a log record. It is an
// alias, not a defined type, so plain map[string]any literals satisfy
// it without conversion.
type Fields = map[string]any

// CloneFields returns a shallow copy of f with room for extra keys.
// A nil map clones to an empty, writable map.
func CloneFields(f Fields, extra int) Fields {
	out := make(Fields, len(f)+extra)
	for k, v := range f {
		out[k] = v
	}
	return out
}
