package types

// Document is one person's profile at a point in time: a mapping from
// attribute name (phone, email, website, ...) to an ordered list of values.
// An attribute may carry several values, so lists are always used even for
// single entries.
type Document map[string][]string

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	out := make(Document, len(d))
	for k, vals := range d {
		cp := make([]string, len(vals))
		copy(cp, vals)
		out[k] = cp
	}
	return out
}

// Add appends a value to the attribute's list, preserving insertion order.
func (d Document) Add(key, value string) {
	d[key] = append(d[key], value)
}

// First returns the first value for the attribute, or "" if absent.
func (d Document) First(key string) string {
	if vals := d[key]; len(vals) > 0 {
		return vals[0]
	}
	return ""
}
