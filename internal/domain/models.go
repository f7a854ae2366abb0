package domain

// Domain contains core models shared by search and rendering.

// Field is a named cell of a search result. A nil Value means the field is present but null.
type Field struct {
	Name  string
	Value *string
}

// Record is one search result row. Field order is the order the source declared them in.
type Record []Field

// Get returns the value of the named field. ok is false when the field is absent or null.
func (r Record) Get(name string) (value string, ok bool) {
	for _, f := range r {
		if f.Name == name {
			if f.Value == nil {
				return "", false
			}
			return *f.Value, true
		}
	}
	return "", false
}

// Str is a helper for building non-null field values.
func Str(s string) *string { return &s }
