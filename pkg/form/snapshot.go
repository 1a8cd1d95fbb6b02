package form

// Snapshot is an immutable copy of the field values taken from a Store.
type Snapshot struct {
	values [FieldCount]int
}

// DefaultSnapshot returns the values a fresh Store starts with.
func DefaultSnapshot() Snapshot {
	var snap Snapshot
	for pos, field := range canonicalOrder {
		snap.values[pos] = field.Default
	}
	return snap
}

// Value returns the value stored for name.
func (s Snapshot) Value(name string) (int, bool) {
	pos, ok := fieldIndex[name]
	if !ok {
		return 0, false
	}
	return s.values[pos], true
}

// Values returns the values in canonical order. The slice is a copy.
func (s Snapshot) Values() []int {
	out := make([]int, FieldCount)
	copy(out, s.values[:])
	return out
}

// Map returns the values keyed by field name.
func (s Snapshot) Map() map[string]int {
	out := make(map[string]int, FieldCount)
	for pos, field := range canonicalOrder {
		out[field.Name] = s.values[pos]
	}
	return out
}

// Validate checks every value against its field domain. It is applied at the
// serialization boundary; SetField itself accepts any integer.
func (s Snapshot) Validate() error {
	var issues []Issue
	for pos, field := range canonicalOrder {
		if err := field.Check(s.values[pos]); err != nil {
			issues = append(issues, Issue{
				Field:  field.Name,
				Value:  s.values[pos],
				Reason: err.Error(),
			})
		}
	}
	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}
