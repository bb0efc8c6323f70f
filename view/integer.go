package view

// IntegerView is a View known to hold an integer.
type IntegerView struct{ View }

// Value returns the decoded integer value.
func (v IntegerView) Value() int64 { return v.descriptor().Value() }
