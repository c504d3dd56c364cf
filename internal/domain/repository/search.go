package repository

// SearchField enumerates the fields an activity query may match on.
// Anything outside this set is rejected at the validation boundary and
// never reaches a store implementation.
type SearchField string

const (
	FieldUser         SearchField = "user"
	FieldActivityType SearchField = "activity"
	FieldWeight       SearchField = "weight"
	FieldDistance     SearchField = "distance"
	FieldTime         SearchField = "time"
)

// ParseSearchField maps a caller-supplied property name onto the closed
// field set.
func ParseSearchField(name string) (SearchField, bool) {
	switch SearchField(name) {
	case FieldUser, FieldActivityType, FieldWeight, FieldDistance, FieldTime:
		return SearchField(name), true
	default:
		return "", false
	}
}

// Numeric reports whether values for the field are numbers. User handles
// and activity kinds stay strings; every other field coerces.
func (f SearchField) Numeric() bool {
	switch f {
	case FieldUser, FieldActivityType:
		return false
	default:
		return true
	}
}

// SearchCriteria is a single-field equality predicate. Exactly one of
// Text or Number carries the match value, decided by Field.Numeric().
type SearchCriteria struct {
	Field  SearchField
	Text   string
	Number float64
}

// Value returns the match value in its typed form.
func (c SearchCriteria) Value() any {
	if c.Field.Numeric() {
		return c.Number
	}
	return c.Text
}
