package tokenfault

type presence uint8

const (
	present presence = iota
	absentNull
	absentUndefined
)

// Specimen is a generated credential. It is either text (possibly empty) or
// one of two absence markers: null and undefined. The three forms compare
// unequal with ==, so Null() != Undefined() != Text("").
type Specimen struct {
	text     string
	presence presence
}

// Text wraps a token string.
func Text(s string) Specimen {
	return Specimen{text: s}
}

// Null returns the explicit "no value" marker.
func Null() Specimen {
	return Specimen{presence: absentNull}
}

// Undefined returns the "never set" marker.
func Undefined() Specimen {
	return Specimen{presence: absentUndefined}
}

// Value returns the token text and whether the specimen carries text at all.
func (s Specimen) Value() (string, bool) {
	return s.text, s.presence == present
}

func (s Specimen) IsNull() bool      { return s.presence == absentNull }
func (s Specimen) IsUndefined() bool { return s.presence == absentUndefined }
func (s Specimen) IsAbsent() bool    { return s.presence != present }

// String renders the specimen the way it would appear when interpolated into
// a header: absence markers become "null" and "undefined".
func (s Specimen) String() string {
	switch s.presence {
	case absentNull:
		return "null"
	case absentUndefined:
		return "undefined"
	default:
		return s.text
	}
}
