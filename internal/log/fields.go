package log

import "fmt"

// FieldType tags which member of ZField is populated. The set is kept to
// exactly the shapes this project's diagnostics actually emit (a name, a
// register/port value, or a wrapped error) rather than a general-purpose
// structured-logging vocabulary.
type FieldType int

const (
	FieldTypeUnknown FieldType = iota
	FieldTypeString
	FieldTypeHex8
	FieldTypeError
)

type ZField struct {
	Type FieldType
	Key  string

	// Populated depending on Type: String for FieldTypeString, Integer for
	// FieldTypeHex8, Error for FieldTypeError.
	String  string
	Integer uint64
	Error   error
}

func (f *ZField) Value() string {
	switch f.Type {
	case FieldTypeString:
		return f.String
	case FieldTypeHex8:
		return fmt.Sprintf("%02x", uint8(f.Integer))
	case FieldTypeError:
		if f.Error == nil {
			return "<nil>"
		}
		return f.Error.Error()
	}
	return ""
}
