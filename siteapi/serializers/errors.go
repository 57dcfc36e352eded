package serializers

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// NonFieldErrors is the key for errors not tied to a single field.
const NonFieldErrors = "non_field_errors"

const (
	msgRequired      = "This field is required."
	msgIncorrectType = "Incorrect type."
	msgInvalidPK     = `Invalid pk "%v" - object does not exist.`
	msgDatetime      = "Datetime has wrong format. Use one of these formats instead: YYYY-MM-DDThh:mm[:ss[.uuuuuu]][+HH:MM|-HH:MM|Z]."
)

// ValidationError maps field names to the messages explaining why the
// submitted value was rejected. Nested fields use paths such as
// deletedmessage_set[0].author.
type ValidationError struct {
	Fields map[string][]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// FieldError is shorthand for a ValidationError with a single message.
func FieldError(field, msg string) *ValidationError {
	e := NewValidationError()
	e.Add(field, msg)
	return e
}

func (e *ValidationError) Add(field, msg string) {
	e.Fields[field] = append(e.Fields[field], msg)
}

// Has reports whether field already carries an error.
func (e *ValidationError) Has(field string) bool {
	return len(e.Fields[field]) > 0
}

// Nest copies the errors of other under prefix.
func (e *ValidationError) Nest(prefix string, other *ValidationError) {
	if other == nil {
		return
	}
	for field, msgs := range other.Fields {
		key := prefix
		switch {
		case field == NonFieldErrors:
		case strings.HasPrefix(field, "["):
			key += field
		default:
			key += "." + field
		}
		e.Fields[key] = append(e.Fields[key], msgs...)
	}
}

func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

// Err returns e as an error, or nil when nothing was recorded.
func (e *ValidationError) Err() error {
	if e.Empty() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(e.Fields[k], " ")))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Fields)
}
