package serializers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

var channelNamePattern = regexp.MustCompile(`^[a-z0-9\x{1D5A0}-\x{1D5B9}\-ǃ？’'<>⧹⧸]+$`)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("channelname", func(fl validator.FieldLevel) bool {
		return channelNamePattern.MatchString(fl.Field().String())
	})
	return v
}

// checkStruct runs the struct tags of payload and translates failures into
// field messages.
func checkStruct(payload any) *ValidationError {
	verrs := NewValidationError()

	err := validate.Struct(payload)
	if err == nil {
		return verrs
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		verrs.Add(NonFieldErrors, err.Error())
		return verrs
	}

	for _, fe := range fieldErrs {
		verrs.Add(fieldPath(fe.Namespace()), tagMessage(fe))
	}
	return verrs
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func tagMessage(fe validator.FieldError) string {
	kind := fe.Kind()
	switch fe.Tag() {
	case "required":
		return msgRequired
	case "notblank":
		return "This field may not be blank."
	case "max":
		switch kind {
		case reflect.String:
			return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
		case reflect.Slice, reflect.Map:
			return fmt.Sprintf("Ensure this field has no more than %s elements.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
	case "lte":
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
	case "min", "gte":
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	case "oneof":
		return fmt.Sprintf(`"%v" is not a valid choice.`, fe.Value())
	case "url":
		return "Enter a valid URL."
	case "endswith":
		return fmt.Sprintf("Ensure this value ends with %q.", fe.Param())
	case "channelname":
		return "Enter a valid value."
	}
	return "Invalid value."
}

// decode unmarshals a JSON object into payload, reporting syntax and type
// problems the way field validation does.
func decode(data []byte, payload any) *ValidationError {
	verrs := NewValidationError()

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		verrs.Add(NonFieldErrors, "Invalid data. Expected a dictionary.")
		return verrs
	}

	err := json.Unmarshal(trimmed, payload)
	if err == nil {
		return verrs
	}

	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &typeErr) && typeErr.Field != "":
		verrs.Add(typeErr.Field, msgIncorrectType)
	case errors.As(err, &syntaxErr):
		verrs.Add(NonFieldErrors, fmt.Sprintf("JSON parse error - %s", syntaxErr.Error()))
	default:
		verrs.Add(NonFieldErrors, err.Error())
	}
	return verrs
}

// parseTime accepts RFC 3339 timestamps with optional fractional seconds.
func parseTime(verrs *ValidationError, field string, raw *string) *time.Time {
	if raw == nil {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, *raw)
	if err != nil {
		verrs.Add(field, msgDatetime)
		return nil
	}
	return &t
}

func deref[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}

// checkVar validates a single value outside of a struct.
func checkVar(verrs *ValidationError, field string, value any, tag string) {
	err := validate.Var(value, tag)
	if err == nil {
		return
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		verrs.Add(field, err.Error())
		return
	}
	for _, fe := range fieldErrs {
		verrs.Add(field, tagMessage(fe))
	}
}

func isNullJSON(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
