// Package validation checks tool inputs against their declared constraints
// before any store mutation happens.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is a single violated constraint at a named field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error aggregates every violated constraint found in one input.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:")
	for i, f := range e.Fields {
		if i > 0 {
			sb.WriteString(";")
		}
		sb.WriteString(fmt.Sprintf(" %s %s", f.Field, f.Message))
	}
	return sb.String()
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report violations against JSON field names, since that is what callers
	// sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// Check validates in against its struct tags. It returns nil when every
// constraint holds, otherwise an *Error listing all violations.
func Check(in any) *Error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// InvalidValidationError: the input itself was not a struct.
		return &Error{Fields: []FieldError{{Field: "", Message: err.Error()}}}
	}
	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fieldPath(fe), Message: messageFor(fe)})
	}
	return &Error{Fields: fields}
}

// fieldPath strips the input struct's type name from the namespace, leaving
// e.g. "experience[0].company".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	default:
		return fmt.Sprintf("failed the %q constraint", fe.Tag())
	}
}
