package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Errors maps a form field path (json names, e.g. "ingredients[0].unit") to
// the message shown next to it.
type Errors map[string]string

func (e Errors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add keeps the first message reported for a field.
func (e Errors) Add(field, message string) {
	if _, ok := e[field]; !ok {
		e[field] = message
	}
}

func (e Errors) Get(field string) string {
	return e[field]
}

// Merge copies other into e without overwriting existing messages.
func (e Errors) Merge(other Errors) Errors {
	for k, v := range other {
		e.Add(k, v)
	}
	return e
}

// AsErrors extracts validation errors from err.
func AsErrors(err error) (Errors, bool) {
	var verrs Errors
	if errors.As(err, &verrs) {
		return verrs, true
	}
	return nil, false
}

// Validator checks form structs declared with `validate` tags. A `message`
// tag overrides the text per rule: `message:"gtfield=Must exceed min;Too small"`
// uses the first text for gtfield failures and the last for every other rule.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return &Validator{validate: v}
}

// Struct validates s and returns Errors when a rule fails.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate %T: %w", s, err)
	}

	t := reflect.TypeOf(s)
	out := Errors{}
	for _, fe := range fieldErrs {
		out.Add(fieldPath(fe.Namespace()), messageFor(t, fe))
	}
	return out
}

func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func messageFor(root reflect.Type, fe validator.FieldError) string {
	if field, ok := lookupField(root, strings.Split(fe.StructNamespace(), ".")[1:]); ok {
		if msg, ok := parseMessage(field.Tag.Get("message"), fe.Tag()); ok {
			return msg
		}
	}
	return defaultMessage(fe)
}

func lookupField(t reflect.Type, path []string) (reflect.StructField, bool) {
	var field reflect.StructField
	for _, segment := range path {
		t = elem(t)
		if t.Kind() != reflect.Struct {
			return field, false
		}
		if i := strings.Index(segment, "["); i >= 0 {
			segment = segment[:i]
		}
		f, ok := t.FieldByName(segment)
		if !ok {
			return field, false
		}
		field = f
		t = f.Type
	}
	return field, true
}

func elem(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer || t.Kind() == reflect.Slice || t.Kind() == reflect.Array {
		t = t.Elem()
	}
	return t
}

func parseMessage(tag, rule string) (string, bool) {
	if tag == "" {
		return "", false
	}
	fallback := ""
	for _, part := range strings.Split(tag, ";") {
		key, msg, found := strings.Cut(part, "=")
		if !found {
			fallback = part
			continue
		}
		if key == rule {
			return msg, true
		}
	}
	return fallback, fallback != ""
}

func defaultMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "Required"
	case "email":
		return "Invalid email"
	case "min", "gte":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice {
			return fmt.Sprintf("Must contain at least %s", fe.Param())
		}
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "gt":
		return fmt.Sprintf("Must be greater than %s", fe.Param())
	case "oneof":
		return "Invalid option"
	case "eqfield":
		return "Values don't match"
	default:
		return "Invalid value"
	}
}
