package serverutils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	LocBody  = "body"
	LocQuery = "query"
	LocPath  = "path"
)

type ValidationErrorItem struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// ValidationError is rendered as HTTP 422 with the items as detail.
type ValidationError struct {
	Items []ValidationErrorItem
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Items))
	for _, item := range e.Items {
		parts = append(parts, fmt.Sprintf("%s: %s", strings.Join(item.Loc, "."), item.Msg))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func NewValidationError(loc []string, msg, errType string) *ValidationError {
	return &ValidationError{Items: []ValidationErrorItem{{Loc: loc, Msg: msg, Type: errType}}}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Field names carry their location so errors can be reported as [loc, name].
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, source := range []struct{ tag, loc string }{
			{"params", LocPath},
			{"query", LocQuery},
			{"json", LocBody},
		} {
			name := strings.SplitN(f.Tag.Get(source.tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return source.loc + "." + name
			}
		}
		return LocBody + "." + f.Name
	})
	return v
}

// ValidateRequest runs the struct's validate tags and converts failures into a
// *ValidationError.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := &ValidationError{Items: make([]ValidationErrorItem, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		loc := strings.SplitN(fe.Field(), ".", 2)
		out.Items = append(out.Items, ValidationErrorItem{
			Loc:  loc,
			Msg:  messageFor(fe),
			Type: typeFor(fe),
		})
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Field required"
	case "oneof":
		options := strings.Fields(fe.Param())
		quoted := make([]string, len(options))
		for i, o := range options {
			quoted[i] = "'" + o + "'"
		}
		return "Input should be " + strings.Join(quoted, " or ")
	case "min", "gte":
		return "Input should be greater than or equal to " + fe.Param()
	case "max", "lte":
		return "Input should be less than or equal to " + fe.Param()
	default:
		return fmt.Sprintf("Failed on the '%s' rule", fe.Tag())
	}
}

func typeFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "missing"
	case "oneof":
		return "enum"
	case "min", "gte":
		return "greater_than_equal"
	case "max", "lte":
		return "less_than_equal"
	default:
		return "value_error"
	}
}
