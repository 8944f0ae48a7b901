// Package form maps submitted HTML form fields onto domain entities.
// Each form struct is bound by echo from an
// application/x-www-form-urlencoded body and checked with
// go-playground/validator before anything reaches storage.
package form

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var phonePattern = regexp.MustCompile(`^[0-9()+\-. ]{7,20}$`)

// ShowTimeLayouts are the accepted encodings of a show's start_time.
// Values without a zone are read as UTC.
var ShowTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	time.RFC3339,
}

const (
	msgInteger  = "Not a valid integer value."
	msgDatetime = "Not a valid datetime value."
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their form name, not the Go field name
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("genre", func(fl validator.FieldLevel) bool {
		return genreSet[fl.Field().String()]
	})
	_ = v.RegisterValidation("usstate", func(fl validator.FieldLevel) bool {
		return stateSet[fl.Field().String()]
	})
	_ = v.RegisterValidation("showtime", func(fl validator.FieldLevel) bool {
		_, err := ParseShowTime(fl.Field().String())
		return err == nil
	})
	return v
}

// Validate checks a form struct and returns one message per failing
// field keyed by the form field name, or nil when the form is valid.
func Validate(f any) map[string]string {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"form": err.Error()}
	}
	out := make(map[string]string, len(errs))
	for _, fe := range errs {
		field := fe.Field()
		// genres[2] -> genres
		if i := strings.IndexByte(field, '['); i >= 0 {
			field = field[:i]
		}
		if _, seen := out[field]; !seen {
			out[field] = message(fe)
		}
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "phone":
		return "Invalid phone number."
	case "url":
		return "Invalid URL."
	case "genre", "usstate":
		return "Not a valid choice."
	case "showtime":
		return msgDatetime
	case "number":
		return msgInteger
	case "min":
		if fe.Kind() == reflect.Slice {
			return "Select at least one option."
		}
		return fmt.Sprintf("Field must be at least %s characters long.", fe.Param())
	case "max":
		return fmt.Sprintf("Field cannot be longer than %s characters.", fe.Param())
	}
	return "Invalid value."
}

// ParseShowTime parses s with the first matching ShowTimeLayouts entry.
func ParseShowTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range ShowTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid start time %q", s)
}
