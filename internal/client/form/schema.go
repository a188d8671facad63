// Package form implements the schema-driven form engine every entity form is
// an instantiation of: validate against a field schema, submit to a create or
// update endpoint, and report the outcome through the toast collaborator.
package form

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Rule classifies how a field value is validated beyond presence.
type Rule int

const (
	// Text requires a non-blank value.
	Text Rule = iota
	// Email requires a well-formed email address.
	Email
	// Digits requires exactly FieldSpec.Length digits.
	Digits
	// URL requires an absolute http(s) URL.
	URL
	// Numeric requires a base-10 integer.
	Numeric
)

// FieldSpec describes one form field. Label feeds the validation messages;
// Optional fields skip all checks when blank. Hidden fields are never
// rendered; their value is seeded from the hydrating record, the way a nested
// form carries its parent's id.
type FieldSpec struct {
	Name     string
	Label    string
	Rule     Rule
	Length   int
	Optional bool
	Hidden   bool
}

// Schema is an ordered field set.
type Schema struct {
	Fields []FieldSpec
}

// Values maps field name to the entered value.
type Values map[string]string

// Errors maps field name to its validation message.
type Errors map[string]string

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	digitRe = regexp.MustCompile(`^[0-9]+$`)
)

// Validate checks values against the schema and returns one message per
// failing field. An empty result means the values may be submitted.
func (s Schema) Validate(values Values) Errors {
	errs := make(Errors)
	for _, field := range s.Fields {
		value := strings.TrimSpace(values[field.Name])

		if value == "" {
			if !field.Optional {
				errs[field.Name] = fmt.Sprintf("%s is required *", field.Label)
			}
			continue
		}

		switch field.Rule {
		case Email:
			if !emailRe.MatchString(value) {
				errs[field.Name] = "Invalid Email"
			}
		case Digits:
			if !digitRe.MatchString(value) || len(value) != field.Length {
				errs[field.Name] = fmt.Sprintf("%s must be exactly %d digits", field.Label, field.Length)
			}
		case URL:
			if !validURL(value) {
				errs[field.Name] = "Must be a valid URL"
			}
		case Numeric:
			if !digitRe.MatchString(value) {
				errs[field.Name] = fmt.Sprintf("%s must be a number", field.Label)
			}
		}
	}
	return errs
}

// Defaults returns values hydrated from record for every schema field, empty
// strings where record has nothing.
func (s Schema) Defaults(record Values) Values {
	values := make(Values, len(s.Fields))
	for _, field := range s.Fields {
		values[field.Name] = record[field.Name]
	}
	return values
}

func validURL(value string) bool {
	u, err := url.ParseRequestURI(value)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
