// Package validate checks candidate values against the value-shape
// annotations declared in a template file.
package validate

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/CodexForgeBR/henvdall/internal/envfile"
)

// ErrEmpty is returned for an empty or whitespace-only candidate, whatever
// the annotation.
var ErrEmpty = errors.New("value must not be empty")

var (
	intRe = regexp.MustCompile(`^-?[0-9]+$`)
	urlRe = regexp.MustCompile(`^(?i:https?)://\S+$`)
)

// Validator is the capability shared by every annotation check.
type Validator interface {
	Validate(value string) error
}

// ValidationError describes why a value was rejected.
type ValidationError struct {
	Annotation envfile.Annotation
	Value      string
	Reason     string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%q is not a valid %s: %s", e.Value, e.Annotation, e.Reason)
}

// Int accepts base-10 integers with an optional leading minus sign.
type Int struct{}

// Validate implements Validator.
func (Int) Validate(value string) error {
	if !intRe.MatchString(value) {
		return &ValidationError{Annotation: envfile.IntAnnotation, Value: value, Reason: "expected digits with an optional leading '-'"}
	}
	return nil
}

// URL accepts http:// and https:// URLs with a non-empty host. Nothing is
// resolved or fetched.
type URL struct{}

// Validate implements Validator.
func (URL) Validate(value string) error {
	if !urlRe.MatchString(value) {
		return &ValidationError{Annotation: envfile.URLAnnotation, Value: value, Reason: "expected http:// or https:// followed by a host, without spaces"}
	}
	u, err := url.Parse(value)
	if err != nil || u.Hostname() == "" {
		return &ValidationError{Annotation: envfile.URLAnnotation, Value: value, Reason: "missing host"}
	}
	return nil
}

// Any accepts every value. It backs unannotated keys.
type Any struct{}

// Validate implements Validator.
func (Any) Validate(string) error { return nil }

// For returns the validator selected by ann.
func For(ann envfile.Annotation) Validator {
	switch ann {
	case envfile.IntAnnotation:
		return Int{}
	case envfile.URLAnnotation:
		return URL{}
	case envfile.NoAnnotation:
		return Any{}
	default:
		panic(fmt.Sprintf("validate: unhandled annotation %d", int(ann)))
	}
}

// Value checks a candidate fill for a key annotated with ann. Empty and
// whitespace-only values are always rejected.
func Value(ann envfile.Annotation, value string) error {
	if strings.TrimSpace(value) == "" {
		return ErrEmpty
	}
	return For(ann).Validate(value)
}
