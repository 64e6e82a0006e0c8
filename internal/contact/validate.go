package contact

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// emailPattern treats the Unicode space separators, vertical tab and BOM as
// whitespace too; RE2's \s alone is ASCII-only.
var (
	emailPattern = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)
	phonePattern = regexp.MustCompile(`^[0-9]{10,15}$`)
)

// Validation messages shown next to the offending field.
const (
	MsgNameRequired = "Name is required"
	MsgInvalidEmail = "Please enter a valid email address"
	MsgInvalidPhone = "Please enter a valid phone number (10 to 15 digits)"
)

// FieldErrors maps a field to its validation message.
type FieldErrors map[Field]string

// Result is the outcome of Validate.
type Result struct {
	Valid  bool
	Errors FieldErrors
}

// Validate checks c against the name, email and phone rules. The name is
// only checked for emptiness; whitespace is not trimmed.
func Validate(c Contact) Result {
	errs := FieldErrors{}
	if c.Name == "" {
		errs[FieldName] = MsgNameRequired
	}
	if !emailPattern.MatchString(c.Email) {
		errs[FieldEmail] = MsgInvalidEmail
	}
	if !phonePattern.MatchString(c.Phone) {
		errs[FieldPhone] = MsgInvalidPhone
	}
	return Result{Valid: len(errs) == 0, Errors: errs}
}

// Err returns nil for a valid result and a *ValidationError otherwise.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	return &ValidationError{Fields: r.Errors}
}

// ValidationError carries the per-field messages of a rejected contact.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		keys = append(keys, string(f))
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[Field(k)]))
	}
	return "invalid contact: " + strings.Join(parts, "; ")
}
