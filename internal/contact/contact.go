// Package contact holds the contact record, its field validation rules and
// the duplicate hint shown after an add.
package contact

import "fmt"

// Contact is a single address-book entry.
type Contact struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Field names one of the user-editable contact fields.
type Field string

const (
	FieldName  Field = "name"
	FieldEmail Field = "email"
	FieldPhone Field = "phone"
)

// Fields lists the editable fields in form order.
func Fields() []Field {
	return []Field{FieldName, FieldEmail, FieldPhone}
}

// ParseField maps user input ("name", "email", "phone") to a Field.
func ParseField(s string) (Field, error) {
	switch Field(s) {
	case FieldName, FieldEmail, FieldPhone:
		return Field(s), nil
	}
	return "", fmt.Errorf("unknown field %q", s)
}

// Value returns the contact's value for f.
func (c Contact) Value(f Field) string {
	switch f {
	case FieldName:
		return c.Name
	case FieldEmail:
		return c.Email
	case FieldPhone:
		return c.Phone
	}
	return ""
}

// With returns a copy of c with f set to v.
func (c Contact) With(f Field, v string) Contact {
	switch f {
	case FieldName:
		c.Name = v
	case FieldEmail:
		c.Email = v
	case FieldPhone:
		c.Phone = v
	}
	return c
}

// SameValues reports whether a and b carry the same name, email and phone.
// IDs are ignored.
func SameValues(a, b Contact) bool {
	return a.Name == b.Name && a.Email == b.Email && a.Phone == b.Phone
}
