// Package model defines the core data structures for contacts.
package model

import (
	"fmt"
	"regexp"
	"strings"
)

// emailPattern matches local@domain.tld shaped addresses. It is applied as a
// whole-string match.
var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// Record is the plain structural projection of a Contact used for
// serialization and display.
type Record struct {
	Name  string `yaml:"name"`
	Phone string `yaml:"phone"`
	Email string `yaml:"email"`
}

// Contact is a validated name, phone and email triple.
// Two contacts are equal when their names match case-insensitively.
// A Contact cannot be modified once constructed.
type Contact struct {
	name  string
	phone string
	email string
}

// NewContact trims and validates the given fields and returns a Contact.
// Returns a *ValidationError if name or phone is empty, or if email is not
// shaped like local@domain.tld.
func NewContact(name, phone, email string) (Contact, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	email = strings.TrimSpace(email)

	if name == "" {
		return Contact{}, &ValidationError{Field: "name", Message: "cannot be empty"}
	}
	if phone == "" {
		return Contact{}, &ValidationError{Field: "phone", Message: "cannot be empty"}
	}
	if !emailPattern.MatchString(email) {
		return Contact{}, &ValidationError{Field: "email", Message: fmt.Sprintf("invalid format %q", email)}
	}

	return Contact{name: name, phone: phone, email: email}, nil
}

// FromRecord builds a Contact from a Record, validating it like NewContact.
func FromRecord(r Record) (Contact, error) {
	return NewContact(r.Name, r.Phone, r.Email)
}

// Name returns the contact's name.
func (c Contact) Name() string { return c.name }

// Phone returns the contact's phone number.
func (c Contact) Phone() string { return c.phone }

// Email returns the contact's email address.
func (c Contact) Email() string { return c.email }

// IsZero reports whether c is the zero Contact.
func (c Contact) IsZero() bool { return c.name == "" }

// Equal reports whether c and other have the same name, ignoring case.
func (c Contact) Equal(other Contact) bool {
	return c.Key() == other.Key()
}

// Compare orders contacts by lowercase name.
// Returns -1 if c sorts before other, +1 if after, 0 if they are equal.
func (c Contact) Compare(other Contact) int {
	return strings.Compare(c.Key(), other.Key())
}

// Key returns the identity key used for lookups. It depends only on the
// lowercase name, so equal contacts always share a key.
func (c Contact) Key() string {
	return NameKey(c.name)
}

// NameKey returns the lookup key for a raw name as typed by a user.
func NameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Record returns the structural projection of c.
func (c Contact) Record() Record {
	return Record{Name: c.name, Phone: c.phone, Email: c.email}
}

// String returns the display form "name | phone | email".
func (c Contact) String() string {
	return fmt.Sprintf("%s | %s | %s", c.name, c.phone, c.email)
}
