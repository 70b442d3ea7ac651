// Package validate checks donor input before any order is created.
package validate

import (
	"regexp"
	"strings"

	"github.com/TTJ-s/qr-annujoom/internal/i18n"
)

// Field names a form field for field-specific error messages.
type Field string

const (
	FieldAmount Field = "amount"
	FieldName   Field = "name"
	FieldPhone  Field = "phone"
	FieldEmail  Field = "email"
)

// FieldError is a validation failure tied to one field, carrying the
// bilingual message shown to the donor.
type FieldError struct {
	Field   Field
	Message i18n.LocalizedText
}

func (e *FieldError) Error() string {
	return string(e.Field) + ": " + e.Message.EN
}

var (
	// Indian mobile numbers: exactly 10 digits, leading digit 6-9.
	phoneRe = regexp.MustCompile(`^[6-9][0-9]{9}$`)
	// One "@" with something before it and a dot after it, no whitespace.
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Amount requires a positive whole-rupee donation.
func Amount(amount int64) error {
	if amount <= 0 {
		return &FieldError{Field: FieldAmount, Message: i18n.MsgInvalidAmount}
	}
	return nil
}

// Name requires a non-blank donor name.
func Name(name string) error {
	if strings.TrimSpace(name) == "" {
		return &FieldError{Field: FieldName, Message: i18n.MsgEnterName}
	}
	return nil
}

// Phone validates an Indian mobile number.
func Phone(phone string) error {
	if !phoneRe.MatchString(phone) {
		return &FieldError{Field: FieldPhone, Message: i18n.MsgInvalidPhone}
	}
	return nil
}

// Email validates an email address shape.
func Email(email string) error {
	if !emailRe.MatchString(email) {
		return &FieldError{Field: FieldEmail, Message: i18n.MsgInvalidEmail}
	}
	return nil
}
