// internal/sanitize/sanitize.go
package sanitize

import (
	"regexp"
	"strings"

	appErrors "github.com/P7yush-Singh/CrSaathi/internal/errors"
	"github.com/P7yush-Singh/CrSaathi/internal/model"
)

const (
	MinNameLen = 2
	MaxNameLen = 120
	MaxNoteLen = 1000

	MinPhoneDigits = 7
	MaxPhoneDigits = 16
)

// Minimal shape check: something@something.something, no spaces or
// extra @ signs. Deliberately permissive, not RFC validation.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// String trims s and truncates it to max characters.
func String(s string, max int) string {
	s = strings.TrimSpace(s)
	if r := []rune(s); len(r) > max {
		s = string(r[:max])
	}
	return s
}

// Coerce turns a raw JSON value into a string field. Anything that is
// not a string becomes empty rather than being stringified.
func Coerce(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}

// ValidEmail reports whether email matches the minimal address shape.
func ValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// DigitCount counts the decimal digits in s, ignoring everything else.
func DigitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// CallbackDraft normalizes the raw submitted fields and either returns
// a draft ready for persistence or the first validation failure.
// Checks run in a fixed order (name, email, phone) and short-circuit.
func CallbackDraft(name, email, phone, note string) (*model.CallbackRequest, error) {
	name = String(name, MaxNameLen)
	email = strings.ToLower(String(email, MaxNoteLen))
	phone = String(phone, MaxNoteLen)
	note = String(note, MaxNoteLen)

	if len([]rune(name)) < MinNameLen {
		return nil, appErrors.NewValidationError("name", "Name is required and must be at least 2 characters.")
	}
	if !ValidEmail(email) {
		return nil, appErrors.NewValidationError("email", "Invalid email.")
	}
	// Digits are stripped for the check only; the trimmed original
	// formatting is what gets stored.
	if d := DigitCount(phone); d < MinPhoneDigits || d > MaxPhoneDigits {
		return nil, appErrors.NewValidationError("phone", "Invalid phone number.")
	}

	return &model.CallbackRequest{
		Name:   name,
		Email:  email,
		Phone:  phone,
		Note:   note,
		Status: model.StatusNew,
	}, nil
}
