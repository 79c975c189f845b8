// Package guest provides guest roster records and contact normalization.
package guest

import (
	"strings"

	apperrors "github.com/eventtools/guestpages/internal/errors"
	"github.com/eventtools/guestpages/internal/platform/branding"
)

var (
	// ErrEmptyName indicates a guest row without a usable name.
	ErrEmptyName = apperrors.New(apperrors.CodeGuestEmptyName, "guest name is required")
	// ErrEmptyPhone indicates a guest row without a usable phone number.
	ErrEmptyPhone = apperrors.New(apperrors.CodeGuestEmptyPhone, "guest phone is required")
)

// Guest represents one row of the input roster.
type Guest struct {
	Name  string
	Phone string
}

// Normalize trims the record's fields and validates that both are present.
// Beyond trimming, values pass through verbatim; rosters carry names and
// phone formats from many countries.
func Normalize(g Guest) (Guest, error) {
	g.Name = strings.TrimSpace(g.Name)
	if g.Name == "" {
		return Guest{}, ErrEmptyName
	}
	g.Phone = strings.TrimSpace(g.Phone)
	if g.Phone == "" {
		return Guest{}, ErrEmptyPhone
	}
	return g, nil
}

// phoneStripper removes the separator characters allowed in roster phone
// numbers. Anything else (digits, letters, other punctuation) is kept.
var phoneStripper = strings.NewReplacer("+", "", "-", "", " ", "", "(", "", ")", "")

// NormalizePhone reduces a phone number to its dialable form by removing
// plus signs, hyphens, spaces, and parentheses.
func NormalizePhone(phone string) string {
	return phoneStripper.Replace(phone)
}

// ChatURL returns the messaging-service link for a phone number.
func ChatURL(phone string) string {
	return "https://" + branding.MessagingDomain + "/" + NormalizePhone(phone)
}

// DialURL returns the tel: link for a phone number.
func DialURL(phone string) string {
	return "tel:" + NormalizePhone(phone)
}
