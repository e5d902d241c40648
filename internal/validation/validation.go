package validation

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrEmailRequired    = errors.New("email is required")
	ErrEmailInvalid     = errors.New("invalid email format")
	ErrNameRequired     = errors.New("name is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	ErrMonthRequired    = errors.New("month is required")
	ErrMonthTooLong     = errors.New("month must be at most 50 characters")
	ErrAmountNegative   = errors.New("amounts must be non-negative")
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ValidateEmail(email string) error {
	if email == "" {
		return ErrEmailRequired
	}
	if !emailRegex.MatchString(email) {
		return ErrEmailInvalid
	}
	return nil
}

func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}
	return nil
}

func ValidatePassword(password string) error {
	if password == "" {
		return ErrPasswordRequired
	}
	if len(password) < 8 {
		return ErrPasswordTooShort
	}
	return nil
}

func ValidateMonth(month string) error {
	if strings.TrimSpace(month) == "" {
		return ErrMonthRequired
	}
	if len(month) > 50 {
		return ErrMonthTooLong
	}
	return nil
}

// ValidateAmounts rejects any negative value in one pass so the caller does
// not have to name each field.
func ValidateAmounts(amounts ...float64) error {
	for _, a := range amounts {
		if a < 0 {
			return ErrAmountNegative
		}
	}
	return nil
}
