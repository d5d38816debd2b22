// internal/util/errors.go
package util

import "errors"

// Common application-specific errors.
var (
	ErrNotFound            = errors.New("resource not found")
	ErrInvalidInput        = errors.New("invalid input provided")
	ErrInvalidCurrency     = errors.New("invalid currency code")
	ErrInvalidRate         = errors.New("exchange rate must be positive")
	ErrMissingPurchaseDate = errors.New("asset has no purchase date")
	ErrAssetNotFound       = errors.New("asset not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrDuplicateEntry      = errors.New("duplicate entry") // e.g. signing up with an existing username or email
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrWeakPassword        = errors.New("password must be at least 8 characters and contain a digit")
)

// IsError reports whether err matches target via errors.Is.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
