package mailer

import "errors"

// FallbackProviderMessage is reported when the provider gives no diagnostic.
const FallbackProviderMessage = "Unknown error from email provider"

var (
	// ErrNoRecipient indicates no recipient was specified.
	ErrNoRecipient = errors.New("email must have at least one recipient")

	// ErrNoSubject indicates no subject was provided.
	ErrNoSubject = errors.New("email must have a subject")

	// ErrNoContent indicates neither HTML nor text content was provided.
	ErrNoContent = errors.New("email must have content")

	// ErrNotConfigured indicates the provider credentials are missing.
	ErrNotConfigured = errors.New("email provider credentials are not configured")
)

// ProviderError is a failure reported by the provider itself. Error returns
// the provider diagnostic unchanged.
type ProviderError struct {
	Provider   string
	StatusCode int
	Message    string
	// Err is the underlying client error, if any
	Err error
}

func (e *ProviderError) Error() string {
	if e.Message == "" {
		return FallbackProviderMessage
	}
	return e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// IsProviderError reports whether err is, or wraps, a *ProviderError.
func IsProviderError(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe)
}
