package generator

import (
	"errors"
	"fmt"
)

// FailureClass distinguishes why a provider call failed. Every class
// triggers the fallback hop; only the user-facing notice differs.
type FailureClass int

const (
	// ClassUnexpected covers transport failures and anything unrecognized.
	ClassUnexpected FailureClass = iota
	// ClassQuota marks rate-limit/quota responses, expected to recover later.
	ClassQuota
	// ClassAPI marks every other error the provider's API reported itself.
	ClassAPI
)

func (c FailureClass) String() string {
	switch c {
	case ClassQuota:
		return "quota"
	case ClassAPI:
		return "api"
	default:
		return "unexpected"
	}
}

var (
	// ErrNoProvider means no generator credential is configured at all.
	ErrNoProvider = errors.New("no generator provider is configured")
	// ErrNoFallback means the primary tier failed and no secondary exists.
	ErrNoFallback = errors.New("no fallback provider available")
	// ErrEmptyResult means a provider succeeded but returned only whitespace.
	ErrEmptyResult = errors.New("no questions could be generated")
)

// ProviderError wraps one provider failure with its classification.
type ProviderError struct {
	Provider string
	Class    FailureClass
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s provider failed (%s): %v", e.Provider, e.Class, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Classify extracts the failure class from an error chain. Errors that do
// not carry a ProviderError are unexpected.
func Classify(err error) FailureClass {
	var perr *ProviderError
	if errors.As(err, &perr) {
		return perr.Class
	}
	return ClassUnexpected
}
