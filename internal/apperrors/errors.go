package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an application error. Callers match on the kind rather than
// on the concrete message.
type Kind int

const (
	KindUnknown Kind = iota
	// KindInvalidArgument marks programmer errors such as a NaN amount or an empty currency code.
	KindInvalidArgument
	// KindUnrecognizedCurrency marks a currency code absent from the catalog.
	KindUnrecognizedCurrency
	// KindNoExchangeRateData marks a conversion that needs a rate the cache does not hold.
	KindNoExchangeRateData
	// KindNotFound indicates that a requested resource could not be found.
	KindNotFound
	// KindValidation indicates that input data failed validation checks.
	KindValidation
	// KindDuplicate indicates that an attempt was made to create a resource that already exists.
	KindDuplicate
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "InvalidArgument"
	case KindUnrecognizedCurrency:
		return "UnrecognizedCurrency"
	case KindNoExchangeRateData:
		return "NoExchangeRateData"
	case KindNotFound:
		return "NotFound"
	case KindValidation:
		return "Validation"
	case KindDuplicate:
		return "Duplicate"
	default:
		return "Unknown"
	}
}

// Error is an application error tagged with a Kind.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return defaultMessage(e.Kind)
	}
	return e.Message
}

// Is matches any *Error of the same kind, so the sentinels below compare equal
// to errors carrying a more specific message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// New creates an error of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

func defaultMessage(k Kind) string {
	switch k {
	case KindInvalidArgument:
		return "invalid argument"
	case KindUnrecognizedCurrency:
		return "The currency is not recognized."
	case KindNoExchangeRateData:
		return "Missing exchange rate data"
	case KindNotFound:
		return "resource not found"
	case KindValidation:
		return "validation error"
	case KindDuplicate:
		return "resource already exists"
	default:
		return "unknown error"
	}
}

var (
	ErrInvalidArgument      = &Error{Kind: KindInvalidArgument}
	ErrUnrecognizedCurrency = &Error{Kind: KindUnrecognizedCurrency}
	ErrNoExchangeRateData   = &Error{Kind: KindNoExchangeRateData}
	ErrNotFound             = &Error{Kind: KindNotFound}
	ErrValidation           = &Error{Kind: KindValidation}
	ErrDuplicate            = &Error{Kind: KindDuplicate}
)

// InvalidArgument is shorthand for New(KindInvalidArgument, ...).
func InvalidArgument(format string, args ...any) error {
	return New(KindInvalidArgument, format, args...)
}

// UnrecognizedCurrency reports code as missing from the catalog.
func UnrecognizedCurrency(code string) error {
	return New(KindUnrecognizedCurrency, "%s is not a recognized currency.", code)
}

// NoExchangeRateData reports that no rate is cached for code.
func NoExchangeRateData(code string) error {
	return New(KindNoExchangeRateData, "We do not have exchange rate data for %s.", code)
}
