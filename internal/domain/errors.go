package domain

import "errors"

var (
	ErrDuplicateIdentity  = errors.New("duplicate identity")
	ErrInvalidReference   = errors.New("invalid reference")
	ErrSelfFight          = errors.New("self fight")
	ErrInconsistentMethod = errors.New("inconsistent method")
	ErrInvalidInput       = errors.New("invalid input")
	ErrStoreUnavailable   = errors.New("store unavailable")
)

// IsValidation reports whether err is one of the write-time validation kinds.
func IsValidation(err error) bool {
	return errors.Is(err, ErrDuplicateIdentity) ||
		errors.Is(err, ErrInvalidReference) ||
		errors.Is(err, ErrSelfFight) ||
		errors.Is(err, ErrInconsistentMethod) ||
		errors.Is(err, ErrInvalidInput)
}

// Kind returns the name of the error kind err belongs to, or "" if none.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrDuplicateIdentity):
		return "DuplicateIdentity"
	case errors.Is(err, ErrInvalidReference):
		return "InvalidReference"
	case errors.Is(err, ErrSelfFight):
		return "SelfFight"
	case errors.Is(err, ErrInconsistentMethod):
		return "InconsistentMethod"
	case errors.Is(err, ErrInvalidInput):
		return "InvalidInput"
	case errors.Is(err, ErrStoreUnavailable):
		return "StoreUnavailable"
	}
	return ""
}
