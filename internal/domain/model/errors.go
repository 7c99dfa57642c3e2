package model

import (
	"errors"
	"fmt"

	"github.com/guttosm/catering-service/internal/i18n"
)

// ErrorKind classifies domain failures so the transport layer can map them to a status.
type ErrorKind string

const (
	KindNotFound      ErrorKind = "not_found"
	KindValidation    ErrorKind = "validation"
	KindConfiguration ErrorKind = "configuration"
	KindConflict      ErrorKind = "conflict"
	KindInvalidActor  ErrorKind = "invalid_actor"
)

// DomainError is the error type returned by services for business rule failures.
// Key is an i18n message key; Message is the English fallback.
type DomainError struct {
	Kind    ErrorKind
	Key     string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is matches on Kind, and on Key as well when the target carries one.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Key == "" || t.Key == e.Key
}

// Kind sentinels for errors.Is checks.
var (
	ErrNotFound      = &DomainError{Kind: KindNotFound, Message: "not found"}
	ErrValidation    = &DomainError{Kind: KindValidation, Message: "validation failed"}
	ErrConfiguration = &DomainError{Kind: KindConfiguration, Message: "configuration error"}
	ErrConflict      = &DomainError{Kind: KindConflict, Message: "conflict"}
	ErrInvalidActor  = &DomainError{Kind: KindInvalidActor, Message: "invalid actor"}
)

// NotFound builds a not-found error.
func NotFound(key, format string, args ...any) *DomainError {
	return newDomainError(KindNotFound, key, format, args...)
}

// Validation builds a validation error.
func Validation(key, format string, args ...any) *DomainError {
	return newDomainError(KindValidation, key, format, args...)
}

// Configuration builds an error for a missing prerequisite setting.
func Configuration(key, format string, args ...any) *DomainError {
	return newDomainError(KindConfiguration, key, format, args...)
}

// Conflict builds a conflict error.
func Conflict(key, format string, args ...any) *DomainError {
	return newDomainError(KindConflict, key, format, args...)
}

// InvalidActor builds an error for a caller of the wrong actor type.
func InvalidActor(key, format string, args ...any) *DomainError {
	return newDomainError(KindInvalidActor, key, format, args...)
}

func newDomainError(kind ErrorKind, key, format string, args ...any) *DomainError {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	return &DomainError{Kind: kind, Key: key, Message: msg}
}

// AsDomainError unwraps err into a *DomainError when possible.
func AsDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// Predefined domain errors.
var (
	ErrInvalidCaterer   = InvalidActor(i18n.ErrKeyInvalidCaterer, "invalid caterer")
	ErrInvalidBuyer     = InvalidActor(i18n.ErrKeyInvalidBuyer, "only buyers can compose their own packages")
	ErrDishNotFound     = NotFound(i18n.ErrKeyDishNotFound, "dish not found")
	ErrPackageNotFound  = NotFound(i18n.ErrKeyPackageNotFound, "package not found")
	ErrItemNotFound     = NotFound(i18n.ErrKeyPackageItemNotFound, "package item not found")
	ErrItemsNotOwned    = NotFound(i18n.ErrKeyPackageItemsNotOwned, "some package items not found or do not belong to this caterer")
	ErrAddOnNotFound    = NotFound(i18n.ErrKeyAddOnNotFound, "add-on not found")
	ErrCategoryNotFound = NotFound(i18n.ErrKeyCategoryNotFound, "category not found")
	ErrOccasionNotFound = NotFound(i18n.ErrKeyOccasionNotFound, "occasion not found")

	ErrSubCategoryMismatch      = Validation(i18n.ErrKeySubCategoryMismatch, "sub-category does not belong to the selected category")
	ErrSelectionsOnCustomisable = Validation(i18n.ErrKeySelectionsNotAllowed, "category selections are only allowed for FIXED packages")
	ErrSelectionInvalidCount    = Validation(i18n.ErrKeySelectionInvalidCount, "num_dishes_to_select must be at least 1")
	ErrSelectionDuplicate       = Validation(i18n.ErrKeySelectionDuplicate, "each category can only have one selection rule")
	ErrAddOnRequiresFixed       = Validation(i18n.ErrKeyAddOnRequiresFixed, "add-ons can only be attached to FIXED packages")
	ErrAddOnInvalidPrice        = Validation(i18n.ErrKeyAddOnInvalidPrice, "add-on price must be a non-negative number")
	ErrMixedCaterers            = Validation(i18n.ErrKeyMixedCaterers, "all dishes must come from the same caterer")

	ErrMinimumGuestsNotConfigured = Configuration(i18n.ErrKeyMinimumGuestsNotConfigured, "set your minimum guest count in caterer settings before creating packages")

	ErrDishInUse              = Conflict(i18n.ErrKeyDishInUse, "dish is used by one or more package items")
	ErrConcurrentModification = Conflict(i18n.ErrKeyPackageModified, "package was modified concurrently, retry")
)
