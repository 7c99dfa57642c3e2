// Package i18n provides internationalization support for the catering service.
package i18n

// Error message translation keys for transport-level failures.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInvalidID indicates a malformed identifier in the path or body.
	ErrKeyInvalidID = "error.invalid_id"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyForbidden indicates the actor type may not use the route.
	ErrKeyForbidden = "error.forbidden"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyInvalidToken indicates an invalid or expired JWT token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a JWT token is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
)

// Domain error keys. Each maps to a stable English message in the domain layer and a
// translation here.
const (
	ErrKeyInvalidCaterer             = "error.invalid_caterer"
	ErrKeyInvalidBuyer               = "error.invalid_buyer"
	ErrKeyDishNotFound               = "error.dish_not_found"
	ErrKeyPackageNotFound            = "error.package_not_found"
	ErrKeyPackageItemNotFound        = "error.package_item_not_found"
	ErrKeyPackageItemsNotOwned       = "error.package_items_not_owned"
	ErrKeyAddOnNotFound              = "error.addon_not_found"
	ErrKeyCategoryNotFound           = "error.category_not_found"
	ErrKeySubCategoryMismatch        = "error.sub_category_mismatch"
	ErrKeyOccasionNotFound           = "error.occasion_not_found"
	ErrKeyMinimumGuestsNotConfigured = "error.minimum_guests_not_configured"
	ErrKeySelectionsNotAllowed       = "error.category_selections_not_allowed"
	ErrKeySelectionInvalidCount      = "error.category_selection_invalid_count"
	ErrKeySelectionDuplicate         = "error.category_selection_duplicate"
	ErrKeyAddOnRequiresFixed         = "error.addon_requires_fixed"
	ErrKeyAddOnInvalidPrice          = "error.addon_invalid_price"
	ErrKeyDishInUse                  = "error.dish_in_use"
	ErrKeyPackageModified            = "error.package_modified"
	ErrKeyValidationFailed           = "error.validation_failed"
	ErrKeyMixedCaterers              = "error.mixed_caterers"
)
