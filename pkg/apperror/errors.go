package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string            `json:"error_code"`
	Message    string            `json:"message"`
	HTTPStatus int               `json:"-"`
	Meta       map[string]any    `json:"-"` // Extra response fields (e.g. needs_onboarding)
	Err        error             `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Authentication & Authorization (AUTH) ----

// ErrUnauthenticated means the bearer token is missing or does not resolve to
// an identity.
func ErrUnauthenticated() *AppError {
	return New("AUTH_001", "Missing or invalid authorization token", http.StatusUnauthorized)
}

// ErrBanned means the caller's profile role is banned.
func ErrBanned() *AppError {
	return New("AUTH_002", "User is banned", http.StatusForbidden)
}

// ErrAdminRequired means the caller is not an admin.
func ErrAdminRequired() *AppError {
	return New("AUTH_002", "Admin access required", http.StatusForbidden)
}

// ErrBootstrapRejected covers a wrong bootstrap secret or an already
// bootstrapped system.
func ErrBootstrapRejected(message string) *AppError {
	return New("AUTH_002", message, http.StatusForbidden)
}

// ---- Request validation (REQ) ----

// Validation returns an invalid-request error with a caller-facing message.
func Validation(message string) *AppError {
	return New("REQ_001", message, http.StatusBadRequest)
}

// ErrSelfPurchase rejects buying one's own listing.
func ErrSelfPurchase() *AppError {
	return New("REQ_001", "Cannot buy your own listing", http.StatusBadRequest)
}

// ErrNotFound reports a missing (or inactive) entity.
func ErrNotFound(entity string) *AppError {
	return New("REQ_002", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Payment workflow (PAY) ----

// ErrSellerNotOnboarded means the listing's seller cannot receive funds yet.
// The buyer's UI must redirect away from checkout rather than retry, so the
// response carries a distinct needs_onboarding marker.
func ErrSellerNotOnboarded() *AppError {
	e := New("PAY_001", "Seller payment account not ready", http.StatusBadRequest)
	e.Meta = map[string]any{"needs_onboarding": true}
	return e
}

// ---- Webhook trust (SEC) ----

// ErrMissingSignature reports an absent webhook signature header.
func ErrMissingSignature() *AppError {
	return New("SEC_001", "Missing webhook signature", http.StatusBadRequest)
}

// ErrInvalidSignature reports a webhook signature that does not match the
// payload and shared secret.
func ErrInvalidSignature(err error) *AppError {
	return Wrap("SEC_001", "Invalid webhook signature", http.StatusBadRequest, err)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps a datastore or payment-platform failure not
// attributable to caller input.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// ErrRateLimitExceeded reports too many requests in the current window.
func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}
