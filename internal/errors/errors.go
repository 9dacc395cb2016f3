package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in this tenant"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// UpstreamError represents a failure in a collaborator the request depends on
// (database write, mail dispatch). The raw message is preserved because the
// translation layer matches on it.
type UpstreamError struct {
	Message string
}

func (e *UpstreamError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrTenantNotFound     = &NotFoundError{Entity: "tenant"}
	ErrProfileNotFound    = &NotFoundError{Entity: "profile"}
	ErrRoleNotFound       = &NotFoundError{Entity: "role"}
	ErrInvitationNotFound = &NotFoundError{Entity: "invitation"}
	ErrMembershipNotFound = &NotFoundError{Entity: "membership"}
	ErrBookingNotFound    = &NotFoundError{Entity: "booking"}
)

// Already Exists Errors
var (
	ErrProfileExists    = &AlreadyExistsError{Entity: "profile", Context: "with this email"}
	ErrTenantExists     = &AlreadyExistsError{Entity: "tenant", Context: "with this slug"}
	ErrMembershipExists = &AlreadyExistsError{Entity: "membership", Context: "for this user and tenant"}
)

// Invitation Lifecycle Errors
var (
	// ErrInvitationInvalid covers both the expired and the already-accepted
	// terminal states. Callers that need to distinguish them inspect the
	// invitation row directly.
	ErrInvitationInvalid = errors.New("invitation is expired or already accepted")
	ErrEmailMismatch     = errors.New("session email does not match invitation email")
)

// Authentication / Authorization Errors
var (
	ErrMissingAuthHeader   = &AuthenticationError{Message: "Missing Authorization header"}
	ErrInvalidSession      = &AuthenticationError{Message: "Unauthorized: invalid session"}
	ErrInvalidCredentials  = &AuthenticationError{Message: "Invalid login credentials"}
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token has expired")
	ErrInvalidOTP          = errors.New("token has expired or is invalid")

	ErrAdminRequired   = &AuthorizationError{Message: "Forbidden: solo los admins pueden invitar empleados"}
	ErrNotTenantMember = &AuthorizationError{Message: "user does not belong to this tenant"}
	ErrManagerRequired = &AuthorizationError{Message: "solo los admins y managers pueden crear reservas"}
)

// Business Logic Errors
var (
	ErrInvalidTimeRange        = errors.New("invalid time range")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrMailerNotConfigured     = errors.New("mailer is not configured")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsUpstream checks if an error is an UpstreamError
func IsUpstream(err error) bool {
	var upstreamErr *UpstreamError
	return errors.As(err, &upstreamErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewUpstreamError creates a new UpstreamError
func NewUpstreamError(message string) error {
	return &UpstreamError{Message: message}
}
