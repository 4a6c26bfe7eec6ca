package api

import (
	"errors"
	"net/http"

	"github.com/planroom/teamplan-api/internal/api/shared"
	"github.com/planroom/teamplan-api/internal/domain"
	"github.com/planroom/teamplan-api/internal/service"
	"github.com/planroom/teamplan-api/internal/service/auth"
	"github.com/planroom/teamplan-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, service.ErrPolicyDenied):
		return http.StatusForbidden

	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Conflict errors
	case store.IsDuplicateError(err):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrEmptyRecipient),
		isDomainValidationError(err):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid credentials"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken):
		return "Invalid token"

	case errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType):
		return "Invalid refresh token"

	case errors.Is(err, service.ErrPolicyDenied):
		return "You do not have permission to perform this action"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrProjectNotFound):
		return "Project not found"

	case errors.Is(err, store.ErrTaskNotFound):
		return "Task not found"

	case errors.Is(err, store.ErrMilestoneNotFound):
		return "Milestone not found"

	case errors.Is(err, store.ErrNotificationNotFound):
		return "Notification not found"

	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"

	case errors.Is(err, store.ErrUsernameExists):
		return "Username already exists"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Referenced entity does not exist"

	case isDomainValidationError(err),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrEmptyRecipient):
		return "Invalid request data: " + err.Error()

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError maps err to a status code and safe message and writes the
// response. An explicit userMessage overrides the derived one.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, userMessage string) {
	status := MapErrorToStatusCode(err)
	if userMessage == "" {
		userMessage = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, userMessage, err)
}

// isDomainValidationError reports whether err is (or wraps) a field-level
// validation error from the domain layer. Sentinel domain errors defined as
// plain errors.New values are matched separately in the switches above.
func isDomainValidationError(err error) bool {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return true
	}
	return isDomainSentinel(err)
}

func isDomainSentinel(err error) bool {
	for _, sentinel := range []error{
		domain.ErrEmptyUserID, domain.ErrEmptyEmail, domain.ErrInvalidEmail,
		domain.ErrEmptyUsername, domain.ErrPasswordTooShort, domain.ErrPasswordTooLong,
		domain.ErrEmptyPassword, domain.ErrEmptyHashedPassword,
		domain.ErrEmptyProjectID, domain.ErrEmptyProjectName, domain.ErrProjectNameLength,
		domain.ErrEmptyProjectOwner,
		domain.ErrEmptyTaskID, domain.ErrEmptyTaskProject, domain.ErrEmptyTaskName,
		domain.ErrTaskNameLength, domain.ErrEmptyTaskDueDate,
		domain.ErrEmptyMilestoneID, domain.ErrEmptyMilestoneProject,
		domain.ErrEmptyMilestoneName, domain.ErrMilestoneNameLength,
		domain.ErrEmptyMilestoneDueDate,
		domain.ErrEmptyNotificationID, domain.ErrEmptyNotificationMessage,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
