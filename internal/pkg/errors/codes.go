package errors

import "net/http"

var (
	ErrInvalidEmail = New(
		"INVALID_EMAIL",
		"Invalid email address",
		http.StatusBadRequest,
	)

	ErrAuthFailed = New(
		"AUTH_FAILED",
		"Invalid email or password",
		http.StatusUnauthorized,
	)

	ErrEmailTaken = New(
		"EMAIL_TAKEN",
		"Account with this email already exists",
		http.StatusConflict,
	)

	ErrConfirmationRequired = New(
		"CONFIRMATION_REQUIRED",
		"Check email for confirmation link (if configured)",
		http.StatusAccepted,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrSearchUnavailable = New(
		"SEARCH_UNAVAILABLE",
		"Search API key is missing",
		http.StatusServiceUnavailable,
	)

	ErrSearchFailed = New(
		"SEARCH_FAILED",
		"Failed to fetch places",
		http.StatusBadGateway,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
