package errors

import "net/http"

var (
	ErrRealEstateNotFound = New(
		"REAL_ESTATE_NOT_FOUND",
		"Real estate not found",
		http.StatusNoContent,
	)

	ErrMunicipalityNotFound = New(
		"MUNICIPALITY_NOT_FOUND",
		"Municipality of the real estate is not configured",
		http.StatusInternalServerError,
	)

	ErrInvalidEGRID = New(
		"INVALID_EGRID",
		"Invalid EGRID provided",
		http.StatusBadRequest,
	)

	ErrInvalidTopic = New(
		"INVALID_TOPIC",
		"Unknown topic requested",
		http.StatusBadRequest,
	)

	ErrInvalidLanguage = New(
		"INVALID_LANGUAGE",
		"Unsupported language",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
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

	ErrDocumentSourceError = New(
		"DOCUMENT_SOURCE_ERROR",
		"Document registry request failed",
		http.StatusBadGateway,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
