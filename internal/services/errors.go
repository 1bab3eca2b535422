package services

import "net/http"

// APIError carries the HTTP status and the client-facing detail message
// for an expected failure. Handlers encode it as {"detail": ...};
// anything that is not an *APIError surfaces as a 500.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string { return e.Detail }

var (
	ErrAuthRequired       = &APIError{Status: http.StatusUnauthorized, Detail: "Authentication required for this action"}
	ErrInvalidCredentials = &APIError{Status: http.StatusUnauthorized, Detail: "Invalid teacher credentials"}
	ErrBadExpirationDate  = &APIError{Status: http.StatusBadRequest, Detail: "Invalid expiration_date format. Use ISO format."}
	ErrBadStartDate       = &APIError{Status: http.StatusBadRequest, Detail: "Invalid start_date format. Use ISO format."}
	ErrInvalidID          = &APIError{Status: http.StatusBadRequest, Detail: "Invalid announcement ID"}
	ErrNotFound           = &APIError{Status: http.StatusNotFound, Detail: "Announcement not found"}
)
