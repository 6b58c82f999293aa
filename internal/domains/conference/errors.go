package conference

import "errors"

var (
	// Validation errors
	ErrInvalidVenue     = errors.New("unknown conference venue")
	ErrInvalidYear      = errors.New("conference year out of range")
	ErrInvalidDateRange = errors.New("conference end date before start date")
	ErrInvalidSlug      = errors.New("conference slug is invalid")

	// Business rule errors
	ErrConferenceNotFound  = errors.New("conference not found")
	ErrDuplicateConference = errors.New("conference with this venue and year already exists")
	ErrConferenceInUse     = errors.New("cannot delete conference with publications or committee roles")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrConferenceNotFound):
		return "CONFERENCE_NOT_FOUND"
	case errors.Is(err, ErrDuplicateConference):
		return "DUPLICATE_CONFERENCE"
	case errors.Is(err, ErrConferenceInUse):
		return "CONFERENCE_IN_USE"
	case errors.Is(err, ErrInvalidVenue), errors.Is(err, ErrInvalidYear),
		errors.Is(err, ErrInvalidDateRange), errors.Is(err, ErrInvalidSlug):
		return "VALIDATION_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrConferenceNotFound):
		return 404
	case errors.Is(err, ErrDuplicateConference), errors.Is(err, ErrConferenceInUse):
		return 409
	case errors.Is(err, ErrInvalidVenue), errors.Is(err, ErrInvalidYear),
		errors.Is(err, ErrInvalidDateRange), errors.Is(err, ErrInvalidSlug):
		return 400
	default:
		return 500
	}
}
