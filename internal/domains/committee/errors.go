package committee

import "errors"

var (
	// Validation errors
	ErrInvalidCommittee = errors.New("unknown committee type")
	ErrInvalidPosition  = errors.New("unknown committee position")
	ErrInvalidTermRange = errors.New("term end before term start")

	// Business rule errors
	ErrRoleNotFound  = errors.New("committee role not found")
	ErrDuplicateRole = errors.New("this committee role tuple already exists")

	// Missing foreign references: the record being pointed at is not found
	ErrConferenceMissing = errors.New("referenced conference does not exist")
	ErrAuthorMissing     = errors.New("referenced author does not exist")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrRoleNotFound):
		return "ROLE_NOT_FOUND"
	case errors.Is(err, ErrDuplicateRole):
		return "DUPLICATE_ROLE"
	case errors.Is(err, ErrConferenceMissing):
		return "CONFERENCE_NOT_FOUND"
	case errors.Is(err, ErrAuthorMissing):
		return "AUTHOR_NOT_FOUND"
	case errors.Is(err, ErrInvalidCommittee), errors.Is(err, ErrInvalidPosition),
		errors.Is(err, ErrInvalidTermRange):
		return "VALIDATION_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrRoleNotFound),
		errors.Is(err, ErrConferenceMissing), errors.Is(err, ErrAuthorMissing):
		return 404
	case errors.Is(err, ErrDuplicateRole):
		return 409
	case errors.Is(err, ErrInvalidCommittee), errors.Is(err, ErrInvalidPosition),
		errors.Is(err, ErrInvalidTermRange):
		return 400
	default:
		return 500
	}
}
