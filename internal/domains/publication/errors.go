package publication

import "errors"

var (
	// Validation errors
	ErrInvalidPaperType   = errors.New("unknown paper type")
	ErrInvalidPosition    = errors.New("author position must be 1 or greater")
	ErrInvalidDuration    = errors.New("duration must not be negative")
	ErrPresenterNotListed = errors.New("presenter must be one of the publication's listed authors")

	// Business rule errors
	ErrPublicationNotFound   = errors.New("publication not found")
	ErrAuthorshipNotFound    = errors.New("authorship not found")
	ErrDuplicateCanonicalKey = errors.New("publication with this canonical key already exists")
	ErrDuplicateAuthorship   = errors.New("author is already listed on this publication")
	ErrDuplicatePosition     = errors.New("another author already holds this position")

	// Missing foreign references: the record being pointed at is not found
	ErrConferenceMissing = errors.New("referenced conference does not exist")
	ErrAuthorMissing     = errors.New("referenced author does not exist")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrPublicationNotFound):
		return "PUBLICATION_NOT_FOUND"
	case errors.Is(err, ErrAuthorshipNotFound):
		return "AUTHORSHIP_NOT_FOUND"
	case errors.Is(err, ErrDuplicateCanonicalKey):
		return "DUPLICATE_CANONICAL_KEY"
	case errors.Is(err, ErrDuplicateAuthorship):
		return "DUPLICATE_AUTHORSHIP"
	case errors.Is(err, ErrDuplicatePosition):
		return "DUPLICATE_POSITION"
	case errors.Is(err, ErrConferenceMissing):
		return "CONFERENCE_NOT_FOUND"
	case errors.Is(err, ErrAuthorMissing):
		return "AUTHOR_NOT_FOUND"
	case errors.Is(err, ErrInvalidPaperType), errors.Is(err, ErrInvalidPosition),
		errors.Is(err, ErrInvalidDuration), errors.Is(err, ErrPresenterNotListed):
		return "VALIDATION_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrPublicationNotFound), errors.Is(err, ErrAuthorshipNotFound),
		errors.Is(err, ErrConferenceMissing), errors.Is(err, ErrAuthorMissing):
		return 404
	case errors.Is(err, ErrDuplicateCanonicalKey), errors.Is(err, ErrDuplicateAuthorship),
		errors.Is(err, ErrDuplicatePosition):
		return 409
	case errors.Is(err, ErrInvalidPaperType), errors.Is(err, ErrInvalidPosition),
		errors.Is(err, ErrInvalidDuration), errors.Is(err, ErrPresenterNotListed):
		return 400
	default:
		return 500
	}
}
