package author

import "errors"

var (
	// Validation errors
	ErrInvalidName  = errors.New("author name is invalid")
	ErrInvalidORCID = errors.New("orcid does not match the expected format")

	// Business rule errors
	ErrAuthorNotFound   = errors.New("author not found")
	ErrVariantNotFound  = errors.New("name variant not found")
	ErrDuplicateVariant = errors.New("author already has this normalized name variant")
	ErrAuthorInUse      = errors.New("cannot delete author with authorships or committee roles")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return "AUTHOR_NOT_FOUND"
	case errors.Is(err, ErrVariantNotFound):
		return "VARIANT_NOT_FOUND"
	case errors.Is(err, ErrDuplicateVariant):
		return "DUPLICATE_VARIANT"
	case errors.Is(err, ErrAuthorInUse):
		return "AUTHOR_IN_USE"
	case errors.Is(err, ErrInvalidName), errors.Is(err, ErrInvalidORCID):
		return "VALIDATION_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAuthorNotFound), errors.Is(err, ErrVariantNotFound):
		return 404
	case errors.Is(err, ErrDuplicateVariant), errors.Is(err, ErrAuthorInUse):
		return 409
	case errors.Is(err, ErrInvalidName), errors.Is(err, ErrInvalidORCID):
		return 400
	default:
		return 500
	}
}
