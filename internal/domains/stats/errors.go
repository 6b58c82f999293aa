package stats

import "errors"

var (
	ErrAuthorStatsNotFound     = errors.New("author stats not found")
	ErrConferenceStatsNotFound = errors.New("conference stats not found")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrAuthorStatsNotFound):
		return "AUTHOR_STATS_NOT_FOUND"
	case errors.Is(err, ErrConferenceStatsNotFound):
		return "CONFERENCE_STATS_NOT_FOUND"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAuthorStatsNotFound), errors.Is(err, ErrConferenceStatsNotFound):
		return 404
	default:
		return 500
	}
}
