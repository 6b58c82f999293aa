package committee

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissingReferencesMapToNotFound(t *testing.T) {
	assert.Equal(t, 404, ToHTTPStatus(ErrConferenceMissing))
	assert.Equal(t, 404, ToHTTPStatus(ErrAuthorMissing))
	assert.Equal(t, "CONFERENCE_NOT_FOUND", ToErrorCode(ErrConferenceMissing))
	assert.Equal(t, "AUTHOR_NOT_FOUND", ToErrorCode(ErrAuthorMissing))
}

func TestErrorClassification(t *testing.T) {
	assert.Equal(t, 404, ToHTTPStatus(ErrRoleNotFound))
	assert.Equal(t, 409, ToHTTPStatus(ErrDuplicateRole))
	assert.Equal(t, 400, ToHTTPStatus(ErrInvalidCommittee))
	assert.Equal(t, 400, ToHTTPStatus(ErrInvalidTermRange))
}
