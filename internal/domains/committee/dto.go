package committee

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"quantumdb-backend/internal/shared"
)

// CreateRoleRequest registers a committee assignment.
type CreateRoleRequest struct {
	ConferenceID uuid.UUID `json:"conference_id"`
	AuthorID     uuid.UUID `json:"author_id"`
	Committee    string    `json:"committee"`
	Position     string    `json:"position"`

	RoleTitle   *string    `json:"role_title,omitempty"`
	TermStart   *time.Time `json:"term_start,omitempty"`
	TermEnd     *time.Time `json:"term_end,omitempty"`
	Affiliation *string    `json:"affiliation,omitempty"`

	Metadata shared.Metadata `json:"metadata,omitempty"`

	Creator string `json:"creator"`
}

func (r CreateRoleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ConferenceID,
			validation.By(uuidRule),
		),
		validation.Field(&r.AuthorID,
			validation.By(uuidRule),
		),
		validation.Field(&r.Committee,
			validation.Required.Error("committee is required"),
			validation.By(committeeRule),
		),
		validation.Field(&r.Position,
			validation.Required.Error("position is required"),
			validation.By(positionRule),
		),
		validation.Field(&r.Creator,
			validation.Required.Error("creator is required"),
		),
	)
}

// UpdateRoleRequest is a partial update. The identity tuple
// (conference, author, committee, position) is immutable; delete and
// recreate to move someone between committees.
type UpdateRoleRequest struct {
	RoleTitle   *string    `json:"role_title,omitempty"`
	TermStart   *time.Time `json:"term_start,omitempty"`
	TermEnd     *time.Time `json:"term_end,omitempty"`
	Affiliation *string    `json:"affiliation,omitempty"`

	Metadata shared.Metadata `json:"metadata,omitempty"`

	Modifier string `json:"modifier"`
}

func (r UpdateRoleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Modifier,
			validation.Required.Error("modifier is required"),
		),
	)
}

// RoleFilter narrows List results.
type RoleFilter struct {
	ConferenceID *uuid.UUID `json:"conference_id,omitempty"`
	AuthorID     *uuid.UUID `json:"author_id,omitempty"`
	Committee    *Type      `json:"committee,omitempty"`
	Position     *Position  `json:"position,omitempty"`
}

func uuidRule(value interface{}) error {
	id, _ := value.(uuid.UUID)
	if id == uuid.Nil {
		return validation.NewError("validation_required", "must be a valid id")
	}
	return nil
}

func committeeRule(value interface{}) error {
	s, _ := value.(string)
	if _, err := ParseType(s); err != nil {
		return ErrInvalidCommittee
	}
	return nil
}

func positionRule(value interface{}) error {
	s, _ := value.(string)
	if _, err := ParsePosition(s); err != nil {
		return ErrInvalidPosition
	}
	return nil
}
