package committee

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"quantumdb-backend/internal/shared"
)

// Type is the closed set of committee categories.
type Type string

const (
	TypeOrganizing Type = "oc"
	TypeProgram    Type = "pc"
	TypeSteering   Type = "sc"
	TypeLocal      Type = "local"
)

// Types returns all known committee types.
func Types() []Type {
	return []Type{TypeOrganizing, TypeProgram, TypeSteering, TypeLocal}
}

// ParseType converts external input into a committee Type.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCommittee, s)
	}
	return t, nil
}

func (t Type) Valid() bool {
	switch t {
	case TypeOrganizing, TypeProgram, TypeSteering, TypeLocal:
		return true
	}
	return false
}

func (t Type) String() string {
	return string(t)
}

// Position is the closed set of positions within a committee.
type Position string

const (
	PositionChair     Position = "chair"
	PositionCoChair   Position = "co_chair"
	PositionAreaChair Position = "area_chair"
	PositionMember    Position = "member"
)

// Positions returns all known committee positions.
func Positions() []Position {
	return []Position{PositionChair, PositionCoChair, PositionAreaChair, PositionMember}
}

// ParsePosition converts external input into a Position.
func ParsePosition(s string) (Position, error) {
	p := Position(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}
	return p, nil
}

func (p Position) Valid() bool {
	switch p {
	case PositionChair, PositionCoChair, PositionAreaChair, PositionMember:
		return true
	}
	return false
}

func (p Position) String() string {
	return string(p)
}

// IsLeadership reports whether the position counts as a leadership role.
func (p Position) IsLeadership() bool {
	return p == PositionChair || p == PositionCoChair
}

// Role is one committee assignment. A person may hold several distinct
// (committee, position) tuples at one conference, never the same tuple twice.
type Role struct {
	ID           uuid.UUID `json:"id" db:"id"`
	ConferenceID uuid.UUID `json:"conference_id" db:"conference_id"`
	AuthorID     uuid.UUID `json:"author_id" db:"author_id"`
	Committee    Type      `json:"committee" db:"committee"`
	Position     Position  `json:"position" db:"position"`

	RoleTitle   *string    `json:"role_title" db:"role_title"`
	TermStart   *time.Time `json:"term_start" db:"term_start"`
	TermEnd     *time.Time `json:"term_end" db:"term_end"`
	Affiliation *string    `json:"affiliation" db:"affiliation"`

	Metadata shared.Metadata `json:"metadata" db:"metadata"`

	Creator   string    `json:"creator" db:"creator"`
	Modifier  string    `json:"modifier" db:"modifier"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
