package stats

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AuthorStats is one row of the author_stats materialized view.
type AuthorStats struct {
	AuthorID           uuid.UUID `json:"author_id"`
	PublicationCount   int       `json:"publication_count"`
	CommitteeRoleCount int       `json:"committee_role_count"`
	LeadershipCount    int       `json:"leadership_count"`
	Venues             []string  `json:"venues"`
	FirstYear          *int      `json:"first_year"`
	LastYear           *int      `json:"last_year"`
}

// ConferenceStats is one row of the conference_stats materialized view,
// joined with the conference's submission counters. AcceptanceRate is a
// percentage with one decimal place, nil when the submission count is
// unknown or zero.
type ConferenceStats struct {
	ConferenceID         uuid.UUID        `json:"conference_id"`
	PublicationCount     int              `json:"publication_count"`
	RegularPaperCount    int              `json:"regular_paper_count"`
	PosterCount          int              `json:"poster_count"`
	InvitedTalkCount     int              `json:"invited_talk_count"`
	AwardCount           int              `json:"award_count"`
	CommitteeMemberCount int              `json:"committee_member_count"`
	UniqueAuthorCount    int              `json:"unique_author_count"`
	SubmissionCount      *int             `json:"submission_count"`
	AcceptanceCount      *int             `json:"acceptance_count"`
	AcceptanceRate       *decimal.Decimal `json:"acceptance_rate"`
}

// CoauthorPair is a collaboration edge. AuthorID is always the author the
// lookup was made for, regardless of which side of the pair they sit on in
// the underlying view.
type CoauthorPair struct {
	AuthorID           uuid.UUID `json:"author_id"`
	CoauthorID         uuid.UUID `json:"coauthor_id"`
	SharedPublications int       `json:"shared_publications"`
}
