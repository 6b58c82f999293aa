package stats

import (
	"context"

	"github.com/google/uuid"
)

// Repository reads the reporting views. Rows only exist after the views
// have been refreshed at least once since the underlying data changed.
type Repository interface {
	// GetAuthorStats retrieves the aggregate row for an author.
	// Returns ErrAuthorStatsNotFound when no row exists.
	GetAuthorStats(ctx context.Context, authorID uuid.UUID) (*AuthorStats, error)

	// GetConferenceStats retrieves the aggregate row for a conference,
	// including the submission counters from the conference record.
	// Returns ErrConferenceStatsNotFound when no row exists.
	GetConferenceStats(ctx context.Context, conferenceID uuid.UUID) (*ConferenceStats, error)

	// ListCoauthors retrieves collaboration edges for an author, most
	// shared publications first. The pair is oriented so AuthorID is
	// always the requested author.
	ListCoauthors(ctx context.Context, authorID uuid.UUID) ([]CoauthorPair, error)

	// ListCoauthorPairs retrieves every collaboration edge, one row per
	// unordered pair, most shared publications first.
	ListCoauthorPairs(ctx context.Context) ([]CoauthorPair, error)

	// RefreshAll recomputes every reporting view.
	RefreshAll(ctx context.Context) error
}
