package stats

import (
	"context"

	"github.com/google/uuid"
)

// Service serves cached reporting data and controls view refreshes.
type Service interface {
	// GetAuthorStats returns the aggregate row for an author.
	GetAuthorStats(ctx context.Context, authorID uuid.UUID) (*AuthorStats, error)

	// GetConferenceStats returns the aggregate row for a conference with
	// the acceptance rate derived from its submission counters.
	GetConferenceStats(ctx context.Context, conferenceID uuid.UUID) (*ConferenceStats, error)

	// ListCoauthors returns collaboration edges for an author.
	ListCoauthors(ctx context.Context, authorID uuid.UUID) ([]CoauthorPair, error)

	// ListCoauthorPairs returns the whole collaboration graph, one edge
	// per unordered pair.
	ListCoauthorPairs(ctx context.Context) ([]CoauthorPair, error)

	// Refresh recomputes the reporting views and drops cached entries.
	Refresh(ctx context.Context) error
}
