package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"quantumdb-backend/internal/domains/stats"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) stats.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) GetAuthorStats(ctx context.Context, authorID uuid.UUID) (*stats.AuthorStats, error) {
	query := `
        SELECT id, publication_count, committee_role_count, leadership_count,
               venues, first_year, last_year
        FROM author_stats
        WHERE id = $1`

	var s stats.AuthorStats
	err := r.pool.QueryRow(ctx, query, authorID).Scan(
		&s.AuthorID,
		&s.PublicationCount,
		&s.CommitteeRoleCount,
		&s.LeadershipCount,
		&s.Venues,
		&s.FirstYear,
		&s.LastYear,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, stats.ErrAuthorStatsNotFound
		}
		return nil, fmt.Errorf("failed to get author stats: %w", err)
	}
	return &s, nil
}

func (r *postgresRepository) GetConferenceStats(ctx context.Context, conferenceID uuid.UUID) (*stats.ConferenceStats, error) {
	query := `
        SELECT s.id, s.publication_count, s.regular_paper_count, s.poster_count,
               s.invited_talk_count, s.award_count, s.committee_member_count,
               s.unique_author_count, c.submission_count, c.acceptance_count
        FROM conference_stats s
        JOIN conferences c ON c.id = s.id
        WHERE s.id = $1`

	var s stats.ConferenceStats
	err := r.pool.QueryRow(ctx, query, conferenceID).Scan(
		&s.ConferenceID,
		&s.PublicationCount,
		&s.RegularPaperCount,
		&s.PosterCount,
		&s.InvitedTalkCount,
		&s.AwardCount,
		&s.CommitteeMemberCount,
		&s.UniqueAuthorCount,
		&s.SubmissionCount,
		&s.AcceptanceCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, stats.ErrConferenceStatsNotFound
		}
		return nil, fmt.Errorf("failed to get conference stats: %w", err)
	}
	return &s, nil
}

func (r *postgresRepository) ListCoauthors(ctx context.Context, authorID uuid.UUID) ([]stats.CoauthorPair, error) {
	query := `
        SELECT author_id, coauthor_id, shared_publications
        FROM coauthor_pairs
        WHERE author_id = $1 OR coauthor_id = $1
        ORDER BY shared_publications DESC`

	rows, err := r.pool.Query(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list coauthors: %w", err)
	}
	defer rows.Close()

	var pairs []stats.CoauthorPair
	for rows.Next() {
		var p stats.CoauthorPair
		if err := rows.Scan(&p.AuthorID, &p.CoauthorID, &p.SharedPublications); err != nil {
			return nil, fmt.Errorf("failed to scan coauthor pair: %w", err)
		}
		// The view stores each pair once with the lower id first;
		// orient it toward the requested author.
		if p.CoauthorID == authorID {
			p.AuthorID, p.CoauthorID = p.CoauthorID, p.AuthorID
		}
		pairs = append(pairs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate coauthor pairs: %w", err)
	}
	return pairs, nil
}

func (r *postgresRepository) ListCoauthorPairs(ctx context.Context) ([]stats.CoauthorPair, error) {
	query := `
        SELECT author_id, coauthor_id, shared_publications
        FROM coauthor_pairs
        ORDER BY shared_publications DESC, author_id, coauthor_id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list coauthor pairs: %w", err)
	}
	defer rows.Close()

	var pairs []stats.CoauthorPair
	for rows.Next() {
		var p stats.CoauthorPair
		if err := rows.Scan(&p.AuthorID, &p.CoauthorID, &p.SharedPublications); err != nil {
			return nil, fmt.Errorf("failed to scan coauthor pair: %w", err)
		}
		pairs = append(pairs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate coauthor pairs: %w", err)
	}
	return pairs, nil
}

func (r *postgresRepository) RefreshAll(ctx context.Context) error {
	// CONCURRENTLY keeps the views readable during the rebuild; each
	// view carries the unique index this requires.
	views := []string{"author_stats", "conference_stats", "coauthor_pairs"}
	for _, view := range views {
		if _, err := r.pool.Exec(ctx, "REFRESH MATERIALIZED VIEW CONCURRENTLY "+view); err != nil {
			return fmt.Errorf("failed to refresh %s: %w", view, err)
		}
	}
	return nil
}
