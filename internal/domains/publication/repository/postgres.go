package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"quantumdb-backend/internal/domains/publication"
	"quantumdb-backend/pkg/database"
)

// postgresRepository implements publication.Repository on pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new publication repository instance.
func NewPostgresRepository(pool *pgxpool.Pool) publication.Repository {
	return &postgresRepository{pool: pool}
}

const publicationColumns = `
    id, conference_id, canonical_key, doi, arxiv_ids, title, abstract,
    paper_type, pages, session_name, presentation_url, video_url, youtube_id,
    award, award_date, published_date,
    presenter_author_id, is_proceedings_track,
    talk_date, talk_time, duration_minutes,
    metadata, creator, modifier, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPublication(row rowScanner) (*publication.Publication, error) {
	var p publication.Publication
	err := row.Scan(
		&p.ID, &p.ConferenceID, &p.CanonicalKey, &p.DOI, &p.ArxivIDs, &p.Title, &p.Abstract,
		&p.PaperType, &p.Pages, &p.SessionName, &p.PresentationURL, &p.VideoURL, &p.YoutubeID,
		&p.Award, &p.AwardDate, &p.PublishedDate,
		&p.PresenterAuthorID, &p.IsProceedingsTrack,
		&p.TalkDate, &p.TalkTime, &p.DurationMinutes,
		&p.Metadata, &p.Creator, &p.Modifier, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func mapPublicationWriteError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}
	switch pgErr.Code {
	case "23505": // unique_violation
		switch {
		case strings.Contains(pgErr.ConstraintName, "canonical_key"):
			return publication.ErrDuplicateCanonicalKey
		case strings.Contains(pgErr.ConstraintName, "publication_author"):
			return publication.ErrDuplicateAuthorship
		case strings.Contains(pgErr.ConstraintName, "publication_position"):
			return publication.ErrDuplicatePosition
		}
	case "23503": // foreign_key_violation
		switch {
		case strings.Contains(pgErr.ConstraintName, "conference"):
			return publication.ErrConferenceMissing
		case strings.Contains(pgErr.ConstraintName, "presenter"):
			return publication.ErrAuthorMissing
		case strings.Contains(pgErr.ConstraintName, "publication"):
			return publication.ErrPublicationNotFound
		case strings.Contains(pgErr.ConstraintName, "author"):
			return publication.ErrAuthorMissing
		}
	}
	return nil
}

func (r *postgresRepository) Create(ctx context.Context, p *publication.Publication) (*publication.Publication, error) {
	query := `
        INSERT INTO publications (
            conference_id, canonical_key, doi, arxiv_ids, title, abstract,
            paper_type, pages, session_name, presentation_url, video_url, youtube_id,
            award, award_date, published_date, is_proceedings_track,
            talk_date, talk_time, duration_minutes,
            metadata, creator, modifier
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
                $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
        RETURNING` + publicationColumns

	arxivIDs := p.ArxivIDs
	if arxivIDs == nil {
		arxivIDs = []string{}
	}

	row := r.pool.QueryRow(ctx, query,
		p.ConferenceID, p.CanonicalKey, p.DOI, arxivIDs, p.Title, p.Abstract,
		p.PaperType, p.Pages, p.SessionName, p.PresentationURL, p.VideoURL, p.YoutubeID,
		p.Award, p.AwardDate, p.PublishedDate, p.IsProceedingsTrack,
		p.TalkDate, p.TalkTime, p.DurationMinutes,
		p.Metadata.OrEmpty(), p.Creator, p.Modifier,
	)

	created, err := scanPublication(row)
	if err != nil {
		if mapped := mapPublicationWriteError(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to create publication: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*publication.Publication, error) {
	query := `SELECT` + publicationColumns + ` FROM publications WHERE id = $1`

	p, err := scanPublication(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, publication.ErrPublicationNotFound
		}
		return nil, fmt.Errorf("failed to get publication by id: %w", err)
	}
	return p, nil
}

func (r *postgresRepository) GetByCanonicalKey(ctx context.Context, key string) (*publication.Publication, error) {
	query := `SELECT` + publicationColumns + ` FROM publications WHERE canonical_key = $1`

	p, err := scanPublication(r.pool.QueryRow(ctx, query, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, publication.ErrPublicationNotFound
		}
		return nil, fmt.Errorf("failed to get publication by canonical key: %w", err)
	}
	return p, nil
}

func (r *postgresRepository) List(ctx context.Context, filter publication.PublicationFilter) ([]publication.Publication, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	var (
		query string
		args  []any
	)
	switch {
	case strings.TrimSpace(filter.Search) != "":
		// Full-text search ranked by relevance.
		query = `SELECT` + publicationColumns + `
            FROM publications
            WHERE search_vector @@ plainto_tsquery('english', $1)
            ORDER BY ts_rank(search_vector, plainto_tsquery('english', $1)) DESC
            LIMIT $2 OFFSET $3`
		args = []any{filter.Search, limit, offset}
	case filter.ConferenceID != nil && filter.PaperType != nil:
		query = `SELECT` + publicationColumns + `
            FROM publications
            WHERE conference_id = $1 AND paper_type = $2
            ORDER BY session_name, title
            LIMIT $3 OFFSET $4`
		args = []any{*filter.ConferenceID, *filter.PaperType, limit, offset}
	case filter.ConferenceID != nil:
		query = `SELECT` + publicationColumns + `
            FROM publications
            WHERE conference_id = $1
            ORDER BY session_name, title
            LIMIT $2 OFFSET $3`
		args = []any{*filter.ConferenceID, limit, offset}
	case filter.PaperType != nil:
		query = `SELECT` + publicationColumns + `
            FROM publications
            WHERE paper_type = $1
            ORDER BY created_at DESC
            LIMIT $2 OFFSET $3`
		args = []any{*filter.PaperType, limit, offset}
	default:
		query = `SELECT` + publicationColumns + `
            FROM publications
            ORDER BY created_at DESC
            LIMIT $1 OFFSET $2`
		args = []any{limit, offset}
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list publications: %w", err)
	}
	defer rows.Close()

	var list []publication.Publication
	for rows.Next() {
		p, err := scanPublication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan publication row: %w", err)
		}
		list = append(list, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate publications: %w", err)
	}
	return list, nil
}

func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, req *publication.UpdatePublicationRequest) (*publication.Publication, error) {
	query := `
        UPDATE publications SET
            doi              = COALESCE($2, doi),
            arxiv_ids        = COALESCE($3, arxiv_ids),
            title            = COALESCE($4, title),
            abstract         = COALESCE($5, abstract),
            paper_type       = COALESCE($6, paper_type),
            pages            = COALESCE($7, pages),
            session_name     = COALESCE($8, session_name),
            presentation_url = COALESCE($9, presentation_url),
            video_url        = COALESCE($10, video_url),
            youtube_id       = COALESCE($11, youtube_id),
            award            = COALESCE($12, award),
            award_date       = COALESCE($13, award_date),
            published_date   = COALESCE($14, published_date),
            presenter_author_id  = COALESCE($15, presenter_author_id),
            is_proceedings_track = COALESCE($16, is_proceedings_track),
            talk_date        = COALESCE($17, talk_date),
            talk_time        = COALESCE($18, talk_time),
            duration_minutes = COALESCE($19, duration_minutes),
            metadata         = COALESCE($20, metadata),
            modifier         = $21,
            updated_at       = NOW()
        WHERE id = $1
        RETURNING` + publicationColumns

	var arxivIDs any
	if req.ArxivIDs != nil {
		arxivIDs = req.ArxivIDs
	}
	var metadata any
	if req.Metadata != nil {
		metadata = req.Metadata
	}
	var paperType any
	if req.PaperType != nil {
		paperType = *req.PaperType
	}

	row := r.pool.QueryRow(ctx, query, id,
		req.DOI, arxivIDs, req.Title, req.Abstract,
		paperType, req.Pages, req.SessionName, req.PresentationURL, req.VideoURL, req.YoutubeID,
		req.Award, req.AwardDate, req.PublishedDate,
		req.PresenterAuthorID, req.IsProceedingsTrack,
		req.TalkDate, req.TalkTime, req.DurationMinutes,
		metadata, req.Modifier,
	)

	updated, err := scanPublication(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, publication.ErrPublicationNotFound
		}
		if mapped := mapPublicationWriteError(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to update publication: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) ClearPresenter(ctx context.Context, id uuid.UUID, modifier string) (*publication.Publication, error) {
	query := `
        UPDATE publications SET
            presenter_author_id = NULL,
            modifier            = $2,
            updated_at          = NOW()
        WHERE id = $1
        RETURNING` + publicationColumns

	updated, err := scanPublication(r.pool.QueryRow(ctx, query, id, modifier))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, publication.ErrPublicationNotFound
		}
		return nil, fmt.Errorf("failed to clear presenter: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM publications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete publication: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return publication.ErrPublicationNotFound
	}
	return nil
}

const authorshipColumns = `
    id, publication_id, author_id, author_position, published_as_name, affiliation,
    metadata, creator, modifier, created_at, updated_at`

func scanAuthorship(row rowScanner) (*publication.Authorship, error) {
	var a publication.Authorship
	err := row.Scan(
		&a.ID, &a.PublicationID, &a.AuthorID, &a.AuthorPosition, &a.PublishedAsName, &a.Affiliation,
		&a.Metadata, &a.Creator, &a.Modifier, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepository) AddAuthorship(ctx context.Context, a *publication.Authorship) (*publication.Authorship, error) {
	query := `
        INSERT INTO authorships (
            publication_id, author_id, author_position, published_as_name,
            affiliation, metadata, creator, modifier
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING` + authorshipColumns

	row := r.pool.QueryRow(ctx, query,
		a.PublicationID, a.AuthorID, a.AuthorPosition, a.PublishedAsName,
		a.Affiliation, a.Metadata.OrEmpty(), a.Creator, a.Modifier,
	)

	created, err := scanAuthorship(row)
	if err != nil {
		if mapped := mapPublicationWriteError(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to add authorship: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) GetAuthorship(ctx context.Context, id uuid.UUID) (*publication.Authorship, error) {
	query := `SELECT` + authorshipColumns + ` FROM authorships WHERE id = $1`

	a, err := scanAuthorship(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, publication.ErrAuthorshipNotFound
		}
		return nil, fmt.Errorf("failed to get authorship: %w", err)
	}
	return a, nil
}

func (r *postgresRepository) ListAuthorships(ctx context.Context, filter publication.AuthorshipFilter) ([]publication.Authorship, error) {
	var (
		conditions []string
		args       []any
	)
	if filter.PublicationID != nil {
		args = append(args, *filter.PublicationID)
		conditions = append(conditions, fmt.Sprintf("publication_id = $%d", len(args)))
	}
	if filter.AuthorID != nil {
		args = append(args, *filter.AuthorID)
		conditions = append(conditions, fmt.Sprintf("author_id = $%d", len(args)))
	}

	query := `SELECT` + authorshipColumns + ` FROM authorships`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY publication_id, author_position`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list authorships: %w", err)
	}
	defer rows.Close()

	var list []publication.Authorship
	for rows.Next() {
		a, err := scanAuthorship(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan authorship row: %w", err)
		}
		list = append(list, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate authorships: %w", err)
	}
	return list, nil
}

func (r *postgresRepository) UpdateAuthorship(ctx context.Context, id uuid.UUID, req *publication.UpdateAuthorshipRequest) (*publication.Authorship, error) {
	query := `
        UPDATE authorships SET
            author_position   = COALESCE($2, author_position),
            published_as_name = COALESCE($3, published_as_name),
            affiliation       = COALESCE($4, affiliation),
            metadata          = COALESCE($5, metadata),
            modifier          = $6,
            updated_at        = NOW()
        WHERE id = $1
        RETURNING` + authorshipColumns

	var metadata any
	if req.Metadata != nil {
		metadata = req.Metadata
	}

	row := r.pool.QueryRow(ctx, query, id,
		req.AuthorPosition, req.PublishedAsName, req.Affiliation, metadata, req.Modifier,
	)

	updated, err := scanAuthorship(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, publication.ErrAuthorshipNotFound
		}
		if mapped := mapPublicationWriteError(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to update authorship: %w", err)
	}
	return updated, nil
}

// DeleteAuthorship removes the row and clears the presenter annotation it may
// have backed, atomically. A presenter must always be a listed author.
func (r *postgresRepository) DeleteAuthorship(ctx context.Context, id uuid.UUID) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		var publicationID, authorID uuid.UUID
		err := tx.QueryRow(ctx,
			`SELECT publication_id, author_id FROM authorships WHERE id = $1 FOR UPDATE`,
			id,
		).Scan(&publicationID, &authorID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return publication.ErrAuthorshipNotFound
			}
			return fmt.Errorf("failed to load authorship for delete: %w", err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM authorships WHERE id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete authorship: %w", err)
		}

		_, err = tx.Exec(ctx,
			`UPDATE publications
             SET presenter_author_id = NULL, updated_at = NOW()
             WHERE id = $1 AND presenter_author_id = $2`,
			publicationID, authorID,
		)
		if err != nil {
			return fmt.Errorf("failed to clear presenter: %w", err)
		}
		return nil
	})
}

func (r *postgresRepository) AuthorshipExists(ctx context.Context, publicationID, authorID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM authorships WHERE publication_id = $1 AND author_id = $2)`,
		publicationID, authorID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check authorship existence: %w", err)
	}
	return exists, nil
}
