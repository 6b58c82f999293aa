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

	"quantumdb-backend/internal/domains/conference"
)

// postgresRepository implements conference.Repository on pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new conference repository instance.
func NewPostgresRepository(pool *pgxpool.Pool) conference.Repository {
	return &postgresRepository{pool: pool}
}

const conferenceColumns = `
    id, venue, year, start_date, end_date,
    city, country, country_code, is_virtual, is_hybrid, timezone, venue_name,
    website_url, proceedings_url, proceedings_publisher, proceedings_volume, proceedings_doi,
    submission_count, acceptance_count,
    archive_url, archive_organizers_url, archive_pc_url, archive_steering_url, archive_program_url,
    metadata, creator, modifier, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanConference(row rowScanner) (*conference.Conference, error) {
	var c conference.Conference
	err := row.Scan(
		&c.ID, &c.Venue, &c.Year, &c.StartDate, &c.EndDate,
		&c.City, &c.Country, &c.CountryCode, &c.IsVirtual, &c.IsHybrid, &c.Timezone, &c.VenueName,
		&c.WebsiteURL, &c.ProceedingsURL, &c.ProceedingsPublisher, &c.ProceedingsVolume, &c.ProceedingsDOI,
		&c.SubmissionCount, &c.AcceptanceCount,
		&c.ArchiveURL, &c.ArchiveOrganizersURL, &c.ArchivePCURL, &c.ArchiveSteeringURL, &c.ArchiveProgramURL,
		&c.Metadata, &c.Creator, &c.Modifier, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepository) Create(ctx context.Context, c *conference.Conference) (*conference.Conference, error) {
	query := `
        INSERT INTO conferences (
            venue, year, start_date, end_date,
            city, country, country_code, is_virtual, is_hybrid, timezone, venue_name,
            website_url, proceedings_url, proceedings_publisher, proceedings_volume, proceedings_doi,
            submission_count, acceptance_count,
            archive_url, archive_organizers_url, archive_pc_url, archive_steering_url, archive_program_url,
            metadata, creator, modifier
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
                $17, $18, $19, $20, $21, $22, $23, $24, $25, $26)
        RETURNING` + conferenceColumns

	row := r.pool.QueryRow(ctx, query,
		c.Venue, c.Year, c.StartDate, c.EndDate,
		c.City, c.Country, c.CountryCode, c.IsVirtual, c.IsHybrid, c.Timezone, c.VenueName,
		c.WebsiteURL, c.ProceedingsURL, c.ProceedingsPublisher, c.ProceedingsVolume, c.ProceedingsDOI,
		c.SubmissionCount, c.AcceptanceCount,
		c.ArchiveURL, c.ArchiveOrganizersURL, c.ArchivePCURL, c.ArchiveSteeringURL, c.ArchiveProgramURL,
		c.Metadata.OrEmpty(), c.Creator, c.Modifier,
	)

	created, err := scanConference(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return nil, conference.ErrDuplicateConference
		}
		return nil, fmt.Errorf("failed to create conference: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*conference.Conference, error) {
	query := `SELECT` + conferenceColumns + ` FROM conferences WHERE id = $1`

	c, err := scanConference(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, conference.ErrConferenceNotFound
		}
		return nil, fmt.Errorf("failed to get conference by id: %w", err)
	}
	return c, nil
}

func (r *postgresRepository) GetByVenueYear(ctx context.Context, venue conference.Venue, year int) (*conference.Conference, error) {
	query := `SELECT` + conferenceColumns + ` FROM conferences WHERE venue = $1 AND year = $2`

	c, err := scanConference(r.pool.QueryRow(ctx, query, venue, year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, conference.ErrConferenceNotFound
		}
		return nil, fmt.Errorf("failed to get conference by venue/year: %w", err)
	}
	return c, nil
}

func (r *postgresRepository) List(ctx context.Context, filter conference.ConferenceFilter) ([]conference.Conference, error) {
	var (
		conditions []string
		args       []any
	)
	addArg := func(cond string, v any) {
		args = append(args, v)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}

	if filter.Venue != nil {
		addArg("venue = $%d", *filter.Venue)
	}
	if filter.Year != nil {
		addArg("year = $%d", *filter.Year)
	}
	if filter.FromYear != nil {
		addArg("year >= $%d", *filter.FromYear)
	}
	if filter.ToYear != nil {
		addArg("year <= $%d", *filter.ToYear)
	}

	query := `SELECT` + conferenceColumns + ` FROM conferences`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY year DESC, venue ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list conferences: %w", err)
	}
	defer rows.Close()

	var list []conference.Conference
	for rows.Next() {
		c, err := scanConference(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan conference row: %w", err)
		}
		list = append(list, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate conferences: %w", err)
	}
	return list, nil
}

// Update is a partial update: COALESCE keeps the stored value where the
// request field is nil. Venue and year are immutable and not touched.
func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, req *conference.UpdateConferenceRequest) (*conference.Conference, error) {
	query := `
        UPDATE conferences SET
            start_date       = COALESCE($2, start_date),
            end_date         = COALESCE($3, end_date),
            city             = COALESCE($4, city),
            country          = COALESCE($5, country),
            country_code     = COALESCE($6, country_code),
            is_virtual       = COALESCE($7, is_virtual),
            is_hybrid        = COALESCE($8, is_hybrid),
            timezone         = COALESCE($9, timezone),
            venue_name       = COALESCE($10, venue_name),
            website_url      = COALESCE($11, website_url),
            proceedings_url  = COALESCE($12, proceedings_url),
            proceedings_publisher = COALESCE($13, proceedings_publisher),
            proceedings_volume    = COALESCE($14, proceedings_volume),
            proceedings_doi       = COALESCE($15, proceedings_doi),
            submission_count      = COALESCE($16, submission_count),
            acceptance_count      = COALESCE($17, acceptance_count),
            archive_url           = COALESCE($18, archive_url),
            archive_organizers_url = COALESCE($19, archive_organizers_url),
            archive_pc_url         = COALESCE($20, archive_pc_url),
            archive_steering_url   = COALESCE($21, archive_steering_url),
            archive_program_url    = COALESCE($22, archive_program_url),
            metadata         = COALESCE($23, metadata),
            modifier         = $24,
            updated_at       = NOW()
        WHERE id = $1
        RETURNING` + conferenceColumns

	var metadata any
	if req.Metadata != nil {
		metadata = req.Metadata
	}

	row := r.pool.QueryRow(ctx, query, id,
		req.StartDate, req.EndDate,
		req.City, req.Country, req.CountryCode, req.IsVirtual, req.IsHybrid, req.Timezone, req.VenueName,
		req.WebsiteURL, req.ProceedingsURL, req.ProceedingsPublisher, req.ProceedingsVolume, req.ProceedingsDOI,
		req.SubmissionCount, req.AcceptanceCount,
		req.ArchiveURL, req.ArchiveOrganizersURL, req.ArchivePCURL, req.ArchiveSteeringURL, req.ArchiveProgramURL,
		metadata, req.Modifier,
	)

	updated, err := scanConference(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, conference.ErrConferenceNotFound
		}
		return nil, fmt.Errorf("failed to update conference: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM conferences WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return conference.ErrConferenceInUse
		}
		return fmt.Errorf("failed to delete conference: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return conference.ErrConferenceNotFound
	}
	return nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM conferences WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check conference existence: %w", err)
	}
	return exists, nil
}
