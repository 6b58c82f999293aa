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

	"quantumdb-backend/internal/domains/committee"
)

// postgresRepository implements committee.Repository on pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new committee repository instance.
func NewPostgresRepository(pool *pgxpool.Pool) committee.Repository {
	return &postgresRepository{pool: pool}
}

const roleColumns = `
    id, conference_id, author_id, committee, position,
    role_title, term_start, term_end, affiliation,
    metadata, creator, modifier, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRole(row rowScanner) (*committee.Role, error) {
	var role committee.Role
	err := row.Scan(
		&role.ID, &role.ConferenceID, &role.AuthorID, &role.Committee, &role.Position,
		&role.RoleTitle, &role.TermStart, &role.TermEnd, &role.Affiliation,
		&role.Metadata, &role.Creator, &role.Modifier, &role.CreatedAt, &role.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *postgresRepository) Create(ctx context.Context, role *committee.Role) (*committee.Role, error) {
	query := `
        INSERT INTO committee_roles (
            conference_id, author_id, committee, position,
            role_title, term_start, term_end, affiliation,
            metadata, creator, modifier
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING` + roleColumns

	row := r.pool.QueryRow(ctx, query,
		role.ConferenceID, role.AuthorID, role.Committee, role.Position,
		role.RoleTitle, role.TermStart, role.TermEnd, role.Affiliation,
		role.Metadata.OrEmpty(), role.Creator, role.Modifier,
	)

	created, err := scanRole(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation
				return nil, committee.ErrDuplicateRole
			case "23503": // foreign_key_violation
				if strings.Contains(pgErr.ConstraintName, "conference") {
					return nil, committee.ErrConferenceMissing
				}
				return nil, committee.ErrAuthorMissing
			}
		}
		return nil, fmt.Errorf("failed to create committee role: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*committee.Role, error) {
	query := `SELECT` + roleColumns + ` FROM committee_roles WHERE id = $1`

	role, err := scanRole(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, committee.ErrRoleNotFound
		}
		return nil, fmt.Errorf("failed to get committee role by id: %w", err)
	}
	return role, nil
}

func (r *postgresRepository) List(ctx context.Context, filter committee.RoleFilter) ([]committee.Role, error) {
	var (
		conditions []string
		args       []any
	)
	addArg := func(cond string, v any) {
		args = append(args, v)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}

	if filter.ConferenceID != nil {
		addArg("conference_id = $%d", *filter.ConferenceID)
	}
	if filter.AuthorID != nil {
		addArg("author_id = $%d", *filter.AuthorID)
	}
	if filter.Committee != nil {
		addArg("committee = $%d", *filter.Committee)
	}
	if filter.Position != nil {
		addArg("position = $%d", *filter.Position)
	}

	query := `SELECT` + roleColumns + ` FROM committee_roles`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY committee, position, created_at`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list committee roles: %w", err)
	}
	defer rows.Close()

	var list []committee.Role
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan committee role row: %w", err)
		}
		list = append(list, *role)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate committee roles: %w", err)
	}
	return list, nil
}

func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, req *committee.UpdateRoleRequest) (*committee.Role, error) {
	query := `
        UPDATE committee_roles SET
            role_title  = COALESCE($2, role_title),
            term_start  = COALESCE($3, term_start),
            term_end    = COALESCE($4, term_end),
            affiliation = COALESCE($5, affiliation),
            metadata    = COALESCE($6, metadata),
            modifier    = $7,
            updated_at  = NOW()
        WHERE id = $1
        RETURNING` + roleColumns

	var metadata any
	if req.Metadata != nil {
		metadata = req.Metadata
	}

	row := r.pool.QueryRow(ctx, query, id,
		req.RoleTitle, req.TermStart, req.TermEnd, req.Affiliation, metadata, req.Modifier,
	)

	updated, err := scanRole(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, committee.ErrRoleNotFound
		}
		return nil, fmt.Errorf("failed to update committee role: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM committee_roles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete committee role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return committee.ErrRoleNotFound
	}
	return nil
}
