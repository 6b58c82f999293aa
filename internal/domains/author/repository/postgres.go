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

	"quantumdb-backend/internal/domains/author"
)

// postgresRepository implements author.Repository on pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new author repository instance.
func NewPostgresRepository(pool *pgxpool.Pool) author.Repository {
	return &postgresRepository{pool: pool}
}

const authorColumns = `
    id, full_name, family_name, given_name, normalized_name,
    orcid, homepage_url, affiliation,
    metadata, creator, modifier, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAuthor(row rowScanner) (*author.Author, error) {
	var a author.Author
	err := row.Scan(
		&a.ID, &a.FullName, &a.FamilyName, &a.GivenName, &a.NormalizedName,
		&a.ORCID, &a.HomepageURL, &a.Affiliation,
		&a.Metadata, &a.Creator, &a.Modifier, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        INSERT INTO authors (
            full_name, family_name, given_name, normalized_name,
            orcid, homepage_url, affiliation, metadata, creator, modifier
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING` + authorColumns

	row := r.pool.QueryRow(ctx, query,
		a.FullName, a.FamilyName, a.GivenName, a.NormalizedName,
		a.ORCID, a.HomepageURL, a.Affiliation, a.Metadata.OrEmpty(), a.Creator, a.Modifier,
	)

	created, err := scanAuthor(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	query := `SELECT` + authorColumns + ` FROM authors WHERE id = $1`

	a, err := scanAuthor(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}
	return a, nil
}

func (r *postgresRepository) List(ctx context.Context, filter author.AuthorFilter) ([]author.Author, error) {
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
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + search + "%"
		query = `SELECT` + authorColumns + `
            FROM authors
            WHERE full_name ILIKE $1
               OR family_name ILIKE $1
               OR given_name ILIKE $1
               OR normalized_name ILIKE $1
            ORDER BY family_name, given_name
            LIMIT $2 OFFSET $3`
		args = []any{pattern, limit, offset}
	} else {
		query = `SELECT` + authorColumns + `
            FROM authors
            ORDER BY family_name, given_name
            LIMIT $1 OFFSET $2`
		args = []any{limit, offset}
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	defer rows.Close()

	var list []author.Author
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan author row: %w", err)
		}
		list = append(list, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate authors: %w", err)
	}
	return list, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        UPDATE authors SET
            full_name       = $2,
            family_name     = $3,
            given_name      = $4,
            normalized_name = $5,
            orcid           = $6,
            homepage_url    = $7,
            affiliation     = $8,
            metadata        = $9,
            modifier        = $10,
            updated_at      = NOW()
        WHERE id = $1
        RETURNING` + authorColumns

	row := r.pool.QueryRow(ctx, query, a.ID,
		a.FullName, a.FamilyName, a.GivenName, a.NormalizedName,
		a.ORCID, a.HomepageURL, a.Affiliation, a.Metadata.OrEmpty(), a.Modifier,
	)

	updated, err := scanAuthor(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return author.ErrAuthorInUse
		}
		return fmt.Errorf("failed to delete author: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return author.ErrAuthorNotFound
	}
	return nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM authors WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check author existence: %w", err)
	}
	return exists, nil
}

const variantColumns = `
    id, author_id, variant_name, normalized_variant, variant_type, notes,
    creator, modifier, created_at`

func scanVariant(row rowScanner) (*author.NameVariant, error) {
	var v author.NameVariant
	err := row.Scan(
		&v.ID, &v.AuthorID, &v.VariantName, &v.NormalizedVariant, &v.VariantType, &v.Notes,
		&v.Creator, &v.Modifier, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *postgresRepository) AddVariant(ctx context.Context, v *author.NameVariant) (*author.NameVariant, error) {
	query := `
        INSERT INTO author_name_variants (
            author_id, variant_name, normalized_variant, variant_type, notes, creator, modifier
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING` + variantColumns

	row := r.pool.QueryRow(ctx, query,
		v.AuthorID, v.VariantName, v.NormalizedVariant, v.VariantType, v.Notes, v.Creator, v.Modifier,
	)

	created, err := scanVariant(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation
				return nil, author.ErrDuplicateVariant
			case "23503": // foreign_key_violation
				return nil, author.ErrAuthorNotFound
			}
		}
		return nil, fmt.Errorf("failed to add name variant: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) ListVariants(ctx context.Context, authorID uuid.UUID) ([]author.NameVariant, error) {
	query := `SELECT` + variantColumns + `
        FROM author_name_variants
        WHERE author_id = $1
        ORDER BY variant_name`

	rows, err := r.pool.Query(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list name variants: %w", err)
	}
	defer rows.Close()

	var list []author.NameVariant
	for rows.Next() {
		v, err := scanVariant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan name variant row: %w", err)
		}
		list = append(list, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate name variants: %w", err)
	}
	return list, nil
}

func (r *postgresRepository) DeleteVariant(ctx context.Context, authorID, variantID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM author_name_variants WHERE id = $1 AND author_id = $2`,
		variantID, authorID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete name variant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return author.ErrVariantNotFound
	}
	return nil
}

// FindCandidates pulls authors reachable by an exact normalized-form hit
// (own key or a variant) or by a substring hit on the family token. Scoring
// happens in the service; this only narrows the pool.
func (r *postgresRepository) FindCandidates(ctx context.Context, normalizedForms []string, familyToken string) ([]author.MatchCandidate, error) {
	if len(normalizedForms) == 0 && familyToken == "" {
		return nil, nil
	}

	query := `
        SELECT
            a.id, a.full_name, a.family_name, a.given_name, a.normalized_name,
            a.orcid, a.homepage_url, a.affiliation,
            a.metadata, a.creator, a.modifier, a.created_at, a.updated_at,
            (
                SELECT v.variant_name
                FROM author_name_variants v
                WHERE v.author_id = a.id AND v.normalized_variant = ANY($1)
                ORDER BY v.variant_name
                LIMIT 1
            ) AS matched_variant
        FROM authors a
        WHERE a.normalized_name = ANY($1)
           OR ($2 <> '' AND a.normalized_name LIKE '%' || $2 || '%')
           OR EXISTS (
                SELECT 1 FROM author_name_variants v
                WHERE v.author_id = a.id AND v.normalized_variant = ANY($1)
           )
        ORDER BY a.family_name, a.given_name`

	rows, err := r.pool.Query(ctx, query, normalizedForms, familyToken)
	if err != nil {
		return nil, fmt.Errorf("failed to find author candidates: %w", err)
	}
	defer rows.Close()

	var candidates []author.MatchCandidate
	for rows.Next() {
		var c author.MatchCandidate
		a := &c.Author
		err := rows.Scan(
			&a.ID, &a.FullName, &a.FamilyName, &a.GivenName, &a.NormalizedName,
			&a.ORCID, &a.HomepageURL, &a.Affiliation,
			&a.Metadata, &a.Creator, &a.Modifier, &a.CreatedAt, &a.UpdatedAt,
			&c.MatchedVariant,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidate row: %w", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate candidates: %w", err)
	}
	return candidates, nil
}

// LatestAffiliation looks across authorships and committee roles, newest
// conference year first, then newest record.
func (r *postgresRepository) LatestAffiliation(ctx context.Context, authorID uuid.UUID) (*string, error) {
	query := `
        SELECT affiliation FROM (
            SELECT au.affiliation, c.year, au.created_at
            FROM authorships au
            JOIN publications p ON p.id = au.publication_id
            JOIN conferences c ON c.id = p.conference_id
            WHERE au.author_id = $1 AND au.affiliation IS NOT NULL
            UNION ALL
            SELECT cr.affiliation, c.year, cr.created_at
            FROM committee_roles cr
            JOIN conferences c ON c.id = cr.conference_id
            WHERE cr.author_id = $1 AND cr.affiliation IS NOT NULL
        ) known
        ORDER BY year DESC, created_at DESC
        LIMIT 1`

	var affiliation *string
	err := r.pool.QueryRow(ctx, query, authorID).Scan(&affiliation)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve latest affiliation: %w", err)
	}
	return affiliation, nil
}
