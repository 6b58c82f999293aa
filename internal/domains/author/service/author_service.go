package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"quantumdb-backend/internal/domains/author"
	"quantumdb-backend/pkg/names"
)

const defaultMatchLimit = 10

// authorService implements author.Service.
type authorService struct {
	repo author.Repository
}

// NewAuthorService creates a new author service instance.
func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{repo: repo}
}

func (s *authorService) Create(ctx context.Context, req *author.CreateAuthorRequest) (*author.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid author: %w", err)
	}

	fullName := strings.TrimSpace(req.FullName)
	normalized := names.Normalize(fullName)
	if normalized == "" {
		return nil, author.ErrInvalidName
	}

	a := &author.Author{
		FullName:       fullName,
		FamilyName:     req.FamilyName,
		GivenName:      req.GivenName,
		NormalizedName: normalized,
		ORCID:          req.ORCID,
		HomepageURL:    req.HomepageURL,
		Affiliation:    req.Affiliation,
		Metadata:       req.Metadata.OrEmpty(),
		Creator:        req.Creator,
		Modifier:       req.Creator,
	}

	created, err := s.repo.Create(ctx, a)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("author_id", created.ID.String()).
		Str("normalized_name", created.NormalizedName).
		Msg("author created")

	return created, nil
}

func (s *authorService) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	if id == uuid.Nil {
		return nil, author.ErrAuthorNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) List(ctx context.Context, filter author.AuthorFilter) ([]author.Author, error) {
	return s.repo.List(ctx, filter)
}

func (s *authorService) Update(ctx context.Context, id uuid.UUID, req *author.UpdateAuthorRequest) (*author.Author, error) {
	if id == uuid.Nil {
		return nil, author.ErrAuthorNotFound
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid author update: %w", err)
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		fullName := strings.TrimSpace(*req.FullName)
		normalized := names.Normalize(fullName)
		if normalized == "" {
			return nil, author.ErrInvalidName
		}
		existing.FullName = fullName
		existing.NormalizedName = normalized
	}
	if req.FamilyName != nil {
		existing.FamilyName = req.FamilyName
	}
	if req.GivenName != nil {
		existing.GivenName = req.GivenName
	}
	if req.ORCID != nil {
		existing.ORCID = req.ORCID
	}
	if req.HomepageURL != nil {
		existing.HomepageURL = req.HomepageURL
	}
	if req.Affiliation != nil {
		existing.Affiliation = req.Affiliation
	}
	if req.Metadata != nil {
		existing.Metadata = req.Metadata
	}
	existing.Modifier = req.Modifier

	return s.repo.Update(ctx, existing)
}

func (s *authorService) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return author.ErrAuthorNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Str("author_id", id.String()).Msg("author deleted")
	return nil
}

func (s *authorService) AddVariant(ctx context.Context, authorID uuid.UUID, req *author.AddVariantRequest) (*author.NameVariant, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid name variant: %w", err)
	}

	exists, err := s.repo.ExistsByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, author.ErrAuthorNotFound
	}

	variantName := strings.TrimSpace(req.VariantName)
	normalized := names.Normalize(variantName)
	if normalized == "" {
		return nil, author.ErrInvalidName
	}

	v := &author.NameVariant{
		AuthorID:          authorID,
		VariantName:       variantName,
		NormalizedVariant: normalized,
		VariantType:       req.VariantType,
		Notes:             req.Notes,
		Creator:           req.Creator,
		Modifier:          req.Creator,
	}

	return s.repo.AddVariant(ctx, v)
}

func (s *authorService) ListVariants(ctx context.Context, authorID uuid.UUID) ([]author.NameVariant, error) {
	exists, err := s.repo.ExistsByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, author.ErrAuthorNotFound
	}
	return s.repo.ListVariants(ctx, authorID)
}

func (s *authorService) DeleteVariant(ctx context.Context, authorID, variantID uuid.UUID) error {
	return s.repo.DeleteVariant(ctx, authorID, variantID)
}

// FindMatches generates normalized forms of the query name, pulls candidate
// authors reachable by any of them, and scores each candidate with the name
// similarity metric. A variant hit scores against the variant text too.
func (s *authorService) FindMatches(ctx context.Context, name string, limit int) ([]author.MatchCandidate, error) {
	name = strings.TrimSpace(name)
	if names.Normalize(name) == "" {
		return nil, author.ErrInvalidName
	}
	if limit <= 0 {
		limit = defaultMatchLimit
	}

	forms := names.GenerateVariants(name)
	_, family := names.SplitName(name)
	familyToken := names.Normalize(family)

	candidates, err := s.repo.FindCandidates(ctx, forms, familyToken)
	if err != nil {
		return nil, err
	}

	for i := range candidates {
		score := names.Similarity(name, candidates[i].Author.FullName)
		if candidates[i].MatchedVariant != nil {
			if vs := names.Similarity(name, *candidates[i].MatchedVariant); vs > score {
				score = vs
			}
		}
		candidates[i].Score = score
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates, nil
}

func (s *authorService) RecomputeAffiliation(ctx context.Context, id uuid.UUID, modifier string) (*author.Author, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	latest, err := s.repo.LatestAffiliation(ctx, id)
	if err != nil {
		return nil, err
	}
	// No recorded affiliations anywhere: keep whatever is stored.
	if latest == nil {
		return a, nil
	}

	a.Affiliation = latest
	a.Modifier = modifier

	updated, err := s.repo.Update(ctx, a)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("author_id", id.String()).
		Str("affiliation", *latest).
		Msg("author affiliation recomputed")

	return updated, nil
}
