package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"quantumdb-backend/internal/domains/publication"
)

// publicationService implements publication.Service.
type publicationService struct {
	repo publication.Repository
}

// NewPublicationService creates a new publication service instance.
func NewPublicationService(repo publication.Repository) publication.Service {
	return &publicationService{repo: repo}
}

func (s *publicationService) Create(ctx context.Context, req *publication.CreatePublicationRequest) (*publication.Publication, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid publication: %w", err)
	}

	paperType, err := publication.ParsePaperType(req.PaperType)
	if err != nil {
		return nil, err
	}

	p := &publication.Publication{
		ConferenceID: req.ConferenceID,
		CanonicalKey: strings.TrimSpace(req.CanonicalKey),

		DOI:      req.DOI,
		ArxivIDs: req.ArxivIDs,
		Title:    strings.TrimSpace(req.Title),
		Abstract: req.Abstract,

		PaperType:       paperType,
		Pages:           req.Pages,
		SessionName:     req.SessionName,
		PresentationURL: req.PresentationURL,
		VideoURL:        req.VideoURL,
		YoutubeID:       req.YoutubeID,

		Award:         req.Award,
		AwardDate:     req.AwardDate,
		PublishedDate: req.PublishedDate,

		IsProceedingsTrack: req.IsProceedingsTrack,

		TalkDate:        req.TalkDate,
		TalkTime:        req.TalkTime,
		DurationMinutes: req.DurationMinutes,

		Metadata: req.Metadata.OrEmpty(),
		Creator:  req.Creator,
		Modifier: req.Creator,
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("publication_id", created.ID.String()).
		Str("canonical_key", created.CanonicalKey).
		Msg("publication created")

	return created, nil
}

func (s *publicationService) GetByID(ctx context.Context, id uuid.UUID) (*publication.Publication, error) {
	if id == uuid.Nil {
		return nil, publication.ErrPublicationNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *publicationService) GetByCanonicalKey(ctx context.Context, key string) (*publication.Publication, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, publication.ErrPublicationNotFound
	}
	return s.repo.GetByCanonicalKey(ctx, key)
}

func (s *publicationService) List(ctx context.Context, filter publication.PublicationFilter) ([]publication.Publication, error) {
	if filter.PaperType != nil && !filter.PaperType.Valid() {
		return nil, publication.ErrInvalidPaperType
	}
	return s.repo.List(ctx, filter)
}

func (s *publicationService) Update(ctx context.Context, id uuid.UUID, req *publication.UpdatePublicationRequest) (*publication.Publication, error) {
	if id == uuid.Nil {
		return nil, publication.ErrPublicationNotFound
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid publication update: %w", err)
	}

	// Presenter-is-author rule: a presenter being set or changed must be
	// listed via an authorship on this publication.
	if req.PresenterAuthorID != nil {
		listed, err := s.repo.AuthorshipExists(ctx, id, *req.PresenterAuthorID)
		if err != nil {
			return nil, err
		}
		if !listed {
			return nil, publication.ErrPresenterNotListed
		}
	}

	return s.repo.Update(ctx, id, req)
}

func (s *publicationService) ClearPresenter(ctx context.Context, id uuid.UUID, modifier string) (*publication.Publication, error) {
	if id == uuid.Nil {
		return nil, publication.ErrPublicationNotFound
	}
	if strings.TrimSpace(modifier) == "" {
		return nil, fmt.Errorf("invalid presenter clear: modifier is required")
	}

	updated, err := s.repo.ClearPresenter(ctx, id, modifier)
	if err != nil {
		return nil, err
	}

	log.Info().Str("publication_id", id.String()).Msg("presenter cleared")
	return updated, nil
}

func (s *publicationService) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return publication.ErrPublicationNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Str("publication_id", id.String()).Msg("publication deleted")
	return nil
}

func (s *publicationService) AddAuthorship(ctx context.Context, publicationID uuid.UUID, req *publication.AddAuthorshipRequest) (*publication.Authorship, error) {
	if publicationID == uuid.Nil {
		return nil, publication.ErrPublicationNotFound
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid authorship: %w", err)
	}
	if req.AuthorPosition < 1 {
		return nil, publication.ErrInvalidPosition
	}

	a := &publication.Authorship{
		PublicationID:   publicationID,
		AuthorID:        req.AuthorID,
		AuthorPosition:  req.AuthorPosition,
		PublishedAsName: strings.TrimSpace(req.PublishedAsName),
		Affiliation:     req.Affiliation,
		Metadata:        req.Metadata.OrEmpty(),
		Creator:         req.Creator,
		Modifier:        req.Creator,
	}

	return s.repo.AddAuthorship(ctx, a)
}

func (s *publicationService) GetAuthorship(ctx context.Context, id uuid.UUID) (*publication.Authorship, error) {
	if id == uuid.Nil {
		return nil, publication.ErrAuthorshipNotFound
	}
	return s.repo.GetAuthorship(ctx, id)
}

func (s *publicationService) ListAuthorships(ctx context.Context, filter publication.AuthorshipFilter) ([]publication.Authorship, error) {
	return s.repo.ListAuthorships(ctx, filter)
}

func (s *publicationService) UpdateAuthorship(ctx context.Context, id uuid.UUID, req *publication.UpdateAuthorshipRequest) (*publication.Authorship, error) {
	if id == uuid.Nil {
		return nil, publication.ErrAuthorshipNotFound
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid authorship update: %w", err)
	}
	if req.AuthorPosition != nil && *req.AuthorPosition < 1 {
		return nil, publication.ErrInvalidPosition
	}
	return s.repo.UpdateAuthorship(ctx, id, req)
}

func (s *publicationService) DeleteAuthorship(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return publication.ErrAuthorshipNotFound
	}

	if err := s.repo.DeleteAuthorship(ctx, id); err != nil {
		return err
	}

	log.Info().Str("authorship_id", id.String()).Msg("authorship deleted")
	return nil
}
