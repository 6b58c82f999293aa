package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"quantumdb-backend/internal/domains/conference"
	"quantumdb-backend/pkg/confslug"
)

// conferenceService implements conference.Service.
type conferenceService struct {
	repo conference.Repository
}

// NewConferenceService creates a new conference service instance.
func NewConferenceService(repo conference.Repository) conference.Service {
	return &conferenceService{repo: repo}
}

func (s *conferenceService) Create(ctx context.Context, req *conference.CreateConferenceRequest) (*conference.Conference, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid conference: %w", err)
	}

	venue, err := conference.ParseVenue(req.Venue)
	if err != nil {
		return nil, err
	}

	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, conference.ErrInvalidDateRange
	}

	c := &conference.Conference{
		Venue:     venue,
		Year:      req.Year,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,

		City:        req.City,
		Country:     req.Country,
		CountryCode: req.CountryCode,
		IsVirtual:   req.IsVirtual,
		IsHybrid:    req.IsHybrid,
		Timezone:    req.Timezone,
		VenueName:   req.VenueName,

		WebsiteURL:           req.WebsiteURL,
		ProceedingsURL:       req.ProceedingsURL,
		ProceedingsPublisher: req.ProceedingsPublisher,
		ProceedingsVolume:    req.ProceedingsVolume,
		ProceedingsDOI:       req.ProceedingsDOI,

		SubmissionCount: req.SubmissionCount,
		AcceptanceCount: req.AcceptanceCount,

		ArchiveURL:           req.ArchiveURL,
		ArchiveOrganizersURL: req.ArchiveOrganizersURL,
		ArchivePCURL:         req.ArchivePCURL,
		ArchiveSteeringURL:   req.ArchiveSteeringURL,
		ArchiveProgramURL:    req.ArchiveProgramURL,

		Metadata: req.Metadata.OrEmpty(),
		Creator:  req.Creator,
		Modifier: req.Creator,
	}

	// The UNIQUE(venue, year) constraint is the backstop for concurrent
	// writers; the repository maps its violation to ErrDuplicateConference.
	created, err := s.repo.Create(ctx, c)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("conference_id", created.ID.String()).
		Str("slug", created.Slug()).
		Msg("conference created")

	return created, nil
}

func (s *conferenceService) GetByID(ctx context.Context, id uuid.UUID) (*conference.Conference, error) {
	if id == uuid.Nil {
		return nil, conference.ErrConferenceNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *conferenceService) GetBySlug(ctx context.Context, slug string) (*conference.Conference, error) {
	venue, year, ok := confslug.Parse(strings.TrimSpace(slug))
	if !ok {
		return nil, fmt.Errorf("%w: %q", conference.ErrInvalidSlug, slug)
	}
	v, err := conference.ParseVenue(venue)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByVenueYear(ctx, v, year)
}

func (s *conferenceService) List(ctx context.Context, filter conference.ConferenceFilter) ([]conference.Conference, error) {
	if filter.Venue != nil && !filter.Venue.Valid() {
		return nil, conference.ErrInvalidVenue
	}
	return s.repo.List(ctx, filter)
}

func (s *conferenceService) Update(ctx context.Context, id uuid.UUID, req *conference.UpdateConferenceRequest) (*conference.Conference, error) {
	if id == uuid.Nil {
		return nil, conference.ErrConferenceNotFound
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid conference update: %w", err)
	}

	// Date-range check needs the stored dates when only one side changes.
	if req.StartDate != nil || req.EndDate != nil {
		current, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		start, end := current.StartDate, current.EndDate
		if req.StartDate != nil {
			start = req.StartDate
		}
		if req.EndDate != nil {
			end = req.EndDate
		}
		if start != nil && end != nil && end.Before(*start) {
			return nil, conference.ErrInvalidDateRange
		}
	}

	return s.repo.Update(ctx, id, req)
}

func (s *conferenceService) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return conference.ErrConferenceNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Str("conference_id", id.String()).Msg("conference deleted")
	return nil
}
