package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"quantumdb-backend/internal/domains/committee"
)

// committeeService implements committee.Service.
type committeeService struct {
	repo committee.Repository
}

// NewCommitteeService creates a new committee service instance.
func NewCommitteeService(repo committee.Repository) committee.Service {
	return &committeeService{repo: repo}
}

func (s *committeeService) Create(ctx context.Context, req *committee.CreateRoleRequest) (*committee.Role, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid committee role: %w", err)
	}

	committeeType, err := committee.ParseType(req.Committee)
	if err != nil {
		return nil, err
	}
	position, err := committee.ParsePosition(req.Position)
	if err != nil {
		return nil, err
	}

	if req.TermStart != nil && req.TermEnd != nil && req.TermEnd.Before(*req.TermStart) {
		return nil, committee.ErrInvalidTermRange
	}

	role := &committee.Role{
		ConferenceID: req.ConferenceID,
		AuthorID:     req.AuthorID,
		Committee:    committeeType,
		Position:     position,

		RoleTitle:   req.RoleTitle,
		TermStart:   req.TermStart,
		TermEnd:     req.TermEnd,
		Affiliation: req.Affiliation,

		Metadata: req.Metadata.OrEmpty(),
		Creator:  req.Creator,
		Modifier: req.Creator,
	}

	created, err := s.repo.Create(ctx, role)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("role_id", created.ID.String()).
		Str("committee", created.Committee.String()).
		Str("position", created.Position.String()).
		Msg("committee role created")

	return created, nil
}

func (s *committeeService) GetByID(ctx context.Context, id uuid.UUID) (*committee.Role, error) {
	if id == uuid.Nil {
		return nil, committee.ErrRoleNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *committeeService) List(ctx context.Context, filter committee.RoleFilter) ([]committee.Role, error) {
	if filter.Committee != nil && !filter.Committee.Valid() {
		return nil, committee.ErrInvalidCommittee
	}
	if filter.Position != nil && !filter.Position.Valid() {
		return nil, committee.ErrInvalidPosition
	}
	return s.repo.List(ctx, filter)
}

func (s *committeeService) Update(ctx context.Context, id uuid.UUID, req *committee.UpdateRoleRequest) (*committee.Role, error) {
	if id == uuid.Nil {
		return nil, committee.ErrRoleNotFound
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid committee role update: %w", err)
	}

	if req.TermStart != nil || req.TermEnd != nil {
		current, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		start, end := current.TermStart, current.TermEnd
		if req.TermStart != nil {
			start = req.TermStart
		}
		if req.TermEnd != nil {
			end = req.TermEnd
		}
		if start != nil && end != nil && end.Before(*start) {
			return nil, committee.ErrInvalidTermRange
		}
	}

	return s.repo.Update(ctx, id, req)
}

func (s *committeeService) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return committee.ErrRoleNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Str("role_id", id.String()).Msg("committee role deleted")
	return nil
}
