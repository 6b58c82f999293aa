package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quantumdb-backend/internal/domains/committee"
)

// fakeRepository is an in-memory committee.Repository for service tests.
type fakeRepository struct {
	roles       map[uuid.UUID]*committee.Role
	conferences map[uuid.UUID]bool
	authors     map[uuid.UUID]bool
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		roles:       make(map[uuid.UUID]*committee.Role),
		conferences: make(map[uuid.UUID]bool),
		authors:     make(map[uuid.UUID]bool),
	}
}

func (f *fakeRepository) Create(_ context.Context, role *committee.Role) (*committee.Role, error) {
	if !f.conferences[role.ConferenceID] {
		return nil, committee.ErrConferenceMissing
	}
	if !f.authors[role.AuthorID] {
		return nil, committee.ErrAuthorMissing
	}
	for _, existing := range f.roles {
		if existing.ConferenceID == role.ConferenceID &&
			existing.AuthorID == role.AuthorID &&
			existing.Committee == role.Committee &&
			existing.Position == role.Position {
			return nil, committee.ErrDuplicateRole
		}
	}
	stored := *role
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.roles[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (f *fakeRepository) GetByID(_ context.Context, id uuid.UUID) (*committee.Role, error) {
	role, ok := f.roles[id]
	if !ok {
		return nil, committee.ErrRoleNotFound
	}
	out := *role
	return &out, nil
}

func (f *fakeRepository) List(_ context.Context, filter committee.RoleFilter) ([]committee.Role, error) {
	var list []committee.Role
	for _, role := range f.roles {
		if filter.ConferenceID != nil && role.ConferenceID != *filter.ConferenceID {
			continue
		}
		if filter.AuthorID != nil && role.AuthorID != *filter.AuthorID {
			continue
		}
		if filter.Committee != nil && role.Committee != *filter.Committee {
			continue
		}
		if filter.Position != nil && role.Position != *filter.Position {
			continue
		}
		list = append(list, *role)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Committee != list[j].Committee {
			return list[i].Committee < list[j].Committee
		}
		return list[i].Position < list[j].Position
	})
	return list, nil
}

func (f *fakeRepository) Update(_ context.Context, id uuid.UUID, req *committee.UpdateRoleRequest) (*committee.Role, error) {
	role, ok := f.roles[id]
	if !ok {
		return nil, committee.ErrRoleNotFound
	}
	if req.RoleTitle != nil {
		role.RoleTitle = req.RoleTitle
	}
	if req.TermStart != nil {
		role.TermStart = req.TermStart
	}
	if req.TermEnd != nil {
		role.TermEnd = req.TermEnd
	}
	if req.Affiliation != nil {
		role.Affiliation = req.Affiliation
	}
	if req.Metadata != nil {
		role.Metadata = req.Metadata
	}
	role.Modifier = req.Modifier
	role.UpdatedAt = time.Now()
	out := *role
	return &out, nil
}

func (f *fakeRepository) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.roles[id]; !ok {
		return committee.ErrRoleNotFound
	}
	delete(f.roles, id)
	return nil
}

type fixture struct {
	svc          committee.Service
	repo         *fakeRepository
	conferenceID uuid.UUID
	authorID     uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repo := newFakeRepository()
	conferenceID := uuid.New()
	authorID := uuid.New()
	repo.conferences[conferenceID] = true
	repo.authors[authorID] = true
	return &fixture{
		svc:          NewCommitteeService(repo),
		repo:         repo,
		conferenceID: conferenceID,
		authorID:     authorID,
	}
}

func (fx *fixture) createRole(t *testing.T, committeeType, position string) *committee.Role {
	t.Helper()
	role, err := fx.svc.Create(context.Background(), &committee.CreateRoleRequest{
		ConferenceID: fx.conferenceID,
		AuthorID:     fx.authorID,
		Committee:    committeeType,
		Position:     position,
		Creator:      "tester",
	})
	require.NoError(t, err)
	return role
}

func TestCreateRole(t *testing.T) {
	fx := newFixture(t)

	role := fx.createRole(t, "pc", "chair")
	assert.Equal(t, committee.TypeProgram, role.Committee)
	assert.Equal(t, committee.PositionChair, role.Position)
	assert.True(t, role.Position.IsLeadership())
}

func TestCreateRoleUppercaseInput(t *testing.T) {
	fx := newFixture(t)

	role := fx.createRole(t, "PC", "CO_CHAIR")
	assert.Equal(t, committee.TypeProgram, role.Committee)
	assert.Equal(t, committee.PositionCoChair, role.Position)
}

func TestCreateRoleDuplicateTuple(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	fx.createRole(t, "oc", "chair")

	_, err := fx.svc.Create(ctx, &committee.CreateRoleRequest{
		ConferenceID: fx.conferenceID,
		AuthorID:     fx.authorID,
		Committee:    "oc",
		Position:     "chair",
		Creator:      "tester",
	})
	assert.ErrorIs(t, err, committee.ErrDuplicateRole)

	// A different tuple for the same person at the same conference is fine.
	_, err = fx.svc.Create(ctx, &committee.CreateRoleRequest{
		ConferenceID: fx.conferenceID,
		AuthorID:     fx.authorID,
		Committee:    "pc",
		Position:     "member",
		Creator:      "tester",
	})
	assert.NoError(t, err)
}

func TestCreateRoleUnknownEnums(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	_, err := fx.svc.Create(ctx, &committee.CreateRoleRequest{
		ConferenceID: fx.conferenceID,
		AuthorID:     fx.authorID,
		Committee:    "advisory",
		Position:     "member",
		Creator:      "tester",
	})
	assert.Error(t, err)

	_, err = fx.svc.Create(ctx, &committee.CreateRoleRequest{
		ConferenceID: fx.conferenceID,
		AuthorID:     fx.authorID,
		Committee:    "pc",
		Position:     "vice_chair",
		Creator:      "tester",
	})
	assert.Error(t, err)
}

func TestCreateRoleMissingReferences(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	_, err := fx.svc.Create(ctx, &committee.CreateRoleRequest{
		ConferenceID: uuid.New(),
		AuthorID:     fx.authorID,
		Committee:    "pc",
		Position:     "member",
		Creator:      "tester",
	})
	assert.ErrorIs(t, err, committee.ErrConferenceMissing)

	_, err = fx.svc.Create(ctx, &committee.CreateRoleRequest{
		ConferenceID: fx.conferenceID,
		AuthorID:     uuid.New(),
		Committee:    "pc",
		Position:     "member",
		Creator:      "tester",
	})
	assert.ErrorIs(t, err, committee.ErrAuthorMissing)
}

func TestCreateRoleTermRange(t *testing.T) {
	fx := newFixture(t)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(-1, 0, 0)
	_, err := fx.svc.Create(context.Background(), &committee.CreateRoleRequest{
		ConferenceID: fx.conferenceID,
		AuthorID:     fx.authorID,
		Committee:    "sc",
		Position:     "member",
		TermStart:    &start,
		TermEnd:      &end,
		Creator:      "tester",
	})
	assert.ErrorIs(t, err, committee.ErrInvalidTermRange)
}

func TestUpdateRole(t *testing.T) {
	fx := newFixture(t)
	role := fx.createRole(t, "pc", "member")

	title := "Publicity Chair"
	updated, err := fx.svc.Update(context.Background(), role.ID, &committee.UpdateRoleRequest{
		RoleTitle: &title,
		Modifier:  "editor",
	})
	require.NoError(t, err)
	require.NotNil(t, updated.RoleTitle)
	assert.Equal(t, "Publicity Chair", *updated.RoleTitle)
	assert.Equal(t, committee.TypeProgram, updated.Committee)
}

func TestUpdateRoleTermRangeAgainstStored(t *testing.T) {
	fx := newFixture(t)

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	role, err := fx.svc.Create(context.Background(), &committee.CreateRoleRequest{
		ConferenceID: fx.conferenceID,
		AuthorID:     fx.authorID,
		Committee:    "sc",
		Position:     "member",
		TermStart:    &start,
		Creator:      "tester",
	})
	require.NoError(t, err)

	end := start.AddDate(0, -3, 0)
	_, err = fx.svc.Update(context.Background(), role.ID, &committee.UpdateRoleRequest{
		TermEnd:  &end,
		Modifier: "editor",
	})
	assert.ErrorIs(t, err, committee.ErrInvalidTermRange)
}

func TestListRolesFiltered(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	fx.createRole(t, "oc", "chair")
	fx.createRole(t, "pc", "member")
	fx.createRole(t, "pc", "chair")

	pc := committee.TypeProgram
	roles, err := fx.svc.List(ctx, committee.RoleFilter{Committee: &pc})
	require.NoError(t, err)
	assert.Len(t, roles, 2)

	chair := committee.PositionChair
	roles, err = fx.svc.List(ctx, committee.RoleFilter{Position: &chair})
	require.NoError(t, err)
	assert.Len(t, roles, 2)
}

func TestDeleteRole(t *testing.T) {
	fx := newFixture(t)
	role := fx.createRole(t, "local", "member")
	ctx := context.Background()

	require.NoError(t, fx.svc.Delete(ctx, role.ID))
	assert.ErrorIs(t, fx.svc.Delete(ctx, role.ID), committee.ErrRoleNotFound)
}
