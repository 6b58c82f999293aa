package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quantumdb-backend/internal/domains/publication"
)

// fakeRepository is an in-memory publication.Repository for service tests.
// DeleteAuthorship mirrors the production transaction: the presenter is
// cleared together with the authorship that backed it.
type fakeRepository struct {
	publications map[uuid.UUID]*publication.Publication
	authorships  map[uuid.UUID]*publication.Authorship
	conferences  map[uuid.UUID]bool
	authors      map[uuid.UUID]bool
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		publications: make(map[uuid.UUID]*publication.Publication),
		authorships:  make(map[uuid.UUID]*publication.Authorship),
		conferences:  make(map[uuid.UUID]bool),
		authors:      make(map[uuid.UUID]bool),
	}
}

func (f *fakeRepository) Create(_ context.Context, p *publication.Publication) (*publication.Publication, error) {
	if !f.conferences[p.ConferenceID] {
		return nil, publication.ErrConferenceMissing
	}
	for _, existing := range f.publications {
		if existing.CanonicalKey == p.CanonicalKey {
			return nil, publication.ErrDuplicateCanonicalKey
		}
	}
	stored := *p
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.publications[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (f *fakeRepository) GetByID(_ context.Context, id uuid.UUID) (*publication.Publication, error) {
	p, ok := f.publications[id]
	if !ok {
		return nil, publication.ErrPublicationNotFound
	}
	out := *p
	return &out, nil
}

func (f *fakeRepository) GetByCanonicalKey(_ context.Context, key string) (*publication.Publication, error) {
	for _, p := range f.publications {
		if p.CanonicalKey == key {
			out := *p
			return &out, nil
		}
	}
	return nil, publication.ErrPublicationNotFound
}

func (f *fakeRepository) List(_ context.Context, filter publication.PublicationFilter) ([]publication.Publication, error) {
	var list []publication.Publication
	for _, p := range f.publications {
		if filter.ConferenceID != nil && p.ConferenceID != *filter.ConferenceID {
			continue
		}
		if filter.PaperType != nil && p.PaperType != *filter.PaperType {
			continue
		}
		list = append(list, *p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CanonicalKey < list[j].CanonicalKey })
	return list, nil
}

func (f *fakeRepository) Update(_ context.Context, id uuid.UUID, req *publication.UpdatePublicationRequest) (*publication.Publication, error) {
	p, ok := f.publications[id]
	if !ok {
		return nil, publication.ErrPublicationNotFound
	}
	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.PaperType != nil {
		p.PaperType = publication.PaperType(*req.PaperType)
	}
	if req.Award != nil {
		p.Award = req.Award
	}
	if req.PresenterAuthorID != nil {
		if !f.authors[*req.PresenterAuthorID] {
			return nil, publication.ErrAuthorMissing
		}
		p.PresenterAuthorID = req.PresenterAuthorID
	}
	if req.SessionName != nil {
		p.SessionName = req.SessionName
	}
	if req.Metadata != nil {
		p.Metadata = req.Metadata
	}
	p.Modifier = req.Modifier
	p.UpdatedAt = time.Now()
	out := *p
	return &out, nil
}

func (f *fakeRepository) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.publications[id]; !ok {
		return publication.ErrPublicationNotFound
	}
	delete(f.publications, id)
	for aid, a := range f.authorships {
		if a.PublicationID == id {
			delete(f.authorships, aid)
		}
	}
	return nil
}

func (f *fakeRepository) ClearPresenter(_ context.Context, id uuid.UUID, modifier string) (*publication.Publication, error) {
	p, ok := f.publications[id]
	if !ok {
		return nil, publication.ErrPublicationNotFound
	}
	p.PresenterAuthorID = nil
	p.Modifier = modifier
	p.UpdatedAt = time.Now()
	out := *p
	return &out, nil
}

func (f *fakeRepository) AddAuthorship(_ context.Context, a *publication.Authorship) (*publication.Authorship, error) {
	if _, ok := f.publications[a.PublicationID]; !ok {
		return nil, publication.ErrPublicationNotFound
	}
	if !f.authors[a.AuthorID] {
		return nil, publication.ErrAuthorMissing
	}
	for _, existing := range f.authorships {
		if existing.PublicationID != a.PublicationID {
			continue
		}
		if existing.AuthorID == a.AuthorID {
			return nil, publication.ErrDuplicateAuthorship
		}
		if existing.AuthorPosition == a.AuthorPosition {
			return nil, publication.ErrDuplicatePosition
		}
	}
	stored := *a
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.authorships[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (f *fakeRepository) GetAuthorship(_ context.Context, id uuid.UUID) (*publication.Authorship, error) {
	a, ok := f.authorships[id]
	if !ok {
		return nil, publication.ErrAuthorshipNotFound
	}
	out := *a
	return &out, nil
}

func (f *fakeRepository) ListAuthorships(_ context.Context, filter publication.AuthorshipFilter) ([]publication.Authorship, error) {
	var list []publication.Authorship
	for _, a := range f.authorships {
		if filter.PublicationID != nil && a.PublicationID != *filter.PublicationID {
			continue
		}
		if filter.AuthorID != nil && a.AuthorID != *filter.AuthorID {
			continue
		}
		list = append(list, *a)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].AuthorPosition < list[j].AuthorPosition })
	return list, nil
}

func (f *fakeRepository) UpdateAuthorship(_ context.Context, id uuid.UUID, req *publication.UpdateAuthorshipRequest) (*publication.Authorship, error) {
	a, ok := f.authorships[id]
	if !ok {
		return nil, publication.ErrAuthorshipNotFound
	}
	if req.AuthorPosition != nil {
		for _, other := range f.authorships {
			if other.ID != id && other.PublicationID == a.PublicationID && other.AuthorPosition == *req.AuthorPosition {
				return nil, publication.ErrDuplicatePosition
			}
		}
		a.AuthorPosition = *req.AuthorPosition
	}
	if req.PublishedAsName != nil {
		a.PublishedAsName = *req.PublishedAsName
	}
	if req.Affiliation != nil {
		a.Affiliation = req.Affiliation
	}
	a.Modifier = req.Modifier
	a.UpdatedAt = time.Now()
	out := *a
	return &out, nil
}

func (f *fakeRepository) DeleteAuthorship(_ context.Context, id uuid.UUID) error {
	a, ok := f.authorships[id]
	if !ok {
		return publication.ErrAuthorshipNotFound
	}
	delete(f.authorships, id)
	if p, ok := f.publications[a.PublicationID]; ok {
		if p.PresenterAuthorID != nil && *p.PresenterAuthorID == a.AuthorID {
			p.PresenterAuthorID = nil
		}
	}
	return nil
}

func (f *fakeRepository) AuthorshipExists(_ context.Context, publicationID, authorID uuid.UUID) (bool, error) {
	for _, a := range f.authorships {
		if a.PublicationID == publicationID && a.AuthorID == authorID {
			return true, nil
		}
	}
	return false, nil
}

type fixture struct {
	svc          publication.Service
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
		svc:          NewPublicationService(repo),
		repo:         repo,
		conferenceID: conferenceID,
		authorID:     authorID,
	}
}

func (fx *fixture) createPublication(t *testing.T, key string) *publication.Publication {
	t.Helper()
	created, err := fx.svc.Create(context.Background(), &publication.CreatePublicationRequest{
		ConferenceID: fx.conferenceID,
		CanonicalKey: key,
		Title:        "Quantum advantage from shallow circuits",
		PaperType:    "regular",
		Creator:      "tester",
	})
	require.NoError(t, err)
	return created
}

func (fx *fixture) addAuthorship(t *testing.T, pubID, authorID uuid.UUID, position int) *publication.Authorship {
	t.Helper()
	a, err := fx.svc.AddAuthorship(context.Background(), pubID, &publication.AddAuthorshipRequest{
		AuthorID:        authorID,
		AuthorPosition:  position,
		PublishedAsName: "A. Tester",
		Creator:         "tester",
	})
	require.NoError(t, err)
	return a
}

func TestCreatePublication(t *testing.T) {
	fx := newFixture(t)

	created := fx.createPublication(t, "qip2024-001")
	assert.Equal(t, publication.PaperRegular, created.PaperType)
	assert.Nil(t, created.PresenterAuthorID)
	assert.False(t, created.IsProceedingsTrack)
}

func TestCreatePublicationDuplicateCanonicalKey(t *testing.T) {
	fx := newFixture(t)

	fx.createPublication(t, "qip2024-001")
	_, err := fx.svc.Create(context.Background(), &publication.CreatePublicationRequest{
		ConferenceID: fx.conferenceID,
		CanonicalKey: "qip2024-001",
		Title:        "A different paper",
		PaperType:    "poster",
		Creator:      "tester",
	})
	assert.ErrorIs(t, err, publication.ErrDuplicateCanonicalKey)
}

func TestCreatePublicationUnknownConference(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.svc.Create(context.Background(), &publication.CreatePublicationRequest{
		ConferenceID: uuid.New(),
		CanonicalKey: "qip2024-002",
		Title:        "Orphan paper",
		PaperType:    "regular",
		Creator:      "tester",
	})
	assert.ErrorIs(t, err, publication.ErrConferenceMissing)
}

func TestCreatePublicationBadPaperType(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.svc.Create(context.Background(), &publication.CreatePublicationRequest{
		ConferenceID: fx.conferenceID,
		CanonicalKey: "qip2024-003",
		Title:        "Paper",
		PaperType:    "lightning",
		Creator:      "tester",
	})
	assert.Error(t, err)
}

func TestAddAuthorshipDuplicateAuthor(t *testing.T) {
	fx := newFixture(t)
	p := fx.createPublication(t, "qip2024-001")

	fx.addAuthorship(t, p.ID, fx.authorID, 1)

	_, err := fx.svc.AddAuthorship(context.Background(), p.ID, &publication.AddAuthorshipRequest{
		AuthorID:        fx.authorID,
		AuthorPosition:  2,
		PublishedAsName: "A. Tester",
		Creator:         "tester",
	})
	assert.ErrorIs(t, err, publication.ErrDuplicateAuthorship)
}

func TestAddAuthorshipDuplicatePosition(t *testing.T) {
	fx := newFixture(t)
	p := fx.createPublication(t, "qip2024-001")

	second := uuid.New()
	fx.repo.authors[second] = true

	fx.addAuthorship(t, p.ID, fx.authorID, 1)

	_, err := fx.svc.AddAuthorship(context.Background(), p.ID, &publication.AddAuthorshipRequest{
		AuthorID:        second,
		AuthorPosition:  1,
		PublishedAsName: "B. Tester",
		Creator:         "tester",
	})
	assert.ErrorIs(t, err, publication.ErrDuplicatePosition)
}

func TestAddAuthorshipPositionZero(t *testing.T) {
	fx := newFixture(t)
	p := fx.createPublication(t, "qip2024-001")

	_, err := fx.svc.AddAuthorship(context.Background(), p.ID, &publication.AddAuthorshipRequest{
		AuthorID:        fx.authorID,
		AuthorPosition:  0,
		PublishedAsName: "A. Tester",
		Creator:         "tester",
	})
	assert.Error(t, err)
}

func TestSetPresenterMustBeListed(t *testing.T) {
	fx := newFixture(t)
	p := fx.createPublication(t, "qip2024-001")
	ctx := context.Background()

	// Not listed yet: rejected.
	_, err := fx.svc.Update(ctx, p.ID, &publication.UpdatePublicationRequest{
		PresenterAuthorID: &fx.authorID,
		Modifier:          "editor",
	})
	assert.ErrorIs(t, err, publication.ErrPresenterNotListed)

	fx.addAuthorship(t, p.ID, fx.authorID, 1)

	updated, err := fx.svc.Update(ctx, p.ID, &publication.UpdatePublicationRequest{
		PresenterAuthorID: &fx.authorID,
		Modifier:          "editor",
	})
	require.NoError(t, err)
	require.NotNil(t, updated.PresenterAuthorID)
	assert.Equal(t, fx.authorID, *updated.PresenterAuthorID)
}

func TestDeleteAuthorshipClearsPresenter(t *testing.T) {
	fx := newFixture(t)
	p := fx.createPublication(t, "qip2024-001")
	ctx := context.Background()

	a := fx.addAuthorship(t, p.ID, fx.authorID, 1)
	_, err := fx.svc.Update(ctx, p.ID, &publication.UpdatePublicationRequest{
		PresenterAuthorID: &fx.authorID,
		Modifier:          "editor",
	})
	require.NoError(t, err)

	require.NoError(t, fx.svc.DeleteAuthorship(ctx, a.ID))

	got, err := fx.svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got.PresenterAuthorID)
}

func TestClearPresenter(t *testing.T) {
	fx := newFixture(t)
	p := fx.createPublication(t, "qip2024-001")
	ctx := context.Background()

	fx.addAuthorship(t, p.ID, fx.authorID, 1)
	_, err := fx.svc.Update(ctx, p.ID, &publication.UpdatePublicationRequest{
		PresenterAuthorID: &fx.authorID,
		Modifier:          "editor",
	})
	require.NoError(t, err)

	cleared, err := fx.svc.ClearPresenter(ctx, p.ID, "editor")
	require.NoError(t, err)
	assert.Nil(t, cleared.PresenterAuthorID)
	assert.Equal(t, "editor", cleared.Modifier)

	// The presenter can be set again afterwards.
	updated, err := fx.svc.Update(ctx, p.ID, &publication.UpdatePublicationRequest{
		PresenterAuthorID: &fx.authorID,
		Modifier:          "editor",
	})
	require.NoError(t, err)
	require.NotNil(t, updated.PresenterAuthorID)
	assert.Equal(t, fx.authorID, *updated.PresenterAuthorID)
}

func TestClearPresenterValidation(t *testing.T) {
	fx := newFixture(t)
	p := fx.createPublication(t, "qip2024-001")
	ctx := context.Background()

	_, err := fx.svc.ClearPresenter(ctx, uuid.New(), "editor")
	assert.ErrorIs(t, err, publication.ErrPublicationNotFound)

	_, err = fx.svc.ClearPresenter(ctx, p.ID, "")
	assert.Error(t, err)
}

func TestDeleteAuthorshipKeepsUnrelatedPresenter(t *testing.T) {
	fx := newFixture(t)
	p := fx.createPublication(t, "qip2024-001")
	ctx := context.Background()

	second := uuid.New()
	fx.repo.authors[second] = true

	fx.addAuthorship(t, p.ID, fx.authorID, 1)
	other := fx.addAuthorship(t, p.ID, second, 2)

	_, err := fx.svc.Update(ctx, p.ID, &publication.UpdatePublicationRequest{
		PresenterAuthorID: &fx.authorID,
		Modifier:          "editor",
	})
	require.NoError(t, err)

	// Deleting a different author's row leaves the presenter alone.
	require.NoError(t, fx.svc.DeleteAuthorship(ctx, other.ID))

	got, err := fx.svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got.PresenterAuthorID)
	assert.Equal(t, fx.authorID, *got.PresenterAuthorID)
}

func TestUpdateAuthorshipPositionConflict(t *testing.T) {
	fx := newFixture(t)
	p := fx.createPublication(t, "qip2024-001")

	second := uuid.New()
	fx.repo.authors[second] = true

	fx.addAuthorship(t, p.ID, fx.authorID, 1)
	a2 := fx.addAuthorship(t, p.ID, second, 2)

	pos := 1
	_, err := fx.svc.UpdateAuthorship(context.Background(), a2.ID, &publication.UpdateAuthorshipRequest{
		AuthorPosition: &pos,
		Modifier:       "editor",
	})
	assert.ErrorIs(t, err, publication.ErrDuplicatePosition)
}

func TestDeletePublicationCascadesAuthorships(t *testing.T) {
	fx := newFixture(t)
	p := fx.createPublication(t, "qip2024-001")
	ctx := context.Background()

	fx.addAuthorship(t, p.ID, fx.authorID, 1)

	require.NoError(t, fx.svc.Delete(ctx, p.ID))

	list, err := fx.svc.ListAuthorships(ctx, publication.AuthorshipFilter{PublicationID: &p.ID})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestGetByCanonicalKey(t *testing.T) {
	fx := newFixture(t)
	p := fx.createPublication(t, "qip2024-001")

	got, err := fx.svc.GetByCanonicalKey(context.Background(), "qip2024-001")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)

	_, err = fx.svc.GetByCanonicalKey(context.Background(), "nope")
	assert.ErrorIs(t, err, publication.ErrPublicationNotFound)
}
