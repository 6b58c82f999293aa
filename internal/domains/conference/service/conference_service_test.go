package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quantumdb-backend/internal/domains/conference"
)

// fakeRepository is an in-memory conference.Repository for service tests.
type fakeRepository struct {
	byID       map[uuid.UUID]*conference.Conference
	referenced map[uuid.UUID]bool // ids that publications/roles still point at
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		byID:       make(map[uuid.UUID]*conference.Conference),
		referenced: make(map[uuid.UUID]bool),
	}
}

func (f *fakeRepository) Create(_ context.Context, c *conference.Conference) (*conference.Conference, error) {
	for _, existing := range f.byID {
		if existing.Venue == c.Venue && existing.Year == c.Year {
			return nil, conference.ErrDuplicateConference
		}
	}
	stored := *c
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.byID[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (f *fakeRepository) GetByID(_ context.Context, id uuid.UUID) (*conference.Conference, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, conference.ErrConferenceNotFound
	}
	out := *c
	return &out, nil
}

func (f *fakeRepository) GetByVenueYear(_ context.Context, venue conference.Venue, year int) (*conference.Conference, error) {
	for _, c := range f.byID {
		if c.Venue == venue && c.Year == year {
			out := *c
			return &out, nil
		}
	}
	return nil, conference.ErrConferenceNotFound
}

func (f *fakeRepository) List(_ context.Context, filter conference.ConferenceFilter) ([]conference.Conference, error) {
	var list []conference.Conference
	for _, c := range f.byID {
		if filter.Venue != nil && c.Venue != *filter.Venue {
			continue
		}
		if filter.Year != nil && c.Year != *filter.Year {
			continue
		}
		if filter.FromYear != nil && c.Year < *filter.FromYear {
			continue
		}
		if filter.ToYear != nil && c.Year > *filter.ToYear {
			continue
		}
		list = append(list, *c)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Year != list[j].Year {
			return list[i].Year > list[j].Year
		}
		return list[i].Venue < list[j].Venue
	})
	return list, nil
}

func (f *fakeRepository) Update(_ context.Context, id uuid.UUID, req *conference.UpdateConferenceRequest) (*conference.Conference, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, conference.ErrConferenceNotFound
	}
	if req.StartDate != nil {
		c.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		c.EndDate = req.EndDate
	}
	if req.City != nil {
		c.City = req.City
	}
	if req.SubmissionCount != nil {
		c.SubmissionCount = req.SubmissionCount
	}
	if req.AcceptanceCount != nil {
		c.AcceptanceCount = req.AcceptanceCount
	}
	if req.Metadata != nil {
		c.Metadata = req.Metadata
	}
	c.Modifier = req.Modifier
	c.UpdatedAt = time.Now()
	out := *c
	return &out, nil
}

func (f *fakeRepository) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return conference.ErrConferenceNotFound
	}
	if f.referenced[id] {
		return conference.ErrConferenceInUse
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeRepository) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.byID[id]
	return ok, nil
}

func validCreateRequest() *conference.CreateConferenceRequest {
	return &conference.CreateConferenceRequest{
		Venue:   "QIP",
		Year:    2024,
		Creator: "tester",
	}
}

func TestCreateConference(t *testing.T) {
	repo := newFakeRepository()
	svc := NewConferenceService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, conference.VenueQIP, created.Venue)
	assert.Equal(t, 2024, created.Year)
	assert.Equal(t, "QIP2024", created.Slug())
	assert.Equal(t, "tester", created.Creator)
	assert.Equal(t, "tester", created.Modifier)
	assert.NotNil(t, created.Metadata)
}

func TestCreateConferenceLowercaseVenue(t *testing.T) {
	repo := newFakeRepository()
	svc := NewConferenceService(repo)

	req := validCreateRequest()
	req.Venue = "qip"

	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, conference.VenueQIP, created.Venue)
}

func TestCreateConferenceDuplicateVenueYear(t *testing.T) {
	repo := newFakeRepository()
	svc := NewConferenceService(repo)
	ctx := context.Background()

	firstReq := validCreateRequest()
	firstCity := "Taipei"
	firstReq.City = &firstCity
	first, err := svc.Create(ctx, firstReq)
	require.NoError(t, err)

	// Second write of the same (venue, year) loses; first write wins.
	secondReq := validCreateRequest()
	secondCity := "Tokyo"
	secondReq.City = &secondCity
	_, err = svc.Create(ctx, secondReq)
	assert.ErrorIs(t, err, conference.ErrDuplicateConference)

	got, err := svc.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	require.NotNil(t, got.City)
	assert.Equal(t, "Taipei", *got.City)
}

func TestCreateConferenceUnknownVenue(t *testing.T) {
	repo := newFakeRepository()
	svc := NewConferenceService(repo)

	req := validCreateRequest()
	req.Venue = "STOC"

	_, err := svc.Create(context.Background(), req)
	assert.Error(t, err)
}

func TestCreateConferenceYearOutOfRange(t *testing.T) {
	repo := newFakeRepository()
	svc := NewConferenceService(repo)

	req := validCreateRequest()
	req.Year = 1980

	_, err := svc.Create(context.Background(), req)
	assert.Error(t, err)
}

func TestCreateConferenceBadCountryCode(t *testing.T) {
	repo := newFakeRepository()
	svc := NewConferenceService(repo)

	req := validCreateRequest()
	cc := "usa"
	req.CountryCode = &cc

	_, err := svc.Create(context.Background(), req)
	assert.Error(t, err)
}

func TestCreateConferenceEndBeforeStart(t *testing.T) {
	repo := newFakeRepository()
	svc := NewConferenceService(repo)

	req := validCreateRequest()
	start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -3)
	req.StartDate = &start
	req.EndDate = &end

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, conference.ErrInvalidDateRange)
}

func TestGetConferenceBySlug(t *testing.T) {
	repo := newFakeRepository()
	svc := NewConferenceService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	got, err := svc.GetBySlug(ctx, "qip2024")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.GetBySlug(ctx, "QIP1234")
	assert.ErrorIs(t, err, conference.ErrInvalidSlug)

	_, err = svc.GetBySlug(ctx, "QCRYPT2024")
	assert.ErrorIs(t, err, conference.ErrConferenceNotFound)
}

func TestListConferencesOrderAndFilter(t *testing.T) {
	repo := newFakeRepository()
	svc := NewConferenceService(repo)
	ctx := context.Background()

	for _, c := range []struct {
		venue string
		year  int
	}{
		{"QIP", 2023}, {"QIP", 2024}, {"TQC", 2024}, {"QCRYPT", 2022},
	} {
		req := validCreateRequest()
		req.Venue = c.venue
		req.Year = c.year
		_, err := svc.Create(ctx, req)
		require.NoError(t, err)
	}

	all, err := svc.List(ctx, conference.ConferenceFilter{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, 2024, all[0].Year)
	assert.Equal(t, conference.VenueQIP, all[0].Venue)
	assert.Equal(t, conference.VenueTQC, all[1].Venue)
	assert.Equal(t, 2022, all[3].Year)

	venue := conference.VenueQIP
	qips, err := svc.List(ctx, conference.ConferenceFilter{Venue: &venue})
	require.NoError(t, err)
	assert.Len(t, qips, 2)
}

func TestUpdateConferencePartial(t *testing.T) {
	repo := newFakeRepository()
	svc := NewConferenceService(repo)
	ctx := context.Background()

	req := validCreateRequest()
	city := "Taipei"
	req.City = &city
	created, err := svc.Create(ctx, req)
	require.NoError(t, err)

	subs := 412
	updated, err := svc.Update(ctx, created.ID, &conference.UpdateConferenceRequest{
		SubmissionCount: &subs,
		Modifier:        "editor",
	})
	require.NoError(t, err)
	require.NotNil(t, updated.SubmissionCount)
	assert.Equal(t, 412, *updated.SubmissionCount)
	// Untouched fields keep their values.
	require.NotNil(t, updated.City)
	assert.Equal(t, "Taipei", *updated.City)
	assert.Equal(t, "editor", updated.Modifier)
}

func TestUpdateConferenceDateRangeAgainstStored(t *testing.T) {
	repo := newFakeRepository()
	svc := NewConferenceService(repo)
	ctx := context.Background()

	req := validCreateRequest()
	start := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	req.StartDate = &start
	created, err := svc.Create(ctx, req)
	require.NoError(t, err)

	bad := start.AddDate(0, 0, -1)
	_, err = svc.Update(ctx, created.ID, &conference.UpdateConferenceRequest{
		EndDate:  &bad,
		Modifier: "editor",
	})
	assert.ErrorIs(t, err, conference.ErrInvalidDateRange)
}

func TestUpdateConferenceNotFound(t *testing.T) {
	repo := newFakeRepository()
	svc := NewConferenceService(repo)

	_, err := svc.Update(context.Background(), uuid.New(), &conference.UpdateConferenceRequest{Modifier: "editor"})
	assert.ErrorIs(t, err, conference.ErrConferenceNotFound)
}

func TestDeleteConferenceWithDependents(t *testing.T) {
	repo := newFakeRepository()
	svc := NewConferenceService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)
	repo.referenced[created.ID] = true

	err = svc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, conference.ErrConferenceInUse)

	// Still there after the failed delete.
	_, err = svc.GetByID(ctx, created.ID)
	assert.NoError(t, err)

	repo.referenced[created.ID] = false
	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, conference.ErrConferenceNotFound)
}
