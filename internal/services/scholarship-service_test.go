package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"scholarstream/server/internal/domain"
	"scholarstream/server/internal/dto"
	"scholarstream/server/internal/repository"
)

type stubScholarshipRepo struct {
	items     []domain.Scholarship
	total     int64
	lastQuery repository.ScholarshipListQuery

	byID     map[primitive.ObjectID]*domain.Scholarship
	matched  int64
	modified int64
}

func (s *stubScholarshipRepo) List(q repository.ScholarshipListQuery) ([]domain.Scholarship, int64, error) {
	s.lastQuery = q
	return s.items, s.total, nil
}

func (s *stubScholarshipRepo) FindByOwner(ownerEmail string) ([]domain.Scholarship, error) {
	return s.items, nil
}

func (s *stubScholarshipRepo) FindRecommended(category string, exclude primitive.ObjectID, limit int64) ([]domain.Scholarship, error) {
	return s.items, nil
}

func (s *stubScholarshipRepo) FindFeatured(limit int64) ([]domain.Scholarship, error) {
	return s.items, nil
}

func (s *stubScholarshipRepo) FindByID(id primitive.ObjectID) (*domain.Scholarship, error) {
	if sch, ok := s.byID[id]; ok {
		return sch, nil
	}
	return nil, domain.ErrNotFound
}

func (s *stubScholarshipRepo) Insert(sch *domain.Scholarship) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	if s.byID == nil {
		s.byID = map[primitive.ObjectID]*domain.Scholarship{}
	}
	sch.ID = id
	s.byID[id] = sch
	return id, nil
}

func (s *stubScholarshipRepo) Update(id primitive.ObjectID, patch map[string]interface{}) (int64, int64, error) {
	return s.matched, s.modified, nil
}

func (s *stubScholarshipRepo) Delete(id primitive.ObjectID) (int64, error) {
	if _, ok := s.byID[id]; !ok {
		return 0, nil
	}
	delete(s.byID, id)
	return 1, nil
}

func (s *stubScholarshipRepo) Count() (int64, error) {
	return s.total, nil
}

func TestListPaginationMath(t *testing.T) {
	cases := []struct {
		name       string
		total      int64
		page       int
		limit      int
		wantSkip   int64
		wantLimit  int64
		wantPages  int64
		wantedPage int
	}{
		{"first page defaults", 1, 0, 0, 0, 9, 1, 1},
		{"exact division", 18, 2, 9, 9, 9, 2, 2},
		{"ceil rounds up", 19, 1, 9, 0, 9, 3, 1},
		{"single item", 1, 1, 9, 0, 9, 1, 1},
		{"empty result", 0, 1, 9, 0, 9, 0, 1},
		{"small limit", 10, 3, 3, 6, 3, 4, 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &stubScholarshipRepo{total: tc.total}
			svc := NewScholarshipService(repo)

			result, err := svc.List(dto.ScholarshipQuery{Page: tc.page, Limit: tc.limit})
			require.NoError(t, err)

			assert.Equal(t, tc.wantSkip, repo.lastQuery.Skip)
			assert.Equal(t, tc.wantLimit, repo.lastQuery.Limit)
			assert.Equal(t, tc.wantPages, result.TotalPages)
			assert.Equal(t, tc.wantedPage, result.Page)
			assert.Equal(t, tc.total, result.Total)
		})
	}
}

func TestListPassesFilterThrough(t *testing.T) {
	repo := &stubScholarshipRepo{
		items: []domain.Scholarship{{ScholarshipName: "STEM Grant", UniversityCountry: "USA", ScholarshipCategory: "STEM", ApplicationFees: 50}},
		total: 1,
	}
	svc := NewScholarshipService(repo)

	result, err := svc.List(dto.ScholarshipQuery{Category: "STEM", Page: 1, Limit: 9})
	require.NoError(t, err)

	assert.Equal(t, "STEM", repo.lastQuery.Category)
	assert.Equal(t, int64(1), result.Total)
	assert.Equal(t, int64(1), result.TotalPages)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "STEM Grant", result.Data[0].ScholarshipName)
}

func TestCreateCoercesFees(t *testing.T) {
	repo := &stubScholarshipRepo{}
	svc := NewScholarshipService(repo)

	id, err := svc.Create(dto.CreateScholarshipRequest{
		ScholarshipName:     "STEM Grant",
		UniversityName:      "MIT",
		UniversityCountry:   "USA",
		ScholarshipCategory: "STEM",
		ApplicationFees:     "50",
		PostedUserEmail:     "mod@example.com",
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	oid, err := primitive.ObjectIDFromHex(id)
	require.NoError(t, err)
	stored := repo.byID[oid]
	assert.Equal(t, float64(50), stored.ApplicationFees)
	assert.False(t, stored.PostedDate.IsZero())
}

func TestGetByIDInvalidAndMissing(t *testing.T) {
	svc := NewScholarshipService(&stubScholarshipRepo{})

	_, err := svc.GetByID("zzz")
	assert.ErrorIs(t, err, domain.ErrInvalidID)

	_, err = svc.GetByID(primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateDistinguishesNotFoundFromNoChange(t *testing.T) {
	hex := primitive.NewObjectID().Hex()

	repo := &stubScholarshipRepo{matched: 0, modified: 0}
	svc := NewScholarshipService(repo)
	err := svc.Update(hex, map[string]interface{}{"scholarshipName": "X"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	repo = &stubScholarshipRepo{matched: 1, modified: 0}
	svc = NewScholarshipService(repo)
	err = svc.Update(hex, map[string]interface{}{"scholarshipName": "X"})
	assert.ErrorIs(t, err, domain.ErrNoChange)

	repo = &stubScholarshipRepo{matched: 1, modified: 1}
	svc = NewScholarshipService(repo)
	assert.NoError(t, svc.Update(hex, map[string]interface{}{"scholarshipName": "X"}))
}

func TestDeleteChecksExistenceFirst(t *testing.T) {
	repo := &stubScholarshipRepo{}
	svc := NewScholarshipService(repo)

	_, err := svc.Delete(primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	id, err := svc.Create(dto.CreateScholarshipRequest{ScholarshipName: "Grant"})
	require.NoError(t, err)

	deleted, err := svc.Delete(id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}

func TestRecommendedValidatesExcludeID(t *testing.T) {
	svc := NewScholarshipService(&stubScholarshipRepo{})

	_, err := svc.ListRecommended("STEM", "bad-id")
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}
