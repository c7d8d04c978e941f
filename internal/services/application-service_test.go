package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"scholarstream/server/internal/domain"
	"scholarstream/server/internal/dto"
)

type stubApplicationRepo struct {
	apps map[primitive.ObjectID]*domain.Application
}

func newStubApplicationRepo() *stubApplicationRepo {
	return &stubApplicationRepo{apps: map[primitive.ObjectID]*domain.Application{}}
}

func (s *stubApplicationRepo) Insert(a *domain.Application) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	copied := *a
	copied.ID = id
	s.apps[id] = &copied
	return id, nil
}

func (s *stubApplicationRepo) FindByApplicant(email string) ([]domain.Application, error) {
	out := []domain.Application{}
	for _, a := range s.apps {
		if a.Applicant == email {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (s *stubApplicationRepo) FindByIssuer(issuerEmail string) ([]domain.Application, error) {
	out := []domain.Application{}
	for _, a := range s.apps {
		if a.Scholar.PostedUserEmail == issuerEmail {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (s *stubApplicationRepo) FindByID(id primitive.ObjectID) (*domain.Application, error) {
	a, ok := s.apps[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *a
	return &copied, nil
}

func (s *stubApplicationRepo) FindAll() ([]domain.Application, error) {
	out := []domain.Application{}
	for _, a := range s.apps {
		out = append(out, *a)
	}
	return out, nil
}

func (s *stubApplicationRepo) UpdateFields(id primitive.ObjectID, patch map[string]interface{}) (int64, error) {
	a, ok := s.apps[id]
	if !ok {
		return 0, nil
	}
	if status, ok := patch["status"].(string); ok {
		a.Status = status
	}
	if feedback, ok := patch["feedback"].(string); ok {
		a.Feedback = feedback
	}
	return 1, nil
}

func (s *stubApplicationRepo) Delete(id primitive.ObjectID) (int64, error) {
	if _, ok := s.apps[id]; !ok {
		return 0, nil
	}
	delete(s.apps, id)
	return 1, nil
}

func (s *stubApplicationRepo) Count() (int64, error) {
	return int64(len(s.apps)), nil
}

type stubProducer struct {
	messages [][2]string
}

func (p *stubProducer) PublishMessage(key, value []byte) error {
	p.messages = append(p.messages, [2]string{string(key), string(value)})
	return nil
}

func validCreateRequest() dto.CreateApplicationRequest {
	return dto.CreateApplicationRequest{
		Scholar: domain.ScholarshipSnapshot{
			ScholarshipName: "STEM Grant",
			UniversityName:  "MIT",
			ApplicationFees: 50,
			PostedUserEmail: "mod@example.com",
		},
		ScholarshipID:   primitive.NewObjectID().Hex(),
		ScholarshipName: "STEM Grant",
		UniversityName:  "MIT",
		Fees:            50,
		Applicant:       "student@example.com",
		UserName:        "Student One",
	}
}

func TestApplicationCreateDefaultsToPending(t *testing.T) {
	repo := newStubApplicationRepo()
	svc := NewApplicationService(repo, &stubProducer{})

	id, err := svc.Create(validCreateRequest())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	stored, err := svc.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, stored.Status)
	assert.False(t, stored.AppliedDate.IsZero())
}

func TestApplicationCreateMissingFields(t *testing.T) {
	repo := newStubApplicationRepo()
	svc := NewApplicationService(repo, nil)

	cases := map[string]func(*dto.CreateApplicationRequest){
		"scholar":         func(r *dto.CreateApplicationRequest) { r.Scholar = domain.ScholarshipSnapshot{} },
		"scholarshipId":   func(r *dto.CreateApplicationRequest) { r.ScholarshipID = "" },
		"scholarshipName": func(r *dto.CreateApplicationRequest) { r.ScholarshipName = "" },
		"universityName":  func(r *dto.CreateApplicationRequest) { r.UniversityName = "" },
		"fees":            func(r *dto.CreateApplicationRequest) { r.Fees = nil },
		"applicant":       func(r *dto.CreateApplicationRequest) { r.Applicant = "" },
		"userName":        func(r *dto.CreateApplicationRequest) { r.UserName = "" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := validCreateRequest()
			mutate(&req)
			_, err := svc.Create(req)
			assert.ErrorIs(t, err, domain.ErrMissingFields)
		})
	}

	// no partial inserts
	assert.Empty(t, repo.apps)
}

func TestApplicationCreateCoercesStringFees(t *testing.T) {
	repo := newStubApplicationRepo()
	svc := NewApplicationService(repo, nil)

	req := validCreateRequest()
	req.Fees = "50"

	id, err := svc.Create(req)
	require.NoError(t, err)

	stored, err := svc.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, float64(50), stored.Fees)
}

func TestUpdateStatusAcceptsOnlyLifecycleEnum(t *testing.T) {
	repo := newStubApplicationRepo()
	svc := NewApplicationService(repo, &stubProducer{})

	id, err := svc.Create(validCreateRequest())
	require.NoError(t, err)

	for _, status := range []string{"pending", "processing", "completed", "rejected"} {
		assert.NoError(t, svc.UpdateStatus(id, status))
	}

	for _, status := range []string{"done", "Pending", "", "approved", "cancelled"} {
		assert.ErrorIs(t, svc.UpdateStatus(id, status), domain.ErrInvalidStatus)
	}
}

func TestUpdateStatusUnknownID(t *testing.T) {
	svc := NewApplicationService(newStubApplicationRepo(), nil)

	err := svc.UpdateStatus(primitive.NewObjectID().Hex(), domain.StatusProcessing)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = svc.UpdateStatus("not-a-hex-id", domain.StatusProcessing)
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestDeleteIfPendingOnlyWhilePending(t *testing.T) {
	repo := newStubApplicationRepo()
	svc := NewApplicationService(repo, &stubProducer{})

	// scenario: freshly created application can be withdrawn
	id, err := svc.Create(validCreateRequest())
	require.NoError(t, err)

	deleted, err := svc.DeleteIfPending(id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	// scenario: once completed, the guarded path refuses and the
	// record stays retrievable
	for _, status := range []string{domain.StatusProcessing, domain.StatusCompleted, domain.StatusRejected} {
		id, err := svc.Create(validCreateRequest())
		require.NoError(t, err)
		require.NoError(t, svc.UpdateStatus(id, status))

		_, err = svc.DeleteIfPending(id)
		assert.ErrorIs(t, err, domain.ErrInvalidState)

		stored, err := svc.GetByID(id)
		require.NoError(t, err)
		assert.Equal(t, status, stored.Status)
	}
}

func TestForceDeleteIgnoresState(t *testing.T) {
	repo := newStubApplicationRepo()
	svc := NewApplicationService(repo, nil)

	id, err := svc.Create(validCreateRequest())
	require.NoError(t, err)
	require.NoError(t, svc.UpdateStatus(id, domain.StatusCompleted))

	deleted, err := svc.ForceDelete(id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = svc.ForceDelete(id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListByApplicantRequiresEmail(t *testing.T) {
	svc := NewApplicationService(newStubApplicationRepo(), nil)

	_, err := svc.ListByApplicant("")
	assert.ErrorIs(t, err, domain.ErrMissingParameter)
}

func TestListByIssuerMatchesEmbeddedSnapshot(t *testing.T) {
	repo := newStubApplicationRepo()
	svc := NewApplicationService(repo, nil)

	req := validCreateRequest()
	_, err := svc.Create(req)
	require.NoError(t, err)

	other := validCreateRequest()
	other.Scholar.PostedUserEmail = "someone-else@example.com"
	_, err = svc.Create(other)
	require.NoError(t, err)

	queue, err := svc.ListByIssuer("mod@example.com")
	require.NoError(t, err)
	assert.Len(t, queue, 1)
}

func TestApplicationEventsPublished(t *testing.T) {
	producer := &stubProducer{}
	svc := NewApplicationService(newStubApplicationRepo(), producer)

	id, err := svc.Create(validCreateRequest())
	require.NoError(t, err)
	require.NoError(t, svc.UpdateStatus(id, domain.StatusProcessing))

	require.Len(t, producer.messages, 2)
	assert.Equal(t, dto.EventApplicationCreated, producer.messages[0][0])
	assert.Equal(t, dto.EventApplicationStatusChanged, producer.messages[1][0])
}
