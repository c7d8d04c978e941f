package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"scholarstream/server/internal/domain"
	"scholarstream/server/internal/dto"
)

type stubPaymentRepo struct {
	payments []domain.Payment
	sumErr   error
}

func (s *stubPaymentRepo) Insert(p *domain.Payment) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	p.ID = id
	s.payments = append(s.payments, *p)
	return id, nil
}

func (s *stubPaymentRepo) FindByEmail(email string) ([]domain.Payment, error) {
	out := []domain.Payment{}
	for _, p := range s.payments {
		if p.Email == email {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubPaymentRepo) SumAmounts() (float64, error) {
	if s.sumErr != nil {
		return 0, s.sumErr
	}
	var total float64
	for _, p := range s.payments {
		total += p.Amount
	}
	return total, nil
}

func validPaymentRequest() dto.RecordPaymentRequest {
	return dto.RecordPaymentRequest{
		ScholarshipID: primitive.NewObjectID().Hex(),
		Amount:        50,
		TransactionID: "pi_123",
		Email:         "student@example.com",
	}
}

func TestRecordPaymentStampsStatusAndTime(t *testing.T) {
	repo := &stubPaymentRepo{}
	svc := NewPaymentService(repo, &stubProducer{})

	id, err := svc.Record(validPaymentRequest())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	require.Len(t, repo.payments, 1)
	stored := repo.payments[0]
	// status is stamped completed unconditionally; the gateway verified
	// the charge before this call
	assert.Equal(t, "completed", stored.Status)
	assert.False(t, stored.PaidAt.IsZero())
	assert.Equal(t, float64(50), stored.Amount)
}

func TestRecordPaymentRequiresAllFields(t *testing.T) {
	repo := &stubPaymentRepo{}
	svc := NewPaymentService(repo, nil)

	cases := map[string]func(*dto.RecordPaymentRequest){
		"scholarshipId": func(r *dto.RecordPaymentRequest) { r.ScholarshipID = "" },
		"amount":        func(r *dto.RecordPaymentRequest) { r.Amount = nil },
		"transactionId": func(r *dto.RecordPaymentRequest) { r.TransactionID = "" },
		"email":         func(r *dto.RecordPaymentRequest) { r.Email = "" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := validPaymentRequest()
			mutate(&req)
			_, err := svc.Record(req)
			assert.ErrorIs(t, err, domain.ErrMissingFields)
		})
	}
	assert.Empty(t, repo.payments)
}

func TestRecordPaymentCoercesStringAmount(t *testing.T) {
	repo := &stubPaymentRepo{}
	svc := NewPaymentService(repo, nil)

	req := validPaymentRequest()
	req.Amount = "49.99"

	_, err := svc.Record(req)
	require.NoError(t, err)
	assert.Equal(t, 49.99, repo.payments[0].Amount)
}

// The ledger does not enforce linkage to an application: recording a
// payment whose scholarshipId matches nothing still succeeds. Known
// consistency gap, kept deliberately.
func TestRecordPaymentHasNoLinkageEnforcement(t *testing.T) {
	repo := &stubPaymentRepo{}
	svc := NewPaymentService(repo, nil)

	req := validPaymentRequest()
	req.ScholarshipID = "no-such-scholarship"

	_, err := svc.Record(req)
	assert.NoError(t, err)
}

func TestPaymentEventPublished(t *testing.T) {
	producer := &stubProducer{}
	svc := NewPaymentService(&stubPaymentRepo{}, producer)

	_, err := svc.Record(validPaymentRequest())
	require.NoError(t, err)

	require.Len(t, producer.messages, 1)
	assert.Equal(t, dto.EventPaymentRecorded, producer.messages[0][0])
}
