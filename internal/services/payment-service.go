package services

import (
	"encoding/json"
	"log"
	"time"

	"scholarstream/server/internal/domain"
	"scholarstream/server/internal/dto"
	"scholarstream/server/internal/helper/utils"
	"scholarstream/server/internal/interfaces"
	"scholarstream/server/internal/repository"
)

type PaymentService interface {
	Record(req dto.RecordPaymentRequest) (string, error)
	ListByEmail(email string) ([]domain.Payment, error)
}

type paymentService struct {
	repo     repository.PaymentRepository
	producer interfaces.ProducerHandler
}

func NewPaymentService(repo repository.PaymentRepository, producer interfaces.ProducerHandler) PaymentService {
	return &paymentService{repo: repo, producer: producer}
}

// Record appends a completed payment. The charge itself was authorized
// at the gateway boundary before this call; the ledger does not verify
// it, and nothing ties the entry to an application beyond the
// identifiers the caller supplies.
func (s *paymentService) Record(req dto.RecordPaymentRequest) (string, error) {
	amount, amountErr := utils.CoerceFloat(req.Amount)

	if req.ScholarshipID == "" ||
		req.TransactionID == "" ||
		req.Email == "" ||
		amountErr != nil {
		return "", domain.ErrMissingFields
	}

	payment := &domain.Payment{
		ScholarshipID: req.ScholarshipID,
		Amount:        amount,
		TransactionID: req.TransactionID,
		Email:         req.Email,
		PaidAt:        time.Now(),
		Status:        "completed",
	}

	id, err := s.repo.Insert(payment)
	if err != nil {
		return "", err
	}

	if s.producer != nil {
		payload, merr := json.Marshal(dto.PaymentEvent{
			PaymentID:     id.Hex(),
			ScholarshipID: payment.ScholarshipID,
			TransactionID: payment.TransactionID,
			Email:         payment.Email,
			Amount:        payment.Amount,
		})
		if merr == nil {
			if perr := s.producer.PublishMessage([]byte(dto.EventPaymentRecorded), payload); perr != nil {
				log.Printf("publish payment event error: %v", perr)
			}
		}
	}

	return id.Hex(), nil
}

func (s *paymentService) ListByEmail(email string) ([]domain.Payment, error) {
	if email == "" {
		return nil, domain.ErrMissingParameter
	}
	return s.repo.FindByEmail(email)
}
