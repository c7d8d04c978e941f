package services

import (
	"encoding/json"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"scholarstream/server/internal/domain"
	"scholarstream/server/internal/dto"
	"scholarstream/server/internal/helper/utils"
	"scholarstream/server/internal/interfaces"
	"scholarstream/server/internal/repository"
)

type ApplicationService interface {
	Create(req dto.CreateApplicationRequest) (string, error)
	ListByApplicant(email string) ([]domain.Application, error)
	ListByIssuer(issuerEmail string) ([]domain.Application, error)
	GetByID(id string) (*domain.Application, error)
	UpdateStatus(id, status string) error
	UpdateFeedback(id, feedback string) error
	UpdateFull(id string, patch map[string]interface{}) error
	DeleteIfPending(id string) (int64, error)
	ForceDelete(id string) (int64, error)
}

type applicationService struct {
	repo     repository.ApplicationRepository
	producer interfaces.ProducerHandler
}

func NewApplicationService(repo repository.ApplicationRepository, producer interfaces.ProducerHandler) ApplicationService {
	return &applicationService{repo: repo, producer: producer}
}

func (s *applicationService) Create(req dto.CreateApplicationRequest) (string, error) {
	fees, feesErr := utils.CoerceFloat(req.Fees)

	if req.Scholar.ScholarshipName == "" ||
		req.ScholarshipID == "" ||
		req.ScholarshipName == "" ||
		req.UniversityName == "" ||
		feesErr != nil ||
		req.Applicant == "" ||
		req.UserName == "" {
		return "", domain.ErrMissingFields
	}

	status := req.Status
	if status == "" {
		status = domain.StatusPending
	}
	if !domain.ValidStatus(status) {
		return "", domain.ErrInvalidStatus
	}

	app := &domain.Application{
		Scholar:         req.Scholar,
		ScholarshipID:   req.ScholarshipID,
		ScholarshipName: req.ScholarshipName,
		UniversityName:  req.UniversityName,
		Fees:            fees,
		Applicant:       req.Applicant,
		UserName:        req.UserName,
		AppliedDate:     time.Now(),
		Status:          status,
		Payment:         req.Payment,
	}

	id, err := s.repo.Insert(app)
	if err != nil {
		return "", err
	}

	s.publish(dto.EventApplicationCreated, dto.ApplicationEvent{
		ApplicationID:   id.Hex(),
		ScholarshipID:   app.ScholarshipID,
		ScholarshipName: app.ScholarshipName,
		Applicant:       app.Applicant,
		Status:          app.Status,
	})

	return id.Hex(), nil
}

func (s *applicationService) ListByApplicant(email string) ([]domain.Application, error) {
	if email == "" {
		return nil, domain.ErrMissingParameter
	}
	return s.repo.FindByApplicant(email)
}

func (s *applicationService) ListByIssuer(issuerEmail string) ([]domain.Application, error) {
	if issuerEmail == "" {
		return nil, domain.ErrMissingParameter
	}
	return s.repo.FindByIssuer(issuerEmail)
}

func (s *applicationService) GetByID(id string) (*domain.Application, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	return s.repo.FindByID(oid)
}

func (s *applicationService) UpdateStatus(id, status string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidID
	}
	if !domain.ValidStatus(status) {
		return domain.ErrInvalidStatus
	}

	matched, err := s.repo.UpdateFields(oid, map[string]interface{}{"status": status})
	if err != nil {
		return err
	}
	if matched == 0 {
		return domain.ErrNotFound
	}

	s.publish(dto.EventApplicationStatusChanged, dto.ApplicationEvent{
		ApplicationID: id,
		Status:        status,
	})
	return nil
}

func (s *applicationService) UpdateFeedback(id, feedback string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidID
	}

	matched, err := s.repo.UpdateFields(oid, map[string]interface{}{"feedback": feedback})
	if err != nil {
		return err
	}
	if matched == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *applicationService) UpdateFull(id string, patch map[string]interface{}) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidID
	}

	delete(patch, "_id")
	if len(patch) == 0 {
		return domain.ErrNoChange
	}
	if status, ok := patch["status"].(string); ok && !domain.ValidStatus(status) {
		return domain.ErrInvalidStatus
	}

	matched, err := s.repo.UpdateFields(oid, patch)
	if err != nil {
		return err
	}
	if matched == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteIfPending is the guarded path: only a pending application may
// be withdrawn through it.
func (s *applicationService) DeleteIfPending(id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, domain.ErrInvalidID
	}

	app, err := s.repo.FindByID(oid)
	if err != nil {
		return 0, err
	}
	if app.Status != domain.StatusPending {
		return 0, domain.ErrInvalidState
	}

	return s.repo.Delete(oid)
}

// ForceDelete removes an application regardless of state. The route is
// Admin-gated; the store primitive is the same as the guarded path.
func (s *applicationService) ForceDelete(id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, domain.ErrInvalidID
	}

	deleted, err := s.repo.Delete(oid)
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, domain.ErrNotFound
	}
	return deleted, nil
}

func (s *applicationService) publish(key string, event interface{}) {
	if s.producer == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}
	if err := s.producer.PublishMessage([]byte(key), payload); err != nil {
		log.Printf("publish %s event error: %v", key, err)
	}
}
