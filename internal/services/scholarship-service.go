package services

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"scholarstream/server/internal/domain"
	"scholarstream/server/internal/dto"
	"scholarstream/server/internal/helper/utils"
	"scholarstream/server/internal/repository"
)

const (
	defaultPage     = 1
	defaultLimit    = 9
	recommendedSize = 4
)

type ScholarshipService interface {
	List(q dto.ScholarshipQuery) (dto.PagedScholarships, error)
	ListByOwner(ownerEmail string) ([]domain.Scholarship, error)
	ListRecommended(category, excludeID string) ([]domain.Scholarship, error)
	ListFeatured(limit int) ([]domain.Scholarship, error)
	Create(req dto.CreateScholarshipRequest) (string, error)
	GetByID(id string) (*domain.Scholarship, error)
	Update(id string, patch map[string]interface{}) error
	Delete(id string) (int64, error)
}

type scholarshipService struct {
	repo repository.ScholarshipRepository
}

func NewScholarshipService(repo repository.ScholarshipRepository) ScholarshipService {
	return &scholarshipService{repo: repo}
}

func (s *scholarshipService) List(q dto.ScholarshipQuery) (dto.PagedScholarships, error) {
	page := q.Page
	if page < 1 {
		page = defaultPage
	}
	limit := q.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	// no upper bound on limit; known hardening gap

	items, total, err := s.repo.List(repository.ScholarshipListQuery{
		Search:   q.Search,
		Category: q.Category,
		SortBy:   q.SortBy,
		Order:    q.Order,
		Skip:     int64(page-1) * int64(limit),
		Limit:    int64(limit),
	})
	if err != nil {
		return dto.PagedScholarships{}, err
	}

	totalPages := total / int64(limit)
	if total%int64(limit) != 0 {
		totalPages++
	}

	return dto.PagedScholarships{
		Data:       items,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

func (s *scholarshipService) ListByOwner(ownerEmail string) ([]domain.Scholarship, error) {
	if ownerEmail == "" {
		return nil, domain.ErrMissingParameter
	}
	return s.repo.FindByOwner(ownerEmail)
}

func (s *scholarshipService) ListRecommended(category, excludeID string) ([]domain.Scholarship, error) {
	oid, err := primitive.ObjectIDFromHex(excludeID)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	return s.repo.FindRecommended(category, oid, recommendedSize)
}

func (s *scholarshipService) ListFeatured(limit int) ([]domain.Scholarship, error) {
	if limit < 1 {
		limit = 6
	}
	return s.repo.FindFeatured(int64(limit))
}

// Create inserts verbatim; required-field validation is a known gap
// carried over from the existing surface. Fee fields are still coerced
// to numbers before persistence.
func (s *scholarshipService) Create(req dto.CreateScholarshipRequest) (string, error) {
	appFees, _ := utils.CoerceFloat(req.ApplicationFees)
	tuition, _ := utils.CoerceFloat(req.TuitionFees)
	service, _ := utils.CoerceFloat(req.ServiceCharge)

	sch := &domain.Scholarship{
		ScholarshipName:     req.ScholarshipName,
		UniversityName:      req.UniversityName,
		UniversityCountry:   req.UniversityCountry,
		UniversityCity:      req.UniversityCity,
		UniversityLogo:      req.UniversityLogo,
		SubjectCategory:     req.SubjectCategory,
		ScholarshipCategory: req.ScholarshipCategory,
		Degree:              req.Degree,
		TuitionFees:         tuition,
		ApplicationFees:     appFees,
		ServiceCharge:       service,
		Deadline:            req.Deadline,
		PostedDate:          time.Now(),
		PostedUserEmail:     req.PostedUserEmail,
	}

	id, err := s.repo.Insert(sch)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

func (s *scholarshipService) GetByID(id string) (*domain.Scholarship, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	return s.repo.FindByID(oid)
}

func (s *scholarshipService) Update(id string, patch map[string]interface{}) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidID
	}

	delete(patch, "_id")
	if len(patch) == 0 {
		return domain.ErrNoChange
	}

	matched, modified, err := s.repo.Update(oid, patch)
	if err != nil {
		return err
	}
	if matched == 0 {
		return domain.ErrNotFound
	}
	if modified == 0 {
		return domain.ErrNoChange
	}
	return nil
}

func (s *scholarshipService) Delete(id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, domain.ErrInvalidID
	}

	if _, err := s.repo.FindByID(oid); err != nil {
		return 0, err
	}
	return s.repo.Delete(oid)
}
