package services

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"scholarstream/server/internal/domain"
	"scholarstream/server/internal/dto"
	"scholarstream/server/internal/helper/utils"
	"scholarstream/server/internal/repository"
)

type ReviewService interface {
	List(filter dto.ReviewFilter) ([]domain.Review, error)
	Create(req dto.CreateReviewRequest) (string, error)
	Update(id string, req dto.UpdateReviewRequest) error
	Delete(id string) (int64, error)
}

type reviewService struct {
	repo repository.ReviewRepository
}

func NewReviewService(repo repository.ReviewRepository) ReviewService {
	return &reviewService{repo: repo}
}

func (s *reviewService) List(filter dto.ReviewFilter) ([]domain.Review, error) {
	return s.repo.Find(filter)
}

func (s *reviewService) Create(req dto.CreateReviewRequest) (string, error) {
	rating, ratingErr := utils.CoerceFloat(req.RatingPoint)

	if req.ScholarshipID == "" ||
		req.UserName == "" ||
		req.UserEmail == "" ||
		req.ReviewComment == "" ||
		req.PostByEmail == "" ||
		ratingErr != nil {
		return "", domain.ErrMissingFields
	}

	review := &domain.Review{
		ScholarshipID:   req.ScholarshipID,
		UniversityName:  req.UniversityName,
		ScholarshipName: req.ScholarshipName,
		UserName:        req.UserName,
		UserEmail:       req.UserEmail,
		UserPhoto:       req.UserPhoto,
		PostByEmail:     req.PostByEmail,
		RatingPoint:     rating,
		ReviewComment:   req.ReviewComment,
		ReviewDate:      time.Now(),
	}

	id, err := s.repo.Insert(review)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

// Update refreshes reviewDate: the stored date is the edit timestamp,
// not the original post time.
func (s *reviewService) Update(id string, req dto.UpdateReviewRequest) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidID
	}

	rating, ratingErr := utils.CoerceFloat(req.RatingPoint)
	if req.ReviewComment == "" || ratingErr != nil {
		return domain.ErrMissingFields
	}

	matched, err := s.repo.Update(oid, req.ReviewComment, rating, time.Now())
	if err != nil {
		return err
	}
	if matched == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *reviewService) Delete(id string) (int64, error) {
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
