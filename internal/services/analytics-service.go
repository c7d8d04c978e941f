package services

import (
	"log"

	"scholarstream/server/internal/dto"
	"scholarstream/server/internal/repository"
)

// AnalyticsService derives counters by reading the other stores. It
// never mutates, recomputes per request, and degrades to the
// zero-valued shape instead of propagating store errors.
type AnalyticsService interface {
	HomeStats() dto.HomeStats
	DashboardStats() dto.DashboardStats
}

type analyticsService struct {
	userRepo        repository.UserRepository
	scholarshipRepo repository.ScholarshipRepository
	applicationRepo repository.ApplicationRepository
	paymentRepo     repository.PaymentRepository
}

func NewAnalyticsService(
	userRepo repository.UserRepository,
	scholarshipRepo repository.ScholarshipRepository,
	applicationRepo repository.ApplicationRepository,
	paymentRepo repository.PaymentRepository,
) AnalyticsService {
	return &analyticsService{
		userRepo:        userRepo,
		scholarshipRepo: scholarshipRepo,
		applicationRepo: applicationRepo,
		paymentRepo:     paymentRepo,
	}
}

func (s *analyticsService) HomeStats() dto.HomeStats {
	users, err := s.userRepo.CountUsers()
	if err != nil {
		log.Printf("home stats degraded: %v", err)
		return dto.HomeStats{}
	}
	applications, err := s.applicationRepo.Count()
	if err != nil {
		log.Printf("home stats degraded: %v", err)
		return dto.HomeStats{}
	}
	scholarships, err := s.scholarshipRepo.Count()
	if err != nil {
		log.Printf("home stats degraded: %v", err)
		return dto.HomeStats{}
	}

	return dto.HomeStats{
		Users:        users,
		Applications: applications,
		Scholarships: scholarships,
	}
}

func (s *analyticsService) DashboardStats() dto.DashboardStats {
	zero := dto.DashboardStats{ApplicationsByUniversity: map[string]int64{}}

	users, err := s.userRepo.CountUsers()
	if err != nil {
		log.Printf("dashboard stats degraded: %v", err)
		return zero
	}
	scholarships, err := s.scholarshipRepo.Count()
	if err != nil {
		log.Printf("dashboard stats degraded: %v", err)
		return zero
	}
	totalPaid, err := s.paymentRepo.SumAmounts()
	if err != nil {
		log.Printf("dashboard stats degraded: %v", err)
		return zero
	}

	// O(n) fold over the full application set; acceptable at this scale
	applications, err := s.applicationRepo.FindAll()
	if err != nil {
		log.Printf("dashboard stats degraded: %v", err)
		return zero
	}

	byUniversity := map[string]int64{}
	for _, app := range applications {
		byUniversity[app.UniversityName]++
	}

	return dto.DashboardStats{
		Users:                    users,
		Scholarships:             scholarships,
		TotalPaidAmount:          totalPaid,
		ApplicationsByUniversity: byUniversity,
	}
}
