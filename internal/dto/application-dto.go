package dto

import "scholarstream/server/internal/domain"

type CreateApplicationRequest struct {
	Scholar         domain.ScholarshipSnapshot `json:"scholar"`
	ScholarshipID   string                     `json:"scholarshipId"`
	ScholarshipName string                     `json:"scholarshipName"`
	UniversityName  string                     `json:"universityName"`
	Fees            interface{}                `json:"fees"`
	Applicant       string                     `json:"applicant"`
	UserName        string                     `json:"userName"`
	Status          string                     `json:"status"`
	Payment         *domain.PaymentRef         `json:"payment"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type UpdateFeedbackRequest struct {
	Feedback string `json:"feedback"`
}
