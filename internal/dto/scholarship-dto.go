package dto

import "scholarstream/server/internal/domain"

type ScholarshipQuery struct {
	Search   string
	Category string
	SortBy   string // applicationFees | postedDate
	Order    string // asc | desc
	Page     int
	Limit    int
}

type CreateScholarshipRequest struct {
	ScholarshipName     string      `json:"scholarshipName"`
	UniversityName      string      `json:"universityName"`
	UniversityCountry   string      `json:"universityCountry"`
	UniversityCity      string      `json:"universityCity"`
	UniversityLogo      string      `json:"universityLogo"`
	SubjectCategory     string      `json:"subjectCategory"`
	ScholarshipCategory string      `json:"scholarshipCategory"`
	Degree              string      `json:"degree"`
	TuitionFees         interface{} `json:"tuitionFees"`
	ApplicationFees     interface{} `json:"applicationFees"`
	ServiceCharge       interface{} `json:"serviceCharge"`
	Deadline            string      `json:"applicationDeadline"`
	PostedUserEmail     string      `json:"postedUserEmail"`
}

type PagedScholarships struct {
	Data       []domain.Scholarship `json:"data"`
	Total      int64                `json:"total"`
	Page       int                  `json:"page"`
	TotalPages int64                `json:"totalPages"`
}
