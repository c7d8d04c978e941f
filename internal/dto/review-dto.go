package dto

type ReviewFilter struct {
	ScholarshipID  string
	AuthorEmail    string
	ModeratorEmail string
}

type CreateReviewRequest struct {
	ScholarshipID   string      `json:"scholarshipId"`
	UniversityName  string      `json:"universityName"`
	ScholarshipName string      `json:"scholarshipName"`
	UserName        string      `json:"userName"`
	UserEmail       string      `json:"userEmail"`
	UserPhoto       string      `json:"userPhoto"`
	PostByEmail     string      `json:"postByEmail"`
	RatingPoint     interface{} `json:"ratingPoint"`
	ReviewComment   string      `json:"reviewComment"`
}

type UpdateReviewRequest struct {
	ReviewComment string      `json:"reviewComment"`
	RatingPoint   interface{} `json:"ratingPoint"`
}
