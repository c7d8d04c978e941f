package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusRejected   = "rejected"
)

// ValidStatus reports membership in the four-value lifecycle enum.
// There is no transition graph: any state may move to any other.
func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusProcessing, StatusCompleted, StatusRejected:
		return true
	}
	return false
}

// ScholarshipSnapshot is the point-in-time copy of a listing embedded
// in an application at apply time. Later edits to the listing do not
// change an application's view of it.
type ScholarshipSnapshot struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ScholarshipName     string             `bson:"scholarshipName" json:"scholarshipName"`
	UniversityName      string             `bson:"universityName" json:"universityName"`
	UniversityCountry   string             `bson:"universityCountry,omitempty" json:"universityCountry,omitempty"`
	SubjectCategory     string             `bson:"subjectCategory,omitempty" json:"subjectCategory,omitempty"`
	ScholarshipCategory string             `bson:"scholarshipCategory,omitempty" json:"scholarshipCategory,omitempty"`
	ApplicationFees     float64            `bson:"applicationFees" json:"applicationFees"`
	PostedUserEmail     string             `bson:"postedUserEmail" json:"postedUserEmail"`
}

// PaymentRef is the loose payment reference an application may carry.
// It is associated with a ledger entry only by matching identifiers.
type PaymentRef struct {
	TransactionID string    `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Amount        float64   `bson:"amount,omitempty" json:"amount,omitempty"`
	PaidAt        time.Time `bson:"paidAt,omitempty" json:"paidAt,omitempty"`
}

type Application struct {
	ID              primitive.ObjectID  `bson:"_id,omitempty" json:"_id,omitempty"`
	Scholar         ScholarshipSnapshot `bson:"scholar" json:"scholar"`
	ScholarshipID   string              `bson:"scholarshipId" json:"scholarshipId"`
	ScholarshipName string              `bson:"scholarshipName" json:"scholarshipName"`
	UniversityName  string              `bson:"universityName" json:"universityName"`
	Fees            float64             `bson:"fees" json:"fees"`
	Applicant       string              `bson:"applicant" json:"applicant"`
	UserName        string              `bson:"userName" json:"userName"`
	AppliedDate     time.Time           `bson:"appliedDate" json:"appliedDate"`
	Status          string              `bson:"status" json:"status"`
	Feedback        string              `bson:"feedback,omitempty" json:"feedback,omitempty"`
	Payment         *PaymentRef         `bson:"payment,omitempty" json:"payment,omitempty"`
}
