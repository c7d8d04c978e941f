package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Scholarship struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ScholarshipName     string             `bson:"scholarshipName" json:"scholarshipName"`
	UniversityName      string             `bson:"universityName" json:"universityName"`
	UniversityCountry   string             `bson:"universityCountry" json:"universityCountry"`
	UniversityCity      string             `bson:"universityCity,omitempty" json:"universityCity,omitempty"`
	UniversityLogo      string             `bson:"universityLogo,omitempty" json:"universityLogo,omitempty"`
	SubjectCategory     string             `bson:"subjectCategory" json:"subjectCategory"`
	ScholarshipCategory string             `bson:"scholarshipCategory" json:"scholarshipCategory"`
	Degree              string             `bson:"degree,omitempty" json:"degree,omitempty"`
	TuitionFees         float64            `bson:"tuitionFees,omitempty" json:"tuitionFees,omitempty"`
	ApplicationFees     float64            `bson:"applicationFees" json:"applicationFees"`
	ServiceCharge       float64            `bson:"serviceCharge,omitempty" json:"serviceCharge,omitempty"`
	Deadline            string             `bson:"applicationDeadline,omitempty" json:"applicationDeadline,omitempty"`
	PostedDate          time.Time          `bson:"postedDate" json:"postedDate"`
	PostedUserEmail     string             `bson:"postedUserEmail" json:"postedUserEmail"`
}
