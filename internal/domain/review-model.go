package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ScholarshipID   string             `bson:"scholarshipId" json:"scholarshipId"`
	UniversityName  string             `bson:"universityName" json:"universityName"`
	ScholarshipName string             `bson:"scholarshipName" json:"scholarshipName"`
	UserName        string             `bson:"userName" json:"userName"`
	UserEmail       string             `bson:"userEmail" json:"userEmail"`
	UserPhoto       string             `bson:"userPhoto,omitempty" json:"userPhoto,omitempty"`
	PostByEmail     string             `bson:"postByEmail" json:"postByEmail"`
	RatingPoint     float64            `bson:"ratingPoint" json:"ratingPoint"`
	ReviewComment   string             `bson:"reviewComment" json:"reviewComment"`
	ReviewDate      time.Time          `bson:"reviewDate" json:"reviewDate"`
}
