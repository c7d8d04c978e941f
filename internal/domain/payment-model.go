package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is an independent ledger entry. There is no foreign-key
// linkage to the application that references it.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ScholarshipID string             `bson:"scholarshipId" json:"scholarshipId"`
	Amount        float64            `bson:"amount" json:"amount"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	Email         string             `bson:"email" json:"email"`
	PaidAt        time.Time          `bson:"paidAt" json:"paidAt"`
	Status        string             `bson:"status" json:"status"`
}
