package dto

type RecordPaymentRequest struct {
	ScholarshipID string      `json:"scholarshipId"`
	Amount        interface{} `json:"amount"`
	TransactionID string      `json:"transactionId"`
	Email         string      `json:"email"`
}

type CreatePaymentIntentRequest struct {
	Fees  interface{} `json:"fees"`
	Email string      `json:"email"`
}
