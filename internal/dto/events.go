package dto

// Event payloads published to the broker. Consumers (notification
// services) live outside this service.

const (
	EventApplicationCreated       = "application.created"
	EventApplicationStatusChanged = "application.status_changed"
	EventPaymentRecorded          = "payment.recorded"
)

type ApplicationEvent struct {
	ApplicationID   string `json:"application_id"`
	ScholarshipID   string `json:"scholarship_id"`
	ScholarshipName string `json:"scholarship_name"`
	Applicant       string `json:"applicant"`
	Status          string `json:"status"`
}

type PaymentEvent struct {
	PaymentID     string  `json:"payment_id"`
	ScholarshipID string  `json:"scholarship_id"`
	TransactionID string  `json:"transaction_id"`
	Email         string  `json:"email"`
	Amount        float64 `json:"amount"`
}
