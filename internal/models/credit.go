package models

// Decision is the outcome of a credit application check
type Decision struct {
	Approved bool     `json:"ok"`
	Message  string   `json:"message"`
	Payment  *int64   `json:"payment,omitempty"` // monthly installment, set only when approved
	Rate     *float64 `json:"rate,omitempty"`    // monthly interest rate, set only when approved
}

// Reject builds a decision refusing the credit
func Reject(message string) Decision {
	return Decision{Approved: false, Message: message}
}

// Approve builds a decision granting the credit
func Approve(message string, payment int64, rate float64) Decision {
	return Decision{Approved: true, Message: message, Payment: &payment, Rate: &rate}
}
