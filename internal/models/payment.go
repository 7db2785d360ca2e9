package models

import "time"

// Payment представляет платеж по оформленному полису.
type Payment struct {
	ID            int       `json:"id"`
	AssignmentID  int       `json:"customer_policy_id"`
	Amount        float64   `json:"amount"`
	PaymentDate   time.Time `json:"payment_date"`
	PaymentMode   string    `json:"payment_mode"`   // UPI / Card / Cash
	PaymentStatus string    `json:"payment_status"` // Paid / Pending / Failed
}
