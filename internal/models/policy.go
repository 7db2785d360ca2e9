package models

import "time"

// Policy представляет страховой продукт (тарифный план).
type Policy struct {
	ID             int       `json:"id"`
	PolicyName     string    `json:"policy_name"`
	PolicyType     string    `json:"policy_type"`
	PremiumAmount  float64   `json:"premium_amount"`
	DurationMonths int       `json:"duration_months"`
	CoverageAmount float64   `json:"coverage_amount"`
	CreatedAt      time.Time `json:"created_at"`
}
