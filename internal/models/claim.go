package models

import "time"

// Claim представляет страховое требование по оформленному полису.
type Claim struct {
	ID           int       `json:"id"`
	Reference    string    `json:"reference"` // Уникальный номер требования
	AssignmentID int       `json:"customer_policy_id"`
	ClaimAmount  float64   `json:"claim_amount"`
	ClaimDate    time.Time `json:"claim_date"`
	ClaimStatus  string    `json:"claim_status"`
	Description  string    `json:"description"`
}

// ClaimEvent — сообщение о зарегистрированном требовании,
// публикуемое в очередь для сервиса уведомлений.
type ClaimEvent struct {
	Reference     string  `json:"reference"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	PolicyName    string  `json:"policy_name"`
	ClaimAmount   float64 `json:"claim_amount"`
	ClaimStatus   string  `json:"claim_status"`
}
