package models

import "time"

// Assignment связывает клиента с оформленным на него полисом.
// В базе данных — таблица customer_policies с внешними ключами
// на customers и policies.
type Assignment struct {
	ID            int       `json:"id"`
	CustomerID    int       `json:"customer_id"`
	PolicyID      int       `json:"policy_id"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	Status        string    `json:"status"` // ACTIVE / PENDING / EXPIRED
	PremiumAmount float64   `json:"premium_amount"`
}
