package models

import "time"

// Entry is one month of account activity for a single user. TotalSaved and
// ClosingBalance are derived server-side and never taken from the client.
type Entry struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Month           string    `json:"month"`
	StartingBalance float64   `json:"startingBalance"`
	Salary          float64   `json:"salary"`
	EMI             float64   `json:"emi"`
	Expenses        float64   `json:"expenses"`
	Savings         float64   `json:"savings"`
	TotalSaved      float64   `json:"totalSaved"`
	ClosingBalance  float64   `json:"closingBalance"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type CreateEntryRequest struct {
	Month           string  `json:"month"`
	StartingBalance float64 `json:"startingBalance"`
	Salary          float64 `json:"salary"`
	EMI             float64 `json:"emi"`
	Expenses        float64 `json:"expenses"`
	Savings         float64 `json:"savings"`
}

type ListEntriesResponse struct {
	Entries []*Entry `json:"entries"`
	Total   int      `json:"total"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
