package models

import "time"

// ExpenseLog records a purchase. Expenses are global: they carry no owner
// reference and every client sees the same ledger.
type ExpenseLog struct {
	ID       int64
	ItemName string
	Quantity *string
	Price    float64
	LoggedAt time.Time
}
