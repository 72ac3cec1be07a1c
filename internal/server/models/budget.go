package models

// Budget holds one spending limit per user. The user_id column is unique, so
// there is never more than one row per owner.
type Budget struct {
	ID     int64
	UserID int64
	Amount float64
}
