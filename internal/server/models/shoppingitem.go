package models

// ShoppingItem belongs to exactly one user and is removed together with its
// owner. Quantity is free-form text and may be absent.
type ShoppingItem struct {
	ID       int64
	ItemName string
	Quantity *string
	UserID   int64
}
