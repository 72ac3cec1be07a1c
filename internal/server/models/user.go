// Package models contains the persisted record types used by the server
// repositories and services.
package models

import "time"

// User is a registered account. Username is the immutable, case-sensitive
// identifier; HashedPassword is a bcrypt digest and never leaves the server.
type User struct {
	ID             int64
	Username       string
	HashedPassword string
	FullName       string
	Email          string
	Phone          string
	CreatedAt      time.Time
}
