// Package common contains shared constants and sentinel errors used across
// Pennywise components.
package common

// AuthorizationHeaderName is the HTTP header carrying the bearer token.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix is the scheme prefix expected in the authorization header.
const BearerPrefix = "Bearer "

// TokenTypeBearer is the token_type value returned by the login endpoint.
const TokenTypeBearer = "bearer"
