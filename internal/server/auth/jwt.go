// Package auth implements the credential primitives of the server: bcrypt
// password digests and HS256-signed bearer tokens.
package auth

import (
	"time"

	"github.com/dmitrijs2005/pennywise/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims binds the token to its subject username via the registered "sub"
// and "exp" claims.
type Claims struct {
	jwt.RegisteredClaims
}

// GenerateToken issues a signed token for subject that expires after
// validityDuration.
func GenerateToken(subject string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetSubjectFromToken verifies the signature and expiry of tokenString and
// returns the embedded subject. Every failure — forged signature, malformed
// structure, expired token, missing subject — collapses into
// common.ErrInvalidToken so callers cannot probe for the cause.
func GetSubjectFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrInvalidToken
		}
		return secretKey, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}
