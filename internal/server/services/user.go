// Package services contains server-side business logic. This file implements
// UserService: registration, credential verification, bearer token issuance,
// identity resolution, and password reset.
package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/dmitrijs2005/pennywise/internal/common"
	"github.com/dmitrijs2005/pennywise/internal/server/auth"
	"github.com/dmitrijs2005/pennywise/internal/server/config"
	"github.com/dmitrijs2005/pennywise/internal/server/models"
	"github.com/dmitrijs2005/pennywise/internal/server/repositories/repomanager"
)

// UserService provides authentication-related operations:
// - Register: create users with a bcrypt password digest
// - Login: verify credentials and mint a bearer token
// - Resolve: map a verified token subject to the persisted user
// - ResetPassword: replace the stored digest for a username
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	jwtSecret   []byte
	tokenTTL    time.Duration
	bcryptCost  int
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		jwtSecret:   []byte(cfg.SecretKey),
		tokenTTL:    cfg.AccessTokenValidityDuration,
		bcryptCost:  cfg.BcryptCost,
	}
}

// Register creates a new user. A taken username yields
// common.ErrorAlreadyExists; blank username or password yields
// common.ErrorValidation.
func (s *UserService) Register(ctx context.Context, username, password, fullName, email, phone string) (*models.User, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, common.ErrorValidation
	}

	digest, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{
		Username:       username,
		HashedPassword: digest,
		FullName:       fullName,
		Email:          email,
		Phone:          phone,
	}

	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, common.ErrorInternal
	}
	return u, nil
}

// Login verifies the provided password against the stored digest and, on
// success, returns a signed bearer token. An unknown username and a wrong
// password are indistinguishable: both yield common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	if !auth.CheckPassword(password, user.HashedPassword) {
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.Username, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}

// Resolve looks up the persisted user for a token subject. A token can verify
// successfully yet reference a since-deleted user; that case surfaces as
// common.ErrorNotFound and is collapsed into an authentication failure by the
// guard.
func (s *UserService) Resolve(ctx context.Context, subject string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByUsername(ctx, subject)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	return user, nil
}

// ResetPassword replaces the stored digest for username. Outstanding bearer
// tokens stay valid until their own expiry: there is no revocation mechanism.
func (s *UserService) ResetPassword(ctx context.Context, username, newPassword string) error {
	if newPassword == "" {
		return common.ErrorValidation
	}

	digest, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return common.ErrorInternal
	}

	repo := s.repomanager.Users(s.db)
	if err := repo.UpdatePassword(ctx, username, digest); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorInternal
	}
	return nil
}
