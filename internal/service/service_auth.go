// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/portfolio-cms/internal/config"
	"github.com/MKhiriev/portfolio-cms/internal/logger"
	"github.com/MKhiriev/portfolio-cms/models"
)

// authService is the concrete implementation of AuthService.
//
// The admin panel authenticates with a single configured username/password
// pair; the comparison is a plain equality against the values loaded at
// startup. No token or session is issued on success — the panel stores a
// local flag, so every state-changing call remains unauthenticated at this
// layer by design of the original contract.
type authService struct {
	adminUsername string
	adminPassword string

	logger *logger.Logger
}

// NewAuthService constructs an AuthService holding the configured admin
// credentials. The returned service is safe for concurrent use; all state
// is read-only after construction.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		adminUsername: cfg.AdminUsername,
		adminPassword: cfg.AdminPassword,
		logger:        logger,
	}
}

// Login implements [AuthService].
//
// A mismatch is an expected outcome, not a fault: it is reported as
// ErrInvalidCredentials and logged at debug level only.
func (a *authService) Login(ctx context.Context, creds models.LoginRequest) (models.LoginUser, error) {
	log := logger.FromContext(ctx)

	if creds.Username != a.adminUsername || creds.Password != a.adminPassword {
		log.Debug().Str("username", creds.Username).Msg("login attempt rejected")
		return models.LoginUser{}, ErrInvalidCredentials
	}

	log.Info().Str("username", creds.Username).Msg("admin logged in")

	return models.LoginUser{
		Username: a.adminUsername,
		Role:     models.RoleAdmin,
	}, nil
}
