package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"tenfold/internal/domain"
	"tenfold/internal/domain/repositories"
	"tenfold/internal/domain/services"
)

// identityService implements the IdentityService interface
type identityService struct {
	identityRepo  repositories.IdentityRepository
	providerAdmin services.ProviderAdmin
	logger        *slog.Logger
}

// NewIdentityService creates a new identity service. providerAdmin may be
// nil, in which case account deletion only clears local data.
func NewIdentityService(
	identityRepo repositories.IdentityRepository,
	providerAdmin services.ProviderAdmin,
	logger *slog.Logger,
) services.IdentityService {
	return &identityService{
		identityRepo:  identityRepo,
		providerAdmin: providerAdmin,
		logger:        logger,
	}
}

// Provision makes sure a verified identity has a mirror row. Runs on
// authenticated requests, so it must stay a single idempotent statement.
func (s *identityService) Provision(ctx context.Context, userID uuid.UUID) error {
	return s.identityRepo.Ensure(ctx, userID)
}

// DeleteIdentity removes the caller's mirror row; the owner foreign keys
// cascade over everything they own.
func (s *identityService) DeleteIdentity(ctx context.Context, ident domain.Identity) error {
	if err := s.identityRepo.Delete(ctx, ident); err != nil {
		return err
	}

	// The provider-side account is removed best-effort: local data is
	// already gone and a stale provider account cannot reach it anymore.
	if s.providerAdmin != nil {
		if err := s.providerAdmin.DeleteUser(ctx, ident.UserID); err != nil {
			s.logger.Warn("failed to delete provider account",
				"user_id", ident.UserID,
				"error", err,
			)
		}
	}

	s.logger.Info("identity deleted with owned data",
		"user_id", ident.UserID,
	)

	return nil
}
