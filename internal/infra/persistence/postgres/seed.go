package postgres

import (
	"context"
	"log/slog"

	"docs/config"
	"docs/internal/domain/entity"
	domainerrors "docs/internal/domain/errors"
	"docs/internal/domain/lifecycle"
	"docs/internal/domain/repository"
	"docs/internal/errors"

	"go.uber.org/fx"
)

// SeedCheckParams holds the dependencies of RegisterSeedCheck.
type SeedCheckParams struct {
	fx.In
	fx.Lifecycle

	Config   *config.Config
	Logger   *slog.Logger
	RoleRepo repository.RoleRepository
}

// RegisterSeedCheck refuses to start the application when the default role is absent.
// The hook runs after the database hook, so migrations have already been applied.
func RegisterSeedCheck(params SeedCheckParams) {
	roleName := entity.RoleNameUser
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.DefaultRole != "" {
		roleName = params.Config.Auth.DefaultRole
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return CheckSeedData(ctx, params.RoleRepo, roleName, params.Logger)
		},
	})
}

// CheckSeedData verifies that the role every new account is linked to exists.
func CheckSeedData(ctx context.Context, roleRepo repository.RoleRepository, roleName string, logger *slog.Logger) error {
	_, err := roleRepo.FindByRoleName(ctx, roleName)
	if err == nil {
		return nil
	}

	if errors.Is(err, repository.ErrRoleNotFound) {
		if logger != nil {
			logger.Error("Default role is missing", slog.String("role", roleName))
		}

		return domainerrors.ErrSeedDataMissing.WrapMessage("role[" + roleName + "] is missing")
	}

	return errors.Wrap(err, "failed to check seed data")
}
