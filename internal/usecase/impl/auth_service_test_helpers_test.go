package impl

import (
	"io"
	"log/slog"

	"docs/config"
	"docs/internal/domain/entity"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:  4,
			DefaultRole: entity.RoleNameUser,
		},
	}
}
