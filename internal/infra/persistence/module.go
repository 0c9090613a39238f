// Package persistence selects the repository implementations for the
// configured storage driver.
package persistence

import (
	"recruit/config"
	"recruit/internal/domain/constants"
	"recruit/internal/infra/persistence/memory"
	"recruit/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Module provides every repository and the transaction manager for
// cfg.Storage.Driver.
func Module(cfg *config.Config) fx.Option {
	if cfg.Storage.Driver == constants.StorageDriverMemory {
		return fx.Module("persistence.memory",
			fx.Provide(
				memory.NewStore,
				memory.NewTransactionManager,
				memory.NewUserRepository,
				memory.NewCompanyKeyRepository,
				memory.NewHiringRecordRepository,
				memory.NewSessionRepository,
			),
		)
	}

	return fx.Module("persistence.postgres",
		fx.Provide(
			postgres.New,
			postgres.NewTransactionManager,
			postgres.NewUserRepository,
			postgres.NewCompanyKeyRepository,
			postgres.NewHiringRecordRepository,
			postgres.NewSessionRepository,
		),
	)
}
