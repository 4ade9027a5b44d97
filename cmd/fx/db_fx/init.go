package dbfx

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"dasilari/internal/infra"
)

var Module = fx.Options(
	fx.Provide(provideDB),
	fx.Invoke(registerLifecycle))

func provideDB() *gorm.DB {
	return infra.InitPostgresql()
}

func registerLifecycle(lc fx.Lifecycle, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db)
			return nil
		},
	})
}
