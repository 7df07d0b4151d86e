package wire

import (
	"log/slog"

	"sensor-simulator/cmd/config"
	"sensor-simulator/internal/infra/cache"
	"sensor-simulator/internal/infra/sql"
	"sensor-simulator/internal/sandbox/domain"
	"sensor-simulator/internal/sandbox/persistence"
)

const (
	_memoryDatabaseName = "sandbox"
	_redisKeyPrefix     = "sensor-sandbox:"
)

func provideDatabase(cfg config.AppConfig) (sql.ORM, error) {
	if cfg.Sandbox.DSN == "" {
		slog.Info("using in-memory database", slog.String("name", _memoryDatabaseName))
		orm, err := sql.NewMemoryORM(_memoryDatabaseName)
		if err != nil {
			return nil, err
		}
		return orm, nil
	}

	slog.Info("using postgres database")
	orm, err := sql.NewPostgresORM(cfg.Sandbox.DSN)
	if err != nil {
		return nil, err
	}
	return orm, nil
}

func provideInactivitySchedule(cfg config.AppConfig) string {
	return cfg.Sandbox.InactivitySchedule
}

func provideSensorCache(cfg config.AppConfig) (cache.Cache[domain.Sensor], error) {
	if cfg.Sandbox.RedisAddr == "" {
		sensors, err := cache.New[domain.Sensor](nil)
		if err != nil {
			return nil, err
		}
		return sensors, nil
	}

	sensors, err := cache.NewRedisCache[domain.Sensor](cache.RedisConfig{
		Addr:   cfg.Sandbox.RedisAddr,
		Prefix: _redisKeyPrefix,
	})
	if err != nil {
		return nil, err
	}
	return sensors, nil
}

func provideCachedSensorRepository(
	cfg config.AppConfig,
	repository *persistence.SimpleSensorRepository,
	sensors cache.Cache[domain.Sensor],
) *persistence.CachedSensorRepository {
	return persistence.NewCachedSensorRepository(repository, sensors, cfg.Sandbox.CacheTTL)
}
