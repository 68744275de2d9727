package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/rafabene/staffdir-backend/internal/domain/ports"
	"github.com/rafabene/staffdir-backend/internal/infrastructure/config"
)

const slowQueryThreshold = 200 * time.Millisecond

// gormWriter manda as linhas do logger do GORM para o log estruturado
type gormWriter struct {
	log ports.Logger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.log.Debug(fmt.Sprintf(format, args...))
}

// GormConfig é compartilhada por postgres e sqlite (testes).
// Com log nil as consultas não são registradas.
func GormConfig(logLevel string, log ports.Logger) *gorm.Config {
	cfg := &gorm.Config{
		Logger:         gormlogger.Discard,
		NowFunc:        func() time.Time { return time.Now().UTC() },
		TranslateError: true,
	}
	if log == nil {
		return cfg
	}

	level := gormlogger.Warn
	if logLevel == "debug" {
		level = gormlogger.Info
	}
	cfg.Logger = gormlogger.New(gormWriter{log: log.With("component", "gorm")}, gormlogger.Config{
		SlowThreshold:             slowQueryThreshold,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		ParameterizedQueries:      true,
	})
	return cfg
}

// NewDatabaseConnection abre o pool e espera o banco responder, tentando
// cfg.ConnectAttempts vezes com espera crescente entre as tentativas
func NewDatabaseConnection(ctx context.Context, cfg *config.DatabaseConfig, logLevel string, log ports.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), GormConfig(logLevel, log))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxConns)
	sqlDB.SetMaxIdleConns(cfg.MinConns)
	sqlDB.SetConnMaxIdleTime(time.Duration(cfg.MaxIdleTime) * time.Second)

	attempts := max(cfg.ConnectAttempts, 1)
	backoff := 500 * time.Millisecond
	for attempt := 1; ; attempt++ {
		err = sqlDB.PingContext(ctx)
		if err == nil {
			break
		}
		if attempt == attempts {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("database unreachable after %d attempts: %w", attempts, err)
		}
		log.Warn("database not ready", "attempt", attempt, "retry_in", backoff, "error", err)

		select {
		case <-ctx.Done():
			_ = sqlDB.Close()
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}

	log.Info("database connected",
		"host", cfg.Host,
		"port", cfg.Port,
		"database", cfg.DBName,
	)
	return db, nil
}

// Migrate cria ou atualiza a tabela users
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&PersonModel{}); err != nil {
		return fmt.Errorf("failed to migrate users table: %w", err)
	}
	return nil
}
