package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/rafabene/staffdir-backend/internal/domain/ports"
)

type txContextKey struct{}

// UnitOfWork guarda a transação GORM no contexto para os repositórios
type UnitOfWork struct {
	db *gorm.DB
}

var _ ports.UnitOfWork = (*UnitOfWork)(nil)

func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

// WithTransaction abre uma transação, ou um savepoint quando ctx já
// carrega uma, e a expõe a fn via contexto
func (uow *UnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return dbFromContext(ctx, uow.db).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txContextKey{}, tx))
	})
}

// dbFromContext devolve a transação corrente ou fallback, ligado a ctx
func dbFromContext(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txContextKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return fallback.WithContext(ctx)
}
