package db

import (
	"context"

	"gorm.io/gorm"
)

// txKey carries the open transaction through the context so repositories
// join it transparently.
type txKey struct{}

// TransactionManager wraps multi-step writes, such as the permission upsert
// on the (entity, page action) triple, in a single transaction. Repository
// methods participate by reading the ambient transaction with
// GetTxFromContext.
type TransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// RunInTransaction runs fn inside one transaction. The transaction travels
// in the context handed to fn; any error from fn rolls the whole unit back.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := context.WithValue(ctx, txKey{}, tx)
		return fn(txCtx)
	})
}

// GetTxFromContext returns the ambient transaction, or defaultDB scoped to
// ctx when none is open. Repositories call this instead of using their
// *gorm.DB directly so the same method works inside and outside
// RunInTransaction.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}
