package dao

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

type txKey struct{}

// Transactor runs a function inside one database transaction. DAOs pick the
// transaction up from the context, so every write done inside fn commits or
// rolls back together.
type Transactor struct {
	db *gorm.DB
}

func NewTransactor(db *gorm.DB) *Transactor {
	return &Transactor{
		db: db,
	}
}

func (t *Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return withinTx(ctx, t.db, func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// withinTx joins the transaction already carried by ctx, or opens a new one.
func withinTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(tx)
	}

	var fnErr error
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(tx)
		return fnErr
	})
	if err != nil && fnErr == nil {
		// begin or commit failed
		return fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}

	return err
}

func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}

	return db.WithContext(ctx)
}
