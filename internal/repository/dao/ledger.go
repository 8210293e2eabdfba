package dao

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/AkifKA/stock-app-api/internal/domain"
)

// LedgerDAO is the only writer of products.stock. Each operation locks the
// product row with SELECT ... FOR UPDATE, so concurrent postings against the
// same product are serialised while other products proceed untouched.
type LedgerDAO struct {
	db *gorm.DB
}

func NewLedgerDAO(db *gorm.DB) *LedgerDAO {
	return &LedgerDAO{
		db: db,
	}
}

func (d *LedgerDAO) Increase(ctx context.Context, productID uint, qty int) (int, error) {
	if qty <= 0 {
		return 0, domain.ErrInvalidQuantity
	}

	var stock int
	err := withinTx(ctx, d.db, func(tx *gorm.DB) error {
		current, err := lockStock(tx, productID)
		if err != nil {
			return err
		}

		stock = current + qty

		return setStock(tx, productID, stock)
	})
	if err != nil {
		return 0, err
	}

	return stock, nil
}

// Decrease refuses to go below zero. The check happens under the row lock and
// before any write, so a refused decrease leaves nothing behind.
func (d *LedgerDAO) Decrease(ctx context.Context, productID uint, qty int) (int, error) {
	if qty <= 0 {
		return 0, domain.ErrInvalidQuantity
	}

	var stock int
	err := withinTx(ctx, d.db, func(tx *gorm.DB) error {
		current, err := lockStock(tx, productID)
		if err != nil {
			return err
		}

		if qty > current {
			return &domain.InsufficientStockError{ProductID: productID, Current: current}
		}

		stock = current - qty

		return setStock(tx, productID, stock)
	})
	if err != nil {
		return 0, err
	}

	return stock, nil
}

func lockStock(tx *gorm.DB, productID uint) (int, error) {
	var product Product

	result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id", "stock").
		First(&product, productID)
	if result.Error != nil {
		return 0, translateErr(result.Error, ErrProductNotFound)
	}

	return product.Stock, nil
}

func setStock(tx *gorm.DB, productID uint, stock int) error {
	result := tx.Model(&Product{}).Where("id = ?", productID).Update("stock", stock)
	if result.Error != nil {
		return translateErr(result.Error, nil)
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}
