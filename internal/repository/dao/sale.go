package dao

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Sale struct {
	ID         uint                `gorm:"primaryKey"`
	UserID     *uint               `gorm:"index"`
	User       *User               `gorm:"constraint:OnDelete:SET NULL"`
	BrandID    uint                `gorm:"not null;index"`
	Brand      Brand               `gorm:"constraint:OnDelete:CASCADE"`
	ProductID  uint                `gorm:"not null;index"`
	Product    Product             `gorm:"constraint:OnDelete:CASCADE"`
	Quantity   int                 `gorm:"not null;check:chk_sales_quantity,quantity > 0"`
	Price      decimal.NullDecimal `gorm:"type:numeric(8,2)"`
	StockAfter int                 `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type SaleDAO struct {
	db *gorm.DB
}

func NewSaleDAO(db *gorm.DB) *SaleDAO {
	return &SaleDAO{
		db: db,
	}
}

func (d *SaleDAO) Insert(ctx context.Context, sale Sale) (Sale, error) {
	result := conn(ctx, d.db).Omit(clause.Associations).Create(&sale)
	if result.Error != nil {
		return Sale{}, translateErr(result.Error, nil)
	}

	return sale, nil
}

func (d *SaleDAO) FindByID(ctx context.Context, id uint) (Sale, error) {
	var sale Sale

	result := conn(ctx, d.db).First(&sale, id)
	if result.Error != nil {
		return Sale{}, translateErr(result.Error, ErrSaleNotFound)
	}

	return sale, nil
}

func (d *SaleDAO) FindAll(ctx context.Context) ([]Sale, error) {
	var sales []Sale

	result := conn(ctx, d.db).Order("id").Find(&sales)
	if result.Error != nil {
		return nil, translateErr(result.Error, nil)
	}

	return sales, nil
}
