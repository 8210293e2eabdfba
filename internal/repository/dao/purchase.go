package dao

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Purchase struct {
	ID         uint                `gorm:"primaryKey"`
	UserID     *uint               `gorm:"index"`
	User       *User               `gorm:"constraint:OnDelete:SET NULL"`
	BrandID    uint                `gorm:"not null;index"`
	Brand      Brand               `gorm:"constraint:OnDelete:CASCADE"`
	ProductID  uint                `gorm:"not null;index"`
	Product    Product             `gorm:"constraint:OnDelete:CASCADE"`
	FirmID     *uint               `gorm:"index"`
	Firm       *Firm               `gorm:"constraint:OnDelete:SET NULL"`
	Quantity   int                 `gorm:"not null;check:chk_purchases_quantity,quantity > 0"`
	Price      decimal.NullDecimal `gorm:"type:numeric(8,2)"`
	StockAfter int                 `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type PurchaseDAO struct {
	db *gorm.DB
}

func NewPurchaseDAO(db *gorm.DB) *PurchaseDAO {
	return &PurchaseDAO{
		db: db,
	}
}

func (d *PurchaseDAO) Insert(ctx context.Context, purchase Purchase) (Purchase, error) {
	result := conn(ctx, d.db).Omit(clause.Associations).Create(&purchase)
	if result.Error != nil {
		return Purchase{}, translateErr(result.Error, nil)
	}

	return purchase, nil
}

func (d *PurchaseDAO) FindByID(ctx context.Context, id uint) (Purchase, error) {
	var purchase Purchase

	result := conn(ctx, d.db).First(&purchase, id)
	if result.Error != nil {
		return Purchase{}, translateErr(result.Error, ErrPurchaseNotFound)
	}

	return purchase, nil
}

func (d *PurchaseDAO) FindAll(ctx context.Context) ([]Purchase, error) {
	var purchases []Purchase

	result := conn(ctx, d.db).Order("id").Find(&purchases)
	if result.Error != nil {
		return nil, translateErr(result.Error, nil)
	}

	return purchases, nil
}
