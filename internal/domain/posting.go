package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Purchase struct {
	ID         uint
	UserID     *uint
	BrandID    uint
	ProductID  uint
	FirmID     *uint
	Quantity   int
	Price      decimal.NullDecimal
	StockAfter int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (p Purchase) PriceTotal() decimal.NullDecimal {
	return priceTotal(p.Price, p.Quantity)
}

type Sale struct {
	ID         uint
	UserID     *uint
	BrandID    uint
	ProductID  uint
	Quantity   int
	Price      decimal.NullDecimal
	StockAfter int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (s Sale) PriceTotal() decimal.NullDecimal {
	return priceTotal(s.Price, s.Quantity)
}

func priceTotal(price decimal.NullDecimal, quantity int) decimal.NullDecimal {
	if !price.Valid {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(price.Decimal.Mul(decimal.NewFromInt(int64(quantity))))
}

type PurchaseInput struct {
	BrandID   uint
	ProductID uint
	FirmID    *uint
	Quantity  int
	Price     decimal.NullDecimal
}

type SaleInput struct {
	BrandID   uint
	ProductID uint
	Quantity  int
	Price     decimal.NullDecimal
}
