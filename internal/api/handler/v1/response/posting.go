package response

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/AkifKA/stock-app-api/internal/domain"
)

type Purchase struct {
	ID         uint                `json:"id"`
	UserID     *uint               `json:"user_id"`
	BrandID    uint                `json:"brand_id"`
	ProductID  uint                `json:"product_id"`
	FirmID     *uint               `json:"firm_id"`
	Quantity   int                 `json:"quantity"`
	Price      decimal.NullDecimal `json:"price" swaggertype:"string"`
	PriceTotal decimal.NullDecimal `json:"price_total" swaggertype:"string"`
	StockAfter int                 `json:"stock_after"`
	Category   *[]domain.Category  `json:"category,omitempty"`
	CreatedAt  time.Time           `json:"created"`
	UpdatedAt  time.Time           `json:"updated"`
}

func NewPurchase(p domain.Purchase, category *[]domain.Category) Purchase {
	return Purchase{
		ID:         p.ID,
		UserID:     p.UserID,
		BrandID:    p.BrandID,
		ProductID:  p.ProductID,
		FirmID:     p.FirmID,
		Quantity:   p.Quantity,
		Price:      p.Price,
		PriceTotal: p.PriceTotal(),
		StockAfter: p.StockAfter,
		Category:   category,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func NewPurchases(purchases []domain.PurchaseWithCategory) []Purchase {
	out := make([]Purchase, len(purchases))
	for i, p := range purchases {
		out[i] = NewPurchase(p.Purchase, nonNilCategory(p.Category))
	}

	return out
}

type Sale struct {
	ID         uint                `json:"id"`
	UserID     *uint               `json:"user_id"`
	BrandID    uint                `json:"brand_id"`
	ProductID  uint                `json:"product_id"`
	Quantity   int                 `json:"quantity"`
	Price      decimal.NullDecimal `json:"price" swaggertype:"string"`
	PriceTotal decimal.NullDecimal `json:"price_total" swaggertype:"string"`
	StockAfter int                 `json:"stock_after"`
	Category   *[]domain.Category  `json:"category,omitempty"`
	CreatedAt  time.Time           `json:"created"`
	UpdatedAt  time.Time           `json:"updated"`
}

func NewSale(s domain.Sale, category *[]domain.Category) Sale {
	return Sale{
		ID:         s.ID,
		UserID:     s.UserID,
		BrandID:    s.BrandID,
		ProductID:  s.ProductID,
		Quantity:   s.Quantity,
		Price:      s.Price,
		PriceTotal: s.PriceTotal(),
		StockAfter: s.StockAfter,
		Category:   category,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

func NewSales(sales []domain.SaleWithCategory) []Sale {
	out := make([]Sale, len(sales))
	for i, s := range sales {
		out[i] = NewSale(s.Sale, nonNilCategory(s.Category))
	}

	return out
}

func NewPurchaseWithCategory(p domain.PurchaseWithCategory) Purchase {
	return NewPurchase(p.Purchase, nonNilCategory(p.Category))
}

func NewSaleWithCategory(s domain.SaleWithCategory) Sale {
	return NewSale(s.Sale, nonNilCategory(s.Category))
}

// nonNilCategory keeps "category": [] in the body for records whose product
// was deleted.
func nonNilCategory(category []domain.Category) *[]domain.Category {
	if category == nil {
		category = []domain.Category{}
	}

	return &category
}
