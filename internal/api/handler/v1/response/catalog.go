package response

import (
	"time"

	"github.com/AkifKA/stock-app-api/internal/domain"
)

type Category struct {
	ID           uint      `json:"id"`
	UserID       *uint     `json:"user_id"`
	Name         string    `json:"name"`
	Image        *string   `json:"image"`
	ProductCount int64     `json:"product_count"`
	CreatedAt    time.Time `json:"created"`
	UpdatedAt    time.Time `json:"updated"`
}

func NewCategory(c domain.CategoryWithCount) Category {
	return Category{
		ID:           c.ID,
		UserID:       c.UserID,
		Name:         c.Name,
		Image:        c.Image,
		ProductCount: c.ProductCount,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func NewCategories(categories []domain.CategoryWithCount) []Category {
	out := make([]Category, len(categories))
	for i, c := range categories {
		out[i] = NewCategory(c)
	}

	return out
}

type CategoryProducts struct {
	Category
	Products []domain.Product `json:"products"`
}

func NewCategoryProducts(c domain.CategoryProducts) CategoryProducts {
	products := c.Products
	if products == nil {
		products = []domain.Product{}
	}

	return CategoryProducts{
		Category: NewCategory(c.CategoryWithCount),
		Products: products,
	}
}

type Brand struct {
	ID           uint      `json:"id"`
	UserID       *uint     `json:"user_id"`
	Name         string    `json:"name"`
	Image        *string   `json:"image"`
	ProductCount int64     `json:"product_count"`
	CreatedAt    time.Time `json:"created"`
	UpdatedAt    time.Time `json:"updated"`
}

func NewBrands(brands []domain.BrandWithCount) []Brand {
	out := make([]Brand, len(brands))
	for i, b := range brands {
		out[i] = Brand{
			ID:           b.ID,
			UserID:       b.UserID,
			Name:         b.Name,
			Image:        b.Image,
			ProductCount: b.ProductCount,
			CreatedAt:    b.CreatedAt,
			UpdatedAt:    b.UpdatedAt,
		}
	}

	return out
}

type ProductLedger struct {
	ProductID     uint  `json:"product_id"`
	Stock         int   `json:"stock"`
	PurchasedQty  int64 `json:"purchased_quantity"`
	SoldQty       int64 `json:"sold_quantity"`
	ExpectedStock int64 `json:"expected_stock"`
	Consistent    bool  `json:"consistent"`
}

func NewProductLedger(l domain.ProductLedger) ProductLedger {
	return ProductLedger(l)
}
