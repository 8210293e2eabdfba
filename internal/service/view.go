package service

import (
	"context"
	"fmt"

	"github.com/AkifKA/stock-app-api/internal/domain"
)

type ViewRepository interface {
	CategoriesWithProductCount(ctx context.Context) ([]domain.CategoryWithCount, error)
	CategoryWithProductCount(ctx context.Context, categoryID uint) (domain.CategoryWithCount, error)
	BrandsWithProductCount(ctx context.Context) ([]domain.BrandWithCount, error)
	CategoryOfProduct(ctx context.Context, productID uint) ([]domain.Category, error)
	PostedQuantities(ctx context.Context, productID uint) (int64, int64, error)
}

type PostingReader interface {
	FindPurchaseByID(ctx context.Context, id uint) (domain.Purchase, error)
	FindPurchases(ctx context.Context) ([]domain.Purchase, error)
	FindSaleByID(ctx context.Context, id uint) (domain.Sale, error)
	FindSales(ctx context.Context) ([]domain.Sale, error)
}

type ProductReader interface {
	FindProductByID(ctx context.Context, id uint) (domain.Product, error)
	FindProducts(ctx context.Context, categoryID *uint) ([]domain.Product, error)
}

// ViewService builds the read models. Every view is computed from the stored
// records at request time.
type ViewService struct {
	views    ViewRepository
	postings PostingReader
	products ProductReader
}

func NewViewService(views ViewRepository, postings PostingReader, products ProductReader) *ViewService {
	return &ViewService{
		views:    views,
		postings: postings,
		products: products,
	}
}

func (s *ViewService) ListCategoriesWithCounts(ctx context.Context) ([]domain.CategoryWithCount, error) {
	categories, err := s.views.CategoriesWithProductCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.views.CategoriesWithProductCount -> %w", err)
	}

	return categories, nil
}

func (s *ViewService) GetCategoryWithCount(ctx context.Context, id uint) (domain.CategoryWithCount, error) {
	category, err := s.views.CategoryWithProductCount(ctx, id)
	if err != nil {
		return domain.CategoryWithCount{}, fmt.Errorf("s.views.CategoryWithProductCount -> %w", err)
	}

	return category, nil
}

func (s *ViewService) CategoryProducts(ctx context.Context, id uint) (domain.CategoryProducts, error) {
	category, err := s.views.CategoryWithProductCount(ctx, id)
	if err != nil {
		return domain.CategoryProducts{}, fmt.Errorf("s.views.CategoryWithProductCount -> %w", err)
	}

	products, err := s.products.FindProducts(ctx, &id)
	if err != nil {
		return domain.CategoryProducts{}, fmt.Errorf("s.products.FindProducts -> %w", err)
	}

	return domain.CategoryProducts{
		CategoryWithCount: category,
		Products:          products,
	}, nil
}

func (s *ViewService) ListBrandsWithCounts(ctx context.Context) ([]domain.BrandWithCount, error) {
	brands, err := s.views.BrandsWithProductCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.views.BrandsWithProductCount -> %w", err)
	}

	return brands, nil
}

func (s *ViewService) GetPurchaseWithCategory(ctx context.Context, id uint) (domain.PurchaseWithCategory, error) {
	purchase, err := s.postings.FindPurchaseByID(ctx, id)
	if err != nil {
		return domain.PurchaseWithCategory{}, fmt.Errorf("s.postings.FindPurchaseByID -> %w", err)
	}

	category, err := s.views.CategoryOfProduct(ctx, purchase.ProductID)
	if err != nil {
		return domain.PurchaseWithCategory{}, fmt.Errorf("s.views.CategoryOfProduct -> %w", err)
	}

	return domain.PurchaseWithCategory{Purchase: purchase, Category: category}, nil
}

func (s *ViewService) ListPurchasesWithCategory(ctx context.Context) ([]domain.PurchaseWithCategory, error) {
	purchases, err := s.postings.FindPurchases(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.postings.FindPurchases -> %w", err)
	}

	lookup := s.categoryLookup()
	result := make([]domain.PurchaseWithCategory, len(purchases))
	for i, purchase := range purchases {
		category, err := lookup(ctx, purchase.ProductID)
		if err != nil {
			return nil, err
		}
		result[i] = domain.PurchaseWithCategory{Purchase: purchase, Category: category}
	}

	return result, nil
}

func (s *ViewService) GetSaleWithCategory(ctx context.Context, id uint) (domain.SaleWithCategory, error) {
	sale, err := s.postings.FindSaleByID(ctx, id)
	if err != nil {
		return domain.SaleWithCategory{}, fmt.Errorf("s.postings.FindSaleByID -> %w", err)
	}

	category, err := s.views.CategoryOfProduct(ctx, sale.ProductID)
	if err != nil {
		return domain.SaleWithCategory{}, fmt.Errorf("s.views.CategoryOfProduct -> %w", err)
	}

	return domain.SaleWithCategory{Sale: sale, Category: category}, nil
}

func (s *ViewService) ListSalesWithCategory(ctx context.Context) ([]domain.SaleWithCategory, error) {
	sales, err := s.postings.FindSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.postings.FindSales -> %w", err)
	}

	lookup := s.categoryLookup()
	result := make([]domain.SaleWithCategory, len(sales))
	for i, sale := range sales {
		category, err := lookup(ctx, sale.ProductID)
		if err != nil {
			return nil, err
		}
		result[i] = domain.SaleWithCategory{Sale: sale, Category: category}
	}

	return result, nil
}

// ProductLedger reconciles the stock counter of a product with the sum of its
// purchases minus its sales.
func (s *ViewService) ProductLedger(ctx context.Context, productID uint) (domain.ProductLedger, error) {
	product, err := s.products.FindProductByID(ctx, productID)
	if err != nil {
		return domain.ProductLedger{}, fmt.Errorf("s.products.FindProductByID -> %w", err)
	}

	purchased, sold, err := s.views.PostedQuantities(ctx, productID)
	if err != nil {
		return domain.ProductLedger{}, fmt.Errorf("s.views.PostedQuantities -> %w", err)
	}

	expected := purchased - sold
	return domain.ProductLedger{
		ProductID:     product.ID,
		Stock:         product.Stock,
		PurchasedQty:  purchased,
		SoldQty:       sold,
		ExpectedStock: expected,
		Consistent:    expected == int64(product.Stock),
	}, nil
}

// categoryLookup memoizes the category of each product for one list call.
func (s *ViewService) categoryLookup() func(ctx context.Context, productID uint) ([]domain.Category, error) {
	seen := make(map[uint][]domain.Category)
	return func(ctx context.Context, productID uint) ([]domain.Category, error) {
		if category, ok := seen[productID]; ok {
			return category, nil
		}

		category, err := s.views.CategoryOfProduct(ctx, productID)
		if err != nil {
			return nil, fmt.Errorf("s.views.CategoryOfProduct -> %w", err)
		}
		seen[productID] = category

		return category, nil
	}
}
