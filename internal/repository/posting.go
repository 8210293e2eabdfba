package repository

import (
	"context"
	"fmt"

	"github.com/AkifKA/stock-app-api/internal/domain"
	"github.com/AkifKA/stock-app-api/internal/repository/dao"
)

var (
	ErrPurchaseNotFound = dao.ErrPurchaseNotFound
	ErrSaleNotFound     = dao.ErrSaleNotFound
)

type LedgerDAO interface {
	Increase(ctx context.Context, productID uint, qty int) (int, error)
	Decrease(ctx context.Context, productID uint, qty int) (int, error)
}

type PurchaseDAO interface {
	Insert(ctx context.Context, purchase dao.Purchase) (dao.Purchase, error)
	FindByID(ctx context.Context, id uint) (dao.Purchase, error)
	FindAll(ctx context.Context) ([]dao.Purchase, error)
}

type SaleDAO interface {
	Insert(ctx context.Context, sale dao.Sale) (dao.Sale, error)
	FindByID(ctx context.Context, id uint) (dao.Sale, error)
	FindAll(ctx context.Context) ([]dao.Sale, error)
}

// PostingRepository groups the stock ledger with the purchase and sale
// records it is posted together with.
type PostingRepository struct {
	ledger    LedgerDAO
	purchases PurchaseDAO
	sales     SaleDAO
}

func NewPostingRepository(ledger LedgerDAO, purchases PurchaseDAO, sales SaleDAO) *PostingRepository {
	return &PostingRepository{
		ledger:    ledger,
		purchases: purchases,
		sales:     sales,
	}
}

// IncreaseStock returns the stock after the increase.
func (r *PostingRepository) IncreaseStock(ctx context.Context, productID uint, qty int) (int, error) {
	stock, err := r.ledger.Increase(ctx, productID, qty)
	if err != nil {
		return 0, fmt.Errorf("r.ledger.Increase -> %w", err)
	}

	return stock, nil
}

func (r *PostingRepository) DecreaseStock(ctx context.Context, productID uint, qty int) (int, error) {
	stock, err := r.ledger.Decrease(ctx, productID, qty)
	if err != nil {
		return 0, fmt.Errorf("r.ledger.Decrease -> %w", err)
	}

	return stock, nil
}

func (r *PostingRepository) CreatePurchase(ctx context.Context, purchase domain.Purchase) (domain.Purchase, error) {
	created, err := r.purchases.Insert(ctx, purchaseDomainToDao(purchase))
	if err != nil {
		return domain.Purchase{}, fmt.Errorf("r.purchases.Insert -> %w", err)
	}

	return purchaseDaoToDomain(created), nil
}

func (r *PostingRepository) FindPurchaseByID(ctx context.Context, id uint) (domain.Purchase, error) {
	found, err := r.purchases.FindByID(ctx, id)
	if err != nil {
		return domain.Purchase{}, fmt.Errorf("r.purchases.FindByID -> %w", err)
	}

	return purchaseDaoToDomain(found), nil
}

func (r *PostingRepository) FindPurchases(ctx context.Context) ([]domain.Purchase, error) {
	found, err := r.purchases.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.purchases.FindAll -> %w", err)
	}

	purchases := make([]domain.Purchase, len(found))
	for i, p := range found {
		purchases[i] = purchaseDaoToDomain(p)
	}

	return purchases, nil
}

func (r *PostingRepository) CreateSale(ctx context.Context, sale domain.Sale) (domain.Sale, error) {
	created, err := r.sales.Insert(ctx, saleDomainToDao(sale))
	if err != nil {
		return domain.Sale{}, fmt.Errorf("r.sales.Insert -> %w", err)
	}

	return saleDaoToDomain(created), nil
}

func (r *PostingRepository) FindSaleByID(ctx context.Context, id uint) (domain.Sale, error) {
	found, err := r.sales.FindByID(ctx, id)
	if err != nil {
		return domain.Sale{}, fmt.Errorf("r.sales.FindByID -> %w", err)
	}

	return saleDaoToDomain(found), nil
}

func (r *PostingRepository) FindSales(ctx context.Context) ([]domain.Sale, error) {
	found, err := r.sales.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.sales.FindAll -> %w", err)
	}

	sales := make([]domain.Sale, len(found))
	for i, s := range found {
		sales[i] = saleDaoToDomain(s)
	}

	return sales, nil
}

func purchaseDomainToDao(p domain.Purchase) dao.Purchase {
	return dao.Purchase{
		ID:         p.ID,
		UserID:     p.UserID,
		BrandID:    p.BrandID,
		ProductID:  p.ProductID,
		FirmID:     p.FirmID,
		Quantity:   p.Quantity,
		Price:      p.Price,
		StockAfter: p.StockAfter,
	}
}

func purchaseDaoToDomain(p dao.Purchase) domain.Purchase {
	return domain.Purchase{
		ID:         p.ID,
		UserID:     p.UserID,
		BrandID:    p.BrandID,
		ProductID:  p.ProductID,
		FirmID:     p.FirmID,
		Quantity:   p.Quantity,
		Price:      p.Price,
		StockAfter: p.StockAfter,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func saleDomainToDao(s domain.Sale) dao.Sale {
	return dao.Sale{
		ID:         s.ID,
		UserID:     s.UserID,
		BrandID:    s.BrandID,
		ProductID:  s.ProductID,
		Quantity:   s.Quantity,
		Price:      s.Price,
		StockAfter: s.StockAfter,
	}
}

func saleDaoToDomain(s dao.Sale) domain.Sale {
	return domain.Sale{
		ID:         s.ID,
		UserID:     s.UserID,
		BrandID:    s.BrandID,
		ProductID:  s.ProductID,
		Quantity:   s.Quantity,
		Price:      s.Price,
		StockAfter: s.StockAfter,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}
