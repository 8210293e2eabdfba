package dao

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/AkifKA/stock-app-api/internal/domain"
)

type fixture struct {
	category Category
	brand    Brand
	product  Product
}

func seed(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	ctx := context.Background()

	category, err := NewCategoryDAO(db).Insert(ctx, Category{Name: "Electronics"})
	require.NoError(t, err)
	brand, err := NewBrandDAO(db).Insert(ctx, Brand{Name: "Acme"})
	require.NoError(t, err)
	product, err := NewProductDAO(db).Insert(ctx, Product{Name: "Phone", CategoryID: category.ID, BrandID: &brand.ID, Stock: 99})
	require.NoError(t, err)

	return fixture{category: category, brand: brand, product: product}
}

func TestProductDAO_InsertStartsAtZero(t *testing.T) {
	db := setupDB(t)
	f := seed(t, db)

	assert.Equal(t, 0, f.product.Stock)
	assert.Equal(t, "Electronics", f.product.Category.Name)
	require.NotNil(t, f.product.Brand)
	assert.Equal(t, "Acme", f.product.Brand.Name)
}

func TestLedgerDAO_IncreaseDecrease(t *testing.T) {
	db := setupDB(t)
	f := seed(t, db)
	ctx := context.Background()
	ledger := NewLedgerDAO(db)

	stock, err := ledger.Increase(ctx, f.product.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, stock)

	stock, err = ledger.Decrease(ctx, f.product.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 6, stock)

	_, err = ledger.Decrease(ctx, f.product.ID, 10)
	var insufficient *domain.InsufficientStockError
	require.True(t, errors.As(err, &insufficient))
	assert.Equal(t, 6, insufficient.Current)

	stock, err = ledger.Decrease(ctx, f.product.ID, 6)
	require.NoError(t, err)
	assert.Equal(t, 0, stock)

	_, err = ledger.Increase(ctx, f.product.ID, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = ledger.Decrease(ctx, 999, 1)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestLedgerDAO_ConcurrentDecrease(t *testing.T) {
	db := setupDB(t)
	f := seed(t, db)
	ctx := context.Background()
	ledger := NewLedgerDAO(db)

	_, err := ledger.Increase(ctx, f.product.ID, 5)
	require.NoError(t, err)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := ledger.Decrease(ctx, f.product.ID, 3); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	product, err := NewProductDAO(db).FindByID(ctx, f.product.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 2, product.Stock)
}

func TestTransactor_RollsBackLedger(t *testing.T) {
	db := setupDB(t)
	f := seed(t, db)
	ctx := context.Background()
	ledger := NewLedgerDAO(db)
	sales := NewSaleDAO(db)
	boom := errors.New("boom")

	_, err := ledger.Increase(ctx, f.product.ID, 5)
	require.NoError(t, err)

	err = NewTransactor(db).WithinTransaction(ctx, func(ctx context.Context) error {
		stock, err := ledger.Decrease(ctx, f.product.ID, 2)
		if err != nil {
			return err
		}
		if _, err := sales.Insert(ctx, Sale{BrandID: f.brand.ID, ProductID: f.product.ID, Quantity: 2, StockAfter: stock}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	product, err := NewProductDAO(db).FindByID(ctx, f.product.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, product.Stock)

	all, err := sales.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestPurchaseDAO_PriceRoundTrip(t *testing.T) {
	db := setupDB(t)
	f := seed(t, db)
	ctx := context.Background()
	purchases := NewPurchaseDAO(db)

	created, err := purchases.Insert(ctx, Purchase{
		BrandID:    f.brand.ID,
		ProductID:  f.product.ID,
		Quantity:   3,
		Price:      decimal.NewNullDecimal(decimal.RequireFromString("19.90")),
		StockAfter: 3,
	})
	require.NoError(t, err)

	found, err := purchases.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, found.Price.Valid)
	assert.True(t, found.Price.Decimal.Equal(decimal.RequireFromString("19.9")))
	assert.Nil(t, found.FirmID)

	_, err = purchases.FindByID(ctx, 999)
	assert.ErrorIs(t, err, ErrPurchaseNotFound)

	_, err = purchases.Insert(ctx, Purchase{BrandID: f.brand.ID, ProductID: 999, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
