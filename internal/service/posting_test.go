package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AkifKA/stock-app-api/internal/domain"
)

type postingFixture struct {
	store     *memStore
	events    *recordingPublisher
	purchases *PurchaseService
	sales     *SaleService
	views     *ViewService
	brand     domain.Brand
	firm      domain.Firm
	product   domain.Product
}

func newPostingFixture(t *testing.T, stock int) *postingFixture {
	t.Helper()

	store := newMemStore()
	category := store.addCategory("Electronics")
	brand := store.addBrand("Acme")
	firm := store.addFirm("Wholesale Ltd")
	product := store.addProduct("Phone", category.ID, &brand.ID, 0)

	events := &recordingPublisher{}
	f := &postingFixture{
		store:     store,
		events:    events,
		purchases: NewPurchaseService(store, store, store, store, events),
		sales:     NewSaleService(store, store, store, store, events),
		views:     NewViewService(store, store, store),
		brand:     brand,
		firm:      firm,
		product:   product,
	}

	if stock > 0 {
		_, err := f.purchases.CreatePurchase(context.Background(), 1, f.purchaseInput(stock))
		require.NoError(t, err)
	}

	return f
}

func (f *postingFixture) purchaseInput(qty int) domain.PurchaseInput {
	return domain.PurchaseInput{BrandID: f.brand.ID, ProductID: f.product.ID, Quantity: qty}
}

func (f *postingFixture) saleInput(qty int) domain.SaleInput {
	return domain.SaleInput{BrandID: f.brand.ID, ProductID: f.product.ID, Quantity: qty}
}

func TestStockLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newPostingFixture(t, 10)

	sale, err := f.sales.CreateSale(ctx, 1, f.saleInput(4))
	require.NoError(t, err)
	assert.Equal(t, 6, sale.StockAfter)
	assert.Equal(t, 6, f.store.stock(f.product.ID))

	_, err = f.sales.CreateSale(ctx, 1, f.saleInput(10))
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "Dont have enough stock. Current stock is 6", validationErr.Error())

	var insufficient *domain.InsufficientStockError
	require.True(t, errors.As(err, &insufficient))
	assert.Equal(t, 6, insufficient.Current)
	assert.Equal(t, 6, f.store.stock(f.product.ID))
	assert.Len(t, f.store.sales, 1)

	purchase, err := f.purchases.CreatePurchase(ctx, 1, f.purchaseInput(20))
	require.NoError(t, err)
	assert.Equal(t, 26, purchase.StockAfter)
	assert.Equal(t, 26, f.store.stock(f.product.ID))

	ledger, err := f.views.ProductLedger(ctx, f.product.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ProductLedger{
		ProductID:     f.product.ID,
		Stock:         26,
		PurchasedQty:  30,
		SoldQty:       4,
		ExpectedStock: 26,
		Consistent:    true,
	}, ledger)
}

func TestCreateSale_ExactStockLeavesZero(t *testing.T) {
	f := newPostingFixture(t, 7)

	sale, err := f.sales.CreateSale(context.Background(), 1, f.saleInput(7))
	require.NoError(t, err)
	assert.Equal(t, 0, sale.StockAfter)
	assert.Equal(t, 0, f.store.stock(f.product.ID))
}

func TestCreateSale_EmptyStock(t *testing.T) {
	f := newPostingFixture(t, 0)

	_, err := f.sales.CreateSale(context.Background(), 1, f.saleInput(1))
	require.Error(t, err)
	assert.EqualError(t, err, "Dont have enough stock. Current stock is 0")
	assert.Empty(t, f.store.sales)
}

func TestCreateSale_ConcurrentOversell(t *testing.T) {
	f := newPostingFixture(t, 5)

	const workers = 10
	var (
		wg           sync.WaitGroup
		mu           sync.Mutex
		succeeded    int
		insufficient int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := f.sales.CreateSale(context.Background(), 1, f.saleInput(3))

			mu.Lock()
			defer mu.Unlock()
			var stockErr *domain.InsufficientStockError
			switch {
			case err == nil:
				succeeded++
			case errors.As(err, &stockErr):
				insufficient++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, insufficient)
	assert.Equal(t, 2, f.store.stock(f.product.ID))
	assert.Len(t, f.store.sales, 1)
}

func TestPosting_InvalidQuantity(t *testing.T) {
	ctx := context.Background()
	f := newPostingFixture(t, 5)

	for _, qty := range []int{0, -3} {
		_, err := f.purchases.CreatePurchase(ctx, 1, f.purchaseInput(qty))
		assert.ErrorIs(t, err, ErrInvalidQuantity)

		_, err = f.sales.CreateSale(ctx, 1, f.saleInput(qty))
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	}

	assert.Equal(t, 5, f.store.stock(f.product.ID))
	assert.Len(t, f.store.purchases, 1)
	assert.Empty(t, f.store.sales)
}

func TestPosting_MissingReferences(t *testing.T) {
	ctx := context.Background()
	f := newPostingFixture(t, 5)
	missingFirm := uint(999)

	tests := []struct {
		name string
		post func() error
		want error
	}{
		{
			name: "purchase of unknown product",
			post: func() error {
				_, err := f.purchases.CreatePurchase(ctx, 1, domain.PurchaseInput{BrandID: f.brand.ID, ProductID: 999, Quantity: 1})
				return err
			},
			want: ErrProductNotFound,
		},
		{
			name: "purchase with unknown brand",
			post: func() error {
				_, err := f.purchases.CreatePurchase(ctx, 1, domain.PurchaseInput{BrandID: 999, ProductID: f.product.ID, Quantity: 1})
				return err
			},
			want: ErrBrandNotFound,
		},
		{
			name: "purchase from unknown firm",
			post: func() error {
				_, err := f.purchases.CreatePurchase(ctx, 1, domain.PurchaseInput{BrandID: f.brand.ID, ProductID: f.product.ID, FirmID: &missingFirm, Quantity: 1})
				return err
			},
			want: ErrFirmNotFound,
		},
		{
			name: "sale of unknown product",
			post: func() error {
				_, err := f.sales.CreateSale(ctx, 1, domain.SaleInput{BrandID: f.brand.ID, ProductID: 999, Quantity: 1})
				return err
			},
			want: ErrProductNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.post()
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, ErrNotFound)
			assert.Equal(t, 5, f.store.stock(f.product.ID))
		})
	}
}

func TestPosting_FailedInsertRollsBackStock(t *testing.T) {
	ctx := context.Background()
	f := newPostingFixture(t, 5)
	insertErr := errors.New("insert failed")

	f.store.failSaleInsert = insertErr
	_, err := f.sales.CreateSale(ctx, 1, f.saleInput(2))
	assert.ErrorIs(t, err, insertErr)
	assert.Equal(t, 5, f.store.stock(f.product.ID))

	f.store.failPurchaseInsert = insertErr
	_, err = f.purchases.CreatePurchase(ctx, 1, f.purchaseInput(2))
	assert.ErrorIs(t, err, insertErr)
	assert.Equal(t, 5, f.store.stock(f.product.ID))

	// only the seed purchase was published
	assert.Len(t, f.events.published(), 1)
}

func TestCreatePurchase_RecordsOwnerFirmAndPrice(t *testing.T) {
	f := newPostingFixture(t, 0)
	price := decimal.NewNullDecimal(decimal.RequireFromString("12.50"))

	purchase, err := f.purchases.CreatePurchase(context.Background(), 42, domain.PurchaseInput{
		BrandID:   f.brand.ID,
		ProductID: f.product.ID,
		FirmID:    &f.firm.ID,
		Quantity:  4,
		Price:     price,
	})
	require.NoError(t, err)

	require.NotNil(t, purchase.UserID)
	assert.Equal(t, uint(42), *purchase.UserID)
	assert.Equal(t, &f.firm.ID, purchase.FirmID)
	assert.True(t, purchase.PriceTotal().Decimal.Equal(decimal.RequireFromString("50")))
}

func TestPosting_PublishesStockEvents(t *testing.T) {
	ctx := context.Background()
	f := newPostingFixture(t, 0)

	purchase, err := f.purchases.CreatePurchase(ctx, 3, f.purchaseInput(8))
	require.NoError(t, err)
	sale, err := f.sales.CreateSale(ctx, 3, f.saleInput(5))
	require.NoError(t, err)

	events := f.events.published()
	require.Len(t, events, 2)

	assert.Equal(t, domain.StockEventPurchase, events[0].Kind)
	assert.Equal(t, purchase.ID, events[0].RecordID)
	assert.Equal(t, 8, events[0].Delta)
	assert.Equal(t, 8, events[0].StockAfter)

	assert.Equal(t, domain.StockEventSale, events[1].Kind)
	assert.Equal(t, sale.ID, events[1].RecordID)
	assert.Equal(t, -5, events[1].Delta)
	assert.Equal(t, 3, events[1].StockAfter)
	assert.Equal(t, uint(3), events[1].UserID)

	for _, e := range events {
		assert.NotEmpty(t, e.EventID)
		assert.False(t, e.OccurredAt.IsZero())
	}
	assert.NotEqual(t, events[0].EventID, events[1].EventID)
}

func TestPosting_PublishFailureKeepsPosting(t *testing.T) {
	f := newPostingFixture(t, 0)
	f.events.err = errors.New("broker down")

	purchase, err := f.purchases.CreatePurchase(context.Background(), 1, f.purchaseInput(3))
	require.NoError(t, err)
	assert.Equal(t, 3, purchase.StockAfter)
	assert.Equal(t, 3, f.store.stock(f.product.ID))
}

func TestPosting_NilPublisher(t *testing.T) {
	store := newMemStore()
	category := store.addCategory("Food")
	brand := store.addBrand("Farm")
	product := store.addProduct("Milk", category.ID, nil, 0)

	svc := NewPurchaseService(store, store, store, store, nil)
	_, err := svc.CreatePurchase(context.Background(), 1, domain.PurchaseInput{BrandID: brand.ID, ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, store.stock(product.ID))
}
