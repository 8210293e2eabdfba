package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewService_CategoryCounts(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	drinks := store.addCategory("Drinks")
	snacks := store.addCategory("Snacks")
	store.addCategory("Empty")
	store.addProduct("Cola", drinks.ID, nil, 0)
	water := store.addProduct("Water", drinks.ID, nil, 0)
	store.addProduct("Chips", snacks.ID, nil, 0)

	svc := NewViewService(store, store, store)

	categories, err := svc.ListCategoriesWithCounts(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, int64(2), categories[0].ProductCount)
	assert.Equal(t, int64(1), categories[1].ProductCount)
	assert.Equal(t, int64(0), categories[2].ProductCount)

	delete(store.products, water.ID)

	category, err := svc.GetCategoryWithCount(ctx, drinks.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), category.ProductCount)

	_, err = svc.GetCategoryWithCount(ctx, 999)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestViewService_CategoryProducts(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	drinks := store.addCategory("Drinks")
	other := store.addCategory("Other")
	cola := store.addProduct("Cola", drinks.ID, nil, 3)
	store.addProduct("Soap", other.ID, nil, 0)

	svc := NewViewService(store, store, store)

	result, err := svc.CategoryProducts(ctx, drinks.ID)
	require.NoError(t, err)
	assert.Equal(t, "Drinks", result.Name)
	assert.Equal(t, int64(1), result.ProductCount)
	require.Len(t, result.Products, 1)
	assert.Equal(t, cola.ID, result.Products[0].ID)

	_, err = svc.CategoryProducts(ctx, 999)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestViewService_BrandCounts(t *testing.T) {
	store := newMemStore()
	category := store.addCategory("Tools")
	acme := store.addBrand("Acme")
	store.addBrand("Unused")
	store.addProduct("Hammer", category.ID, &acme.ID, 0)
	store.addProduct("Saw", category.ID, &acme.ID, 0)
	store.addProduct("Nails", category.ID, nil, 0)

	brands, err := NewViewService(store, store, store).ListBrandsWithCounts(context.Background())
	require.NoError(t, err)
	require.Len(t, brands, 2)
	assert.Equal(t, int64(2), brands[0].ProductCount)
	assert.Equal(t, int64(0), brands[1].ProductCount)
}

func TestViewService_PostingWithCategory(t *testing.T) {
	ctx := context.Background()
	f := newPostingFixture(t, 5)

	sale, err := f.sales.CreateSale(ctx, 1, f.saleInput(2))
	require.NoError(t, err)

	withCategory, err := f.views.GetSaleWithCategory(ctx, sale.ID)
	require.NoError(t, err)
	require.Len(t, withCategory.Category, 1)
	assert.Equal(t, "Electronics", withCategory.Category[0].Name)

	purchases, err := f.views.ListPurchasesWithCategory(ctx)
	require.NoError(t, err)
	require.Len(t, purchases, 1)
	assert.Len(t, purchases[0].Category, 1)

	// the record outlives its product in the view
	delete(f.store.products, f.product.ID)

	withCategory, err = f.views.GetSaleWithCategory(ctx, sale.ID)
	require.NoError(t, err)
	assert.Empty(t, withCategory.Category)

	purchaseView, err := f.views.GetPurchaseWithCategory(ctx, purchases[0].ID)
	require.NoError(t, err)
	assert.Empty(t, purchaseView.Category)

	_, err = f.views.GetSaleWithCategory(ctx, 999)
	assert.ErrorIs(t, err, ErrSaleNotFound)
	_, err = f.views.GetPurchaseWithCategory(ctx, 999)
	assert.ErrorIs(t, err, ErrPurchaseNotFound)
}

func TestViewService_ListLooksUpEachProductOnce(t *testing.T) {
	ctx := context.Background()
	f := newPostingFixture(t, 10)

	for i := 0; i < 4; i++ {
		_, err := f.sales.CreateSale(ctx, 1, f.saleInput(1))
		require.NoError(t, err)
	}

	f.store.categoryLookups = 0
	sales, err := f.views.ListSalesWithCategory(ctx)
	require.NoError(t, err)
	assert.Len(t, sales, 4)
	assert.Equal(t, 1, f.store.categoryLookups)
}

func TestViewService_ProductLedgerDetectsDrift(t *testing.T) {
	ctx := context.Background()
	f := newPostingFixture(t, 10)

	p := f.store.products[f.product.ID]
	p.Stock = 11
	f.store.products[f.product.ID] = p

	ledger, err := f.views.ProductLedger(ctx, f.product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), ledger.ExpectedStock)
	assert.False(t, ledger.Consistent)

	_, err = f.views.ProductLedger(ctx, 999)
	assert.ErrorIs(t, err, ErrProductNotFound)
}
