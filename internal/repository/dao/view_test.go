package dao

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryDAO_DuplicateName(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	categories := NewCategoryDAO(db)

	_, err := categories.Insert(ctx, Category{Name: "Drinks"})
	require.NoError(t, err)

	_, err = categories.Insert(ctx, Category{Name: "Drinks"})
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestViewDAO_ProductCounts(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	f := seed(t, db)
	products := NewProductDAO(db)
	views := NewViewDAO(db)

	second, err := products.Insert(ctx, Product{Name: "Tablet", CategoryID: f.category.ID})
	require.NoError(t, err)
	empty, err := NewCategoryDAO(db).Insert(ctx, Category{Name: "Empty"})
	require.NoError(t, err)

	rows, err := views.CategoriesWithProductCount(ctx, nil)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(2), rows[0].ProductCount)
	assert.Equal(t, empty.ID, rows[1].ID)
	assert.Equal(t, int64(0), rows[1].ProductCount)

	brands, err := views.BrandsWithProductCount(ctx)
	require.NoError(t, err)
	require.Len(t, brands, 1)
	assert.Equal(t, int64(1), brands[0].ProductCount)

	require.NoError(t, products.Delete(ctx, second.ID))

	rows, err = views.CategoriesWithProductCount(ctx, &f.category.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(1), rows[0].ProductCount)
}

func TestViewDAO_CategoryOfProduct(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	f := seed(t, db)
	views := NewViewDAO(db)

	found, err := views.CategoryOfProduct(ctx, f.product.ID)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Electronics", found[0].Name)

	found, err = views.CategoryOfProduct(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestViewDAO_PostedQuantities(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	f := seed(t, db)

	_, err := NewPurchaseDAO(db).Insert(ctx, Purchase{BrandID: f.brand.ID, ProductID: f.product.ID, Quantity: 10, StockAfter: 10})
	require.NoError(t, err)
	_, err = NewSaleDAO(db).Insert(ctx, Sale{BrandID: f.brand.ID, ProductID: f.product.ID, Quantity: 4, StockAfter: 6})
	require.NoError(t, err)

	purchased, sold, err := NewViewDAO(db).PostedQuantities(ctx, f.product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), purchased)
	assert.Equal(t, int64(4), sold)
}

func TestCategoryDAO_DeleteCascadesProducts(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	f := seed(t, db)

	require.NoError(t, NewCategoryDAO(db).Delete(ctx, f.category.ID))

	_, err := NewProductDAO(db).FindByID(ctx, f.product.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)

	err = NewCategoryDAO(db).Delete(ctx, f.category.ID)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}
