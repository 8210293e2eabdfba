package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/AkifKA/stock-app-api/internal/domain"
)

type mockCatalogRepo struct {
	mock.Mock
}

func (m *mockCatalogRepo) CreateCategory(ctx context.Context, category domain.Category) (domain.Category, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *mockCatalogRepo) FindCategoryByID(ctx context.Context, id uint) (domain.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *mockCatalogRepo) UpdateCategory(ctx context.Context, category domain.Category) (domain.Category, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *mockCatalogRepo) DeleteCategory(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCatalogRepo) CreateBrand(ctx context.Context, brand domain.Brand) (domain.Brand, error) {
	args := m.Called(ctx, brand)
	return args.Get(0).(domain.Brand), args.Error(1)
}

func (m *mockCatalogRepo) FindBrandByID(ctx context.Context, id uint) (domain.Brand, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Brand), args.Error(1)
}

func (m *mockCatalogRepo) UpdateBrand(ctx context.Context, brand domain.Brand) (domain.Brand, error) {
	args := m.Called(ctx, brand)
	return args.Get(0).(domain.Brand), args.Error(1)
}

func (m *mockCatalogRepo) DeleteBrand(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCatalogRepo) CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	args := m.Called(ctx, product)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *mockCatalogRepo) FindProductByID(ctx context.Context, id uint) (domain.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *mockCatalogRepo) FindProducts(ctx context.Context, categoryID *uint) ([]domain.Product, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *mockCatalogRepo) UpdateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	args := m.Called(ctx, product)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *mockCatalogRepo) DeleteProduct(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCatalogRepo) CreateFirm(ctx context.Context, firm domain.Firm) (domain.Firm, error) {
	args := m.Called(ctx, firm)
	return args.Get(0).(domain.Firm), args.Error(1)
}

func (m *mockCatalogRepo) FindFirmByID(ctx context.Context, id uint) (domain.Firm, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Firm), args.Error(1)
}

func (m *mockCatalogRepo) FindFirms(ctx context.Context) ([]domain.Firm, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Firm), args.Error(1)
}

func (m *mockCatalogRepo) UpdateFirm(ctx context.Context, firm domain.Firm) (domain.Firm, error) {
	args := m.Called(ctx, firm)
	return args.Get(0).(domain.Firm), args.Error(1)
}

func (m *mockCatalogRepo) DeleteFirm(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func TestCatalogService_CreateCategorySetsOwner(t *testing.T) {
	ctx := context.Background()
	repo := &mockCatalogRepo{}
	svc := NewCatalogService(repo)

	repo.On("CreateCategory", ctx, mock.MatchedBy(func(c domain.Category) bool {
		return c.ID == 0 && c.UserID != nil && *c.UserID == 9 && c.Name == "Drinks"
	})).Return(domain.Category{ID: 1, Name: "Drinks"}, nil)

	created, err := svc.CreateCategory(ctx, 9, domain.Category{ID: 77, Name: "Drinks"})
	require.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)
	repo.AssertExpectations(t)
}

func TestCatalogService_CreateCategoryDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := &mockCatalogRepo{}
	repo.On("CreateCategory", ctx, mock.Anything).Return(domain.Category{}, ErrDuplicateName)

	_, err := NewCatalogService(repo).CreateCategory(ctx, 1, domain.Category{Name: "Drinks"})
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestCatalogService_CreateProduct(t *testing.T) {
	ctx := context.Background()
	brandID := uint(2)

	t.Run("checks category and brand", func(t *testing.T) {
		repo := &mockCatalogRepo{}
		repo.On("FindCategoryByID", ctx, uint(1)).Return(domain.Category{ID: 1}, nil)
		repo.On("FindBrandByID", ctx, brandID).Return(domain.Brand{ID: brandID}, nil)
		repo.On("CreateProduct", ctx, mock.MatchedBy(func(p domain.Product) bool {
			return p.UserID != nil && *p.UserID == 5 && p.Stock == 0
		})).Return(domain.Product{ID: 3, CategoryID: 1, BrandID: &brandID}, nil)

		product, err := NewCatalogService(repo).CreateProduct(ctx, 5, domain.Product{Name: "Phone", CategoryID: 1, BrandID: &brandID})
		require.NoError(t, err)
		assert.Equal(t, uint(3), product.ID)
		repo.AssertExpectations(t)
	})

	t.Run("unknown category", func(t *testing.T) {
		repo := &mockCatalogRepo{}
		repo.On("FindCategoryByID", ctx, uint(1)).Return(domain.Category{}, ErrCategoryNotFound)

		_, err := NewCatalogService(repo).CreateProduct(ctx, 5, domain.Product{Name: "Phone", CategoryID: 1})
		assert.ErrorIs(t, err, ErrCategoryNotFound)
		repo.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
	})

	t.Run("unknown brand", func(t *testing.T) {
		repo := &mockCatalogRepo{}
		repo.On("FindCategoryByID", ctx, uint(1)).Return(domain.Category{ID: 1}, nil)
		repo.On("FindBrandByID", ctx, brandID).Return(domain.Brand{}, ErrBrandNotFound)

		_, err := NewCatalogService(repo).CreateProduct(ctx, 5, domain.Product{Name: "Phone", CategoryID: 1, BrandID: &brandID})
		assert.ErrorIs(t, err, ErrBrandNotFound)
		repo.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
	})
}

func TestCatalogService_UpdateProductUsesPathID(t *testing.T) {
	ctx := context.Background()
	repo := &mockCatalogRepo{}
	repo.On("FindCategoryByID", ctx, uint(1)).Return(domain.Category{ID: 1}, nil)
	repo.On("UpdateProduct", ctx, mock.MatchedBy(func(p domain.Product) bool {
		return p.ID == 8
	})).Return(domain.Product{ID: 8, Name: "Renamed"}, nil)

	product, err := NewCatalogService(repo).UpdateProduct(ctx, 8, domain.Product{Name: "Renamed", CategoryID: 1})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", product.Name)
}

func TestCatalogService_DeleteMissing(t *testing.T) {
	ctx := context.Background()
	repo := &mockCatalogRepo{}
	repo.On("DeleteFirm", ctx, uint(4)).Return(ErrFirmNotFound)

	err := NewCatalogService(repo).DeleteFirm(ctx, 4)
	assert.ErrorIs(t, err, ErrFirmNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
}
