package v1

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/AkifKA/stock-app-api/internal/domain"
	"github.com/AkifKA/stock-app-api/internal/service"
)

type mockCategoryService struct {
	mock.Mock
}

func (m *mockCategoryService) CreateCategory(ctx context.Context, userID uint, category domain.Category) (domain.Category, error) {
	args := m.Called(ctx, userID, category)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *mockCategoryService) UpdateCategory(ctx context.Context, id uint, category domain.Category) (domain.Category, error) {
	args := m.Called(ctx, id, category)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *mockCategoryService) DeleteCategory(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCategoryService) ListCategoriesWithCounts(ctx context.Context) ([]domain.CategoryWithCount, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.CategoryWithCount), args.Error(1)
}

func (m *mockCategoryService) GetCategoryWithCount(ctx context.Context, id uint) (domain.CategoryWithCount, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.CategoryWithCount), args.Error(1)
}

func (m *mockCategoryService) CategoryProducts(ctx context.Context, id uint) (domain.CategoryProducts, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.CategoryProducts), args.Error(1)
}

func newCategoryRouter(svc *mockCategoryService) http.Handler {
	h := NewCategoryHandler(svc, svc)
	r := newTestRouter(1)
	r.GET("/categories", h.HandleListCategories)
	r.POST("/categories", h.HandleCreateCategory)
	r.GET("/categories/:id", h.HandleGetCategory)
	r.PUT("/categories/:id", h.HandleUpdateCategory)
	r.DELETE("/categories/:id", h.HandleDeleteCategory)
	r.GET("/categories/:id/products", h.HandleGetCategoryProducts)

	return r
}

func TestHandleListCategories(t *testing.T) {
	svc := &mockCategoryService{}
	svc.On("ListCategoriesWithCounts", mock.Anything).Return([]domain.CategoryWithCount{
		{Category: domain.Category{ID: 1, Name: "Drinks"}, ProductCount: 2},
		{Category: domain.Category{ID: 2, Name: "Snacks"}},
	}, nil)

	rec := doJSON(t, newCategoryRouter(svc), http.MethodGet, "/categories", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"product_count":2`)
	assert.Contains(t, rec.Body.String(), `"product_count":0`)
}

func TestHandleCreateCategory(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := &mockCategoryService{}
		svc.On("CreateCategory", mock.Anything, uint(1), domain.Category{Name: "Drinks"}).
			Return(domain.Category{ID: 4, Name: "Drinks"}, nil)

		rec := doJSON(t, newCategoryRouter(svc), http.MethodPost, "/categories", map[string]string{"name": "Drinks"})

		assert.Equal(t, http.StatusCreated, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, float64(4), body["id"])
		assert.Equal(t, float64(0), body["product_count"])
	})

	t.Run("duplicate name", func(t *testing.T) {
		svc := &mockCategoryService{}
		svc.On("CreateCategory", mock.Anything, uint(1), mock.Anything).
			Return(domain.Category{}, service.ErrDuplicateName)

		rec := doJSON(t, newCategoryRouter(svc), http.MethodPost, "/categories", map[string]string{"name": "Drinks"})

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("invalid image", func(t *testing.T) {
		svc := &mockCategoryService{}

		rec := doJSON(t, newCategoryRouter(svc), http.MethodPost, "/categories", map[string]string{"name": "Drinks", "image": "not a url"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "CreateCategory", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestHandleUpdateCategory(t *testing.T) {
	svc := &mockCategoryService{}
	svc.On("UpdateCategory", mock.Anything, uint(2), domain.Category{Name: "Beverages"}).
		Return(domain.Category{ID: 2, Name: "Beverages"}, nil)
	svc.On("GetCategoryWithCount", mock.Anything, uint(2)).
		Return(domain.CategoryWithCount{Category: domain.Category{ID: 2, Name: "Beverages"}, ProductCount: 5}, nil)

	rec := doJSON(t, newCategoryRouter(svc), http.MethodPut, "/categories/2", map[string]string{"name": "Beverages"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(5), decodeBody(t, rec)["product_count"])
}

func TestHandleDeleteCategory(t *testing.T) {
	svc := &mockCategoryService{}
	svc.On("DeleteCategory", mock.Anything, uint(2)).Return(nil)
	svc.On("DeleteCategory", mock.Anything, uint(3)).Return(service.ErrCategoryNotFound)
	r := newCategoryRouter(svc)

	rec := doJSON(t, r, http.MethodDelete, "/categories/2", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, r, http.MethodDelete, "/categories/3", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, r, http.MethodDelete, "/categories/0", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGetCategoryProducts(t *testing.T) {
	svc := &mockCategoryService{}
	svc.On("CategoryProducts", mock.Anything, uint(1)).Return(domain.CategoryProducts{
		CategoryWithCount: domain.CategoryWithCount{Category: domain.Category{ID: 1, Name: "Drinks"}},
	}, nil)

	rec := doJSON(t, newCategoryRouter(svc), http.MethodGet, "/categories/1/products", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []interface{}{}, decodeBody(t, rec)["products"])
}
