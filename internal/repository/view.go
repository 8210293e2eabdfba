package repository

import (
	"context"
	"fmt"

	"github.com/AkifKA/stock-app-api/internal/domain"
	"github.com/AkifKA/stock-app-api/internal/repository/dao"
)

type ViewDAO interface {
	CategoriesWithProductCount(ctx context.Context, categoryID *uint) ([]dao.CategoryCount, error)
	BrandsWithProductCount(ctx context.Context) ([]dao.BrandCount, error)
	CategoryOfProduct(ctx context.Context, productID uint) ([]dao.Category, error)
	PostedQuantities(ctx context.Context, productID uint) (purchased, sold int64, err error)
}

type ViewRepository struct {
	dao ViewDAO
}

func NewViewRepository(dao ViewDAO) *ViewRepository {
	return &ViewRepository{
		dao: dao,
	}
}

func (r *ViewRepository) CategoriesWithProductCount(ctx context.Context) ([]domain.CategoryWithCount, error) {
	rows, err := r.dao.CategoriesWithProductCount(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("r.dao.CategoriesWithProductCount -> %w", err)
	}

	categories := make([]domain.CategoryWithCount, len(rows))
	for i, row := range rows {
		categories[i] = categoryCountToDomain(row)
	}

	return categories, nil
}

func (r *ViewRepository) CategoryWithProductCount(ctx context.Context, categoryID uint) (domain.CategoryWithCount, error) {
	rows, err := r.dao.CategoriesWithProductCount(ctx, &categoryID)
	if err != nil {
		return domain.CategoryWithCount{}, fmt.Errorf("r.dao.CategoriesWithProductCount -> %w", err)
	}
	if len(rows) == 0 {
		return domain.CategoryWithCount{}, ErrCategoryNotFound
	}

	return categoryCountToDomain(rows[0]), nil
}

func (r *ViewRepository) BrandsWithProductCount(ctx context.Context) ([]domain.BrandWithCount, error) {
	rows, err := r.dao.BrandsWithProductCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.BrandsWithProductCount -> %w", err)
	}

	brands := make([]domain.BrandWithCount, len(rows))
	for i, row := range rows {
		brands[i] = domain.BrandWithCount{
			Brand: domain.Brand{
				ID:        row.ID,
				UserID:    row.UserID,
				Name:      row.Name,
				Image:     row.Image,
				CreatedAt: row.CreatedAt,
				UpdatedAt: row.UpdatedAt,
			},
			ProductCount: row.ProductCount,
		}
	}

	return brands, nil
}

func (r *ViewRepository) CategoryOfProduct(ctx context.Context, productID uint) ([]domain.Category, error) {
	found, err := r.dao.CategoryOfProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.CategoryOfProduct -> %w", err)
	}

	categories := make([]domain.Category, len(found))
	for i, c := range found {
		categories[i] = categoryDaoToDomain(c)
	}

	return categories, nil
}

func (r *ViewRepository) PostedQuantities(ctx context.Context, productID uint) (int64, int64, error) {
	purchased, sold, err := r.dao.PostedQuantities(ctx, productID)
	if err != nil {
		return 0, 0, fmt.Errorf("r.dao.PostedQuantities -> %w", err)
	}

	return purchased, sold, nil
}

func categoryCountToDomain(row dao.CategoryCount) domain.CategoryWithCount {
	return domain.CategoryWithCount{
		Category: domain.Category{
			ID:        row.ID,
			UserID:    row.UserID,
			Name:      row.Name,
			Image:     row.Image,
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		},
		ProductCount: row.ProductCount,
	}
}
