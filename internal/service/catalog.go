package service

import (
	"context"
	"fmt"

	"github.com/AkifKA/stock-app-api/internal/domain"
)

type CatalogRepository interface {
	CreateCategory(ctx context.Context, category domain.Category) (domain.Category, error)
	FindCategoryByID(ctx context.Context, id uint) (domain.Category, error)
	UpdateCategory(ctx context.Context, category domain.Category) (domain.Category, error)
	DeleteCategory(ctx context.Context, id uint) error

	CreateBrand(ctx context.Context, brand domain.Brand) (domain.Brand, error)
	FindBrandByID(ctx context.Context, id uint) (domain.Brand, error)
	UpdateBrand(ctx context.Context, brand domain.Brand) (domain.Brand, error)
	DeleteBrand(ctx context.Context, id uint) error

	CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error)
	FindProductByID(ctx context.Context, id uint) (domain.Product, error)
	FindProducts(ctx context.Context, categoryID *uint) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, product domain.Product) (domain.Product, error)
	DeleteProduct(ctx context.Context, id uint) error

	CreateFirm(ctx context.Context, firm domain.Firm) (domain.Firm, error)
	FindFirmByID(ctx context.Context, id uint) (domain.Firm, error)
	FindFirms(ctx context.Context) ([]domain.Firm, error)
	UpdateFirm(ctx context.Context, firm domain.Firm) (domain.Firm, error)
	DeleteFirm(ctx context.Context, id uint) error
}

type CatalogService struct {
	repo CatalogRepository
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

func (s *CatalogService) CreateCategory(ctx context.Context, userID uint, category domain.Category) (domain.Category, error) {
	category.ID = 0
	category.UserID = &userID

	created, err := s.repo.CreateCategory(ctx, category)
	if err != nil {
		return domain.Category{}, fmt.Errorf("s.repo.CreateCategory -> %w", err)
	}

	return created, nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id uint, category domain.Category) (domain.Category, error) {
	category.ID = id

	updated, err := s.repo.UpdateCategory(ctx, category)
	if err != nil {
		return domain.Category{}, fmt.Errorf("s.repo.UpdateCategory -> %w", err)
	}

	return updated, nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id uint) error {
	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteCategory -> %w", err)
	}

	return nil
}

func (s *CatalogService) CreateBrand(ctx context.Context, userID uint, brand domain.Brand) (domain.Brand, error) {
	brand.ID = 0
	brand.UserID = &userID

	created, err := s.repo.CreateBrand(ctx, brand)
	if err != nil {
		return domain.Brand{}, fmt.Errorf("s.repo.CreateBrand -> %w", err)
	}

	return created, nil
}

func (s *CatalogService) GetBrand(ctx context.Context, id uint) (domain.Brand, error) {
	brand, err := s.repo.FindBrandByID(ctx, id)
	if err != nil {
		return domain.Brand{}, fmt.Errorf("s.repo.FindBrandByID -> %w", err)
	}

	return brand, nil
}

func (s *CatalogService) UpdateBrand(ctx context.Context, id uint, brand domain.Brand) (domain.Brand, error) {
	brand.ID = id

	updated, err := s.repo.UpdateBrand(ctx, brand)
	if err != nil {
		return domain.Brand{}, fmt.Errorf("s.repo.UpdateBrand -> %w", err)
	}

	return updated, nil
}

func (s *CatalogService) DeleteBrand(ctx context.Context, id uint) error {
	if err := s.repo.DeleteBrand(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteBrand -> %w", err)
	}

	return nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, userID uint, product domain.Product) (domain.Product, error) {
	if err := s.checkProductReferences(ctx, product); err != nil {
		return domain.Product{}, err
	}

	product.ID = 0
	product.UserID = &userID

	created, err := s.repo.CreateProduct(ctx, product)
	if err != nil {
		return domain.Product{}, fmt.Errorf("s.repo.CreateProduct -> %w", err)
	}

	return created, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (domain.Product, error) {
	product, err := s.repo.FindProductByID(ctx, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("s.repo.FindProductByID -> %w", err)
	}

	return product, nil
}

func (s *CatalogService) ListProducts(ctx context.Context, categoryID *uint) ([]domain.Product, error) {
	products, err := s.repo.FindProducts(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindProducts -> %w", err)
	}

	return products, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id uint, product domain.Product) (domain.Product, error) {
	if err := s.checkProductReferences(ctx, product); err != nil {
		return domain.Product{}, err
	}

	product.ID = id

	updated, err := s.repo.UpdateProduct(ctx, product)
	if err != nil {
		return domain.Product{}, fmt.Errorf("s.repo.UpdateProduct -> %w", err)
	}

	return updated, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uint) error {
	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteProduct -> %w", err)
	}

	return nil
}

func (s *CatalogService) CreateFirm(ctx context.Context, userID uint, firm domain.Firm) (domain.Firm, error) {
	firm.ID = 0
	firm.UserID = &userID

	created, err := s.repo.CreateFirm(ctx, firm)
	if err != nil {
		return domain.Firm{}, fmt.Errorf("s.repo.CreateFirm -> %w", err)
	}

	return created, nil
}

func (s *CatalogService) GetFirm(ctx context.Context, id uint) (domain.Firm, error) {
	firm, err := s.repo.FindFirmByID(ctx, id)
	if err != nil {
		return domain.Firm{}, fmt.Errorf("s.repo.FindFirmByID -> %w", err)
	}

	return firm, nil
}

func (s *CatalogService) ListFirms(ctx context.Context) ([]domain.Firm, error) {
	firms, err := s.repo.FindFirms(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindFirms -> %w", err)
	}

	return firms, nil
}

func (s *CatalogService) UpdateFirm(ctx context.Context, id uint, firm domain.Firm) (domain.Firm, error) {
	firm.ID = id

	updated, err := s.repo.UpdateFirm(ctx, firm)
	if err != nil {
		return domain.Firm{}, fmt.Errorf("s.repo.UpdateFirm -> %w", err)
	}

	return updated, nil
}

func (s *CatalogService) DeleteFirm(ctx context.Context, id uint) error {
	if err := s.repo.DeleteFirm(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteFirm -> %w", err)
	}

	return nil
}

func (s *CatalogService) checkProductReferences(ctx context.Context, product domain.Product) error {
	if _, err := s.repo.FindCategoryByID(ctx, product.CategoryID); err != nil {
		return fmt.Errorf("s.repo.FindCategoryByID -> %w", err)
	}

	if product.BrandID != nil {
		if _, err := s.repo.FindBrandByID(ctx, *product.BrandID); err != nil {
			return fmt.Errorf("s.repo.FindBrandByID -> %w", err)
		}
	}

	return nil
}
