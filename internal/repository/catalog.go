package repository

import (
	"context"
	"fmt"

	"github.com/AkifKA/stock-app-api/internal/domain"
	"github.com/AkifKA/stock-app-api/internal/repository/dao"
)

var (
	ErrCategoryNotFound  = dao.ErrCategoryNotFound
	ErrBrandNotFound     = dao.ErrBrandNotFound
	ErrProductNotFound   = dao.ErrProductNotFound
	ErrFirmNotFound      = dao.ErrFirmNotFound
	ErrReferenceNotFound = dao.ErrReferenceNotFound
	ErrDuplicateName     = dao.ErrDuplicateName
)

type CategoryDAO interface {
	Insert(ctx context.Context, category dao.Category) (dao.Category, error)
	FindByID(ctx context.Context, id uint) (dao.Category, error)
	Update(ctx context.Context, category dao.Category) (dao.Category, error)
	Delete(ctx context.Context, id uint) error
}

type BrandDAO interface {
	Insert(ctx context.Context, brand dao.Brand) (dao.Brand, error)
	FindByID(ctx context.Context, id uint) (dao.Brand, error)
	Update(ctx context.Context, brand dao.Brand) (dao.Brand, error)
	Delete(ctx context.Context, id uint) error
}

type ProductDAO interface {
	Insert(ctx context.Context, product dao.Product) (dao.Product, error)
	FindByID(ctx context.Context, id uint) (dao.Product, error)
	FindAll(ctx context.Context, categoryID *uint) ([]dao.Product, error)
	Update(ctx context.Context, product dao.Product) (dao.Product, error)
	Delete(ctx context.Context, id uint) error
}

type FirmDAO interface {
	Insert(ctx context.Context, firm dao.Firm) (dao.Firm, error)
	FindByID(ctx context.Context, id uint) (dao.Firm, error)
	FindAll(ctx context.Context) ([]dao.Firm, error)
	Update(ctx context.Context, firm dao.Firm) (dao.Firm, error)
	Delete(ctx context.Context, id uint) error
}

// CatalogRepository is the catalog store: categories, brands, products and
// firms. It carries no business rules beyond what the tables enforce.
type CatalogRepository struct {
	categories CategoryDAO
	brands     BrandDAO
	products   ProductDAO
	firms      FirmDAO
}

func NewCatalogRepository(categories CategoryDAO, brands BrandDAO, products ProductDAO, firms FirmDAO) *CatalogRepository {
	return &CatalogRepository{
		categories: categories,
		brands:     brands,
		products:   products,
		firms:      firms,
	}
}

func (r *CatalogRepository) CreateCategory(ctx context.Context, category domain.Category) (domain.Category, error) {
	created, err := r.categories.Insert(ctx, categoryDomainToDao(category))
	if err != nil {
		return domain.Category{}, fmt.Errorf("r.categories.Insert -> %w", err)
	}

	return categoryDaoToDomain(created), nil
}

func (r *CatalogRepository) FindCategoryByID(ctx context.Context, id uint) (domain.Category, error) {
	found, err := r.categories.FindByID(ctx, id)
	if err != nil {
		return domain.Category{}, fmt.Errorf("r.categories.FindByID -> %w", err)
	}

	return categoryDaoToDomain(found), nil
}

func (r *CatalogRepository) UpdateCategory(ctx context.Context, category domain.Category) (domain.Category, error) {
	updated, err := r.categories.Update(ctx, categoryDomainToDao(category))
	if err != nil {
		return domain.Category{}, fmt.Errorf("r.categories.Update -> %w", err)
	}

	return categoryDaoToDomain(updated), nil
}

func (r *CatalogRepository) DeleteCategory(ctx context.Context, id uint) error {
	if err := r.categories.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.categories.Delete -> %w", err)
	}

	return nil
}

func (r *CatalogRepository) CreateBrand(ctx context.Context, brand domain.Brand) (domain.Brand, error) {
	created, err := r.brands.Insert(ctx, brandDomainToDao(brand))
	if err != nil {
		return domain.Brand{}, fmt.Errorf("r.brands.Insert -> %w", err)
	}

	return brandDaoToDomain(created), nil
}

func (r *CatalogRepository) FindBrandByID(ctx context.Context, id uint) (domain.Brand, error) {
	found, err := r.brands.FindByID(ctx, id)
	if err != nil {
		return domain.Brand{}, fmt.Errorf("r.brands.FindByID -> %w", err)
	}

	return brandDaoToDomain(found), nil
}

func (r *CatalogRepository) UpdateBrand(ctx context.Context, brand domain.Brand) (domain.Brand, error) {
	updated, err := r.brands.Update(ctx, brandDomainToDao(brand))
	if err != nil {
		return domain.Brand{}, fmt.Errorf("r.brands.Update -> %w", err)
	}

	return brandDaoToDomain(updated), nil
}

func (r *CatalogRepository) DeleteBrand(ctx context.Context, id uint) error {
	if err := r.brands.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.brands.Delete -> %w", err)
	}

	return nil
}

func (r *CatalogRepository) CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	created, err := r.products.Insert(ctx, productDomainToDao(product))
	if err != nil {
		return domain.Product{}, fmt.Errorf("r.products.Insert -> %w", err)
	}

	return productDaoToDomain(created), nil
}

func (r *CatalogRepository) FindProductByID(ctx context.Context, id uint) (domain.Product, error) {
	found, err := r.products.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("r.products.FindByID -> %w", err)
	}

	return productDaoToDomain(found), nil
}

func (r *CatalogRepository) FindProducts(ctx context.Context, categoryID *uint) ([]domain.Product, error) {
	found, err := r.products.FindAll(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("r.products.FindAll -> %w", err)
	}

	products := make([]domain.Product, len(found))
	for i, p := range found {
		products[i] = productDaoToDomain(p)
	}

	return products, nil
}

func (r *CatalogRepository) UpdateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	updated, err := r.products.Update(ctx, productDomainToDao(product))
	if err != nil {
		return domain.Product{}, fmt.Errorf("r.products.Update -> %w", err)
	}

	return productDaoToDomain(updated), nil
}

func (r *CatalogRepository) DeleteProduct(ctx context.Context, id uint) error {
	if err := r.products.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.products.Delete -> %w", err)
	}

	return nil
}

func (r *CatalogRepository) CreateFirm(ctx context.Context, firm domain.Firm) (domain.Firm, error) {
	created, err := r.firms.Insert(ctx, firmDomainToDao(firm))
	if err != nil {
		return domain.Firm{}, fmt.Errorf("r.firms.Insert -> %w", err)
	}

	return firmDaoToDomain(created), nil
}

func (r *CatalogRepository) FindFirmByID(ctx context.Context, id uint) (domain.Firm, error) {
	found, err := r.firms.FindByID(ctx, id)
	if err != nil {
		return domain.Firm{}, fmt.Errorf("r.firms.FindByID -> %w", err)
	}

	return firmDaoToDomain(found), nil
}

func (r *CatalogRepository) FindFirms(ctx context.Context) ([]domain.Firm, error) {
	found, err := r.firms.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.firms.FindAll -> %w", err)
	}

	firms := make([]domain.Firm, len(found))
	for i, f := range found {
		firms[i] = firmDaoToDomain(f)
	}

	return firms, nil
}

func (r *CatalogRepository) UpdateFirm(ctx context.Context, firm domain.Firm) (domain.Firm, error) {
	updated, err := r.firms.Update(ctx, firmDomainToDao(firm))
	if err != nil {
		return domain.Firm{}, fmt.Errorf("r.firms.Update -> %w", err)
	}

	return firmDaoToDomain(updated), nil
}

func (r *CatalogRepository) DeleteFirm(ctx context.Context, id uint) error {
	if err := r.firms.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.firms.Delete -> %w", err)
	}

	return nil
}

func categoryDomainToDao(c domain.Category) dao.Category {
	return dao.Category{
		ID:     c.ID,
		UserID: c.UserID,
		Name:   c.Name,
		Image:  c.Image,
	}
}

func categoryDaoToDomain(c dao.Category) domain.Category {
	return domain.Category{
		ID:        c.ID,
		UserID:    c.UserID,
		Name:      c.Name,
		Image:     c.Image,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func brandDomainToDao(b domain.Brand) dao.Brand {
	return dao.Brand{
		ID:     b.ID,
		UserID: b.UserID,
		Name:   b.Name,
		Image:  b.Image,
	}
}

func brandDaoToDomain(b dao.Brand) domain.Brand {
	return domain.Brand{
		ID:        b.ID,
		UserID:    b.UserID,
		Name:      b.Name,
		Image:     b.Image,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func productDomainToDao(p domain.Product) dao.Product {
	return dao.Product{
		ID:         p.ID,
		UserID:     p.UserID,
		CategoryID: p.CategoryID,
		BrandID:    p.BrandID,
		Name:       p.Name,
	}
}

func productDaoToDomain(p dao.Product) domain.Product {
	product := domain.Product{
		ID:           p.ID,
		UserID:       p.UserID,
		CategoryID:   p.CategoryID,
		CategoryName: p.Category.Name,
		BrandID:      p.BrandID,
		Name:         p.Name,
		Stock:        p.Stock,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}

	if p.Brand != nil {
		product.BrandName = p.Brand.Name
	}

	return product
}

func firmDomainToDao(f domain.Firm) dao.Firm {
	return dao.Firm{
		ID:      f.ID,
		UserID:  f.UserID,
		Name:    f.Name,
		Phone:   f.Phone,
		Address: f.Address,
		Image:   f.Image,
	}
}

func firmDaoToDomain(f dao.Firm) domain.Firm {
	return domain.Firm{
		ID:        f.ID,
		UserID:    f.UserID,
		Name:      f.Name,
		Phone:     f.Phone,
		Address:   f.Address,
		Image:     f.Image,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}
