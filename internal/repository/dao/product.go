package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Product struct {
	ID         uint     `gorm:"primaryKey"`
	UserID     *uint    `gorm:"index"`
	User       *User    `gorm:"constraint:OnDelete:SET NULL"`
	CategoryID uint     `gorm:"not null;index"`
	Category   Category `gorm:"constraint:OnDelete:CASCADE"`
	BrandID    *uint    `gorm:"index"`
	Brand      *Brand   `gorm:"constraint:OnDelete:SET NULL"`
	Name       string   `gorm:"size:128;unique;not null"`
	Stock      int      `gorm:"not null;default:0;check:chk_products_stock,stock >= 0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type ProductDAO struct {
	db *gorm.DB
}

func NewProductDAO(db *gorm.DB) *ProductDAO {
	return &ProductDAO{
		db: db,
	}
}

// Insert always starts the product at zero stock; only postings move it.
func (d *ProductDAO) Insert(ctx context.Context, product Product) (Product, error) {
	product.Stock = 0

	result := conn(ctx, d.db).Omit(clause.Associations).Create(&product)
	if result.Error != nil {
		return Product{}, translateErr(result.Error, nil)
	}

	return d.FindByID(ctx, product.ID)
}

func (d *ProductDAO) FindByID(ctx context.Context, id uint) (Product, error) {
	var product Product

	result := conn(ctx, d.db).Preload("Category").Preload("Brand").First(&product, id)
	if result.Error != nil {
		return Product{}, translateErr(result.Error, ErrProductNotFound)
	}

	return product, nil
}

// FindAll lists products ordered by id, optionally narrowed to one category.
func (d *ProductDAO) FindAll(ctx context.Context, categoryID *uint) ([]Product, error) {
	var products []Product

	query := conn(ctx, d.db).Preload("Category").Preload("Brand").Order("id")
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	if err := query.Find(&products).Error; err != nil {
		return nil, translateErr(err, nil)
	}

	return products, nil
}

// Update changes the catalog fields only. Stock is left to the ledger.
func (d *ProductDAO) Update(ctx context.Context, product Product) (Product, error) {
	result := conn(ctx, d.db).Model(&Product{ID: product.ID}).
		Omit(clause.Associations).
		Select("Name", "CategoryID", "BrandID").
		Updates(&product)
	if result.Error != nil {
		return Product{}, translateErr(result.Error, nil)
	}
	if result.RowsAffected == 0 {
		return Product{}, ErrProductNotFound
	}

	return d.FindByID(ctx, product.ID)
}

func (d *ProductDAO) Delete(ctx context.Context, id uint) error {
	result := conn(ctx, d.db).Delete(&Product{}, id)
	if result.Error != nil {
		return translateErr(result.Error, nil)
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}
