package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type CategoryCount struct {
	ID           uint
	UserID       *uint
	Name         string
	Image        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	ProductCount int64
}

type BrandCount struct {
	ID           uint
	UserID       *uint
	Name         string
	Image        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	ProductCount int64
}

// ViewDAO holds the read-side aggregations. Nothing here is cached; every
// call goes to the tables.
type ViewDAO struct {
	db *gorm.DB
}

func NewViewDAO(db *gorm.DB) *ViewDAO {
	return &ViewDAO{
		db: db,
	}
}

func (d *ViewDAO) CategoriesWithProductCount(ctx context.Context, categoryID *uint) ([]CategoryCount, error) {
	var rows []CategoryCount

	query := conn(ctx, d.db).Model(&Category{}).
		Select("categories.id, categories.user_id, categories.name, categories.image, " +
			"categories.created_at, categories.updated_at, COUNT(products.id) AS product_count").
		Joins("LEFT JOIN products ON products.category_id = categories.id").
		Group("categories.id").
		Order("categories.id")
	if categoryID != nil {
		query = query.Where("categories.id = ?", *categoryID)
	}

	if err := query.Scan(&rows).Error; err != nil {
		return nil, translateErr(err, nil)
	}

	return rows, nil
}

func (d *ViewDAO) BrandsWithProductCount(ctx context.Context) ([]BrandCount, error) {
	var rows []BrandCount

	err := conn(ctx, d.db).Model(&Brand{}).
		Select("brands.id, brands.user_id, brands.name, brands.image, " +
			"brands.created_at, brands.updated_at, COUNT(products.id) AS product_count").
		Joins("LEFT JOIN products ON products.brand_id = brands.id").
		Group("brands.id").
		Order("brands.id").
		Scan(&rows).Error
	if err != nil {
		return nil, translateErr(err, nil)
	}

	return rows, nil
}

// CategoryOfProduct returns the category of the product as a list. The list
// is empty when the product is gone.
func (d *ViewDAO) CategoryOfProduct(ctx context.Context, productID uint) ([]Category, error) {
	categories := []Category{}

	err := conn(ctx, d.db).
		Select("categories.*").
		Joins("JOIN products ON products.category_id = categories.id").
		Where("products.id = ?", productID).
		Find(&categories).Error
	if err != nil {
		return nil, translateErr(err, nil)
	}

	return categories, nil
}

func (d *ViewDAO) PostedQuantities(ctx context.Context, productID uint) (purchased, sold int64, err error) {
	db := conn(ctx, d.db)

	err = db.Model(&Purchase{}).
		Select("COALESCE(SUM(quantity), 0)").
		Where("product_id = ?", productID).
		Scan(&purchased).Error
	if err != nil {
		return 0, 0, translateErr(err, nil)
	}

	err = db.Model(&Sale{}).
		Select("COALESCE(SUM(quantity), 0)").
		Where("product_id = ?", productID).
		Scan(&sold).Error
	if err != nil {
		return 0, 0, translateErr(err, nil)
	}

	return purchased, sold, nil
}
