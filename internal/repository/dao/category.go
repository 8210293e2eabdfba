package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Category struct {
	ID        uint    `gorm:"primaryKey"`
	UserID    *uint   `gorm:"index"`
	User      *User   `gorm:"constraint:OnDelete:SET NULL"`
	Name      string  `gorm:"size:64;unique;not null"`
	Image     *string `gorm:"size:200"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CategoryDAO struct {
	db *gorm.DB
}

func NewCategoryDAO(db *gorm.DB) *CategoryDAO {
	return &CategoryDAO{
		db: db,
	}
}

func (d *CategoryDAO) Insert(ctx context.Context, category Category) (Category, error) {
	result := conn(ctx, d.db).Omit(clause.Associations).Create(&category)
	if result.Error != nil {
		return Category{}, translateErr(result.Error, nil)
	}

	return category, nil
}

func (d *CategoryDAO) FindByID(ctx context.Context, id uint) (Category, error) {
	var category Category

	result := conn(ctx, d.db).First(&category, id)
	if result.Error != nil {
		return Category{}, translateErr(result.Error, ErrCategoryNotFound)
	}

	return category, nil
}

func (d *CategoryDAO) Update(ctx context.Context, category Category) (Category, error) {
	result := conn(ctx, d.db).Model(&Category{ID: category.ID}).
		Select("Name", "Image").
		Updates(&category)
	if result.Error != nil {
		return Category{}, translateErr(result.Error, nil)
	}
	if result.RowsAffected == 0 {
		return Category{}, ErrCategoryNotFound
	}

	return d.FindByID(ctx, category.ID)
}

// Delete removes the category. Its products, and their purchases and sales,
// go with it through the ON DELETE CASCADE constraints.
func (d *CategoryDAO) Delete(ctx context.Context, id uint) error {
	result := conn(ctx, d.db).Delete(&Category{}, id)
	if result.Error != nil {
		return translateErr(result.Error, nil)
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}
