package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Brand struct {
	ID        uint    `gorm:"primaryKey"`
	UserID    *uint   `gorm:"index"`
	User      *User   `gorm:"constraint:OnDelete:SET NULL"`
	Name      string  `gorm:"size:64;unique;not null"`
	Image     *string `gorm:"size:200"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type BrandDAO struct {
	db *gorm.DB
}

func NewBrandDAO(db *gorm.DB) *BrandDAO {
	return &BrandDAO{
		db: db,
	}
}

func (d *BrandDAO) Insert(ctx context.Context, brand Brand) (Brand, error) {
	result := conn(ctx, d.db).Omit(clause.Associations).Create(&brand)
	if result.Error != nil {
		return Brand{}, translateErr(result.Error, nil)
	}

	return brand, nil
}

func (d *BrandDAO) FindByID(ctx context.Context, id uint) (Brand, error) {
	var brand Brand

	result := conn(ctx, d.db).First(&brand, id)
	if result.Error != nil {
		return Brand{}, translateErr(result.Error, ErrBrandNotFound)
	}

	return brand, nil
}

func (d *BrandDAO) Update(ctx context.Context, brand Brand) (Brand, error) {
	result := conn(ctx, d.db).Model(&Brand{ID: brand.ID}).
		Select("Name", "Image").
		Updates(&brand)
	if result.Error != nil {
		return Brand{}, translateErr(result.Error, nil)
	}
	if result.RowsAffected == 0 {
		return Brand{}, ErrBrandNotFound
	}

	return d.FindByID(ctx, brand.ID)
}

func (d *BrandDAO) Delete(ctx context.Context, id uint) error {
	result := conn(ctx, d.db).Delete(&Brand{}, id)
	if result.Error != nil {
		return translateErr(result.Error, nil)
	}
	if result.RowsAffected == 0 {
		return ErrBrandNotFound
	}

	return nil
}
