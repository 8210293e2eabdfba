package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Firm struct {
	ID        uint    `gorm:"primaryKey"`
	UserID    *uint   `gorm:"index"`
	User      *User   `gorm:"constraint:OnDelete:SET NULL"`
	Name      string  `gorm:"size:64;unique;not null"`
	Phone     *string `gorm:"size:16"`
	Address   *string `gorm:"type:text"`
	Image     *string `gorm:"size:200"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type FirmDAO struct {
	db *gorm.DB
}

func NewFirmDAO(db *gorm.DB) *FirmDAO {
	return &FirmDAO{
		db: db,
	}
}

func (d *FirmDAO) Insert(ctx context.Context, firm Firm) (Firm, error) {
	result := conn(ctx, d.db).Omit(clause.Associations).Create(&firm)
	if result.Error != nil {
		return Firm{}, translateErr(result.Error, nil)
	}

	return firm, nil
}

func (d *FirmDAO) FindByID(ctx context.Context, id uint) (Firm, error) {
	var firm Firm

	result := conn(ctx, d.db).First(&firm, id)
	if result.Error != nil {
		return Firm{}, translateErr(result.Error, ErrFirmNotFound)
	}

	return firm, nil
}

func (d *FirmDAO) FindAll(ctx context.Context) ([]Firm, error) {
	var firms []Firm

	result := conn(ctx, d.db).Order("id").Find(&firms)
	if result.Error != nil {
		return nil, translateErr(result.Error, nil)
	}

	return firms, nil
}

func (d *FirmDAO) Update(ctx context.Context, firm Firm) (Firm, error) {
	result := conn(ctx, d.db).Model(&Firm{ID: firm.ID}).
		Select("Name", "Phone", "Address", "Image").
		Updates(&firm)
	if result.Error != nil {
		return Firm{}, translateErr(result.Error, nil)
	}
	if result.RowsAffected == 0 {
		return Firm{}, ErrFirmNotFound
	}

	return d.FindByID(ctx, firm.ID)
}

func (d *FirmDAO) Delete(ctx context.Context, id uint) error {
	result := conn(ctx, d.db).Delete(&Firm{}, id)
	if result.Error != nil {
		return translateErr(result.Error, nil)
	}
	if result.RowsAffected == 0 {
		return ErrFirmNotFound
	}

	return nil
}
