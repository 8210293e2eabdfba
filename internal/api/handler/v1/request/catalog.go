package request

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/AkifKA/stock-app-api/internal/domain"
)

var phoneExp = regexp.MustCompile(`^\+?[0-9 ()-]{6,20}$`)

type CategoryRequest struct {
	Name  string  `json:"name"`
	Image *string `json:"image"`
}

func (req *CategoryRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 64)),
		validation.Field(&req.Image, is.RequestURL),
	)
}

func (req *CategoryRequest) ToDomain() domain.Category {
	return domain.Category{
		Name:  req.Name,
		Image: req.Image,
	}
}

type BrandRequest struct {
	Name  string  `json:"name"`
	Image *string `json:"image"`
}

func (req *BrandRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 64)),
		validation.Field(&req.Image, is.RequestURL),
	)
}

func (req *BrandRequest) ToDomain() domain.Brand {
	return domain.Brand{
		Name:  req.Name,
		Image: req.Image,
	}
}

type ProductRequest struct {
	Name       string `json:"name"`
	CategoryID uint   `json:"category_id"`
	BrandID    *uint  `json:"brand_id"`
}

func (req *ProductRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 128)),
		validation.Field(&req.CategoryID, validation.Required),
		validation.Field(&req.BrandID, validation.NilOrNotEmpty),
	)
}

func (req *ProductRequest) ToDomain() domain.Product {
	return domain.Product{
		Name:       req.Name,
		CategoryID: req.CategoryID,
		BrandID:    req.BrandID,
	}
}

type FirmRequest struct {
	Name    string  `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Image   *string `json:"image"`
}

func (req *FirmRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 64)),
		validation.Field(&req.Phone, validation.Match(phoneExp)),
		validation.Field(&req.Address, validation.Length(0, 255)),
		validation.Field(&req.Image, is.RequestURL),
	)
}

func (req *FirmRequest) ToDomain() domain.Firm {
	return domain.Firm{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
		Image:   req.Image,
	}
}
