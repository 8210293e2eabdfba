package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"

	"github.com/AkifKA/stock-app-api/internal/domain"
)

var (
	errNegativePrice = errors.New("must not be negative")
	errPriceTooLarge = errors.New("must be less than 1000000")

	maxPrice = decimal.NewFromInt(1_000_000)
)

// Quantity is checked by the stock ledger, so the requests only make sure the
// referenced records are present.
type PurchaseRequest struct {
	BrandID   uint             `json:"brand_id"`
	ProductID uint             `json:"product_id"`
	FirmID    *uint            `json:"firm_id"`
	Quantity  int              `json:"quantity"`
	Price     *decimal.Decimal `json:"price" swaggertype:"string"`
}

func (req *PurchaseRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.BrandID, validation.Required),
		validation.Field(&req.ProductID, validation.Required),
		validation.Field(&req.FirmID, validation.NilOrNotEmpty),
		validation.Field(&req.Price, validation.By(validPrice)),
	)
}

func (req *PurchaseRequest) ToInput() domain.PurchaseInput {
	return domain.PurchaseInput{
		BrandID:   req.BrandID,
		ProductID: req.ProductID,
		FirmID:    req.FirmID,
		Quantity:  req.Quantity,
		Price:     nullPrice(req.Price),
	}
}

type SaleRequest struct {
	BrandID   uint             `json:"brand_id"`
	ProductID uint             `json:"product_id"`
	Quantity  int              `json:"quantity"`
	Price     *decimal.Decimal `json:"price" swaggertype:"string"`
}

func (req *SaleRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.BrandID, validation.Required),
		validation.Field(&req.ProductID, validation.Required),
		validation.Field(&req.Price, validation.By(validPrice)),
	)
}

func (req *SaleRequest) ToInput() domain.SaleInput {
	return domain.SaleInput{
		BrandID:   req.BrandID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Price:     nullPrice(req.Price),
	}
}

func validPrice(value interface{}) error {
	price, ok := value.(*decimal.Decimal)
	if !ok || price == nil {
		return nil
	}
	if price.IsNegative() {
		return errNegativePrice
	}
	if price.GreaterThanOrEqual(maxPrice) {
		return errPriceTooLarge
	}

	return nil
}

func nullPrice(price *decimal.Decimal) decimal.NullDecimal {
	if price == nil {
		return decimal.NullDecimal{}
	}

	return decimal.NewNullDecimal(price.Round(2))
}
