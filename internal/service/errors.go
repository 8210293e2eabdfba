package service

import (
	"github.com/AkifKA/stock-app-api/internal/domain"
	"github.com/AkifKA/stock-app-api/internal/repository"
)

var (
	ErrNotFound        = domain.ErrNotFound
	ErrDuplicateName   = repository.ErrDuplicateName
	ErrInvalidQuantity = domain.ErrInvalidQuantity
	ErrStorageFailure  = domain.ErrStorageFailure

	ErrCategoryNotFound = repository.ErrCategoryNotFound
	ErrBrandNotFound    = repository.ErrBrandNotFound
	ErrProductNotFound  = repository.ErrProductNotFound
	ErrFirmNotFound     = repository.ErrFirmNotFound
	ErrPurchaseNotFound = repository.ErrPurchaseNotFound
	ErrSaleNotFound     = repository.ErrSaleNotFound
)

// ValidationError is a business rule rejection that the caller should show to
// the user as is. It unwraps to the underlying cause, e.g.
// *domain.InsufficientStockError.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
