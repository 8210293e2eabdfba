package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrDuplicateName   = errors.New("name already exists")
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	ErrStorageFailure  = errors.New("storage failure")
)

// InsufficientStockError is returned by the stock ledger when a decrease asks
// for more than the product holds. Current is the stock observed under the row
// lock, before any write.
type InsufficientStockError struct {
	ProductID uint
	Current   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Dont have enough stock. Current stock is %d", e.Current)
}
