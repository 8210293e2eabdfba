package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/AkifKA/stock-app-api/internal/domain"
)

type SaleRepository interface {
	CreateSale(ctx context.Context, sale domain.Sale) (domain.Sale, error)
}

type SaleService struct {
	tx      Transactor
	catalog PostingCatalog
	ledger  StockLedger
	sales   SaleRepository
	events  StockEventPublisher
}

func NewSaleService(tx Transactor, catalog PostingCatalog, ledger StockLedger, sales SaleRepository, events StockEventPublisher) *SaleService {
	return &SaleService{
		tx:      tx,
		catalog: catalog,
		ledger:  ledger,
		sales:   sales,
		events:  events,
	}
}

// CreateSale posts a sale. A sale larger than the current stock is rejected
// with a *ValidationError before anything is written; otherwise the stock
// decrease and the sale record commit together.
func (s *SaleService) CreateSale(ctx context.Context, userID uint, input domain.SaleInput) (domain.Sale, error) {
	if input.Quantity <= 0 {
		return domain.Sale{}, ErrInvalidQuantity
	}

	var created domain.Sale
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := resolvePostingReferences(ctx, s.catalog, input.ProductID, input.BrandID, nil); err != nil {
			return err
		}

		stock, err := s.ledger.DecreaseStock(ctx, input.ProductID, input.Quantity)
		if err != nil {
			var insufficient *domain.InsufficientStockError
			if errors.As(err, &insufficient) {
				return &ValidationError{Err: insufficient}
			}

			return fmt.Errorf("s.ledger.DecreaseStock -> %w", err)
		}

		created, err = s.sales.CreateSale(ctx, domain.Sale{
			UserID:     &userID,
			BrandID:    input.BrandID,
			ProductID:  input.ProductID,
			Quantity:   input.Quantity,
			Price:      input.Price,
			StockAfter: stock,
		})
		if err != nil {
			return fmt.Errorf("s.sales.CreateSale -> %w", err)
		}

		return nil
	})
	if err != nil {
		return domain.Sale{}, err
	}

	publishStockEvent(ctx, s.events, domain.StockEvent{
		Kind:       domain.StockEventSale,
		RecordID:   created.ID,
		ProductID:  created.ProductID,
		Quantity:   created.Quantity,
		Delta:      -created.Quantity,
		StockAfter: created.StockAfter,
		UserID:     userID,
	})

	return created, nil
}
