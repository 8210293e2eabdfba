package service

import (
	"context"
	"fmt"

	"github.com/AkifKA/stock-app-api/internal/domain"
)

type PurchaseRepository interface {
	CreatePurchase(ctx context.Context, purchase domain.Purchase) (domain.Purchase, error)
}

type PurchaseService struct {
	tx        Transactor
	catalog   PostingCatalog
	ledger    StockLedger
	purchases PurchaseRepository
	events    StockEventPublisher
}

func NewPurchaseService(tx Transactor, catalog PostingCatalog, ledger StockLedger, purchases PurchaseRepository, events StockEventPublisher) *PurchaseService {
	return &PurchaseService{
		tx:        tx,
		catalog:   catalog,
		ledger:    ledger,
		purchases: purchases,
		events:    events,
	}
}

// CreatePurchase posts a purchase: the stock increase and the purchase record
// are written in one transaction. A purchase of a positive quantity against an
// existing product always succeeds.
func (s *PurchaseService) CreatePurchase(ctx context.Context, userID uint, input domain.PurchaseInput) (domain.Purchase, error) {
	if input.Quantity <= 0 {
		return domain.Purchase{}, ErrInvalidQuantity
	}

	var created domain.Purchase
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := resolvePostingReferences(ctx, s.catalog, input.ProductID, input.BrandID, input.FirmID); err != nil {
			return err
		}

		stock, err := s.ledger.IncreaseStock(ctx, input.ProductID, input.Quantity)
		if err != nil {
			return fmt.Errorf("s.ledger.IncreaseStock -> %w", err)
		}

		created, err = s.purchases.CreatePurchase(ctx, domain.Purchase{
			UserID:     &userID,
			BrandID:    input.BrandID,
			ProductID:  input.ProductID,
			FirmID:     input.FirmID,
			Quantity:   input.Quantity,
			Price:      input.Price,
			StockAfter: stock,
		})
		if err != nil {
			return fmt.Errorf("s.purchases.CreatePurchase -> %w", err)
		}

		return nil
	})
	if err != nil {
		return domain.Purchase{}, err
	}

	publishStockEvent(ctx, s.events, domain.StockEvent{
		Kind:       domain.StockEventPurchase,
		RecordID:   created.ID,
		ProductID:  created.ProductID,
		Quantity:   created.Quantity,
		Delta:      created.Quantity,
		StockAfter: created.StockAfter,
		UserID:     userID,
	})

	return created, nil
}
