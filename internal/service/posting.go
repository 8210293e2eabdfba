package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AkifKA/stock-app-api/internal/domain"
)

// Transactor makes every repository call issued inside fn part of one
// atomic unit.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// StockLedger is the single writer of product stock.
type StockLedger interface {
	IncreaseStock(ctx context.Context, productID uint, qty int) (int, error)
	DecreaseStock(ctx context.Context, productID uint, qty int) (int, error)
}

type ProductFinder interface {
	FindProductByID(ctx context.Context, id uint) (domain.Product, error)
}

type BrandFinder interface {
	FindBrandByID(ctx context.Context, id uint) (domain.Brand, error)
}

type FirmFinder interface {
	FindFirmByID(ctx context.Context, id uint) (domain.Firm, error)
}

// PostingCatalog resolves the records a purchase or sale points at.
type PostingCatalog interface {
	ProductFinder
	BrandFinder
	FirmFinder
}

type StockEventPublisher interface {
	PublishStockChanged(ctx context.Context, event domain.StockEvent) error
}

func resolvePostingReferences(ctx context.Context, catalog PostingCatalog, productID, brandID uint, firmID *uint) error {
	if _, err := catalog.FindProductByID(ctx, productID); err != nil {
		return fmt.Errorf("catalog.FindProductByID -> %w", err)
	}

	if _, err := catalog.FindBrandByID(ctx, brandID); err != nil {
		return fmt.Errorf("catalog.FindBrandByID -> %w", err)
	}

	if firmID != nil {
		if _, err := catalog.FindFirmByID(ctx, *firmID); err != nil {
			return fmt.Errorf("catalog.FindFirmByID -> %w", err)
		}
	}

	return nil
}

// publishStockEvent runs after the posting committed. A failed publish is
// logged and does not affect the posting.
func publishStockEvent(ctx context.Context, publisher StockEventPublisher, event domain.StockEvent) {
	if publisher == nil {
		return
	}

	event.EventID = uuid.NewString()
	event.OccurredAt = time.Now().UTC()

	if err := publisher.PublishStockChanged(ctx, event); err != nil {
		zap.L().Warn("failed to publish stock event",
			zap.String("event_id", event.EventID),
			zap.String("kind", string(event.Kind)),
			zap.Uint("product_id", event.ProductID),
			zap.Error(err),
		)
	}
}
