package event

import (
	"context"
	"errors"

	"github.com/AkifKA/stock-app-api/internal/domain"
)

type Publisher interface {
	PublishStockChanged(ctx context.Context, event domain.StockEvent) error
}

type NopPublisher struct{}

func (NopPublisher) PublishStockChanged(context.Context, domain.StockEvent) error {
	return nil
}

// Fanout hands every event to all publishers, even when some of them fail.
type Fanout []Publisher

func (f Fanout) PublishStockChanged(ctx context.Context, event domain.StockEvent) error {
	var errs []error
	for _, p := range f {
		if err := p.PublishStockChanged(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
