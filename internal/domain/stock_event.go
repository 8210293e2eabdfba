package domain

import "time"

type StockEventKind string

const (
	StockEventPurchase StockEventKind = "purchase"
	StockEventSale     StockEventKind = "sale"
)

type StockEvent struct {
	EventID    string         `json:"event_id"`
	Kind       StockEventKind `json:"kind"`
	RecordID   uint           `json:"record_id"`
	ProductID  uint           `json:"product_id"`
	Quantity   int            `json:"quantity"`
	Delta      int            `json:"delta"`
	StockAfter int            `json:"stock_after"`
	UserID     uint           `json:"user_id"`
	OccurredAt time.Time      `json:"occurred_at"`
}
