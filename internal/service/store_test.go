package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/AkifKA/stock-app-api/internal/domain"
	"github.com/AkifKA/stock-app-api/internal/repository"
)

// memStore is an in-memory stand-in for the repositories. WithinTransaction
// holds mu for the whole callback and restores a snapshot when it fails; the
// other methods expect to run inside it or from a single goroutine.
type memStore struct {
	mu sync.Mutex

	nextID     uint
	categories map[uint]domain.Category
	brands     map[uint]domain.Brand
	products   map[uint]domain.Product
	firms      map[uint]domain.Firm
	purchases  []domain.Purchase
	sales      []domain.Sale

	failPurchaseInsert error
	failSaleInsert     error
	categoryLookups    int
}

func newMemStore() *memStore {
	return &memStore{
		categories: make(map[uint]domain.Category),
		brands:     make(map[uint]domain.Brand),
		products:   make(map[uint]domain.Product),
		firms:      make(map[uint]domain.Firm),
	}
}

func (s *memStore) id() uint {
	s.nextID++
	return s.nextID
}

func (s *memStore) addCategory(name string) domain.Category {
	c := domain.Category{ID: s.id(), Name: name}
	s.categories[c.ID] = c
	return c
}

func (s *memStore) addBrand(name string) domain.Brand {
	b := domain.Brand{ID: s.id(), Name: name}
	s.brands[b.ID] = b
	return b
}

func (s *memStore) addFirm(name string) domain.Firm {
	f := domain.Firm{ID: s.id(), Name: name}
	s.firms[f.ID] = f
	return f
}

func (s *memStore) addProduct(name string, categoryID uint, brandID *uint, stock int) domain.Product {
	p := domain.Product{
		ID:           s.id(),
		Name:         name,
		CategoryID:   categoryID,
		CategoryName: s.categories[categoryID].Name,
		BrandID:      brandID,
		Stock:        stock,
	}
	if brandID != nil {
		p.BrandName = s.brands[*brandID].Name
	}
	s.products[p.ID] = p
	return p
}

func (s *memStore) stock(productID uint) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.products[productID].Stock
}

func (s *memStore) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := make(map[uint]domain.Product, len(s.products))
	for k, v := range s.products {
		products[k] = v
	}
	purchases, sales, nextID := len(s.purchases), len(s.sales), s.nextID

	if err := fn(ctx); err != nil {
		s.products = products
		s.purchases = s.purchases[:purchases]
		s.sales = s.sales[:sales]
		s.nextID = nextID
		return err
	}

	return nil
}

func (s *memStore) FindProductByID(_ context.Context, id uint) (domain.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return domain.Product{}, repository.ErrProductNotFound
	}
	return p, nil
}

func (s *memStore) FindProducts(_ context.Context, categoryID *uint) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range s.products {
		if categoryID == nil || p.CategoryID == *categoryID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memStore) FindBrandByID(_ context.Context, id uint) (domain.Brand, error) {
	b, ok := s.brands[id]
	if !ok {
		return domain.Brand{}, repository.ErrBrandNotFound
	}
	return b, nil
}

func (s *memStore) FindFirmByID(_ context.Context, id uint) (domain.Firm, error) {
	f, ok := s.firms[id]
	if !ok {
		return domain.Firm{}, repository.ErrFirmNotFound
	}
	return f, nil
}

func (s *memStore) IncreaseStock(_ context.Context, productID uint, qty int) (int, error) {
	if qty <= 0 {
		return 0, domain.ErrInvalidQuantity
	}
	p, ok := s.products[productID]
	if !ok {
		return 0, repository.ErrProductNotFound
	}
	p.Stock += qty
	s.products[productID] = p
	return p.Stock, nil
}

func (s *memStore) DecreaseStock(_ context.Context, productID uint, qty int) (int, error) {
	if qty <= 0 {
		return 0, domain.ErrInvalidQuantity
	}
	p, ok := s.products[productID]
	if !ok {
		return 0, repository.ErrProductNotFound
	}
	if qty > p.Stock {
		return 0, fmt.Errorf("r.dao.Decrease -> %w", &domain.InsufficientStockError{ProductID: productID, Current: p.Stock})
	}
	p.Stock -= qty
	s.products[productID] = p
	return p.Stock, nil
}

func (s *memStore) CreatePurchase(_ context.Context, purchase domain.Purchase) (domain.Purchase, error) {
	if s.failPurchaseInsert != nil {
		return domain.Purchase{}, s.failPurchaseInsert
	}
	purchase.ID = s.id()
	s.purchases = append(s.purchases, purchase)
	return purchase, nil
}

func (s *memStore) CreateSale(_ context.Context, sale domain.Sale) (domain.Sale, error) {
	if s.failSaleInsert != nil {
		return domain.Sale{}, s.failSaleInsert
	}
	sale.ID = s.id()
	s.sales = append(s.sales, sale)
	return sale, nil
}

func (s *memStore) FindPurchaseByID(_ context.Context, id uint) (domain.Purchase, error) {
	for _, p := range s.purchases {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Purchase{}, repository.ErrPurchaseNotFound
}

func (s *memStore) FindPurchases(context.Context) ([]domain.Purchase, error) {
	return append([]domain.Purchase(nil), s.purchases...), nil
}

func (s *memStore) FindSaleByID(_ context.Context, id uint) (domain.Sale, error) {
	for _, sale := range s.sales {
		if sale.ID == id {
			return sale, nil
		}
	}
	return domain.Sale{}, repository.ErrSaleNotFound
}

func (s *memStore) FindSales(context.Context) ([]domain.Sale, error) {
	return append([]domain.Sale(nil), s.sales...), nil
}

func (s *memStore) CategoriesWithProductCount(context.Context) ([]domain.CategoryWithCount, error) {
	var out []domain.CategoryWithCount
	for _, c := range s.categories {
		out = append(out, s.countCategory(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memStore) CategoryWithProductCount(_ context.Context, id uint) (domain.CategoryWithCount, error) {
	c, ok := s.categories[id]
	if !ok {
		return domain.CategoryWithCount{}, repository.ErrCategoryNotFound
	}
	return s.countCategory(c), nil
}

func (s *memStore) countCategory(c domain.Category) domain.CategoryWithCount {
	var n int64
	for _, p := range s.products {
		if p.CategoryID == c.ID {
			n++
		}
	}
	return domain.CategoryWithCount{Category: c, ProductCount: n}
}

func (s *memStore) BrandsWithProductCount(context.Context) ([]domain.BrandWithCount, error) {
	var out []domain.BrandWithCount
	for _, b := range s.brands {
		var n int64
		for _, p := range s.products {
			if p.BrandID != nil && *p.BrandID == b.ID {
				n++
			}
		}
		out = append(out, domain.BrandWithCount{Brand: b, ProductCount: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memStore) CategoryOfProduct(_ context.Context, productID uint) ([]domain.Category, error) {
	s.categoryLookups++
	p, ok := s.products[productID]
	if !ok {
		return []domain.Category{}, nil
	}
	c, ok := s.categories[p.CategoryID]
	if !ok {
		return []domain.Category{}, nil
	}
	return []domain.Category{c}, nil
}

func (s *memStore) PostedQuantities(_ context.Context, productID uint) (int64, int64, error) {
	var purchased, sold int64
	for _, p := range s.purchases {
		if p.ProductID == productID {
			purchased += int64(p.Quantity)
		}
	}
	for _, sale := range s.sales {
		if sale.ProductID == productID {
			sold += int64(sale.Quantity)
		}
	}
	return purchased, sold, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.StockEvent
	err    error
}

func (p *recordingPublisher) PublishStockChanged(_ context.Context, event domain.StockEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) published() []domain.StockEvent {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]domain.StockEvent(nil), p.events...)
}
