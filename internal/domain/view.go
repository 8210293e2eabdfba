package domain

type CategoryWithCount struct {
	Category
	ProductCount int64
}

type BrandWithCount struct {
	Brand
	ProductCount int64
}

// Category is empty when the product behind the record no longer exists.
type PurchaseWithCategory struct {
	Purchase
	Category []Category
}

type SaleWithCategory struct {
	Sale
	Category []Category
}

type CategoryProducts struct {
	CategoryWithCount
	Products []Product
}

// ProductLedger compares the running stock counter with the posting history.
type ProductLedger struct {
	ProductID     uint
	Stock         int
	PurchasedQty  int64
	SoldQty       int64
	ExpectedStock int64
	Consistent    bool
}
