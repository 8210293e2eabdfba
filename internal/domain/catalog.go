package domain

import "time"

type Category struct {
	ID        uint      `json:"id"`
	UserID    *uint     `json:"user_id"`
	Name      string    `json:"name"`
	Image     *string   `json:"image"`
	CreatedAt time.Time `json:"created"`
	UpdatedAt time.Time `json:"updated"`
}

type Brand struct {
	ID        uint      `json:"id"`
	UserID    *uint     `json:"user_id"`
	Name      string    `json:"name"`
	Image     *string   `json:"image"`
	CreatedAt time.Time `json:"created"`
	UpdatedAt time.Time `json:"updated"`
}

// Product stock is owned by the ledger. Catalog writes never change it.
type Product struct {
	ID           uint      `json:"id"`
	UserID       *uint     `json:"user_id"`
	CategoryID   uint      `json:"category_id"`
	CategoryName string    `json:"category"`
	BrandID      *uint     `json:"brand_id"`
	BrandName    string    `json:"brand"`
	Name         string    `json:"name"`
	Stock        int       `json:"stock"`
	CreatedAt    time.Time `json:"created"`
	UpdatedAt    time.Time `json:"updated"`
}

type Firm struct {
	ID        uint      `json:"id"`
	UserID    *uint     `json:"user_id"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone"`
	Address   *string   `json:"address"`
	Image     *string   `json:"image"`
	CreatedAt time.Time `json:"created"`
	UpdatedAt time.Time `json:"updated"`
}
