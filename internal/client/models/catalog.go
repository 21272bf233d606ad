// Package models defines marketplace domain types shared by the client packages.
package models

import "time"

// Category is a product/tender category node.
type Category struct {
	ID       int64      `json:"id"`
	Name     string     `json:"name"`
	Slug     string     `json:"slug"`
	ParentID *int64     `json:"parent,omitempty"`
	Children []Category `json:"children,omitempty"`
}

// Product is a catalog listing published by a supplier company.
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Currency    Currency  `json:"currency"`
	Unit        string    `json:"unit"`
	MinOrder    int64     `json:"min_order"`
	CategoryID  int64     `json:"category"`
	CompanyID   int64     `json:"company"`
	CompanyName string    `json:"company_name"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// TenderStatus classifies a tender's lifecycle state.
type TenderStatus string

const (
	TenderOpen   TenderStatus = "open"
	TenderClosed TenderStatus = "closed"
	TenderDraft  TenderStatus = "draft"
)

// Tender is a purchase request published by a buyer company.
type Tender struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Budget      float64      `json:"budget"`
	Currency    Currency     `json:"currency"`
	CategoryID  int64        `json:"category"`
	CompanyID   int64        `json:"company"`
	CompanyName string       `json:"company_name"`
	Status      TenderStatus `json:"status"`
	Deadline    time.Time    `json:"deadline"`
	CreatedAt   time.Time    `json:"created_at"`
}

// ProductFilter narrows product listings. Zero values mean "no filter".
type ProductFilter struct {
	CategoryID int64
	Search     string
	Page       int
}
