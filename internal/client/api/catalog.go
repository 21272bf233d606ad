package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/adilbek-m/saudalink/internal/client/models"
)

// Categories fetches the category tree. Public read.
func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var out listResponse[models.Category]
	if err := c.do(ctx, c.http, http.MethodGet, "/categories/", nil, &out); err != nil {
		return nil, fmt.Errorf("categories fetch failed: %w", err)
	}
	return out.Results, nil
}

// Products lists catalog products matching the filter. Public read.
func (c *Client) Products(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	var out listResponse[models.Product]
	if err := c.do(ctx, c.http, http.MethodGet, "/products/"+encodeFilter(filter), nil, &out); err != nil {
		return nil, fmt.Errorf("products fetch failed: %w", err)
	}
	return out.Results, nil
}

// MyProducts lists the caller's own products. Always private, whatever the
// method — the supplier dashboard view.
func (c *Client) MyProducts(ctx context.Context) ([]models.Product, error) {
	var out listResponse[models.Product]
	if err := c.do(ctx, c.http, http.MethodGet, "/products/my/", nil, &out); err != nil {
		return nil, fmt.Errorf("own products fetch failed: %w", err)
	}
	return out.Results, nil
}

// CreateProduct publishes a new product listing.
func (c *Client) CreateProduct(ctx context.Context, p models.Product) (*models.Product, error) {
	var out models.Product
	if err := c.do(ctx, c.http, http.MethodPost, "/products/", p, &out); err != nil {
		return nil, fmt.Errorf("product create failed: %w", err)
	}
	return &out, nil
}

// Tenders lists open tenders. Public read.
func (c *Client) Tenders(ctx context.Context) ([]models.Tender, error) {
	var out listResponse[models.Tender]
	if err := c.do(ctx, c.http, http.MethodGet, "/tenders/", nil, &out); err != nil {
		return nil, fmt.Errorf("tenders fetch failed: %w", err)
	}
	return out.Results, nil
}

// MyTenders lists the caller's own tenders. Always private.
func (c *Client) MyTenders(ctx context.Context) ([]models.Tender, error) {
	var out listResponse[models.Tender]
	if err := c.do(ctx, c.http, http.MethodGet, "/tenders/my/", nil, &out); err != nil {
		return nil, fmt.Errorf("own tenders fetch failed: %w", err)
	}
	return out.Results, nil
}

// CreateTender publishes a new tender.
func (c *Client) CreateTender(ctx context.Context, t models.Tender) (*models.Tender, error) {
	var out models.Tender
	if err := c.do(ctx, c.http, http.MethodPost, "/tenders/", t, &out); err != nil {
		return nil, fmt.Errorf("tender create failed: %w", err)
	}
	return &out, nil
}

func encodeFilter(f models.ProductFilter) string {
	q := url.Values{}
	if f.CategoryID != 0 {
		q.Set("category", strconv.FormatInt(f.CategoryID, 10))
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.Page > 1 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}
