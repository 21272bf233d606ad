package services

import (
	"context"

	"github.com/adilbek-m/saudalink/internal/client/models"
)

// CatalogAPI is the slice of the API client the catalog service depends on.
type CatalogAPI interface {
	Categories(ctx context.Context) ([]models.Category, error)
	Products(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	MyProducts(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, p models.Product) (*models.Product, error)
	Tenders(ctx context.Context) ([]models.Tender, error)
	MyTenders(ctx context.Context) ([]models.Tender, error)
	CreateTender(ctx context.Context, t models.Tender) (*models.Tender, error)
}

// CatalogService exposes catalog browsing and supplier operations to the CLI.
type CatalogService interface {
	Categories(ctx context.Context) ([]models.Category, error)
	Products(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	MyProducts(ctx context.Context) ([]models.Product, error)
	PublishProduct(ctx context.Context, p models.Product) (*models.Product, error)
	Tenders(ctx context.Context) ([]models.Tender, error)
	MyTenders(ctx context.Context) ([]models.Tender, error)
	PublishTender(ctx context.Context, t models.Tender) (*models.Tender, error)
}

type catalogService struct {
	api CatalogAPI
}

func NewCatalogService(api CatalogAPI) CatalogService {
	return &catalogService{api: api}
}

func (c *catalogService) Categories(ctx context.Context) ([]models.Category, error) {
	return c.api.Categories(ctx)
}

func (c *catalogService) Products(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	return c.api.Products(ctx, filter)
}

func (c *catalogService) MyProducts(ctx context.Context) ([]models.Product, error) {
	return c.api.MyProducts(ctx)
}

func (c *catalogService) PublishProduct(ctx context.Context, p models.Product) (*models.Product, error) {
	return c.api.CreateProduct(ctx, p)
}

func (c *catalogService) Tenders(ctx context.Context) ([]models.Tender, error) {
	return c.api.Tenders(ctx)
}

func (c *catalogService) MyTenders(ctx context.Context) ([]models.Tender, error) {
	return c.api.MyTenders(ctx)
}

func (c *catalogService) PublishTender(ctx context.Context, t models.Tender) (*models.Tender, error) {
	return c.api.CreateTender(ctx, t)
}
