package services

import (
	"context"

	"github.com/adilbek-m/saudalink/internal/client/models"
	"github.com/adilbek-m/saudalink/internal/client/rates"
)

// DisplayPrice is a catalog price prepared for rendering: the conversion
// outcome plus the formatted string. When the rate source is down the price
// still renders, in its original currency.
type DisplayPrice struct {
	rates.Conversion
	Text string
}

// PricingService converts and formats catalog prices for display.
type PricingService interface {
	ProductPrices(ctx context.Context, products []models.Product, display models.Currency) ([]DisplayPrice, error)
	TenderBudgets(ctx context.Context, tenders []models.Tender, display models.Currency) ([]DisplayPrice, error)
	Convert(ctx context.Context, amount float64, from, to models.Currency) (DisplayPrice, error)
}

type pricingService struct {
	converter *rates.Converter
}

func NewPricingService(converter *rates.Converter) PricingService {
	return &pricingService{converter: converter}
}

// ProductPrices converts every product price to the display currency in one
// pass: one rate lookup per distinct source currency across the whole page.
func (p *pricingService) ProductPrices(ctx context.Context, products []models.Product, display models.Currency) ([]DisplayPrice, error) {
	prices := make([]models.Price, len(products))
	for i, product := range products {
		prices[i] = models.Price{Amount: product.Price, Currency: product.Currency}
	}
	return p.convertAll(ctx, prices, display)
}

// TenderBudgets does the same for tender budgets.
func (p *pricingService) TenderBudgets(ctx context.Context, tenders []models.Tender, display models.Currency) ([]DisplayPrice, error) {
	prices := make([]models.Price, len(tenders))
	for i, tender := range tenders {
		prices[i] = models.Price{Amount: tender.Budget, Currency: tender.Currency}
	}
	return p.convertAll(ctx, prices, display)
}

func (p *pricingService) Convert(ctx context.Context, amount float64, from, to models.Currency) (DisplayPrice, error) {
	res, err := p.converter.ConvertDetailed(ctx, amount, from, to)
	if err != nil {
		return DisplayPrice{}, err
	}
	return DisplayPrice{Conversion: res, Text: rates.FormatConversion(res)}, nil
}

func (p *pricingService) convertAll(ctx context.Context, prices []models.Price, display models.Currency) ([]DisplayPrice, error) {
	converted, err := p.converter.ConvertAll(ctx, prices, display)
	if err != nil {
		return nil, err
	}

	result := make([]DisplayPrice, len(converted))
	for i, c := range converted {
		result[i] = DisplayPrice{Conversion: c, Text: rates.FormatConversion(c)}
	}
	return result, nil
}
