package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adilbek-m/saudalink/internal/client/models"
	"github.com/adilbek-m/saudalink/internal/client/rates"
)

type fakeRateSource struct {
	mu     sync.Mutex
	calls  int
	tables map[models.Currency]map[models.Currency]float64
	err    error
}

func (f *fakeRateSource) FetchRates(ctx context.Context, base models.Currency) (map[models.Currency]float64, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.tables[base], nil
}

func newPricing(src rates.Provider) PricingService {
	cache := rates.NewCache(src, nil, rates.DefaultTTL, nil)
	return NewPricingService(rates.NewConverter(cache))
}

func TestProductPrices_ConvertsAndFormats(t *testing.T) {
	src := &fakeRateSource{tables: map[models.Currency]map[models.Currency]float64{
		models.USD: {models.KZT: 450},
	}}
	svc := newPricing(src)

	products := []models.Product{
		{Name: "Pump", Price: 10, Currency: models.USD},
		{Name: "Valve", Price: 200, Currency: models.KZT},
	}

	got, err := svc.ProductPrices(context.Background(), products, models.KZT)
	require.NoError(t, err)
	require.Len(t, got, 2)

	require.True(t, got[0].Converted)
	require.Equal(t, 4500.0, got[0].Amount)
	require.Contains(t, got[0].Text, "₸")

	require.True(t, got[1].Converted)
	require.Equal(t, 200.0, got[1].Amount)
}

func TestProductPrices_RateSourceDown_StillRenders(t *testing.T) {
	src := &fakeRateSource{err: errors.New("down")}
	svc := newPricing(src)

	products := []models.Product{
		{Name: "Pump", Price: 100, Currency: models.USD},
		{Name: "Hose", Price: 120, Currency: models.USD},
	}

	got, err := svc.ProductPrices(context.Background(), products, models.KZT)
	require.NoError(t, err)
	require.Len(t, got, 2)

	require.False(t, got[0].Converted)
	require.Equal(t, 100.0, got[0].Amount)
	require.Contains(t, got[0].Text, "100")
	require.Contains(t, got[0].Text, "$", "fallback renders the original currency")

	require.Equal(t, 1, src.calls, "one attempt per base currency for the whole page")
}

func TestTenderBudgets_UsesBulkConversion(t *testing.T) {
	src := &fakeRateSource{tables: map[models.Currency]map[models.Currency]float64{
		models.RUB: {models.USD: 0.011},
	}}
	svc := newPricing(src)

	tenders := []models.Tender{
		{Title: "Cabling", Budget: 1000, Currency: models.RUB},
		{Title: "Piping", Budget: 2000, Currency: models.RUB},
		{Title: "Fittings", Budget: 30, Currency: models.USD},
	}

	got, err := svc.TenderBudgets(context.Background(), tenders, models.USD)
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, 11.0, got[0].Amount)
	require.Equal(t, 22.0, got[1].Amount)
	require.Equal(t, 30.0, got[2].Amount)
	require.Equal(t, 1, src.calls)
}

func TestConvert_ReturnsFormattedResult(t *testing.T) {
	src := &fakeRateSource{tables: map[models.Currency]map[models.Currency]float64{
		models.KZT: {models.RUB: 5},
	}}
	svc := newPricing(src)

	got, err := svc.Convert(context.Background(), 10, models.KZT, models.RUB)
	require.NoError(t, err)
	require.True(t, got.Converted)
	require.Equal(t, 50.0, got.Amount)
	require.Contains(t, got.Text, "₽")
}

func TestConvert_UnsupportedCurrency(t *testing.T) {
	svc := newPricing(&fakeRateSource{})
	_, err := svc.Convert(context.Background(), 1, "EUR", models.KZT)
	require.Error(t, err)
}
