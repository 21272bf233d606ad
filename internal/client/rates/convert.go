package rates

import (
	"context"

	"github.com/adilbek-m/saudalink/internal/client/models"
)

// Conversion is the detailed result of a single conversion. The Converted
// flag distinguishes a real conversion from a fallback to the original
// amount; Reason names the failure when Converted is false.
type Conversion struct {
	Amount    float64
	Currency  models.Currency
	Rate      float64
	Converted bool
	Reason    string
}

// Converter turns (amount, from, to) triples into display amounts using the
// cache. Expected failures (dead rate source, missing target rate) fall back
// to the original amount; only a currency outside the supported set is an
// error.
type Converter struct {
	cache *Cache
}

func NewConverter(cache *Cache) *Converter {
	return &Converter{cache: cache}
}

// Convert returns a usable display amount for every expected runtime
// condition. The returned number is the converted amount, or the original
// amount when conversion is unavailable.
func (cv *Converter) Convert(ctx context.Context, amount float64, from, to models.Currency) (float64, error) {
	res, err := cv.ConvertDetailed(ctx, amount, from, to)
	if err != nil {
		return 0, err
	}
	return res.Amount, nil
}

// ConvertDetailed is Convert with the fallback information preserved.
func (cv *Converter) ConvertDetailed(ctx context.Context, amount float64, from, to models.Currency) (Conversion, error) {
	if !from.Valid() {
		return Conversion{}, &models.ErrUnsupportedCurrency{Code: from}
	}
	if !to.Valid() {
		return Conversion{}, &models.ErrUnsupportedCurrency{Code: to}
	}

	if from == to {
		// No rounding surprises on identity: return the amount as is.
		return Conversion{Amount: amount, Currency: to, Rate: 1, Converted: true}, nil
	}

	table := cv.cache.GetRates(ctx, from)
	if table == nil {
		return Conversion{Amount: amount, Currency: from, Reason: "rates unavailable"}, nil
	}

	rate, ok := table[to]
	if !ok {
		return Conversion{Amount: amount, Currency: from, Reason: "no rate for " + string(to)}, nil
	}

	return Conversion{Amount: amount * rate, Currency: to, Rate: rate, Converted: true}, nil
}

// ConvertAll converts a list of prices to one target currency. The rate
// table is resolved once per distinct source currency — rendering a catalog
// page costs at most one rate lookup per base, not one per item, even when
// the source is failing.
func (cv *Converter) ConvertAll(ctx context.Context, prices []models.Price, to models.Currency) ([]Conversion, error) {
	if !to.Valid() {
		return nil, &models.ErrUnsupportedCurrency{Code: to}
	}

	tables := make(map[models.Currency]map[models.Currency]float64)
	result := make([]Conversion, 0, len(prices))

	for _, p := range prices {
		if !p.Currency.Valid() {
			return nil, &models.ErrUnsupportedCurrency{Code: p.Currency}
		}

		if p.Currency == to {
			result = append(result, Conversion{Amount: p.Amount, Currency: to, Rate: 1, Converted: true})
			continue
		}

		table, seen := tables[p.Currency]
		if !seen {
			table = cv.cache.GetRates(ctx, p.Currency)
			tables[p.Currency] = table
		}

		if table == nil {
			result = append(result, Conversion{Amount: p.Amount, Currency: p.Currency, Reason: "rates unavailable"})
			continue
		}
		rate, ok := table[to]
		if !ok {
			result = append(result, Conversion{Amount: p.Amount, Currency: p.Currency, Reason: "no rate for " + string(to)})
			continue
		}
		result = append(result, Conversion{Amount: p.Amount * rate, Currency: to, Rate: rate, Converted: true})
	}

	return result, nil
}
