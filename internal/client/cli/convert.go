package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/adilbek-m/saudalink/internal/client/models"
)

// Convert performs a one-off conversion: convert <amount> <from> <to>.
func (a *App) Convert(ctx context.Context, args []string) error {
	if len(args) != 3 {
		printlnFn("Usage: convert <amount> <from> <to>")
		return nil
	}

	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		printlnFn("Invalid amount:", args[0])
		return err
	}
	from := models.Currency(strings.ToUpper(args[1]))
	to := models.Currency(strings.ToUpper(args[2]))

	res, err := a.pricing.Convert(ctx, amount, from, to)
	if err != nil {
		a.reportError(ctx, "conversion failed", err)
		return err
	}

	printlnFn(res.Text)
	return nil
}

// SetCurrency switches the display currency: currency <code>.
func (a *App) SetCurrency(args []string) error {
	if len(args) != 1 {
		printlnFn("Usage: currency <code>  (one of KZT, RUB, USD)")
		return nil
	}

	c := models.Currency(strings.ToUpper(args[0]))
	if !c.Valid() {
		printlnFn("Unsupported currency:", args[0])
		return &models.ErrUnsupportedCurrency{Code: c}
	}

	a.display = c
	printlnFn("Display currency set to", string(c))
	return nil
}
