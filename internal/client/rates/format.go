package rates

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/adilbek-m/saudalink/internal/client/models"
)

// Prices are displayed with Kazakh digit grouping ("12 345"), the market's
// home locale.
var printer = message.NewPrinter(language.MustParse("kk"))

// FormatPrice renders a localized, symbol-annotated amount, e.g. "12 345 ₸".
// Amounts are rounded half-up to at most two fraction digits.
func FormatPrice(amount float64, currency models.Currency) string {
	rounded := math.Round(amount*100) / 100
	num := printer.Sprintf("%v", number.Decimal(rounded, number.MaxFractionDigits(2)))

	// The dollar sign conventionally precedes the amount; tenge and ruble
	// follow it.
	if currency == models.USD {
		return currency.Symbol() + num
	}
	return num + " " + currency.Symbol()
}

// FormatConversion renders the display amount of a Conversion, which keeps
// the original currency when the conversion fell back.
func FormatConversion(c Conversion) string {
	return FormatPrice(c.Amount, c.Currency)
}
