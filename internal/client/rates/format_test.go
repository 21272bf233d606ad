package rates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adilbek-m/saudalink/internal/client/models"
)

func TestFormatPrice_SymbolPlacement(t *testing.T) {
	assert.True(t, strings.HasSuffix(FormatPrice(100, models.KZT), "₸"))
	assert.True(t, strings.HasSuffix(FormatPrice(100, models.RUB), "₽"))
	assert.True(t, strings.HasPrefix(FormatPrice(100, models.USD), "$"))
}

func TestFormatPrice_GroupsThousands(t *testing.T) {
	got := FormatPrice(12345, models.KZT)
	require.Contains(t, got, "12")
	require.Contains(t, got, "345")
	require.NotContains(t, got, "12345", "thousands must be grouped")
}

func TestFormatPrice_RoundsToTwoFractionDigits(t *testing.T) {
	got := FormatPrice(2.345, models.USD)
	require.Contains(t, got, "2")
	require.Contains(t, got, "35", "2.345 rounds half-up to 2.35")
	require.NotContains(t, got, "345")
}

func TestFormatPrice_WholeAmountHasNoFraction(t *testing.T) {
	got := FormatPrice(100, models.KZT)
	require.Contains(t, got, "100")
	require.NotContains(t, got, "100,0")
	require.NotContains(t, got, "100.0")
}

func TestFormatConversion_FallbackKeepsOriginalSymbol(t *testing.T) {
	c := Conversion{Amount: 100, Currency: models.USD, Converted: false, Reason: "rates unavailable"}
	got := FormatConversion(c)
	require.Contains(t, got, "100")
	require.Contains(t, got, "$", "a fallback renders in the original currency")
}
