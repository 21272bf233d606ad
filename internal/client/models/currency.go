package models

import "fmt"

// Currency is a three-letter ISO-like currency code.
type Currency string

const (
	KZT Currency = "KZT"
	RUB Currency = "RUB"
	USD Currency = "USD"
)

// Supported lists the currencies the marketplace prices can be shown in.
var Supported = []Currency{KZT, RUB, USD}

// Valid reports whether c belongs to the supported set.
func (c Currency) Valid() bool {
	switch c {
	case KZT, RUB, USD:
		return true
	}
	return false
}

// Symbol returns the display symbol for the currency.
func (c Currency) Symbol() string {
	switch c {
	case KZT:
		return "₸"
	case RUB:
		return "₽"
	case USD:
		return "$"
	}
	return string(c)
}

// ErrUnsupportedCurrency is returned for codes outside the supported set.
// It signals a programming error, not a runtime condition.
type ErrUnsupportedCurrency struct {
	Code Currency
}

func (e *ErrUnsupportedCurrency) Error() string {
	return fmt.Sprintf("unsupported currency: %q", string(e.Code))
}

// Price is an amount tagged with the currency it is denominated in.
type Price struct {
	Amount   float64  `json:"amount"`
	Currency Currency `json:"currency"`
}
