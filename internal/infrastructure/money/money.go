package money

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders and rounds prices in a single currency.
type Formatter struct {
	unit    currency.Unit
	printer *message.Printer
	scale   int
}

// NewFormatter accepts an ISO 4217 code ("USD") and a BCP 47 tag ("en-US").
func NewFormatter(code, locale string) (*Formatter, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("invalid currency %q: %w", code, err)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	scale, _ := currency.Standard.Rounding(unit)
	return &Formatter{
		unit:    unit,
		printer: message.NewPrinter(tag),
		scale:   scale,
	}, nil
}

func (f *Formatter) Currency() string {
	return f.unit.String()
}

// Format renders amount with the currency symbol, e.g. "$ 5.23".
func (f *Formatter) Format(amount float64) string {
	return f.printer.Sprint(currency.Symbol(f.unit.Amount(f.Round(amount))))
}

// Round rounds half away from zero to the currency's minor unit.
func (f *Formatter) Round(amount float64) float64 {
	return RoundTo(amount, f.scale)
}

// RoundTo rounds amount half away from zero to places decimals. The amount is
// taken at its shortest decimal representation, so 1.005 rounds to 1.01.
func RoundTo(amount float64, places int) float64 {
	return decimal.NewFromFloat(amount).Round(int32(places)).InexactFloat64()
}

// Sum adds amounts without accumulating binary rounding error.
func Sum(amounts ...float64) float64 {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(decimal.NewFromFloat(a))
	}
	return total.InexactFloat64()
}
