package dashboard

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders money amounts with a currency symbol and thousands
// separators.
type Formatter struct {
	symbol  string
	printer *message.Printer
}

// NewFormatter returns a Formatter for symbol using English digit grouping.
func NewFormatter(symbol string) *Formatter {
	return &Formatter{symbol: symbol, printer: message.NewPrinter(language.English)}
}

// Money formats d with two decimals, e.g. ₹5,000.00.
func (f *Formatter) Money(d decimal.Decimal) string {
	return f.format(d, 2)
}

// Whole formats d rounded to a whole amount, e.g. ₹1,200.
func (f *Formatter) Whole(d decimal.Decimal) string {
	return f.format(d, 0)
}

func (f *Formatter) format(d decimal.Decimal, places int32) string {
	v, _ := d.Round(places).Float64()
	if places == 0 {
		return f.symbol + f.printer.Sprintf("%.0f", v)
	}
	return f.symbol + f.printer.Sprintf("%.2f", v)
}
