package output

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"oneway-quote/internal/errors"
)

// Money formats amounts as whole currency units with locale digit grouping,
// e.g. "Rp 250.000" for Indonesian.
type Money struct {
	printer *message.Printer
	symbol  string
}

// NewMoney builds a formatter for a BCP 47 language tag and ISO 4217 code.
// An empty symbol is looked up for the locale.
func NewMoney(lang, code, symbol string) (*Money, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, errors.Wrapf(errors.TypeConfig, err, "invalid locale language %q", lang)
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, errors.Wrapf(errors.TypeConfig, err, "invalid currency %q", code)
	}

	p := message.NewPrinter(tag)
	if symbol == "" {
		symbol = p.Sprint(currency.Symbol(unit))
	}
	return &Money{printer: p, symbol: symbol}, nil
}

// DefaultMoney formats Indonesian rupiah
func DefaultMoney() *Money {
	m, err := NewMoney("id", "IDR", "Rp")
	if err != nil {
		panic(err)
	}
	return m
}

// Format rounds half away from zero to a whole unit and renders it
func (m *Money) Format(d decimal.Decimal) string {
	r := d.Round(0)
	sign := ""
	if r.IsNegative() {
		sign = "-"
		r = r.Neg()
	}
	return sign + m.symbol + " " + m.digits(r)
}

var maxInt64 = decimal.NewFromInt(math.MaxInt64)

// digits groups a non-negative whole amount. Amounts past int64 are grouped
// by hand with the separator the locale uses for thousands.
func (m *Money) digits(r decimal.Decimal) string {
	if r.LessThanOrEqual(maxInt64) {
		return m.printer.Sprintf("%d", r.IntPart())
	}
	sep := strings.TrimSuffix(strings.TrimPrefix(m.printer.Sprintf("%d", 1000), "1"), "000")

	raw := r.String()
	var b strings.Builder
	for i, c := range raw {
		if i > 0 && (len(raw)-i)%3 == 0 {
			b.WriteString(sep)
		}
		b.WriteRune(c)
	}
	return b.String()
}

// Symbol returns the currency symbol in use
func (m *Money) Symbol() string {
	return m.symbol
}

var indonesianMonths = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// FormatDate renders a long Indonesian date, e.g. "19 Oktober 2026"
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), indonesianMonths[t.Month()-1], t.Year())
}
