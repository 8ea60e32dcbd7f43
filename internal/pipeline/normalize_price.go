package pipeline

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"handhelds/internal"
	"handhelds/internal/util"
)

type currencySymbol struct {
	symbol string
	code   string
}

// The earliest symbol in a cell wins; at the same offset the longer one does,
// so "US$" beats "$". Letter codes only match as whole words.
var currencySymbols = []currencySymbol{
	{"US$", "USD"}, {"CA$", "CAD"}, {"AU$", "AUD"}, {"HK$", "HKD"}, {"NZ$", "NZD"},
	{"USD", "USD"}, {"EUR", "EUR"}, {"GBP", "GBP"}, {"CAD", "CAD"}, {"AUD", "AUD"},
	{"JPY", "JPY"}, {"CNY", "CNY"}, {"RMB", "CNY"}, {"INR", "INR"}, {"KRW", "KRW"},
	{"RUB", "RUB"}, {"BRL", "BRL"},
	{"C$", "CAD"}, {"A$", "AUD"}, {"R$", "BRL"},
	{"$", "USD"}, {"€", "EUR"}, {"£", "GBP"}, {"¥", "CNY"}, {"₹", "INR"}, {"₩", "KRW"}, {"₽", "RUB"},
}

const unknownCurrency = "?"

func ParsePrice(raw string) *internal.Pricing {
	text, lower, ok := cellText(raw)
	if !ok {
		return nil
	}
	if strings.Contains(lower, "discontinued") {
		return &internal.Pricing{Raw: text, Discontinued: true}
	}

	groups := util.ExtractInts(text)
	if len(groups) == 0 {
		return nil
	}
	minV := float64(groups[0])
	maxV := float64(groups[len(groups)-1])
	avg := (minV + maxV) / 2

	return &internal.Pricing{
		Raw:      text,
		Min:      &minV,
		Max:      &maxV,
		Average:  &avg,
		Currency: detectCurrency(text),
		Category: PriceCategoryFor(avg),
	}
}

func detectCurrency(text string) string {
	upper := strings.ToUpper(text)
	code, at, width := unknownCurrency, -1, 0
	for _, c := range currencySymbols {
		i := symbolIndex(upper, c.symbol)
		if i < 0 {
			continue
		}
		if at < 0 || i < at || (i == at && len(c.symbol) > width) {
			code, at, width = c.code, i, len(c.symbol)
		}
	}
	return code
}

func symbolIndex(upper, symbol string) int {
	if !isLetterCode(symbol) {
		return strings.Index(upper, symbol)
	}
	for from := 0; from < len(upper); {
		i := strings.Index(upper[from:], symbol)
		if i < 0 {
			return -1
		}
		i += from
		before, _ := utf8.DecodeLastRuneInString(upper[:i])
		after, _ := utf8.DecodeRuneInString(upper[i+len(symbol):])
		if !unicode.IsLetter(before) && !unicode.IsLetter(after) {
			return i
		}
		from = i + 1
	}
	return -1
}

func isLetterCode(symbol string) bool {
	for _, r := range symbol {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// PriceCategoryFor buckets an average price; each upper bound is inclusive.
func PriceCategoryFor(avg float64) internal.PriceCategory {
	switch {
	case avg <= 0:
		return internal.PriceUnknown
	case avg <= 100:
		return internal.PriceLow
	case avg <= 300:
		return internal.PriceMid
	default:
		return internal.PriceHigh
	}
}
