// ABOUTME: Price summary averages token prices over providers with usable pricing
// ABOUTME: Decimal arithmetic keeps upstream price text exact through the average

package aggregator

import (
	"strings"

	"opencosts-api/core/domain"

	"github.com/shopspring/decimal"
)

var priceCleaner = strings.NewReplacer("$", "", ",", "")

// ParsePrice parses a price token after stripping '$' and ','. It reports false for
// absent or unparsable prices.
func ParsePrice(price *string) (decimal.Decimal, bool) {
	if price == nil {
		return decimal.Zero, false
	}
	cleaned := strings.TrimSpace(priceCleaner.Replace(*price))
	if cleaned == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// SummarizePrices averages input and output prices over the rows whose both prices
// parse to values above zero. Averages are "0" when no row qualifies.
func SummarizePrices(rows []domain.ProviderRow) domain.PriceSummary {
	totalIn := decimal.Zero
	totalOut := decimal.Zero
	count := 0

	for _, row := range rows {
		in, okIn := ParsePrice(row.PriceInputToken)
		out, okOut := ParsePrice(row.PriceOutputToken)
		if !okIn || !okOut || !in.IsPositive() || !out.IsPositive() {
			continue
		}
		totalIn = totalIn.Add(in)
		totalOut = totalOut.Add(out)
		count++
	}

	if count == 0 {
		return domain.PriceSummary{AverageInputPrice: "0", AverageOutputPrice: "0"}
	}

	n := decimal.NewFromInt(int64(count))
	return domain.PriceSummary{
		AverageInputPrice:  totalIn.Div(n).String(),
		AverageOutputPrice: totalOut.Div(n).String(),
		ProviderCount:      count,
	}
}
