// Package billing computes service ticket totals. All amounts are integer
// cents; conversion to display strings happens at the edge.
package billing

import "fmt"

// Quote is the result of a ticket cost calculation.
type Quote struct {
	SubtotalCents int64
	TaxCents      int64
	TotalCents    int64
}

// Calculate returns the cost quote for a ticket closing with the given
// attached service prices and serialized part prices. The tax rate is a
// whole percentage (8 means 8%). The total is rounded half-up to the cent.
// Pure function: same inputs always produce the same quote.
func Calculate(servicePriceCents, partPriceCents []int64, taxRatePercent int64) Quote {
	var subtotal int64
	for _, p := range servicePriceCents {
		subtotal += p
	}
	for _, p := range partPriceCents {
		subtotal += p
	}

	// total = subtotal * (100 + rate) / 100 with half-up rounding,
	// kept in integer arithmetic to stay exact.
	total := (subtotal*(100+taxRatePercent) + 50) / 100

	return Quote{
		SubtotalCents: subtotal,
		TaxCents:      total - subtotal,
		TotalCents:    total,
	}
}

// FormatCents renders an amount of cents as a decimal string ("70.20").
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
