// Package pricing derives the display cost of a booking draft from the
// selected space's daily price and the evaluated date span. The server's
// totalCost remains authoritative once a booking is created; this quote only
// feeds the live total shown while the form is being filled.
package pricing

import (
	"fmt"
	"math"

	"adbooking/internal/domains/booking/model"
	"adbooking/shared/datespan"
)

// Quote is a derived total. Computable is false when either input is missing,
// in which case the caller must render a placeholder, never a zero amount.
type Quote struct {
	Total      float64
	Computable bool
}

// Compute multiplies the per-day price by the span's days, rounded to two
// decimal places for display.
func Compute(pricePerDay float64, span datespan.Span) Quote {
	if !span.Valid {
		return Quote{}
	}

	total := pricePerDay * float64(span.Days)

	return Quote{
		Total:      math.Round(total*100) / 100,
		Computable: true,
	}
}

// ForDraft quotes a draft: no selected space or an invalid date range yields
// a non-computable quote.
func ForDraft(draft model.Draft) Quote {
	if draft.AdSpace == nil {
		return Quote{}
	}

	return Compute(draft.AdSpace.PricePerDay, datespan.Between(draft.StartDate, draft.EndDate))
}

// Display renders the quote with a currency symbol, or "-" when not computable.
func (q Quote) Display(symbol string) string {
	if !q.Computable {
		return "-"
	}

	return fmt.Sprintf("%.2f %s", q.Total, symbol)
}
