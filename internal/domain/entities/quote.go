package entities

import (
	"math"
	"time"
)

// QuoteItem is one priced line of a quote.
type QuoteItem struct {
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Cents is quantity × unit price in hundredths, rounded half away from
// zero. Totals are summed in cents so they carry no float residue.
func (i QuoteItem) Cents() int64 {
	return int64(math.Round(i.Quantity * i.UnitPrice * 100))
}

// Total is quantity × unit price rounded to the cent.
func (i QuoteItem) Total() float64 {
	return float64(i.Cents()) / 100
}

// Quote is a priced proposal attached to an intervention by reference.
//
// Domain notes:
//   - The quote lifecycle (create/update/delete) is independent of the
//     intervention status.
//   - Total is derived from Items. It is recomputed by Recompute and never
//     accepted from callers or the wire.
type Quote struct {
	ID             string      `json:"id"`
	InterventionID string      `json:"intervention_id"`
	Items          []QuoteItem `json:"items"`
	Total          float64     `json:"total"`
	ValidUntil     time.Time   `json:"valid_until"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// ComputeTotal sums the item totals. An empty list totals 0.
func ComputeTotal(items []QuoteItem) float64 {
	var cents int64
	for _, it := range items {
		cents += it.Cents()
	}
	return float64(cents) / 100
}

// Recompute returns a copy of q whose Total matches its Items.
func (q Quote) Recompute() Quote {
	q.Total = ComputeTotal(q.Items)
	return q
}
