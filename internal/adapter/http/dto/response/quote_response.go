package response

import (
	"time"

	"depannel_dispatch/internal/domain/entities"
)

type QuoteItemResponse struct {
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

type QuoteResponse struct {
	ID             string              `json:"id"`
	InterventionID string              `json:"intervention_id"`
	Items          []QuoteItemResponse `json:"items"`
	Total          float64             `json:"total"`
	ValidUntil     *time.Time          `json:"valid_until,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// FromQuote recomputes the total before rendering.
func FromQuote(q entities.Quote) QuoteResponse {
	q = q.Recompute()
	res := QuoteResponse{
		ID:             q.ID,
		InterventionID: q.InterventionID,
		Items:          make([]QuoteItemResponse, 0, len(q.Items)),
		Total:          q.Total,
		CreatedAt:      q.CreatedAt,
		UpdatedAt:      q.UpdatedAt,
	}
	for _, it := range q.Items {
		res.Items = append(res.Items, QuoteItemResponse{Name: it.Name, Quantity: it.Quantity, UnitPrice: it.UnitPrice, Total: it.Total()})
	}
	if !q.ValidUntil.IsZero() {
		v := q.ValidUntil
		res.ValidUntil = &v
	}
	return res
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}
