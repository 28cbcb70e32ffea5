package request

import (
	"errors"
	"strings"
	"time"

	"depannel_dispatch/internal/domain/entities"
	"depannel_dispatch/internal/usecase"
)

var ErrInvalidValidUntil = errors.New("invalid valid_until")

var validUntilLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"}

type QuoteItemRequest struct {
	Name      string  `json:"name" binding:"required"`
	Quantity  float64 `json:"quantity" binding:"required"`
	UnitPrice float64 `json:"unit_price"`
}

// QuoteRequest carries quote items. A total sent by the client is ignored;
// it is always recomputed from the items.
type QuoteRequest struct {
	Items      []QuoteItemRequest `json:"items" binding:"dive"`
	ValidUntil string             `json:"valid_until"`
}

func (r QuoteRequest) ToInput(interventionID string) (usecase.QuoteInput, error) {
	in := usecase.QuoteInput{
		InterventionID: strings.TrimSpace(interventionID),
		Items:          make([]entities.QuoteItem, 0, len(r.Items)),
	}
	for _, it := range r.Items {
		in.Items = append(in.Items, entities.QuoteItem{Name: it.Name, Quantity: it.Quantity, UnitPrice: it.UnitPrice})
	}
	raw := strings.TrimSpace(r.ValidUntil)
	if raw == "" {
		return in, nil
	}
	for _, layout := range validUntilLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			in.ValidUntil = t.UTC()
			return in, nil
		}
	}
	return usecase.QuoteInput{}, ErrInvalidValidUntil
}

// QuoteUpdateRequest also names the intervention the quote belongs to.
type QuoteUpdateRequest struct {
	QuoteRequest
	InterventionID FlexibleID `json:"intervention_id" binding:"required"`
}
