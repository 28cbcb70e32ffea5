package depannelapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"depannel_dispatch/internal/domain/entities"
	"depannel_dispatch/internal/usecase/interfaces"
)

// QuoteGateway exposes the quote routes of a Client.
type QuoteGateway struct {
	cl *Client
}

var _ interfaces.IQuoteGateway = (*QuoteGateway)(nil)

func NewQuoteGateway(cl *Client) *QuoteGateway {
	return &QuoteGateway{cl: cl}
}

func (g *QuoteGateway) ListByIntervention(ctx context.Context, p entities.Principal, interventionID string) ([]entities.Quote, error) {
	data, err := g.cl.do(ctx, p, call{op: "list_quotes", method: http.MethodGet, path: "interventions/" + interventionID + "/quotes"})
	if err != nil {
		return nil, err
	}
	var wire []wireQuote
	if err := json.Unmarshal(unwrap(data, "data", "quotes"), &wire); err != nil {
		return nil, fmt.Errorf("decode quotes: %w", err)
	}
	out := make([]entities.Quote, 0, len(wire))
	for _, w := range wire {
		q := w.toEntity()
		if q.InterventionID == "" {
			q.InterventionID = interventionID
		}
		out = append(out, q)
	}
	return out, nil
}

func (g *QuoteGateway) Create(ctx context.Context, p entities.Principal, q entities.Quote) (entities.Quote, error) {
	data, err := g.cl.do(ctx, p, call{
		op:     "create_quote",
		method: http.MethodPost,
		path:   "interventions/" + q.InterventionID + "/quotes",
		body:   toQuoteBody(q),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return decodeQuote(data, q)
}

func (g *QuoteGateway) Update(ctx context.Context, p entities.Principal, q entities.Quote) (entities.Quote, error) {
	data, err := g.cl.do(ctx, p, call{op: "update_quote", method: http.MethodPut, path: "quotes/" + q.ID, body: toQuoteBody(q)})
	if err != nil {
		if IsNotFound(err) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	return decodeQuote(data, q)
}

func (g *QuoteGateway) Delete(ctx context.Context, p entities.Principal, id string) error {
	_, err := g.cl.do(ctx, p, call{op: "delete_quote", method: http.MethodDelete, path: "quotes/" + id})
	return err
}

// decodeQuote prefers the echoed record and falls back to the sent one.
func decodeQuote(data []byte, sent entities.Quote) (entities.Quote, error) {
	var w wireQuote
	if err := json.Unmarshal(unwrap(data, "data", "quote"), &w); err != nil || w.ID == "" {
		return sent.Recompute(), nil
	}
	q := w.toEntity()
	if q.InterventionID == "" {
		q.InterventionID = sent.InterventionID
	}
	if len(q.Items) == 0 && len(sent.Items) > 0 {
		q.Items = sent.Items
	}
	if q.ValidUntil.IsZero() {
		q.ValidUntil = sent.ValidUntil
	}
	return q.Recompute(), nil
}
