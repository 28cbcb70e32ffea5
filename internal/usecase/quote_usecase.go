package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"depannel_dispatch/internal/domain/entities"
	"depannel_dispatch/internal/usecase/interfaces"
)

var (
	ErrQuoteNotFound     = errors.New("quote not found")
	ErrInvalidQuoteID    = errors.New("invalid quote id")
	ErrInvalidQuoteItem  = errors.New("invalid quote item")
	ErrInvalidValidUntil = errors.New("invalid valid_until")
)

// DefaultQuoteValidity applies when a quote is created without an explicit
// expiry.
const DefaultQuoteValidity = 30 * 24 * time.Hour

// QuoteInput carries the caller-provided part of a quote. A caller-supplied
// total is never accepted.
type QuoteInput struct {
	InterventionID string
	Items          []entities.QuoteItem
	ValidUntil     time.Time
}

// IQuoteUseCase manages quotes attached to interventions. Totals are always
// derived from the items, both on the way out and on the way back in.
type IQuoteUseCase interface {
	ListByIntervention(ctx context.Context, p entities.Principal, interventionID string) ([]entities.Quote, error)
	Create(ctx context.Context, p entities.Principal, in QuoteInput) (entities.Quote, error)
	Update(ctx context.Context, p entities.Principal, id string, in QuoteInput) (entities.Quote, error)
	Delete(ctx context.Context, p entities.Principal, id string) error
}

type QuoteUseCase struct {
	gateway interfaces.IQuoteGateway
	now     func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(gateway interfaces.IQuoteGateway) *QuoteUseCase {
	return &QuoteUseCase{gateway: gateway, now: func() time.Time { return time.Now().UTC() }}
}

func (u *QuoteUseCase) ListByIntervention(ctx context.Context, p entities.Principal, interventionID string) ([]entities.Quote, error) {
	interventionID = strings.TrimSpace(interventionID)
	if interventionID == "" {
		return nil, ErrInvalidInterventionID
	}
	quotes, err := u.gateway.ListByIntervention(ctx, p, interventionID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Quote, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, q.Recompute())
	}
	return out, nil
}

func (u *QuoteUseCase) Create(ctx context.Context, p entities.Principal, in QuoteInput) (entities.Quote, error) {
	q, err := u.build(in)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ValidUntil.IsZero() {
		q.ValidUntil = u.now().Add(DefaultQuoteValidity)
	}
	q.CreatedAt = u.now()
	q.UpdatedAt = q.CreatedAt

	created, err := u.gateway.Create(ctx, p, q.Recompute())
	if err != nil {
		return entities.Quote{}, err
	}
	return created.Recompute(), nil
}

func (u *QuoteUseCase) Update(ctx context.Context, p entities.Principal, id string, in QuoteInput) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	q, err := u.build(in)
	if err != nil {
		return entities.Quote{}, err
	}
	q.ID = id
	q.UpdatedAt = u.now()

	updated, err := u.gateway.Update(ctx, p, q.Recompute())
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated.Recompute(), nil
}

func (u *QuoteUseCase) Delete(ctx context.Context, p entities.Principal, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidQuoteID
	}
	return u.gateway.Delete(ctx, p, id)
}

func (u *QuoteUseCase) build(in QuoteInput) (entities.Quote, error) {
	interventionID := strings.TrimSpace(in.InterventionID)
	if interventionID == "" {
		return entities.Quote{}, ErrInvalidInterventionID
	}
	items := make([]entities.QuoteItem, 0, len(in.Items))
	for _, it := range in.Items {
		it.Name = strings.TrimSpace(it.Name)
		if it.Name == "" || it.Quantity <= 0 || it.UnitPrice < 0 {
			return entities.Quote{}, ErrInvalidQuoteItem
		}
		items = append(items, it)
	}
	if !in.ValidUntil.IsZero() && in.ValidUntil.Before(u.now()) {
		return entities.Quote{}, ErrInvalidValidUntil
	}
	return entities.Quote{
		InterventionID: interventionID,
		Items:          items,
		ValidUntil:     in.ValidUntil,
	}, nil
}
