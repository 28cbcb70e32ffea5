package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"depannel_dispatch/internal/domain/entities"
	mock_interfaces "depannel_dispatch/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newQuoteUseCase(t *testing.T) (*QuoteUseCase, *mock_interfaces.MockIQuoteGateway) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gw := mock_interfaces.NewMockIQuoteGateway(ctrl)
	uc := NewQuoteUseCase(gw)
	uc.now = func() time.Time { return fixedNow }
	return uc, gw
}

func TestQuoteUseCase_CreateValidation(t *testing.T) {
	cases := []struct {
		name string
		in   QuoteInput
		want error
	}{
		{"missing intervention", QuoteInput{Items: []entities.QuoteItem{{Name: "a", Quantity: 1}}}, ErrInvalidInterventionID},
		{"blank item name", QuoteInput{InterventionID: "42", Items: []entities.QuoteItem{{Name: " ", Quantity: 1}}}, ErrInvalidQuoteItem},
		{"zero quantity", QuoteInput{InterventionID: "42", Items: []entities.QuoteItem{{Name: "a", Quantity: 0}}}, ErrInvalidQuoteItem},
		{"negative price", QuoteInput{InterventionID: "42", Items: []entities.QuoteItem{{Name: "a", Quantity: 1, UnitPrice: -1}}}, ErrInvalidQuoteItem},
		{"expired", QuoteInput{InterventionID: "42", ValidUntil: fixedNow.Add(-time.Hour)}, ErrInvalidValidUntil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, _ := newQuoteUseCase(t)
			_, err := uc.Create(context.Background(), manager, tc.in)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestQuoteUseCase_CreateComputesTotal(t *testing.T) {
	uc, gw := newQuoteUseCase(t)
	gw.EXPECT().Create(gomock.Any(), manager, gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
		func(_ context.Context, _ entities.Principal, q entities.Quote) (entities.Quote, error) {
			if q.Total != 27.5 {
				t.Fatalf("expected computed total 27.5, got %v", q.Total)
			}
			if !q.ValidUntil.Equal(fixedNow.Add(DefaultQuoteValidity)) {
				t.Fatalf("expected default validity, got %s", q.ValidUntil)
			}
			q.ID = "3"
			q.Total = 1000
			return q, nil
		},
	)

	got, err := uc.Create(context.Background(), manager, QuoteInput{
		InterventionID: " 42 ",
		Items: []entities.QuoteItem{
			{Name: "fuse", Quantity: 3, UnitPrice: 2.5},
			{Name: "labour", Quantity: 1, UnitPrice: 20},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "3" || got.Total != 27.5 || got.InterventionID != "42" {
		t.Fatalf("unexpected quote: %+v", got)
	}
}

func TestQuoteUseCase_UpdateAndDelete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, gw := newQuoteUseCase(t)
		gw.EXPECT().Update(gomock.Any(), manager, gomock.Any()).Return(entities.Quote{}, nil)
		_, err := uc.Update(context.Background(), manager, "3", QuoteInput{InterventionID: "42"})
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("empty items total zero", func(t *testing.T) {
		uc, gw := newQuoteUseCase(t)
		gw.EXPECT().Update(gomock.Any(), manager, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ entities.Principal, q entities.Quote) (entities.Quote, error) {
				if q.ID != "3" {
					t.Fatalf("expected id 3, got %q", q.ID)
				}
				return q, nil
			},
		)
		got, err := uc.Update(context.Background(), manager, " 3 ", QuoteInput{InterventionID: "42"})
		if err != nil || got.Total != 0 {
			t.Fatalf("unexpected quote: %+v err=%v", got, err)
		}
	})

	t.Run("invalid ids", func(t *testing.T) {
		uc, _ := newQuoteUseCase(t)
		if _, err := uc.Update(context.Background(), manager, "", QuoteInput{}); !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
		if err := uc.Delete(context.Background(), manager, " "); !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
		if _, err := uc.ListByIntervention(context.Background(), manager, ""); !errors.Is(err, ErrInvalidInterventionID) {
			t.Fatalf("expected ErrInvalidInterventionID, got %v", err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		uc, gw := newQuoteUseCase(t)
		gw.EXPECT().Delete(gomock.Any(), manager, "3").Return(nil)
		if err := uc.Delete(context.Background(), manager, "3"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteUseCase_ListRecomputes(t *testing.T) {
	uc, gw := newQuoteUseCase(t)
	gw.EXPECT().ListByIntervention(gomock.Any(), manager, "42").Return([]entities.Quote{
		{ID: "1", Items: []entities.QuoteItem{{Name: "a", Quantity: 2, UnitPrice: 5}}, Total: 3},
	}, nil)

	list, err := uc.ListByIntervention(context.Background(), manager, "42")
	if err != nil || len(list) != 1 || list[0].Total != 10 {
		t.Fatalf("unexpected list: %+v err=%v", list, err)
	}
}
