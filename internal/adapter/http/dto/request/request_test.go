package request

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"depannel_dispatch/internal/domain/entities"
	"depannel_dispatch/internal/domain/lifecycle"
)

func TestTransitionRequest_ToCommand(t *testing.T) {
	var r TransitionRequest
	if err := json.Unmarshal([]byte(`{"agent_id":7,"priority_level":" HIGH ","closure_reason":" done "}`), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	cmd := r.ToCommand(lifecycle.ActionAssign)
	if cmd.Action != lifecycle.ActionAssign || cmd.AgentID != "7" {
		t.Fatalf("unexpected command: %+v", cmd)
	}
	if cmd.Priority != entities.PriorityHigh || cmd.Closure.Reason != "done" {
		t.Fatalf("unexpected normalization: %+v", cmd)
	}

	if err := json.Unmarshal([]byte(`{"agent_id":" 9 "}`), &r); err != nil || r.AgentID != "9" {
		t.Fatalf("expected string id, got %q err=%v", r.AgentID, err)
	}
}

func TestQuoteRequest_ToInput(t *testing.T) {
	r := QuoteRequest{
		Items:      []QuoteItemRequest{{Name: "fuse", Quantity: 2, UnitPrice: 1.5}},
		ValidUntil: "2025-12-31",
	}
	in, err := r.ToInput(" 42 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.InterventionID != "42" || len(in.Items) != 1 || !in.ValidUntil.Equal(time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected input: %+v", in)
	}

	r.ValidUntil = "next week"
	if _, err := r.ToInput("42"); !errors.Is(err, ErrInvalidValidUntil) {
		t.Fatalf("expected ErrInvalidValidUntil, got %v", err)
	}
}

func TestProblemTypeRequest_ToEntity(t *testing.T) {
	pt := ProblemTypeRequest{Name: "Pneu", PriorityLevel: "Low"}.ToEntity(" 3 ")
	if pt.ID != "3" || pt.Priority != entities.PriorityLow {
		t.Fatalf("unexpected entity: %+v", pt)
	}
}
