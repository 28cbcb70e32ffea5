package entities

import "time"

type TransitionOutcome string

const (
	OutcomeConfirmed TransitionOutcome = "confirmed"
	OutcomeNoOp      TransitionOutcome = "noop"
	OutcomeRefused   TransitionOutcome = "refused"
	OutcomeFailed    TransitionOutcome = "failed"
)

// TransitionRecord is one journal line: a transition attempt and how it
// ended. Refused attempts never reached the backing service.
type TransitionRecord struct {
	ID             string             `json:"id"`
	InterventionID string             `json:"intervention_id"`
	Action         string             `json:"action"`
	ActorID        string             `json:"actor_id"`
	ActorRole      Role               `json:"actor_role"`
	FromStatus     InterventionStatus `json:"from_status"`
	FromSubStatus  SubStatus          `json:"from_sub_status,omitempty"`
	ToStatus       InterventionStatus `json:"to_status,omitempty"`
	ToSubStatus    SubStatus          `json:"to_sub_status,omitempty"`
	Outcome        TransitionOutcome  `json:"outcome"`
	Error          string             `json:"error,omitempty"`
	At             time.Time          `json:"at"`
}
