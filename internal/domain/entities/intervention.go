package entities

import "time"

// InterventionStatus is the closed set of lifecycle states of an intervention.
//
// Wire vocabulary variants (in-progress, en-attente, acceptee, ...) are
// translated into these values by the backing service adapter only.
type InterventionStatus string

const (
	StatusPending    InterventionStatus = "pending"
	StatusAssigned   InterventionStatus = "assigned"
	StatusAccepted   InterventionStatus = "accepted"
	StatusInProgress InterventionStatus = "in_progress"
	StatusCompleted  InterventionStatus = "completed"
	StatusClosed     InterventionStatus = "closed"
	StatusRefused    InterventionStatus = "refused"
)

var AllStatuses = []InterventionStatus{
	StatusPending,
	StatusAssigned,
	StatusAccepted,
	StatusInProgress,
	StatusCompleted,
	StatusClosed,
	StatusRefused,
}

func (s InterventionStatus) Valid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Active reports whether the status is in the "active work" range where a
// sub-status is meaningful.
func (s InterventionStatus) Active() bool {
	return s == StatusAccepted || s == StatusInProgress
}

// SubStatus is the finer-grained phase inside the active range.
type SubStatus string

const (
	SubStatusNone    SubStatus = ""
	SubStatusEnRoute SubStatus = "en_route"
	SubStatusArrived SubStatus = "arrived"
)

func (s SubStatus) Valid() bool {
	return s == SubStatusNone || s == SubStatusEnRoute || s == SubStatusArrived
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Intervention is a reported breakdown tracked from report to closure.
//
// The authoritative record lives in the backing service. Descriptive fields
// are carried as-is and never interpreted by the lifecycle engine.
type Intervention struct {
	ID              string             `json:"id"`
	Reference       string             `json:"reference,omitempty"`
	Title           string             `json:"title,omitempty"`
	Description     string             `json:"description,omitempty"`
	Address         string             `json:"address,omitempty"`
	ClientName      string             `json:"client_name,omitempty"`
	ClientPhone     string             `json:"client_phone,omitempty"`
	Latitude        *float64           `json:"latitude,omitempty"`
	Longitude       *float64           `json:"longitude,omitempty"`
	ProblemTypeID   string             `json:"problem_type_id,omitempty"`
	Status          InterventionStatus `json:"status"`
	SubStatus       SubStatus          `json:"sub_status,omitempty"`
	Priority        Priority           `json:"priority"`
	AssignedAgentID string             `json:"assigned_agent_id,omitempty"`
	RefusalReason   string             `json:"refusal_reason,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// HasAgent reports whether an agent reference is present.
func (i Intervention) HasAgent() bool {
	return i.AssignedAgentID != ""
}
