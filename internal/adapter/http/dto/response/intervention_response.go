package response

import (
	"time"

	"depannel_dispatch/internal/domain/entities"
	"depannel_dispatch/internal/domain/lifecycle"
)

type InterventionResponse struct {
	ID              string    `json:"id"`
	Reference       string    `json:"reference,omitempty"`
	Title           string    `json:"title,omitempty"`
	Description     string    `json:"description,omitempty"`
	Address         string    `json:"address,omitempty"`
	ClientName      string    `json:"client_name,omitempty"`
	ClientPhone     string    `json:"client_phone,omitempty"`
	Latitude        *float64  `json:"latitude,omitempty"`
	Longitude       *float64  `json:"longitude,omitempty"`
	ProblemTypeID   string    `json:"problem_type_id,omitempty"`
	Status          string    `json:"status"`
	SubStatus       string    `json:"sub_status,omitempty"`
	Group           string    `json:"group"`
	Priority        string    `json:"priority"`
	AssignedAgentID *string   `json:"assigned_agent_id"`
	RefusalReason   string    `json:"refusal_reason,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// FromIntervention maps a record. assigned_agent_id is null when no agent
// holds the intervention.
func FromIntervention(iv entities.Intervention) InterventionResponse {
	res := InterventionResponse{
		ID:            iv.ID,
		Reference:     iv.Reference,
		Title:         iv.Title,
		Description:   iv.Description,
		Address:       iv.Address,
		ClientName:    iv.ClientName,
		ClientPhone:   iv.ClientPhone,
		Latitude:      iv.Latitude,
		Longitude:     iv.Longitude,
		ProblemTypeID: iv.ProblemTypeID,
		Status:        string(iv.Status),
		SubStatus:     string(iv.SubStatus),
		Group:         string(lifecycle.GroupOf(iv.Status)),
		Priority:      string(iv.Priority),
		RefusalReason: iv.RefusalReason,
		CreatedAt:     iv.CreatedAt,
		UpdatedAt:     iv.UpdatedAt,
	}
	if iv.AssignedAgentID != "" {
		id := iv.AssignedAgentID
		res.AssignedAgentID = &id
	}
	return res
}

type InterventionListResponse struct {
	Items []InterventionResponse `json:"items"`
	Count int                    `json:"count"`
}

func FromInterventions(list []entities.Intervention) InterventionListResponse {
	out := InterventionListResponse{Items: make([]InterventionResponse, 0, len(list))}
	for _, iv := range list {
		out.Items = append(out.Items, FromIntervention(iv))
	}
	out.Count = len(out.Items)
	return out
}

type SummaryResponse struct {
	Summary lifecycle.Summary    `json:"summary"`
	Tabs    *lifecycle.AgentTabs `json:"tabs,omitempty"`
}

type ActionsResponse struct {
	InterventionID string   `json:"intervention_id"`
	Actions        []string `json:"actions"`
}

func FromActions(id string, actions []lifecycle.Action) ActionsResponse {
	out := ActionsResponse{InterventionID: id, Actions: make([]string, 0, len(actions))}
	for _, a := range actions {
		out.Actions = append(out.Actions, string(a))
	}
	return out
}

type TransitionRecordResponse struct {
	ID            string    `json:"id"`
	Action        string    `json:"action"`
	ActorID       string    `json:"actor_id"`
	ActorRole     string    `json:"actor_role"`
	FromStatus    string    `json:"from_status"`
	FromSubStatus string    `json:"from_sub_status,omitempty"`
	ToStatus      string    `json:"to_status,omitempty"`
	ToSubStatus   string    `json:"to_sub_status,omitempty"`
	Outcome       string    `json:"outcome"`
	Error         string    `json:"error,omitempty"`
	At            time.Time `json:"at"`
}

func FromTransitionRecords(records []entities.TransitionRecord) []TransitionRecordResponse {
	out := make([]TransitionRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, TransitionRecordResponse{
			ID:            r.ID,
			Action:        r.Action,
			ActorID:       r.ActorID,
			ActorRole:     string(r.ActorRole),
			FromStatus:    string(r.FromStatus),
			FromSubStatus: string(r.FromSubStatus),
			ToStatus:      string(r.ToStatus),
			ToSubStatus:   string(r.ToSubStatus),
			Outcome:       string(r.Outcome),
			Error:         r.Error,
			At:            r.At,
		})
	}
	return out
}

type AgentResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Phone        string   `json:"phone,omitempty"`
	Email        string   `json:"email,omitempty"`
	Availability string   `json:"availability"`
	Status       string   `json:"status,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
}

func FromAgent(a entities.Agent) AgentResponse {
	return AgentResponse{
		ID:           a.ID,
		Name:         a.Name,
		Phone:        a.Phone,
		Email:        a.Email,
		Availability: string(a.Availability),
		Status:       string(a.Status),
		Latitude:     a.Latitude,
		Longitude:    a.Longitude,
	}
}

func FromAgents(agents []entities.Agent) []AgentResponse {
	out := make([]AgentResponse, 0, len(agents))
	for _, a := range agents {
		out = append(out, FromAgent(a))
	}
	return out
}
