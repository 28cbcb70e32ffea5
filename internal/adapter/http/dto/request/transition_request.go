package request

import (
	"strings"

	"depannel_dispatch/internal/domain/entities"
	"depannel_dispatch/internal/domain/lifecycle"
	"depannel_dispatch/internal/usecase"
)

// TransitionRequest is the body accepted by every action endpoint. Only the
// fields relevant to the action are read; an empty body is valid for
// accept, start and arrive.
type TransitionRequest struct {
	AgentID         FlexibleID `json:"agent_id"`
	Reason          string     `json:"reason"`
	WorkDescription string     `json:"work_description"`
	ResolutionNotes string     `json:"resolution_notes"`
	PartsUsed       string     `json:"parts_used"`
	ClosureReason   string     `json:"closure_reason"`
	ManagerNotes    string     `json:"manager_notes"`
	PriorityLevel   string     `json:"priority_level"`
}

func (r TransitionRequest) ToCommand(action lifecycle.Action) usecase.TransitionCommand {
	return usecase.TransitionCommand{
		Action:  action,
		AgentID: strings.TrimSpace(r.AgentID.String()),
		Reason:  r.Reason,
		Report: lifecycle.CompletionReport{
			WorkDescription: strings.TrimSpace(r.WorkDescription),
			ResolutionNotes: strings.TrimSpace(r.ResolutionNotes),
			PartsUsed:       strings.TrimSpace(r.PartsUsed),
		},
		Closure: lifecycle.ClosureNotes{
			Reason:       strings.TrimSpace(r.ClosureReason),
			ManagerNotes: strings.TrimSpace(r.ManagerNotes),
		},
		Priority: entities.Priority(strings.ToLower(strings.TrimSpace(r.PriorityLevel))),
	}
}
