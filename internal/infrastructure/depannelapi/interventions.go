package depannelapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"depannel_dispatch/internal/domain/entities"
	"depannel_dispatch/internal/domain/lifecycle"
	"depannel_dispatch/internal/usecase/interfaces"
)

var _ interfaces.IInterventionGateway = (*Client)(nil)

var interventionKeys = []string{"data", "intervention"}
var listKeys = []string{"data", "interventions"}

func (cl *Client) ListInterventions(ctx context.Context, p entities.Principal) ([]entities.Intervention, error) {
	path := "interventions"
	if p.IsAgent() {
		path = "agent/interventions"
	}
	data, err := cl.do(ctx, p, call{op: "list_interventions", method: http.MethodGet, path: path})
	if err != nil {
		return nil, err
	}
	var wire []wireIntervention
	if err := json.Unmarshal(unwrap(data, listKeys...), &wire); err != nil {
		return nil, fmt.Errorf("decode interventions: %w", err)
	}
	out := make([]entities.Intervention, 0, len(wire))
	for _, w := range wire {
		if w.ID == "" {
			continue
		}
		out = append(out, w.toEntity())
	}
	return out, nil
}

func (cl *Client) GetIntervention(ctx context.Context, p entities.Principal, id string) (entities.Intervention, error) {
	path := "manager/interventions/" + id
	if p.IsAgent() {
		path = "agent/interventions/" + id
	}
	data, err := cl.do(ctx, p, call{op: "get_intervention", method: http.MethodGet, path: path})
	if err != nil {
		return entities.Intervention{}, err
	}
	return decodeIntervention(data)
}

// PerformAction sends one transition request. The action segment and verb
// follow the service routes; payload keys are sent as produced by the
// engine, with agent ids converted to numbers.
func (cl *Client) PerformAction(ctx context.Context, p entities.Principal, req interfaces.ActionRequest) (entities.Intervention, error) {
	method, path, err := actionRoute(req)
	if err != nil {
		return entities.Intervention{}, err
	}
	body := map[string]any{}
	for k, v := range req.Payload {
		if k == "agent_id" {
			if s, ok := v.(string); ok {
				v = numericID(s)
			}
		}
		body[k] = v
	}
	data, err := cl.do(ctx, p, call{op: "action_" + string(req.Action), method: method, path: path, body: body})
	if err != nil {
		return entities.Intervention{}, err
	}
	iv, err := decodeIntervention(data)
	if err != nil {
		// acknowledged without a usable record
		return entities.Intervention{}, nil
	}
	return iv, nil
}

func actionRoute(req interfaces.ActionRequest) (string, string, error) {
	id := strings.TrimSpace(req.InterventionID)
	if id == "" {
		return "", "", fmt.Errorf("intervention id is required")
	}
	switch req.Action {
	case lifecycle.ActionAssign, lifecycle.ActionClose:
		return http.MethodPost, "manager/interventions/" + id + "/" + string(req.Action), nil
	case lifecycle.ActionReassign, lifecycle.ActionSetPriority:
		return http.MethodPut, "manager/interventions/" + id + "/" + string(req.Action), nil
	case lifecycle.ActionAccept, lifecycle.ActionStartRoute, lifecycle.ActionArrive,
		lifecycle.ActionComplete, lifecycle.ActionRefuse:
		return http.MethodPost, "agent/interventions/" + id + "/" + string(req.Action), nil
	}
	return "", "", fmt.Errorf("%w: no route for action %q", lifecycle.ErrInvalidTransition, req.Action)
}

func (cl *Client) ListAvailableAgents(ctx context.Context, p entities.Principal) ([]entities.Agent, error) {
	data, err := cl.do(ctx, p, call{op: "list_available_agents", method: http.MethodGet, path: "manager/agents/available"})
	if err != nil {
		return nil, err
	}
	return decodeAgents(data, entities.AgentAvailable)
}

func decodeIntervention(data []byte) (entities.Intervention, error) {
	var w wireIntervention
	if err := json.Unmarshal(unwrap(data, interventionKeys...), &w); err != nil {
		return entities.Intervention{}, fmt.Errorf("decode intervention: %w", err)
	}
	if w.ID == "" {
		return entities.Intervention{}, nil
	}
	return w.toEntity(), nil
}

func decodeAgents(data []byte, implied entities.AgentAvailability) ([]entities.Agent, error) {
	var wire []wireAgent
	if err := json.Unmarshal(unwrap(data, "data", "agents", "users"), &wire); err != nil {
		return nil, fmt.Errorf("decode agents: %w", err)
	}
	out := make([]entities.Agent, 0, len(wire))
	for _, w := range wire {
		if w.ID == "" {
			continue
		}
		out = append(out, w.toEntity(implied))
	}
	return out, nil
}
