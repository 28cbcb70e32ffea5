package depannelapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"depannel_dispatch/internal/domain/entities"
	"depannel_dispatch/internal/usecase/interfaces"
)

var _ interfaces.ICatalogGateway = (*Client)(nil)

func (cl *Client) ListProblemTypes(ctx context.Context, p entities.Principal) ([]entities.ProblemType, error) {
	data, err := cl.do(ctx, p, call{op: "list_problem_types", method: http.MethodGet, path: "problem-types"})
	if err != nil {
		return nil, err
	}
	var wire []wireProblemType
	if err := json.Unmarshal(unwrap(data, "data", "problem_types"), &wire); err != nil {
		return nil, fmt.Errorf("decode problem types: %w", err)
	}
	out := make([]entities.ProblemType, 0, len(wire))
	for _, w := range wire {
		out = append(out, w.toEntity())
	}
	return out, nil
}

func (cl *Client) CreateProblemType(ctx context.Context, p entities.Principal, pt entities.ProblemType) (entities.ProblemType, error) {
	data, err := cl.do(ctx, p, call{op: "create_problem_type", method: http.MethodPost, path: "problem-types", body: toProblemTypeBody(pt)})
	if err != nil {
		return entities.ProblemType{}, err
	}
	return decodeProblemType(data, pt), nil
}

func (cl *Client) UpdateProblemType(ctx context.Context, p entities.Principal, pt entities.ProblemType) (entities.ProblemType, error) {
	data, err := cl.do(ctx, p, call{op: "update_problem_type", method: http.MethodPut, path: "problem-types/" + pt.ID, body: toProblemTypeBody(pt)})
	if err != nil {
		return entities.ProblemType{}, err
	}
	return decodeProblemType(data, pt), nil
}

func (cl *Client) DeleteProblemType(ctx context.Context, p entities.Principal, id string) error {
	_, err := cl.do(ctx, p, call{op: "delete_problem_type", method: http.MethodDelete, path: "problem-types/" + id})
	return err
}

func toProblemTypeBody(pt entities.ProblemType) problemTypeBody {
	return problemTypeBody{Name: pt.Name, Description: pt.Description, PriorityLevel: string(pt.Priority)}
}

func decodeProblemType(data []byte, sent entities.ProblemType) entities.ProblemType {
	var w wireProblemType
	if err := json.Unmarshal(unwrap(data, "data", "problem_type"), &w); err != nil || w.ID == "" {
		return sent
	}
	return w.toEntity()
}

func (cl *Client) ListAgents(ctx context.Context, p entities.Principal) ([]entities.Agent, error) {
	data, err := cl.do(ctx, p, call{op: "list_agents", method: http.MethodGet, path: "users", query: url.Values{"role": {"agent"}}})
	if err != nil {
		return nil, err
	}
	return decodeAgents(data, "")
}

func (cl *Client) GetAgent(ctx context.Context, p entities.Principal, id string) (entities.Agent, error) {
	data, err := cl.do(ctx, p, call{op: "get_agent", method: http.MethodGet, path: "users/" + id})
	if err != nil {
		return entities.Agent{}, err
	}
	return decodeAgent(data, entities.Agent{})
}

func (cl *Client) CreateAgent(ctx context.Context, p entities.Principal, a entities.Agent, password string) (entities.Agent, error) {
	data, err := cl.do(ctx, p, call{op: "create_agent", method: http.MethodPost, path: "users", body: toAgentBody(a, password)})
	if err != nil {
		return entities.Agent{}, err
	}
	return decodeAgent(data, a)
}

func (cl *Client) UpdateAgent(ctx context.Context, p entities.Principal, a entities.Agent) (entities.Agent, error) {
	data, err := cl.do(ctx, p, call{op: "update_agent", method: http.MethodPut, path: "users/" + a.ID, body: toAgentBody(a, "")})
	if err != nil {
		return entities.Agent{}, err
	}
	return decodeAgent(data, a)
}

// decodeAgent falls back to sent when the acknowledgement does not echo the
// record.
func decodeAgent(data []byte, sent entities.Agent) (entities.Agent, error) {
	var w wireAgent
	if err := json.Unmarshal(unwrap(data, "data", "user", "agent"), &w); err != nil {
		if sent.ID != "" || sent.Email != "" {
			return sent, nil
		}
		return entities.Agent{}, fmt.Errorf("decode agent: %w", err)
	}
	if w.ID == "" {
		return sent, nil
	}
	return w.toEntity(""), nil
}
