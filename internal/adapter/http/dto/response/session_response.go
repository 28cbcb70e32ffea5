package response

import "depannel_dispatch/internal/domain/entities"

type UserResponse struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	Role string `json:"role"`
}

type SessionResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}

func FromPrincipal(p entities.Principal) SessionResponse {
	return SessionResponse{
		AccessToken: p.Token,
		TokenType:   "Bearer",
		User:        UserResponse{ID: p.UserID, Name: p.Name, Role: string(p.Role)},
	}
}

type ProblemTypeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority_level"`
}

func FromProblemType(pt entities.ProblemType) ProblemTypeResponse {
	return ProblemTypeResponse{ID: pt.ID, Name: pt.Name, Description: pt.Description, Priority: string(pt.Priority)}
}

func FromProblemTypes(list []entities.ProblemType) []ProblemTypeResponse {
	out := make([]ProblemTypeResponse, 0, len(list))
	for _, pt := range list {
		out = append(out, FromProblemType(pt))
	}
	return out
}
