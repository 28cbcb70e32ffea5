package request

import (
	"strings"

	"depannel_dispatch/internal/domain/entities"
)

// AgentRequest is the body of agent creation and edition. Password is only
// read on creation.
type AgentRequest struct {
	Name         string   `json:"name" binding:"required"`
	Email        string   `json:"email" binding:"required,email"`
	Password     string   `json:"password"`
	Phone        string   `json:"phone" binding:"required"`
	Status       string   `json:"status"`
	Availability string   `json:"availability_status"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
}

func (r AgentRequest) ToEntity(id string) entities.Agent {
	return entities.Agent{
		ID:           strings.TrimSpace(id),
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		Status:       entities.AgentAccountStatus(strings.ToLower(strings.TrimSpace(r.Status))),
		Availability: entities.AgentAvailability(strings.ToLower(strings.TrimSpace(r.Availability))),
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
	}
}
