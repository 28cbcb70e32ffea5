package request

import (
	"strings"

	"depannel_dispatch/internal/domain/entities"
)

type ProblemTypeRequest struct {
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
	PriorityLevel string `json:"priority_level"`
}

func (r ProblemTypeRequest) ToEntity(id string) entities.ProblemType {
	return entities.ProblemType{
		ID:          strings.TrimSpace(id),
		Name:        r.Name,
		Description: r.Description,
		Priority:    entities.Priority(strings.ToLower(strings.TrimSpace(r.PriorityLevel))),
	}
}
