package interfaces

import (
	"context"

	"depannel_dispatch/internal/domain/entities"
)

// ICatalogGateway abstracts the reference data kept by the backing service:
// problem types and the agent directory.
//
// CreateAgent takes the initial password separately; it is never part of
// the Agent returned by reads.
type ICatalogGateway interface {
	ListProblemTypes(ctx context.Context, p entities.Principal) ([]entities.ProblemType, error)
	CreateProblemType(ctx context.Context, p entities.Principal, pt entities.ProblemType) (entities.ProblemType, error)
	UpdateProblemType(ctx context.Context, p entities.Principal, pt entities.ProblemType) (entities.ProblemType, error)
	DeleteProblemType(ctx context.Context, p entities.Principal, id string) error

	ListAgents(ctx context.Context, p entities.Principal) ([]entities.Agent, error)
	GetAgent(ctx context.Context, p entities.Principal, id string) (entities.Agent, error)
	CreateAgent(ctx context.Context, p entities.Principal, a entities.Agent, password string) (entities.Agent, error)
	UpdateAgent(ctx context.Context, p entities.Principal, a entities.Agent) (entities.Agent, error)
}
