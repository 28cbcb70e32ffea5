package interfaces

import (
	"context"

	"depannel_dispatch/internal/domain/entities"
	"depannel_dispatch/internal/domain/lifecycle"
)

// ActionRequest is one outbound transition request, identified by
// (InterventionID, Action) and carrying the engine payload.
type ActionRequest struct {
	InterventionID string
	Action         lifecycle.Action
	Payload        lifecycle.Payload
}

// IInterventionGateway abstracts the backing service for interventions and
// agents. It is the system of record.
//
// Errors are expressed with the lifecycle taxonomy:
//   - lifecycle.ErrRemoteRejected (as *lifecycle.RemoteError) for 4xx/5xx
//   - lifecycle.ErrSessionExpired for 401
//   - lifecycle.ErrRemoteUnreachable for transport failures and timeouts
//
// PerformAction returns a zero Intervention when the service confirmed the
// request without echoing the record.
type IInterventionGateway interface {
	ListInterventions(ctx context.Context, p entities.Principal) ([]entities.Intervention, error)
	GetIntervention(ctx context.Context, p entities.Principal, id string) (entities.Intervention, error)
	PerformAction(ctx context.Context, p entities.Principal, req ActionRequest) (entities.Intervention, error)
	ListAvailableAgents(ctx context.Context, p entities.Principal) ([]entities.Agent, error)
}
