package usecase

import (
	"context"
	"errors"
	"strings"

	"depannel_dispatch/internal/domain/entities"
	"depannel_dispatch/internal/domain/lifecycle"
	"depannel_dispatch/internal/usecase/interfaces"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidProblemType   = errors.New("invalid problem type")
	ErrInvalidProblemTypeID = errors.New("invalid problem type id")
	ErrManagerRequired      = errors.New("manager role required")
	ErrInvalidAgent         = errors.New("invalid agent")
	ErrInvalidAgentID       = errors.New("invalid agent id")
	ErrAgentNotFound        = errors.New("agent not found")
)

var validate = validator.New()

// ICatalogUseCase manages the problem type catalog and the agent directory.
// Problem type reads are open to every principal; everything else is
// reserved to managers.
type ICatalogUseCase interface {
	ListProblemTypes(ctx context.Context, p entities.Principal) ([]entities.ProblemType, error)
	CreateProblemType(ctx context.Context, p entities.Principal, pt entities.ProblemType) (entities.ProblemType, error)
	UpdateProblemType(ctx context.Context, p entities.Principal, pt entities.ProblemType) (entities.ProblemType, error)
	DeleteProblemType(ctx context.Context, p entities.Principal, id string) error
	ListAgents(ctx context.Context, p entities.Principal) ([]entities.Agent, error)
	GetAgent(ctx context.Context, p entities.Principal, id string) (entities.Agent, error)
	CreateAgent(ctx context.Context, p entities.Principal, a entities.Agent, password string) (entities.Agent, error)
	UpdateAgent(ctx context.Context, p entities.Principal, a entities.Agent) (entities.Agent, error)
}

type CatalogUseCase struct {
	gateway interfaces.ICatalogGateway
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(gateway interfaces.ICatalogGateway) *CatalogUseCase {
	return &CatalogUseCase{gateway: gateway}
}

func (u *CatalogUseCase) ListProblemTypes(ctx context.Context, p entities.Principal) ([]entities.ProblemType, error) {
	return u.gateway.ListProblemTypes(ctx, p)
}

func (u *CatalogUseCase) CreateProblemType(ctx context.Context, p entities.Principal, pt entities.ProblemType) (entities.ProblemType, error) {
	if !p.IsManager() {
		return entities.ProblemType{}, ErrManagerRequired
	}
	pt, err := normalizeProblemType(pt)
	if err != nil {
		return entities.ProblemType{}, err
	}
	pt.ID = ""
	return u.gateway.CreateProblemType(ctx, p, pt)
}

func (u *CatalogUseCase) UpdateProblemType(ctx context.Context, p entities.Principal, pt entities.ProblemType) (entities.ProblemType, error) {
	if !p.IsManager() {
		return entities.ProblemType{}, ErrManagerRequired
	}
	pt.ID = strings.TrimSpace(pt.ID)
	if pt.ID == "" {
		return entities.ProblemType{}, ErrInvalidProblemTypeID
	}
	pt, err := normalizeProblemType(pt)
	if err != nil {
		return entities.ProblemType{}, err
	}
	return u.gateway.UpdateProblemType(ctx, p, pt)
}

func (u *CatalogUseCase) DeleteProblemType(ctx context.Context, p entities.Principal, id string) error {
	if !p.IsManager() {
		return ErrManagerRequired
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidProblemTypeID
	}
	return u.gateway.DeleteProblemType(ctx, p, id)
}

func (u *CatalogUseCase) ListAgents(ctx context.Context, p entities.Principal) ([]entities.Agent, error) {
	if !p.IsManager() {
		return nil, ErrManagerRequired
	}
	return u.gateway.ListAgents(ctx, p)
}

func (u *CatalogUseCase) GetAgent(ctx context.Context, p entities.Principal, id string) (entities.Agent, error) {
	if !p.IsManager() {
		return entities.Agent{}, ErrManagerRequired
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Agent{}, ErrInvalidAgentID
	}
	a, err := u.gateway.GetAgent(ctx, p, id)
	if err != nil {
		return entities.Agent{}, agentNotFound(err)
	}
	if a.ID == "" {
		return entities.Agent{}, ErrAgentNotFound
	}
	return a, nil
}

// CreateAgent registers an active, available agent unless a or its
// defaults say otherwise.
func (u *CatalogUseCase) CreateAgent(ctx context.Context, p entities.Principal, a entities.Agent, password string) (entities.Agent, error) {
	if !p.IsManager() {
		return entities.Agent{}, ErrManagerRequired
	}
	if strings.TrimSpace(password) == "" {
		return entities.Agent{}, ErrInvalidAgent
	}
	if a.Status == "" {
		a.Status = entities.AgentActive
	}
	if a.Availability == "" {
		a.Availability = entities.AgentAvailable
	}
	a, err := normalizeAgent(a)
	if err != nil {
		return entities.Agent{}, err
	}
	a.ID = ""
	return u.gateway.CreateAgent(ctx, p, a, password)
}

func (u *CatalogUseCase) UpdateAgent(ctx context.Context, p entities.Principal, a entities.Agent) (entities.Agent, error) {
	if !p.IsManager() {
		return entities.Agent{}, ErrManagerRequired
	}
	a.ID = strings.TrimSpace(a.ID)
	if a.ID == "" {
		return entities.Agent{}, ErrInvalidAgentID
	}
	a, err := normalizeAgent(a)
	if err != nil {
		return entities.Agent{}, err
	}
	updated, err := u.gateway.UpdateAgent(ctx, p, a)
	if err != nil {
		return entities.Agent{}, agentNotFound(err)
	}
	return updated, nil
}

// normalizeAgent requires a name, a phone and a valid email. Empty status
// and availability are left for the service to keep.
func normalizeAgent(a entities.Agent) (entities.Agent, error) {
	a.Name = strings.TrimSpace(a.Name)
	a.Phone = strings.TrimSpace(a.Phone)
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))
	if a.Name == "" || a.Phone == "" || a.Email == "" {
		return entities.Agent{}, ErrInvalidAgent
	}
	if err := validate.Var(a.Email, "email"); err != nil {
		return entities.Agent{}, ErrInvalidAgent
	}
	if a.Status != "" && !a.Status.Valid() {
		return entities.Agent{}, ErrInvalidAgent
	}
	if a.Availability != "" && !a.Availability.Valid() {
		return entities.Agent{}, ErrInvalidAgent
	}
	return a, nil
}

func agentNotFound(err error) error {
	var re *lifecycle.RemoteError
	if errors.As(err, &re) && re.StatusCode == 404 {
		return ErrAgentNotFound
	}
	return err
}

func normalizeProblemType(pt entities.ProblemType) (entities.ProblemType, error) {
	pt.Name = strings.TrimSpace(pt.Name)
	pt.Description = strings.TrimSpace(pt.Description)
	if pt.Name == "" {
		return entities.ProblemType{}, ErrInvalidProblemType
	}
	if pt.Priority == "" {
		pt.Priority = entities.PriorityMedium
	}
	if !pt.Priority.Valid() {
		return entities.ProblemType{}, ErrInvalidProblemType
	}
	return pt, nil
}
