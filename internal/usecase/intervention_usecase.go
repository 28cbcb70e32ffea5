package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"depannel_dispatch/internal/domain/entities"
	"depannel_dispatch/internal/domain/lifecycle"
	"depannel_dispatch/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInterventionNotFound  = errors.New("intervention not found")
	ErrInvalidInterventionID = errors.New("invalid intervention id")
)

// DefaultRemoteTimeout bounds an outbound transition request once it has
// been issued. The request is not cancelled with the caller.
const DefaultRemoteTimeout = 15 * time.Second

// TransitionCommand is a requested action as received from a surface.
// AgentID is resolved against the available agents for assign and reassign.
type TransitionCommand struct {
	Action   lifecycle.Action
	AgentID  string
	Reason   string
	Report   lifecycle.CompletionReport
	Closure  lifecycle.ClosureNotes
	Priority entities.Priority
}

// ListFilter narrows List. Refresh forces a fetch from the backing service
// before reading the view.
type ListFilter struct {
	Group   lifecycle.Group
	Refresh bool
}

// SummaryView is the dashboard aggregate for a principal. Tabs is only set
// for agents.
type SummaryView struct {
	Summary lifecycle.Summary
	Tabs    *lifecycle.AgentTabs
}

// SyncResult describes one refresh of the view from the backing service.
type SyncResult struct {
	Adopted  int
	Skipped  int
	NewWork  int
	Fetched  int
	Duration time.Duration
}

// IInterventionUseCase exposes the intervention lifecycle to the surfaces.
//
// Apply is two-phase: the engine decides against the last confirmed record,
// the request goes to the backing service, and only the confirmed response
// is committed to the view. A failure leaves the view untouched.
type IInterventionUseCase interface {
	List(ctx context.Context, p entities.Principal, f ListFilter) ([]entities.Intervention, error)
	Get(ctx context.Context, p entities.Principal, id string) (entities.Intervention, error)
	Summary(ctx context.Context, p entities.Principal) (SummaryView, error)
	AvailableActions(ctx context.Context, p entities.Principal, id string) ([]lifecycle.Action, error)
	AvailableAgents(ctx context.Context, p entities.Principal) ([]entities.Agent, error)
	History(ctx context.Context, p entities.Principal, id string, limit int) ([]entities.TransitionRecord, error)
	Apply(ctx context.Context, p entities.Principal, id string, cmd TransitionCommand) (entities.Intervention, error)
	Sync(ctx context.Context, p entities.Principal) (SyncResult, error)
}

type InterventionUseCase struct {
	gateway  interfaces.IInterventionGateway
	view     interfaces.IInterventionViewRepository
	journal  interfaces.ITransitionJournal
	sink     interfaces.INotificationSink
	sessions interfaces.ISessionStore
	metrics  interfaces.ITransitionMetrics
	engine   *lifecycle.Engine

	remoteTimeout time.Duration
	inflight      *inflightRegistry
	primed        atomic.Bool
	now           func() time.Time
}

var _ IInterventionUseCase = (*InterventionUseCase)(nil)

// InterventionDeps groups the collaborators of InterventionUseCase. Journal,
// Sink, Sessions and Metrics are optional.
type InterventionDeps struct {
	Gateway       interfaces.IInterventionGateway
	View          interfaces.IInterventionViewRepository
	Journal       interfaces.ITransitionJournal
	Sink          interfaces.INotificationSink
	Sessions      interfaces.ISessionStore
	Metrics       interfaces.ITransitionMetrics
	Engine        *lifecycle.Engine
	RemoteTimeout time.Duration
}

func NewInterventionUseCase(d InterventionDeps) *InterventionUseCase {
	engine := d.Engine
	if engine == nil {
		engine = lifecycle.NewEngine(lifecycle.DefaultArrivalOffset)
	}
	timeout := d.RemoteTimeout
	if timeout <= 0 {
		timeout = DefaultRemoteTimeout
	}
	return &InterventionUseCase{
		gateway:       d.Gateway,
		view:          d.View,
		journal:       d.Journal,
		sink:          d.Sink,
		sessions:      d.Sessions,
		metrics:       d.Metrics,
		engine:        engine,
		remoteTimeout: timeout,
		inflight:      newInflightRegistry(),
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (u *InterventionUseCase) List(ctx context.Context, p entities.Principal, f ListFilter) ([]entities.Intervention, error) {
	if f.Refresh {
		if _, err := u.sync(ctx, p, false); err != nil {
			u.expireOn(ctx, p, err)
			return nil, err
		}
	}

	all, err := u.view.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]entities.Intervention, 0, len(all))
	for _, iv := range all {
		if !visibleTo(iv, p) {
			continue
		}
		if f.Group != "" && lifecycle.GroupOf(iv.Status) != f.Group {
			continue
		}
		out = append(out, iv)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (u *InterventionUseCase) Get(ctx context.Context, p entities.Principal, id string) (entities.Intervention, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Intervention{}, ErrInvalidInterventionID
	}
	iv, err := u.current(ctx, p, id)
	if err != nil {
		return entities.Intervention{}, err
	}
	if !visibleTo(iv, p) {
		return entities.Intervention{}, ErrInterventionNotFound
	}
	return iv, nil
}

func (u *InterventionUseCase) Summary(ctx context.Context, p entities.Principal) (SummaryView, error) {
	all, err := u.view.List(ctx)
	if err != nil {
		return SummaryView{}, err
	}
	if p.IsAgent() {
		tabs := lifecycle.SummarizeForAgent(all, p.UserID)
		var mine []entities.Intervention
		for _, iv := range all {
			if iv.AssignedAgentID == p.UserID {
				mine = append(mine, iv)
			}
		}
		return SummaryView{Summary: lifecycle.Summarize(mine), Tabs: &tabs}, nil
	}
	return SummaryView{Summary: lifecycle.Summarize(all)}, nil
}

func (u *InterventionUseCase) AvailableActions(ctx context.Context, p entities.Principal, id string) ([]lifecycle.Action, error) {
	iv, err := u.Get(ctx, p, id)
	if err != nil {
		return nil, err
	}
	return lifecycle.Available(iv, p), nil
}

func (u *InterventionUseCase) AvailableAgents(ctx context.Context, p entities.Principal) ([]entities.Agent, error) {
	agents, err := u.gateway.ListAvailableAgents(ctx, p)
	if err != nil {
		u.expireOn(ctx, p, err)
		return nil, err
	}
	return agents, nil
}

func (u *InterventionUseCase) History(ctx context.Context, p entities.Principal, id string, limit int) ([]entities.TransitionRecord, error) {
	if _, err := u.Get(ctx, p, id); err != nil {
		return nil, err
	}
	if u.journal == nil {
		return []entities.TransitionRecord{}, nil
	}
	return u.journal.ListByIntervention(ctx, strings.TrimSpace(id), limit)
}

func (u *InterventionUseCase) Apply(ctx context.Context, p entities.Principal, id string, cmd TransitionCommand) (entities.Intervention, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Intervention{}, ErrInvalidInterventionID
	}
	if a, ok := lifecycle.ParseAction(string(cmd.Action)); ok {
		cmd.Action = a
	}
	started := time.Now()
	log.Printf("[intervention][usecase] apply start id=%s action=%s actor=%s role=%s", id, cmd.Action, p.UserID, p.Role)

	if !u.inflight.acquire(id) {
		err := &lifecycle.TransitionError{Kind: lifecycle.ErrPreconditionFailed, Action: cmd.Action, Reason: "transition in flight"}
		log.Printf("[intervention][usecase] apply rejected id=%s action=%s err=%v", id, cmd.Action, err)
		return entities.Intervention{}, err
	}
	defer u.inflight.release(id)

	current, err := u.current(ctx, p, id)
	if err != nil {
		return entities.Intervention{}, err
	}

	engineCmd, err := u.resolveCommand(ctx, p, current, cmd)
	if err != nil {
		u.finish(ctx, p, lifecycle.Transition{InterventionID: id, Action: cmd.Action, From: lifecycle.StateOf(current)}, entities.Intervention{}, err, started)
		return entities.Intervention{}, err
	}

	tr, err := u.engine.Decide(current, engineCmd, p)
	if err != nil {
		u.finish(ctx, p, lifecycle.Transition{InterventionID: id, Action: cmd.Action, From: lifecycle.StateOf(current)}, entities.Intervention{}, err, started)
		return entities.Intervention{}, err
	}
	if tr.NoOp {
		log.Printf("[intervention][usecase] apply noop id=%s action=%s state=%s", id, tr.Action, tr.From)
		u.finish(ctx, p, tr, current, nil, started)
		return current, nil
	}

	confirmed, err := u.perform(ctx, p, tr)
	if err != nil {
		log.Printf("[intervention][usecase] apply failed id=%s action=%s err=%v", id, tr.Action, err)
		u.expireOn(ctx, p, err)
		u.finish(ctx, p, tr, entities.Intervention{}, err, started)
		return entities.Intervention{}, err
	}
	if confirmed.ID == "" {
		confirmed = u.refetch(ctx, p, tr, current)
	}
	adopted := lifecycle.Reconcile(tr, confirmed)

	if err := u.view.Put(ctx, adopted); err != nil {
		// confirmed remotely; the next refresh repairs the view
		log.Printf("[intervention][usecase] view write failed id=%s err=%v", id, err)
	}
	u.inflight.markCommitted(id, u.now())
	u.finish(ctx, p, tr, adopted, nil, started)
	u.notifyTransition(ctx, current, adopted)

	log.Printf("[intervention][usecase] apply confirmed id=%s action=%s from=%s to=%s", id, tr.Action, tr.From, lifecycle.StateOf(adopted))
	return adopted, nil
}

// resolveCommand builds the engine command. For assign and reassign the
// agent is looked up among the available agents, after a fail-fast legality
// check so that an illegal action never reaches the network.
func (u *InterventionUseCase) resolveCommand(ctx context.Context, p entities.Principal, current entities.Intervention, cmd TransitionCommand) (lifecycle.Command, error) {
	out := lifecycle.Command{
		Action:   cmd.Action,
		Reason:   cmd.Reason,
		Report:   cmd.Report,
		Closure:  cmd.Closure,
		Priority: cmd.Priority,
	}
	if cmd.Action != lifecycle.ActionAssign && cmd.Action != lifecycle.ActionReassign {
		return out, nil
	}

	agentID := strings.TrimSpace(cmd.AgentID)
	if agentID == "" || agentID == current.AssignedAgentID {
		out.Agent = &entities.Agent{ID: agentID}
		return out, nil
	}
	if err := lifecycle.Check(current, cmd.Action, p); err != nil {
		return lifecycle.Command{}, err
	}

	agents, err := u.gateway.ListAvailableAgents(ctx, p)
	if err != nil {
		u.expireOn(ctx, p, err)
		return lifecycle.Command{}, err
	}
	out.Agent = &entities.Agent{ID: agentID}
	for _, a := range agents {
		if a.ID == agentID {
			a := a
			out.Agent = &a
			break
		}
	}
	return out, nil
}

// perform issues the outbound request on a context that survives caller
// cancellation but is bounded by remoteTimeout.
func (u *InterventionUseCase) perform(ctx context.Context, p entities.Principal, tr lifecycle.Transition) (entities.Intervention, error) {
	rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.remoteTimeout)
	defer cancel()
	return u.gateway.PerformAction(rctx, p, interfaces.ActionRequest{
		InterventionID: tr.InterventionID,
		Action:         tr.Action,
		Payload:        tr.Payload,
	})
}

// refetch obtains the confirmed record when the acknowledgement did not
// echo it. Failing that, the prediction is adopted as confirmed.
func (u *InterventionUseCase) refetch(ctx context.Context, p entities.Principal, tr lifecycle.Transition, current entities.Intervention) entities.Intervention {
	rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.remoteTimeout)
	defer cancel()
	fetched, err := u.gateway.GetIntervention(rctx, p, tr.InterventionID)
	if err == nil && fetched.ID != "" {
		return fetched
	}
	log.Printf("[intervention][usecase] refetch after ack failed id=%s err=%v", tr.InterventionID, err)
	return tr.To.ApplyTo(current)
}

// current returns the last confirmed record, loading it from the backing
// service when the view does not know it.
func (u *InterventionUseCase) current(ctx context.Context, p entities.Principal, id string) (entities.Intervention, error) {
	iv, err := u.view.Get(ctx, id)
	if err != nil {
		return entities.Intervention{}, err
	}
	if iv.ID != "" {
		return iv, nil
	}

	fetched, err := u.gateway.GetIntervention(ctx, p, id)
	if err != nil {
		var re *lifecycle.RemoteError
		if errors.As(err, &re) && re.StatusCode == 404 {
			return entities.Intervention{}, ErrInterventionNotFound
		}
		u.expireOn(ctx, p, err)
		return entities.Intervention{}, err
	}
	if fetched.ID == "" {
		return entities.Intervention{}, ErrInterventionNotFound
	}
	fetched = lifecycle.Normalize(fetched)
	if err := u.view.Put(ctx, fetched); err != nil {
		log.Printf("[intervention][usecase] view write failed id=%s err=%v", id, err)
	}
	return fetched, nil
}

// finish journals the attempt and observes it.
func (u *InterventionUseCase) finish(ctx context.Context, p entities.Principal, tr lifecycle.Transition, result entities.Intervention, cause error, started time.Time) {
	rec := entities.TransitionRecord{
		ID:             uuid.NewString(),
		InterventionID: tr.InterventionID,
		Action:         string(tr.Action),
		ActorID:        p.UserID,
		ActorRole:      p.Role,
		FromStatus:     tr.From.Status,
		FromSubStatus:  tr.From.SubStatus,
		At:             u.now(),
	}
	switch {
	case cause != nil:
		rec.Outcome = outcomeOf(cause)
		rec.Error = cause.Error()
	case tr.NoOp:
		rec.Outcome = entities.OutcomeNoOp
		rec.ToStatus = tr.From.Status
		rec.ToSubStatus = tr.From.SubStatus
	default:
		rec.Outcome = entities.OutcomeConfirmed
		rec.ToStatus = result.Status
		rec.ToSubStatus = result.SubStatus
	}

	if u.metrics != nil {
		u.metrics.ObserveTransition(string(tr.Action), string(rec.Outcome), time.Since(started))
	}
	if u.journal == nil {
		return
	}
	if err := u.journal.Record(context.WithoutCancel(ctx), rec); err != nil {
		log.Printf("[intervention][usecase] journal write failed id=%s action=%s err=%v", tr.InterventionID, tr.Action, err)
	}
}

func outcomeOf(err error) entities.TransitionOutcome {
	if errors.Is(err, lifecycle.ErrInvalidTransition) || errors.Is(err, lifecycle.ErrPreconditionFailed) {
		return entities.OutcomeRefused
	}
	return entities.OutcomeFailed
}

// expireOn drops the local session when the backing service rejected the
// credential.
func (u *InterventionUseCase) expireOn(ctx context.Context, p entities.Principal, err error) {
	if u.sessions == nil || p.Token == "" || !errors.Is(err, lifecycle.ErrSessionExpired) {
		return
	}
	if ierr := u.sessions.Invalidate(context.WithoutCancel(ctx), p.Token); ierr != nil {
		log.Printf("[intervention][usecase] session invalidate failed user=%s err=%v", p.UserID, ierr)
	}
}

func (u *InterventionUseCase) notifyTransition(ctx context.Context, before, after entities.Intervention) {
	events := []entities.Notification{u.notification(entities.NotificationChanged, entities.AudienceManagers, after)}
	if after.AssignedAgentID != "" {
		events = append(events, u.notification(entities.NotificationChanged, entities.AgentAudience(after.AssignedAgentID), after))
	}
	if before.AssignedAgentID != "" && before.AssignedAgentID != after.AssignedAgentID {
		events = append(events, u.notification(entities.NotificationChanged, entities.AgentAudience(before.AssignedAgentID), after))
	}
	events = append(events, u.pendingWork(before, after)...)
	u.publish(ctx, events)
}

// pendingWork reports the alerts due when a record enters the pool or is
// handed to a new agent.
func (u *InterventionUseCase) pendingWork(before, after entities.Intervention) []entities.Notification {
	var out []entities.Notification
	enteredPool := lifecycle.GroupOf(after.Status) == lifecycle.GroupPool &&
		(before.ID == "" || lifecycle.GroupOf(before.Status) != lifecycle.GroupPool)
	if enteredPool {
		out = append(out, u.notification(entities.NotificationPendingWork, entities.AudienceManagers, after))
	}
	newlyAssigned := after.Status == entities.StatusAssigned && after.AssignedAgentID != "" &&
		(before.Status != entities.StatusAssigned || before.AssignedAgentID != after.AssignedAgentID)
	if newlyAssigned {
		out = append(out, u.notification(entities.NotificationPendingWork, entities.AgentAudience(after.AssignedAgentID), after))
	}
	return out
}

func (u *InterventionUseCase) notification(t entities.NotificationType, audience string, iv entities.Intervention) entities.Notification {
	return entities.Notification{
		Type:           t,
		Audience:       audience,
		InterventionID: iv.ID,
		Status:         iv.Status,
		SubStatus:      iv.SubStatus,
		Priority:       iv.Priority,
		At:             u.now(),
	}
}

func (u *InterventionUseCase) publish(ctx context.Context, events []entities.Notification) {
	if u.sink == nil {
		return
	}
	for _, n := range events {
		if err := u.sink.Publish(context.WithoutCancel(ctx), n); err != nil {
			log.Printf("[intervention][usecase] notification publish failed type=%s audience=%s err=%v", n.Type, n.Audience, err)
		}
	}
}

func visibleTo(iv entities.Intervention, p entities.Principal) bool {
	if p.IsManager() {
		return true
	}
	return p.IsAgent() && p.UserID != "" && iv.AssignedAgentID == p.UserID
}
