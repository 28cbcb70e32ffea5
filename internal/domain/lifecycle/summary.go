package lifecycle

import "depannel_dispatch/internal/domain/entities"

// Group is the aggregate bucket an intervention is counted in.
type Group string

const (
	GroupPool      Group = "pool"
	GroupAssigned  Group = "assigned"
	GroupActive    Group = "active"
	GroupCompleted Group = "completed"
	GroupClosed    Group = "closed"
)

// GroupOf maps a status to its aggregate bucket. pending and refused are
// counted together: a refused intervention is back in the assignment pool.
func GroupOf(s entities.InterventionStatus) Group {
	switch s {
	case entities.StatusPending, entities.StatusRefused:
		return GroupPool
	case entities.StatusAssigned:
		return GroupAssigned
	case entities.StatusAccepted, entities.StatusInProgress:
		return GroupActive
	case entities.StatusCompleted:
		return GroupCompleted
	case entities.StatusClosed:
		return GroupClosed
	}
	return ""
}

func ParseGroup(s string) (Group, bool) {
	switch g := Group(s); g {
	case GroupPool, GroupAssigned, GroupActive, GroupCompleted, GroupClosed:
		return g, true
	}
	return "", false
}

// Summary holds the manager-facing counts.
type Summary struct {
	Pool      int `json:"pool"`
	Assigned  int `json:"assigned"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
	Closed    int `json:"closed"`
	Total     int `json:"total"`
}

// AgentTabs holds the counts behind the agent dashboard tabs.
type AgentTabs struct {
	ToAccept   int `json:"to_accept"`
	InProgress int `json:"in_progress"`
	Done       int `json:"done"`
}

func Summarize(list []entities.Intervention) Summary {
	var s Summary
	for _, iv := range list {
		switch GroupOf(iv.Status) {
		case GroupPool:
			s.Pool++
		case GroupAssigned:
			s.Assigned++
		case GroupActive:
			s.Active++
		case GroupCompleted:
			s.Completed++
		case GroupClosed:
			s.Closed++
		default:
			continue
		}
		s.Total++
	}
	return s
}

// SummarizeForAgent counts only the interventions assigned to agentID.
func SummarizeForAgent(list []entities.Intervention, agentID string) AgentTabs {
	var tabs AgentTabs
	for _, iv := range list {
		if agentID == "" || iv.AssignedAgentID != agentID {
			continue
		}
		switch GroupOf(iv.Status) {
		case GroupAssigned:
			tabs.ToAccept++
		case GroupActive:
			tabs.InProgress++
		case GroupCompleted, GroupClosed:
			tabs.Done++
		}
	}
	return tabs
}
