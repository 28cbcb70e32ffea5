package entities

import "time"

type NotificationType string

const (
	// NotificationPendingWork: an intervention entered the assignment pool
	// or was assigned to an agent.
	NotificationPendingWork NotificationType = "intervention.pending_work"
	// NotificationChanged: a confirmed transition changed an intervention.
	NotificationChanged NotificationType = "intervention.changed"
)

// AudienceManagers addresses every connected manager. Agents are addressed
// with AgentAudience.
const AudienceManagers = "managers"

func AgentAudience(agentID string) string { return "agent:" + agentID }

// Notification is a user-facing alert handed to the notification sink.
type Notification struct {
	Type           NotificationType   `json:"type"`
	Audience       string             `json:"audience"`
	InterventionID string             `json:"intervention_id"`
	Status         InterventionStatus `json:"status"`
	SubStatus      SubStatus          `json:"sub_status,omitempty"`
	Priority       Priority           `json:"priority,omitempty"`
	At             time.Time          `json:"at"`
}
