package entities

type AgentAvailability string

const (
	AgentAvailable      AgentAvailability = "available"
	AgentOnIntervention AgentAvailability = "on_intervention"
	AgentOnBreak        AgentAvailability = "on_break"
)

func (a AgentAvailability) Valid() bool {
	switch a {
	case AgentAvailable, AgentOnIntervention, AgentOnBreak:
		return true
	}
	return false
}

// AgentAccountStatus tells whether an agent account may log in.
type AgentAccountStatus string

const (
	AgentActive   AgentAccountStatus = "active"
	AgentInactive AgentAccountStatus = "inactive"
)

func (s AgentAccountStatus) Valid() bool {
	return s == AgentActive || s == AgentInactive
}

// Agent is a field technician. Interventions reference agents by id; the
// backing service updates availability as a side effect of transitions.
type Agent struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Phone        string             `json:"phone,omitempty"`
	Email        string             `json:"email,omitempty"`
	Availability AgentAvailability  `json:"availability"`
	Status       AgentAccountStatus `json:"status,omitempty"`
	Latitude     *float64           `json:"latitude,omitempty"`
	Longitude    *float64           `json:"longitude,omitempty"`
}

func (a Agent) IsAvailable() bool {
	return a.Availability == AgentAvailable
}
