package entities

type Role string

const (
	RoleAgent   Role = "agent"
	RoleManager Role = "manager"
)

// Principal is the explicit credential passed into every operation.
// Token is the bearer credential forwarded to the backing service.
type Principal struct {
	UserID string `json:"user_id"`
	Name   string `json:"name,omitempty"`
	Role   Role   `json:"role"`
	Token  string `json:"-"`
}

func (p Principal) IsManager() bool { return p.Role == RoleManager }

func (p Principal) IsAgent() bool { return p.Role == RoleAgent }
