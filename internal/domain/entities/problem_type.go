package entities

// ProblemType is a catalog entry used by the intake flow to classify
// interventions and seed their default priority.
type ProblemType struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Priority    Priority `json:"priority"`
}
