package depannelapi

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"depannel_dispatch/internal/domain/entities"
)

// wireID accepts numeric and string identifiers.
type wireID string

func (id *wireID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = wireID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = wireID(n.String())
	return nil
}

// wireTime accepts RFC 3339 and "YYYY-MM-DD HH:mm:ss" timestamps.
type wireTime time.Time

var timeLayouts = []string{time.RFC3339Nano, "2006-01-02 15:04:05", "2006-01-02T15:04:05", "2006-01-02"}

func (t *wireTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil || strings.TrimSpace(s) == "" {
		*t = wireTime{}
		return nil
	}
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
			*t = wireTime(parsed.UTC())
			return nil
		}
	}
	*t = wireTime{}
	return nil
}

type wireClient struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type wireAgentRef struct {
	ID    wireID `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type wireIntervention struct {
	ID            wireID        `json:"id"`
	Reference     string        `json:"reference"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Address       string        `json:"address"`
	Client        *wireClient   `json:"client"`
	ClientName    string        `json:"client_name"`
	ClientPhone   string        `json:"client_phone"`
	Latitude      *float64      `json:"latitude"`
	Longitude     *float64      `json:"longitude"`
	ProblemTypeID wireID        `json:"problem_type_id"`
	Status        string        `json:"status"`
	SubStatus     string        `json:"sub_status"`
	Priority      string        `json:"priority_level"`
	AgentID       wireID        `json:"agent_id"`
	Agent         *wireAgentRef `json:"agent"`
	RefusalReason string        `json:"refusal_reason"`
	CreatedAt     wireTime      `json:"created_at"`
	UpdatedAt     wireTime      `json:"updated_at"`
}

func (w wireIntervention) toEntity() entities.Intervention {
	iv := entities.Intervention{
		ID:              string(w.ID),
		Reference:       w.Reference,
		Title:           w.Title,
		Description:     w.Description,
		Address:         w.Address,
		ClientName:      w.ClientName,
		ClientPhone:     w.ClientPhone,
		Latitude:        w.Latitude,
		Longitude:       w.Longitude,
		ProblemTypeID:   string(w.ProblemTypeID),
		Priority:        normalizePriority(w.Priority),
		AssignedAgentID: string(w.AgentID),
		RefusalReason:   strings.TrimSpace(w.RefusalReason),
		CreatedAt:       time.Time(w.CreatedAt),
		UpdatedAt:       time.Time(w.UpdatedAt),
	}
	if w.Client != nil {
		if iv.ClientName == "" {
			iv.ClientName = w.Client.Name
		}
		if iv.ClientPhone == "" {
			iv.ClientPhone = w.Client.Phone
		}
		if iv.Address == "" {
			iv.Address = w.Client.Address
		}
	}
	if iv.AssignedAgentID == "" && w.Agent != nil {
		iv.AssignedAgentID = string(w.Agent.ID)
	}
	iv.Status, iv.SubStatus = normalizeStatus(w.Status, w.SubStatus)
	return iv
}

type wireAgent struct {
	ID                 wireID   `json:"id"`
	Name               string   `json:"name"`
	Phone              string   `json:"phone"`
	Email              string   `json:"email"`
	Availability       string   `json:"availability"`
	AvailabilityStatus string   `json:"availability_status"`
	Status             string   `json:"status"`
	Latitude           *float64 `json:"latitude"`
	Longitude          *float64 `json:"longitude"`
}

// toEntity maps an agent. Agents returned by the availability endpoint
// omit their availability; implied marks them available. The service uses
// status both for the account state and, on older payloads, for
// availability.
func (w wireAgent) toEntity(implied entities.AgentAvailability) entities.Agent {
	a := entities.Agent{
		ID:           string(w.ID),
		Name:         w.Name,
		Phone:        w.Phone,
		Email:        w.Email,
		Availability: implied,
		Latitude:     w.Latitude,
		Longitude:    w.Longitude,
	}
	switch normalizeToken(firstNonEmpty(w.AvailabilityStatus, w.Availability, w.Status)) {
	case "available", "disponible", "active":
		a.Availability = entities.AgentAvailable
	case "on_intervention", "busy", "occupe", "en_intervention":
		a.Availability = entities.AgentOnIntervention
	case "on_break", "pause", "en_pause":
		a.Availability = entities.AgentOnBreak
	}
	switch normalizeToken(w.Status) {
	case "active", "actif":
		a.Status = entities.AgentActive
	case "inactive", "inactif", "disabled":
		a.Status = entities.AgentInactive
	}
	return a
}

type agentBody struct {
	Name               string   `json:"name"`
	Email              string   `json:"email"`
	Password           string   `json:"password,omitempty"`
	Phone              string   `json:"phone"`
	Role               string   `json:"role"`
	Status             string   `json:"status,omitempty"`
	AvailabilityStatus string   `json:"availability_status,omitempty"`
	Latitude           *float64 `json:"latitude,omitempty"`
	Longitude          *float64 `json:"longitude,omitempty"`
}

func toAgentBody(a entities.Agent, password string) agentBody {
	return agentBody{
		Name:               a.Name,
		Email:              a.Email,
		Password:           password,
		Phone:              a.Phone,
		Role:               string(entities.RoleAgent),
		Status:             string(a.Status),
		AvailabilityStatus: string(a.Availability),
		Latitude:           a.Latitude,
		Longitude:          a.Longitude,
	}
}

type wireQuoteItem struct {
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type wireQuote struct {
	ID             wireID          `json:"id"`
	InterventionID wireID          `json:"intervention_id"`
	Items          []wireQuoteItem `json:"items"`
	ValidUntil     wireTime        `json:"valid_until"`
	CreatedAt      wireTime        `json:"created_at"`
	UpdatedAt      wireTime        `json:"updated_at"`
}

// toEntity drops any server-side total; it is recomputed from the items.
func (w wireQuote) toEntity() entities.Quote {
	q := entities.Quote{
		ID:             string(w.ID),
		InterventionID: string(w.InterventionID),
		Items:          make([]entities.QuoteItem, 0, len(w.Items)),
		ValidUntil:     time.Time(w.ValidUntil),
		CreatedAt:      time.Time(w.CreatedAt),
		UpdatedAt:      time.Time(w.UpdatedAt),
	}
	for _, it := range w.Items {
		q.Items = append(q.Items, entities.QuoteItem{Name: it.Name, Quantity: it.Quantity, UnitPrice: it.UnitPrice})
	}
	return q.Recompute()
}

type quoteBody struct {
	InterventionID any             `json:"intervention_id"`
	Items          []wireQuoteItem `json:"items"`
	Total          float64         `json:"total"`
	ValidUntil     string          `json:"valid_until,omitempty"`
}

func toQuoteBody(q entities.Quote) quoteBody {
	q = q.Recompute()
	body := quoteBody{InterventionID: numericID(q.InterventionID), Total: q.Total, Items: make([]wireQuoteItem, 0, len(q.Items))}
	for _, it := range q.Items {
		body.Items = append(body.Items, wireQuoteItem{Name: it.Name, Quantity: it.Quantity, UnitPrice: it.UnitPrice})
	}
	if !q.ValidUntil.IsZero() {
		body.ValidUntil = q.ValidUntil.UTC().Format("2006-01-02 15:04:05")
	}
	return body
}

type wireProblemType struct {
	ID            wireID `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Priority      string `json:"priority"`
	PriorityLevel string `json:"priority_level"`
}

func (w wireProblemType) toEntity() entities.ProblemType {
	return entities.ProblemType{
		ID:          string(w.ID),
		Name:        w.Name,
		Description: w.Description,
		Priority:    normalizePriority(firstNonEmpty(w.PriorityLevel, w.Priority)),
	}
}

type problemTypeBody struct {
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	PriorityLevel string `json:"priority_level"`
}

type wireUser struct {
	ID   wireID `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type wireLogin struct {
	Success     *bool     `json:"success"`
	Message     string    `json:"message"`
	AccessToken string    `json:"access_token"`
	Token       string    `json:"token"`
	User        *wireUser `json:"user"`
	Data        *struct {
		AccessToken string    `json:"access_token"`
		Token       string    `json:"token"`
		User        *wireUser `json:"user"`
	} `json:"data"`
}

// normalizeStatus maps the service's inconsistent vocabulary onto the
// closed enumeration. A sub-status only survives on active records.
// Unknown statuses are kept verbatim so they fail every transition.
func normalizeStatus(rawStatus, rawSub string) (entities.InterventionStatus, entities.SubStatus) {
	var status entities.InterventionStatus
	sub := entities.SubStatusNone

	switch normalizeToken(rawStatus) {
	case "pending", "en_attente", "nouvelle", "new", "open":
		status = entities.StatusPending
	case "assigned", "assignee":
		status = entities.StatusAssigned
	case "accepted", "acceptee":
		status = entities.StatusAccepted
	case "in_progress", "en_cours", "started":
		status = entities.StatusInProgress
	case "en_route":
		status, sub = entities.StatusAccepted, entities.SubStatusEnRoute
	case "arrived", "sur_place":
		status, sub = entities.StatusAccepted, entities.SubStatusArrived
	case "completed", "terminee", "done", "resolved":
		status = entities.StatusCompleted
	case "closed", "cloturee", "fermee":
		status = entities.StatusClosed
	case "refused", "refusee", "rejected", "declined":
		status = entities.StatusRefused
	default:
		status = entities.InterventionStatus(normalizeToken(rawStatus))
	}

	switch normalizeToken(rawSub) {
	case "en_route":
		sub = entities.SubStatusEnRoute
	case "arrived", "sur_place":
		sub = entities.SubStatusArrived
	case "terminee", "completed":
		// completion marker, not a sub-status
	}
	if !status.Active() {
		sub = entities.SubStatusNone
	}
	return status, sub
}

func normalizePriority(raw string) entities.Priority {
	switch normalizeToken(raw) {
	case "low", "basse", "faible":
		return entities.PriorityLow
	case "high", "haute", "urgent", "elevee":
		return entities.PriorityHigh
	case "medium", "moyenne", "normal", "normale":
		return entities.PriorityMedium
	}
	return entities.PriorityMedium
}

func normalizeRole(raw string) entities.Role {
	switch normalizeToken(raw) {
	case "manager", "admin", "superviseur", "gestionnaire":
		return entities.RoleManager
	case "agent", "technicien", "technician":
		return entities.RoleAgent
	}
	return entities.Role(normalizeToken(raw))
}

var accentFolder = strings.NewReplacer("é", "e", "è", "e", "ê", "e", "ô", "o", "à", "a", "É", "e")

// normalizeToken lowercases, folds the accents used by the service and
// turns '-' and ' ' into '_'.
func normalizeToken(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = accentFolder.Replace(s)
	return strings.NewReplacer("-", "_", " ", "_").Replace(s)
}

// numericID sends ids as numbers when they are numeric, matching the
// service's integer keys.
func numericID(id string) any {
	if n, err := strconv.ParseInt(id, 10, 64); err == nil {
		return n
	}
	return id
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// unwrap strips the response envelopes the service uses: {data: …},
// {intervention: …} and friends, possibly nested once for paginated lists.
func unwrap(data []byte, keys ...string) json.RawMessage {
	raw := json.RawMessage(bytes.TrimSpace(data))
	for depth := 0; depth < 2; depth++ {
		if len(raw) == 0 || raw[0] != '{' {
			return raw
		}
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			return raw
		}
		next, ok := pick(obj, keys)
		if !ok {
			return raw
		}
		raw = next
	}
	return raw
}

func pick(obj map[string]json.RawMessage, keys []string) (json.RawMessage, bool) {
	for _, k := range keys {
		v, ok := obj[k]
		if !ok {
			continue
		}
		v = bytes.TrimSpace(v)
		if len(v) == 0 || string(v) == "null" {
			continue
		}
		return v, true
	}
	return nil, false
}
