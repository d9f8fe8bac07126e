package aac

// Resource is a decoded API payload with no fixed schema. The platform's
// responses are passed through to the agent as-is, so only the fields that
// gate local decisions get typed accessors.
type Resource map[string]interface{}

// Schedule is a decoded schedule resource. The enabled flag is typed because
// it gates deletion; the full payload is preserved for normalization.
type Schedule struct {
	ID      string
	Enabled bool

	raw Resource
}

// ToPlainValue returns the schedule's full payload as a plain mapping.
func (s *Schedule) ToPlainValue() interface{} {
	return s.raw
}

func newSchedule(id string, raw Resource) *Schedule {
	enabled, _ := raw["enabled"].(bool)
	return &Schedule{
		ID:      id,
		Enabled: enabled,
		raw:     raw,
	}
}

// Plan is a decoded plan resource.
type Plan struct {
	ID string

	raw Resource
}

// ToPlainValue returns the plan's full payload as a plain mapping.
func (p *Plan) ToPlainValue() interface{} {
	return p.raw
}

// ScheduleCreateRequest carries the fields accepted when creating a schedule.
type ScheduleCreateRequest struct {
	Name        string        `json:"name,omitempty"`
	Description string        `json:"description,omitempty"`
	Timezone    string        `json:"timezone,omitempty"`
	Enabled     *bool         `json:"enabled,omitempty"`
	Triggers    []interface{} `json:"triggers,omitempty"`
	Tasks       []interface{} `json:"tasks,omitempty"`
}

// Set assigns a single field by its wire name. Unknown keys are reported as
// unset so callers can drop them silently.
func (r *ScheduleCreateRequest) Set(key string, value interface{}) bool {
	switch key {
	case "name":
		r.Name, _ = value.(string)
	case "description":
		r.Description, _ = value.(string)
	case "timezone":
		r.Timezone, _ = value.(string)
	case "enabled":
		if b, ok := value.(bool); ok {
			r.Enabled = &b
		}
	case "triggers":
		r.Triggers, _ = value.([]interface{})
	case "tasks":
		r.Tasks, _ = value.([]interface{})
	default:
		return false
	}
	return true
}

// ScheduleCreateRequestFromMap builds a create request from a tool call
// payload, copying only known fields.
func ScheduleCreateRequestFromMap(data map[string]interface{}) *ScheduleCreateRequest {
	req := &ScheduleCreateRequest{}
	for key, value := range data {
		req.Set(key, value)
	}
	return req
}

// ScheduleUpdateRequest carries the fields accepted when updating a schedule.
type ScheduleUpdateRequest struct {
	Name        string        `json:"name,omitempty"`
	Description string        `json:"description,omitempty"`
	Timezone    string        `json:"timezone,omitempty"`
	Enabled     *bool         `json:"enabled,omitempty"`
	Triggers    []interface{} `json:"triggers,omitempty"`
	Tasks       []interface{} `json:"tasks,omitempty"`
}

// Set assigns a single field by its wire name. Unknown keys are reported as
// unset so callers can drop them silently.
func (r *ScheduleUpdateRequest) Set(key string, value interface{}) bool {
	switch key {
	case "name":
		r.Name, _ = value.(string)
	case "description":
		r.Description, _ = value.(string)
	case "timezone":
		r.Timezone, _ = value.(string)
	case "enabled":
		if b, ok := value.(bool); ok {
			r.Enabled = &b
		}
	case "triggers":
		r.Triggers, _ = value.([]interface{})
	case "tasks":
		r.Tasks, _ = value.([]interface{})
	default:
		return false
	}
	return true
}

// ScheduleUpdateRequestFromMap builds an update request from a tool call
// payload, copying only known fields.
func ScheduleUpdateRequestFromMap(data map[string]interface{}) *ScheduleUpdateRequest {
	req := &ScheduleUpdateRequest{}
	for key, value := range data {
		req.Set(key, value)
	}
	return req
}
