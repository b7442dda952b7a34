package types

// Category groups services for listing and filtering.
type Category string

const (
	CategoryMath    Category = "math"
	CategoryContent Category = "content"
	CategorySystem  Category = "system"
)

// Service is the self-description a provider registers: its tools and the
// shapes of the data they return.
type Service struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Category     Category    `json:"category"`
	Capabilities []string    `json:"capabilities"`
	Tools        []Tool      `json:"tools"`
	DataModels   []DataModel `json:"data_models,omitempty"`
}

// Tool is one callable operation. ID is always "<service>.<name>".
type Tool struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Parameters  []Parameter `json:"parameters"`
	Returns     string      `json:"returns"`
}

type Parameter struct {
	Name        string `json:"name"`
	Type        string `json:"type"` // "string", "number", "array", "object"
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

// DataModel documents a result shape, field name to type.
type DataModel struct {
	Name   string            `json:"name"`
	Fields map[string]string `json:"fields"`
}

// Context carries caller metadata into a tool call. All fields are optional.
type Context struct {
	Widget    *string `json:"widget,omitempty"`
	RequestID *string `json:"request_id,omitempty"`
	TraceID   *string `json:"trace_id,omitempty"`
}

// Result is what every tool returns. Failures are data: Success is false
// and Error holds the message, with a nil Go error.
type Result struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *string                `json:"error,omitempty"`
}
