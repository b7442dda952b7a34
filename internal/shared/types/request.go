package types

// ExecuteRequest represents a service execution request
type ExecuteRequest struct {
	ToolID string                 `json:"tool_id" binding:"required"`
	Params map[string]interface{} `json:"params"`
	Widget *string                `json:"widget,omitempty"`
}

// DiscoverRequest represents a service discovery request
type DiscoverRequest struct {
	Intent string `json:"intent" binding:"required"`
	Limit  int    `json:"limit"`
}

// WSMessage is a widget state-change event sent over the stream.
type WSMessage struct {
	Type   string `json:"type"`
	Widget string `json:"widget,omitempty"`
	Value  string `json:"value,omitempty"`
}
