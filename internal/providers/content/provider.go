package content

import (
	"context"
	"errors"
	"fmt"

	"github.com/GriffinCanCode/MathForDevs/backend/internal/content"
	"github.com/GriffinCanCode/MathForDevs/backend/internal/shared/types"
)

// Provider exposes the topic catalog as a service
type Provider struct {
	catalog *content.Catalog
}

// NewProvider creates a content provider over catalog
func NewProvider(catalog *content.Catalog) *Provider {
	return &Provider{catalog: catalog}
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          "content",
		Name:        "Content Service",
		Description: "Topic catalog for the learning site: topics, sections and widgets",
		Category:    types.CategoryContent,
		Capabilities: []string{
			"topics",
			"sections",
			"widgets",
		},
		Tools: []types.Tool{
			{
				ID:          "content.topics.list",
				Name:        "List Topics",
				Description: "List all topics in display order",
				Parameters:  []types.Parameter{},
				Returns:     "array",
			},
			{
				ID:          "content.topics.get",
				Name:        "Get Topic",
				Description: "Get a topic with its sections and widgets",
				Parameters: []types.Parameter{
					{Name: "id", Type: "string", Description: "Topic ID", Required: true},
				},
				Returns: "Topic",
			},
			{
				ID:          "content.topics.widget",
				Name:        "Find Widget",
				Description: "List the topics that embed a widget",
				Parameters: []types.Parameter{
					{Name: "widget", Type: "string", Description: "Widget ID", Required: true},
				},
				Returns: "array",
			},
		},
		DataModels: []types.DataModel{
			{
				Name: "Topic",
				Fields: map[string]string{
					"id":       "string",
					"title":    "string",
					"summary":  "string",
					"order":    "number",
					"widgets":  "array",
					"sections": "array",
				},
			},
		},
	}
}

// Execute runs a content tool
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	if params == nil {
		params = map[string]interface{}{}
	}

	switch toolID {
	case "content.topics.list":
		return p.list()
	case "content.topics.get":
		return p.get(params)
	case "content.topics.widget":
		return p.widget(params)
	default:
		return failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

func (p *Provider) list() (*types.Result, error) {
	topics := p.catalog.List()
	return success(map[string]interface{}{"topics": topics, "count": len(topics)})
}

func (p *Provider) get(params map[string]interface{}) (*types.Result, error) {
	id, ok := params["id"].(string)
	if !ok || id == "" {
		return failure("id parameter required")
	}

	topic, err := p.catalog.Get(id)
	if errors.Is(err, content.ErrTopicNotFound) {
		return failure(fmt.Sprintf("topic not found: %s", id))
	}
	if err != nil {
		return nil, err
	}
	return success(map[string]interface{}{"topic": topic})
}

func (p *Provider) widget(params map[string]interface{}) (*types.Result, error) {
	widget, ok := params["widget"].(string)
	if !ok || widget == "" {
		return failure("widget parameter required")
	}
	topics := p.catalog.ForWidget(widget)
	return success(map[string]interface{}{"widget": widget, "topics": topics})
}

// Helper functions
func success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

func failure(message string) (*types.Result, error) {
	errMsg := message
	return &types.Result{Success: false, Error: &errMsg}, nil
}
