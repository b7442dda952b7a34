package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/GriffinCanCode/MathForDevs/backend/internal/infrastructure/logging"
	"github.com/GriffinCanCode/MathForDevs/backend/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/MathForDevs/backend/internal/shared/types"
	"go.uber.org/zap"
)

// DefaultDiscoverLimit caps Discover when no limit is given
const DefaultDiscoverLimit = 5

// Registry manages service discovery and execution
type Registry struct {
	services sync.Map
	metrics  *monitoring.Metrics
	logger   *logging.Logger
}

// Provider interface for service implementations
type Provider interface {
	Definition() types.Service
	Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error)
}

// Option configures a Registry
type Option func(*Registry)

// WithMetrics times every Execute through metrics
func WithMetrics(m *monitoring.Metrics) Option {
	return func(r *Registry) { r.metrics = m }
}

// WithLogger logs failed executions
func WithLogger(l *logging.Logger) Option {
	return func(r *Registry) { r.logger = l.Named("registry") }
}

// NewRegistry creates a new service registry
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a service provider
func (r *Registry) Register(provider Provider) error {
	def := provider.Definition()
	if def.ID == "" {
		return fmt.Errorf("service ID cannot be empty")
	}
	if strings.Contains(def.ID, ".") {
		return fmt.Errorf("service ID cannot contain '.': %s", def.ID)
	}
	if _, loaded := r.services.LoadOrStore(def.ID, provider); loaded {
		return fmt.Errorf("service already registered: %s", def.ID)
	}
	return nil
}

// Unregister removes a service provider
func (r *Registry) Unregister(serviceID string) {
	r.services.Delete(serviceID)
}

// Get retrieves a service by ID
func (r *Registry) Get(serviceID string) (Provider, bool) {
	val, ok := r.services.Load(serviceID)
	if !ok {
		return nil, false
	}
	return val.(Provider), true
}

// List returns registered services ordered by ID
func (r *Registry) List(category *types.Category) []types.Service {
	services := []types.Service{}
	r.services.Range(func(_, value interface{}) bool {
		def := value.(Provider).Definition()
		if category == nil || def.Category == *category {
			services = append(services, def)
		}
		return true
	})
	sort.Slice(services, func(i, j int) bool {
		return services[i].ID < services[j].ID
	})
	return services
}

// Discover finds relevant services for a given intent
func (r *Registry) Discover(intent string, limit int) []types.Service {
	type scoredService struct {
		service types.Service
		score   float64
	}

	if limit <= 0 {
		limit = DefaultDiscoverLimit
	}

	intentLower := strings.ToLower(intent)
	var results []scoredService

	r.services.Range(func(_, value interface{}) bool {
		def := value.(Provider).Definition()
		if score := calculateRelevance(intentLower, def); score > 0 {
			results = append(results, scoredService{service: def, score: score})
		}
		return true
	})

	// Sort by score descending, ID for ties
	sort.Slice(results, func(i, j int) bool {
		if results[i].score != results[j].score {
			return results[i].score > results[j].score
		}
		return results[i].service.ID < results[j].service.ID
	})

	// Return top N
	output := make([]types.Service, 0, limit)
	for i := 0; i < len(results) && i < limit; i++ {
		output = append(output, results[i].service)
	}

	return output
}

// Execute runs a service tool. The service is the tool ID up to the first dot.
func (r *Registry) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	serviceID, _, ok := strings.Cut(toolID, ".")
	if !ok || serviceID == "" {
		return &types.Result{
			Success: false,
			Error:   stringPtr("invalid tool ID format"),
		}, fmt.Errorf("invalid tool ID format: %s", toolID)
	}

	provider, found := r.Get(serviceID)
	if !found {
		return &types.Result{
			Success: false,
			Error:   stringPtr(fmt.Sprintf("service not found: %s", serviceID)),
		}, fmt.Errorf("service not found: %s", serviceID)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var timer *monitoring.Timer
	if r.metrics != nil {
		timer = monitoring.NewTimer(r.metrics, serviceID, toolID)
	}

	result, err := provider.Execute(ctx, toolID, params, appCtx)
	switch {
	case err != nil:
		timer.Stop("error")
		if r.metrics != nil {
			r.metrics.RecordServiceError(serviceID, toolID, "execute")
		}
		r.logger.Error("Tool execution failed", zap.String("tool", toolID), zap.Error(err))
	case result == nil || !result.Success:
		timer.Stop("failure")
		if result != nil && result.Error != nil {
			r.logger.Debug("Tool returned failure", zap.String("tool", toolID), zap.String("error", *result.Error))
		}
	default:
		timer.Stop("success")
	}
	return result, err
}

// Stats returns registry statistics
func (r *Registry) Stats() map[string]interface{} {
	var total, totalTools int
	categories := make(map[string]int)

	r.services.Range(func(_, value interface{}) bool {
		def := value.(Provider).Definition()
		total++
		totalTools += len(def.Tools)
		categories[string(def.Category)]++
		return true
	})

	return map[string]interface{}{
		"total_services": total,
		"total_tools":    totalTools,
		"categories":     categories,
	}
}

func calculateRelevance(intent string, service types.Service) float64 {
	score := 0.0

	// Check service name and ID
	if strings.Contains(intent, service.ID) || strings.Contains(intent, strings.ToLower(service.Name)) {
		score += 10.0
	}

	// Check description words
	for _, word := range strings.Fields(strings.ToLower(service.Description)) {
		word = strings.Trim(word, "(),.")
		if len(word) > 2 && strings.Contains(intent, word) {
			score += 5.0
		}
	}

	// Check capabilities
	for _, cap := range service.Capabilities {
		capClean := strings.ReplaceAll(strings.ToLower(cap), "_", " ")
		capClean = strings.ReplaceAll(capClean, "-", " ")
		if strings.Contains(intent, capClean) {
			score += 3.0
		}
	}

	// Check tool names
	for _, tool := range service.Tools {
		if name := strings.ToLower(tool.Name); name != "" && strings.Contains(intent, name) {
			score += 4.0
		}
	}

	// Check category
	if strings.Contains(intent, string(service.Category)) {
		score += 2.0
	}

	return score
}

func stringPtr(s string) *string {
	return &s
}
