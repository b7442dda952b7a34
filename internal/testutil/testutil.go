// Package testutil holds shared fixtures for provider and registry tests.
package testutil

import (
	"context"
	"testing"

	"github.com/GriffinCanCode/MathForDevs/backend/internal/shared/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockServiceProvider satisfies service.Provider through testify/mock.
type MockServiceProvider struct {
	mock.Mock
}

func (m *MockServiceProvider) Definition() types.Service {
	return m.Called().Get(0).(types.Service)
}

func (m *MockServiceProvider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	args := m.Called(ctx, toolID, params, appCtx)
	result, _ := args.Get(0).(*types.Result)
	return result, args.Error(1)
}

// NewMockServiceProvider returns a mock whose Definition is a one-tool
// service with the given ID. Execute expectations are left to the caller.
func NewMockServiceProvider(t *testing.T, serviceID string) *MockServiceProvider {
	t.Helper()
	m := &MockServiceProvider{}
	m.On("Definition").Return(CreateTestService(t, serviceID, types.CategoryContent)).Maybe()
	return m
}

// CreateTestService builds a minimal service definition with one tool, "<id>.test".
func CreateTestService(t *testing.T, id string, category types.Category) types.Service {
	t.Helper()
	tool := types.Tool{
		ID:          id + ".test",
		Name:        "test",
		Description: "Test tool",
		Parameters:  []types.Parameter{},
		Returns:     "object",
	}
	return types.Service{
		ID:           id,
		Name:         "Test Service",
		Description:  "A test service for unit testing",
		Category:     category,
		Capabilities: []string{"test"},
		Tools:        []types.Tool{tool},
	}
}

// AssertSuccess stops the test unless result is a successful Result.
func AssertSuccess(t *testing.T, result *types.Result) {
	t.Helper()
	require.NotNil(t, result, "result is nil")
	if !result.Success {
		msg := "<nil>"
		if result.Error != nil {
			msg = *result.Error
		}
		require.Failf(t, "expected success", "got error: %s", msg)
	}
}

// AssertError stops the test unless result is a failure carrying a message.
func AssertError(t *testing.T, result *types.Result) {
	t.Helper()
	require.NotNil(t, result, "result is nil")
	require.False(t, result.Success, "expected failure, got success")
	require.NotNil(t, result.Error, "failure without message")
}

// AssertDataField checks result succeeded and Data[field] equals expected.
func AssertDataField(t *testing.T, result *types.Result, field string, expected interface{}) {
	t.Helper()
	AssertSuccess(t, result)
	require.NotNil(t, result.Data, "result data is nil")
	actual, ok := result.Data[field]
	require.Truef(t, ok, "field %s not in result data", field)
	require.Equalf(t, expected, actual, "field %s", field)
}
