package http

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/GriffinCanCode/MathForDevs/backend/internal/providers/math/trig"
	"github.com/GriffinCanCode/MathForDevs/backend/internal/shared/types"
)

const (
	maxIDLength     = 128
	maxIntentLength = 1000
)

var (
	idPattern     = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)
	toolIDPattern = regexp.MustCompile(`^[a-z0-9-]+(\.[a-z0-9_-]+)+$`)
)

// parseAngle reads a finite angle in degrees
func parseAngle(raw string) (float64, error) {
	angle, err := trig.ParseAngle(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid angle parameter: %w", err)
	}
	return angle, nil
}

func validateID(value, field string) error {
	if value == "" {
		return fmt.Errorf("%s is required", field)
	}
	if len(value) > maxIDLength {
		return fmt.Errorf("%s too long (max %d)", field, maxIDLength)
	}
	if !idPattern.MatchString(value) {
		return fmt.Errorf("%s contains invalid characters", field)
	}
	return nil
}

func validateToolID(toolID string) error {
	if toolID == "" {
		return errors.New("tool_id is required")
	}
	if len(toolID) > maxIDLength {
		return fmt.Errorf("tool_id too long (max %d)", maxIDLength)
	}
	if !toolIDPattern.MatchString(toolID) {
		return fmt.Errorf("invalid tool_id: %q", toolID)
	}
	return nil
}

func validateCategory(category string) error {
	switch types.Category(category) {
	case types.CategoryMath, types.CategoryContent, types.CategorySystem:
		return nil
	default:
		return fmt.Errorf("unknown category: %q", category)
	}
}

func validateIntent(intent string) error {
	if strings.TrimSpace(intent) == "" {
		return errors.New("intent is required")
	}
	if len(intent) > maxIntentLength {
		return fmt.Errorf("intent too long (max %d)", maxIntentLength)
	}
	return nil
}

func serviceOf(toolID string) string {
	serviceID, _, _ := strings.Cut(toolID, ".")
	return serviceID
}
