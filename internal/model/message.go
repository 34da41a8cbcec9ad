package model

import "fmt"

type CalculationMessage struct {
	ID      int    `json:"id"`
	Level   string `json:"level"`
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

const (
	LevelCritical = "CRITICAL"
	LevelWarning  = "WARNING"
)

// InvalidAssumptionError reports a configuration value that would make the
// calculation undefined (division by zero, unbounded loops). These are
// rejected before any projection runs rather than surfacing as NaN.
type InvalidAssumptionError struct {
	Field  string
	Reason string
}

func (e *InvalidAssumptionError) Error() string {
	return fmt.Sprintf("invalid assumption %s: %s", e.Field, e.Reason)
}
