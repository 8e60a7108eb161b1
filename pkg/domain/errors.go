package domain

import (
	"errors"
	"fmt"
)

// ErrConfig matches every *ConfigError via errors.Is.
var ErrConfig = errors.New("invalid network configuration")

// ErrUnreachableTarget matches every *UnreachableTargetError via errors.Is.
var ErrUnreachableTarget = errors.New("unreachable target")

// ErrSimulationBoundExceeded matches every *BoundExceededError via errors.Is.
var ErrSimulationBoundExceeded = errors.New("simulation bound exceeded")

// ErrConditionUnsatisfiable is returned when the network returned to an earlier global state
// without the search condition ever holding, so it never will.
var ErrConditionUnsatisfiable = errors.New("condition can never be satisfied")

// ErrNotPeriodic is returned by the period shortcut when the network does not have the
// independent-counters shape it relies on.
var ErrNotPeriodic = errors.New("network is not periodic in the expected shape")

// ConfigError reports a malformed or contradictory network description.
type ConfigError struct {
	Line   int // 1-based; 0 when the error is not tied to a line
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
	}
	return e.Reason
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// UnreachableTargetError is returned when a search targets a node that does not exist.
type UnreachableTargetError struct {
	Target string
}

func (e *UnreachableTargetError) Error() string {
	return fmt.Sprintf("target module %q does not exist", e.Target)
}

func (e *UnreachableTargetError) Is(target error) bool {
	return target == ErrUnreachableTarget
}

// Bounds that can be exceeded.
const (
	BoundPresses = "presses"
	BoundPulses  = "pulses"
)

// BoundExceededError is returned when a safety cap stops a simulation.
type BoundExceededError struct {
	Bound string // BoundPresses or BoundPulses
	Limit int
}

func (e *BoundExceededError) Error() string {
	return fmt.Sprintf("simulation exceeded %d %s", e.Limit, e.Bound)
}

func (e *BoundExceededError) Is(target error) bool {
	return target == ErrSimulationBoundExceeded
}
