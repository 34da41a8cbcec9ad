// Package levers measures which single assumption change moves the outcome
// most. Each lever perturbs exactly one input, re-runs the full projection
// and sale optimizer, and records the delta against the unperturbed baseline.
package levers

import "roadmap-engine/internal/model"

// Inputs is the complete simulation input set a lever may perturb.
type Inputs struct {
	Properties    []model.Property
	CashAllocated float64
	Assumptions   model.Assumptions
	TargetYears   int
}

// Lever defines the contract for all perturbation implementations.
type Lever interface {
	ID() string
	Name() string
	Change() string
	Controllable() bool
	Apply(in Inputs) Inputs
}
