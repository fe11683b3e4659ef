package engine

import (
	"errors"

	"rnadesign/core/anneal"
	"rnadesign/core/energy"
	"rnadesign/core/matrix"
)

// Error taxonomy of the core. All values work with errors.Is; typed details
// (*matrix.PreconditionError, *anneal.DegeneracyError) with errors.As.
var (
	ErrAllocation        = matrix.ErrAllocation
	ErrInvalidAlphabet   = energy.ErrInvalidAlphabet
	ErrPrecondition      = matrix.ErrPrecondition
	ErrNumericDegeneracy = anneal.ErrNumericDegeneracy

	// ErrNotCollated is returned by GetSequence before any collator ran.
	ErrNotCollated = errors.New("sequence not collated")
)
