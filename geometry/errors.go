// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package geometry

import (
	"errors"
	"fmt"
)

// Structural error codes. These mark unusable input rejected before any
// geometry or policy evaluation; manufacturing-rule breaches are reported
// as Violations instead.
const (
	CodeNonPositiveLength   = "non_positive_length"
	CodeNegativePosition    = "negative_position"
	CodeNonPositiveDiameter = "non_positive_diameter"
	CodeDiameterTooLarge    = "diameter_too_large"
	CodeUnknownSectionType  = "unknown_section_type"
	CodePositionOutOfRange  = "position_out_of_range"
	CodePastDesignEnd       = "section_past_design_end"
)

// DomainError is a hard rejection of structurally invalid input.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Code + ": " + e.Message
}

func domainErrorf(code, format string, args ...any) *DomainError {
	return &DomainError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// AsDomainError unwraps err into a DomainError, or returns nil.
func AsDomainError(err error) *DomainError {
	var de *DomainError
	if errors.As(err, &de) {
		return de
	}
	return nil
}

// CheckSection rejects structurally unusable section records at the
// ingestion boundary. Returns the first problem found as a DomainError.
func CheckSection(s Section) error {
	if _, ok := typeRank[s.Type]; !ok {
		return domainErrorf(CodeUnknownSectionType,
			"unknown section type %q", s.Type)
	}
	if s.StartPositionIn < 0 {
		return domainErrorf(CodeNegativePosition,
			"start position cannot be negative: %g", s.StartPositionIn)
	}
	if s.EndPositionIn <= s.StartPositionIn {
		return domainErrorf(CodeNonPositiveLength,
			"start position %g must be less than end position %g",
			s.StartPositionIn, s.EndPositionIn)
	}
	if s.StartDiameterMM <= 0 || s.EndDiameterMM <= 0 {
		return domainErrorf(CodeNonPositiveDiameter,
			"outer diameters must be positive")
	}
	if s.StartDiameterMM > MaxStructuralDiameterMM || s.EndDiameterMM > MaxStructuralDiameterMM {
		return domainErrorf(CodeDiameterTooLarge,
			"outer diameters cannot exceed %gmm", MaxStructuralDiameterMM)
	}
	return nil
}
