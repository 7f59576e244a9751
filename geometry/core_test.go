// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package geometry

import (
	"math"
	"reflect"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name    string
		section Section
		wantErr string
		check   func(t *testing.T, d DerivedSectionGeometry)
	}{
		{
			name: "forearm with gentle taper",
			section: Section{
				ID:              "sec-1",
				Type:            TypeForearm,
				StartPositionIn: 1.5,
				EndPositionIn:   11.5,
				StartDiameterMM: 19.5,
				EndDiameterMM:   21.0,
			},
			check: func(t *testing.T, d DerivedSectionGeometry) {
				if d.LengthIn != 10.0 {
					t.Errorf("LengthIn = %v, want 10", d.LengthIn)
				}
				if !almostEqual(d.TaperMMPerIn, 0.15, 1e-12) {
					t.Errorf("TaperMMPerIn = %v, want 0.15", d.TaperMMPerIn)
				}
				if d.StartRadiusMM != 9.75 || d.EndRadiusMM != 10.5 {
					t.Errorf("radii = %v, %v, want 9.75, 10.5", d.StartRadiusMM, d.EndRadiusMM)
				}
				wantAngle := math.Atan(0.15/2/25.4) * 180 / math.Pi
				if !almostEqual(d.TaperAngleDeg, wantAngle, 1e-12) {
					t.Errorf("TaperAngleDeg = %v, want %v", d.TaperAngleDeg, wantAngle)
				}
			},
		},
		{
			name: "cylinder has zero taper",
			section: Section{
				ID:              "sec-2",
				Type:            TypeHandle,
				StartPositionIn: 0,
				EndPositionIn:   10,
				StartDiameterMM: 22,
				EndDiameterMM:   22,
			},
			check: func(t *testing.T, d DerivedSectionGeometry) {
				if d.TaperMMPerIn != 0 || d.TaperAngleDeg != 0 {
					t.Errorf("expected zero taper, got rate %v angle %v", d.TaperMMPerIn, d.TaperAngleDeg)
				}
			},
		},
		{
			name: "zero length rejected",
			section: Section{
				ID: "sec-3", Type: TypeJoint,
				StartPositionIn: 2, EndPositionIn: 2,
				StartDiameterMM: 20, EndDiameterMM: 20,
			},
			wantErr: CodeNonPositiveLength,
		},
		{
			name: "reversed positions rejected",
			section: Section{
				ID: "sec-4", Type: TypeJoint,
				StartPositionIn: 5, EndPositionIn: 3,
				StartDiameterMM: 20, EndDiameterMM: 20,
			},
			wantErr: CodeNonPositiveLength,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Compute(tt.section)
			if tt.wantErr != "" {
				de := AsDomainError(err)
				if de == nil {
					t.Fatalf("expected DomainError %q, got %v", tt.wantErr, err)
				}
				if de.Code != tt.wantErr {
					t.Errorf("error code = %q, want %q", de.Code, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Compute failed: %v", err)
			}
			tt.check(t, d)
		})
	}
}

func TestComputeDesignOrdersByPosition(t *testing.T) {
	sections := []Section{
		{ID: "b", Type: TypeHandle, StartPositionIn: 10, EndPositionIn: 20, StartDiameterMM: 21, EndDiameterMM: 22},
		{ID: "a", Type: TypeForearm, StartPositionIn: 0, EndPositionIn: 10, StartDiameterMM: 20, EndDiameterMM: 21},
	}

	derived, err := ComputeDesign(sections)
	if err != nil {
		t.Fatalf("ComputeDesign failed: %v", err)
	}
	if len(derived) != 2 {
		t.Fatalf("expected 2 derived sections, got %d", len(derived))
	}
	if derived[0].SectionID != "a" || derived[1].SectionID != "b" {
		t.Errorf("derived order = %s, %s, want a, b", derived[0].SectionID, derived[1].SectionID)
	}
}

func TestComputeDesignPropagatesStructuralError(t *testing.T) {
	sections := []Section{
		{ID: "ok", Type: TypeForearm, StartPositionIn: 0, EndPositionIn: 10, StartDiameterMM: 20, EndDiameterMM: 21},
		{ID: "bad", Type: TypeHandle, StartPositionIn: 10, EndPositionIn: 10, StartDiameterMM: 21, EndDiameterMM: 21},
	}

	if _, err := ComputeDesign(sections); AsDomainError(err) == nil {
		t.Fatalf("expected DomainError, got %v", err)
	}
}

func TestRadiusAt(t *testing.T) {
	d, err := Compute(Section{
		ID: "s", Type: TypeForearm,
		StartPositionIn: 0, EndPositionIn: 10,
		StartDiameterMM: 20, EndDiameterMM: 16,
	})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	mid, err := d.RadiusAt(5)
	if err != nil {
		t.Fatalf("RadiusAt failed: %v", err)
	}
	if mid != 9.0 {
		t.Errorf("RadiusAt(5) = %v, want 9", mid)
	}

	start, _ := d.RadiusAt(0)
	end, _ := d.RadiusAt(10)
	if start != 10.0 || end != 8.0 {
		t.Errorf("endpoint radii = %v, %v, want 10, 8", start, end)
	}

	if _, err := d.RadiusAt(10.5); AsDomainError(err) == nil {
		t.Errorf("expected out-of-range error, got %v", err)
	}
}

func TestSurfaceAreaAndVolume(t *testing.T) {
	// Cylinder with 1" radius (25.4mm) and 10" length.
	d, err := Compute(Section{
		ID: "cyl", Type: TypeHandle,
		StartPositionIn: 0, EndPositionIn: 10,
		StartDiameterMM: 50.8, EndDiameterMM: 50.8,
	})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	if got, want := d.SurfaceAreaSqIn(), 2*math.Pi*10; !almostEqual(got, want, 1e-9) {
		t.Errorf("SurfaceAreaSqIn = %v, want %v", got, want)
	}
	if got, want := d.VolumeCuIn(), math.Pi*10; !almostEqual(got, want, 1e-9) {
		t.Errorf("VolumeCuIn = %v, want %v", got, want)
	}
	if oz := EstimatedWeightOz(d.VolumeCuIn()); oz <= 0 {
		t.Errorf("EstimatedWeightOz = %v, want > 0", oz)
	}
}

func TestDesignAggregates(t *testing.T) {
	derived, err := ComputeDesign([]Section{
		{ID: "a", Type: TypeForearm, StartPositionIn: 0, EndPositionIn: 10, StartDiameterMM: 20, EndDiameterMM: 21},
		{ID: "b", Type: TypeHandle, StartPositionIn: 10, EndPositionIn: 20, StartDiameterMM: 21, EndDiameterMM: 22},
	})
	if err != nil {
		t.Fatalf("ComputeDesign failed: %v", err)
	}

	if got := TotalLengthIn(derived); got != 20.0 {
		t.Errorf("TotalLengthIn = %v, want 20", got)
	}
	if got := TotalLengthIn(nil); got != 0 {
		t.Errorf("TotalLengthIn(nil) = %v, want 0", got)
	}

	counts := SectionCountByType(derived)
	if counts[TypeForearm] != 1 || counts[TypeHandle] != 1 {
		t.Errorf("SectionCountByType = %v", counts)
	}

	wantVolume := derived[0].VolumeCuIn() + derived[1].VolumeCuIn()
	if got := DesignVolumeCuIn(derived); !almostEqual(got, wantVolume, 1e-12) {
		t.Errorf("DesignVolumeCuIn = %v, want %v", got, wantVolume)
	}
	wantArea := derived[0].SurfaceAreaSqIn() + derived[1].SurfaceAreaSqIn()
	if got := DesignSurfaceAreaSqIn(derived); !almostEqual(got, wantArea, 1e-12) {
		t.Errorf("DesignSurfaceAreaSqIn = %v, want %v", got, wantArea)
	}
}

func TestDesignRadiusAt(t *testing.T) {
	// Two sections with a deliberate gap between 10 and 12 inches.
	derived, err := ComputeDesign([]Section{
		{ID: "a", Type: TypeForearm, StartPositionIn: 0, EndPositionIn: 10, StartDiameterMM: 20, EndDiameterMM: 21},
		{ID: "b", Type: TypeHandle, StartPositionIn: 12, EndPositionIn: 22, StartDiameterMM: 21, EndDiameterMM: 22},
	})
	if err != nil {
		t.Fatalf("ComputeDesign failed: %v", err)
	}

	r, err := DesignRadiusAt(derived, 5)
	if err != nil {
		t.Fatalf("DesignRadiusAt failed: %v", err)
	}
	if r != 10.25 {
		t.Errorf("DesignRadiusAt(5) = %v, want 10.25", r)
	}

	if _, err := DesignRadiusAt(derived, 11); AsDomainError(err) == nil {
		t.Errorf("expected out-of-range error inside the gap, got %v", err)
	}
	if _, err := DesignRadiusAt(derived, 30); AsDomainError(err) == nil {
		t.Errorf("expected out-of-range error past the design, got %v", err)
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	s := Section{
		ID: "s", Type: TypeSleeve,
		StartPositionIn: 21.5, EndPositionIn: 27.5,
		StartDiameterMM: 25, EndDiameterMM: 29,
	}

	first, err := Compute(s)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	second, err := Compute(s)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Compute is not deterministic: %+v vs %+v", first, second)
	}
}

func TestCheckSection(t *testing.T) {
	valid := Section{
		ID: "s", Type: TypeForearm,
		StartPositionIn: 0, EndPositionIn: 10,
		StartDiameterMM: 20, EndDiameterMM: 21,
	}

	tests := []struct {
		name     string
		mutate   func(s *Section)
		wantCode string
	}{
		{"valid", func(s *Section) {}, ""},
		{"unknown type", func(s *Section) { s.Type = "shaft" }, CodeUnknownSectionType},
		{"negative start", func(s *Section) { s.StartPositionIn = -1 }, CodeNegativePosition},
		{"reversed", func(s *Section) { s.EndPositionIn = -0.5 }, CodeNonPositiveLength},
		{"zero diameter", func(s *Section) { s.StartDiameterMM = 0 }, CodeNonPositiveDiameter},
		{"absurd diameter", func(s *Section) { s.EndDiameterMM = 51 }, CodeDiameterTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)
			err := CheckSection(s)
			if tt.wantCode == "" {
				if err != nil {
					t.Errorf("expected valid section, got %v", err)
				}
				return
			}
			de := AsDomainError(err)
			if de == nil {
				t.Fatalf("expected DomainError %q, got %v", tt.wantCode, err)
			}
			if de.Code != tt.wantCode {
				t.Errorf("error code = %q, want %q", de.Code, tt.wantCode)
			}
		})
	}
}
