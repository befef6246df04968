package services

import (
	"context"
	"errors"
	"testing"

	"github.com/node42/node42-backend/internal/platform/logger"
)

func TestConstraintsForCommodity(t *testing.T) {
	t.Parallel()

	reader := &fakeReader{rows: map[string][]map[string]any{
		"CommodityConstraint": {
			{"name": "Viscosity drift", "description": "d1", "category": "Physics/Energy", "impact_severity": "High"},
			{"name": "Overpressure rupture", "description": "d2", "category": "Physics/Energy", "impact_severity": "Critical"},
			{"name": "Changeover time", "description": "d3", "category": "Time/Throughput", "impact_severity": "Medium"},
		},
	}}
	svc := NewConstraintService(reader, logger.NewNop())

	view := svc.ConstraintsForCommodity(context.Background(), "23181501")

	if view.TotalConstraints != 3 {
		t.Fatalf("totalConstraints = %d, want 3", view.TotalConstraints)
	}
	want := map[string]int{"Critical": 1, "High": 1, "Medium": 1, "Low": 0}
	for sev, n := range want {
		if view.SeverityCounts[sev] != n {
			t.Errorf("severityCounts[%s] = %d, want %d", sev, view.SeverityCounts[sev], n)
		}
	}
	if view.Constraints[0].Sensitivity != "CRITICAL" {
		t.Errorf("constraints[0].sensitivity = %q, want CRITICAL", view.Constraints[0].Sensitivity)
	}
	if view.Constraints[0].Category != "physics_energy" {
		t.Errorf("flat list should use frontend category keys: %q", view.Constraints[0].Category)
	}
}

func TestConstraintsForCommodityDegradesOnError(t *testing.T) {
	t.Parallel()

	svc := NewConstraintService(&fakeReader{err: errors.New("boom")}, logger.NewNop())
	view := svc.ConstraintsForCommodity(context.Background(), "23181501")

	if view.TotalConstraints != 0 || len(view.Constraints) != 0 {
		t.Fatalf("expected empty view, got %+v", view)
	}
	// Canonical buckets still present.
	for _, sev := range view.Severities {
		if _, ok := view.ConstraintsBySeverity[sev]; !ok {
			t.Errorf("missing bucket %q", sev)
		}
		if _, ok := view.SeverityCounts[sev]; !ok {
			t.Errorf("missing count key %q", sev)
		}
	}
}
