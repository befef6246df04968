package jtbd

import (
	"reflect"
	"testing"

	"github.com/node42/node42-backend/internal/domain"
)

func sampleConstraints() []domain.ConstraintRecord {
	return []domain.ConstraintRecord{
		{Name: "Viscosity drift", Category: "Physics/Energy", Severity: "High"},
		{Name: "Line changeover time", Category: "Time/Throughput", Severity: "Medium"},
		{Name: "Overpressure rupture", Category: "Physics/Energy", Severity: "Critical"},
		{Name: "Operator fatigue", Category: "Human Limits"},
		{Name: "Disposal permits", Category: "Rules & Liability", Severity: "Low"},
	}
}

func TestSortConstraintsOrder(t *testing.T) {
	t.Parallel()

	sorted := SortConstraints(sampleConstraints())

	wantNames := []string{
		"Overpressure rupture", // Critical
		"Viscosity drift",      // High
		"Operator fatigue",     // missing -> Medium, Human Limits
		"Line changeover time", // Medium, Time/Throughput
		"Disposal permits",     // Low
	}
	for i, want := range wantNames {
		if sorted[i].Name != want {
			t.Fatalf("sorted[%d] = %q, want %q", i, sorted[i].Name, want)
		}
	}
}

func TestBucketConcatenationMatchesFlatList(t *testing.T) {
	t.Parallel()

	sorted := SortConstraints(sampleConstraints())
	buckets := GroupBySeverity(sorted)
	flat := FlatConstraints(sorted)

	var concat []string
	for _, sev := range Severities {
		for _, c := range buckets[sev] {
			concat = append(concat, c.Name)
		}
	}
	var flatNames []string
	for _, c := range flat {
		flatNames = append(flatNames, c.Name)
	}
	if !reflect.DeepEqual(concat, flatNames) {
		t.Fatalf("bucket concatenation %v != flat order %v", concat, flatNames)
	}
}

func TestSeverityCountsSumToTotal(t *testing.T) {
	t.Parallel()

	records := append(sampleConstraints(), domain.ConstraintRecord{
		Name: "Mystery", Category: "Economics", Severity: "severe",
	})
	counts := SeverityCounts(records)

	for _, sev := range Severities {
		if _, ok := counts[sev]; !ok {
			t.Fatalf("missing canonical severity key %q", sev)
		}
	}
	sum := 0
	for _, n := range counts {
		sum += n
	}
	if sum != len(records) {
		t.Fatalf("counts sum = %d, want %d", sum, len(records))
	}
	// Unrecognized severities count as Medium.
	if counts[SeverityMedium] != 3 {
		t.Fatalf("Medium count = %d, want 3", counts[SeverityMedium])
	}
}

func TestGroupBySeverityCanonicalBucketsAlwaysPresent(t *testing.T) {
	t.Parallel()

	buckets := GroupBySeverity(nil)
	if len(buckets) != len(Severities) {
		t.Fatalf("bucket count = %d, want %d", len(buckets), len(Severities))
	}
	for _, sev := range Severities {
		if buckets[sev] == nil {
			t.Fatalf("bucket %q is nil, want empty slice", sev)
		}
	}
}

func TestGroupByCategory(t *testing.T) {
	t.Parallel()

	sorted := SortConstraints([]domain.ConstraintRecord{
		{Name: "No Category", Severity: "High"},
		{Name: "Overpressure rupture", Category: "Physics/Energy", Severity: "critical"},
	})
	grouped := GroupByCategory(sorted)

	other, ok := grouped["Other"]
	if !ok || len(other) != 1 {
		t.Fatalf("missing Other bucket: %v", grouped)
	}
	if other[0].ID != "other-no-category" {
		t.Errorf("id = %q, want other-no-category", other[0].ID)
	}
	if other[0].Sensitivity != "HIGH" {
		t.Errorf("sensitivity = %q, want HIGH", other[0].Sensitivity)
	}
	phys := grouped["Physics/Energy"]
	if len(phys) != 1 || phys[0].Sensitivity != "CRITICAL" {
		t.Errorf("physics bucket = %+v", phys)
	}
}

func TestRenumberSteps(t *testing.T) {
	t.Parallel()

	steps := []domain.JobMapStepRecord{
		{Name: "Conclude", StepNumber: 7},
		{Name: "Define", StepNumber: 2},
		{Name: "Locate", StepNumber: 2},
	}
	out := RenumberSteps(steps)

	if len(out) != 3 {
		t.Fatalf("len = %d, want 3", len(out))
	}
	// Contiguous 1..N despite gaps; ties keep input order.
	wantNames := []string{"Define", "Locate", "Conclude"}
	for i, step := range out {
		if step.Order != i+1 {
			t.Errorf("order[%d] = %d, want %d", i, step.Order, i+1)
		}
		if step.Name != wantNames[i] {
			t.Errorf("name[%d] = %q, want %q", i, step.Name, wantNames[i])
		}
	}
}

func TestRenumberStepsFallback(t *testing.T) {
	t.Parallel()

	out := RenumberSteps(nil)
	if len(out) != 8 {
		t.Fatalf("fallback len = %d, want 8", len(out))
	}
	wantNames := []string{"Define", "Locate", "Prepare", "Confirm", "Execute", "Monitor", "Modify", "Conclude"}
	for i, step := range out {
		if step.Name != wantNames[i] || step.Order != i+1 {
			t.Errorf("fallback[%d] = %+v, want %q at order %d", i, step, wantNames[i], i+1)
		}
	}
}

func TestGroupProductJobs(t *testing.T) {
	t.Parallel()

	jobs := []domain.ProductJobRecord{
		{Name: "Install", Category: "Preparation"},
		{Name: "Operate"},
		{Name: "Recycle", Category: "Disposal"},
		{Name: "Audit", Category: "Compliance"},
	}
	byCategory, counts := GroupProductJobs(jobs)

	for _, cat := range ProductJobCategories {
		if byCategory[cat] == nil {
			t.Fatalf("canonical category %q not seeded", cat)
		}
	}
	if len(byCategory["Usage"]) != 1 || byCategory["Usage"][0].Name != "Operate" {
		t.Errorf("uncategorized job should land in Usage: %v", byCategory["Usage"])
	}
	if len(byCategory["Compliance"]) != 1 {
		t.Errorf("non-canonical category bucket missing: %v", byCategory)
	}
	if _, ok := counts["Compliance"]; ok {
		t.Errorf("counts should only cover canonical categories: %v", counts)
	}
	if counts["Preparation"] != 1 || counts["Disposal"] != 1 || counts["Acquisition"] != 0 {
		t.Errorf("counts = %v", counts)
	}
}
