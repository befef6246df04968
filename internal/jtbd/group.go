package jtbd

import (
	"sort"
	"strings"

	"github.com/node42/node42-backend/internal/domain"
)

// SortConstraints orders constraints by severity rank, then category,
// then name. The sort is stable: rows that compare equal keep their
// input order.
func SortConstraints(in []domain.ConstraintRecord) []domain.ConstraintRecord {
	out := make([]domain.ConstraintRecord, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		ri := SeverityRank(DefaultSeverity(out[i].Severity))
		rj := SeverityRank(DefaultSeverity(out[j].Severity))
		if ri != rj {
			return ri < rj
		}
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// GroupBySeverity buckets sorted constraints by their severity label.
// The four canonical buckets are always present, even empty; severities
// observed outside the canonical set get their own bucket.
func GroupBySeverity(sorted []domain.ConstraintRecord) map[string][]domain.ConstraintSummary {
	out := make(map[string][]domain.ConstraintSummary, len(Severities))
	for _, sev := range Severities {
		out[sev] = []domain.ConstraintSummary{}
	}
	for _, c := range sorted {
		sev := DefaultSeverity(c.Severity)
		out[sev] = append(out[sev], domain.ConstraintSummary{
			Name:        c.Name,
			Description: c.Description,
			Category:    c.Category,
		})
	}
	return out
}

// SeverityCounts counts constraints per canonical severity. All four
// keys are present; unrecognized severities count as Medium so the
// counts always sum to the total.
func SeverityCounts(records []domain.ConstraintRecord) map[string]int {
	out := make(map[string]int, len(Severities))
	for _, sev := range Severities {
		out[sev] = 0
	}
	for _, c := range records {
		out[NormalizeSeverity(c.Severity)]++
	}
	return out
}

// GroupByCategory buckets sorted constraints by their raw category
// label, defaulting to "Other". Within a bucket the severity order of
// the input is preserved.
func GroupByCategory(sorted []domain.ConstraintRecord) map[string][]domain.Constraint {
	out := make(map[string][]domain.Constraint)
	for _, c := range sorted {
		category := c.Category
		if category == "" {
			category = "Other"
		}
		out[category] = append(out[category], domain.Constraint{
			ID:          ConstraintID(category, c.Name),
			Name:        c.Name,
			Description: c.Description,
			Category:    category,
			Sensitivity: strings.ToUpper(DefaultSeverity(c.Severity)),
		})
	}
	return out
}

// FlatConstraints maps sorted constraints to the flat client list with
// frontend category keys.
func FlatConstraints(sorted []domain.ConstraintRecord) []domain.Constraint {
	out := make([]domain.Constraint, 0, len(sorted))
	for _, c := range sorted {
		key := CategoryKey(c.Category)
		out = append(out, domain.Constraint{
			ID:          ConstraintID(key, c.Name),
			Name:        c.Name,
			Description: c.Description,
			Category:    key,
			Sensitivity: strings.ToUpper(DefaultSeverity(c.Severity)),
		})
	}
	return out
}

// AllConstraints maps sorted constraints to the raw-label list the
// client uses for unfiltered display.
func AllConstraints(sorted []domain.ConstraintRecord) []domain.ConstraintDetail {
	out := make([]domain.ConstraintDetail, 0, len(sorted))
	for _, c := range sorted {
		out = append(out, domain.ConstraintDetail{
			Name:        c.Name,
			Description: c.Description,
			Category:    c.Category,
			Severity:    DefaultSeverity(c.Severity),
		})
	}
	return out
}

// OrderedStep is a job-map step after renumbering. DBStepNumber keeps
// the source value for diagnostics; Order is the display sequence.
type OrderedStep struct {
	Order        int
	Name         string
	Description  string
	DBStepNumber int
}

// RenumberSteps sorts steps ascending by their source step number (ties
// keep input order) and reassigns a contiguous 1..N order, so gaps and
// duplicates in the source data never reach the client. An empty input
// yields the generic eight-step fallback sequence.
func RenumberSteps(steps []domain.JobMapStepRecord) []OrderedStep {
	if len(steps) == 0 {
		return FallbackSteps()
	}
	sorted := make([]domain.JobMapStepRecord, len(steps))
	copy(sorted, steps)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StepNumber < sorted[j].StepNumber
	})
	out := make([]OrderedStep, 0, len(sorted))
	for i, s := range sorted {
		out = append(out, OrderedStep{
			Order:        i + 1,
			Name:         s.Name,
			Description:  s.Description,
			DBStepNumber: s.StepNumber,
		})
	}
	return out
}

var fallbackSteps = []OrderedStep{
	{Order: 1, Name: "Define", Description: "Clarify requirements and parameters", DBStepNumber: 1},
	{Order: 2, Name: "Locate", Description: "Find and identify needed resources", DBStepNumber: 2},
	{Order: 3, Name: "Prepare", Description: "Ready materials and environment", DBStepNumber: 3},
	{Order: 4, Name: "Confirm", Description: "Verify conditions are correct", DBStepNumber: 4},
	{Order: 5, Name: "Execute", Description: "Perform the core activity", DBStepNumber: 5},
	{Order: 6, Name: "Monitor", Description: "Track progress and status", DBStepNumber: 6},
	{Order: 7, Name: "Modify", Description: "Adjust based on feedback", DBStepNumber: 7},
	{Order: 8, Name: "Conclude", Description: "Complete and finalize", DBStepNumber: 8},
}

// FallbackSteps returns the generic job-map sequence used when a market
// has no steps in the graph.
func FallbackSteps() []OrderedStep {
	out := make([]OrderedStep, len(fallbackSteps))
	copy(out, fallbackSteps)
	return out
}

// ProductJobCategories is the fixed five-category product-job
// classification in display order.
var ProductJobCategories = []string{
	"Acquisition",
	"Preparation",
	"Usage",
	"Maintenance",
	"Disposal",
}

// GroupProductJobs buckets product jobs by category. All five canonical
// categories are pre-seeded with empty slices; jobs without a category
// land in Usage; categories outside the canonical set get their own
// bucket but are not counted.
func GroupProductJobs(jobs []domain.ProductJobRecord) (map[string][]domain.ProductJob, map[string]int) {
	byCategory := make(map[string][]domain.ProductJob, len(ProductJobCategories))
	for _, cat := range ProductJobCategories {
		byCategory[cat] = []domain.ProductJob{}
	}
	for _, job := range jobs {
		category := job.Category
		if category == "" {
			category = "Usage"
		}
		byCategory[category] = append(byCategory[category], domain.ProductJob{
			Name:        job.Name,
			Statement:   job.Statement,
			Description: job.Description,
			Level:       job.Level,
			UseContext:  job.UseContext,
			UserGroup:   job.UserGroup,
			Frequency:   job.Frequency,
		})
	}
	counts := make(map[string]int, len(ProductJobCategories))
	for _, cat := range ProductJobCategories {
		counts[cat] = len(byCategory[cat])
	}
	return byCategory, counts
}
