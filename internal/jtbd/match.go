package jtbd

import (
	"strings"

	"github.com/node42/node42-backend/internal/domain"
)

// Related reports whether two names refer to the same thing under the
// permissive matching rule bridging error statements to steps and core
// jobs (the graph stores those links as free-text name lists, not
// relationships). Case insensitive; true when either string contains
// the other, or any whitespace token of one is a substring of the
// other. Symmetric by construction.
func Related(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}
	for _, word := range strings.Fields(b) {
		if strings.Contains(a, word) {
			return true
		}
	}
	for _, word := range strings.Fields(a) {
		if strings.Contains(b, word) {
			return true
		}
	}
	return false
}

// StepErrors returns the error statements related to a job-map step by
// name. Input order of the statements is preserved; statements with no
// related-step list never match.
func StepErrors(stepName string, statements []domain.ErrorStatementRecord) []domain.ErrorStatementRecord {
	var out []domain.ErrorStatementRecord
	for _, es := range statements {
		for _, related := range es.RelatedJobMapSteps {
			if Related(stepName, related) {
				out = append(out, es)
				break
			}
		}
	}
	return out
}

// CoreJobErrors returns the error statements naming a core job in their
// related-core-jobs list, under the same permissive rule.
func CoreJobErrors(jobName string, statements []domain.ErrorStatementRecord) []domain.ErrorStatementRecord {
	var out []domain.ErrorStatementRecord
	for _, es := range statements {
		for _, related := range es.RelatedCoreJobs {
			if Related(jobName, related) {
				out = append(out, es)
				break
			}
		}
	}
	return out
}
