package jtbd

import (
	"testing"

	"github.com/node42/node42-backend/internal/domain"
)

func TestRelated(t *testing.T) {
	t.Parallel()

	cases := []struct {
		a, b string
		want bool
	}{
		{"Fill Bottles", "Fill Bottles", true},
		{"fill bottles", "FILL BOTTLES", true},
		{"Fill", "Fill Bottles", true},          // substring
		{"Fill Bottles", "Bottles", true},       // substring, other direction
		{"Seal the cap", "cap inspection", true}, // token of one inside the other
		{"Monitor pressure", "pressure", true},
		{"Define", "Conclude", false},
		{"", "Fill", false},
		{"Fill", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		if got := Related(tc.a, tc.b); got != tc.want {
			t.Errorf("Related(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
		if got := Related(tc.b, tc.a); got != tc.want {
			t.Errorf("Related(%q, %q) = %v, want %v (symmetry)", tc.b, tc.a, got, tc.want)
		}
	}
}

func TestStepErrorsPreservesInputOrder(t *testing.T) {
	t.Parallel()

	statements := []domain.ErrorStatementRecord{
		{Statement: "third", RelatedJobMapSteps: []string{"Execute"}},
		{Statement: "unrelated", RelatedJobMapSteps: []string{"Conclude"}},
		{Statement: "first", RelatedJobMapSteps: []string{"Prepare", "Execute"}},
		{Statement: "no steps"},
	}
	got := StepErrors("Execute", statements)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Statement != "third" || got[1].Statement != "first" {
		t.Errorf("order not preserved: %q, %q", got[0].Statement, got[1].Statement)
	}
}

func TestCoreJobErrors(t *testing.T) {
	t.Parallel()

	statements := []domain.ErrorStatementRecord{
		{Statement: "match", RelatedCoreJobs: []string{"Maintain sterility"}},
		{Statement: "miss", RelatedCoreJobs: []string{"Reduce downtime"}},
	}
	got := CoreJobErrors("sterility", statements)
	if len(got) != 1 || got[0].Statement != "match" {
		t.Fatalf("got %v", got)
	}
}
