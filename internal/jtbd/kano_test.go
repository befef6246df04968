package jtbd

import (
	"fmt"
	"testing"

	"github.com/node42/node42-backend/internal/domain"
)

func kanoFixture(n int) []domain.KanoFeature {
	out := make([]domain.KanoFeature, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, domain.KanoFeature{
			ID:                  fmt.Sprintf("feature-%d", i),
			Name:                fmt.Sprintf("Fact %d", i),
			ReverseRange:        "0-5 units",
			MustBeRange:         "10-20 units",
			OneDimensionalRange: "30-40 units",
			AttractiveRange:     "50-60 units",
		})
	}
	return out
}

func TestApplyNewLearnings(t *testing.T) {
	t.Parallel()

	in := kanoFixture(16)
	out := ApplyNewLearnings(in)

	marked := map[int]bool{1: true, 5: true, 9: true, 13: true}
	for i, f := range out {
		if marked[i] {
			if !f.IsNewLearning {
				t.Errorf("feature %d not marked as new learning", i)
			}
			// 1, 5, 9, 13 are all 1 mod 4, so the must-be column is
			// always the one selected.
			if f.UpdatedColumn != "must_be" {
				t.Errorf("feature %d updated column = %q, want must_be", i, f.UpdatedColumn)
			}
			if f.MustBeRange != "10.5-21 units" {
				t.Errorf("feature %d must-be range = %q, want %q", i, f.MustBeRange, "10.5-21 units")
			}
			if f.PreviousValue != "10-20 units" {
				t.Errorf("feature %d previous value = %q", i, f.PreviousValue)
			}
			// Only one column changes.
			if f.ReverseRange != "0-5 units" || f.OneDimensionalRange != "30-40 units" || f.AttractiveRange != "50-60 units" {
				t.Errorf("feature %d: other columns altered: %+v", i, f)
			}
		} else {
			if f.IsNewLearning || f.UpdatedColumn != "" || f.PreviousValue != "" {
				t.Errorf("feature %d altered: %+v", i, f)
			}
			if f.MustBeRange != "10-20 units" {
				t.Errorf("feature %d must-be range changed: %q", i, f.MustBeRange)
			}
		}
	}
	// Input untouched.
	if in[1].IsNewLearning || in[1].MustBeRange != "10-20 units" {
		t.Errorf("input slice mutated: %+v", in[1])
	}
}

func TestApplyNewLearningsShortList(t *testing.T) {
	t.Parallel()

	out := ApplyNewLearnings(kanoFixture(3))
	if !out[1].IsNewLearning {
		t.Errorf("index 1 should be marked in a 3-feature list")
	}
	if out[0].IsNewLearning || out[2].IsNewLearning {
		t.Errorf("only index 1 should be marked: %+v", out)
	}
}

func TestScaleNumbers(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"10-20 units", "10.5-21 units"},
		{"2.5 to 100 kg", "2.63 to 105 kg"},
		{"no numbers here", "no numbers here"},
		{"—", "—"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := scaleNumbers(tc.in); got != tc.want {
			t.Errorf("scaleNumbers(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
