package jtbd

import "testing"

func TestNormalizeSeverity(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"Critical", SeverityCritical},
		{"CRITICAL", SeverityCritical},
		{" high ", SeverityHigh},
		{"Low", SeverityLow},
		{"medium", SeverityMedium},
		{"", SeverityMedium},
		{"severe", SeverityMedium},
	}
	for _, tc := range cases {
		if got := NormalizeSeverity(tc.in); got != tc.want {
			t.Errorf("NormalizeSeverity(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeSeverityIdempotent(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"Critical", "HIGH", "", "garbage", "low"} {
		once := NormalizeSeverity(in)
		if twice := NormalizeSeverity(once); twice != once {
			t.Errorf("NormalizeSeverity not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}

func TestSeverityRank(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want int
	}{
		{"Critical", 1},
		{"high", 2},
		{"MEDIUM", 3},
		{"Low", 4},
		{"", 99},
		{"unknown", 99},
	}
	for _, tc := range cases {
		if got := SeverityRank(tc.in); got != tc.want {
			t.Errorf("SeverityRank(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestDefaultSeverity(t *testing.T) {
	t.Parallel()

	if got := DefaultSeverity(""); got != SeverityMedium {
		t.Errorf("DefaultSeverity(\"\") = %q, want %q", got, SeverityMedium)
	}
	// Present values keep their casing.
	if got := DefaultSeverity("HIGH"); got != "HIGH" {
		t.Errorf("DefaultSeverity(\"HIGH\") = %q, want \"HIGH\"", got)
	}
}

func TestCategoryKey(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"Physics/Energy", "physics_energy"},
		{"Space/Geometry", "space_geometry"},
		{"Time/Throughput", "time_throughput"},
		{"Human Limits", "human_limits"},
		{"Environment", "environment"},
		{"Rules & Liability", "rules_liability"},
		{"Ecosystem Dependencies", "ecosystem_dependencies"},
		{"Economics", "economics"},
		{"Thermal / Chemical", "thermal_chemical"},
		{"Supply  Chain", "supply_chain"},
		{"", "other"},
	}
	for _, tc := range cases {
		if got := CategoryKey(tc.in); got != tc.want {
			t.Errorf("CategoryKey(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCanonicalCategoryKey(t *testing.T) {
	t.Parallel()

	if got := CanonicalCategoryKey("Rules & Liability"); got != "rules_liability" {
		t.Errorf("CanonicalCategoryKey known label = %q, want rules_liability", got)
	}
	if got := CanonicalCategoryKey("Totally Novel"); got != DefaultCategory {
		t.Errorf("CanonicalCategoryKey unknown label = %q, want %q", got, DefaultCategory)
	}
	if got := CanonicalCategoryKey(""); got != DefaultCategory {
		t.Errorf("CanonicalCategoryKey empty = %q, want %q", got, DefaultCategory)
	}
}

func TestSlugify(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"Industrial Filling Machines", "industrial-filling-machines"},
		{"  Dairy   Processing  ", "dairy-processing"},
		{"A.B & C", "ab-c"},
		{"already-slugged", "already-slugged"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestConstraintID(t *testing.T) {
	t.Parallel()

	if got := ConstraintID("Physics/Energy", "High Temperature"); got != "physics/energy-high-temperature" {
		t.Errorf("ConstraintID = %q", got)
	}
}
