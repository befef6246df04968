package jtbd

import "strings"

// Canonical severity labels, most to least urgent.
const (
	SeverityCritical = "Critical"
	SeverityHigh     = "High"
	SeverityMedium   = "Medium"
	SeverityLow      = "Low"
)

// Severities is the fixed order the client renders severity buckets in.
var Severities = []string{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow}

var severityRank = map[string]int{
	"critical": 1,
	"high":     2,
	"medium":   3,
	"low":      4,
}

// NormalizeSeverity maps any casing of the four severity labels to the
// canonical form. Missing or unrecognized input normalizes to Medium.
func NormalizeSeverity(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "critical":
		return SeverityCritical
	case "high":
		return SeverityHigh
	case "low":
		return SeverityLow
	default:
		return SeverityMedium
	}
}

// SeverityRank returns the sort rank of a severity label, case
// insensitive. Labels outside the closed set rank last at 99.
func SeverityRank(s string) int {
	if r, ok := severityRank[strings.ToLower(strings.TrimSpace(s))]; ok {
		return r
	}
	return 99
}

// DefaultSeverity substitutes Medium for a missing severity and leaves
// present values untouched, casing included.
func DefaultSeverity(s string) string {
	if strings.TrimSpace(s) == "" {
		return SeverityMedium
	}
	return s
}

// DefaultCategory is the guaranteed fallback key for call sites that
// need a value from the canonical category set.
const DefaultCategory = "physics_energy"

// categoryKeys maps graph category labels to the fixed frontend keys.
var categoryKeys = map[string]string{
	"Physics/Energy":         "physics_energy",
	"Space/Geometry":         "space_geometry",
	"Time/Throughput":        "time_throughput",
	"Human Limits":           "human_limits",
	"Environment":            "environment",
	"Rules & Liability":      "rules_liability",
	"Ecosystem Dependencies": "ecosystem_dependencies",
	"Economics":              "economics",
}

// CanonicalCategories lists the eight frontend category keys in display
// order.
var CanonicalCategories = []string{
	"physics_energy",
	"space_geometry",
	"time_throughput",
	"human_limits",
	"environment",
	"rules_liability",
	"ecosystem_dependencies",
	"economics",
}

var canonicalCategorySet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(CanonicalCategories))
	for _, key := range CanonicalCategories {
		set[key] = struct{}{}
	}
	return set
}()

// CategoryKey maps a raw graph category label to its frontend key. A
// label outside the known set falls back to a derived key: lowercased,
// with runs of slashes, whitespace and ampersands collapsed to a single
// underscore. Missing input is treated as "Other".
func CategoryKey(raw string) string {
	if raw == "" {
		raw = "Other"
	}
	if key, ok := categoryKeys[raw]; ok {
		return key
	}
	return deriveCategoryKey(raw)
}

// CanonicalCategoryKey behaves like CategoryKey but guarantees a member
// of the canonical set, substituting DefaultCategory when the derived
// key is not canonical.
func CanonicalCategoryKey(raw string) string {
	key := CategoryKey(raw)
	if _, ok := canonicalCategorySet[key]; ok {
		return key
	}
	return DefaultCategory
}

func deriveCategoryKey(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	pendingSep := false
	for _, r := range strings.ToLower(raw) {
		switch {
		case r == '/' || r == '&' || r == ' ' || r == '\t' || r == '\n' || r == '\r':
			if b.Len() > 0 {
				pendingSep = true
			}
		default:
			if pendingSep {
				b.WriteByte('_')
				pendingSep = false
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Slugify converts a display name into a URL slug: lowercase, strip
// punctuation, hyphenate whitespace, collapse repeated hyphens.
func Slugify(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			b.WriteRune(' ')
		}
	}
	fields := strings.Fields(b.String())
	slug := strings.Join(fields, "-")
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	return slug
}

// ConstraintID builds the stable row id used by constraint views:
// category and name joined, whitespace hyphenated, lowercased.
func ConstraintID(category, name string) string {
	joined := category + "-" + name
	fields := strings.FieldsFunc(joined, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	return strings.ToLower(strings.Join(fields, "-"))
}
