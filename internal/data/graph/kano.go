package graph

import (
	"context"

	"github.com/node42/node42-backend/internal/domain"
)

const kanoRangesQuery = `
MATCH (bf:BasicFact)-[r:MARKET_KANO_CLASSIFIED_FOR]->(m:Market)
WHERE m.name = $marketName
RETURN
  bf.name as factName,
  bf.unit_of_measure as unitOfMeasure,
  r.reverse_range as reverseRange,
  r.must_be_range as mustBeRange,
  r.one_dimensional_range as oneDimensionalRange,
  r.attractive_range as attractiveRange,
  r.classified_at as classifiedAt
ORDER BY bf.name
`

// KanoRanges fetches the Kano classification ranges of every basic
// fact classified for a market. Each range is a free-text string on
// the relationship, not a structured value.
func KanoRanges(ctx context.Context, r Reader, marketName string) ([]domain.KanoRangeRecord, error) {
	rows, err := r.ReadQuery(ctx, kanoRangesQuery, map[string]any{"marketName": marketName})
	if err != nil {
		return nil, err
	}
	out := make([]domain.KanoRangeRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.KanoRangeRecord{
			FactName:            asString(row["factName"]),
			UnitOfMeasure:       asString(row["unitOfMeasure"]),
			ReverseRange:        asString(row["reverseRange"]),
			MustBeRange:         asString(row["mustBeRange"]),
			OneDimensionalRange: asString(row["oneDimensionalRange"]),
			AttractiveRange:     asString(row["attractiveRange"]),
			ClassifiedAt:        asString(row["classifiedAt"]),
		})
	}
	return out, nil
}
