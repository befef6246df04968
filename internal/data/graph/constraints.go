package graph

import (
	"context"

	"github.com/node42/node42-backend/internal/domain"
)

const constraintsQuery = `
MATCH (c:UNSPSCCommodity {commodity_id: $commodityId})-[:HAS_CONSTRAINT]->(con:CommodityConstraint)
RETURN con.name as name, con.description as description,
       con.category as category, con.impact_severity as impact_severity
ORDER BY con.impact_severity, con.category, con.name
`

// Constraints fetches every constraint attached to a commodity.
func Constraints(ctx context.Context, r Reader, commodityID string) ([]domain.ConstraintRecord, error) {
	rows, err := r.ReadQuery(ctx, constraintsQuery, map[string]any{"commodityId": commodityID})
	if err != nil {
		return nil, err
	}
	out := make([]domain.ConstraintRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.ConstraintRecord{
			Name:        asString(row["name"]),
			Description: asString(row["description"]),
			Category:    asString(row["category"]),
			Severity:    asString(row["impact_severity"]),
		})
	}
	return out, nil
}
