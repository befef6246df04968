package graph

import (
	"context"

	"github.com/node42/node42-backend/internal/domain"
)

const unspscClassesQuery = `
MATCH (c:Company)-[:HAS_PRODUCT]->(p:Product)-[:HAS_UNSPSC_CLASSIFICATION]->(com:UNSPSCCommodity)
WHERE c.name = $companyName
MATCH (cls:UNSPSCClass)-[:HAS_COMMODITY]->(com)
MATCH (fam:UNSPSCFamily)-[:HAS_CLASS]->(cls)
MATCH (seg:UNSPSCSegment)-[:HAS_FAMILY]->(fam)
RETURN DISTINCT
  cls.class_title AS className,
  cls.class_id AS classId,
  fam.family_title AS familyName,
  fam.family_id AS familyId,
  seg.segment_title AS segmentName,
  seg.segment_id AS segmentId
ORDER BY seg.segment_id, fam.family_id, cls.class_id
`

// UnspscClasses walks the classification hierarchy from a company's
// products up through class, family and segment.
func UnspscClasses(ctx context.Context, r Reader, companyName string) ([]domain.UnspscClassRecord, error) {
	rows, err := r.ReadQuery(ctx, unspscClassesQuery, map[string]any{"companyName": companyName})
	if err != nil {
		return nil, err
	}
	out := make([]domain.UnspscClassRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.UnspscClassRecord{
			ClassName:   asString(row["className"]),
			ClassID:     asString(row["classId"]),
			FamilyName:  asString(row["familyName"]),
			FamilyID:    asString(row["familyId"]),
			SegmentName: asString(row["segmentName"]),
			SegmentID:   asString(row["segmentId"]),
		})
	}
	return out, nil
}

const unspscCommoditiesByClassQuery = `
MATCH (c:Company)-[:HAS_PRODUCT]->(p:Product)-[:HAS_UNSPSC_CLASSIFICATION]->(com:UNSPSCCommodity)
WHERE c.name = $companyName
MATCH (cls:UNSPSCClass)-[:HAS_COMMODITY]->(com)
WHERE cls.class_title = $className
RETURN DISTINCT com.commodity_title AS name, com.commodity_id AS commodityId
ORDER BY com.commodity_id ASC
`

const unspscCommoditiesQuery = `
MATCH (c:Company)-[:HAS_PRODUCT]->(p:Product)-[:HAS_UNSPSC_CLASSIFICATION]->(com:UNSPSCCommodity)
WHERE c.name = $companyName
RETURN DISTINCT com.commodity_title AS name, com.commodity_id AS commodityId
ORDER BY com.commodity_id ASC
`

// UnspscCommodities lists a company's classified commodities, narrowed
// to one class when given.
func UnspscCommodities(ctx context.Context, r Reader, companyName, className string) ([]domain.CommodityRecord, error) {
	cypher := unspscCommoditiesQuery
	params := map[string]any{"companyName": companyName}
	if className != "" {
		cypher = unspscCommoditiesByClassQuery
		params["className"] = className
	}

	rows, err := r.ReadQuery(ctx, cypher, params)
	if err != nil {
		return nil, err
	}
	out := make([]domain.CommodityRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.CommodityRecord{
			CommodityID: asString(row["commodityId"]),
			Name:        asString(row["name"]),
		})
	}
	return out, nil
}
