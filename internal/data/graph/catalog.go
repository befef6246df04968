package graph

import (
	"context"

	"github.com/node42/node42-backend/internal/domain"
)

const companiesQuery = `
MATCH (c:Company)
WHERE c.name IS NOT NULL
RETURN DISTINCT c.name AS name
ORDER BY c.name ASC
`

func Companies(ctx context.Context, r Reader) ([]string, error) {
	rows, err := r.ReadQuery(ctx, companiesQuery, map[string]any{})
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, asString(row["name"]))
	}
	return out, nil
}

const commoditiesByProductQuery = `
MATCH (p:Product)-[:HAS_UNSPSC_CLASSIFICATION]->(c:UNSPSCCommodity)
WHERE toLower(p.name) CONTAINS toLower($productName)
RETURN DISTINCT
  c.commodity_id as commodityId,
  c.commodity_title as name
ORDER BY c.commodity_title
LIMIT 50
`

const commoditiesByCompanyQuery = `
MATCH (company:Company)-[:HAS_PRODUCT]->(p:Product)-[:HAS_UNSPSC_CLASSIFICATION]->(c:UNSPSCCommodity)
WHERE toLower(company.name) CONTAINS toLower($companyId)
RETURN DISTINCT
  c.commodity_id as commodityId,
  c.commodity_title as name
ORDER BY c.commodity_title
LIMIT 50
`

const commoditiesWithConstraintsQuery = `
MATCH (c:UNSPSCCommodity)-[:HAS_CONSTRAINT]->(constraint:CommodityConstraint)
RETURN DISTINCT
  c.commodity_id as commodityId,
  c.commodity_title as name
ORDER BY c.commodity_title
LIMIT 50
`

// Commodities lists UNSPSC commodities, narrowed by product name or
// company when given; the default variant returns only commodities that
// carry constraints, the useful set for analysis.
func Commodities(ctx context.Context, r Reader, companyID, productName string) ([]domain.CommodityRecord, error) {
	var (
		cypher = commoditiesWithConstraintsQuery
		params = map[string]any{}
	)
	switch {
	case productName != "":
		cypher = commoditiesByProductQuery
		params["productName"] = productName
	case companyID != "":
		cypher = commoditiesByCompanyQuery
		params["companyId"] = companyID
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

const productsByCommodityAndCompanyQuery = `
MATCH (company:Company)-[:HAS_PRODUCT]->(p:Product)-[:HAS_UNSPSC_CLASSIFICATION]->(c:UNSPSCCommodity)
WHERE c.commodity_id = $commodityId AND toLower(company.name) CONTAINS toLower($companyId)
RETURN
  p.name as name,
  p.company as company,
  p.description as description,
  c.commodity_id as commodityId,
  c.commodity_title as commodityTitle
ORDER BY p.name
`

const productsByCommodityQuery = `
MATCH (p:Product)-[:HAS_UNSPSC_CLASSIFICATION]->(c:UNSPSCCommodity)
WHERE c.commodity_id = $commodityId
RETURN
  p.name as name,
  p.company as company,
  p.description as description,
  c.commodity_id as commodityId,
  c.commodity_title as commodityTitle
ORDER BY p.name
`

const productsByCompanyQuery = `
MATCH (company:Company)-[:HAS_PRODUCT]->(p:Product)
WHERE toLower(company.name) CONTAINS toLower($companyId)
OPTIONAL MATCH (p)-[:HAS_UNSPSC_CLASSIFICATION]->(c:UNSPSCCommodity)
RETURN
  p.name as name,
  p.company as company,
  p.description as description,
  c.commodity_id as commodityId,
  c.commodity_title as commodityTitle
ORDER BY p.name
`

const productsAllQuery = `
MATCH (p:Product)
OPTIONAL MATCH (p)-[:HAS_UNSPSC_CLASSIFICATION]->(c:UNSPSCCommodity)
RETURN
  p.name as name,
  p.company as company,
  p.description as description,
  c.commodity_id as commodityId,
  c.commodity_title as commodityTitle
ORDER BY p.name
`

// Products lists products with their commodity classification, filtered
// by company and/or commodity when given.
func Products(ctx context.Context, r Reader, companyID, commodityID string) ([]domain.ProductRecord, error) {
	var (
		cypher = productsAllQuery
		params = map[string]any{}
	)
	switch {
	case commodityID != "" && companyID != "":
		cypher = productsByCommodityAndCompanyQuery
		params["commodityId"] = commodityID
		params["companyId"] = companyID
	case commodityID != "":
		cypher = productsByCommodityQuery
		params["commodityId"] = commodityID
	case companyID != "":
		cypher = productsByCompanyQuery
		params["companyId"] = companyID
	}

	rows, err := r.ReadQuery(ctx, cypher, params)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ProductRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.ProductRecord{
			Name:           asString(row["name"]),
			Company:        asString(row["company"]),
			Description:    asString(row["description"]),
			CommodityID:    asString(row["commodityId"]),
			CommodityTitle: asString(row["commodityTitle"]),
		})
	}
	return out, nil
}
