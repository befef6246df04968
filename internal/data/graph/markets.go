package graph

import (
	"context"
	"strings"

	"github.com/node42/node42-backend/internal/domain"
)

const marketsByCommodityQuery = `
MATCH (c:UNSPSCCommodity)-[:COMMODITY_SERVES_MARKET]->(m:Market)
WHERE c.commodity_id = $commodityId
OPTIONAL MATCH (m)-[:HAS_CORE_JOB]->(cj:JTBDCoreJob)
WITH m, count(DISTINCT cj) as coreJobCount
RETURN DISTINCT
  m.name as name,
  m.cpc_code as cpcCode,
  m.description as description,
  coreJobCount as coreJobCount
ORDER BY coreJobCount DESC, m.name
`

const marketsByCompanyQuery = `
MATCH (company:Company)-[:HAS_PRODUCT]->(p:Product)-[:HAS_UNSPSC_CLASSIFICATION]->(c:UNSPSCCommodity)-[:COMMODITY_SERVES_MARKET]->(m:Market)
WHERE toLower(company.name) CONTAINS toLower($companyId)
OPTIONAL MATCH (m)-[:HAS_CORE_JOB]->(cj:JTBDCoreJob)
WITH m, count(DISTINCT cj) as coreJobCount
RETURN DISTINCT
  m.name as name,
  m.cpc_code as cpcCode,
  m.description as description,
  coreJobCount as coreJobCount
ORDER BY coreJobCount DESC, m.name
`

const marketsAllQuery = `
MATCH (m:Market)
OPTIONAL MATCH (m)-[:HAS_CORE_JOB]->(cj:JTBDCoreJob)
WITH m, count(DISTINCT cj) as coreJobCount
RETURN DISTINCT
  m.name as name,
  m.cpc_code as cpcCode,
  m.description as description,
  coreJobCount as coreJobCount
ORDER BY coreJobCount DESC, m.name
`

// Markets lists markets with their core-job counts, filtered by
// commodity or company when given. Core-job count drives whether the
// market is selectable in the UI.
func Markets(ctx context.Context, r Reader, commodityID, companyID string) ([]domain.MarketRecord, error) {
	var (
		cypher = marketsAllQuery
		params = map[string]any{}
	)
	switch {
	case commodityID != "":
		cypher = marketsByCommodityQuery
		params["commodityId"] = commodityID
	case companyID != "":
		cypher = marketsByCompanyQuery
		params["companyId"] = companyID
	}

	rows, err := r.ReadQuery(ctx, cypher, params)
	if err != nil {
		return nil, err
	}
	out := make([]domain.MarketRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.MarketRecord{
			Name:         asString(row["name"]),
			CpcCode:      asString(row["cpcCode"]),
			Description:  asString(row["description"]),
			CoreJobCount: asInt(row["coreJobCount"]),
		})
	}
	return out, nil
}

const marketBySlugQuery = `
MATCH (m:Market)
WHERE toLower(m.name) CONTAINS toLower($searchPattern)
   OR toLower(replace(m.name, ' ', '-')) = toLower($id)
RETURN m.name AS name,
       m.description AS description,
       m.market_type AS market_type,
       m.core_functional_job AS core_functional_job,
       m.cpc_code AS cpc_code,
       m.market_type_high_count AS market_type_high_count,
       m.cfj_performance_rating AS cfj_performance_rating,
       m.cfj_performance_reasoning AS cfj_performance_reasoning,
       m.cfj_performance_sources AS cfj_performance_sources,
       m.performance_exceeds_needs_rating AS performance_exceeds_needs_rating,
       m.performance_exceeds_needs_analysis AS performance_exceeds_needs_analysis,
       m.performance_exceeds_needs_sources AS performance_exceeds_needs_sources,
       m.willingness_to_pay_declining_rating AS willingness_to_pay_declining_rating,
       m.willingness_to_pay_declining_analysis AS willingness_to_pay_declining_analysis,
       m.willingness_to_pay_declining_sources AS willingness_to_pay_declining_sources,
       m.shifting_purchase_criteria_rating AS shifting_purchase_criteria_rating,
       m.shifting_purchase_criteria_analysis AS shifting_purchase_criteria_analysis,
       m.shifting_purchase_criteria_sources AS shifting_purchase_criteria_sources,
       m.incumbents_overserving_rating AS incumbents_overserving_rating,
       m.incumbents_overserving_analysis AS incumbents_overserving_analysis,
       m.incumbents_overserving_sources AS incumbents_overserving_sources,
       m.new_segments_emerging_rating AS new_segments_emerging_rating,
       m.new_segments_emerging_analysis AS new_segments_emerging_analysis,
       m.new_segments_emerging_sources AS new_segments_emerging_sources,
       m.decreasing_differentiation_rating AS decreasing_differentiation_rating,
       m.decreasing_differentiation_analysis AS decreasing_differentiation_analysis,
       m.decreasing_differentiation_sources AS decreasing_differentiation_sources
LIMIT 1
`

// MarketBySlug loose-matches a market by URL slug: hyphens become
// spaces for a CONTAINS match, with an exact slugified-name fallback.
// Returns nil when nothing matches.
func MarketBySlug(ctx context.Context, r Reader, slug string) (*domain.MarketDetailRecord, error) {
	searchPattern := strings.ReplaceAll(slug, "-", " ")
	rows, err := r.ReadQuery(ctx, marketBySlugQuery, map[string]any{
		"searchPattern": searchPattern,
		"id":            slug,
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	row := rows[0]
	return &domain.MarketDetailRecord{
		Name:                asString(row["name"]),
		Description:         asString(row["description"]),
		MarketType:          asString(row["market_type"]),
		CoreFunctionalJob:   asString(row["core_functional_job"]),
		CpcCode:             asString(row["cpc_code"]),
		MarketTypeHighCount: asInt(row["market_type_high_count"]),

		CfjPerformanceRating:    asString(row["cfj_performance_rating"]),
		CfjPerformanceReasoning: asString(row["cfj_performance_reasoning"]),
		CfjPerformanceSources:   asString(row["cfj_performance_sources"]),

		PerformanceExceedsNeedsRating:   asString(row["performance_exceeds_needs_rating"]),
		PerformanceExceedsNeedsAnalysis: asString(row["performance_exceeds_needs_analysis"]),
		PerformanceExceedsNeedsSources:  asString(row["performance_exceeds_needs_sources"]),

		WillingnessToPayDecliningRating:   asString(row["willingness_to_pay_declining_rating"]),
		WillingnessToPayDecliningAnalysis: asString(row["willingness_to_pay_declining_analysis"]),
		WillingnessToPayDecliningSources:  asString(row["willingness_to_pay_declining_sources"]),

		ShiftingPurchaseCriteriaRating:   asString(row["shifting_purchase_criteria_rating"]),
		ShiftingPurchaseCriteriaAnalysis: asString(row["shifting_purchase_criteria_analysis"]),
		ShiftingPurchaseCriteriaSources:  asString(row["shifting_purchase_criteria_sources"]),

		IncumbentsOverservingRating:   asString(row["incumbents_overserving_rating"]),
		IncumbentsOverservingAnalysis: asString(row["incumbents_overserving_analysis"]),
		IncumbentsOverservingSources:  asString(row["incumbents_overserving_sources"]),

		NewSegmentsEmergingRating:   asString(row["new_segments_emerging_rating"]),
		NewSegmentsEmergingAnalysis: asString(row["new_segments_emerging_analysis"]),
		NewSegmentsEmergingSources:  asString(row["new_segments_emerging_sources"]),

		DecreasingDifferentiationRating:   asString(row["decreasing_differentiation_rating"]),
		DecreasingDifferentiationAnalysis: asString(row["decreasing_differentiation_analysis"]),
		DecreasingDifferentiationSources:  asString(row["decreasing_differentiation_sources"]),
	}, nil
}
