package graph

import (
	"context"

	"github.com/node42/node42-backend/internal/domain"
)

const errorStatementsQuery = `
MATCH (m:Market {name: $marketName})-[:HAS_ERROR_STATEMENT]->(es:JTBDErrorStatement)
RETURN es.statement as statement, es.category as category, es.impact as impact,
       es.kpi_name as kpi_name, es.kpi_unit as kpi_unit,
       es.related_job_map_steps as related_job_map_steps,
       es.related_core_jobs as related_core_jobs
ORDER BY es.category
`

// ErrorStatements fetches the documented failure modes ("market needs")
// for a market. The related step/job lists are free-text names, not
// graph relationships.
func ErrorStatements(ctx context.Context, r Reader, marketName string) ([]domain.ErrorStatementRecord, error) {
	rows, err := r.ReadQuery(ctx, errorStatementsQuery, map[string]any{"marketName": marketName})
	if err != nil {
		return nil, err
	}
	out := make([]domain.ErrorStatementRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.ErrorStatementRecord{
			Statement:          asString(row["statement"]),
			Category:           asString(row["category"]),
			Impact:             asString(row["impact"]),
			KpiName:            asString(row["kpi_name"]),
			KpiUnit:            asString(row["kpi_unit"]),
			RelatedJobMapSteps: asStringSlice(row["related_job_map_steps"]),
			RelatedCoreJobs:    asStringSlice(row["related_core_jobs"]),
		})
	}
	return out, nil
}

const coreJobsQuery = `
MATCH (m:Market {name: $marketName})-[:HAS_CORE_JOB]->(cj:JTBDCoreJob)
RETURN cj.name as name, cj.statement as statement,
       cj.category as category, cj.description as description
ORDER BY cj.category, cj.name
`

func CoreJobs(ctx context.Context, r Reader, marketName string) ([]domain.CoreJobRecord, error) {
	rows, err := r.ReadQuery(ctx, coreJobsQuery, map[string]any{"marketName": marketName})
	if err != nil {
		return nil, err
	}
	out := make([]domain.CoreJobRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.CoreJobRecord{
			Name:        asString(row["name"]),
			Statement:   asString(row["statement"]),
			Category:    asString(row["category"]),
			Description: asString(row["description"]),
		})
	}
	return out, nil
}

const jobMapStepsQuery = `
MATCH (m:Market {name: $marketName})-[:HAS_JOB_MAP_STEP]->(s:JTBDJobMapStep)
RETURN s.name as name, s.description as description, s.step_number as step_number
ORDER BY s.step_number
`

// JobMapSteps fetches the market's job-map steps. Step numbers are
// coerced to plain ints here; gaps and duplicates are resolved by the
// aggregation layer.
func JobMapSteps(ctx context.Context, r Reader, marketName string) ([]domain.JobMapStepRecord, error) {
	rows, err := r.ReadQuery(ctx, jobMapStepsQuery, map[string]any{"marketName": marketName})
	if err != nil {
		return nil, err
	}
	out := make([]domain.JobMapStepRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.JobMapStepRecord{
			Name:        asString(row["name"]),
			Description: asString(row["description"]),
			StepNumber:  asInt(row["step_number"]),
		})
	}
	return out, nil
}

const coreFunctionalJobQuery = `
MATCH (m:Market {name: $marketName})
RETURN m.core_functional_job as cfj, m.jtbd_cfj as jtbd_cfj
`

// CoreFunctionalJob returns the market's core functional job statement,
// preferring the JTBD-specific property. Empty when the market carries
// neither.
func CoreFunctionalJob(ctx context.Context, r Reader, marketName string) (string, error) {
	rows, err := r.ReadQuery(ctx, coreFunctionalJobQuery, map[string]any{"marketName": marketName})
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", nil
	}
	if cfj := asString(rows[0]["jtbd_cfj"]); cfj != "" {
		return cfj, nil
	}
	return asString(rows[0]["cfj"]), nil
}

const productJobsQuery = `
MATCH (c:UNSPSCCommodity {commodity_id: $commodityId})-[:HAS_PRODUCT_JOB]->(pj:JTBDProductJob)
RETURN pj.name as name, pj.statement as statement, pj.description as description,
       pj.category as category, pj.level as level, pj.use_context as use_context,
       pj.user_group as user_group, pj.frequency as frequency
ORDER BY pj.category, pj.name
`

func ProductJobs(ctx context.Context, r Reader, commodityID string) ([]domain.ProductJobRecord, error) {
	rows, err := r.ReadQuery(ctx, productJobsQuery, map[string]any{"commodityId": commodityID})
	if err != nil {
		return nil, err
	}
	out := make([]domain.ProductJobRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.ProductJobRecord{
			Name:        asString(row["name"]),
			Statement:   asString(row["statement"]),
			Description: asString(row["description"]),
			Category:    asString(row["category"]),
			Level:       asString(row["level"]),
			UseContext:  asString(row["use_context"]),
			UserGroup:   asString(row["user_group"]),
			Frequency:   asString(row["frequency"]),
		})
	}
	return out, nil
}
