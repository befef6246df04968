package services

import (
	"context"

	"github.com/node42/node42-backend/internal/data/graph"
	"github.com/node42/node42-backend/internal/domain"
	"github.com/node42/node42-backend/internal/jtbd"
	"github.com/node42/node42-backend/internal/platform/logger"
)

// DefaultCoreFunctionalJob is returned when a market carries no core
// functional job statement in the graph.
const DefaultCoreFunctionalJob = "Enable accurate and efficient filling operations with minimal product waste and maximum uptime"

type JobService interface {
	// CoreJobsForMarket runs four independent sub-queries; each one
	// degrades to zero results on failure so the rest of the view can
	// still be assembled.
	CoreJobsForMarket(ctx context.Context, marketName string) *domain.CoreJobsView
	ProductJobsForCommodity(ctx context.Context, commodityID string) *domain.ProductJobsView
}

type jobService struct {
	reader graph.Reader
	log    *logger.Logger
}

func NewJobService(reader graph.Reader, log *logger.Logger) JobService {
	return &jobService{
		reader: reader,
		log:    log.With("service", "JobService"),
	}
}

func (s *jobService) CoreJobsForMarket(ctx context.Context, marketName string) *domain.CoreJobsView {
	statements, err := graph.ErrorStatements(ctx, s.reader, marketName)
	if err != nil {
		s.log.Error("fetch error statements failed", "market", marketName, "error", err)
		statements = nil
	}
	coreJobs, err := graph.CoreJobs(ctx, s.reader, marketName)
	if err != nil {
		s.log.Error("fetch core jobs failed", "market", marketName, "error", err)
		coreJobs = nil
	}
	jobMapSteps, err := graph.JobMapSteps(ctx, s.reader, marketName)
	if err != nil {
		s.log.Error("fetch job map steps failed", "market", marketName, "error", err)
		jobMapSteps = nil
	}
	coreFunctionalJob, err := graph.CoreFunctionalJob(ctx, s.reader, marketName)
	if err != nil {
		s.log.Error("fetch core functional job failed", "market", marketName, "error", err)
		coreFunctionalJob = ""
	}

	steps := make([]domain.JobMapStep, 0, 8)
	for _, step := range jtbd.RenumberSteps(jobMapSteps) {
		matched := jtbd.StepErrors(step.Name, statements)
		errorStatements := make([]domain.StepErrorStatement, 0, len(matched))
		for _, es := range matched {
			errorStatements = append(errorStatements, domain.StepErrorStatement{
				Statement:       es.Statement,
				Category:        defaultString(es.Category, "General"),
				Impact:          es.Impact,
				KpiName:         es.KpiName,
				KpiUnit:         es.KpiUnit,
				RelatedCoreJobs: defaultSlice(es.RelatedCoreJobs),
			})
		}
		steps = append(steps, domain.JobMapStep{
			Order:           step.Order,
			Name:            step.Name,
			Description:     step.Description,
			ErrorStatements: errorStatements,
			NeedsCount:      len(matched),
		})
	}

	jobsByCategory := make(map[string][]domain.CoreJob)
	for _, job := range coreJobs {
		category := defaultString(job.Category, "General")
		matched := jtbd.CoreJobErrors(job.Name, statements)
		errorStatements := make([]domain.CoreJobErrorStatement, 0, len(matched))
		for _, es := range matched {
			errorStatements = append(errorStatements, domain.CoreJobErrorStatement{
				Statement: es.Statement,
				Category:  defaultString(es.Category, "General"),
				KpiName:   es.KpiName,
				KpiUnit:   es.KpiUnit,
			})
		}
		jobsByCategory[category] = append(jobsByCategory[category], domain.CoreJob{
			Name:            job.Name,
			Statement:       job.Statement,
			Description:     job.Description,
			ErrorStatements: errorStatements,
		})
	}

	if coreFunctionalJob == "" {
		coreFunctionalJob = DefaultCoreFunctionalJob
	}

	return &domain.CoreJobsView{
		Steps:                steps,
		CoreJobs:             jobsByCategory,
		CoreFunctionalJob:    coreFunctionalJob,
		TotalCoreJobs:        len(coreJobs),
		TotalErrorStatements: len(statements),
		TotalJobMapSteps:     len(jobMapSteps),
	}
}

func (s *jobService) ProductJobsForCommodity(ctx context.Context, commodityID string) *domain.ProductJobsView {
	jobs, err := graph.ProductJobs(ctx, s.reader, commodityID)
	if err != nil {
		s.log.Error("fetch product jobs failed", "commodity_id", commodityID, "error", err)
		jobs = nil
	}

	byCategory, counts := jtbd.GroupProductJobs(jobs)
	return &domain.ProductJobsView{
		JobsByCategory: byCategory,
		CategoryCounts: counts,
		TotalJobs:      len(jobs),
		Categories:     jtbd.ProductJobCategories,
	}
}

func defaultString(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func defaultSlice(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
