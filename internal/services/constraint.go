package services

import (
	"context"

	"github.com/node42/node42-backend/internal/data/graph"
	"github.com/node42/node42-backend/internal/domain"
	"github.com/node42/node42-backend/internal/jtbd"
	"github.com/node42/node42-backend/internal/platform/logger"
)

type ConstraintService interface {
	// ConstraintsForCommodity never fails: a query error degrades to an
	// empty view so the client renders an empty state.
	ConstraintsForCommodity(ctx context.Context, commodityID string) *domain.ConstraintsView
}

type constraintService struct {
	reader graph.Reader
	log    *logger.Logger
}

func NewConstraintService(reader graph.Reader, log *logger.Logger) ConstraintService {
	return &constraintService{
		reader: reader,
		log:    log.With("service", "ConstraintService"),
	}
}

func (s *constraintService) ConstraintsForCommodity(ctx context.Context, commodityID string) *domain.ConstraintsView {
	records, err := graph.Constraints(ctx, s.reader, commodityID)
	if err != nil {
		s.log.Error("fetch constraints failed", "commodity_id", commodityID, "error", err)
		records = nil
	}

	sorted := jtbd.SortConstraints(records)

	return &domain.ConstraintsView{
		ConstraintsBySeverity: jtbd.GroupBySeverity(sorted),
		ConstraintsByCategory: jtbd.GroupByCategory(sorted),
		Constraints:           jtbd.FlatConstraints(sorted),
		SeverityCounts:        jtbd.SeverityCounts(records),
		AllConstraints:        jtbd.AllConstraints(sorted),
		TotalConstraints:      len(records),
		Severities:            jtbd.Severities,
	}
}
