package services

import (
	"context"
	"errors"
	"strings"

	"github.com/node42/node42-backend/internal/data/graph"
	"github.com/node42/node42-backend/internal/domain"
	"github.com/node42/node42-backend/internal/jtbd"
	"github.com/node42/node42-backend/internal/platform/logger"
)

// ErrMarketNotFound signals a slug that matched no market node.
var ErrMarketNotFound = errors.New("market not found")

type MarketService interface {
	Markets(ctx context.Context, commodityID, companyID string) ([]domain.MarketOption, error)
	MarketBySlug(ctx context.Context, slug string) (*domain.Market, error)
}

type marketService struct {
	reader graph.Reader
	log    *logger.Logger
}

func NewMarketService(reader graph.Reader, log *logger.Logger) MarketService {
	return &marketService{
		reader: reader,
		log:    log.With("service", "MarketService"),
	}
}

func (s *marketService) Markets(ctx context.Context, commodityID, companyID string) ([]domain.MarketOption, error) {
	records, err := graph.Markets(ctx, s.reader, commodityID, companyID)
	if err != nil {
		return nil, err
	}

	options := make([]domain.MarketOption, 0, len(records))
	for _, rec := range records {
		name := rec.Name
		if name == "" {
			name = "Unknown Market"
		}
		options = append(options, domain.MarketOption{
			ID:           rec.Name,
			Name:         name,
			CpcCode:      rec.CpcCode,
			HasCoreJobs:  rec.CoreJobCount > 0,
			CoreJobCount: rec.CoreJobCount,
		})
	}
	return options, nil
}

func (s *marketService) MarketBySlug(ctx context.Context, slug string) (*domain.Market, error) {
	rec, err := graph.MarketBySlug(ctx, s.reader, slug)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrMarketNotFound
	}
	return buildMarket(rec), nil
}

// marketTypes maps graph market_type labels to the closed vocabulary the
// client renders. Anything unrecognized falls back to
// PARTIALLY_OVERSERVED.
var marketTypes = map[string]string{
	"overserved":           "OVERSERVED",
	"partially overserved": "PARTIALLY_OVERSERVED",
	"partially_overserved": "PARTIALLY_OVERSERVED",
	"underserved":          "UNDERSERVED",
	"consumption":          "CONSUMPTION",
	"new market":           "NEW_MARKET",
	"new_market":           "NEW_MARKET",
	"growth":               "GROWTH",
}

func marketType(raw string) string {
	if t, ok := marketTypes[strings.ToLower(raw)]; ok {
		return t
	}
	return "PARTIALLY_OVERSERVED"
}

// parseCriteriaSeverity keeps HIGH and MEDIUM as-is and collapses every
// other rating to LOW.
func parseCriteriaSeverity(rating string) string {
	switch strings.ToUpper(strings.TrimSpace(rating)) {
	case "HIGH":
		return "HIGH"
	case "MEDIUM":
		return "MEDIUM"
	default:
		return "LOW"
	}
}

type criterionSource struct {
	id       int
	title    string
	rating   string
	analysis string
	sources  string
}

func buildMarket(rec *domain.MarketDetailRecord) *domain.Market {
	sources := []criterionSource{
		{1, "Core Functional Job Performance", rec.CfjPerformanceRating, rec.CfjPerformanceReasoning, rec.CfjPerformanceSources},
		{2, "Performance Exceeds Customer Needs", rec.PerformanceExceedsNeedsRating, rec.PerformanceExceedsNeedsAnalysis, rec.PerformanceExceedsNeedsSources},
		{3, "Customers Less Willing to pay for Performance Improvements", rec.WillingnessToPayDecliningRating, rec.WillingnessToPayDecliningAnalysis, rec.WillingnessToPayDecliningSources},
		{4, "Shifting Customer Purchasing Criteria", rec.ShiftingPurchaseCriteriaRating, rec.ShiftingPurchaseCriteriaAnalysis, rec.ShiftingPurchaseCriteriaSources},
		{5, "Incumbents Overserving the Market", rec.IncumbentsOverservingRating, rec.IncumbentsOverservingAnalysis, rec.IncumbentsOverservingSources},
		{6, "New Market Segments Emerging", rec.NewSegmentsEmergingRating, rec.NewSegmentsEmergingAnalysis, rec.NewSegmentsEmergingSources},
		{7, "Decreasing Differentiation", rec.DecreasingDifferentiationRating, rec.DecreasingDifferentiationAnalysis, rec.DecreasingDifferentiationSources},
	}

	criteria := make([]domain.MarketCriteria, 0, len(sources))
	for _, src := range sources {
		if src.rating == "" {
			continue
		}
		description := src.analysis
		if description == "" {
			description = "No analysis available."
		}
		criteria = append(criteria, domain.MarketCriteria{
			ID:          src.id,
			Title:       src.title,
			Severity:    parseCriteriaSeverity(src.rating),
			Description: description,
			Sources:     src.sources,
		})
	}

	coreJobToBeDone := rec.CoreFunctionalJob
	if coreJobToBeDone == "" {
		coreJobToBeDone = rec.Description
	}
	if coreJobToBeDone == "" {
		coreJobToBeDone = "No job definition available."
	}

	return &domain.Market{
		ID:              jtbd.Slugify(rec.Name),
		Name:            rec.Name,
		Type:            marketType(rec.MarketType),
		CoreJobToBeDone: coreJobToBeDone,
		Description:     rec.Description,
		Metrics:         domain.MarketMetrics{},
		Criteria:        criteria,
		CpcCode:         rec.CpcCode,
	}
}
