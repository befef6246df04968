package services

import (
	"context"
	"fmt"

	"github.com/node42/node42-backend/internal/data/graph"
	"github.com/node42/node42-backend/internal/domain"
	"github.com/node42/node42-backend/internal/jtbd"
	"github.com/node42/node42-backend/internal/platform/logger"
)

type KanoService interface {
	// FeaturesForMarket returns the Kano classification table for a
	// market with synthesized new-learning annotations applied.
	FeaturesForMarket(ctx context.Context, marketName string) ([]domain.KanoFeature, error)
}

type kanoService struct {
	reader graph.Reader
	log    *logger.Logger
}

func NewKanoService(reader graph.Reader, log *logger.Logger) KanoService {
	return &kanoService{
		reader: reader,
		log:    log.With("service", "KanoService"),
	}
}

func (s *kanoService) FeaturesForMarket(ctx context.Context, marketName string) ([]domain.KanoFeature, error) {
	records, err := graph.KanoRanges(ctx, s.reader, marketName)
	if err != nil {
		return nil, err
	}

	features := make([]domain.KanoFeature, 0, len(records))
	for i, rec := range records {
		var classifiedAt *string
		if rec.ClassifiedAt != "" {
			at := rec.ClassifiedAt
			classifiedAt = &at
		}
		features = append(features, domain.KanoFeature{
			ID:                  fmt.Sprintf("feature-%d", i),
			Name:                rec.FactName,
			UnitOfMeasure:       rec.UnitOfMeasure,
			ReverseRange:        defaultRange(rec.ReverseRange),
			MustBeRange:         defaultRange(rec.MustBeRange),
			OneDimensionalRange: defaultRange(rec.OneDimensionalRange),
			AttractiveRange:     defaultRange(rec.AttractiveRange),
			ClassifiedAt:        classifiedAt,
		})
	}
	return jtbd.ApplyNewLearnings(features), nil
}

func defaultRange(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
