package services

import (
	"context"

	"github.com/node42/node42-backend/internal/data/graph"
	"github.com/node42/node42-backend/internal/domain"
	"github.com/node42/node42-backend/internal/jtbd"
	"github.com/node42/node42-backend/internal/platform/logger"
)

type CatalogService interface {
	Companies(ctx context.Context) ([]domain.SelectOption, error)
	Commodities(ctx context.Context, companyID, productName, customerID string) ([]domain.CommodityOption, error)
	Products(ctx context.Context, companyID, commodityID string) ([]domain.Product, error)
	UnspscClasses(ctx context.Context, companyName string) ([]domain.UnspscClassOption, map[string]*domain.UnspscSegmentGroup, error)
	UnspscCommodities(ctx context.Context, companyName, className string) ([]domain.UnspscCommodityOption, error)
}

type catalogService struct {
	reader     graph.Reader
	allowLists map[string][]string
	log        *logger.Logger
}

// NewCatalogService wires the read-side catalog queries. allowLists maps
// a customer id to the commodity ids that customer may see.
func NewCatalogService(reader graph.Reader, allowLists map[string][]string, log *logger.Logger) CatalogService {
	return &catalogService{
		reader:     reader,
		allowLists: allowLists,
		log:        log.With("service", "CatalogService"),
	}
}

func (s *catalogService) Companies(ctx context.Context) ([]domain.SelectOption, error) {
	names, err := graph.Companies(ctx, s.reader)
	if err != nil {
		return nil, err
	}
	options := make([]domain.SelectOption, 0, len(names))
	for _, name := range names {
		options = append(options, domain.SelectOption{Value: name, Label: name})
	}
	return options, nil
}

func (s *catalogService) Commodities(ctx context.Context, companyID, productName, customerID string) ([]domain.CommodityOption, error) {
	records, err := graph.Commodities(ctx, s.reader, companyID, productName)
	if err != nil {
		return nil, err
	}

	options := make([]domain.CommodityOption, 0, len(records))
	for _, rec := range records {
		name := rec.Name
		if name == "" {
			name = "Commodity " + rec.CommodityID
		}
		options = append(options, domain.CommodityOption{
			ID:          rec.CommodityID,
			Name:        name,
			CommodityID: rec.CommodityID,
		})
	}

	if customerID == "" {
		return options, nil
	}
	allowed, ok := s.allowLists[customerID]
	if !ok {
		return options, nil
	}

	allowedSet := make(map[string]struct{}, len(allowed))
	for _, id := range allowed {
		allowedSet[id] = struct{}{}
	}
	filtered := make([]domain.CommodityOption, 0, len(options))
	for _, opt := range options {
		if _, ok := allowedSet[opt.CommodityID]; ok {
			filtered = append(filtered, opt)
		}
	}
	return filtered, nil
}

func (s *catalogService) Products(ctx context.Context, companyID, commodityID string) ([]domain.Product, error) {
	records, err := graph.Products(ctx, s.reader, companyID, commodityID)
	if err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(records))
	for _, rec := range records {
		description := rec.Description
		if description == "" {
			description = rec.CommodityTitle
		}
		products = append(products, domain.Product{
			ID:          jtbd.Slugify(rec.Name),
			Name:        rec.Name,
			Description: description,
			CommodityID: rec.CommodityID,
		})
	}
	return products, nil
}

func (s *catalogService) UnspscClasses(ctx context.Context, companyName string) ([]domain.UnspscClassOption, map[string]*domain.UnspscSegmentGroup, error) {
	records, err := graph.UnspscClasses(ctx, s.reader, companyName)
	if err != nil {
		return nil, nil, err
	}

	options := make([]domain.UnspscClassOption, 0, len(records))
	grouped := make(map[string]*domain.UnspscSegmentGroup)
	for _, rec := range records {
		if rec.ClassName == "" {
			continue
		}
		familyName := rec.FamilyName
		if familyName == "" {
			familyName = "Unknown Family"
		}
		segmentName := rec.SegmentName
		if segmentName == "" {
			segmentName = "Unknown Segment"
		}

		options = append(options, domain.UnspscClassOption{
			Value:       rec.ClassName,
			Label:       rec.ClassName,
			ClassID:     rec.ClassID,
			FamilyName:  familyName,
			FamilyID:    rec.FamilyID,
			SegmentName: segmentName,
			SegmentID:   rec.SegmentID,
		})

		segKey := rec.SegmentID
		if segKey == "" {
			segKey = segmentName
		}
		segment, ok := grouped[segKey]
		if !ok {
			segment = &domain.UnspscSegmentGroup{
				SegmentName: segmentName,
				SegmentID:   rec.SegmentID,
				Families:    make(map[string]*domain.UnspscFamilyGroup),
			}
			grouped[segKey] = segment
		}

		famKey := rec.FamilyID
		if famKey == "" {
			famKey = familyName
		}
		family, ok := segment.Families[famKey]
		if !ok {
			family = &domain.UnspscFamilyGroup{
				FamilyName: familyName,
				FamilyID:   rec.FamilyID,
			}
			segment.Families[famKey] = family
		}
		family.Classes = append(family.Classes, domain.UnspscClassRef{
			Value:   rec.ClassName,
			Label:   rec.ClassName,
			ClassID: rec.ClassID,
		})
	}
	return options, grouped, nil
}

func (s *catalogService) UnspscCommodities(ctx context.Context, companyName, className string) ([]domain.UnspscCommodityOption, error) {
	records, err := graph.UnspscCommodities(ctx, s.reader, companyName, className)
	if err != nil {
		return nil, err
	}

	options := make([]domain.UnspscCommodityOption, 0, len(records))
	for _, rec := range records {
		if rec.Name == "" {
			continue
		}
		options = append(options, domain.UnspscCommodityOption{
			Value:       rec.Name,
			Label:       rec.Name,
			CommodityID: rec.CommodityID,
		})
	}
	return options, nil
}
