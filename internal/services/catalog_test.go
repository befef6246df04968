package services

import (
	"context"
	"testing"

	"github.com/node42/node42-backend/internal/platform/logger"
)

func TestCommoditiesNameDefaultAndAllowList(t *testing.T) {
	t.Parallel()

	reader := &fakeReader{rows: map[string][]map[string]any{
		"UNSPSCCommodity": {
			{"commodityId": "23181501", "name": "Filling machinery"},
			{"commodityId": "24101601", "name": nil},
			{"commodityId": "99999999", "name": "Unrelated"},
		},
	}}
	allowLists := map[string][]string{"bechtel": {"23181501", "24101601"}}
	svc := NewCatalogService(reader, allowLists, logger.NewNop())

	all, err := svc.Commodities(context.Background(), "", "", "")
	if err != nil {
		t.Fatalf("Commodities: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len = %d", len(all))
	}
	if all[1].Name != "Commodity 24101601" {
		t.Errorf("missing name should default: %q", all[1].Name)
	}

	filtered, err := svc.Commodities(context.Background(), "", "", "bechtel")
	if err != nil {
		t.Fatalf("Commodities filtered: %v", err)
	}
	if len(filtered) != 2 {
		t.Fatalf("allow-list filter: %+v", filtered)
	}

	// Unknown customers are not filtered.
	unknown, err := svc.Commodities(context.Background(), "", "", "stranger")
	if err != nil {
		t.Fatalf("Commodities unknown: %v", err)
	}
	if len(unknown) != 3 {
		t.Fatalf("unknown customer should see everything: %+v", unknown)
	}
}

func TestProductsDescriptionFallback(t *testing.T) {
	t.Parallel()

	reader := &fakeReader{rows: map[string][]map[string]any{
		"Product": {
			{"name": "FlexFill 3000", "company": "Acme", "description": "", "commodityId": "23181501", "commodityTitle": "Filling machinery"},
		},
	}}
	svc := NewCatalogService(reader, nil, logger.NewNop())

	products, err := svc.Products(context.Background(), "", "")
	if err != nil {
		t.Fatalf("Products: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("len = %d", len(products))
	}
	if products[0].ID != "flexfill-3000" {
		t.Errorf("id = %q", products[0].ID)
	}
	if products[0].Description != "Filling machinery" {
		t.Errorf("description should fall back to commodity title: %q", products[0].Description)
	}
}

func TestUnspscClassesGrouping(t *testing.T) {
	t.Parallel()

	reader := &fakeReader{rows: map[string][]map[string]any{
		"UNSPSCSegment": {
			{"className": "Dairy machinery", "classId": "231815", "familyName": "Food machinery", "familyId": "2318", "segmentName": "Industrial Machinery", "segmentId": "23"},
			{"className": "Bottling machinery", "classId": "231816", "familyName": "Food machinery", "familyId": "2318", "segmentName": "Industrial Machinery", "segmentId": "23"},
			{"className": "Lab equipment", "classId": "411039", "familyName": nil, "familyId": nil, "segmentName": nil, "segmentId": nil},
			{"className": nil, "classId": "000000"},
		},
	}}
	svc := NewCatalogService(reader, nil, logger.NewNop())

	classes, grouped, err := svc.UnspscClasses(context.Background(), "Acme")
	if err != nil {
		t.Fatalf("UnspscClasses: %v", err)
	}
	// Null class names are dropped.
	if len(classes) != 3 {
		t.Fatalf("len = %d", len(classes))
	}
	if classes[2].FamilyName != "Unknown Family" || classes[2].SegmentName != "Unknown Segment" {
		t.Errorf("defaults not applied: %+v", classes[2])
	}

	seg, ok := grouped["23"]
	if !ok {
		t.Fatalf("segment 23 missing: %v", grouped)
	}
	fam, ok := seg.Families["2318"]
	if !ok || len(fam.Classes) != 2 {
		t.Fatalf("family grouping: %+v", seg.Families)
	}
	if _, ok := grouped["Unknown Segment"]; !ok {
		t.Errorf("segments without ids key by name: %v", grouped)
	}
}

func TestUnspscCommoditiesFiltersNullNames(t *testing.T) {
	t.Parallel()

	reader := &fakeReader{rows: map[string][]map[string]any{
		"UNSPSCCommodity": {
			{"name": "Filling machinery", "commodityId": "23181501"},
			{"name": nil, "commodityId": "24101601"},
		},
	}}
	svc := NewCatalogService(reader, nil, logger.NewNop())

	commodities, err := svc.UnspscCommodities(context.Background(), "Acme", "")
	if err != nil {
		t.Fatalf("UnspscCommodities: %v", err)
	}
	if len(commodities) != 1 || commodities[0].Value != "Filling machinery" {
		t.Fatalf("commodities = %+v", commodities)
	}
}
