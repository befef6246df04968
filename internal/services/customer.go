package services

import (
	"time"

	"github.com/node42/node42-backend/internal/domain"
)

type CustomerService interface {
	List() []domain.Customer
}

type customerService struct{}

func NewCustomerService() CustomerService {
	return &customerService{}
}

// List returns the pilot customer roster. Customer insight tracking is
// not modeled in the graph yet, so the roster is served from a static
// table with a fresh lastUpdate stamp.
func (s *customerService) List() []domain.Customer {
	lastUpdate := time.Now().Format("02.01.2006")
	return []domain.Customer{
		{
			ID:                   "bechtel",
			Name:                 "Privatmolkerei Bechtel",
			InsightLevel:         "MEDIUM",
			InsightCount:         38,
			LastUpdate:           lastUpdate,
			TotalUpdates:         124,
			NewLearnings:         38,
			ConfirmedAssumptions: "72/52",
			LatestInsight:        "Privatmolkerei Bechtel is a German private dairy specializing in high-quality milk and dairy products.",
		},
		{
			ID:                   "welfen-gymnasium",
			Name:                 "Welfen Gymnasium",
			InsightLevel:         "HIGH",
			InsightCount:         24,
			LastUpdate:           lastUpdate,
			TotalUpdates:         86,
			NewLearnings:         24,
			ConfirmedAssumptions: "48/38",
			LatestInsight:        "Welfen Gymnasium is a German secondary school with modern laboratory facilities for science education.",
		},
	}
}
