package dto

import (
	"github.com/featherworks/aviary_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StatisticsOverviewResponse is the flock-wide dashboard aggregate.
type StatisticsOverviewResponse struct {
	TotalAnimals      int64            `json:"totalAnimals"`
	AvailableAnimals  int64            `json:"availableAnimals"`
	BreedingAnimals   int64            `json:"breedingAnimals"`
	PairedAnimals     int64            `json:"pairedAnimals"`
	IncubatingAnimals int64            `json:"incubatingAnimals"`
	SoldAnimals       int64            `json:"soldAnimals"`
	ReturnedAnimals   int64            `json:"returnedAnimals"`
	SpeciesCounts     map[string]int64 `json:"speciesCounts"`
	OpenSaleRevenue   decimal.Decimal  `json:"openSaleRevenue"`
	ArchivedCycles    int64            `json:"archivedCycles"`
}

// ToStatisticsOverviewResponse converts the domain aggregate
func ToStatisticsOverviewResponse(o *domain.StatisticsOverview) StatisticsOverviewResponse {
	return StatisticsOverviewResponse{
		TotalAnimals:      o.TotalAnimals,
		AvailableAnimals:  o.AvailableAnimals,
		BreedingAnimals:   o.BreedingAnimals,
		PairedAnimals:     o.PairedAnimals,
		IncubatingAnimals: o.IncubatingAnimals,
		SoldAnimals:       o.SoldAnimals,
		ReturnedAnimals:   o.ReturnedAnimals,
		SpeciesCounts:     o.SpeciesCounts,
		OpenSaleRevenue:   o.OpenSaleRevenue,
		ArchivedCycles:    o.ArchivedCycles,
	}
}
