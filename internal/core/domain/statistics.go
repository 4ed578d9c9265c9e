package domain

import "github.com/shopspring/decimal"

// StatisticsOverview is a read-only aggregate over the whole flock.
type StatisticsOverview struct {
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
