package services

import (
	portsrepo "github.com/featherworks/aviary_backend/internal/core/ports/repositories"
	portssvc "github.com/featherworks/aviary_backend/internal/core/ports/services"
)

// NewServiceContainer wires every service from the repository provider.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Animal:     NewAnimalService(repos.AnimalRepo),
		Pairing:    NewPairingService(repos.AnimalRepo),
		Sales:      NewSalesService(repos.AnimalRepo, repos.SaleHistoryRepo),
		Timeline:   NewTimelineService(repos.AnimalRepo, repos.SaleHistoryRepo, repos.FollowUpRepo),
		FollowUp:   NewFollowUpService(repos.FollowUpRepo, repos.AnimalRepo),
		Incubation: NewIncubationService(repos.IncubationRepo, repos.AnimalRepo),
		Statistics: NewStatisticsService(repos.StatisticsRepo),
		Photo:      NewPhotoService(repos.PhotoRepo),
		Share:      NewShareLinkService(repos.ShareLinkRepo, repos.AnimalRepo, repos.PhotoRepo),
	}
}
