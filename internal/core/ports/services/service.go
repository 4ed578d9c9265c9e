package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Animal     AnimalSvcFacade
	Pairing    PairingSvcFacade
	Sales      SalesSvcFacade
	Timeline   TimelineSvcFacade
	FollowUp   FollowUpSvcFacade
	Incubation IncubationSvcFacade
	Statistics StatisticsSvcFacade
	Photo      PhotoReaderSvc
	Share      ShareSvcFacade
}
