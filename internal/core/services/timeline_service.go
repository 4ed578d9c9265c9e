package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/featherworks/aviary_backend/internal/core/domain"
	portsrepo "github.com/featherworks/aviary_backend/internal/core/ports/repositories"
	portssvc "github.com/featherworks/aviary_backend/internal/core/ports/services"
)

// timelineService reconstructs an animal's event history on every read. It
// merges the animal record, the sale history ledger and the follow-up store;
// it owns no storage and performs no writes.
type timelineService struct {
	animalRepo      portsrepo.AnimalReader
	saleHistoryRepo portsrepo.SaleHistoryReader
	followUpRepo    portsrepo.FollowUpRepository
}

// NewTimelineService creates a new timeline projection service.
func NewTimelineService(animalRepo portsrepo.AnimalReader, saleHistoryRepo portsrepo.SaleHistoryReader, followUpRepo portsrepo.FollowUpRepository) portssvc.TimelineSvcFacade {
	return &timelineService{
		animalRepo:      animalRepo,
		saleHistoryRepo: saleHistoryRepo,
		followUpRepo:    followUpRepo,
	}
}

var _ portssvc.TimelineSvcFacade = (*timelineService)(nil)

func (s *timelineService) BuildTimeline(ctx context.Context, animalID string) ([]domain.TimelineEvent, error) {
	animal, err := s.animalRepo.FindAnimalByID(ctx, animalID)
	if err != nil {
		return nil, err
	}

	events := make([]domain.TimelineEvent, 0, 8)

	if animal.BirthDate != nil {
		events = append(events, domain.TimelineEvent{
			Timestamp:   *animal.BirthDate,
			Type:        domain.TimelineBirth,
			Description: "Born",
		})
	}

	if !animal.CreatedAt.IsZero() {
		events = append(events, domain.TimelineEvent{
			Timestamp:   animal.CreatedAt,
			Type:        domain.TimelineRegistration,
			Description: "Registered",
		})
	}

	if animal.PairedAt != nil && animal.MateID != nil {
		events = append(events, domain.TimelineEvent{
			Timestamp:   *animal.PairedAt,
			Type:        domain.TimelinePairing,
			Description: "Paired with mate",
			Detail:      map[string]string{"mateID": *animal.MateID},
		})
	}

	history, err := s.saleHistoryRepo.ListSaleHistoryByAnimal(ctx, animalID)
	if err != nil {
		return nil, err
	}
	for i := range history {
		entry := &history[i]
		events = append(events, domain.TimelineEvent{
			Timestamp:   entry.SaleDate,
			Type:        domain.TimelineSale,
			Description: fmt.Sprintf("Sold to %s", entry.BuyerName),
			Detail:      saleDetail(entry.EntryID, entry.Seller, entry.BuyerName),
		})
		if entry.ReturnDate != nil {
			detail := map[string]string{"entryID": entry.EntryID}
			if entry.ReturnReason != nil {
				detail["reason"] = *entry.ReturnReason
			}
			events = append(events, domain.TimelineEvent{
				Timestamp:   *entry.ReturnDate,
				Type:        domain.TimelineReturn,
				Description: "Returned",
				Detail:      detail,
			})
		}
	}

	// The open cycle lives on the animal row until a return archives it.
	if animal.Status == domain.StatusSold && animal.HasOpenSale() {
		buyer := ""
		if animal.BuyerName != nil {
			buyer = *animal.BuyerName
		}
		seller := ""
		if animal.Seller != nil {
			seller = *animal.Seller
		}
		events = append(events, domain.TimelineEvent{
			Timestamp:   *animal.SoldAt,
			Type:        domain.TimelineSale,
			Description: fmt.Sprintf("Sold to %s", buyer),
			Detail:      saleDetail("", seller, buyer),
		})
	}

	followUps, err := s.followUpRepo.ListFollowUpsByAnimal(ctx, animalID)
	if err != nil {
		return nil, err
	}
	for i := range followUps {
		fu := &followUps[i]
		if fu.FollowUpDate.IsZero() {
			continue
		}
		events = append(events, domain.TimelineEvent{
			Timestamp:   fu.FollowUpDate,
			Type:        domain.TimelineFollowUp,
			Description: fmt.Sprintf("Follow-up (%s)", fu.Status),
			Detail:      map[string]string{"followUpID": fu.FollowUpID, "status": string(fu.Status)},
		})
	}

	// Stable so same-timestamp events keep insertion order (birth before
	// registration, sale before its return).
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.Before(events[j].Timestamp)
	})
	return events, nil
}

func saleDetail(entryID, seller, buyer string) map[string]string {
	detail := map[string]string{"seller": seller, "buyer": buyer}
	if entryID != "" {
		detail["entryID"] = entryID
	}
	return detail
}
