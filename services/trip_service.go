// services/trip_service.go
package services

import (
	"log"
	"math"
	"sync"
	"time"

	"github.com/vacai/vacai-backend/models"
	"github.com/vacai/vacai-backend/utils"
)

// tripStore is the durable-store surface the service needs. The repository
// satisfies it; tests substitute an in-memory fake.
type tripStore interface {
	LoadTrips() []*models.Trip
	SaveTrips(trips []*models.Trip) error
}

// TripService owns the in-memory trip collection mirroring the durable
// store. Every mutation persists the full collection before the cache is
// swapped, so readers never observe a state the store does not hold.
type TripService struct {
	store tripStore
	mu    sync.RWMutex
	trips []*models.Trip
}

// NewTripService creates a TripService and loads the trip collection from
// the store. A missing or unreadable store starts the service empty.
func NewTripService(store tripStore) *TripService {
	return &TripService{
		store: store,
		trips: store.LoadTrips(),
	}
}

// ListTrips returns all trips in creation order.
func (s *TripService) ListTrips() []*models.Trip {
	s.mu.RLock()
	defer s.mu.RUnlock()

	trips := make([]*models.Trip, len(s.trips))
	copy(trips, s.trips)
	return trips
}

// GetTrip returns a single trip by ID.
func (s *TripService) GetTrip(id string) (*models.Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, trip := range s.trips {
		if trip.ID == id {
			t := *trip
			return &t, nil
		}
	}
	return nil, utils.NewNotFoundError("trip")
}

// CreateTrip validates and persists a new trip. Creating a trip whose ID
// already exists is a conflict, and the store is left untouched.
func (s *TripService) CreateTrip(trip *models.Trip) (*models.Trip, error) {
	if err := utils.ValidateRequired(trip.Destination, "destination"); err != nil {
		return nil, err
	}
	if trip.EndDate.Before(trip.StartDate) {
		return nil, utils.NewValidationError("end date cannot be before start date")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.trips {
		if existing.ID == trip.ID {
			return nil, utils.NewConflictError("trip with this id already exists")
		}
	}

	next := make([]*models.Trip, len(s.trips), len(s.trips)+1)
	copy(next, s.trips)
	next = append(next, trip)

	if err := s.persist(next); err != nil {
		return nil, err
	}
	s.trips = next
	return trip, nil
}

// UpdateTrip merges the provided fields into an existing trip. The merge is
// shallow: a provided collection replaces the stored one wholesale.
func (s *TripService) UpdateTrip(id string, req *models.UpdateTripRequest) (*models.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := -1
	for i, trip := range s.trips {
		if trip.ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, utils.NewNotFoundError("trip")
	}

	updated := *s.trips[index]
	if err := mergeTrip(&updated, req); err != nil {
		return nil, err
	}
	if updated.EndDate.Before(updated.StartDate) {
		return nil, utils.NewValidationError("end date cannot be before start date")
	}

	next := make([]*models.Trip, len(s.trips))
	copy(next, s.trips)
	next[index] = &updated

	if err := s.persist(next); err != nil {
		return nil, err
	}
	s.trips = next
	return &updated, nil
}

// DeleteTrip removes a trip from cache and store. Deleting an absent trip
// is a no-op so retries stay safe.
func (s *TripService) DeleteTrip(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := -1
	for i, trip := range s.trips {
		if trip.ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return nil
	}

	next := make([]*models.Trip, 0, len(s.trips)-1)
	next = append(next, s.trips[:index]...)
	next = append(next, s.trips[index+1:]...)

	if err := s.persist(next); err != nil {
		return err
	}
	s.trips = next
	return nil
}

// UpcomingTrips returns trips whose start date is strictly in the future,
// in original order.
func (s *TripService) UpcomingTrips() []*models.Trip {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := time.Now()
	upcoming := []*models.Trip{}
	for _, trip := range s.trips {
		if trip.StartDate.After(now) {
			upcoming = append(upcoming, trip)
		}
	}
	return upcoming
}

// PackingProgress returns the packed percentage for a trip, rounded to the
// nearest integer. Unknown trips and empty packing lists report 0.
func (s *TripService) PackingProgress(id string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, trip := range s.trips {
		if trip.ID != id {
			continue
		}
		if len(trip.PackingList) == 0 {
			return 0
		}
		packed := 0
		for _, item := range trip.PackingList {
			if item.Packed {
				packed++
			}
		}
		return int(math.Round(float64(packed) / float64(len(trip.PackingList)) * 100))
	}
	return 0
}

// persist writes the candidate collection to the store. Callers only swap
// the cache after persist succeeds.
func (s *TripService) persist(trips []*models.Trip) error {
	if err := s.store.SaveTrips(trips); err != nil {
		log.Printf("Error persisting trips: %v", err)
		return utils.NewStorageError(utils.ErrFailedToStore)
	}
	return nil
}

// mergeTrip applies the non-nil fields of an update request.
func mergeTrip(trip *models.Trip, req *models.UpdateTripRequest) error {
	if req.Destination != nil {
		if err := utils.ValidateRequired(*req.Destination, "destination"); err != nil {
			return err
		}
		trip.Destination = *req.Destination
	}
	if req.StartDate != nil {
		start, err := utils.ParseDate(*req.StartDate)
		if err != nil {
			return err
		}
		trip.StartDate = start
	}
	if req.EndDate != nil {
		end, err := utils.ParseDate(*req.EndDate)
		if err != nil {
			return err
		}
		trip.EndDate = end
	}
	if req.ImageURL != nil {
		trip.ImageURL = *req.ImageURL
	}
	if req.Description != nil {
		trip.Description = *req.Description
	}
	if req.Activities != nil {
		trip.Activities = *req.Activities
	}
	if req.Schedule != nil {
		trip.Schedule = *req.Schedule
	}
	if req.PackingList != nil {
		trip.PackingList = *req.PackingList
	}
	return nil
}
