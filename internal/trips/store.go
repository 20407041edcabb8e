// Package trips owns the trip catalogue: search, retrieval, and
// ownership-gated mutation. It depends on the auth store to stamp trip
// ownership and to authorize updates and deletes.
package trips

import (
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tripventure/tripventure-go/internal/auth"
	"github.com/tripventure/tripventure-go/internal/dto"
	"github.com/tripventure/tripventure-go/internal/models"
	"github.com/tripventure/tripventure-go/internal/storage"
)

// Store holds the trip collection, mirrored to durable storage as a full
// snapshot on every mutation.
type Store struct {
	storage *storage.Store
	auth    *auth.Store
	trips   []models.Trip
}

// NewStore loads the persisted trip collection. When none is stored, or the
// stored collection is empty or malformed, the fixed seed catalogue is
// loaded and persisted instead.
func NewStore(st *storage.Store, authStore *auth.Store) (*Store, error) {
	s := &Store{storage: st, auth: authStore}

	var stored []models.Trip
	ok, err := st.GetItem(storage.KeyTrips, &stored)
	if err != nil {
		log.Printf("trips: discarding stored trips: %v", err)
	}
	if ok && err == nil && len(stored) > 0 {
		s.trips = stored
		log.Printf("trips: loaded %d trips from storage", len(stored))
		return s, nil
	}

	s.trips = seedTrips()
	if err := s.save(); err != nil {
		return nil, err
	}
	log.Printf("trips: loaded %d seed trips", len(s.trips))
	return s, nil
}

func (s *Store) save() error {
	return s.storage.SetItem(storage.KeyTrips, s.trips)
}

// SearchTrips returns every trip matching query, preserving storage order.
// An empty or whitespace-only query returns the whole catalogue. Otherwise
// a trip matches when the query is a case-insensitive substring of its
// name, province, description, or any tag.
func (s *Store) SearchTrips(query string) []models.Trip {
	if strings.TrimSpace(query) == "" {
		return append([]models.Trip(nil), s.trips...)
	}

	lower := strings.ToLower(query)
	var matched []models.Trip
	for _, t := range s.trips {
		if strings.Contains(strings.ToLower(t.Name), lower) ||
			strings.Contains(strings.ToLower(t.Province), lower) ||
			strings.Contains(strings.ToLower(t.Description), lower) ||
			anyTagContains(t.Tags, lower) {
			matched = append(matched, t)
		}
	}
	return matched
}

func anyTagContains(tags []string, lowerQuery string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), lowerQuery) {
			return true
		}
	}
	return false
}

// GetTripByID returns the trip with the given id, or ErrNotFound.
func (s *Store) GetTripByID(id string) (models.Trip, error) {
	for _, t := range s.trips {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Trip{}, ErrNotFound
}

// GetUserTrips returns all trips owned by userID, in storage order.
func (s *Store) GetUserTrips(userID string) []models.Trip {
	var owned []models.Trip
	for _, t := range s.trips {
		if t.UserID == userID {
			owned = append(owned, t)
		}
	}
	return owned
}

// CreateTrip appends a new trip owned by the session user. The id, owner,
// and timestamps are assigned here; CreatedAt and UpdatedAt start equal.
// When no short description is supplied one is derived from the description.
func (s *Store) CreateTrip(in dto.CreateTripInput) (models.Trip, error) {
	user := s.auth.CurrentUser()
	if user == nil {
		return models.Trip{}, ErrUnauthenticated
	}

	shortDescription := in.ShortDescription
	if shortDescription == "" {
		shortDescription = ShortDescription(in.Description)
	}

	now := time.Now().UTC()
	trip := models.Trip{
		ID:               uuid.NewString(),
		Name:             in.Name,
		Description:      in.Description,
		ShortDescription: shortDescription,
		Province:         in.Province,
		Images:           in.Images,
		Tags:             in.Tags,
		MapLocation:      in.MapLocation,
		UserID:           user.ID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	s.trips = append(s.trips, trip)
	if err := s.save(); err != nil {
		return models.Trip{}, err
	}
	return trip, nil
}

// UpdateTrip merges the non-nil fields of in into the trip with the given
// id and refreshes UpdatedAt. Only the owning user may update a trip; the
// id, owner, and creation time are immutable.
func (s *Store) UpdateTrip(id string, in dto.UpdateTripInput) (models.Trip, error) {
	user := s.auth.CurrentUser()
	if user == nil {
		return models.Trip{}, ErrUnauthenticated
	}

	i := s.indexOf(id)
	if i < 0 {
		return models.Trip{}, ErrNotFound
	}

	trip := &s.trips[i]
	if trip.UserID != user.ID {
		return models.Trip{}, ErrForbidden
	}

	if in.Name != nil {
		trip.Name = *in.Name
	}
	if in.Description != nil {
		trip.Description = *in.Description
	}
	if in.ShortDescription != nil {
		trip.ShortDescription = *in.ShortDescription
	}
	if in.Province != nil {
		trip.Province = *in.Province
	}
	if in.Images != nil {
		trip.Images = in.Images
	}
	if in.Tags != nil {
		trip.Tags = in.Tags
	}
	if in.MapLocation != nil {
		trip.MapLocation = in.MapLocation
	}
	trip.UpdatedAt = time.Now().UTC()

	if err := s.save(); err != nil {
		return models.Trip{}, err
	}
	return *trip, nil
}

// DeleteTrip removes the trip with the given id. The same authentication
// and ownership checks as UpdateTrip apply.
func (s *Store) DeleteTrip(id string) error {
	user := s.auth.CurrentUser()
	if user == nil {
		return ErrUnauthenticated
	}

	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	if s.trips[i].UserID != user.ID {
		return ErrForbidden
	}

	s.trips = append(s.trips[:i], s.trips[i+1:]...)
	return s.save()
}

func (s *Store) indexOf(id string) int {
	for i, t := range s.trips {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// ShortDescription truncates description to at most 150 characters, cutting
// back to the nearest preceding space and appending an ellipsis marker when
// truncation happens.
func ShortDescription(description string) string {
	const maxLength = 150

	runes := []rune(description)
	if len(runes) <= maxLength {
		return description
	}

	truncated := runes[:maxLength]
	lastSpace := -1
	for i, r := range truncated {
		if r == ' ' {
			lastSpace = i
		}
	}
	if lastSpace > 0 {
		return string(truncated[:lastSpace]) + "..."
	}
	return string(truncated) + "..."
}
