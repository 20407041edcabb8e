package dto

import "github.com/tripventure/tripventure-go/internal/models"

// CreateTripInput carries the caller-supplied fields for a new trip.
// ID, owner, and timestamps are assigned by the store, never by the caller.
type CreateTripInput struct {
	Name             string              `json:"name"`
	Description      string              `json:"description"`
	ShortDescription string              `json:"shortDescription"` // derived from Description when empty
	Province         string              `json:"province"`
	Images           []string            `json:"images"`
	Tags             []string            `json:"tags,omitempty"`
	MapLocation      *models.MapLocation `json:"mapLocation,omitempty"`
}

// UpdateTripInput carries a partial update for an existing trip.
// All fields are optional; only non-nil ones are merged in.
// ID, owner, and creation time cannot be changed.
type UpdateTripInput struct {
	Name             *string             `json:"name"`
	Description      *string             `json:"description"`
	ShortDescription *string             `json:"shortDescription"`
	Province         *string             `json:"province"`
	Images           []string            `json:"images"`
	Tags             []string            `json:"tags"`
	MapLocation      *models.MapLocation `json:"mapLocation"`
}
