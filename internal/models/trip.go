package models

import "time"

// MapLocation is a point-of-interest coordinate attached to a trip.
type MapLocation struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Trip represents a travel listing created by a user
type Trip struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Description      string       `json:"description"`
	ShortDescription string       `json:"shortDescription"`
	Province         string       `json:"province"`
	Images           []string     `json:"images"`
	Tags             []string     `json:"tags,omitempty"`
	MapLocation      *MapLocation `json:"mapLocation,omitempty"`
	UserID           string       `json:"userId"`
	CreatedAt        time.Time    `json:"createdAt"`
	UpdatedAt        time.Time    `json:"updatedAt"`
}
