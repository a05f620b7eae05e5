// Package schools implements the school records feature: adding a school
// with validated coordinates and listing all schools ranked by distance from
// the caller's location.
package schools

import "time"

// School is a stored record with geographic coordinates. Records are
// immutable once created.
type School struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"createdAt"`
}

// Location is a latitude/longitude pair in degrees.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// RankedSchool is a School annotated with its distance in kilometers from a
// query point. It is computed per request and never persisted.
type RankedSchool struct {
	School
	Distance float64 `json:"distance"`
}

// AddSchoolRequest carries the fields for creating a school.
type AddSchoolRequest struct {
	Name      string  `json:"name" example:"Riverdale High"`
	Address   string  `json:"address" example:"1 River St, Springfield"`
	Latitude  float64 `json:"latitude" example:"40.7128"`
	Longitude float64 `json:"longitude" example:"-74.0060"`
}

// AddSchoolResponse is returned after a successful insert.
type AddSchoolResponse struct {
	Message string  `json:"message" example:"School added successfully."`
	School  *School `json:"school"`
}

// ListSchoolsResponse is the listing payload: every stored school ranked by
// ascending distance from the caller's location.
type ListSchoolsResponse struct {
	Message      string         `json:"message" example:"Schools retrieved successfully."`
	UserLocation Location       `json:"userLocation"`
	TotalSchools int            `json:"totalSchools" example:"2"`
	Schools      []RankedSchool `json:"schools"`
}
