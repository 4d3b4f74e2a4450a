package domain

import "time"

// Poster is a read-only promotional record. Rows are created and
// mutated by store-side tooling outside this API.
type Poster struct {
	ID             int
	FileID         string
	Caption        *string
	TicketURL      *string
	VenueMapFileID *string
	CreatedAt      time.Time
	IsActive       bool
}

// PosterView is the client-facing projection of a Poster: the caption
// is split into title/subtitle and the image reference is resolved to
// a URL the web client can fetch.
type PosterView struct {
	ID             int       `json:"id"`
	FileID         string    `json:"file_id"`
	PhotoURL       string    `json:"photo_url"`
	Caption        string    `json:"caption"`
	Title          string    `json:"title"`
	Subtitle       string    `json:"subtitle"`
	TicketURL      *string   `json:"ticket_url"`
	VenueMapFileID *string   `json:"venue_map_file_id"`
	CreatedAt      time.Time `json:"created_at"`
	IsActive       bool      `json:"is_active"`
}
