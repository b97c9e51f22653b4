package dto

// CreateEventRequest is the event creation payload.
type CreateEventRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	ScheduledAt string `json:"scheduled_at" binding:"required"` // YYYY-MM-DD
	Location    string `json:"location" binding:"max=200"`
	// Empty means every category is eligible.
	EligibleCategories []string `json:"eligible_categories,omitempty"`
	Internal           *bool    `json:"internal,omitempty"`
}

// UpdateEventRequest is the partial event update payload.
type UpdateEventRequest struct {
	Title              *string   `json:"title,omitempty"`
	ScheduledAt        *string   `json:"scheduled_at,omitempty"`
	Location           *string   `json:"location,omitempty"`
	EligibleCategories *[]string `json:"eligible_categories,omitempty"`
	Internal           *bool     `json:"internal,omitempty"`
	Finished           *bool     `json:"finished,omitempty"`
}

// EventResponse is the event view.
type EventResponse struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	ScheduledAt        string   `json:"scheduled_at"`
	Location           string   `json:"location,omitempty"`
	EligibleCategories []string `json:"eligible_categories,omitempty"`
	Internal           bool     `json:"internal"`
	Finished           bool     `json:"finished"`
	ClubID             string   `json:"club_id"`
	ClubName           string   `json:"club_name,omitempty"`
}
