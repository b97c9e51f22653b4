package dto

// CreateClubRequest is the club creation payload.
type CreateClubRequest struct {
	Name string `json:"name" binding:"required,max=150"`
	City string `json:"city" binding:"max=100"`
}

// UpdateClubRequest is the partial club update payload.
type UpdateClubRequest struct {
	Name *string `json:"name,omitempty"`
	City *string `json:"city,omitempty"`
}

// ClubResponse is the club view.
type ClubResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	City string `json:"city,omitempty"`
}
