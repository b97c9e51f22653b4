package dto

// CreateSwimmerRequest is the swimmer creation payload.
type CreateSwimmerRequest struct {
	Name      string `json:"name" binding:"required,max=150"`
	BirthDate string `json:"birth_date" binding:"required"` // YYYY-MM-DD
	Gender    string `json:"gender" binding:"omitempty,oneof=MALE FEMALE"`
}

// UpdateSwimmerRequest is the partial swimmer update payload.
type UpdateSwimmerRequest struct {
	Name      *string `json:"name,omitempty"`
	BirthDate *string `json:"birth_date,omitempty"`
	Gender    *string `json:"gender,omitempty"`
}

// SwimmerResponse is the swimmer view, including the bracket the swimmer
// falls into for the current calendar year.
type SwimmerResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"`
	Gender    string `json:"gender,omitempty"`
	ClubID    string `json:"club_id"`
	Category  string `json:"category"`
}
