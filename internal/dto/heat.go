package dto

// CreateHeatRequest configures one heat of an event. Swimmers are assigned
// later, lane by lane, as they show up at the pool.
type CreateHeatRequest struct {
	HeatNumber int               `json:"heat_number" binding:"required,min=1"`
	Lanes      []LaneSlotRequest `json:"lanes" binding:"required,min=1,dive"`
}

// LaneSlotRequest is one lane entry of a heat configuration.
type LaneSlotRequest struct {
	LaneNumber int    `json:"lane_number" binding:"required,min=1"`
	CoachID    string `json:"coach_id" binding:"required,uuid"`
}

// AssignSwimmerRequest binds a swimmer to a lane.
type AssignSwimmerRequest struct {
	SwimmerID string `json:"swimmer_id" binding:"required,uuid"`
}

// RecordTimeRequest records a lane's final elapsed time.
type RecordTimeRequest struct {
	ElapsedMs int64 `json:"elapsed_ms" binding:"required,min=1"`
}

// HeatResponse is one heat with its ordered lanes.
type HeatResponse struct {
	HeatNumber int            `json:"heat_number"`
	Lanes      []LaneResponse `json:"lanes"`
}

// LaneResponse is the lane view with embedded display data.
type LaneResponse struct {
	ID          string `json:"id"`
	HeatNumber  int    `json:"heat_number"`
	LaneNumber  int    `json:"lane_number"`
	SwimmerID   string `json:"swimmer_id,omitempty"`
	SwimmerName string `json:"swimmer_name,omitempty"`
	CoachID     string `json:"coach_id"`
	CoachName   string `json:"coach_name,omitempty"`
	FinalTimeMs *int64 `json:"final_time_ms,omitempty"`
}
