package dto

// BoardResponse is one ranked results listing for a (category, gender) pair.
type BoardResponse struct {
	CategoryCode string        `json:"category_code"`
	CategoryName string        `json:"category_name"`
	Gender       string        `json:"gender"`
	Label        string        `json:"label"`
	Entries      []ResultEntry `json:"entries"`
}

// ResultEntry is one ranked row of a board. Heat and lane are kept for audit:
// every time traces back to the slot it was swum in.
type ResultEntry struct {
	Position    int    `json:"position"`
	SwimmerID   string `json:"swimmer_id"`
	SwimmerName string `json:"swimmer_name"`
	TimeMs      int64  `json:"time_ms"`
	HeatNumber  int    `json:"heat_number"`
	LaneNumber  int    `json:"lane_number"`
}
