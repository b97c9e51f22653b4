package dto

// TimerStartRequest starts the event clock for a heat.
type TimerStartRequest struct {
	HeatNumber int `json:"heat_number" binding:"required,min=1"`
}

// TimerStopRequest stops the event clock. ElapsedMs, when present, pins the
// exact split a client-side stopwatch captured instead of the server
// computing now minus origin.
type TimerStopRequest struct {
	ElapsedMs *int64 `json:"elapsed_ms,omitempty"`
}

// TimerResponse is the polled timer snapshot. ServerTime lets clients correct
// for their own clock skew between polls.
type TimerResponse struct {
	ElapsedMs  int64 `json:"elapsed_ms"`
	Running    bool  `json:"running"`
	HeatNumber int   `json:"heat_number"`
	ServerTime int64 `json:"server_time"` // unix milliseconds
}
