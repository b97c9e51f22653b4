package model

// Lane — lanes table. The atomic schedulable unit: (event, heat number, lane
// number) is unique, and a swimmer holds at most one lane per event. The heat
// is not a standalone entity; it is the grouping key lanes of one event share.
type Lane struct {
	LaneID     string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"lane_id"`
	EventID    string  `gorm:"type:uuid;not null"                             json:"event_id"`
	HeatNumber int     `gorm:"type:smallint;not null"                         json:"heat_number"`
	LaneNumber int     `gorm:"type:smallint;not null"                         json:"lane_number"`
	SwimmerID  *string `gorm:"type:uuid"                                      json:"swimmer_id,omitempty"`
	CoachID    string  `gorm:"type:uuid;not null"                             json:"coach_id"`
	// FinalTimeMs is nil until a result is recorded; once set the lane is
	// closed for ranking.
	FinalTimeMs *int64 `gorm:"type:bigint" json:"final_time_ms,omitempty"`
	BaseModel

	Event   *Event   `gorm:"foreignKey:EventID;references:EventID"       json:"event,omitempty"`
	Swimmer *Swimmer `gorm:"foreignKey:SwimmerID;references:SwimmerID"   json:"swimmer,omitempty"`
	Coach   *User    `gorm:"foreignKey:CoachID;references:UserID"        json:"coach,omitempty"`
}

func (Lane) TableName() string { return "lanes" }

// Timed reports whether a final time has been recorded.
func (l *Lane) Timed() bool { return l.FinalTimeMs != nil }
