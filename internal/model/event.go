package model

import "time"

// Event — events table. A competition session owned by one club. Internal
// events get lane assignments and live timing; external ones are listed for
// information only.
type Event struct {
	EventID     string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"event_id"`
	Title       string    `gorm:"type:varchar(200);not null"                     json:"title"`
	ScheduledAt time.Time `gorm:"type:date;not null"                             json:"scheduled_at"`
	Location    string    `gorm:"type:varchar(200)"                              json:"location,omitempty"`
	// EligibleCategories is a typed set of category codes; nil/empty means
	// every category may enter.
	EligibleCategories StringArray `gorm:"type:text"                   json:"eligible_categories,omitempty"`
	Internal           bool        `gorm:"not null;default:true"       json:"internal"`
	ClubID             string      `gorm:"type:uuid;not null"          json:"club_id"`
	Finished           bool        `gorm:"not null;default:false"      json:"finished"`
	SoftDeleteModel

	Club  *Club  `gorm:"foreignKey:ClubID;references:ClubID" json:"club,omitempty"`
	Lanes []Lane `gorm:"foreignKey:EventID"                  json:"lanes,omitempty"`
}

func (Event) TableName() string { return "events" }

// CompetitionYear is the year swimmers are classified against.
func (e *Event) CompetitionYear() int { return e.ScheduledAt.Year() }
