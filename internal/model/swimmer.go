package model

import "time"

// Swimmer genders as stored. Gender may be empty on legacy rows; the results
// aggregator applies its named MALE fallback, readers must not assume the
// column is populated.
const (
	GenderMale   = "MALE"
	GenderFemale = "FEMALE"
)

// Swimmer — swimmers table. Swimmers are club members, not login accounts.
type Swimmer struct {
	SwimmerID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"swimmer_id"`
	Name      string    `gorm:"type:varchar(150);not null"                     json:"name"`
	BirthDate time.Time `gorm:"type:date;not null"                             json:"birth_date"`
	Gender    string    `gorm:"type:varchar(10)"                               json:"gender,omitempty"`
	ClubID    string    `gorm:"type:uuid;not null"                             json:"club_id"`
	SoftDeleteModel

	Club *Club `gorm:"foreignKey:ClubID;references:ClubID" json:"club,omitempty"`
}

func (Swimmer) TableName() string { return "swimmers" }
