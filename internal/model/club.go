package model

// Club — clubs table.
type Club struct {
	ClubID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"club_id"`
	Name   string `gorm:"type:varchar(150);not null"                     json:"name"`
	City   string `gorm:"type:varchar(100)"                              json:"city,omitempty"`
	SoftDeleteModel
}

func (Club) TableName() string { return "clubs" }
